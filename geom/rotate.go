// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// RotateAroundAxis rotates v by angle radians around the given unit axis,
// using Rodrigues' rotation formula.
func RotateAroundAxis(v, axis Vector3, angle float64) Vector3 {
	axis = axis.Normalize()
	cosA, sinA := math.Cos(angle), math.Sin(angle)
	term1 := v.Scale(cosA)
	term2 := axis.Cross(v).Scale(sinA)
	term3 := axis.Scale(axis.Dot(v) * (1 - cosA))
	return term1.Add(term2).Add(term3)
}

// SignedAngleAroundAxis returns the signed angle, in radians, that
// rotates "from" onto "to" when viewed looking down "axis", per
// spec.md §4.5: dot = from.to, det = det[to, axis, from], angle =
// atan2(det, dot). The degenerate antiparallel case (dot == -1) is the
// caller's responsibility to special-case, per spec.md §9.
func SignedAngleAroundAxis(from, to, axis Vector3) float64 {
	dot := from.Dot(to)
	det := determinant3(to, axis, from)
	return math.Atan2(det, dot)
}

// determinant3 returns the determinant of the 3x3 matrix whose columns
// are c1, c2, c3.
func determinant3(c1, c2, c3 Vector3) float64 {
	return c1.X*(c2.Y*c3.Z-c2.Z*c3.Y) -
		c2.X*(c1.Y*c3.Z-c1.Z*c3.Y) +
		c3.X*(c1.Y*c2.Z-c1.Z*c2.Y)
}

// RadToDeg converts radians to degrees.
func RadToDeg(r float64) float64 { return r * 180 / math.Pi }

// DegToRad converts degrees to radians.
func DegToRad(d float64) float64 { return d * math.Pi / 180 }

// NormalizeRotationDeg wraps a signed rotation, in degrees, to the
// canonical range (-180, 180], per spec.md §4.5 "Wrap-around
// normalization":
//  1. if |r| >= 360, subtract full turns so |r| < 360, preserving sign.
//  2. if |r| > 180, replace with -sign(r) * (360 - |r|).
func NormalizeRotationDeg(r float64) float64 {
	if r == 0 {
		return 0
	}
	sign := 1.0
	if r < 0 {
		sign = -1.0
	}
	abs := math.Abs(r)
	abs = math.Mod(abs, 360)
	if abs > 180 {
		abs = 360 - abs
		sign = -sign
	}
	if abs == 180 {
		return 180
	}
	return sign * abs
}

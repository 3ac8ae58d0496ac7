// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the 3D point, vector, and rotation primitives
// used throughout the tube-bend recovery pipeline. Lengths are always
// in millimetres after unit-scale normalization; angles are radians
// internally and degrees only at the LRACLR boundary.
package geom

import "math"

// TOLE is the positional tolerance, in millimetres, used for every
// absolute geometric comparison in the pipeline.
const TOLE = 0.01

// DIVIDER is the radius-group key multiplier: round(radius, 5) * DIVIDER.
const DIVIDER = 1.0e8

// Canonical basis, matching the teacher's P_FORWARD/P_UP/P_RIGHT naming.
var (
	Forward = Vector3{X: 1, Y: 0, Z: 0}
	Up      = Vector3{X: 0, Y: 0, Z: 1}
	Right   = Vector3{X: 0, Y: 1, Z: 0}
)

// Point3 is an ordered triple of IEEE-754 64-bit floats, in millimetres.
type Point3 struct {
	X, Y, Z float64
}

// Vector3 is an ordered triple of IEEE-754 64-bit floats.
type Vector3 struct {
	X, Y, Z float64
}

// Vec3 constructs a Vector3 from components.
func Vec3(x, y, z float64) Vector3 { return Vector3{X: x, Y: y, Z: z} }

// Pt3 constructs a Point3 from components.
func Pt3(x, y, z float64) Point3 { return Point3{X: x, Y: y, Z: z} }

// Sub returns p - q as a vector.
func (p Point3) Sub(q Point3) Vector3 { return Vector3{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// Add returns the point p translated by v.
func (p Point3) Add(v Vector3) Point3 { return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z} }

// Distance returns the Euclidean distance between p and q.
func (p Point3) Distance(q Point3) float64 { return p.Sub(q).Length() }

// Vector returns p as a vector from the origin.
func (p Point3) Vector() Vector3 { return Vector3{p.X, p.Y, p.Z} }

// Add returns the sum of v and w.
func (v Vector3) Add(w Vector3) Vector3 { return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vector3) Sub(w Vector3) Vector3 { return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and w.
func (v Vector3) Dot(w Vector3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the cross product v x w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vector3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length. The zero vector is
// returned unchanged.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Negate returns -v.
func (v Vector3) Negate() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

// Point returns v as a point from the origin.
func (v Vector3) Point() Point3 { return Point3{v.X, v.Y, v.Z} }

// AngleTo returns the unsigned angle, in radians, between v and w.
func (v Vector3) AngleTo(w Vector3) float64 {
	d := v.Normalize().Dot(w.Normalize())
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return math.Acos(d)
}

// RadiusGroupKey computes the integer radius-group key for r:
// round(r, 5) * DIVIDER, per spec.md §3.
func RadiusGroupKey(r float64) int64 {
	rounded := math.Round(r*1e5) / 1e5
	return int64(math.Round(rounded * DIVIDER))
}

// NearlyEqual reports whether a and b differ by no more than TOLE.
func NearlyEqual(a, b float64) bool { return math.Abs(a-b) <= TOLE }

// PointsNearlyEqual reports whether p and q coincide within TOLE.
func PointsNearlyEqual(p, q Point3) bool { return p.Distance(q) <= TOLE }

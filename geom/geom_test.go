// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/pipeforge/lraclr/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestVector3Arith(t *testing.T) {
	v := Vec3(1, 2, 3)
	w := Vec3(4, -1, 2)

	assert.Equal(t, Vec3(5, 1, 5), v.Add(w))
	assert.Equal(t, Vec3(-3, 3, 1), v.Sub(w))
	assert.Equal(t, Vec3(2, 4, 6), v.Scale(2))
	assert.Equal(t, float64(8), v.Dot(w))
	assert.Equal(t, Vec3(7, 10, -9), v.Cross(w))
	assert.Equal(t, Vec3(-1, -2, -3), v.Negate())
}

func TestVector3Normalize(t *testing.T) {
	v := Vec3(3, 0, 4)
	n := v.Normalize()
	tolassert.Equal(t, 1, n.Length())
	tolassert.Equal(t, 0.6, n.X)
	tolassert.Equal(t, 0.8, n.Z)

	zero := Vector3{}
	assert.Equal(t, zero, zero.Normalize())
}

func TestPoint3Distance(t *testing.T) {
	p := Pt3(0, 0, 0)
	q := Pt3(3, 4, 0)
	assert.Equal(t, float64(5), p.Distance(q))
	assert.Equal(t, Vec3(3, 4, 0), q.Sub(p))
}

func TestAngleTo(t *testing.T) {
	tolassert.Equal(t, math.Pi/2, Forward.AngleTo(Right))
	tolassert.Equal(t, 0, Forward.AngleTo(Forward))
	tolassert.Equal(t, math.Pi, Forward.AngleTo(Forward.Negate()))
}

func TestRadiusGroupKey(t *testing.T) {
	assert.Equal(t, RadiusGroupKey(10), RadiusGroupKey(10.000001))
	assert.NotEqual(t, RadiusGroupKey(10), RadiusGroupKey(10.1))
	assert.Equal(t, int64(10)*int64(DIVIDER), RadiusGroupKey(10))
}

func TestNearlyEqual(t *testing.T) {
	assert.True(t, NearlyEqual(1.0, 1.005))
	assert.False(t, NearlyEqual(1.0, 1.02))
	assert.True(t, PointsNearlyEqual(Pt3(0, 0, 0), Pt3(0.005, 0, 0)))
	assert.False(t, PointsNearlyEqual(Pt3(0, 0, 0), Pt3(0.02, 0, 0)))
}

func TestSignedAngleAroundAxis(t *testing.T) {
	// Rotating Forward by +90deg around Up should read back as +90deg
	// when measured from Forward to the rotated vector around Up.
	rotated := RotateAroundAxis(Forward, Up, DegToRad(90))
	angle := SignedAngleAroundAxis(Forward, rotated, Up)
	tolassert.EqualTol(t, DegToRad(90), angle, 1e-6)

	rotatedNeg := RotateAroundAxis(Forward, Up, DegToRad(-45))
	angleNeg := SignedAngleAroundAxis(Forward, rotatedNeg, Up)
	tolassert.EqualTol(t, DegToRad(-45), angleNeg, 1e-6)
}

func TestNormalizeRotationDeg(t *testing.T) {
	tolassert.Equal(t, 90, NormalizeRotationDeg(90))
	tolassert.Equal(t, -90, NormalizeRotationDeg(270))
	tolassert.Equal(t, 180, NormalizeRotationDeg(180))
	tolassert.Equal(t, 0, NormalizeRotationDeg(360))
	tolassert.Equal(t, 10, NormalizeRotationDeg(370))
	tolassert.Equal(t, -10, NormalizeRotationDeg(-370))
}

func TestCircleSameAs(t *testing.T) {
	a := Circle{Radius: 10, Centre: Pt3(0, 0, 0), Axis: Forward, Radial: Up}
	b := Circle{Radius: 10.001, Centre: Pt3(0.001, 0, 0), Axis: Forward.Negate(), Radial: Up}
	assert.True(t, a.SameAs(b))

	c := Circle{Radius: 12, Centre: Pt3(0, 0, 0), Axis: Forward, Radial: Up}
	assert.False(t, a.SameAs(c))
}

func TestCircleValid(t *testing.T) {
	a := Circle{Radius: 10, Centre: Pt3(0, 0, 0), Axis: Forward, Radial: Up}
	assert.True(t, a.Valid())

	bad := Circle{Radius: 10, Centre: Pt3(0, 0, 0), Axis: Forward, Radial: Forward}
	assert.False(t, bad.Valid())
}

func TestCylinderSwapEnds(t *testing.T) {
	a := Circle{Radius: 5, Centre: Pt3(0, 0, 0), Axis: Forward, Radial: Up}
	b := Circle{Radius: 5, Centre: Pt3(100, 0, 0), Axis: Forward, Radial: Up}
	cy := Cylinder{A: a, B: b, R: 5, CaTor: 1, CbTor: 2}
	cy.RecomputeHeight()
	assert.Equal(t, float64(100), cy.H)

	cy.SwapEnds()
	assert.Equal(t, b, cy.A)
	assert.Equal(t, a, cy.B)
	assert.Equal(t, int64(2), cy.CaTor)
	assert.Equal(t, int64(1), cy.CbTor)
	assert.Equal(t, float64(100), cy.H)
}

func TestCylinderIsOpenEnd(t *testing.T) {
	cy := Cylinder{CaTor: 0, CbTor: 7}
	assert.True(t, cy.IsOpenEnd(0))

	cy2 := Cylinder{CaTor: 3, CbTor: 7}
	assert.False(t, cy2.IsOpenEnd(0))
}

func TestTorusBendAngle(t *testing.T) {
	centre := Pt3(0, 0, 0)
	a := Circle{Centre: Pt3(10, 0, 0)}
	b := Circle{Centre: Pt3(0, 10, 0)}
	tr := Torus{BendCentre: centre, A: a, B: b, MajorRadius: 10}
	tolassert.EqualTol(t, math.Pi/2, tr.BendAngle(), 1e-9)
}

func TestTorusSwapBoundary(t *testing.T) {
	a := Circle{Radius: 1}
	b := Circle{Radius: 2}
	tr := Torus{A: a, B: b}
	tr.SwapBoundary()
	assert.Equal(t, b, tr.A)
	assert.Equal(t, a, tr.B)
}

func TestTorusSameBoundaryAs(t *testing.T) {
	shared := Circle{Radius: 5, Centre: Pt3(0, 0, 0), Axis: Forward, Radial: Up}
	ownFree := Circle{Radius: 5, Centre: Pt3(10, 0, 0), Axis: Forward, Radial: Up}
	otherFree := Circle{Radius: 5, Centre: Pt3(-10, 0, 0), Axis: Forward, Radial: Up}

	t1 := Torus{A: shared, B: ownFree}
	t2 := Torus{A: shared, B: otherFree}

	sh, of, ot, ok := t1.SameBoundaryAs(t2)
	assert.True(t, ok)
	assert.True(t, sh.SameAs(shared))
	assert.True(t, of.SameAs(ownFree))
	assert.True(t, ot.SameAs(otherFree))
}

func TestChainElement(t *testing.T) {
	cy := Cylinder{ID: 5}
	e := NewCylinderElement(cy)
	assert.True(t, e.IsCylinder())
	assert.False(t, e.IsTorus())
	assert.Equal(t, int64(5), e.ID())
	assert.Equal(t, "cylinder", e.Kind.String())

	tr := Torus{ID: 9}
	e2 := NewTorusElement(tr)
	assert.True(t, e2.IsTorus())
	assert.Equal(t, int64(9), e2.ID())
	assert.Equal(t, "torus", e2.Kind.String())
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// Circle is an oriented circle in 3D, per spec.md §3.
type Circle struct {
	ID     int64
	Radius float64
	Centre Point3

	// Axis is the unit normal of the circle's plane.
	Axis Vector3

	// Radial is a unit direction orthogonal to Axis, used as the
	// reference for angle measurements around the circle.
	Radial Vector3
}

// GroupKey returns the radius-group key for c.
func (c Circle) GroupKey() int64 { return RadiusGroupKey(c.Radius) }

// Valid reports whether the axis and radial direction are
// (within tolerance) orthogonal, as required by spec.md §3.
func (c Circle) Valid() bool {
	return NearlyEqual(c.Axis.Normalize().Dot(c.Radial.Normalize()), 0)
}

// SameAs reports whether c and o are duplicates: coincident centres,
// equal radii, and colinear axes, all within TOLE.
func (c Circle) SameAs(o Circle) bool {
	if !PointsNearlyEqual(c.Centre, o.Centre) {
		return false
	}
	if !NearlyEqual(c.Radius, o.Radius) {
		return false
	}
	cross := c.Axis.Normalize().Cross(o.Axis.Normalize())
	return NearlyEqual(cross.Length(), 0)
}

// Cylinder is a straight pipe segment between two same-radius,
// parallel-axis end circles, per spec.md §3.
type Cylinder struct {
	ID int64
	A  Circle
	B  Circle

	// H is |A.Centre - B.Centre|; kept denormalized and recomputed
	// after every endpoint swap (spec.md §9 "Endpoint reversals").
	H float64

	// R is the pipe radius, equal to A.Radius and B.Radius.
	R float64

	// CaTor / CbTor are neighbour torus ids on the A / B end,
	// respectively, or ids.None if that end is an open end of the
	// chain.
	CaTor int64
	CbTor int64
}

// GroupKey returns the radius-group key for cy.
func (cy Cylinder) GroupKey() int64 { return RadiusGroupKey(cy.R) }

// RecomputeHeight sets H from the current A/B centres. Called after
// every endpoint swap or extension, per spec.md §9.
func (cy *Cylinder) RecomputeHeight() {
	cy.H = cy.A.Centre.Distance(cy.B.Centre)
}

// IsOpenEnd reports whether cy has at least one missing neighbour
// torus, i.e. is an open end of the chain (spec.md §3, §4.3).
func (cy Cylinder) IsOpenEnd(none int64) bool {
	return cy.CaTor == none || cy.CbTor == none
}

// SwapEnds exchanges A/B and CaTor/CbTor, then recomputes H. Every
// orientation-pass "swap endpoints" operation is this single call
// (spec.md §9).
func (cy *Cylinder) SwapEnds() {
	cy.A, cy.B = cy.B, cy.A
	cy.CaTor, cy.CbTor = cy.CbTor, cy.CaTor
	cy.RecomputeHeight()
}

// Torus is a bend segment between two boundary circles on the tube
// surface, per spec.md §3.
type Torus struct {
	ID int64

	// BendCentre is the centre of the arc the pipe centreline sweeps
	// through this bend.
	BendCentre Point3

	// BendPlaneNorm is the unit normal of the plane containing the
	// bend arc.
	BendPlaneNorm Vector3

	// Radial is a unit reference direction in the bend plane.
	Radial Vector3

	// MajorRadius is the bend centerline radius (CLR); MinorRadius is
	// the pipe radius.
	MajorRadius float64
	MinorRadius float64

	// A, B are the boundary circles where the torus meets the
	// adjoining cylinders.
	A Circle
	B Circle
}

// GroupKey returns the radius-group key for t, from its minor radius.
func (t Torus) GroupKey() int64 { return RadiusGroupKey(t.MinorRadius) }

// SwapBoundary exchanges the A/B boundary circles, used during
// orientation when A does not meet the previous cylinder's B end
// (spec.md §4.4).
func (t *Torus) SwapBoundary() {
	t.A, t.B = t.B, t.A
}

// BendAngle returns the unsigned angle, in radians, subtended at
// BendCentre between A.Centre and B.Centre (spec.md §4.5 "a").
func (t Torus) BendAngle() float64 {
	va := t.A.Centre.Sub(t.BendCentre)
	vb := t.B.Centre.Sub(t.BendCentre)
	return va.AngleTo(vb)
}

// SameBoundaryAs reports whether t and o share a boundary circle,
// used by torus merging (spec.md §4.3).
func (t Torus) SameBoundaryAs(o Torus) (shared, ownFree, otherFree Circle, ok bool) {
	switch {
	case t.A.SameAs(o.A):
		return t.A, t.B, o.B, true
	case t.A.SameAs(o.B):
		return t.A, t.B, o.A, true
	case t.B.SameAs(o.A):
		return t.B, t.A, o.B, true
	case t.B.SameAs(o.B):
		return t.B, t.A, o.A, true
	}
	return Circle{}, Circle{}, Circle{}, false
}

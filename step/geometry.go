// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package step

import "github.com/pipeforge/lraclr/geom"

// CartesianPoint resolves a CARTESIAN_POINT entity to a scaled
// geom.Point3.
func (t *Table) CartesianPoint(id int64) (geom.Point3, bool) {
	e, ok := t.GetKeyword(id, "CARTESIAN_POINT")
	if !ok || len(e.Args) < 2 {
		return geom.Point3{}, false
	}
	xyz, ok := triple(e.Args[1])
	if !ok {
		return geom.Point3{}, false
	}
	return geom.Pt3(xyz[0]*t.Scale, xyz[1]*t.Scale, xyz[2]*t.Scale), true
}

// Direction resolves a DIRECTION entity to a unit geom.Vector3. The
// unit-scale multiply is applied then the result renormalized, per
// spec.md §4.1 (a no-op mathematically, retained per spec.md §9 for
// faithfulness to the source pipeline).
func (t *Table) Direction(id int64) (geom.Vector3, bool) {
	e, ok := t.GetKeyword(id, "DIRECTION")
	if !ok || len(e.Args) < 2 {
		return geom.Vector3{}, false
	}
	xyz, ok := triple(e.Args[1])
	if !ok {
		return geom.Vector3{}, false
	}
	v := geom.Vec3(xyz[0]*t.Scale, xyz[1]*t.Scale, xyz[2]*t.Scale)
	return v.Normalize(), true
}

// VertexPoint resolves a VERTEX_POINT entity to its underlying
// cartesian point.
func (t *Table) VertexPoint(id int64) (geom.Point3, bool) {
	e, ok := t.GetKeyword(id, "VERTEX_POINT")
	if !ok || len(e.Args) < 2 {
		return geom.Point3{}, false
	}
	ref, ok := refID(e.Args[1])
	if !ok {
		return geom.Point3{}, false
	}
	return t.CartesianPoint(ref)
}

// AxisPlacement is the resolved form of an AXIS2_PLACEMENT_3D entity:
// a location point plus the axis and reference-direction unit
// vectors (spec.md §4.1).
type AxisPlacement struct {
	Location geom.Point3
	Axis     geom.Vector3
	Radial   geom.Vector3
}

// AxisPlacement3D resolves an AXIS2_PLACEMENT_3D entity.
func (t *Table) AxisPlacement3D(id int64) (AxisPlacement, bool) {
	e, ok := t.GetKeyword(id, "AXIS2_PLACEMENT_3D")
	if !ok || len(e.Args) < 4 {
		return AxisPlacement{}, false
	}
	locRef, ok := refID(e.Args[1])
	if !ok {
		return AxisPlacement{}, false
	}
	loc, ok := t.CartesianPoint(locRef)
	if !ok {
		return AxisPlacement{}, false
	}
	ap := AxisPlacement{Location: loc, Axis: geom.Up, Radial: geom.Right}
	if axisRef, ok := refID(e.Args[2]); ok {
		if axis, ok := t.Direction(axisRef); ok {
			ap.Axis = axis
		}
	}
	if radRef, ok := refID(e.Args[3]); ok {
		if rad, ok := t.Direction(radRef); ok {
			ap.Radial = rad
		}
	}
	return ap, true
}

// Circle is the resolved form of a CIRCLE entity: radius and the
// placement of its plane.
type Circle struct {
	Radius    float64
	Placement AxisPlacement
}

// CircleAt resolves a CIRCLE entity.
func (t *Table) CircleAt(id int64) (Circle, bool) {
	e, ok := t.GetKeyword(id, "CIRCLE")
	if !ok || len(e.Args) < 3 {
		return Circle{}, false
	}
	placeRef, ok := refID(e.Args[1])
	if !ok {
		return Circle{}, false
	}
	place, ok := t.AxisPlacement3D(placeRef)
	if !ok {
		return Circle{}, false
	}
	r, ok := floatArg(e.Args[2])
	if !ok {
		return Circle{}, false
	}
	return Circle{Radius: r * t.Scale, Placement: place}, true
}

// CylindricalSurface is the resolved form of a CYLINDRICAL_SURFACE
// entity.
type CylindricalSurface struct {
	Radius    float64
	Placement AxisPlacement
}

// CylindricalSurfaceAt resolves a CYLINDRICAL_SURFACE entity.
func (t *Table) CylindricalSurfaceAt(id int64) (CylindricalSurface, bool) {
	e, ok := t.GetKeyword(id, "CYLINDRICAL_SURFACE")
	if !ok || len(e.Args) < 3 {
		return CylindricalSurface{}, false
	}
	placeRef, ok := refID(e.Args[1])
	if !ok {
		return CylindricalSurface{}, false
	}
	place, ok := t.AxisPlacement3D(placeRef)
	if !ok {
		return CylindricalSurface{}, false
	}
	r, ok := floatArg(e.Args[2])
	if !ok {
		return CylindricalSurface{}, false
	}
	return CylindricalSurface{Radius: r * t.Scale, Placement: place}, true
}

// ToroidalSurface is the resolved form of a TOROIDAL_SURFACE entity:
// bend centre placement, major radius (bend centerline radius), and
// minor radius (pipe radius).
type ToroidalSurface struct {
	Placement   AxisPlacement
	MajorRadius float64
	MinorRadius float64
}

// ToroidalSurfaceAt resolves a TOROIDAL_SURFACE entity.
func (t *Table) ToroidalSurfaceAt(id int64) (ToroidalSurface, bool) {
	e, ok := t.GetKeyword(id, "TOROIDAL_SURFACE")
	if !ok || len(e.Args) < 4 {
		return ToroidalSurface{}, false
	}
	placeRef, ok := refID(e.Args[1])
	if !ok {
		return ToroidalSurface{}, false
	}
	place, ok := t.AxisPlacement3D(placeRef)
	if !ok {
		return ToroidalSurface{}, false
	}
	major, ok := floatArg(e.Args[2])
	if !ok {
		return ToroidalSurface{}, false
	}
	minor, ok := floatArg(e.Args[3])
	if !ok {
		return ToroidalSurface{}, false
	}
	return ToroidalSurface{Placement: place, MajorRadius: major * t.Scale, MinorRadius: minor * t.Scale}, true
}

// PlaneSurface is the resolved form of a PLANE entity: only its
// placement is used, to collect cap candidate points from bounding
// loop vertices (spec.md §4.2).
type PlaneSurface struct {
	Placement AxisPlacement
}

// PlaneAt resolves a PLANE entity.
func (t *Table) PlaneAt(id int64) (PlaneSurface, bool) {
	e, ok := t.GetKeyword(id, "PLANE")
	if !ok || len(e.Args) < 2 {
		return PlaneSurface{}, false
	}
	placeRef, ok := refID(e.Args[1])
	if !ok {
		return PlaneSurface{}, false
	}
	place, ok := t.AxisPlacement3D(placeRef)
	if !ok {
		return PlaneSurface{}, false
	}
	return PlaneSurface{Placement: place}, true
}

// BSplineCurve is the resolved form of a B_SPLINE_CURVE_WITH_KNOTS
// entity: its control points, in order, scaled.
type BSplineCurve struct {
	ControlPoints []geom.Point3
}

// BSplineCurveAt resolves a B_SPLINE_CURVE_WITH_KNOTS entity.
func (t *Table) BSplineCurveAt(id int64) (BSplineCurve, bool) {
	e, ok := t.Get(id)
	if !ok || e.Keyword != "B_SPLINE_CURVE_WITH_KNOTS" {
		return BSplineCurve{}, false
	}
	if len(e.Args) < 3 {
		return BSplineCurve{}, false
	}
	refs := refList(e.Args[2])
	if len(refs) == 0 {
		return BSplineCurve{}, false
	}
	pts := make([]geom.Point3, 0, len(refs))
	for _, r := range refs {
		p, ok := t.CartesianPoint(r)
		if !ok {
			return BSplineCurve{}, false
		}
		pts = append(pts, p)
	}
	return BSplineCurve{ControlPoints: pts}, true
}

// EdgeCurve is the resolved form of an EDGE_CURVE entity: its two
// vertex ids and the id of its underlying curve geometry (a CIRCLE or
// B_SPLINE_CURVE_WITH_KNOTS).
type EdgeCurve struct {
	StartVertex int64
	EndVertex   int64
	CurveID     int64
}

// EdgeCurveAt resolves an EDGE_CURVE entity.
func (t *Table) EdgeCurveAt(id int64) (EdgeCurve, bool) {
	e, ok := t.GetKeyword(id, "EDGE_CURVE")
	if !ok || len(e.Args) < 4 {
		return EdgeCurve{}, false
	}
	sv, ok := refID(e.Args[1])
	if !ok {
		return EdgeCurve{}, false
	}
	ev, ok := refID(e.Args[2])
	if !ok {
		return EdgeCurve{}, false
	}
	cv, ok := refID(e.Args[3])
	if !ok {
		return EdgeCurve{}, false
	}
	return EdgeCurve{StartVertex: sv, EndVertex: ev, CurveID: cv}, true
}

// OrientedEdgeAt resolves an ORIENTED_EDGE entity to the id of its
// underlying EDGE_CURVE.
func (t *Table) OrientedEdgeAt(id int64) (int64, bool) {
	e, ok := t.GetKeyword(id, "ORIENTED_EDGE")
	if !ok || len(e.Args) < 4 {
		return 0, false
	}
	return refID(e.Args[3])
}

// EdgeLoopAt resolves an EDGE_LOOP entity to the ids of its ordered
// ORIENTED_EDGE members.
func (t *Table) EdgeLoopAt(id int64) ([]int64, bool) {
	e, ok := t.GetKeyword(id, "EDGE_LOOP")
	if !ok || len(e.Args) < 2 {
		return nil, false
	}
	return refList(e.Args[1]), true
}

// FaceBoundAt resolves a FACE_BOUND (or FACE_OUTER_BOUND) entity to
// the id of its EDGE_LOOP.
func (t *Table) FaceBoundAt(id int64) (int64, bool) {
	e, ok := t.Get(id)
	if !ok || (e.Keyword != "FACE_BOUND" && e.Keyword != "FACE_OUTER_BOUND") {
		return 0, false
	}
	if len(e.Args) < 2 {
		return 0, false
	}
	return refID(e.Args[1])
}

// AdvancedFace is the resolved form of an ADVANCED_FACE entity: its
// bounding FACE_BOUND ids and the id of its underlying surface.
type AdvancedFace struct {
	Bounds    []int64
	SurfaceID int64
}

// AdvancedFaceAt resolves an ADVANCED_FACE entity.
func (t *Table) AdvancedFaceAt(id int64) (AdvancedFace, bool) {
	e, ok := t.GetKeyword(id, "ADVANCED_FACE")
	if !ok || len(e.Args) < 3 {
		return AdvancedFace{}, false
	}
	bounds := refList(e.Args[1])
	surf, ok := refID(e.Args[2])
	if !ok {
		return AdvancedFace{}, false
	}
	return AdvancedFace{Bounds: bounds, SurfaceID: surf}, true
}

// ClosedShellAt resolves a CLOSED_SHELL entity to the ids of its
// ADVANCED_FACE members.
func (t *Table) ClosedShellAt(id int64) ([]int64, bool) {
	e, ok := t.GetKeyword(id, "CLOSED_SHELL")
	if !ok || len(e.Args) < 2 {
		return nil, false
	}
	return refList(e.Args[1]), true
}

// AllClosedShells returns the ids of every CLOSED_SHELL entity in the
// table, in no particular order.
func (t *Table) AllClosedShells() []int64 {
	var ids []int64
	for id, e := range t.Entities {
		if e.Keyword == "CLOSED_SHELL" {
			ids = append(ids, id)
		}
	}
	return ids
}

// SurfaceKind tags which concrete surface type AdvancedFace.SurfaceID
// resolves to.
type SurfaceKind int

const (
	SurfaceUnknown SurfaceKind = iota
	SurfaceCylindrical
	SurfaceToroidal
	SurfacePlane
	SurfaceConical
	SurfaceBSpline
)

// ClassifySurface reports which kind of surface entity id is.
func (t *Table) ClassifySurface(id int64) SurfaceKind {
	e, ok := t.Get(id)
	if !ok {
		return SurfaceUnknown
	}
	switch e.Keyword {
	case "CYLINDRICAL_SURFACE":
		return SurfaceCylindrical
	case "TOROIDAL_SURFACE":
		return SurfaceToroidal
	case "PLANE":
		return SurfacePlane
	case "CONICAL_SURFACE":
		return SurfaceConical
	case "B_SPLINE_SURFACE_WITH_KNOTS", "BOUNDED_SURFACE":
		return SurfaceBSpline
	default:
		return SurfaceUnknown
	}
}

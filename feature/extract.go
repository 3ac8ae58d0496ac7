// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package feature walks every face of every shell in a parsed STEP
// table and extracts candidate Cylinder and Torus records for the
// pipe chain builder (spec.md §4.2).
package feature

import (
	"log/slog"
	"math"

	"github.com/pipeforge/lraclr/base/metadata"
	"github.com/pipeforge/lraclr/geom"
	"github.com/pipeforge/lraclr/internal/ids"
	"github.com/pipeforge/lraclr/step"
)

// MaxBendRadius is the threshold above which a toroidal surface is
// treated as cylindrical rather than a bend (spec.md §3 constants).
const MaxBendRadius = 500.0

// farControlDistance is the distance along a cylinder's axis used to
// build a stable far control point for extreme-candidate selection
// (spec.md §4.2).
const farControlDistance = 5.0e6

// tessellationSteps is the number of parameter samples taken across
// [0,1] when approximating a B-spline curve's shape for candidate
// extraction (spec.md §4.2 "sampled at 11 parameter values").
const tessellationSteps = 11

// Result holds everything the extractor produces from one STEP
// table: candidate cylinders and tori for the chain builder, plus cap
// points for the endpoint-extension pass (spec.md §4.2, §4.4).
type Result struct {
	Cylinders []geom.Cylinder
	Tori      []geom.Torus
	CapPoints []geom.Point3

	// Meta carries extraction diagnostics (currently "skippedFaces",
	// the count of faces skipped for an unrecognized or malformed
	// surface) so a caller can surface them without scraping logs.
	Meta metadata.Data
}

// Extract walks every CLOSED_SHELL's ADVANCED_FACEs in t, classifying
// each face's surface and extracting candidate geometry. A face with
// an unrecognized or malformed surface reference is logged and
// skipped; it is never fatal (spec.md §4.2 "Failure").
func Extract(t *step.Table, gen *ids.Gen) Result {
	var res Result
	for _, shellID := range t.AllClosedShells() {
		faceIDs, ok := t.ClosedShellAt(shellID)
		if !ok {
			continue
		}
		for _, faceID := range faceIDs {
			extractFace(t, gen, faceID, &res)
		}
	}
	return res
}

func extractFace(t *step.Table, gen *ids.Gen, faceID int64, res *Result) {
	face, ok := t.AdvancedFaceAt(faceID)
	if !ok {
		slog.Warn("feature: malformed advanced face, skipping", "face", faceID)
		countSkippedFace(res)
		return
	}
	switch t.ClassifySurface(face.SurfaceID) {
	case step.SurfaceCylindrical:
		extractCylindricalFace(t, gen, face, res)
	case step.SurfaceToroidal:
		extractToroidalFace(t, gen, face, res)
	case step.SurfacePlane:
		extractPlaneFace(t, face, res)
	case step.SurfaceConical, step.SurfaceBSpline:
		// Skipped for tube extraction, per spec.md §4.2.
	default:
		slog.Warn("feature: unknown surface kind, skipping face", "face", faceID, "surface", face.SurfaceID)
		countSkippedFace(res)
	}
}

// countSkippedFace increments res.Meta's "skippedFaces" diagnostic.
func countSkippedFace(res *Result) {
	n, _ := metadata.Get[int](res.Meta, "skippedFaces")
	res.Meta.Set("skippedFaces", n+1)
}

// extractCylindricalFace implements spec.md §4.2 "Cylindrical
// surface".
func extractCylindricalFace(t *step.Table, gen *ids.Gen, face step.AdvancedFace, res *Result) {
	cs, ok := t.CylindricalSurfaceAt(face.SurfaceID)
	if !ok {
		return
	}
	emitCylinderFromCandidates(t, gen, face.Bounds, cs.Placement.Location, cs.Placement.Axis, cs.Radius, res)
}

// emitCylinderFromCandidates harvests candidate end-circles from the
// given face bounds and, if at least two are found, emits a Cylinder
// (spec.md §4.2).
func emitCylinderFromCandidates(t *step.Table, gen *ids.Gen, bounds []int64, location geom.Point3, axis geom.Vector3, radius float64, res *Result) {
	candidates := collectCircleCandidates(t, bounds, location, axis, radius)
	if len(candidates) < 2 {
		return
	}
	control := location.Add(axis.Scale(farControlDistance))
	a, b := extremesByProjection(candidates, control, axis)
	cyl := geom.Cylinder{
		ID:    gen.Next(),
		A:     a,
		B:     b,
		R:     radius,
		CaTor: ids.None,
		CbTor: ids.None,
	}
	cyl.RecomputeHeight()
	res.Cylinders = append(res.Cylinders, cyl)
}

// collectCircleCandidates gathers every circle and tessellated B-spline
// in the face's bounding loops that lies on the cylindrical surface of
// the given axis/radius (spec.md §4.2). Ellipses are not collected.
func collectCircleCandidates(t *step.Table, bounds []int64, location geom.Point3, axis geom.Vector3, radius float64) []geom.Circle {
	var out []geom.Circle
	for _, curveID := range faceBoundCurveIDs(t, bounds) {
		e, ok := t.Get(curveID)
		if !ok {
			continue
		}
		switch e.Keyword {
		case "CIRCLE":
			c, ok := t.CircleAt(curveID)
			if !ok {
				continue
			}
			if !isCoplanar(c.Placement.Axis, axis) {
				continue
			}
			out = append(out, geom.Circle{
				ID:     curveID,
				Radius: c.Radius,
				Centre: c.Placement.Location,
				Axis:   c.Placement.Axis,
				Radial: c.Placement.Radial,
			})
		case "B_SPLINE_CURVE_WITH_KNOTS":
			bs, ok := t.BSplineCurveAt(curveID)
			if !ok {
				continue
			}
			out = append(out, tessellateCylindricalCandidates(bs, curveID, location, axis, radius)...)
		}
	}
	return out
}

// isCoplanar reports whether a circle plane's normal is parallel to
// the cylinder axis, within TOLE (spec.md §4.2).
func isCoplanar(circleAxis, cylAxis geom.Vector3) bool {
	return geom.NearlyEqual(math.Abs(circleAxis.Normalize().Dot(cylAxis.Normalize())), 1)
}

// tessellateCylindricalCandidates samples a B-spline curve's control
// polygon at tessellationSteps parameter values and keeps every
// sample that lies within TOLE of the cylinder surface, seeding a
// candidate end-circle at its axis projection (spec.md §4.2). The
// control polygon is sampled directly rather than evaluated as a true
// NURBS curve; see DESIGN.md.
func tessellateCylindricalCandidates(bs step.BSplineCurve, curveID int64, location geom.Point3, axis geom.Vector3, radius float64) []geom.Circle {
	var out []geom.Circle
	for i := 0; i <= tessellationSteps-1; i++ {
		param := float64(i) / float64(tessellationSteps-1)
		point := sampleControlPolygon(bs.ControlPoints, param)
		proj := projectPointToLine(location, axis, point)
		if !geom.NearlyEqual(point.Distance(proj), radius) {
			continue
		}
		radial := point.Sub(proj)
		if radial.Length() == 0 {
			continue
		}
		out = append(out, geom.Circle{
			ID:     curveID,
			Radius: radius,
			Centre: proj,
			Axis:   axis,
			Radial: radial.Normalize(),
		})
	}
	return out
}

// sampleControlPolygon linearly interpolates along the control
// polygon of pts at parameter t in [0,1].
func sampleControlPolygon(pts []geom.Point3, t float64) geom.Point3 {
	if len(pts) == 1 {
		return pts[0]
	}
	span := float64(len(pts) - 1)
	pos := t * span
	i := int(math.Floor(pos))
	if i >= len(pts)-1 {
		return pts[len(pts)-1]
	}
	frac := pos - float64(i)
	v := pts[i+1].Sub(pts[i])
	return pts[i].Add(v.Scale(frac))
}

// projectPointToLine projects point onto the line through origin with
// the given direction axis.
func projectPointToLine(origin geom.Point3, axis geom.Vector3, point geom.Point3) geom.Point3 {
	axis = axis.Normalize()
	d := point.Sub(origin).Dot(axis)
	return origin.Add(axis.Scale(d))
}

// extremesByProjection returns the two candidates whose projection
// distance along axis from control is smallest and largest,
// respectively (spec.md §4.2 "Choose the two extreme candidates").
func extremesByProjection(candidates []geom.Circle, control geom.Point3, axis geom.Vector3) (geom.Circle, geom.Circle) {
	axis = axis.Normalize()
	minC, maxC := candidates[0], candidates[0]
	minP := candidates[0].Centre.Sub(control).Dot(axis)
	maxP := minP
	for _, c := range candidates[1:] {
		p := c.Centre.Sub(control).Dot(axis)
		if p < minP {
			minP = p
			minC = c
		}
		if p > maxP {
			maxP = p
			maxC = c
		}
	}
	return minC, maxC
}

// faceBoundCurveIDs walks a face's bounds down to the underlying
// curve entity id of every edge, per the STEP topology chain
// FACE_BOUND -> EDGE_LOOP -> ORIENTED_EDGE -> EDGE_CURVE -> curve
// geometry.
func faceBoundCurveIDs(t *step.Table, bounds []int64) []int64 {
	var curves []int64
	for _, boundID := range bounds {
		loopID, ok := t.FaceBoundAt(boundID)
		if !ok {
			continue
		}
		edgeIDs, ok := t.EdgeLoopAt(loopID)
		if !ok {
			continue
		}
		for _, oeID := range edgeIDs {
			edgeCurveID, ok := t.OrientedEdgeAt(oeID)
			if !ok {
				continue
			}
			ec, ok := t.EdgeCurveAt(edgeCurveID)
			if !ok {
				continue
			}
			curves = append(curves, ec.CurveID)
		}
	}
	return curves
}

// faceBoundVertexIDs walks a face's bounds down to the start/end
// vertex ids of every edge.
func faceBoundVertexIDs(t *step.Table, bounds []int64) []int64 {
	var verts []int64
	for _, boundID := range bounds {
		loopID, ok := t.FaceBoundAt(boundID)
		if !ok {
			continue
		}
		edgeIDs, ok := t.EdgeLoopAt(loopID)
		if !ok {
			continue
		}
		for _, oeID := range edgeIDs {
			edgeCurveID, ok := t.OrientedEdgeAt(oeID)
			if !ok {
				continue
			}
			ec, ok := t.EdgeCurveAt(edgeCurveID)
			if !ok {
				continue
			}
			verts = append(verts, ec.StartVertex, ec.EndVertex)
		}
	}
	return verts
}

// extractPlaneFace collects cap candidate points from a planar face's
// loop vertices (spec.md §4.2 "Plane / conical / B-spline surface").
func extractPlaneFace(t *step.Table, face step.AdvancedFace, res *Result) {
	for _, vID := range faceBoundVertexIDs(t, face.Bounds) {
		p, ok := t.VertexPoint(vID)
		if !ok {
			continue
		}
		res.CapPoints = append(res.CapPoints, p)
	}
}

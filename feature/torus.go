// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"github.com/pipeforge/lraclr/geom"
	"github.com/pipeforge/lraclr/internal/ids"
	"github.com/pipeforge/lraclr/step"
)

// extractToroidalFace implements spec.md §4.2's two TOROIDAL_SURFACE
// cases: above MaxBendRadius it is recognized as a straight run and
// handled exactly like a cylindrical surface (using the minor radius
// as the pipe radius and the toroidal axis as the cylinder axis);
// otherwise it is a genuine bend.
func extractToroidalFace(t *step.Table, gen *ids.Gen, face step.AdvancedFace, res *Result) {
	ts, ok := t.ToroidalSurfaceAt(face.SurfaceID)
	if !ok {
		return
	}
	if ts.MajorRadius > MaxBendRadius {
		emitCylinderFromCandidates(t, gen, face.Bounds, ts.Placement.Location, ts.Placement.Axis, ts.MinorRadius, res)
		return
	}
	emitTorusFromCandidates(t, gen, face.Bounds, ts, res)
}

// emitTorusFromCandidates implements spec.md §4.2's bend case:
// collect every boundary circle at the minor radius, dedupe, and emit
// a Torus when exactly two distinct boundary circles remain.
func emitTorusFromCandidates(t *step.Table, gen *ids.Gen, bounds []int64, ts step.ToroidalSurface, res *Result) {
	boundaries := collectTorusBoundaryCandidates(t, bounds, ts)
	boundaries = dedupeCircles(boundaries)
	if len(boundaries) != 2 {
		return
	}
	a, b := boundaries[0], boundaries[1]
	if a.SameAs(b) {
		return
	}
	tor := geom.Torus{
		ID:            gen.Next(),
		BendCentre:    ts.Placement.Location,
		BendPlaneNorm: ts.Placement.Axis,
		Radial:        ts.Placement.Radial,
		MajorRadius:   ts.MajorRadius,
		MinorRadius:   ts.MinorRadius,
		A:             a,
		B:             b,
	}
	res.Tori = append(res.Tori, tor)
}

// collectTorusBoundaryCandidates gathers every circle whose radius
// equals the minor radius within TOLE, and every closed B-spline
// (seam curve) whose endpoints coincide and whose mid-parameter point
// is 2*minorRadius from either endpoint within TOLE (spec.md §4.2).
func collectTorusBoundaryCandidates(t *step.Table, bounds []int64, ts step.ToroidalSurface) []geom.Circle {
	var out []geom.Circle
	for _, curveID := range faceBoundCurveIDs(t, bounds) {
		e, ok := t.Get(curveID)
		if !ok {
			continue
		}
		switch e.Keyword {
		case "CIRCLE":
			c, ok := t.CircleAt(curveID)
			if !ok || !geom.NearlyEqual(c.Radius, ts.MinorRadius) {
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
			if !ok || len(bs.ControlPoints) < 3 {
				continue
			}
			if c, ok := seamCircleFrom(bs, curveID, ts); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// seamCircleFrom recognizes a closed B-spline seam curve: endpoints
// coincide and the mid-parameter point is 2*minorRadius from them
// (spec.md §4.2). The resulting candidate's centre is the midpoint
// between the endpoint and the diametrically opposite sample.
func seamCircleFrom(bs step.BSplineCurve, curveID int64, ts step.ToroidalSurface) (geom.Circle, bool) {
	pts := bs.ControlPoints
	first, last := pts[0], pts[len(pts)-1]
	if !geom.PointsNearlyEqual(first, last) {
		return geom.Circle{}, false
	}
	mid := sampleControlPolygon(pts, 0.5)
	if !geom.NearlyEqual(first.Distance(mid), 2*ts.MinorRadius) {
		return geom.Circle{}, false
	}
	centre := geom.Pt3(
		(first.X+mid.X)/2,
		(first.Y+mid.Y)/2,
		(first.Z+mid.Z)/2,
	)
	radial := first.Sub(centre)
	if radial.Length() == 0 {
		return geom.Circle{}, false
	}
	return geom.Circle{
		ID:     curveID,
		Radius: ts.MinorRadius,
		Centre: centre,
		Axis:   ts.Placement.Axis,
		Radial: radial.Normalize(),
	}, true
}

// dedupeCircles removes circles that are SameAs an earlier one in the
// list, preserving order of first occurrence.
func dedupeCircles(cs []geom.Circle) []geom.Circle {
	var out []geom.Circle
	for _, c := range cs {
		dup := false
		for _, kept := range out {
			if c.SameAs(kept) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	return out
}

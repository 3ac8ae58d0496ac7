// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/pipeforge/lraclr/geom"
	"github.com/pipeforge/lraclr/internal/ids"
)

// farControlDistance mirrors feature.farControlDistance; kept as its
// own constant here since chain must not import feature (feature
// depends on step, chain does not).
const farControlDistance = 5.0e6

// isOverlapping reports whether other's segment overlaps self's,
// per spec.md §9's resolved reading of the source's ambiguous
// `a0 || b0 && a0 != b0` as `a0 || b0`: either endpoint of the other
// segment lies on self's segment.
func isOverlapping(self, other geom.Cylinder) bool {
	if sameCylinderPos(self, other) {
		return false
	}
	segLen := self.A.Centre.Distance(self.B.Centre)
	a0 := geom.NearlyEqual(self.A.Centre.Distance(other.A.Centre)+self.B.Centre.Distance(other.A.Centre), segLen)
	b0 := geom.NearlyEqual(self.A.Centre.Distance(other.B.Centre)+self.B.Centre.Distance(other.B.Centre), segLen)
	return a0 || b0
}

// mergeOne attempts to merge self and other into a new cylinder,
// per spec.md §4.3 "Merging". Returns ok=false if they are not a
// mergeable pair (different radius group, same cylinder, or neither
// overlapping nor sharing an endpoint).
func mergeOne(self, other geom.Cylinder, gen *ids.Gen) (geom.Cylinder, bool) {
	if self.GroupKey() != other.GroupKey() {
		return geom.Cylinder{}, false
	}
	if sameCylinderPos(self, other) {
		return geom.Cylinder{}, false
	}
	if isOverlapping(self, other) {
		return mergeOverlap(self, other, gen), true
	}
	switch {
	case geom.PointsNearlyEqual(self.A.Centre, other.A.Centre):
		return newMergedCylinder(other.B, self.B, self, gen), true
	case geom.PointsNearlyEqual(self.A.Centre, other.B.Centre):
		return newMergedCylinder(other.A, self.B, self, gen), true
	case geom.PointsNearlyEqual(self.B.Centre, other.A.Centre):
		return newMergedCylinder(self.A, other.B, self, gen), true
	case geom.PointsNearlyEqual(self.B.Centre, other.B.Centre):
		return newMergedCylinder(self.A, other.A, self, gen), true
	default:
		return geom.Cylinder{}, false
	}
}

// newMergedCylinder builds a fresh-id cylinder spanning a to b,
// inheriting the radius group of like.
func newMergedCylinder(a, b geom.Circle, like geom.Cylinder, gen *ids.Gen) geom.Cylinder {
	cy := geom.Cylinder{
		ID:    gen.Next(),
		A:     a,
		B:     b,
		R:     like.R,
		CaTor: ids.None,
		CbTor: ids.None,
	}
	cy.RecomputeHeight()
	return cy
}

// mergeOverlap builds a fresh-id cylinder spanning the two outermost
// endpoints of self and other, sorted by distance from a far control
// point on self's axis (spec.md §4.3 "Merging", overlap case).
func mergeOverlap(self, other geom.Cylinder, gen *ids.Gen) geom.Cylinder {
	axis := self.B.Centre.Sub(self.A.Centre).Normalize()
	control := self.A.Centre.Add(axis.Scale(farControlDistance))

	candidates := []geom.Circle{self.A, self.B, other.A, other.B}
	nearest, farthest := candidates[0], candidates[0]
	nearestD := candidates[0].Centre.Distance(control)
	farthestD := nearestD
	for _, c := range candidates[1:] {
		d := c.Centre.Distance(control)
		if d < nearestD {
			nearestD = d
			nearest = c
		}
		if d > farthestD {
			farthestD = d
			farthest = c
		}
	}
	return newMergedCylinder(nearest, farthest, self, gen)
}

// MergeCylinders runs the merge pass to a fixpoint: repeatedly find a
// mergeable pair, replace both with the merged cylinder, and restart,
// until no further merges occur (spec.md §4.3 "Merging"). Idempotent
// once at a fixpoint (spec.md §8 invariant 6).
func MergeCylinders(cyls []geom.Cylinder, gen *ids.Gen) []geom.Cylinder {
	cur := cloneCylinders(cyls)
	for {
		merged, changed := mergePass(cur, gen)
		if !changed {
			return merged
		}
		cur = merged
	}
}

func mergePass(cyls []geom.Cylinder, gen *ids.Gen) ([]geom.Cylinder, bool) {
	used := make([]bool, len(cyls))
	var out []geom.Cylinder
	changed := false
	for i := range cyls {
		if used[i] {
			continue
		}
		mergedAny := false
		for j := i + 1; j < len(cyls); j++ {
			if used[j] {
				continue
			}
			if m, ok := mergeOne(cyls[i], cyls[j], gen); ok {
				out = append(out, m)
				used[i], used[j] = true, true
				mergedAny = true
				changed = true
				break
			}
		}
		if !mergedAny && !used[i] {
			out = append(out, cyls[i])
		}
	}
	return out, changed
}

// mergeToriOne reports whether a and b share a boundary circle, and
// if so returns the merged torus spanning their two non-shared
// boundary circles (spec.md §4.3 "Tori merging").
func mergeToriOne(a, b geom.Torus, gen *ids.Gen) (geom.Torus, bool) {
	if a.GroupKey() != b.GroupKey() {
		return geom.Torus{}, false
	}
	_, ownFree, otherFree, ok := a.SameBoundaryAs(b)
	if !ok {
		return geom.Torus{}, false
	}
	merged := a
	merged.ID = gen.Next()
	merged.A = ownFree
	merged.B = otherFree
	return merged, true
}

// MergeTori runs the torus merge pass to a fixpoint, analogous to
// MergeCylinders (spec.md §4.3 "Tori merging").
func MergeTori(tors []geom.Torus, gen *ids.Gen) []geom.Torus {
	cur := append([]geom.Torus(nil), tors...)
	for {
		merged, changed := mergeToriPass(cur, gen)
		if !changed {
			return merged
		}
		cur = merged
	}
}

func mergeToriPass(tors []geom.Torus, gen *ids.Gen) ([]geom.Torus, bool) {
	used := make([]bool, len(tors))
	var out []geom.Torus
	changed := false
	for i := range tors {
		if used[i] {
			continue
		}
		mergedAny := false
		for j := i + 1; j < len(tors); j++ {
			if used[j] {
				continue
			}
			if m, ok := mergeToriOne(tors[i], tors[j], gen); ok {
				out = append(out, m)
				used[i], used[j] = true, true
				mergedAny = true
				changed = true
				break
			}
		}
		if !mergedAny && !used[i] {
			out = append(out, tors[i])
		}
	}
	return out, changed
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chain

import "github.com/pipeforge/lraclr/geom"

// sameCylinderPos reports whether a and b are duplicates: matching
// height and radius-group key, and either endpoint-set coincides
// (A<->A, B<->B or A<->B, B<->A) within TOLE (spec.md §4.3
// "Deduplication").
func sameCylinderPos(a, b geom.Cylinder) bool {
	if !geom.NearlyEqual(a.H, b.H) || a.GroupKey() != b.GroupKey() {
		return false
	}
	direct := geom.PointsNearlyEqual(a.A.Centre, b.A.Centre) && geom.PointsNearlyEqual(a.B.Centre, b.B.Centre)
	crossed := geom.PointsNearlyEqual(a.A.Centre, b.B.Centre) && geom.PointsNearlyEqual(a.B.Centre, b.A.Centre)
	return direct || crossed
}

// DedupeCylinders removes cylinders that are duplicates of an
// earlier-kept one, preserving order of first occurrence. Idempotent
// (spec.md §8 invariant 6).
func DedupeCylinders(cyls []geom.Cylinder) []geom.Cylinder {
	var out []geom.Cylinder
	for _, c := range cyls {
		dup := false
		for _, kept := range out {
			if sameCylinderPos(c, kept) {
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

// sameTorusPos reports whether a and b are duplicates: both boundary
// circles coincide, analogous to sameCylinderPos (spec.md §4.3
// "Tori dedupe analogously").
func sameTorusPos(a, b geom.Torus) bool {
	direct := a.A.SameAs(b.A) && a.B.SameAs(b.B)
	crossed := a.A.SameAs(b.B) && a.B.SameAs(b.A)
	return direct || crossed
}

// DedupeTori removes tori that are duplicates of an earlier-kept one.
// Idempotent (spec.md §8 invariant 6).
func DedupeTori(tors []geom.Torus) []geom.Torus {
	var out []geom.Torus
	for _, t := range tors {
		dup := false
		for _, kept := range out {
			if sameTorusPos(t, kept) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, t)
		}
	}
	return out
}

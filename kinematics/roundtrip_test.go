// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinematics

import (
	"testing"

	"github.com/pipeforge/lraclr/lraclr"
	"github.com/stretchr/testify/assert"
)

func sampleRecords() []lraclr.Record {
	return []lraclr.Record{
		{ID1: 0, ID2: 1, L: 100, R: 30, A: 45, Clr: 70.7, Lt: 55.5, PipeRadius: 10},
		{ID1: 1, ID2: 2, L: 150, R: -15, A: 90, Clr: 60, Lt: 94.2, PipeRadius: 10},
		{ID1: 2, ID2: 3, L: 80, PipeRadius: 10},
	}
}

// TestLayoutProducesNonEmptyPolyline checks that replaying a non-empty
// LRACLR stream yields a non-empty centreline that starts at the origin.
func TestLayoutProducesNonEmptyPolyline(t *testing.T) {
	recs := sampleRecords()
	poly, _ := Layout(recs)
	assert.NotEmpty(t, poly)
	assert.Equal(t, poly[0].X, 0.0)
	assert.Equal(t, poly[0].Y, 0.0)
	assert.Equal(t, poly[0].Z, 0.0)
}

// TestReverseIsInvolution is spec.md §8 invariant 5: reversing a
// reversed stream restores the original record-for-record.
func TestReverseIsInvolution(t *testing.T) {
	recs := sampleRecords()
	twice := Reverse(Reverse(recs))
	assert.Len(t, twice, len(recs))
	for i := range recs {
		assert.InDelta(t, recs[i].L, twice[i].L, 1e-9)
		assert.InDelta(t, recs[i].R, twice[i].R, 1e-9)
		assert.InDelta(t, recs[i].A, twice[i].A, 1e-9)
		assert.InDelta(t, recs[i].Clr, twice[i].Clr, 1e-9)
		assert.InDelta(t, recs[i].Lt, twice[i].Lt, 1e-9)
		assert.Equal(t, recs[i].PipeRadius, twice[i].PipeRadius)
	}
}

func TestReversePreservesTotalStraightLength(t *testing.T) {
	recs := sampleRecords()
	rev := Reverse(recs)

	var fwdTotal, revTotal float64
	for _, r := range recs {
		fwdTotal += r.L
	}
	for _, r := range rev {
		revTotal += r.L
	}
	assert.InDelta(t, fwdTotal, revTotal, 1e-9)
}

func TestReverseFlipsSegmentOrder(t *testing.T) {
	recs := sampleRecords()
	rev := Reverse(recs)
	assert.Equal(t, recs[len(recs)-1].L, rev[0].L)
	assert.Equal(t, recs[0].L, rev[len(rev)-1].L)
}

// TestReverseRotationMatchesKnownValue pins a single Reverse call
// against the -(360-r) formula from spec.md §4.6, rather than relying
// only on the involution test (which can't distinguish -(360-r) from
// a plain sign flip, since both are self-inverse under double
// application).
func TestReverseRotationMatchesKnownValue(t *testing.T) {
	recs := sampleRecords()
	rev := Reverse(recs)

	// recs[0].R (30) shifts onto rev[1]; -(360-30) normalizes to +30,
	// not -30.
	assert.InDelta(t, 30.0, rev[1].R, 1e-9)
	// recs[1].R (-15) shifts onto rev[0]; -(360-(-15)) = -375, which
	// normalizes to -15, not +15.
	assert.InDelta(t, -15.0, rev[0].R, 1e-9)
}

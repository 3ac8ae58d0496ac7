// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chain

import (
	"testing"

	"github.com/pipeforge/lraclr/geom"
	"github.com/pipeforge/lraclr/internal/ids"
	"github.com/stretchr/testify/assert"
)

func circleAt(x float64, r float64) geom.Circle {
	return geom.Circle{Radius: r, Centre: geom.Pt3(x, 0, 0), Axis: geom.Forward, Radial: geom.Up}
}

func cylBetween(id int64, xa, xb, r float64) geom.Cylinder {
	cy := geom.Cylinder{ID: id, A: circleAt(xa, r), B: circleAt(xb, r), R: r, CaTor: ids.None, CbTor: ids.None}
	cy.RecomputeHeight()
	return cy
}

func TestMainRadiusGroupPicksLargestHeight(t *testing.T) {
	small := cylBetween(1, 0, 10, 5)
	big1 := cylBetween(2, 0, 100, 10)
	big2 := cylBetween(3, 100, 150, 10)

	out, err := MainRadiusGroup([]geom.Cylinder{small, big1, big2})
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	for _, c := range out {
		assert.Equal(t, int64(10)*int64(geom.DIVIDER), c.GroupKey())
	}
}

func TestMainRadiusGroupEmpty(t *testing.T) {
	_, err := MainRadiusGroup(nil)
	assert.ErrorIs(t, err, geom.ErrMissingGeometry)
}

func TestDedupeCylindersIdempotent(t *testing.T) {
	a := cylBetween(1, 0, 100, 10)
	b := cylBetween(2, 0.002, 100.001, 10)
	out1 := DedupeCylinders([]geom.Cylinder{a, b})
	assert.Len(t, out1, 1)
	out2 := DedupeCylinders(out1)
	assert.Equal(t, out1, out2)
}

func TestMergeCylindersSharedEndpoint(t *testing.T) {
	a := cylBetween(1, 0, 100, 10)
	b := cylBetween(2, 100, 200, 10)
	gen := &ids.Gen{}

	out := MergeCylinders([]geom.Cylinder{a, b}, gen)
	assert.Len(t, out, 1)
	assert.Equal(t, 200.0, out[0].H)
}

func TestMergeCylindersNoFurtherMerge(t *testing.T) {
	a := cylBetween(1, 0, 100, 10)
	b := cylBetween(2, 500, 600, 10)
	gen := &ids.Gen{}

	out := MergeCylinders([]geom.Cylinder{a, b}, gen)
	assert.Len(t, out, 2)
}

func TestLinkNeighbours(t *testing.T) {
	a := cylBetween(1, 0, 100, 10)
	b := cylBetween(2, 100, 200, 10)
	tor := geom.Torus{ID: 99, A: circleAt(100, 10), B: circleAt(100, 10)}

	linked := LinkNeighbours([]geom.Cylinder{a, b}, []geom.Torus{tor})
	assert.Equal(t, int64(99), linked[0].CbTor)
	assert.Equal(t, int64(99), linked[1].CaTor)
	assert.Equal(t, ids.None, linked[0].CaTor)
	assert.Equal(t, ids.None, linked[1].CbTor)
}

func TestOrderSimpleChain(t *testing.T) {
	a := cylBetween(1, 0, 100, 10)
	b := cylBetween(2, 100, 200, 10)
	tor := geom.Torus{ID: 99, A: circleAt(100, 10), B: circleAt(100, 10)}
	linked := LinkNeighbours([]geom.Cylinder{a, b}, []geom.Torus{tor})

	elems, err := Order(linked, []geom.Torus{tor})
	assert.NoError(t, err)
	assert.Len(t, elems, 3)
	assert.True(t, elems[0].IsCylinder())
	assert.True(t, elems[1].IsTorus())
	assert.True(t, elems[2].IsCylinder())
}

func TestOrderTwoCylOneTorSpecialCase(t *testing.T) {
	a := cylBetween(1, 0, 100, 10)
	b := cylBetween(2, 100, 200, 10)
	tor := geom.Torus{ID: 99}

	elems, err := Order([]geom.Cylinder{a, b}, []geom.Torus{tor})
	assert.NoError(t, err)
	assert.Len(t, elems, 3)
}

func TestOrderAmbiguousWhenNotTwoEnds(t *testing.T) {
	a := cylBetween(1, 0, 100, 10)
	a.CaTor, a.CbTor = 5, 6
	b := cylBetween(2, 100, 200, 10)
	b.CaTor, b.CbTor = 7, 8
	c := cylBetween(3, 200, 300, 10)

	_, err := Order([]geom.Cylinder{a, b, c}, nil)
	assert.ErrorIs(t, err, geom.ErrAmbiguousChain)
}

func TestOrientSwapsFirstCylinder(t *testing.T) {
	// First cylinder's B should meet the first torus's A.
	a := cylBetween(1, 100, 0, 10) // reversed: A at 100, B at 0
	tor := geom.Torus{ID: 99, A: circleAt(100, 10), B: circleAt(200, 10)}
	b := cylBetween(2, 200, 300, 10)
	b.CaTor = 99

	elems := []geom.ChainElement{
		geom.NewCylinderElement(a),
		geom.NewTorusElement(tor),
		geom.NewCylinderElement(b),
	}
	oriented := Orient(elems)
	assert.Equal(t, 100.0, oriented[0].Cylinder.B.Centre.X)
}

func TestExtendEndsNoCandidateLeavesUnchanged(t *testing.T) {
	a := cylBetween(1, 0, 100, 10)
	elems := []geom.ChainElement{geom.NewCylinderElement(a)}
	out := ExtendEnds(elems, nil)
	assert.Equal(t, a.A.Centre, out[0].Cylinder.A.Centre)
	assert.Equal(t, a.B.Centre, out[0].Cylinder.B.Centre)
}

func TestExtendEndsAcceptsFarthestCandidate(t *testing.T) {
	a := cylBetween(1, 0, 100, 10)
	caps := []geom.Point3{
		geom.Pt3(-5, 0, 0),
		geom.Pt3(-10, 0, 0),
	}
	out := ExtendEnds([]geom.ChainElement{geom.NewCylinderElement(a)}, caps)
	assert.Equal(t, -10.0, out[0].Cylinder.A.Centre.X)
}

func TestCloneChainIsIndependent(t *testing.T) {
	a := cylBetween(1, 0, 100, 10)
	elems := []geom.ChainElement{geom.NewCylinderElement(a)}
	cloned := CloneChain(elems)
	cloned[0].Cylinder.ID = 999
	assert.Equal(t, int64(1), elems[0].Cylinder.ID)
}

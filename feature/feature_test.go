// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"testing"

	"github.com/pipeforge/lraclr/base/metadata"
	"github.com/pipeforge/lraclr/geom"
	"github.com/pipeforge/lraclr/internal/ids"
	"github.com/pipeforge/lraclr/step"
	"github.com/stretchr/testify/assert"
)

// A single cylindrical face bounded by two end circles 100mm apart,
// radius 10mm, axis along X.
const sampleCylinderStep = `DATA;
#1=CARTESIAN_POINT('',(0.,0.,0.));
#2=DIRECTION('',(1.,0.,0.));
#3=DIRECTION('',(0.,0.,1.));
#4=AXIS2_PLACEMENT_3D('',#1,#2,#3);
#5=CYLINDRICAL_SURFACE('',#4,10.);

#10=CARTESIAN_POINT('',(0.,0.,0.));
#11=AXIS2_PLACEMENT_3D('',#10,#2,#3);
#12=CIRCLE('',#11,10.);
#13=VERTEX_POINT('',#10);
#14=EDGE_CURVE('',#13,#13,#12,.T.);
#15=ORIENTED_EDGE('',*,*,#14,.T.);
#16=EDGE_LOOP('',(#15));
#17=FACE_BOUND('',#16,.T.);

#20=CARTESIAN_POINT('',(100.,0.,0.));
#21=AXIS2_PLACEMENT_3D('',#20,#2,#3);
#22=CIRCLE('',#21,10.);
#23=VERTEX_POINT('',#20);
#24=EDGE_CURVE('',#23,#23,#22,.T.);
#25=ORIENTED_EDGE('',*,*,#24,.T.);
#26=EDGE_LOOP('',(#25));
#27=FACE_BOUND('',#26,.T.);

#30=ADVANCED_FACE('',(#17,#27),#5,.T.);
#31=CLOSED_SHELL('',(#30));
ENDSEC;
`

// A single face whose surface reference (#999) doesn't resolve to any
// known surface entity, per step.SurfaceUnknown.
const unknownSurfaceStep = `DATA;
#10=CARTESIAN_POINT('',(0.,0.,0.));
#2=DIRECTION('',(1.,0.,0.));
#3=DIRECTION('',(0.,0.,1.));
#11=AXIS2_PLACEMENT_3D('',#10,#2,#3);
#12=CIRCLE('',#11,10.);
#13=VERTEX_POINT('',#10);
#14=EDGE_CURVE('',#13,#13,#12,.T.);
#15=ORIENTED_EDGE('',*,*,#14,.T.);
#16=EDGE_LOOP('',(#15));
#17=FACE_BOUND('',#16,.T.);
#30=ADVANCED_FACE('',(#17),#999,.T.);
#31=CLOSED_SHELL('',(#30));
ENDSEC;
`

// TestExtractCountsSkippedFaces asserts the feature package's
// unknown-surface diagnostic: Extract's Result.Meta records how many
// faces were skipped, so a caller doesn't have to scrape logs to
// learn a model has unrecognized geometry.
func TestExtractCountsSkippedFaces(t *testing.T) {
	tbl, err := step.ParseTable(unknownSurfaceStep)
	assert.NoError(t, err)

	res := Extract(tbl, &ids.Gen{})
	n, err := metadata.Get[int](res.Meta, "skippedFaces")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestExtremesByProjection(t *testing.T) {
	control := geom.Pt3(0, 0, 0)
	axis := geom.Forward
	near := geom.Circle{ID: 1, Centre: geom.Pt3(10, 0, 0)}
	far := geom.Circle{ID: 2, Centre: geom.Pt3(100, 0, 0)}
	mid := geom.Circle{ID: 3, Centre: geom.Pt3(50, 0, 0)}

	lo, hi := extremesByProjection([]geom.Circle{mid, far, near}, control, axis)
	assert.Equal(t, int64(1), lo.ID)
	assert.Equal(t, int64(2), hi.ID)
}

func TestSampleControlPolygon(t *testing.T) {
	pts := []geom.Point3{geom.Pt3(0, 0, 0), geom.Pt3(10, 0, 0), geom.Pt3(20, 0, 0)}
	assert.Equal(t, geom.Pt3(0, 0, 0), sampleControlPolygon(pts, 0))
	assert.Equal(t, geom.Pt3(10, 0, 0), sampleControlPolygon(pts, 0.5))
	assert.Equal(t, geom.Pt3(20, 0, 0), sampleControlPolygon(pts, 1))
}

func TestProjectPointToLine(t *testing.T) {
	p := projectPointToLine(geom.Pt3(0, 0, 0), geom.Forward, geom.Pt3(10, 5, 0))
	assert.Equal(t, geom.Pt3(10, 0, 0), p)
}

func TestIsCoplanar(t *testing.T) {
	assert.True(t, isCoplanar(geom.Forward, geom.Forward))
	assert.True(t, isCoplanar(geom.Forward.Negate(), geom.Forward))
	assert.False(t, isCoplanar(geom.Up, geom.Forward))
}

func TestDedupeCircles(t *testing.T) {
	a := geom.Circle{Radius: 5, Centre: geom.Pt3(0, 0, 0), Axis: geom.Forward, Radial: geom.Up}
	b := geom.Circle{Radius: 5.001, Centre: geom.Pt3(0, 0, 0), Axis: geom.Forward, Radial: geom.Up}
	c := geom.Circle{Radius: 8, Centre: geom.Pt3(50, 0, 0), Axis: geom.Forward, Radial: geom.Up}

	deduped := dedupeCircles([]geom.Circle{a, b, c})
	assert.Len(t, deduped, 2)
}

func TestExtractCylinder(t *testing.T) {
	tbl, err := step.ParseTable(sampleCylinderStep)
	assert.NoError(t, err)
	tbl.Scale = 1.0

	gen := &ids.Gen{}
	res := Extract(tbl, gen)

	assert.Len(t, res.Cylinders, 1)
	cy := res.Cylinders[0]
	assert.Equal(t, 10.0, cy.R)
	assert.Equal(t, 100.0, cy.H)
	assert.Equal(t, ids.None, cy.CaTor)
	assert.Equal(t, ids.None, cy.CbTor)
}

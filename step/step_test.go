// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package step

import (
	"testing"

	"github.com/pipeforge/lraclr/base/tolassert"
	"github.com/stretchr/testify/assert"
)

const sampleData = `DATA;
#1=CARTESIAN_POINT('',(0.,0.,0.));
#2=DIRECTION('',(0.,0.,1.));
#3=DIRECTION('',(1.,0.,0.));
#4=AXIS2_PLACEMENT_3D('',#1,#2,#3);
#5=CYLINDRICAL_SURFACE('',#4,10.);
#6=CARTESIAN_POINT('',(5.,5.,5.));
#7=VERTEX_POINT('',#6);
ENDSEC;
`

func newTestTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := ParseTable(sampleData)
	assert.NoError(t, err)
	tbl.Scale = 1.0
	return tbl
}

func TestParseTableBasic(t *testing.T) {
	tbl := newTestTable(t)
	assert.Len(t, tbl.Entities, 7)
	e, ok := tbl.Get(5)
	assert.True(t, ok)
	assert.Equal(t, "CYLINDRICAL_SURFACE", e.Keyword)
}

func TestCartesianPoint(t *testing.T) {
	tbl := newTestTable(t)
	p, ok := tbl.CartesianPoint(6)
	assert.True(t, ok)
	assert.Equal(t, 5.0, p.X)
	assert.Equal(t, 5.0, p.Y)
	assert.Equal(t, 5.0, p.Z)
}

func TestDirectionNormalized(t *testing.T) {
	tbl := newTestTable(t)
	tbl.Scale = 1000 // exercise the "multiply then renormalize" no-op
	d, ok := tbl.Direction(2)
	assert.True(t, ok)
	tolassert.Equal(t, 1, d.Length())
	tolassert.Equal(t, 1, d.Z)
}

func TestAxisPlacement3D(t *testing.T) {
	tbl := newTestTable(t)
	ap, ok := tbl.AxisPlacement3D(4)
	assert.True(t, ok)
	assert.Equal(t, 0.0, ap.Location.X)
	tolassert.Equal(t, 1, ap.Axis.Z)
	tolassert.Equal(t, 1, ap.Radial.X)
}

func TestCylindricalSurfaceAt(t *testing.T) {
	tbl := newTestTable(t)
	cs, ok := tbl.CylindricalSurfaceAt(5)
	assert.True(t, ok)
	assert.Equal(t, 10.0, cs.Radius)
}

func TestVertexPoint(t *testing.T) {
	tbl := newTestTable(t)
	p, ok := tbl.VertexPoint(7)
	assert.True(t, ok)
	assert.Equal(t, 5.0, p.X)
}

func TestGetKeywordMismatch(t *testing.T) {
	tbl := newTestTable(t)
	_, ok := tbl.GetKeyword(1, "DIRECTION")
	assert.False(t, ok)
}

func TestMissingEntityIsAbsentNotFatal(t *testing.T) {
	tbl := newTestTable(t)
	_, ok := tbl.CartesianPoint(999)
	assert.False(t, ok)
}

func TestDetectScale(t *testing.T) {
	assert.Equal(t, 1000.0, DetectScale("FOO(#1,'METRE')CONVERSION_BASED_UNIT(#2)"))
	assert.Equal(t, 25.4, DetectScale("CONVERSION_BASED_UNIT('INCH',#2)"))
	assert.Equal(t, 1.0, DetectScale("CONVERSION_BASED_UNIT('RADIAN',#2)"))
}

func TestDecodeWindows1251(t *testing.T) {
	// 0xC0 in Windows-1251 is Cyrillic А (U+0410).
	out := Decode([]byte{0xC0})
	assert.Equal(t, "А", out)
}

func TestSplitArgsNested(t *testing.T) {
	args := splitArgs("'',#1,(1.,2.,3.),#4")
	assert.Equal(t, []string{"''", "#1", "(1.,2.,3.)", "#4"}, args)
}

func TestTriple(t *testing.T) {
	v, ok := triple("(1.5,-2.,3.25)")
	assert.True(t, ok)
	assert.Equal(t, [3]float64{1.5, -2, 3.25}, v)
}

func TestParseTableMissingData(t *testing.T) {
	_, err := ParseTable("no data section here")
	assert.Error(t, err)
}

func TestClassifySurface(t *testing.T) {
	tbl := newTestTable(t)
	assert.Equal(t, SurfaceCylindrical, tbl.ClassifySurface(5))
	assert.Equal(t, SurfaceUnknown, tbl.ClassifySurface(999))
}

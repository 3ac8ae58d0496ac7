// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh triangulates recovered cylinders and tori into vertex
// and index buffers suitable for a GPU renderer, per spec.md §6
// "Secondary output". It has no dependency on any rendering package;
// it only produces flat buffers.
package mesh

import (
	"math"

	"github.com/pipeforge/lraclr/geom"
)

// DefaultRadialSegments is the ring tessellation used when the caller
// does not need a specific polygon count.
const DefaultRadialSegments = 24

// DefaultBendSegments is the number of rings swept along a torus's
// bend arc.
const DefaultBendSegments = 24

// Buffer is a flat triangulated mesh: per-vertex position and normal,
// held in separate slices of 3 float32s per vertex, plus the source entity id that
// produced each vertex (spec.md §6 vertex stride: position, normal,
// id) and a triangle index list.
type Buffer struct {
	Positions []float32
	Normals   []float32
	IDs       []int64
	Indices   []uint32
}

func (b *Buffer) addVertex(p geom.Point3, n geom.Vector3, id int64) uint32 {
	idx := uint32(len(b.Positions) / 3)
	b.Positions = append(b.Positions, float32(p.X), float32(p.Y), float32(p.Z))
	b.Normals = append(b.Normals, float32(n.X), float32(n.Y), float32(n.Z))
	b.IDs = append(b.IDs, id)
	return idx
}

func (b *Buffer) addTriangle(a, c, d uint32) {
	b.Indices = append(b.Indices, a, c, d)
}

// Append merges o's vertices and indices into b, offsetting o's
// indices past b's existing vertex count.
func (b *Buffer) Append(o Buffer) {
	base := uint32(len(b.Positions) / 3)
	b.Positions = append(b.Positions, o.Positions...)
	b.Normals = append(b.Normals, o.Normals...)
	b.IDs = append(b.IDs, o.IDs...)
	for _, i := range o.Indices {
		b.Indices = append(b.Indices, i+base)
	}
}

// Cylinder triangulates cy's side wall as a ruled surface between its
// A and B end circles, plus the two end caps, following the ring/seam
// layout of a textbook cylinder geometry (radial segments x 2 height
// rings, a fan of triangles per cap).
func Cylinder(cy geom.Cylinder, radialSegments int) Buffer {
	if radialSegments < 3 {
		radialSegments = DefaultRadialSegments
	}
	var buf Buffer

	axis := cy.B.Centre.Sub(cy.A.Centre).Normalize()
	refA := ringBasis(axis)

	ringA := make([]uint32, radialSegments+1)
	ringB := make([]uint32, radialSegments+1)
	for x := 0; x <= radialSegments; x++ {
		u := float64(x) / float64(radialSegments) * 2 * math.Pi
		dir := refA.Scale(math.Cos(u)).Add(axis.Cross(refA).Scale(math.Sin(u)))
		normal := dir.Normalize()

		pa := cy.A.Centre.Add(normal.Scale(cy.R))
		pb := cy.B.Centre.Add(normal.Scale(cy.R))
		ringA[x] = buf.addVertex(pa, normal, cy.ID)
		ringB[x] = buf.addVertex(pb, normal, cy.ID)
	}
	for x := 0; x < radialSegments; x++ {
		a1, a2 := ringA[x], ringA[x+1]
		b1, b2 := ringB[x], ringB[x+1]
		buf.addTriangle(a1, b1, a2)
		buf.addTriangle(b1, b2, a2)
	}

	buf.addCap(cy.A.Centre, axis.Negate(), cy.R, refA, axis, radialSegments, cy.ID)
	buf.addCap(cy.B.Centre, axis, cy.R, refA, axis, radialSegments, cy.ID)

	return buf
}

// addCap fans a disc of radius r centred at centre, facing normal.
func (b *Buffer) addCap(centre geom.Point3, normal geom.Vector3, r float64, refA, axis geom.Vector3, radialSegments int, id int64) {
	centreIdx := b.addVertex(centre, normal, id)
	rim := make([]uint32, radialSegments+1)
	for x := 0; x <= radialSegments; x++ {
		u := float64(x) / float64(radialSegments) * 2 * math.Pi
		dir := refA.Scale(math.Cos(u)).Add(axis.Cross(refA).Scale(math.Sin(u))).Normalize()
		p := centre.Add(dir.Scale(r))
		rim[x] = b.addVertex(p, normal, id)
	}
	for x := 0; x < radialSegments; x++ {
		b.addTriangle(centreIdx, rim[x], rim[x+1])
	}
}

// Torus triangulates t's bend surface as a ring of pipe cross-sections
// swept along the bend arc between its A and B boundary circles.
func Torus(t geom.Torus, tubeSegments, bendSegments int) Buffer {
	if tubeSegments < 3 {
		tubeSegments = DefaultRadialSegments
	}
	if bendSegments < 2 {
		bendSegments = DefaultBendSegments
	}
	var buf Buffer

	totalAngle := t.BendAngle()
	startVec := t.A.Centre.Sub(t.BendCentre)

	rings := make([][]uint32, bendSegments+1)
	for s := 0; s <= bendSegments; s++ {
		frac := float64(s) / float64(bendSegments)
		sweep := totalAngle * frac
		centreOnArc := t.BendCentre.Add(geom.RotateAroundAxis(startVec, t.BendPlaneNorm, sweep))
		binormal := t.BendPlaneNorm.Normalize()
		radial := geom.RotateAroundAxis(startVec.Normalize(), t.BendPlaneNorm, sweep)

		ring := make([]uint32, tubeSegments+1)
		for x := 0; x <= tubeSegments; x++ {
			u := float64(x) / float64(tubeSegments) * 2 * math.Pi
			normal := radial.Scale(math.Cos(u)).Add(binormal.Scale(math.Sin(u))).Normalize()
			p := centreOnArc.Add(normal.Scale(t.MinorRadius))
			ring[x] = buf.addVertex(p, normal, t.ID)
		}
		rings[s] = ring
	}
	for s := 0; s < bendSegments; s++ {
		for x := 0; x < tubeSegments; x++ {
			a1, a2 := rings[s][x], rings[s][x+1]
			b1, b2 := rings[s+1][x], rings[s+1][x+1]
			buf.addTriangle(a1, b1, a2)
			buf.addTriangle(b1, b2, a2)
		}
	}
	return buf
}

// ringBasis returns a unit vector orthogonal to axis, used as the
// zero-angle reference direction when sweeping a ring of vertices
// around axis.
func ringBasis(axis geom.Vector3) geom.Vector3 {
	ref := geom.Up
	if math.Abs(axis.Dot(ref)) > 0.99 {
		ref = geom.Right
	}
	return axis.Cross(ref).Normalize()
}

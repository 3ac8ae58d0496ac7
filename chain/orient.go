// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chain

import "github.com/pipeforge/lraclr/geom"

// ExtraLenCalc and ExtraRCalc are the endpoint-extension search depth
// and radius factors, in units of pipe radius (spec.md §3 constants).
const (
	ExtraLenCalc = 3.0
	ExtraRCalc   = 1.2
)

// Orient reorders endpoint assignments so each cylinder's A end meets
// its predecessor torus's B end (and each torus's A end meets its
// predecessor cylinder's B end), per spec.md §4.4 "Orientation". The
// input is not mutated; a deep copy is oriented and returned.
func Orient(elems []geom.ChainElement) []geom.ChainElement {
	out := CloneChain(elems)
	if len(out) == 0 {
		return out
	}

	first := out[0].Cylinder
	if len(out) > 1 {
		firstTor := out[1].Torus
		if !geom.PointsNearlyEqual(first.B.Centre, firstTor.A.Centre) {
			first.SwapEnds()
		}
	}
	out[0] = geom.NewCylinderElement(first)

	for i := 1; i < len(out); i++ {
		switch {
		case out[i].IsTorus():
			prevCyl := out[i-1].Cylinder
			tor := out[i].Torus
			if !geom.PointsNearlyEqual(tor.A.Centre, prevCyl.B.Centre) {
				tor.SwapBoundary()
			}
			out[i] = geom.NewTorusElement(tor)
		case out[i].IsCylinder():
			prevTor := out[i-1].Torus
			cyl := out[i].Cylinder
			if cyl.A.Centre.Distance(prevTor.B.Centre) > geom.TOLE {
				cyl.SwapEnds()
			}
			if cyl.CaTor != prevTor.ID {
				cyl.CaTor, cyl.CbTor = cyl.CbTor, cyl.CaTor
			}
			cyl.RecomputeHeight()
			out[i] = geom.NewCylinderElement(cyl)
		}
	}
	return out
}

// ExtendEnds scans capPoints (vertices from planar faces, spec.md
// §4.2) and extends the first and last cylinders' free endpoints
// outward to the tangent plane of an adjoining flat end-cap, per
// spec.md §4.4 "Endpoint extension". The input is not mutated.
func ExtendEnds(elems []geom.ChainElement, capPoints []geom.Point3) []geom.ChainElement {
	out := CloneChain(elems)
	if len(out) == 0 {
		return out
	}

	first := out[0].Cylinder
	extendFreeEnd(&first, true, capPoints)
	out[0] = geom.NewCylinderElement(first)

	last := out[len(out)-1].Cylinder
	extendFreeEnd(&last, false, capPoints)
	out[len(out)-1] = geom.NewCylinderElement(last)

	return out
}

// extendFreeEnd extends cyl's A end (atStart) or B end outward,
// per spec.md §4.4. The other end and its axis direction are held
// fixed; only the free endpoint's circle moves.
func extendFreeEnd(cyl *geom.Cylinder, atStart bool, capPoints []geom.Point3) {
	var free geom.Circle
	var outward geom.Vector3
	if atStart {
		free = cyl.A
		outward = cyl.A.Centre.Sub(cyl.B.Centre).Normalize()
	} else {
		free = cyl.B
		outward = cyl.B.Centre.Sub(cyl.A.Centre).Normalize()
	}

	maxDepth := cyl.R * ExtraLenCalc
	maxRadius := cyl.R * ExtraRCalc

	var best geom.Point3
	bestDist := -1.0
	found := false
	for _, p := range capPoints {
		axial := p.Sub(free.Centre).Dot(outward)
		if axial <= 0 || axial >= maxDepth {
			continue
		}
		proj := free.Centre.Add(outward.Scale(axial))
		perp := p.Distance(proj)
		if perp >= maxRadius {
			continue
		}
		if axial > bestDist {
			bestDist = axial
			best = proj
			found = true
		}
	}
	if !found {
		return
	}
	if atStart {
		cyl.A.Centre = best
	} else {
		cyl.B.Centre = best
	}
	cyl.RecomputeHeight()
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lraclr

import (
	"math"

	"github.com/pipeforge/lraclr/geom"
)

// antiparallelEps is the tolerance used to detect the degenerate
// dot == -1 case in the signed-rotation formula (spec.md §9).
const antiparallelEps = 1e-9

// Emit walks an oriented, extended chain (chain.Order -> chain.Orient
// -> chain.ExtendEnds) and produces one Record per straight segment,
// per spec.md §4.5 "LRACLR emission". The chain must start and end
// with a cylinder and alternate cylinder/torus/cylinder/...; any other
// shape is a programmer error in the caller's pipeline wiring.
//
// Two running vectors are carried across bends: prevNorm (the last
// bend-plane normal, used for the dot/det rotation formula) and
// prevForward (the last bend's entry axis, used only by the
// antiparallel-degeneracy check). They are distinct accumulators
// updated independently after every bend, matching cnc.rs's prev /
// prev_fwd.
func Emit(chain []geom.ChainElement) []Record {
	if len(chain) == 0 {
		return nil
	}

	recs := make([]Record, 0, (len(chain)+1)/2)
	var nextID int32

	prevNorm := geom.Up
	prevForward := geom.Forward
	firstBend := true

	for i := 0; i < len(chain); i += 2 {
		cyl := chain[i].Cylinder
		rec := Record{
			ID1:        nextID,
			ID2:        nextID + 1,
			L:          cyl.H,
			PipeRadius: cyl.R,
		}
		nextID++

		if i+1 < len(chain) {
			tor := chain[i+1].Torus
			var angleRad float64
			if firstBend {
				firstBend = false
			} else {
				angleRad = signedRotation(prevNorm, prevForward, tor)
			}
			rec.R = geom.NormalizeRotationDeg(geom.RadToDeg(angleRad))
			rec.A = geom.RadToDeg(tor.BendAngle())
			rec.Clr = tor.MajorRadius
			rec.Lt = tor.BendAngle() * tor.MajorRadius
			prevNorm = tor.BendPlaneNorm
			prevForward = tor.A.Axis.Normalize()
		}

		recs = append(recs, rec)
	}
	return recs
}

// signedRotation computes the signed rotation, in radians, needed to
// carry prevNorm onto the torus's bend-plane normal around the torus's
// entry axis, per spec.md §4.5. It special-cases the antiparallel
// degeneracy (dot == -1) per spec.md §9, using prevForward (the
// previous bend's entry axis) rather than prevNorm to decide it: the
// rotation is forced to zero when prevForward points against the
// torus's exit-boundary axis (their dot product is negative).
func signedRotation(prevNorm, prevForward geom.Vector3, tor geom.Torus) float64 {
	dot := prevNorm.Dot(tor.BendPlaneNorm)
	if math.Abs(dot+1) < antiparallelEps && prevForward.Dot(tor.B.Axis) < 0 {
		return 0
	}
	return geom.SignedAngleAroundAxis(prevNorm, tor.BendPlaneNorm, tor.A.Axis)
}

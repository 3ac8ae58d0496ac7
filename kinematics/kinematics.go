// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kinematics turns an LRACLR operation stream back into 3D
// centreline geometry (spec.md §4.6 "Reverse kinematics"), and
// provides the list-reversal transform used to walk a tube from
// either end (spec.md §4.6 "Chain reversal").
package kinematics

import (
	"github.com/pipeforge/lraclr/geom"
	"github.com/pipeforge/lraclr/lraclr"
)

// bendSamples is the number of line segments used to tessellate each
// bend arc in Layout's returned polyline.
const bendSamples = 16

// Pose is the tool frame at a point along the reconstructed
// centreline: Position plus the forward (pipe axis) and up (roll
// reference) directions.
type Pose struct {
	Position Point3
	Forward  geom.Vector3
	Up       geom.Vector3
}

// Point3 is a re-export of geom.Point3 for callers that only need
// kinematics output, not the full geom API.
type Point3 = geom.Point3

// Layout replays recs starting from the origin with the pipe's initial
// axis along geom.Forward, per spec.md §4.6: each record's rotation R
// rolls the frame about the current forward axis before the straight
// run of length L, and its bend angle A then sweeps the frame through
// an arc of centreline radius Clr. It returns the sampled centreline
// polyline and the final pose.
func Layout(recs []lraclr.Record) ([]Point3, Pose) {
	pose := Pose{Position: geom.Pt3(0, 0, 0), Forward: geom.Forward, Up: geom.Up}
	poly := []Point3{pose.Position}

	for _, r := range recs {
		pose.Up = geom.RotateAroundAxis(pose.Up, pose.Forward, geom.DegToRad(r.R))

		end := pose.Position.Add(pose.Forward.Scale(r.L))
		poly = append(poly, end)
		pose.Position = end

		if r.A == 0 {
			continue
		}

		bendAxis := pose.Forward.Cross(pose.Up).Normalize()
		bendCentre := pose.Position.Add(pose.Up.Scale(r.Clr))
		totalRad := geom.DegToRad(r.A)

		for s := 1; s <= bendSamples; s++ {
			frac := float64(s) / float64(bendSamples)
			radial := pose.Position.Sub(bendCentre)
			rotated := geom.RotateAroundAxis(radial, bendAxis, totalRad*frac)
			poly = append(poly, bendCentre.Add(rotated))
		}

		pose.Forward = geom.RotateAroundAxis(pose.Forward, bendAxis, totalRad)
		pose.Up = geom.RotateAroundAxis(pose.Up, bendAxis, totalRad)
		pose.Position = poly[len(poly)-1]
	}

	return poly, pose
}

// Reverse returns the LRACLR sequence that traces the same physical
// tube from the opposite end, per spec.md §4.6 "Chain reversal": the
// straight lengths and pipe radii stay attached to their own segment,
// but each bend's rotation/angle/radius is shifted to the segment that
// precedes it in the reversed order, with the rotation passed through
// reverseRotation since the roll is now measured against the opposite
// direction of travel.
func Reverse(recs []lraclr.Record) []lraclr.Record {
	n := len(recs)
	out := make([]lraclr.Record, n)
	for i := 0; i < n; i++ {
		src := recs[n-1-i]
		out[i] = lraclr.Record{
			ID1:        src.ID2,
			ID2:        src.ID1,
			L:          src.L,
			PipeRadius: src.PipeRadius,
		}
	}
	for j := 0; j < n-1; j++ {
		src := recs[j]
		dst := n - 2 - j
		out[dst].R = reverseRotation(src.R)
		out[dst].A = src.A
		out[dst].Clr = src.Clr
		out[dst].Lt = src.Lt
	}
	return out
}

// reverseRotation replaces a rotation r with −(360°−r) when non-zero,
// per spec.md §4.6, then renormalizes into the canonical (−180°,180°]
// range: for a typical r in (0,180), this is equivalent to +r, since
// the roll is now read against the opposite direction of travel.
func reverseRotation(r float64) float64 {
	if r == 0 {
		return 0
	}
	return geom.NormalizeRotationDeg(-(360 - r))
}

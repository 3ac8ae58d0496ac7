// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/pipeforge/lraclr/geom"
	"github.com/pipeforge/lraclr/internal/ids"
)

// LinkNeighbours sets each cylinder's CaTor/CbTor to the id of the
// torus whose boundary circle matches that end within TOLE, or
// ids.None if no torus matches (spec.md §4.3 "Neighbour linking").
func LinkNeighbours(cyls []geom.Cylinder, tors []geom.Torus) []geom.Cylinder {
	out := cloneCylinders(cyls)
	for i := range out {
		out[i].CaTor = findTorusAt(out[i].A.Centre, tors)
		out[i].CbTor = findTorusAt(out[i].B.Centre, tors)
		out[i].RecomputeHeight()
	}
	return out
}

// findTorusAt returns the id of the first torus with a boundary
// circle centred within TOLE of p, or ids.None.
func findTorusAt(p geom.Point3, tors []geom.Torus) int64 {
	for _, t := range tors {
		if geom.PointsNearlyEqual(t.A.Centre, p) || geom.PointsNearlyEqual(t.B.Centre, p) {
			return t.ID
		}
	}
	return ids.None
}

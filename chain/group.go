// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chain groups candidate cylinders by radius, deduplicates
// and merges them, links them to their neighbour tori, and orders and
// orients the result into the flat main-pipe chain (spec.md §4.3,
// §4.4).
package chain

import (
	"github.com/pipeforge/lraclr/base/ordmap"
	"github.com/pipeforge/lraclr/geom"
)

// MainRadiusGroup selects the cylinders belonging to the main pipe
// diameter: the radius-group key with the greatest accumulated
// height, ties broken by the larger key value (spec.md §4.3 "Radius
// grouping"). It returns geom.ErrMissingGeometry (which pipeline
// re-exports as pipeline.ErrMissingGeometry) if cyls is empty.
//
// Heights are accumulated in an ordmap.Map, rather than a plain map,
// so the group-key/height breakdown can be walked in first-seen order
// for diagnostics without its iteration order shuffling from run to
// run; the selection rule below is already independent of visiting
// order.
func MainRadiusGroup(cyls []geom.Cylinder) ([]geom.Cylinder, error) {
	if len(cyls) == 0 {
		return nil, geom.ErrMissingGeometry
	}
	heights := ordmap.New[int64, float64]()
	for _, c := range cyls {
		key := c.GroupKey()
		heights.Add(key, heights.ValueByKey(key)+c.H)
	}
	bestKey := cyls[0].GroupKey()
	bestHeight := -1.0
	for _, key := range heights.Keys() {
		h := heights.ValueByKey(key)
		switch {
		case h > bestHeight:
			bestHeight = h
			bestKey = key
		case h == bestHeight && key > bestKey:
			bestKey = key
		}
	}
	var out []geom.Cylinder
	for _, c := range cyls {
		if c.GroupKey() == bestKey {
			out = append(out, c)
		}
	}
	return out, nil
}

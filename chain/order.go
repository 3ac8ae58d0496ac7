// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/pipeforge/lraclr/geom"
	"github.com/pipeforge/lraclr/internal/ids"
)

// openEnds returns every cylinder with at least one missing
// neighbour-torus id (spec.md §3 "Open end").
func openEnds(cyls []geom.Cylinder) []geom.Cylinder {
	var out []geom.Cylinder
	for _, c := range cyls {
		if c.IsOpenEnd(ids.None) {
			out = append(out, c)
		}
	}
	return out
}

// torusByID looks up a torus by id among tors.
func torusByID(id int64, tors []geom.Torus) (geom.Torus, bool) {
	for _, t := range tors {
		if t.ID == id {
			return t, true
		}
	}
	return geom.Torus{}, false
}

// nextCylinder returns the unvisited cylinder in cyls that shares a
// torus id with cur, excluding cur itself and any cylinder that is
// itself a dead-end already both-visited (spec.md §4.3 "Ordering").
func nextCylinder(cur geom.Cylinder, visited map[int64]bool, cyls []geom.Cylinder) (geom.Cylinder, bool) {
	for _, c := range cyls {
		if c.ID == cur.ID || visited[c.ID] {
			continue
		}
		if sharesTorus(c.CaTor, cur) || sharesTorus(c.CbTor, cur) {
			return c, true
		}
	}
	return geom.Cylinder{}, false
}

// sharesTorus reports whether torID (a candidate neighbour's
// CaTor/CbTor) matches either of cur's neighbour-torus ids.
func sharesTorus(torID int64, cur geom.Cylinder) bool {
	return torID != ids.None && (torID == cur.CaTor || torID == cur.CbTor)
}

// Order walks the linked cylinders head-to-tail starting from one of
// the two open ends, interleaving the shared torus between each pair,
// per spec.md §4.3 "Ordering". One cylinder with no torus, and two
// cylinders with one torus, are returned directly without a walk.
// Otherwise it returns geom.ErrAmbiguousChain (which pipeline
// re-exports as pipeline.ErrAmbiguousChain) if the number of open ends
// is not exactly two, if the walk does not reach every cylinder, or if
// a shared torus between consecutive cylinders is not found.
func Order(cyls []geom.Cylinder, tors []geom.Torus) ([]geom.ChainElement, error) {
	if len(cyls) == 1 && len(tors) == 0 {
		return []geom.ChainElement{geom.NewCylinderElement(cyls[0])}, nil
	}
	if len(cyls) == 2 && len(tors) == 1 {
		return []geom.ChainElement{
			geom.NewCylinderElement(cyls[0]),
			geom.NewTorusElement(tors[0]),
			geom.NewCylinderElement(cyls[1]),
		}, nil
	}

	ends := openEnds(cyls)
	if len(ends) != 2 {
		return nil, geom.ErrAmbiguousChain
	}

	visited := map[int64]bool{}
	order := []geom.Cylinder{ends[0]}
	visited[ends[0].ID] = true
	cur := ends[0]
	for {
		next, ok := nextCylinder(cur, visited, cyls)
		if !ok {
			break
		}
		order = append(order, next)
		visited[next.ID] = true
		cur = next
	}
	if len(order) != len(cyls) {
		return nil, geom.ErrAmbiguousChain
	}

	elems := make([]geom.ChainElement, 0, len(order)*2-1)
	elems = append(elems, geom.NewCylinderElement(order[0]))
	for i := 0; i < len(order)-1; i++ {
		torID := sharedTorusID(order[i], order[i+1])
		tor, ok := torusByID(torID, tors)
		if !ok {
			return nil, geom.ErrAmbiguousChain
		}
		elems = append(elems, geom.NewTorusElement(tor))
		elems = append(elems, geom.NewCylinderElement(order[i+1]))
	}
	return elems, nil
}

// sharedTorusID returns the torus id that a and b have in common.
func sharedTorusID(a, b geom.Cylinder) int64 {
	counts := map[int64]int{}
	for _, id := range []int64{a.CaTor, a.CbTor, b.CaTor, b.CbTor} {
		counts[id]++
	}
	for id, n := range counts {
		if n == 2 {
			return id
		}
	}
	return 0
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/jinzhu/copier"
	"github.com/pipeforge/lraclr/geom"
)

// CloneChain deep-copies a chain so the orientation and extension
// passes can mutate their working copy without disturbing the
// pre-merge chain a caller may still be holding (spec.md §9
// "Endpoint reversals").
func CloneChain(chain []geom.ChainElement) []geom.ChainElement {
	out := make([]geom.ChainElement, len(chain))
	if err := copier.Copy(&out, &chain); err != nil {
		// ChainElement has no unexported fields, slices, or maps that
		// copier could fail on; this path is unreachable in practice.
		copy(out, chain)
	}
	return out
}

// cloneCylinders deep-copies a cylinder slice, used before a merge
// pass mutates neighbour ids in place.
func cloneCylinders(cyls []geom.Cylinder) []geom.Cylinder {
	out := make([]geom.Cylinder, len(cyls))
	if err := copier.Copy(&out, &cyls); err != nil {
		copy(out, cyls)
	}
	return out
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ids generates stable 64-bit identities for chain elements.
// Identity is opaque and reuse-safe: equality of geometric elements is
// established by value, within tolerance, never by id (spec.md §9
// "Identity without references").
package ids

import "github.com/pipeforge/lraclr/base/atomiccounter"

// None is the sentinel id meaning "no such element", used for a
// cylinder's ca_tor/cb_tor fields when it has no neighbour torus on
// that end.
const None int64 = 0

// Gen is a monotonically increasing id generator. The zero value is
// ready to use and starts handing out ids at 1, so that 0 remains
// available as [None].
type Gen struct {
	counter atomiccounter.Counter
}

// Next returns the next unused id.
func (g *Gen) Next() int64 {
	return g.counter.Inc()
}

// Global is a package-level generator. No package in this module uses
// it: pipeline.Run starts one fresh [Gen] per run and shares it between
// the feature extractor and the chain builder.
var Global Gen

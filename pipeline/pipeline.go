// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"github.com/pipeforge/lraclr/base/metadata"
	"github.com/pipeforge/lraclr/chain"
	"github.com/pipeforge/lraclr/feature"
	"github.com/pipeforge/lraclr/geom"
	"github.com/pipeforge/lraclr/internal/ids"
	"github.com/pipeforge/lraclr/lraclr"
	"github.com/pipeforge/lraclr/step"
)

// Result is everything Run recovers from one STEP model: the final
// LRACLR operation stream, plus the oriented chain it was derived
// from (for kinematics replay or mesh export), plus extraction
// diagnostics (see feature.Result.Meta).
type Result struct {
	Records []lraclr.Record
	Chain   []geom.ChainElement
	Meta    metadata.Data
}

// Run executes the full STEP-to-LRACLR recovery (spec.md §1): parse
// the STEP exchange structure, extract candidate pipe geometry, build
// and orient the single main pipe chain, and emit its LRACLR
// operations. Errors are one of ErrParse, ErrMissingGeometry, or
// ErrAmbiguousChain, per spec.md §7.
func Run(raw []byte) (Result, error) {
	table, err := step.Parse(raw)
	if err != nil {
		return Result{}, ErrParse
	}

	gen := &ids.Gen{}
	extracted := feature.Extract(table, gen)

	cyls, err := chain.MainRadiusGroup(extracted.Cylinders)
	if err != nil {
		return Result{}, err
	}
	cyls = chain.DedupeCylinders(cyls)
	cyls = chain.MergeCylinders(cyls, gen)

	tors := chain.DedupeTori(extracted.Tori)
	tors = chain.MergeTori(tors, gen)

	linked := chain.LinkNeighbours(cyls, tors)

	ordered, err := chain.Order(linked, tors)
	if err != nil {
		return Result{}, err
	}

	oriented := chain.Orient(ordered)
	extended := chain.ExtendEnds(oriented, extracted.CapPoints)

	recs := lraclr.Emit(extended)
	return Result{Records: recs, Chain: extended, Meta: extracted.Meta}, nil
}

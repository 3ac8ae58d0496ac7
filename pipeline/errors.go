// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipeline wires the STEP table reader, feature extractor,
// chain builder, and LRACLR emitter into the single STEP-to-LRACLR
// operation (spec.md §1), and declares the sentinel errors a caller
// can test against with errors.Is (spec.md §7).
package pipeline

import (
	"errors"

	"github.com/pipeforge/lraclr/geom"
)

// ErrParse means the input was not a well-formed STEP exchange
// structure. The pipeline fails the whole run.
var ErrParse = errors.New("pipeline: malformed STEP syntax")

// ErrMissingGeometry means no cylinders were found at all, or no
// radius group could be selected. chain returns this directly as
// geom.ErrMissingGeometry (chain cannot import pipeline without
// creating an import cycle); pipeline re-exports it under this name
// so callers can keep testing with errors.Is(err, pipeline.ErrMissingGeometry).
var ErrMissingGeometry = geom.ErrMissingGeometry

// ErrAmbiguousChain means the number of open-ended cylinders was not
// exactly two, or a bend cycle was detected. Re-exported from
// geom.ErrAmbiguousChain for the same reason as ErrMissingGeometry
// above.
var ErrAmbiguousChain = geom.ErrAmbiguousChain

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "errors"

// ErrMissingGeometry means no cylinders were found at all, or no
// radius group could be selected (spec.md §7). chain returns it
// directly; pipeline re-exports it so callers can keep testing
// against pipeline.ErrMissingGeometry with errors.Is.
var ErrMissingGeometry = errors.New("geom: no pipe geometry found")

// ErrAmbiguousChain means the number of open-ended cylinders was not
// exactly two, or a bend cycle was detected (spec.md §7). chain
// returns it directly; pipeline re-exports it under the same name.
var ErrAmbiguousChain = errors.New("geom: chain is not a simple head-to-tail run")

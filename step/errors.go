// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package step

import "errors"

// ErrParse is wrapped by every malformed-syntax error this package
// returns (spec.md §7 "Parse").
var ErrParse = errors.New("step: malformed STEP syntax")

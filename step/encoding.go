// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package step

import (
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/pipeforge/lraclr/base/stringsx"
)

// Decode re-interprets raw as Windows-1251 text, producing UTF-8,
// then returns it as a string. Malformed bytes are replaced rather
// than rejected, per spec.md §4.1 "Encoding". CRLF line endings (common
// in STEP exchange files written on Windows CAD workstations) are
// normalized to LF so later statement splitting never has to care.
func Decode(raw []byte) string {
	out, err := charmap.Windows1251.NewDecoder().Bytes(raw)
	var decoded string
	if err != nil {
		// charmap.Windows1251 has no undefined code points, so this
		// path is unreachable in practice; fall back to the raw bytes
		// reinterpreted as UTF-8 with replacement, matching the
		// "malformed bytes are replaced" contract.
		decoded = strings.ToValidUTF8(string(raw), "�")
	} else {
		decoded = string(out)
	}
	return strings.Join(stringsx.SplitLines(decoded), "\n")
}

// DetectScale scans decoded STEP text for a CONVERSION_BASED_UNIT
// line and returns the unit scale factor: 1000 for metre, 25.4 for
// inch, 1.0 otherwise (spec.md §4.1 "Unit scaling").
func DetectScale(src string) float64 {
	scale := 1.0
	for _, line := range strings.Split(src, ";") {
		if !strings.Contains(line, "CONVERSION_BASED_UNIT") {
			continue
		}
		upper := strings.ToUpper(line)
		switch {
		case strings.Contains(upper, "'METRE'"):
			scale = 1000.0
		case strings.Contains(upper, "'INCH'"):
			scale = 25.4
		}
	}
	return scale
}

// Parse decodes raw STEP bytes and builds a scaled Table in one step:
// Windows-1251 decode, unit-scale detection, then entity parsing.
func Parse(raw []byte) (*Table, error) {
	src := Decode(raw)
	t, err := ParseTable(src)
	if err != nil {
		return nil, err
	}
	t.Scale = DetectScale(src)
	return t, nil
}

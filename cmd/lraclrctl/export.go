// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/pipeforge/lraclr/base/iox/jsonx"
	"github.com/pipeforge/lraclr/base/iox/tomlx"
	"github.com/pipeforge/lraclr/base/iox/xmlx"
	"github.com/pipeforge/lraclr/base/iox/yamlx"
	"github.com/pipeforge/lraclr/lraclr"
)

// lraclrExport is the on-disk shape of an LRACLR export: the record
// list plus the flattened int32 array form (spec.md §6 "Primary
// output" / SPEC_FULL.md §4 "ToArray/FromArray").
type lraclrExport struct {
	Records []lraclr.Record `json:"records" toml:"records" yaml:"records" xml:"record"`
	Array   []int32         `json:"array" toml:"array" yaml:"array" xml:"array"`
}

// exportRecords writes recs to path in the given format: "json",
// "toml", "yaml", or "xml".
func exportRecords(recs []lraclr.Record, format, path string) error {
	export := lraclrExport{Records: recs, Array: lraclr.ToArray(recs)}
	switch format {
	case "json":
		return jsonx.Save(&export, path)
	case "toml":
		return tomlx.Save(&export, path)
	case "yaml":
		return yamlx.Save(&export, path)
	case "xml":
		return xmlx.Save(&export, path)
	default:
		return fmt.Errorf("lraclrctl: unsupported export format %q", format)
	}
}

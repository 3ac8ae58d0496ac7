// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package harness holds the batch CLI's configuration type and its
// load/save helpers (SPEC_FULL.md §2 "Configuration").
package harness

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pipeforge/lraclr/base/iox/tomlx"
	"github.com/pipeforge/lraclr/base/iox/yamlx"
	"github.com/pipeforge/lraclr/base/option"
)

// Config is the batch harness's on-disk configuration: where to read
// STEP models from, where to write LRACLR exports, and two override
// values that are stored with the configuration.
type Config struct {
	// InputPath is a single STEP file, or InputDir is a directory to
	// watch for new STEP files (mutually exclusive; InputDir wins if
	// both are set).
	InputPath string `toml:"input_path" yaml:"input_path"`
	InputDir  string `toml:"input_dir" yaml:"input_dir"`

	// OutputDir is where LRACLR exports are written. Mesh buffers are
	// not exported.
	OutputDir string `toml:"output_dir" yaml:"output_dir"`

	// Format is the export format: "json", "toml", "yaml", or "xml".
	Format string `toml:"format" yaml:"format"`

	// ToleranceOverride is a tolerance value loaded and saved with the
	// config; lraclrctl does not apply it, and geom.TOLE stays in force.
	// It is an option.Option rather than a plain float64 so an explicit
	// override of 0 can be told apart from "not configured".
	ToleranceOverride option.Option[float64] `toml:"tolerance_override" yaml:"tolerance_override"`

	// UnitScaleOverride is a unit scale loaded and saved with the
	// config; lraclrctl does not apply it, and the STEP file's detected
	// unit scale stays in force. Same Option rationale as
	// ToleranceOverride.
	UnitScaleOverride option.Option[float64] `toml:"unit_scale_override" yaml:"unit_scale_override"`

	// ClearOutputDir, if true, empties OutputDir (via the trash, see
	// base/fileinfo.Delete) before each batch run.
	ClearOutputDir bool `toml:"clear_output_dir" yaml:"clear_output_dir"`
}

// Default returns the harness's baseline configuration.
func Default() Config {
	return Config{
		OutputDir: "./out",
		Format:    "json",
	}
}

// Load reads a Config from filename, dispatching on its extension:
// .toml via base/iox/tomlx (the primary format), .yaml/.yml via
// base/iox/yamlx (the alternate format).
func Load(filename string) (Config, error) {
	cfg := Default()
	ext := strings.ToLower(filepath.Ext(filename))
	var err error
	switch ext {
	case ".yaml", ".yml":
		err = yamlx.Open(&cfg, filename)
	case ".toml", "":
		err = tomlx.Open(&cfg, filename)
	default:
		return cfg, fmt.Errorf("harness: unsupported config extension %q", ext)
	}
	return cfg, err
}

// Save writes cfg to filename, in the format implied by its extension.
func Save(cfg Config, filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".yaml", ".yml":
		return yamlx.Save(&cfg, filename)
	case ".toml", "":
		return tomlx.Save(&cfg, filename)
	default:
		return fmt.Errorf("harness: unsupported config extension %q", ext)
	}
}

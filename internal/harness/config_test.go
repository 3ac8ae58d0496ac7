// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harness

import (
	"path/filepath"
	"testing"

	"github.com/pipeforge/lraclr/base/option"
	"github.com/stretchr/testify/assert"
)

func TestConfigTomlRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "harness.toml")

	cfg := Default()
	cfg.InputDir = "/data/step"
	cfg.Format = "yaml"
	cfg.ToleranceOverride = *option.New(0.05)

	assert.NoError(t, Save(cfg, path))
	loaded, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfigYamlRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "harness.yaml")

	cfg := Default()
	cfg.OutputDir = "/tmp/export"
	cfg.ClearOutputDir = true

	assert.NoError(t, Save(cfg, path))
	loaded, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfigUnsupportedExtension(t *testing.T) {
	_, err := Load("config.ini")
	assert.Error(t, err)
}

// TestConfigExplicitZeroOverrideSurvivesRoundTrip pins the reason
// ToleranceOverride is an option.Option rather than a plain float64:
// an explicit override of 0 must round-trip as "set to 0", distinct
// from a config file that never mentions the key at all.
func TestConfigExplicitZeroOverrideSurvivesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "harness.toml")

	cfg := Default()
	cfg.ToleranceOverride = *option.New(0.0)
	assert.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	assert.NoError(t, err)
	assert.True(t, loaded.ToleranceOverride.Valid)
	assert.Equal(t, 0.0, loaded.ToleranceOverride.Value)
	assert.False(t, loaded.UnitScaleOverride.Valid)
}

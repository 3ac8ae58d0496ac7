// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lraclrctl is the batch harness for the tube-bend recovery
// pipeline: it converts one STEP file, or every STEP file dropped into
// a watched directory, into an LRACLR export (spec.md §6 "a batch
// harness", SPEC_FULL.md §4 "Harness-level directory batch mode").
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/pipeforge/lraclr/base/errors"
	"github.com/pipeforge/lraclr/base/fileinfo"
	"github.com/pipeforge/lraclr/base/timer"
	"github.com/pipeforge/lraclr/internal/harness"
	"github.com/pipeforge/lraclr/pipeline"
)

// runTimer accumulates wall-clock time across every processFile call in
// this process, so a batch run over a watched directory can report an
// average per-file recovery time alongside each individual duration.
var runTimer timer.Time

func main() {
	configPath := flag.String("config", "", "path to a harness TOML/YAML config file")
	input := flag.String("input", "", "path to a single STEP file (overrides config input_path)")
	watch := flag.String("watch", "", "directory to watch for STEP files (overrides config input_dir)")
	output := flag.String("output", "", "export directory (overrides config output_dir)")
	format := flag.String("format", "", "export format: json, toml, yaml, xml (overrides config format)")
	flag.Parse()

	cfg := harness.Default()
	if *configPath != "" {
		loaded, err := harness.Load(*configPath)
		if err != nil {
			slog.Error("lraclrctl: failed to load config", "path", *configPath, "err", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *input != "" {
		cfg.InputPath = *input
	}
	if *watch != "" {
		cfg.InputDir = *watch
	}
	if *output != "" {
		cfg.OutputDir = *output
	}
	if *format != "" {
		cfg.Format = *format
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		slog.Error("lraclrctl: failed to create output directory", "dir", cfg.OutputDir, "err", err)
		os.Exit(1)
	}
	if cfg.ClearOutputDir {
		clearDir(cfg.OutputDir)
	}

	switch {
	case cfg.InputDir != "":
		runWatch(cfg)
	case cfg.InputPath != "":
		if err := processFile(cfg, cfg.InputPath); err != nil {
			slog.Error("lraclrctl: processing failed", "file", cfg.InputPath, "err", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "lraclrctl: one of -input or -watch (or config input_path/input_dir) is required")
		os.Exit(2)
	}
}

// clearDir empties dir by trashing every entry in it, per
// base/fileinfo.Delete, so stale exports from a previous run don't
// linger alongside fresh ones.
func clearDir(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		fi := errors.Log1(fileinfo.NewFileInfo(filepath.Join(dir, e.Name())))
		if fi == nil {
			continue
		}
		errors.Log(fi.Delete())
	}
}

// runWatch processes every STEP file already in cfg.InputDir, then
// blocks watching for new ones, per SPEC_FULL.md §4 "Harness-level
// directory batch mode".
func runWatch(cfg harness.Config) {
	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		slog.Error("lraclrctl: failed to read input directory", "dir", cfg.InputDir, "err", err)
		os.Exit(1)
	}
	for _, e := range entries {
		path := filepath.Join(cfg.InputDir, e.Name())
		if !isStepFile(path) {
			continue
		}
		if err := processFile(cfg, path); err != nil {
			slog.Error("lraclrctl: processing failed", "file", path, "err", err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("lraclrctl: failed to start watcher", "err", err)
		os.Exit(1)
	}
	defer watcher.Close()

	if err := watcher.Add(cfg.InputDir); err != nil {
		slog.Error("lraclrctl: failed to watch directory", "dir", cfg.InputDir, "err", err)
		os.Exit(1)
	}

	slog.Info("lraclrctl: watching for STEP files", "dir", cfg.InputDir)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !isStepFile(event.Name) {
				continue
			}
			if err := processFile(cfg, event.Name); err != nil {
				slog.Error("lraclrctl: processing failed", "file", event.Name, "err", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("lraclrctl: watcher error", "err", err)
		}
	}
}

func isStepFile(path string) bool {
	return fileinfo.KnownFromExt(path) == fileinfo.StepModel
}

// processFile runs the recovery pipeline on path and writes its
// LRACLR export to cfg.OutputDir.
func processFile(cfg harness.Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	runTimer.Start()
	result, err := pipeline.Run(raw)
	elapsed := runTimer.Stop()
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(cfg.OutputDir, base+"."+cfg.Format)
	if err := exportRecords(result.Records, cfg.Format, outPath); err != nil {
		return err
	}
	slog.Info("lraclrctl: exported", "input", path, "output", outPath, "records", len(result.Records),
		"took", elapsed, "avg", runTimer.Avg())
	return nil
}

// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fileinfo manages file information for the artifacts the
// batch harness reads and writes: STEP inputs, LRACLR exports, mesh
// exports, and harness config files.
package fileinfo

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Bios-Marcel/wastebasket/v2"

	"github.com/pipeforge/lraclr/base/datasize"
)

// Known is the set of file kinds the harness distinguishes.
type Known int32

const (
	Unknown Known = iota
	StepModel
	LRACLRExport
	MeshExport
	HarnessConfig
)

//go:generate stringer -type=Known

func (k Known) String() string {
	switch k {
	case StepModel:
		return "StepModel"
	case LRACLRExport:
		return "LRACLRExport"
	case MeshExport:
		return "MeshExport"
	case HarnessConfig:
		return "HarnessConfig"
	default:
		return "Unknown"
	}
}

// knownExts maps a lowercased file extension to the [Known] kind it implies.
var knownExts = map[string]Known{
	".step":  StepModel,
	".stp":   StepModel,
	".p21":   StepModel,
	".lraclr": LRACLRExport,
	".lra":    LRACLRExport,
	".mesh":   MeshExport,
	".obj":    MeshExport,
	".toml":   HarnessConfig,
	".yaml":   HarnessConfig,
	".yml":    HarnessConfig,
}

// KnownFromExt classifies a file by its extension.
func KnownFromExt(name string) Known {
	ext := strings.ToLower(filepath.Ext(name))
	if k, ok := knownExts[ext]; ok {
		return k
	}
	return Unknown
}

// FileInfo describes a file on disk relevant to the pipeline: an input
// STEP model, a harness config, or an exported LRACLR/mesh artifact.
type FileInfo struct {
	// Name is the base name of the file, without any path.
	Name string

	// Size is the size of the file on disk.
	Size datasize.Size

	// Known is the kind of artifact this file represents.
	Known Known

	// ModTime is the time the file contents were last modified.
	ModTime time.Time

	// Path is the full path to the file, including name.
	Path string

	// IsDirectory reports whether Path refers to a directory.
	IsDirectory bool
}

// NewFileInfo returns a new FileInfo for the given file, classifying
// it from its extension and, if it exists, its on-disk stat.
func NewFileInfo(fname string) (*FileInfo, error) {
	fi := &FileInfo{}
	err := fi.InitFile(fname)
	return fi, err
}

// InitFile initializes fi from fname, resolved to an absolute path.
// The FileInfo is populated from the name even if the file does not
// exist; any stat error is returned.
func (fi *FileInfo) InitFile(fname string) error {
	fi.Known = KnownFromExt(fname)
	abs, err := filepath.Abs(fname)
	if err == nil {
		fi.Path = abs
	} else {
		fi.Path = fname
	}
	_, fi.Name = filepath.Split(fi.Path)
	info, statErr := os.Stat(fi.Path)
	if statErr != nil {
		return statErr
	}
	fi.Size = datasize.Size(info.Size())
	fi.ModTime = info.ModTime()
	fi.IsDirectory = info.IsDir()
	return nil
}

// IsHidden reports whether the file name starts with . or _, the
// usual convention for files a directory scan should skip.
func (fi *FileInfo) IsHidden() bool {
	return fi.Name == "" || fi.Name[0] == '.' || fi.Name[0] == '_'
}

// Delete moves the file to the trash / recycling bin, falling back to
// permanent removal on platforms without one. Used by the batch
// harness to clear stale export directories between runs.
func (fi *FileInfo) Delete() error {
	err := wastebasket.Trash(fi.Path)
	if errors.Is(err, wastebasket.ErrPlatformNotSupported) {
		return os.RemoveAll(fi.Path)
	}
	return err
}

// Duplicate creates a copy of fi next to the original, returning the
// new path. Only works for regular files.
func (fi *FileInfo) Duplicate() (string, error) {
	if fi.IsDirectory {
		err := fmt.Errorf("fileinfo: cannot duplicate directory: %v", fi.Path)
		log.Println(err)
		return "", err
	}
	ext := filepath.Ext(fi.Path)
	noext := strings.TrimSuffix(fi.Path, ext)
	dst := noext + "_copy" + ext
	cpcnt := 0
	for {
		if _, err := os.Stat(dst); !os.IsNotExist(err) {
			cpcnt++
			dst = fmt.Sprintf("%s_copy%d%s", noext, cpcnt, ext)
			continue
		}
		break
	}
	return dst, CopyFile(dst, fi.Path, 0o644)
}

// CopyFile copies the contents from src to dst atomically, creating
// dst with permissions perm if it does not exist. If the copy fails,
// dst is left untouched.
func CopyFile(dst, src string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	tmp, err := os.CreateTemp(filepath.Dir(dst), "")
	if err != nil {
		return err
	}
	_, err = io.Copy(tmp, in)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

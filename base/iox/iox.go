// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox provides format-agnostic helpers for reading and writing
// Go values to and from files, filesystems, and streams. Format-specific
// packages (jsonx, tomlx, yamlx, xmlx) supply a [Decoder] / [Encoder]
// constructor and otherwise reuse the plumbing here.
package iox

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Decoder is the interface implemented by format-specific decoders
// (e.g., [encoding/json.Decoder], [encoding/xml.Decoder]).
type Decoder interface {
	Decode(v any) error
}

// Encoder is the interface implemented by format-specific encoders
// (e.g., [encoding/json.Encoder], [encoding/xml.Encoder]).
type Encoder interface {
	Encode(v any) error
}

// DecoderFunc returns a new [Decoder] reading from the given reader.
type DecoderFunc func(r io.Reader) Decoder

// EncoderFunc returns a new [Encoder] writing to the given writer.
type EncoderFunc func(w io.Writer) Encoder

// NewDecoderFunc adapts a constructor returning a concrete decoder type
// (such as json.NewDecoder) into a [DecoderFunc].
func NewDecoderFunc[T Decoder](f func(r io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return f(r) }
}

// NewEncoderFunc adapts a constructor returning a concrete encoder type
// (such as json.NewEncoder) into an [EncoderFunc].
func NewEncoderFunc[T Encoder](f func(w io.Writer) T) EncoderFunc {
	return func(w io.Writer) Encoder { return f(w) }
}

// Open reads v from filename using the decoder built by newDec.
func Open(v any, filename string, newDec DecoderFunc) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Read(v, f, newDec)
}

// OpenFiles reads v successively from each of filenames, so that later
// files overwrite fields set by earlier ones.
func OpenFiles(v any, filenames []string, newDec DecoderFunc) error {
	for _, fn := range filenames {
		if err := Open(v, fn, newDec); err != nil {
			return err
		}
	}
	return nil
}

// OpenFS is like [Open] but reads from fsys instead of the OS filesystem.
func OpenFS(v any, fsys fs.FS, filename string, newDec DecoderFunc) error {
	f, err := fsys.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Read(v, f, newDec)
}

// OpenFilesFS is like [OpenFiles] but reads from fsys instead of the OS filesystem.
func OpenFilesFS(v any, fsys fs.FS, filenames []string, newDec DecoderFunc) error {
	for _, fn := range filenames {
		if err := OpenFS(v, fsys, fn, newDec); err != nil {
			return err
		}
	}
	return nil
}

// Read reads v from reader using the decoder built by newDec.
func Read(v any, reader io.Reader, newDec DecoderFunc) error {
	return newDec(reader).Decode(v)
}

// ReadBytes reads v from data using the decoder built by newDec.
func ReadBytes(v any, data []byte, newDec DecoderFunc) error {
	return Read(v, bytes.NewReader(data), newDec)
}

// Save writes v to filename using the encoder built by newEnc.
func Save(v any, filename string, newEnc EncoderFunc) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(v, f, newEnc)
}

// Write writes v to writer using the encoder built by newEnc.
func Write(v any, writer io.Writer, newEnc EncoderFunc) error {
	return newEnc(writer).Encode(v)
}

// WriteBytes encodes v using the encoder built by newEnc and returns the bytes.
func WriteBytes(v any, newEnc EncoderFunc) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(v, &buf, newEnc); err != nil {
		return nil, fmt.Errorf("iox: write: %w", err)
	}
	return buf.Bytes(), nil
}

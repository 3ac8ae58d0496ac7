// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lraclr emits the CNC tube-bender operation sequence from an
// oriented pipe chain (spec.md §4.5), and provides the array
// flattening used at the WASM/export boundary (spec.md §6).
package lraclr

import "math"

// Record is one emitted LRACLR operation: Length, Rotation, Angle,
// centerline-bend-Radius, plus the originating cylinder's pipe radius
// (spec.md §3 "LRACLR record").
type Record struct {
	ID1 int32
	ID2 int32

	// L is the straight-segment length.
	L float64
	// Lt is the arc length of the following bend.
	Lt float64
	// R is the signed rotation about the pipe axis, normalized to
	// (-180, 180].
	R float64
	// A is the bend angle at the torus, in degrees, positive.
	A float64
	// Clr is the centerline bend radius.
	Clr float64
	// PipeRadius is carried from the originating cylinder.
	PipeRadius float64
}

// arrayStride is the number of int32 slots ToArray emits per record
// (spec.md §6 "Primary output").
const arrayStride = 8

// ToArray flattens recs into the auxiliary wire format: each record
// becomes 8 signed 32-bit integers, lengths scaled by 1000 so 3
// decimals are retained (spec.md §6).
func ToArray(recs []Record) []int32 {
	out := make([]int32, 0, len(recs)*arrayStride)
	for _, r := range recs {
		out = append(out,
			r.ID1, r.ID2,
			scaleTo1000(r.L), scaleTo1000(r.Lt),
			scaleTo1000(r.R), scaleTo1000(r.A),
			scaleTo1000(r.Clr), scaleTo1000(r.PipeRadius),
		)
	}
	return out
}

// FromArray is the inverse of ToArray.
func FromArray(arr []int32) []Record {
	n := len(arr) / arrayStride
	out := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		base := i * arrayStride
		out = append(out, Record{
			ID1:        arr[base],
			ID2:        arr[base+1],
			L:          unscaleFrom1000(arr[base+2]),
			Lt:         unscaleFrom1000(arr[base+3]),
			R:          unscaleFrom1000(arr[base+4]),
			A:          unscaleFrom1000(arr[base+5]),
			Clr:        unscaleFrom1000(arr[base+6]),
			PipeRadius: unscaleFrom1000(arr[base+7]),
		})
	}
	return out
}

func scaleTo1000(v float64) int32 {
	return int32(math.Round(roundTo(v, 3) * 1000))
}

func unscaleFrom1000(v int32) float64 {
	return float64(v) / 1000
}

// roundTo rounds v to n decimal places, matching the source's
// round_by_dec helper used before the x1000 integer scale.
func roundTo(v float64, n int) float64 {
	p := math.Pow(10, float64(n))
	return math.Round(v*p) / p
}

// TotalLength returns the total pipe length (straight runs plus bend
// arcs) and the pipe's outer radius, per spec.md §6's auxiliary
// total_len_out_d helper.
func TotalLength(recs []Record) (total, pipeRadius float64) {
	for _, r := range recs {
		total += r.L + r.Lt
		pipeRadius = r.PipeRadius
	}
	return total, pipeRadius
}

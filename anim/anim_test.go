// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"

	"github.com/pipeforge/lraclr/lraclr"
	"github.com/stretchr/testify/assert"
)

func sampleRecords() []lraclr.Record {
	return []lraclr.Record{
		{ID1: 0, ID2: 1, L: 100, R: 30, A: 90, Clr: 50, Lt: 78.5, PipeRadius: 10},
		{ID1: 1, ID2: 2, L: 80, PipeRadius: 10},
	}
}

func TestDriverRunsToCompletion(t *testing.T) {
	d := NewDriver(sampleRecords(), 100, 90)
	var last Frame
	for i := 0; i < 1000 && !d.Done(); i++ {
		last = d.Step(0.05)
	}
	assert.True(t, d.Done())
	assert.Equal(t, OpDone, last.Opcode)
}

func TestDriverVisitsEveryOpcode(t *testing.T) {
	d := NewDriver(sampleRecords(), 100, 90)
	seen := map[Opcode]bool{}
	for i := 0; i < 1000 && !d.Done(); i++ {
		f := d.Step(0.01)
		seen[f.Opcode] = true
	}
	assert.True(t, seen[OpRotate])
	assert.True(t, seen[OpStraight])
	assert.True(t, seen[OpBend])
}

func TestDriverStaysDoneAfterExhaustion(t *testing.T) {
	d := NewDriver(sampleRecords(), 1000, 1000)
	for i := 0; i < 100 && !d.Done(); i++ {
		d.Step(1)
	}
	first := d.Step(1)
	second := d.Step(1)
	assert.Equal(t, OpDone, first.Opcode)
	assert.Equal(t, OpDone, second.Opcode)
	assert.Equal(t, first.Pose, second.Pose)
}

func TestDriverWithZeroRotationSkipsRotatePhaseQuickly(t *testing.T) {
	d := NewDriver([]lraclr.Record{{L: 50, PipeRadius: 5}}, 10, 90)
	f := d.Step(1)
	assert.Equal(t, OpStraight, f.Opcode)
	assert.Equal(t, 10.0, f.Pose.Position.X)
}

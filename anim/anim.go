// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim drives an LRACLR operation stream forward in small time
// steps, for the tube-bend machine simulator's animation loop (spec.md
// §4.7 "Animation driver").
package anim

import (
	"math"

	"github.com/pipeforge/lraclr/geom"
	"github.com/pipeforge/lraclr/kinematics"
	"github.com/pipeforge/lraclr/lraclr"
)

// Opcode identifies which motion a Frame represents, per spec.md §4.7.
// The values are the wire-format opcodes and are not contiguous: 3 is
// reserved and never emitted.
type Opcode int

const (
	// OpStraight is a linear feed along the current forward axis.
	OpStraight Opcode = 0
	// OpRotate is a roll of the tube about its own axis, ahead of a bend.
	OpRotate Opcode = 1
	// OpBend is a sweep through a bend's arc.
	OpBend Opcode = 2
	// OpDone reports that every record has been played out.
	OpDone Opcode = 4
)

// Frame is one sampled instant of the animation.
type Frame struct {
	Opcode      Opcode
	RecordIndex int
	Pose        kinematics.Pose
	Done        bool
}

// Driver steps through recs phase by phase: rotate, then feed straight,
// then bend, per record, per spec.md §4.7. Construct with NewDriver and
// advance with Step.
type Driver struct {
	recs []lraclr.Record

	// LinearSpeed is the straight feed rate in mm/s.
	LinearSpeed float64
	// AngularSpeed is the rotate/bend rate in degrees/s.
	AngularSpeed float64

	idx   int
	phase Opcode
	pose  kinematics.Pose

	appliedR float64
	appliedL float64
	appliedA float64

	bendAxis   geom.Vector3
	bendCentre geom.Point3
}

// NewDriver constructs a Driver over recs, starting at the origin with
// forward axis geom.Forward, per spec.md §4.6's layout convention.
func NewDriver(recs []lraclr.Record, linearSpeed, angularSpeed float64) *Driver {
	return &Driver{
		recs:         recs,
		LinearSpeed:  linearSpeed,
		AngularSpeed: angularSpeed,
		phase:        OpRotate,
		pose:         kinematics.Pose{Position: geom.Pt3(0, 0, 0), Forward: geom.Forward, Up: geom.Up},
	}
}

// Step advances the animation by up to dt seconds, consuming leftover
// time across phase and record boundaries within the same call, and
// returns the frame reached at the end of that budget. Calling Step
// after the stream is exhausted repeatedly returns an OpDone frame
// with the final pose.
func (d *Driver) Step(dt float64) Frame {
	opcode := d.phase
	for remaining := dt; d.idx < len(d.recs); {
		rec := d.recs[d.idx]
		var used float64
		var complete bool
		switch d.phase {
		case OpRotate:
			used, complete = d.stepRotate(rec, remaining)
		case OpStraight:
			used, complete = d.stepStraight(rec, remaining)
		case OpBend:
			used, complete = d.stepBend(rec, remaining)
		}
		opcode = d.phase
		remaining -= used
		if !complete {
			break
		}
		switch d.phase {
		case OpRotate:
			d.phase = OpStraight
		case OpStraight:
			d.phase = OpBend
		case OpBend:
			d.idx++
			d.phase = OpRotate
			d.appliedR, d.appliedL, d.appliedA = 0, 0, 0
		}
		if remaining <= 0 {
			break
		}
	}
	if d.idx >= len(d.recs) {
		return Frame{Opcode: OpDone, RecordIndex: d.idx, Pose: d.pose, Done: true}
	}
	return Frame{Opcode: opcode, RecordIndex: d.idx, Pose: d.pose}
}

// stepRotate applies up to dt seconds of roll about the current
// forward axis and reports the time actually consumed and whether the
// record's rotation phase is now complete.
func (d *Driver) stepRotate(rec lraclr.Record, dt float64) (used float64, complete bool) {
	total := math.Abs(rec.R)
	if total == 0 {
		return 0, true
	}
	remaining := total - d.appliedR
	step := d.AngularSpeed * dt
	if step > remaining {
		step = remaining
	}
	sign := 1.0
	if rec.R < 0 {
		sign = -1
	}
	d.pose.Up = geom.RotateAroundAxis(d.pose.Up, d.pose.Forward, geom.DegToRad(sign*step))
	d.appliedR += step
	used = step / d.AngularSpeed
	return used, d.appliedR >= total
}

// stepStraight applies up to dt seconds of linear feed.
func (d *Driver) stepStraight(rec lraclr.Record, dt float64) (used float64, complete bool) {
	if rec.L == 0 {
		return 0, true
	}
	remaining := rec.L - d.appliedL
	step := d.LinearSpeed * dt
	if step > remaining {
		step = remaining
	}
	d.pose.Position = d.pose.Position.Add(d.pose.Forward.Scale(step))
	d.appliedL += step
	used = step / d.LinearSpeed
	return used, d.appliedL >= rec.L
}

// stepBend applies up to dt seconds of sweep through the bend arc.
func (d *Driver) stepBend(rec lraclr.Record, dt float64) (used float64, complete bool) {
	if rec.A == 0 {
		return 0, true
	}
	if d.appliedA == 0 {
		d.bendAxis = d.pose.Forward.Cross(d.pose.Up).Normalize()
		d.bendCentre = d.pose.Position.Add(d.pose.Up.Scale(rec.Clr))
	}
	remaining := rec.A - d.appliedA
	step := d.AngularSpeed * dt
	if step > remaining {
		step = remaining
	}
	stepRad := geom.DegToRad(step)
	radial := d.pose.Position.Sub(d.bendCentre)
	d.pose.Position = d.bendCentre.Add(geom.RotateAroundAxis(radial, d.bendAxis, stepRad))
	d.pose.Forward = geom.RotateAroundAxis(d.pose.Forward, d.bendAxis, stepRad)
	d.pose.Up = geom.RotateAroundAxis(d.pose.Up, d.bendAxis, stepRad)
	d.appliedA += step
	used = step / d.AngularSpeed
	return used, d.appliedA >= rec.A
}

// Done reports whether every record has finished playing.
func (d *Driver) Done() bool { return d.idx >= len(d.recs) }

// Pose returns the driver's current pose without advancing it.
func (d *Driver) Pose() kinematics.Pose { return d.pose }

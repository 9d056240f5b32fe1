// seehuhn.de/go/stitch - turtle scripts for embroidery machines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package turtle

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stitch/command"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func run(t *testing.T, opt *Options, cmds ...command.Command) []Point {
	t.Helper()
	points, err := Run(cmds, opt)
	if err != nil {
		t.Fatal(err)
	}
	return points
}

func TestForwardLeft(t *testing.T) {
	got := run(t, nil,
		command.New(command.Forward, 50),
		command.New(command.Left, 90),
		command.New(command.Forward, 50))
	want := []Point{
		P(0, 0, Up),
		P(50, 0, Down),
		P(50, 50, Down),
	}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("unexpected points (-want +got):\n%s", d)
	}
}

func TestNoMotion(t *testing.T) {
	got := run(t, nil,
		command.New(command.Left, 90),
		command.New(command.PenUp),
		command.New(command.SetHeading, 10))
	want := []Point{P(0, 0, Up)}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected points (-want +got):\n%s", d)
	}
}

func TestClosedSquare(t *testing.T) {
	tu := New(nil)
	for range 4 {
		tu.Apply(command.New(command.Forward, 80))
		tu.Apply(command.New(command.Left, 90))
	}
	if tu.Pos.Sub(vec.Vec2{}).Length() > 1e-9 {
		t.Errorf("turtle ended at %v", tu.Pos)
	}
	if tu.Heading != 0 {
		t.Errorf("heading is %g", tu.Heading)
	}
	if n := len(tu.Points()); n != 5 {
		t.Errorf("got %d points, want 5", n)
	}
}

func TestPenAndGoto(t *testing.T) {
	got := run(t, nil,
		command.New(command.PenUp),
		command.New(command.Goto, 10, -5),
		command.New(command.PenDown),
		command.New(command.SetHeading, 180),
		command.New(command.Back, 5),
		command.New(command.Right, 90),
		command.New(command.Forward, 2),
		command.New(command.Goto, 15, -3))
	want := []Point{
		P(0, 0, Up),
		P(10, -5, Up),
		P(15, -5, Down),
		P(15, -3, Down),
		P(15, -3, Down), // zero-length moves are kept
	}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("unexpected points (-want +got):\n%s", d)
	}
}

func TestHeading(t *testing.T) {
	cases := []struct {
		cmds []command.Command
		want float64
	}{
		{[]command.Command{command.New(command.Left, 450)}, 90},
		{[]command.Command{command.New(command.Right, 90)}, 270},
		{[]command.Command{command.New(command.SetHeading, -720)}, 0},
		{[]command.Command{command.New(command.SetHeading, 30), command.New(command.Right, 60)}, 330},
		{[]command.Command{command.New(command.Left, 360)}, 0},
	}
	for i, c := range cases {
		tu := New(nil)
		for _, cmd := range c.cmds {
			if err := tu.Apply(cmd); err != nil {
				t.Fatal(err)
			}
		}
		if math.Abs(tu.Heading-c.want) > 1e-9 {
			t.Errorf("%d: heading %g, want %g", i, tu.Heading, c.want)
		}
	}
}

func TestDiagonal(t *testing.T) {
	got := run(t, nil,
		command.New(command.Left, 45),
		command.New(command.Forward, 10),
		command.New(command.SetHeading, 120),
		command.New(command.Forward, 2))
	c := 10 / math.Sqrt2
	want := []Point{
		P(0, 0, Up),
		P(c, c, Down),
		P(c-1, c+math.Sqrt(3), Down),
	}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("unexpected points (-want +got):\n%s", d)
	}
}

func TestMaxStep(t *testing.T) {
	opt := &Options{MaxStep: 1.5}
	got := run(t, opt,
		command.New(command.Forward, 6),
		command.New(command.Forward, 0),
		command.New(command.PenUp),
		command.New(command.Back, 6),
		command.New(command.PenDown),
		command.New(command.Goto, 0, 2),
		command.New(command.Goto, 0, 2))
	want := []Point{
		P(0, 0, Up),
		P(1.5, 0, Down),
		P(3, 0, Down),
		P(4.5, 0, Down),
		P(6, 0, Down),
		P(4.5, 0, Up), // forward and back are split with the pen up, too
		P(3, 0, Up),
		P(1.5, 0, Up),
		P(0, 0, Up),
		P(0, 2, Down), // 2/1.5 rounds down to one step
	}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("unexpected points (-want +got):\n%s", d)
	}
}

func TestPenUpGoto(t *testing.T) {
	got := run(t, &Options{MaxStep: 1},
		command.New(command.PenUp),
		command.New(command.Goto, 5, 0),
		command.New(command.Goto, 5, 0))
	want := []Point{
		P(0, 0, Up),
		P(5, 0, Up),
		P(5, 0, Up),
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected points (-want +got):\n%s", d)
	}
}

func TestRange(t *testing.T) {
	cases := [][]command.Command{
		{
			command.New(command.Forward, 1e308),
			command.New(command.Forward, 1e308),
			command.New(command.Back, 1e308),
		},
		{command.New(command.Goto, 0, -2*MaxCoordinate)},
		{command.New(command.Left, 45), command.New(command.Forward, 1.5*MaxCoordinate)},
		{command.New(command.Forward, MaxCoordinate), command.New(command.Forward, 1)},
	}
	for i, cmds := range cases {
		points, err := Run(cmds, nil)
		if !errors.Is(err, ErrRange) {
			t.Errorf("%d: expected ErrRange, got %v", i, err)
		}
		if points != nil {
			t.Errorf("%d: got points despite error", i)
		}
	}

	tu := New(nil)
	err := tu.Apply(command.New(command.Forward, MaxCoordinate))
	if err != nil {
		t.Fatal(err)
	}
	err = tu.Apply(command.New(command.Forward, MaxCoordinate))
	if !errors.Is(err, ErrRange) {
		t.Fatalf("expected ErrRange, got %v", err)
	}
	if tu.Pos != (vec.Vec2{X: MaxCoordinate}) || len(tu.Points()) != 2 {
		t.Errorf("turtle changed by failed move: %v, %d points", tu.Pos, len(tu.Points()))
	}
}

func TestPointLimit(t *testing.T) {
	cases := []struct {
		opt  *Options
		cmds []command.Command
	}{
		{
			opt:  &Options{MaxStep: 1e-3, MaxPoints: 1000},
			cmds: []command.Command{command.New(command.Forward, 1000)},
		},
		{
			opt:  &Options{MaxStep: 1e-300},
			cmds: []command.Command{command.New(command.Forward, 1000)},
		},
		{
			opt:  &Options{MaxPoints: 3},
			cmds: []command.Command{
				command.New(command.Forward, 1),
				command.New(command.Forward, 1),
				command.New(command.Forward, 1),
			},
		},
	}
	for i, c := range cases {
		_, err := Run(c.cmds, c.opt)
		var limErr *LimitError
		if !errors.As(err, &limErr) {
			t.Errorf("%d: expected LimitError, got %v", i, err)
		}
	}

	// exactly at the limit
	points := run(t, &Options{MaxStep: 1, MaxPoints: 11},
		command.New(command.Forward, 10))
	if len(points) != 11 {
		t.Errorf("got %d points, want 11", len(points))
	}
}

func TestInternalError(t *testing.T) {
	cases := []command.Command{
		command.New(command.Square, 10),
		command.New("jump", 1),
		command.New(command.Forward),
	}
	for _, c := range cases {
		_, err := Run([]command.Command{command.New(command.Forward, 1), c}, nil)
		if !errors.Is(err, ErrInternal) {
			t.Errorf("%s: expected ErrInternal, got %v", c, err)
		}
	}
}

func TestIndependentRuns(t *testing.T) {
	a := New(nil)
	b := New(nil)
	a.Apply(command.New(command.Forward, 10))
	if b.Pos != (vec.Vec2{}) || len(b.Points()) != 1 {
		t.Error("turtles share state")
	}
}

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

package expand

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/stitch/command"
	"seehuhn.de/go/stitch/script"
)

func parse(t *testing.T, src string) []script.Statement {
	t.Helper()
	stmts, err := script.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	return stmts
}

func TestLoops(t *testing.T) {
	src := "forward(1)\nrepeat 2:\n\tleft(10)\n\trepeat 3:\n\t\tback(2)\npenup()\n"
	want := []command.Command{
		command.New(command.Forward, 1),
		command.New(command.Left, 10),
		command.New(command.Back, 2),
		command.New(command.Back, 2),
		command.New(command.Back, 2),
		command.New(command.Left, 10),
		command.New(command.Back, 2),
		command.New(command.Back, 2),
		command.New(command.Back, 2),
		command.New(command.PenUp),
	}

	got, err := Statements(parse(t, src), nil)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, got, cmpopts.EquateEmpty()); d != "" {
		t.Errorf("unexpected commands (-want +got):\n%s", d)
	}
}

func TestSquare(t *testing.T) {
	got, err := Statements(parse(t, "draw_square(40)\n"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 8 {
		t.Fatalf("got %d commands, want 8", len(got))
	}
	for i := 0; i < 8; i += 2 {
		if d := cmp.Diff(command.New(command.Forward, 40), got[i]); d != "" {
			t.Errorf("command %d (-want +got):\n%s", i, d)
		}
		if d := cmp.Diff(command.New(command.Left, 90), got[i+1]); d != "" {
			t.Errorf("command %d (-want +got):\n%s", i+1, d)
		}
	}
}

func TestSpiro(t *testing.T) {
	R, r, d := 100.0, 30.0, 50.0
	got, err := Commands([]command.Command{command.New(command.Spiro, R, r, d, 1, 90)}, nil)
	if err != nil {
		t.Fatal(err)
	}

	// angles 0, 90, 180, 270, 360
	if len(got) != 5+3 {
		t.Fatalf("got %d commands, want 8: %v", len(got), got)
	}
	if got[0].Op != command.PenUp || got[2].Op != command.PenDown || got[len(got)-1].Op != command.PenUp {
		t.Errorf("wrong pen commands: %v", got)
	}

	k := (R - r) / r
	var gotos [][]float64
	for _, c := range got {
		if c.Op == command.Goto {
			gotos = append(gotos, c.Args)
		}
	}
	for i, args := range gotos {
		theta := float64(i) * math.Pi / 2
		want := []float64{
			(R-r)*math.Cos(theta) + d*math.Cos(k*theta),
			(R-r)*math.Sin(theta) - d*math.Sin(k*theta),
		}
		if diff := cmp.Diff(want, args, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("point %d (-want +got):\n%s", i, diff)
		}
	}
	if diff := cmp.Diff([]float64{R - r + d, 0}, gotos[0], cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("start point (-want +got):\n%s", diff)
	}
}

func TestSpiroDefaults(t *testing.T) {
	got, err := Commands([]command.Command{command.New(command.Spiro, 100, 30, 50)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	// 6 revolutions in steps of 3 degrees
	n := 6*360/3 + 1
	if len(got) != n+3 {
		t.Errorf("got %d commands, want %d", len(got), n+3)
	}
}

func TestCommandsPassThrough(t *testing.T) {
	in := []command.Command{
		command.New(command.Goto, 1, 2),
		command.New(command.SetHeading, 45),
		command.New(command.Right, 30),
	}
	got, err := Commands(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(in, got); d != "" {
		t.Errorf("unexpected commands (-want +got):\n%s", d)
	}

	// the result must not share argument storage with the input
	got[0].Args[0] = 99
	if in[0].Args[0] != 1 {
		t.Error("input was modified")
	}
}

func TestCommandsInvalid(t *testing.T) {
	in := []command.Command{
		command.New(command.Forward, 1),
		command.New(command.Spiro, 1, 0, 1),
	}
	_, err := Commands(in, nil)
	var vErr *command.ValidationError
	if !errors.As(err, &vErr) || vErr.Index != 1 {
		t.Errorf("expected ValidationError for command 2, got %v", err)
	}
}

func TestStatementsInvalid(t *testing.T) {
	stmts := []script.Statement{
		&script.Call{Line: 1, Command: command.New(command.Forward, 1)},
		&script.Loop{Line: 2, Count: 0, Body: []script.Statement{
			&script.Call{Line: 3, Command: command.New(command.Forward, 1)},
		}},
	}
	_, err := Statements(stmts, nil)
	if !errors.Is(err, script.ErrLoopCount) {
		t.Errorf("expected ErrLoopCount, got %v", err)
	}

	stmts = []script.Statement{
		&script.Call{Line: 7, Command: command.New(command.Goto, 1)},
	}
	_, err = Statements(stmts, nil)
	var sErr *script.SyntaxError
	if !errors.As(err, &sErr) || sErr.Line != 7 {
		t.Errorf("expected SyntaxError in line 7, got %v", err)
	}
}

func TestLimit(t *testing.T) {
	cases := []struct {
		src   string
		limit int
		ok    bool
	}{
		{"repeat 10:\n\tforward(1)\n", 10, true},
		{"repeat 10:\n\tforward(1)\n", 9, false},
		{"forward(1)\nrepeat 5:\n\tdraw_square(1)\n", 41, true},
		{"forward(1)\nrepeat 5:\n\tdraw_square(1)\n", 40, false},
		{"repeat 1000000000:\n\trepeat 1000000000:\n\t\trepeat 1000000000:\n\t\t\tforward(1)\n", 0, false},
		{"draw_spiro(100, 30, 50, 1000000, 0.001)\n", 0, false},
	}
	for i, c := range cases {
		lim := &Limits{MaxCommands: c.limit}
		cmds, err := Statements(parse(t, c.src), lim)
		if c.ok {
			if err != nil {
				t.Errorf("%d: unexpected error %v", i, err)
			} else if len(cmds) != c.limit {
				t.Errorf("%d: got %d commands, want %d", i, len(cmds), c.limit)
			}
			continue
		}

		var lErr *LimitError
		if !errors.As(err, &lErr) {
			t.Errorf("%d: expected LimitError, got %v", i, err)
			continue
		}
		if cmds != nil {
			t.Errorf("%d: partial result returned", i)
		}
		wantLimit := c.limit
		if wantLimit == 0 {
			wantLimit = DefaultMaxCommands
		}
		if lErr.Limit != wantLimit {
			t.Errorf("%d: limit %d, want %d", i, lErr.Limit, wantLimit)
		}
	}
}

func TestCappedArithmetic(t *testing.T) {
	const limit = 100
	cases := []struct {
		got, want int
	}{
		{addCapped(40, 60, limit), 100},
		{addCapped(41, 60, limit), limit + 1},
		{addCapped(limit+1, 0, limit), limit + 1},
		{mulCapped(10, 10, limit), 100},
		{mulCapped(11, 10, limit), limit + 1},
		{mulCapped(0, math.MaxInt, limit), 0},
		{mulCapped(limit+1, 1, limit), limit + 1},
	}
	for i, c := range cases {
		if c.got != c.want {
			t.Errorf("%d: got %d, want %d", i, c.got, c.want)
		}
	}
}

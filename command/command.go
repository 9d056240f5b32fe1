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

// Package command defines the primitive and shape commands understood by the
// turtle, together with their argument rules.
//
// The vocabulary is fixed.  Every command has a minimum and a maximum number
// of arguments, and all arguments are real numbers.  Angles are given in
// degrees, distances in the unit expected by the embroidery encoder.
package command

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// Op is the name of a turtle command.
type Op string

// These are the commands known to the turtle.
const (
	Forward    Op = "forward"
	Back       Op = "back"
	Left       Op = "left"
	Right      Op = "right"
	PenUp      Op = "penup"
	PenDown    Op = "pendown"
	Goto       Op = "goto"
	SetHeading Op = "setheading"
	Square     Op = "draw_square"
	Spiro      Op = "draw_spiro"
)

type arity struct {
	min, max int
}

var vocabulary = map[Op]arity{
	Forward:    {1, 1},
	Back:       {1, 1},
	Left:       {1, 1},
	Right:      {1, 1},
	PenUp:      {0, 0},
	PenDown:    {0, 0},
	Goto:       {2, 2},
	SetHeading: {1, 1},
	Square:     {1, 1},
	Spiro:      {3, 5},
}

// Default values for the optional arguments of draw_spiro.
const (
	SpiroRevolutions = 6
	SpiroStepDeg     = 3
)

// Lookup finds the command with the given name.  Names are matched without
// regard to case.
func Lookup(name string) (Op, bool) {
	op := Op(strings.ToLower(strings.TrimSpace(name)))
	_, ok := vocabulary[op]
	return op, ok
}

// Names returns the sorted list of all command names.
func Names() []string {
	ops := maps.Keys(vocabulary)
	slices.Sort(ops)
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = string(op)
	}
	return names
}

// IsShape reports whether op is a helper which expands into primitive
// commands.
func (op Op) IsShape() bool {
	return op == Square || op == Spiro
}

// Arity returns the minimum and maximum number of arguments for op.
// For unknown commands, ok is false.
func (op Op) Arity() (lo, hi int, ok bool) {
	a, ok := vocabulary[op]
	return a.min, a.max, ok
}

// Command is a single turtle command with its numeric arguments.
type Command struct {
	Op   Op        `yaml:"op"`
	Args []float64 `yaml:"args,flow,omitempty"`
}

// New returns a new command.  The arguments are not checked.
func New(op Op, args ...float64) Command {
	return Command{Op: op, Args: args}
}

func (c Command) String() string {
	parts := make([]string, len(c.Args))
	for i, x := range c.Args {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return string(c.Op) + "(" + strings.Join(parts, ", ") + ")"
}

// Arg returns the i-th argument, or def if the argument was omitted.
func (c Command) Arg(i int, def float64) float64 {
	if i < len(c.Args) {
		return c.Args[i]
	}
	return def
}

// Check verifies that the command name is known and that the arguments
// match the command's arity and value ranges.
//
// The returned error is one of the sentinel errors of this package,
// possibly wrapped with more detail.
func (c Command) Check() error {
	a, ok := vocabulary[c.Op]
	if !ok {
		return fmt.Errorf("%w %q (expected one of %s)",
			ErrUnknownOp, c.Op, strings.Join(Names(), ", "))
	}
	if n := len(c.Args); n < a.min || n > a.max {
		return fmt.Errorf("%w: %s expects %s, got %d",
			ErrArity, c.Op, describeArity(a), n)
	}
	for i, x := range c.Args {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: argument %d of %s is %g",
				ErrBadArgument, i+1, c.Op, x)
		}
	}

	if c.Op == Spiro {
		if c.Args[1] == 0 {
			return fmt.Errorf("%w: draw_spiro needs r != 0", ErrBadArgument)
		}
		if rev := c.Arg(3, SpiroRevolutions); rev < 0 {
			return fmt.Errorf("%w: draw_spiro revolutions %g < 0",
				ErrBadArgument, rev)
		}
		if step := c.Arg(4, SpiroStepDeg); step <= 0 {
			return fmt.Errorf("%w: draw_spiro step %g <= 0",
				ErrBadArgument, step)
		}
	}
	return nil
}

func describeArity(a arity) string {
	switch {
	case a.min == a.max && a.min == 1:
		return "1 argument"
	case a.min == a.max:
		return strconv.Itoa(a.min) + " arguments"
	default:
		return strconv.Itoa(a.min) + " to " + strconv.Itoa(a.max) + " arguments"
	}
}

// Validate checks every command in a command list.  The first invalid
// command is reported as a *ValidationError.
func Validate(cmds []Command) error {
	for i, c := range cmds {
		if err := c.Check(); err != nil {
			return &ValidationError{Index: i, Op: string(c.Op), Err: err}
		}
	}
	return nil
}

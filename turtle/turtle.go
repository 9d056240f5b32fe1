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

// Package turtle implements the turtle which turns a list of primitive
// commands into a sequence of points.
//
// The turtle starts at the origin, heading along the positive x-axis, with
// the pen down.  Angles are measured in degrees, counter-clockwise: left(90)
// turns the turtle from the positive x-axis to the positive y-axis.
package turtle

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stitch/command"
)

// Pen is the state of the pen.
type Pen uint8

// These are the possible pen states.
const (
	Down Pen = iota
	Up
)

func (p Pen) String() string {
	switch p {
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("Pen(%d)", uint8(p))
	}
}

// Point is a position visited by the turtle, together with the pen state
// which was used to reach the position.
type Point struct {
	vec.Vec2
	Pen Pen
}

// P is a shorthand for constructing a Point.
func P(x, y float64, pen Pen) Point {
	return Point{Vec2: vec.Vec2{X: x, Y: y}, Pen: pen}
}

// State is the state of the turtle.
type State struct {
	Pos     vec.Vec2
	Heading float64 // in degrees, in the range [0, 360)
	Pen     Pen
}


// Options can be used to control how moves are recorded.
type Options struct {
	// MaxStep, if positive, is the nominal length of a single stitch.
	// Forward and back moves of length d, and goto moves with the pen down,
	// are split into max(1, floor(d/MaxStep)) equal steps, so that every
	// step of a long move is between MaxStep and 2*MaxStep long.  Goto moves
	// with the pen up are never split.
	MaxStep float64

	// MaxPoints limits the number of recorded points, including the
	// starting point.  If this is zero, DefaultMaxPoints is used.
	MaxPoints int
}

// DefaultMaxPoints is the point limit used when no limit is given.
const DefaultMaxPoints = 10_000_000

// MaxCoordinate is the largest absolute value allowed for a coordinate of
// the turtle position.
const MaxCoordinate = 1e9

var (
	// ErrInternal indicates a command which should have been rejected or
	// expanded before reaching the turtle.
	ErrInternal = errors.New("internal error")

	// ErrRange indicates a move to a position outside the allowed
	// coordinate range.
	ErrRange = errors.New("position out of range")
)

// LimitError is returned if a path would have more than the allowed number
// of points.
type LimitError struct {
	Limit int
}

func (err *LimitError) Error() string {
	return "path exceeds the limit of " + strconv.Itoa(err.Limit) + " points"
}

// Turtle records the points visited while executing commands.
//
// The zero value is not usable; use New to create a turtle.
type Turtle struct {
	State
	maxStep   float64
	maxPoints int
	points    []Point
}

// New returns a turtle at the origin.  The starting position is recorded as
// a pen-up point.
func New(opt *Options) *Turtle {
	t := &Turtle{maxPoints: DefaultMaxPoints}
	if opt != nil {
		if opt.MaxStep > 0 {
			t.maxStep = opt.MaxStep
		}
		if opt.MaxPoints > 0 {
			t.maxPoints = opt.MaxPoints
		}
	}
	t.points = append(t.points, Point{Vec2: t.Pos, Pen: Up})
	return t
}

// Run executes the commands on a fresh turtle and returns the visited
// points.  The result always starts with the origin, with the pen up.
func Run(cmds []command.Command, opt *Options) ([]Point, error) {
	t := New(opt)
	for i, c := range cmds {
		err := t.Apply(c)
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", i+1, err)
		}
	}
	return t.Points(), nil
}

// Points returns the points recorded so far.
// The returned slice must not be modified by the caller.
func (t *Turtle) Points() []Point {
	return t.points
}

// Apply executes a single primitive command.
//
// Moves which leave the coordinate range fail with an error wrapping
// ErrRange, moves which exceed the point limit with a *LimitError.  In both
// cases the turtle is left unchanged.
func (t *Turtle) Apply(c command.Command) error {
	if err := c.Check(); err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	switch c.Op {
	case command.Forward:
		return t.Forward(c.Args[0])
	case command.Back:
		return t.Forward(-c.Args[0])
	case command.Left:
		t.Left(c.Args[0])
	case command.Right:
		t.Left(-c.Args[0])
	case command.PenUp:
		t.Pen = Up
	case command.PenDown:
		t.Pen = Down
	case command.Goto:
		return t.Goto(vec.Vec2{X: c.Args[0], Y: c.Args[1]})
	case command.SetHeading:
		t.Heading = normalizeAngle(c.Args[0])
	default:
		return fmt.Errorf("%w: %s is not a primitive command", ErrInternal, c.Op)
	}
	return nil
}

// Forward moves the turtle by the distance d along the current heading.
// Negative distances move the turtle backwards.
func (t *Turtle) Forward(d float64) error {
	if t.maxStep > 0 && d == 0 {
		return nil
	}
	return t.moveBy(direction(t.Heading).Mul(d), math.Abs(d), true)
}

// Left turns the turtle counter-clockwise by a degrees.
func (t *Turtle) Left(a float64) {
	t.Heading = normalizeAngle(t.Heading + a)
}

// Goto moves the turtle to the absolute position p.  The heading is not
// changed.
func (t *Turtle) Goto(p vec.Vec2) error {
	if !inRange(p) {
		return fmt.Errorf("%w: (%g, %g)", ErrRange, p.X, p.Y)
	}
	delta := p.Sub(t.Pos)
	dist := delta.Length()
	if t.maxStep > 0 && t.Pen == Down && dist == 0 {
		return nil
	}
	return t.moveBy(delta, dist, t.Pen == Down)
}

func (t *Turtle) moveBy(delta vec.Vec2, dist float64, split bool) error {
	start := t.Pos
	end := start.Add(delta)
	if !inRange(end) {
		return fmt.Errorf("%w: (%g, %g)", ErrRange, end.X, end.Y)
	}

	room := t.maxPoints - len(t.points)
	steps := 1
	if split && t.maxStep > 0 {
		// compare as float, int() of a huge quotient is undefined
		n := math.Floor(dist / t.maxStep)
		if n > float64(room) {
			return &LimitError{Limit: t.maxPoints}
		}
		steps = max(1, int(n))
	}
	if steps > room {
		return &LimitError{Limit: t.maxPoints}
	}

	for i := 1; i < steps; i++ {
		t.record(start.Add(delta.Mul(float64(i) / float64(steps))))
	}
	// The final point is computed directly, to avoid accumulating
	// rounding errors over many steps.
	t.record(end)
	return nil
}

func (t *Turtle) record(p vec.Vec2) {
	t.Pos = p
	t.points = append(t.points, Point{Vec2: p, Pen: t.Pen})
}

// inRange reports whether both coordinates are at most MaxCoordinate in
// absolute value.  NaN is out of range.
func inRange(p vec.Vec2) bool {
	return math.Abs(p.X) <= MaxCoordinate && math.Abs(p.Y) <= MaxCoordinate
}

// direction returns the unit vector for a heading in [0, 360).
// Right angles are exact, so that squares close without rounding errors.
func direction(heading float64) vec.Vec2 {
	switch heading {
	case 0:
		return vec.Vec2{X: 1}
	case 90:
		return vec.Vec2{Y: 1}
	case 180:
		return vec.Vec2{X: -1}
	case 270:
		return vec.Vec2{Y: -1}
	}
	x, y := matrix.RotateDeg(heading).Apply(1, 0)
	return vec.Vec2{X: x, Y: y}
}

// normalizeAngle maps an angle in degrees to the range [0, 360).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

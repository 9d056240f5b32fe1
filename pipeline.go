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

package stitch

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/stitch/bbox"
	"seehuhn.de/go/stitch/command"
	"seehuhn.de/go/stitch/expand"
	"seehuhn.de/go/stitch/script"
	"seehuhn.de/go/stitch/turtle"
)

// Options can be used to control the conversion.  A nil *Options is
// equivalent to the zero value, which selects the defaults.
type Options struct {
	// MaxStep, if positive, is the nominal length of a single stitch.
	// Longer pen-down moves are split into several stitches, see
	// turtle.Options.
	MaxStep float64

	// MaxCommands limits the number of primitive commands after loops and
	// shapes have been expanded.  If this is zero,
	// expand.DefaultMaxCommands is used.
	MaxCommands int

	// MaxPoints limits the number of points recorded by the turtle.  If
	// this is zero, turtle.DefaultMaxPoints is used.
	MaxPoints int
}

// Result is the outcome of a successful conversion.
type Result struct {
	// Commands is the list of primitive commands executed by the turtle.
	Commands []command.Command

	// Points is the normalized path: it starts at the origin with the pen
	// up, and all coordinates are non-negative.
	Points []turtle.Point

	// Ops is the stitch sequence corresponding to Points.
	Ops []Op

	// BBox is the bounding box of the path before it was shifted.
	BBox rect.Rect

	// PointCount is the number of points recorded by the turtle, including
	// its starting point.
	PointCount int
}

// CompileScript parses a turtle script and converts it into a stitch
// sequence.
//
// Parse errors are reported as *script.SyntaxError, oversized scripts as
// *expand.LimitError or *turtle.LimitError, and paths leaving the
// coordinate range with an error wrapping turtle.ErrRange.  If an error is
// returned, the Result is nil.
func CompileScript(src string, opt *Options) (*Result, error) {
	stmts, err := script.Parse(src)
	if err != nil {
		return nil, err
	}
	cmds, err := expand.Statements(stmts, opt.limits())
	if err != nil {
		return nil, err
	}
	return run(cmds, opt)
}

// CompileCommands converts a command list into a stitch sequence.
//
// The commands are validated before the turtle is started; invalid commands
// are reported as *command.ValidationError.  If an error is returned, the
// Result is nil.
func CompileCommands(cmds []command.Command, opt *Options) (*Result, error) {
	cmds, err := expand.Commands(cmds, opt.limits())
	if err != nil {
		return nil, err
	}
	return run(cmds, opt)
}

func run(cmds []command.Command, opt *Options) (*Result, error) {
	var tOpt *turtle.Options
	if opt != nil {
		tOpt = &turtle.Options{MaxStep: opt.MaxStep, MaxPoints: opt.MaxPoints}
	}
	points, err := turtle.Run(cmds, tOpt)
	if err != nil {
		return nil, err
	}

	normalized := bbox.Normalize(points)
	return &Result{
		Commands:   cmds,
		Points:     normalized,
		Ops:        Encode(normalized),
		BBox:       bbox.Of(points),
		PointCount: len(points),
	}, nil
}

func (opt *Options) limits() *expand.Limits {
	if opt == nil {
		return nil
	}
	return &expand.Limits{MaxCommands: opt.MaxCommands}
}

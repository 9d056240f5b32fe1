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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stitch/command"
)

const squareSize = 8

// appendSquare draws a square with the given side length, turning left at
// every corner.  The turtle ends at its starting point, with its original
// heading.
func appendSquare(res []command.Command, side float64) []command.Command {
	for range 4 {
		res = append(res,
			command.New(command.Forward, side),
			command.New(command.Left, 90))
	}
	return res
}

// spiro describes a hypotrochoid: the curve traced by a point at distance d
// from the centre of a circle of radius r, rolling inside a circle of
// radius R.
type spiro struct {
	R, r, d     float64
	revolutions float64
	stepDeg     float64
}

func newSpiro(c command.Command) spiro {
	return spiro{
		R:           c.Args[0],
		r:           c.Args[1],
		d:           c.Args[2],
		revolutions: c.Arg(3, command.SpiroRevolutions),
		stepDeg:     c.Arg(4, command.SpiroStepDeg),
	}
}

// numSamples returns the number of points on the curve, or limit+1 if
// there are more than limit points.
func (s spiro) numSamples(limit int) int {
	n := math.Floor(360*s.revolutions/s.stepDeg) + 1
	if n > float64(limit) {
		return limit + 1
	}
	return int(n)
}

// at returns the point of the curve at angle t (in radians).
func (s spiro) at(t float64) vec.Vec2 {
	k := (s.R - s.r) / s.r
	outer := vec.Vec2{X: math.Cos(t), Y: math.Sin(t)}.Mul(s.R - s.r)
	inner := vec.Vec2{X: math.Cos(k * t), Y: -math.Sin(k * t)}.Mul(s.d)
	return outer.Add(inner)
}

// appendSpiro draws the curve in absolute coordinates.  The pen is lifted
// to move to the first point and is left up after the curve is complete.
func appendSpiro(res []command.Command, s spiro) []command.Command {
	n := s.numSamples(math.MaxInt - 1)
	res = append(res, command.New(command.PenUp))
	for i := range n {
		t := float64(i) * s.stepDeg * math.Pi / 180
		p := s.at(t)
		res = append(res, command.New(command.Goto, p.X, p.Y))
		if i == 0 {
			res = append(res, command.New(command.PenDown))
		}
	}
	return append(res, command.New(command.PenUp))
}

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

// Package bbox computes bounding boxes of turtle paths and moves paths into
// the positive quadrant.
package bbox

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stitch/turtle"
)

// Of returns the smallest axis-parallel rectangle which contains all points.
// For an empty list, the zero rectangle is returned.
func Of(points []turtle.Point) rect.Rect {
	if len(points) == 0 {
		return rect.Rect{}
	}

	b := rect.Rect{
		LLx: points[0].X,
		LLy: points[0].Y,
		URx: points[0].X,
		URy: points[0].Y,
	}
	for _, p := range points[1:] {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}

// Normalize shifts the points so that the smallest x and y coordinates are
// zero, and makes sure that the path starts at the origin with the pen up.
//
// If the first shifted point is not the origin with the pen up, such a
// point is prepended.  The input is not modified.  Normalizing a normalized
// path returns an equal path.
func Normalize(points []turtle.Point) []turtle.Point {
	if len(points) == 0 {
		return []turtle.Point{{Pen: turtle.Up}}
	}

	b := Of(points)
	shift := vec.Vec2{X: b.LLx, Y: b.LLy}

	res := make([]turtle.Point, 0, len(points)+1)
	first := points[0].Sub(shift)
	if first != (vec.Vec2{}) || points[0].Pen != turtle.Up {
		res = append(res, turtle.Point{Pen: turtle.Up})
	}
	for _, p := range points {
		res = append(res, turtle.Point{Vec2: p.Sub(shift), Pen: p.Pen})
	}
	return res
}

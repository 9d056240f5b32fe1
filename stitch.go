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
	"fmt"
	"strconv"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stitch/turtle"
)

// Kind is the type of a stitch operation.
type Kind uint8

// These are the kinds of stitch operations.
const (
	Jump   Kind = iota + 1 // move without stitching
	Stitch                 // move while stitching
	End                    // end of the pattern
)

func (k Kind) String() string {
	switch k {
	case Jump:
		return "JUMP"
	case Stitch:
		return "STITCH"
	case End:
		return "END"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Op is a single stitch operation.  The position is given relative to the
// previous position.
type Op struct {
	Kind  Kind
	Delta vec.Vec2
}

func (op Op) String() string {
	if op.Kind == End {
		return op.Kind.String()
	}
	return fmt.Sprintf("%s(%g, %g)", op.Kind, op.Delta.X, op.Delta.Y)
}

// Encode converts a normalized path (see [bbox.Normalize]) into a sequence of
// relative stitch operations.
//
// The first operation moves from the origin to the first point.  For a
// normalized path this is JUMP(0, 0).  Every following point gives one
// operation: JUMP if the point was reached with the pen up, STITCH
// otherwise.  Zero-length operations are kept.  The sequence is terminated
// by an END operation.
func Encode(points []turtle.Point) []Op {
	ops := make([]Op, 0, len(points)+1)
	var prev vec.Vec2
	for _, p := range points {
		kind := Stitch
		if p.Pen == turtle.Up {
			kind = Jump
		}
		ops = append(ops, Op{Kind: kind, Delta: p.Sub(prev)})
		prev = p.Vec2
	}
	return append(ops, Op{Kind: End})
}

// Decode reconstructs the absolute positions from a sequence of stitch
// operations.  Decoding stops at the first END operation.
func Decode(ops []Op) []turtle.Point {
	var res []turtle.Point
	var pos vec.Vec2
	for _, op := range ops {
		var pen turtle.Pen
		switch op.Kind {
		case Jump:
			pen = turtle.Up
		case Stitch:
			pen = turtle.Down
		default:
			return res
		}
		pos = pos.Add(op.Delta)
		res = append(res, turtle.Point{Vec2: pos, Pen: pen})
	}
	return res
}

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

// Package stitch converts turtle scripts into stitch sequences for
// embroidery machines.
//
// A script describes a path using turtle commands like forward(10) and
// left(90), possibly inside loops.  The script is parsed (package script),
// loops and shapes are expanded into primitive commands (package expand),
// and the commands are executed by a turtle (package turtle) which records
// the visited points.  The points are then shifted into the positive
// quadrant (package bbox) and converted into a sequence of relative jumps
// and stitches, terminated by an end marker:
//
//	res, err := stitch.CompileScript("repeat 4:\n\tforward(40)\n\tleft(90)\n", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, op := range res.Ops {
//	    fmt.Println(op)
//	}
//
// Command lists, for example decoded with [command.ReadList], can be
// compiled using [CompileCommands].
//
// Encoding the stitch sequence into a machine specific file format is left
// to other packages.  Every call allocates its own turtle, so the functions
// in this package can be used concurrently.
package stitch

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

package script

import (
	"errors"
	"strconv"

	"seehuhn.de/go/stitch/command"
)

// SyntaxError is returned when a script cannot be parsed.
type SyntaxError struct {
	Line int    // 1-based line number
	Text string // the offending line, without indentation
	Err  error
}

func (err *SyntaxError) Error() string {
	msg := "syntax error in line " + strconv.Itoa(err.Line)
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	if err.Text != "" {
		msg += " (" + strconv.Quote(err.Text) + ")"
	}
	return msg
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

var (
	// ErrIndent indicates invalid or inconsistent indentation.
	ErrIndent = errors.New("bad indentation")

	// ErrMalformed indicates a line which is neither a command call
	// nor a loop header.
	ErrMalformed = errors.New("malformed statement")

	// ErrLoopCount indicates a loop count which is not a positive integer.
	ErrLoopCount = errors.New("loop count must be a positive integer")

	// ErrUnknownCommand indicates a call to a command outside the
	// vocabulary.
	ErrUnknownCommand = command.ErrUnknownOp

	// ErrArity indicates a call with the wrong number of arguments.
	ErrArity = command.ErrArity
)

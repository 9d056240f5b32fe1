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

package command

import (
	"errors"
	"strconv"
)

// ValidationError is returned when a command list contains an invalid
// command.
type ValidationError struct {
	Index int // position of the offending command, 0-based
	Op    string
	Err   error
}

func (err *ValidationError) Error() string {
	msg := "invalid command " + strconv.Itoa(err.Index+1)
	if err.Op != "" {
		msg += " (" + strconv.Quote(err.Op) + ")"
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *ValidationError) Unwrap() error {
	return err.Err
}

var (
	// ErrUnknownOp indicates a command name outside the vocabulary.
	ErrUnknownOp = errors.New("unknown command")

	// ErrArity indicates a wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")

	// ErrNotANumber indicates a non-numeric argument in a command list.
	ErrNotANumber = errors.New("argument is not a number")

	// ErrBadArgument indicates a numeric argument outside the allowed range.
	ErrBadArgument = errors.New("invalid argument")
)

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

// Package expand turns parsed scripts and command lists into flat lists of
// primitive turtle commands.
//
// Loops are unrolled and the shape helpers draw_square and draw_spiro are
// replaced by the motion commands which draw them.  The result only
// contains forward, back, left, right, penup, pendown, goto and
// setheading.
package expand

import (
	"fmt"
	"strconv"

	"seehuhn.de/go/stitch/command"
	"seehuhn.de/go/stitch/script"
)

// DefaultMaxCommands is the limit used when no Limits are given.
const DefaultMaxCommands = 1_000_000

// Limits restricts the size of an expanded command list.
type Limits struct {
	// MaxCommands is the maximal number of primitive commands.
	// If this is zero, DefaultMaxCommands is used.
	MaxCommands int
}

func (lim *Limits) maxCommands() int {
	if lim == nil || lim.MaxCommands <= 0 {
		return DefaultMaxCommands
	}
	return lim.MaxCommands
}

// LimitError is returned if the expanded command list would be too long.
type LimitError struct {
	Limit int
	Line  int // line of the offending top-level statement, 0 for command lists
}

func (err *LimitError) Error() string {
	msg := "expansion exceeds the limit of " + strconv.Itoa(err.Limit) + " commands"
	if err.Line > 0 {
		msg = "line " + strconv.Itoa(err.Line) + ": " + msg
	}
	return msg
}

// Statements expands a parsed script.
//
// The size of the result is computed before anything is expanded, so that
// scripts which are too large fail without allocating memory.
func Statements(stmts []script.Statement, lim *Limits) ([]command.Command, error) {
	err := checkStatements(stmts)
	if err != nil {
		return nil, err
	}

	limit := lim.maxCommands()

	total := 0
	for _, s := range stmts {
		total = addCapped(total, statementSize(s, limit), limit)
		if total > limit {
			return nil, &LimitError{Limit: limit, Line: statementLine(s)}
		}
	}

	res := make([]command.Command, 0, total)
	for _, s := range stmts {
		res = appendStatement(res, s)
	}
	return res, nil
}

// Commands expands a command list.  The list is validated first; invalid
// commands are reported as *command.ValidationError.
func Commands(cmds []command.Command, lim *Limits) ([]command.Command, error) {
	err := command.Validate(cmds)
	if err != nil {
		return nil, err
	}

	limit := lim.maxCommands()
	total := 0
	for _, c := range cmds {
		total = addCapped(total, commandSize(c, limit), limit)
		if total > limit {
			return nil, &LimitError{Limit: limit}
		}
	}

	res := make([]command.Command, 0, total)
	for _, c := range cmds {
		res = appendCommand(res, c)
	}
	return res, nil
}

func appendStatement(res []command.Command, s script.Statement) []command.Command {
	switch s := s.(type) {
	case *script.Call:
		res = appendCommand(res, s.Command)
	case *script.Loop:
		start := len(res)
		for _, b := range s.Body {
			res = appendStatement(res, b)
		}
		body := res[start:]
		for i := 1; i < s.Count; i++ {
			res = append(res, body...)
			body = res[start : start+len(body)]
		}
	default:
		panic("unexpected statement type")
	}
	return res
}

func appendCommand(res []command.Command, c command.Command) []command.Command {
	switch c.Op {
	case command.Square:
		return appendSquare(res, c.Args[0])
	case command.Spiro:
		return appendSpiro(res, newSpiro(c))
	default:
		args := make([]float64, len(c.Args))
		copy(args, c.Args)
		return append(res, command.Command{Op: c.Op, Args: args})
	}
}

func statementSize(s script.Statement, limit int) int {
	switch s := s.(type) {
	case *script.Call:
		return commandSize(s.Command, limit)
	case *script.Loop:
		body := 0
		for _, b := range s.Body {
			body = addCapped(body, statementSize(b, limit), limit)
		}
		return mulCapped(body, s.Count, limit)
	default:
		panic("unexpected statement type")
	}
}

// checkStatements verifies a statement tree which was not necessarily
// produced by script.Parse.
func checkStatements(stmts []script.Statement) error {
	for _, s := range stmts {
		switch s := s.(type) {
		case *script.Call:
			if err := s.Check(); err != nil {
				return &script.SyntaxError{Line: s.Line, Text: s.Command.String(), Err: err}
			}
		case *script.Loop:
			if s.Count <= 0 {
				return &script.SyntaxError{Line: s.Line, Err: script.ErrLoopCount}
			}
			if err := checkStatements(s.Body); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unexpected statement type %T", s)
		}
	}
	return nil
}

func statementLine(s script.Statement) int {
	switch s := s.(type) {
	case *script.Call:
		return s.Line
	case *script.Loop:
		return s.Line
	}
	return 0
}

func commandSize(c command.Command, limit int) int {
	switch c.Op {
	case command.Square:
		return squareSize
	case command.Spiro:
		n := newSpiro(c).numSamples(limit)
		return addCapped(n, 3, limit)
	default:
		return 1
	}
}

// addCapped returns a+b, or limit+1 if the sum exceeds limit.
func addCapped(a, b, limit int) int {
	if a > limit-b {
		return limit + 1
	}
	return a + b
}

// mulCapped returns a*b, or limit+1 if the product exceeds limit.
// Both arguments must be non-negative.
func mulCapped(a, b, limit int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > limit/b {
		return limit + 1
	}
	return a * b
}

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

// Package script implements the parser for turtle scripts.
//
// A script is a sequence of command calls and loops, one statement per
// line.  Loop bodies are marked by indentation:
//
//	# a star
//	penup()
//	goto(-40, 0)
//	pendown()
//	for i in range(5):
//		forward(80)
//		right(144)
//
// Instead of "for i in range(N):" the shorter "repeat N:" can be used.
// Arguments are numbers, separated by commas or white space.  The names
// of the commands are listed in package [seehuhn.de/go/stitch/command].
package script

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"seehuhn.de/go/stitch/command"
)

// Statement is either a *Call or a *Loop.
type Statement interface {
	isStatement()
}

// Call is a single command call.
type Call struct {
	Line int
	command.Command
}

// Loop repeats a block of statements.
type Loop struct {
	Line  int
	Count int
	Var   string // name of the loop variable, empty for "repeat" loops
	Body  []Statement
}

func (*Call) isStatement() {}
func (*Loop) isStatement() {}

// Parse parses a script into a tree of statements.
// Problems are reported as *SyntaxError.
func Parse(text string) ([]Statement, error) {
	lines, err := Split(text)
	if err != nil {
		return nil, err
	}
	p := &parser{lines: lines}
	return p.block(0)
}

type parser struct {
	lines []Line
	pos   int
}

// block parses all statements at the given depth.  It stops at the end of
// the input or at the first line with smaller depth.
func (p *parser) block(depth int) ([]Statement, error) {
	var stmts []Statement
	var indentChar byte
	for p.pos < len(p.lines) {
		l := p.lines[p.pos]
		if l.Depth < depth {
			break
		} else if l.Depth > depth {
			return nil, syntaxError(l, ErrIndent, "unexpected indentation")
		}

		if depth > 0 {
			if indentChar == 0 {
				indentChar = l.Indent[0]
			} else if l.Indent[0] != indentChar {
				return nil, syntaxError(l, ErrIndent, "inconsistent use of tabs and spaces")
			}
		}
		p.pos++

		loop, err := parseHeader(l)
		if err != nil {
			return nil, err
		}
		if loop == nil {
			call, err := parseCall(l)
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, call)
			continue
		}

		if p.pos >= len(p.lines) || p.lines[p.pos].Depth <= depth {
			return nil, syntaxError(l, ErrIndent, "expected an indented block")
		}
		loop.Body, err = p.block(depth + 1)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, loop)
	}
	return stmts, nil
}

var (
	forHeader    = regexp.MustCompile(`(?i)^for\s+([A-Za-z_]\w*)\s+in\s+range\s*\(\s*([^()]*?)\s*\)\s*:$`)
	repeatHeader = regexp.MustCompile(`(?i)^repeat\s+([^:]*?)\s*:$`)
	loopKeyword  = regexp.MustCompile(`(?i)^(for|repeat)\b`)
	callForm     = regexp.MustCompile(`^(?:t\s*\.\s*)?([A-Za-z_]\w*)\s*\((.*)\)$`)
	argSep       = regexp.MustCompile(`[,\s]+`)
)

// parseHeader checks whether l is a loop header.  If l is not a loop
// header, nil is returned.
func parseHeader(l Line) (*Loop, error) {
	var varName, countStr string
	if m := forHeader.FindStringSubmatch(l.Text); m != nil {
		varName, countStr = m[1], m[2]
	} else if m := repeatHeader.FindStringSubmatch(l.Text); m != nil {
		countStr = m[1]
	} else if loopKeyword.MatchString(l.Text) {
		return nil, syntaxError(l, ErrMalformed, "malformed loop header")
	} else {
		return nil, nil
	}

	count, err := strconv.Atoi(countStr)
	if err != nil || count <= 0 {
		return nil, &SyntaxError{
			Line: l.No,
			Text: l.Text,
			Err:  fmt.Errorf("%w, got %q", ErrLoopCount, countStr),
		}
	}
	return &Loop{Line: l.No, Count: count, Var: varName}, nil
}

func parseCall(l Line) (*Call, error) {
	m := callForm.FindStringSubmatch(l.Text)
	if m == nil {
		return nil, syntaxError(l, ErrMalformed,
			"commands must use function syntax like forward(10)")
	}

	op, _ := command.Lookup(m[1])
	var args []float64
	for _, tok := range argSep.Split(m[2], -1) {
		if tok == "" {
			continue
		}
		x, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, syntaxError(l, ErrMalformed,
				fmt.Sprintf("cannot parse argument %q", tok))
		}
		args = append(args, x)
	}

	call := &Call{Line: l.No, Command: command.Command{Op: op, Args: args}}
	if err := call.Check(); err != nil {
		return nil, &SyntaxError{Line: l.No, Text: l.Text, Err: err}
	}
	return call, nil
}

func syntaxError(l Line, base error, msg string) *SyntaxError {
	return &SyntaxError{
		Line: l.No,
		Text: l.Text,
		Err:  fmt.Errorf("%w: %s", base, msg),
	}
}

// Format writes the statements back as a script, using one tab per level
// of indentation.
func Format(stmts []Statement) string {
	var b strings.Builder
	format(&b, stmts, 0)
	return b.String()
}

func format(b *strings.Builder, stmts []Statement, depth int) {
	for _, s := range stmts {
		b.WriteString(strings.Repeat("\t", depth))
		switch s := s.(type) {
		case *Call:
			b.WriteString(s.Command.String())
			b.WriteByte('\n')
		case *Loop:
			if s.Var != "" {
				fmt.Fprintf(b, "for %s in range(%d):\n", s.Var, s.Count)
			} else {
				fmt.Fprintf(b, "repeat %d:\n", s.Count)
			}
			format(b, s.Body, depth+1)
		}
	}
}

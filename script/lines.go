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
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Line is a non-empty line of a script.
type Line struct {
	No     int    // 1-based line number
	Depth  int    // nesting depth derived from the indentation
	Indent string // the indentation, as found in the input
	Text   string // the statement, without indentation and comments
}

// Split breaks a script into lines and measures the indentation of each
// line.  Blank lines and comments are removed.
//
// A tab is one level of indentation.  For spaces, the first line indented
// with spaces fixes the number of spaces per level; this must be a multiple
// of two.  All later space indentation must be a multiple of this unit.
func Split(text string) ([]Line, error) {
	text = norm.NFKC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var res []Line
	spaceUnit := 0
	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1

		if idx := strings.IndexByte(raw, '#'); idx >= 0 {
			raw = raw[:idx]
		}
		body := strings.TrimLeft(raw, " \t")
		stmt := strings.TrimSpace(body)
		if stmt == "" {
			continue
		}
		indent := raw[:len(raw)-len(body)]

		var depth int
		nTab := strings.Count(indent, "\t")
		nSpace := len(indent) - nTab
		switch {
		case nTab > 0 && nSpace > 0:
			return nil, &SyntaxError{
				Line: lineNo,
				Text: stmt,
				Err:  fmt.Errorf("%w: mixed tabs and spaces", ErrIndent),
			}
		case nTab > 0:
			depth = nTab
		case nSpace > 0:
			if spaceUnit == 0 {
				if nSpace%2 != 0 {
					return nil, &SyntaxError{
						Line: lineNo,
						Text: stmt,
						Err:  fmt.Errorf("%w: %d spaces is not a multiple of 2", ErrIndent, nSpace),
					}
				}
				spaceUnit = nSpace
			}
			if nSpace%spaceUnit != 0 {
				return nil, &SyntaxError{
					Line: lineNo,
					Text: stmt,
					Err:  fmt.Errorf("%w: %d spaces is not a multiple of %d", ErrIndent, nSpace, spaceUnit),
				}
			}
			depth = nSpace / spaceUnit
		}

		res = append(res, Line{
			No:     lineNo,
			Depth:  depth,
			Indent: indent,
			Text:   stmt,
		})
	}
	return res, nil
}

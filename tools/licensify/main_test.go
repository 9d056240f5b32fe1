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

package main

import (
	"strings"
	"testing"
)

func TestAddHeader(t *testing.T) {
	src := "// Package foo does things.\npackage foo\n"

	out, ok := addHeader([]byte(src))
	if !ok || out == nil {
		t.Fatalf("addHeader: got %v, %t", out, ok)
	}
	if !strings.HasPrefix(string(out), header) || !strings.HasSuffix(string(out), src) {
		t.Errorf("unexpected result:\n%s", out)
	}

	again, ok := addHeader(out)
	if !ok || again != nil {
		t.Errorf("header added twice")
	}

	_, ok = addHeader([]byte("// Copyright (C) 1999 Someone Else\n\npackage foo\n"))
	if ok {
		t.Errorf("foreign license header not detected")
	}
}

func TestSkipDir(t *testing.T) {
	cases := map[string]bool{
		".":               false,
		"script":          false,
		"_examples":       true,
		".git":            true,
		"tools/_testdata": true,
	}
	for path, want := range cases {
		if got := skipDir(path); got != want {
			t.Errorf("skipDir(%q) = %t, want %t", path, got, want)
		}
	}
}

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

// Licensify adds the license header to all Go source files of the module.
//
// The program must be run from the top-level directory of the module.
package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const header = `// seehuhn.de/go/stitch - turtle scripts for embroidery machines
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

`

func main() {
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDir(path) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		newBody, ok := addHeader(body)
		if !ok {
			fmt.Println("ATTENTION " + path)
			return nil
		}
		if newBody == nil {
			return nil
		}

		fmt.Println("updating " + path)
		return os.WriteFile(path, newBody, 0o644)
	})
	if err != nil {
		log.Fatal(err)
	}
}

// skipDir reports whether a directory should not be visited.
// Directories starting with "." or "_" are ignored by the go tool, too.
func skipDir(path string) bool {
	name := filepath.Base(path)
	return path != "." && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_"))
}

// addHeader returns the file contents with the license header added.
// If the file already has the header, nil is returned.  If the file has a
// different license header, ok is false.
func addHeader(body []byte) (newBody []byte, ok bool) {
	if bytes.HasPrefix(body, []byte(header)) {
		return nil, true
	}
	if bytes.Contains(body[:min(len(body), 512)], []byte("Copyright")) {
		return nil, false
	}
	newBody = make([]byte, 0, len(header)+len(body))
	newBody = append(newBody, header...)
	newBody = append(newBody, body...)
	return newBody, true
}

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
	"runtime/debug"
	"strings"
)

// buildVersion describes the binary, as recorded by the go tool.
type buildVersion struct {
	Path     string // main module path
	Version  string // module version, empty for development builds
	Revision string // abbreviated VCS revision
	Dirty    bool   // whether the working tree had local modifications
}

func readBuildVersion() (buildVersion, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return buildVersion{}, false
	}

	v := buildVersion{Path: info.Main.Path}
	if info.Main.Version != "(devel)" {
		v.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			v.Revision = s.Value
		case "vcs.modified":
			v.Dirty = s.Value == "true"
		}
	}
	if len(v.Revision) > 8 {
		v.Revision = v.Revision[:8]
	}
	return v, true
}

func (v buildVersion) String() string {
	var tag string
	switch {
	case v.Version != "":
		tag = v.Version
	case v.Revision != "":
		tag = v.Revision
		if v.Dirty {
			tag += "+dirty"
		}
	default:
		return ""
	}
	return v.Path + " " + tag
}

// version returns a short description like
// "turtle-stitch (seehuhn.de/go/stitch v0.1.0)".
func version(toolName string) string {
	v, ok := readBuildVersion()
	if !ok {
		return toolName
	}
	desc := v.String()
	if desc == "" {
		return toolName
	}
	return toolName + " (" + strings.TrimSpace(desc) + ")"
}

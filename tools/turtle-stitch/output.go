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
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/stitch"
)

// report is the external form of a conversion result.
type report struct {
	File       string     `yaml:"file"`
	Color      string     `yaml:"color"`
	PointCount int        `yaml:"point_count"`
	BBox       [4]float64 `yaml:"bbox,flow"`
	Stitches   []opRecord `yaml:"stitches"`
}

type opRecord struct {
	Op string  `yaml:"op"`
	DX float64 `yaml:"dx,omitempty"`
	DY float64 `yaml:"dy,omitempty"`
}

func newReport(name, color string, res *stitch.Result) *report {
	r := &report{
		File:       name,
		Color:      color,
		PointCount: res.PointCount,
		BBox:       [4]float64{res.BBox.LLx, res.BBox.LLy, res.BBox.URx, res.BBox.URy},
		Stitches:   make([]opRecord, len(res.Ops)),
	}
	for i, op := range res.Ops {
		r.Stitches[i] = opRecord{
			Op: op.Kind.String(),
			DX: op.Delta.X,
			DY: op.Delta.Y,
		}
	}
	return r
}

// writeYAML writes one YAML document per report.
func writeYAML(w io.Writer, reports []*report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, r := range reports {
		err := enc.Encode(r)
		if err != nil {
			return err
		}
	}
	return enc.Close()
}

// writeTables writes a human-readable table for every report.
func writeTables(w io.Writer, reports []*report) error {
	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s: %d points, bbox [%g %g %g %g], color %s\n",
			r.File, r.PointCount, r.BBox[0], r.BBox[1], r.BBox[2], r.BBox[3], r.Color)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"#", "op", "dx", "dy", "x", "y"})
		table.SetAlignment(tablewriter.ALIGN_RIGHT)
		var x, y float64
		for j, op := range r.Stitches {
			x += op.DX
			y += op.DY
			table.Append([]string{
				strconv.Itoa(j + 1),
				op.Op,
				formatCoord(op.DX),
				formatCoord(op.DY),
				formatCoord(x),
				formatCoord(y),
			})
		}
		table.Render()
	}
	return nil
}

func formatCoord(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

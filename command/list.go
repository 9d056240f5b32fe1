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
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// entry is the external form of a command in a command list.
type entry struct {
	Op   string      `yaml:"op"`
	Args []yaml.Node `yaml:"args"`
}

type envelope struct {
	Commands []entry `yaml:"commands"`
}

// ReadList reads a command list from r.
//
// The list can either be a sequence of {op, args} records, or a mapping with
// the sequence stored under the key "commands".  Since JSON is a subset of
// YAML, both encodings are accepted:
//
//	[{"op": "forward", "args": [10]}, {"op": "left", "args": [90]}]
//
// Arguments given as strings are converted to numbers.  The commands are
// validated before the list is returned; invalid commands are reported as
// *ValidationError.  An empty input gives an empty list.
func ReadList(r io.Reader) ([]Command, error) {
	var root yaml.Node
	err := yaml.NewDecoder(r).Decode(&root)
	if err == io.EOF {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("cannot decode command list: %w", err)
	}

	var entries []entry
	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		doc = doc.Content[0]
	}
	switch doc.Kind {
	case yaml.MappingNode:
		var env envelope
		err = doc.Decode(&env)
		entries = env.Commands
	case yaml.SequenceNode:
		err = doc.Decode(&entries)
	case yaml.ScalarNode:
		if doc.ShortTag() == "!!null" {
			return nil, nil
		}
		err = errors.New("expected a list of commands")
	default:
		err = errors.New("expected a list of commands")
	}
	if err != nil {
		return nil, fmt.Errorf("cannot decode command list: %w", err)
	}

	cmds := make([]Command, len(entries))
	for i, e := range entries {
		op, _ := Lookup(e.Op)
		cmds[i].Op = op
		if len(e.Args) > 0 {
			cmds[i].Args = make([]float64, len(e.Args))
		}
		for j := range e.Args {
			x, err := toNumber(&e.Args[j])
			if err != nil {
				return nil, &ValidationError{Index: i, Op: e.Op, Err: err}
			}
			cmds[i].Args[j] = x
		}
	}

	err = Validate(cmds)
	if err != nil {
		return nil, err
	}
	return cmds, nil
}

func toNumber(node *yaml.Node) (float64, error) {
	if node.Kind != yaml.ScalarNode {
		return 0, fmt.Errorf("%w: found a %s", ErrNotANumber, kindName(node.Kind))
	}
	switch node.ShortTag() {
	case "!!int", "!!float", "!!str":
		// pass
	default:
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, node.Value)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(node.Value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, node.Value)
	}
	return x, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "non-scalar value"
	}
}

// WriteList writes a command list to w in the format accepted by ReadList.
func WriteList(w io.Writer, cmds []Command) error {
	out := struct {
		Commands []Command `yaml:"commands"`
	}{cmds}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	err := enc.Encode(out)
	if err != nil {
		return err
	}
	return enc.Close()
}

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

// Turtle-stitch converts turtle scripts into stitch sequences.
//
// Usage:
//
//	turtle-stitch [options] [file ...]
//
// Every input file is converted separately.  Files ending in .json, .yaml or
// .yml are read as command lists, all other files as scripts.  If no files
// are given, a script is read from standard input.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"seehuhn.de/go/stitch"
	"seehuhn.de/go/stitch/command"
	"seehuhn.de/go/stitch/config"
)

// options holds all command-line flag values.
type options struct {
	configFile  string
	outFile     string
	force       bool
	commands    bool
	verbose     bool
	showVersion bool
	cpuprofile  string
	memprofile  string

	// overrides for the configuration file, negative means unset
	step        float64
	maxCommands int
	maxPoints   int
	format      string
}

func main() {
	opt := &options{}
	flag.StringVar(&opt.configFile, "c", "", "configuration file (YAML)")
	flag.StringVar(&opt.outFile, "o", "", "output file name (default: standard output)")
	flag.BoolVar(&opt.force, "f", false, "overwrite output file if it exists")
	flag.BoolVar(&opt.commands, "commands", false, "read all inputs as command lists")
	flag.BoolVar(&opt.verbose, "v", false, "report progress on standard error")
	flag.BoolVar(&opt.showVersion, "version", false, "print version information and exit")
	flag.Float64Var(&opt.step, "step", -1, "nominal stitch length, 0 to disable splitting")
	flag.IntVar(&opt.maxCommands, "max-commands", -1, "maximal number of expanded commands")
	flag.IntVar(&opt.maxPoints, "max-points", -1, "maximal number of path points")
	flag.StringVar(&opt.format, "format", "", "output format: auto, yaml or table")
	flag.StringVar(&opt.cpuprofile, "cpuprofile", "", "write CPU profile to `file`")
	flag.StringVar(&opt.memprofile, "memprofile", "", "write memory profile to `file`")
	flag.Parse()

	if opt.showVersion {
		fmt.Println(version("turtle-stitch"))
		return
	}

	err := run(opt, flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "turtle-stitch:", err)
		os.Exit(1)
	}
}

func run(opt *options, args []string) error {
	stop, err := startProfile(opt.cpuprofile, opt.memprofile)
	if err != nil {
		return err
	}
	defer stop()

	cfg, err := loadConfig(opt)
	if err != nil {
		return err
	}

	inputs, err := readInputs(args)
	if err != nil {
		return err
	}

	results := make([]*stitch.Result, len(inputs))
	g := &errgroup.Group{}
	g.SetLimit(runtime.NumCPU())
	for i, in := range inputs {
		g.Go(func() error {
			res, err := compile(in, opt.commands || isCommandList(in.name), cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", in.name, err)
			}
			if opt.verbose {
				fmt.Fprintf(os.Stderr, "%s: %d commands, %d points\n",
					in.name, len(res.Commands), res.PointCount)
			}
			results[i] = res
			return nil
		})
	}
	err = g.Wait()
	if err != nil {
		return err
	}

	format := cfg.Format
	if format == config.FormatAuto {
		format = config.FormatYAML
		if opt.outFile == "" && term.IsTerminal(int(os.Stdout.Fd())) {
			format = config.FormatTable
		}
	}

	reports := make([]*report, len(results))
	for i, res := range results {
		reports[i] = newReport(inputs[i].name, cfg.Color, res)
	}
	write := func(w io.Writer) error {
		switch format {
		case config.FormatTable:
			return writeTables(w, reports)
		default:
			return writeYAML(w, reports)
		}
	}

	if opt.outFile == "" {
		return write(os.Stdout)
	}
	return writeFile(opt.outFile, opt.force, write)
}

// writeFile creates the named file and fills it using write.  Existing files
// are only overwritten if force is set.
func writeFile(name string, force bool, write func(io.Writer) error) error {
	if !force {
		if _, err := os.Stat(name); !os.IsNotExist(err) {
			return fmt.Errorf("output file %q already exists", name)
		}
	}
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	err = write(fd)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

func loadConfig(opt *options) (*config.Config, error) {
	cfg := config.Default()
	if opt.configFile != "" {
		var err error
		cfg, err = config.Load(opt.configFile)
		if err != nil {
			return nil, err
		}
	}
	if opt.step >= 0 {
		cfg.Step = opt.step
	}
	if opt.maxCommands >= 0 {
		cfg.MaxCommands = opt.maxCommands
	}
	if opt.maxPoints >= 0 {
		cfg.MaxPoints = opt.maxPoints
	}
	if opt.format != "" {
		cfg.Format = opt.format
	}
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

type input struct {
	name string
	data []byte
}

func readInputs(args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	res := make([]input, 0, len(args))
	for _, name := range args {
		var data []byte
		var err error
		if name == "-" {
			data, err = io.ReadAll(os.Stdin)
			name = "<stdin>"
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, err
		}
		res = append(res, input{name: name, data: data})
	}
	return res, nil
}

func isCommandList(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func compile(in input, isList bool, cfg *config.Config) (*stitch.Result, error) {
	if !isList {
		return stitch.CompileScript(string(in.data), cfg.Options())
	}
	cmds, err := command.ReadList(bytes.NewReader(in.data))
	if err != nil {
		return nil, err
	}
	return stitch.CompileCommands(cmds, cfg.Options())
}

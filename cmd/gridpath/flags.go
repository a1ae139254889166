package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

var errNoInput = errors.New("no input files given")

type globalFlags struct {
	Flagset     *flag.FlagSet
	Day         int
	Size        int
	Bytes       int
	Threshold   int
	Cheat       int
	MetricsFile string
	Debug       bool
	Files       []string
}

func newGlobalFlags(name string, output io.Writer) *globalFlags {
	f := &globalFlags{
		Flagset: flag.NewFlagSet(name, flag.ContinueOnError),
	}
	f.Flagset.SetOutput(output)
	f.Flagset.IntVar(
		&f.Day,
		"day",
		16,
		"puzzle to solve: 16 (maze), 18 (memspace) or 20 (racetrack)",
	)
	f.Flagset.IntVar(
		&f.Size,
		"size",
		70,
		"memspace: largest coordinate when the input has no Size header",
	)
	f.Flagset.IntVar(
		&f.Bytes,
		"bytes",
		1024,
		"memspace: number of bytes fallen before the first search",
	)
	f.Flagset.IntVar(
		&f.Threshold,
		"threshold",
		100,
		"racetrack: minimum saving for a cheat to count",
	)
	f.Flagset.IntVar(
		&f.Cheat,
		"cheat",
		20,
		"racetrack: longest cheat for part 2",
	)
	f.Flagset.StringVar(
		&f.MetricsFile,
		"metrics-file",
		"",
		"write Prometheus metrics in text format to this path",
	)
	f.Flagset.BoolVar(&f.Debug, "debug", false, "enable debug logging and state checks")
	return f
}

func (f *globalFlags) Parse(args []string) error {
	if err := f.Flagset.Parse(args); err != nil {
		return err
	}
	switch f.Day {
	case 16, 18, 20:
	default:
		return fmt.Errorf("unsupported day %d", f.Day)
	}
	f.Files = f.Flagset.Args()
	if len(f.Files) == 0 {
		return errNoInput
	}
	return nil
}

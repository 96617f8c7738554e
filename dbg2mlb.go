// This file is part of dbg2mlb.
//
// dbg2mlb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dbg2mlb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dbg2mlb.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"

	"github.com/jetsetilly/dbg2mlb/curated"
	"github.com/jetsetilly/dbg2mlb/dbgfile"
	"github.com/jetsetilly/dbg2mlb/labels"
	"github.com/jetsetilly/dbg2mlb/logger"
	"github.com/jetsetilly/dbg2mlb/memorymap"
	"github.com/jetsetilly/dbg2mlb/modalflag"
	"github.com/jetsetilly/dbg2mlb/version"
)

// number of log entries shown after an error if the log is not being echoed
const errorLogTail = 10

// exit values returned by launch()
const (
	exitOK         = 0
	exitArguments  = 10
	exitConversion = 20
)

// patterns for argument errors. any error matching one of these patterns
// results in the exitArguments exit value.
const (
	argumentError = "invalid arguments: %v"
	missingArgs   = "%s required for %s mode"
	tooManyArgs   = "too many arguments for %s mode"
)

const usage = `convert a ca65 debug file to a Mesen label file

eg. dbg2mlb cart.dbg cart.mlb
    dbg2mlb cart.dbg cart.mlb -b:0x10 -e:S`

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr))
}

// launch the program with the argument list. output is written to stdout and
// diagnostics to stderr. returns the value to be used with os.Exit().
func launch(args []string, stdout io.Writer, stderr io.Writer) int {
	// the logger is global and may contain entries from an earlier launch
	logger.Clear()
	echo = false

	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.AddSubModes("CONVERT", "LIST", "INFO", "DUMP", "MAP", "VERSION")
	md.AdditionalHelp(usage)

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		color.New(color.FgRed).Fprintf(stderr, "* error: %v\n", err)
		return exitArguments
	}

	switch md.Mode() {
	case "CONVERT":
		err = convert(md, stdout, stderr)

	case "LIST":
		err = list(md, stdout, stderr)

	case "INFO":
		err = info(md, stdout, stderr)

	case "DUMP":
		err = dump(md, stdout, stderr)

	case "MAP":
		err = regionMap(md, stdout)

	case "VERSION":
		err = showVersion(md, stdout)
	}

	// the logger is global so echoing is stopped before returning
	logger.SetEcho(nil)

	if err != nil {
		color.New(color.FgRed).Fprintf(stderr, "* error in %s mode: %s\n", md, err)

		// the log gives context for the error. there is no need to repeat it
		// if it has already been echoed
		if !echo {
			logger.Tail(logger.NewColorizer(stderr), errorLogTail)
		}

		if isArgumentError(err) {
			return exitArguments
		}
		return exitConversion
	}

	return exitOK
}

func isArgumentError(err error) bool {
	return curated.Is(err, argumentError) ||
		curated.Is(err, missingArgs) ||
		curated.Is(err, tooManyArgs) ||
		curated.Is(err, labels.InvalidConfiguration)
}

// parse the current mode, wrapping any flag errors so that they are reported
// as argument errors
func parse(md *modalflag.Modes) (bool, error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return false, nil
	case modalflag.ParseError:
		return false, curated.Errorf(argumentError, err)
	}
	return true, nil
}

// addConfigFlags adds the flags common to the modes that produce labels.
// the returned function creates the labels.Config once the flags have been
// parsed.
func addConfigFlags(md *modalflag.Modes, stderr io.Writer) func() (labels.Config, error) {
	md.AddLegacy("b", "base")
	md.AddLegacy("e", "exp")

	base := md.AddString("base", fmt.Sprintf("%#x", labels.DefaultGlobalBase), "global base subtracted from PRG-ROM symbols (the iNES header size)")
	exp := md.AddString("exp", "W", "usage of the $6000-$7fff block: W (work RAM) or S (save RAM)")
	ranges := md.AddBool("ranges", false, "write address ranges for symbols with a size")
	lenient := md.AddBool("lenient", false, "skip symbols that cannot be converted rather than failing")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	return func() (labels.Config, error) {
		var err error

		cfg := labels.DefaultConfig()
		cfg.Ranges = *ranges
		cfg.Lenient = *lenient

		cfg.GlobalBase, err = labels.ParseGlobalBase(*base)
		if err != nil {
			return cfg, err
		}

		cfg.Expansion, err = labels.ParseExpansion(*exp)
		if err != nil {
			return cfg, err
		}

		setLogEcho(*log, stderr)

		return cfg, cfg.Validate()
	}
}

// whether the log is being echoed by the current launch
var echo bool

func setLogEcho(e bool, stderr io.Writer) {
	echo = e
	if echo {
		logger.SetEcho(logger.NewColorizer(stderr))
	} else {
		logger.SetEcho(nil)
	}
}

// reportSkipped writes a warning for every symbol skipped in lenient mode
func reportSkipped(stderr io.Writer, err error) {
	warn := color.New(color.FgYellow)

	if merr, ok := err.(*multierror.Error); ok {
		for _, e := range merr.Errors {
			warn.Fprintf(stderr, "! skipped %s\n", e)
		}
		return
	}

	warn.Fprintf(stderr, "! skipped %s\n", err)
}

func convert(md *modalflag.Modes, stdout io.Writer, stderr io.Writer) error {
	md.NewMode()
	config := addConfigFlags(md, stderr)

	ok, err := parse(md)
	if !ok {
		return err
	}

	cfg, err := config()
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf(missingArgs, "debug file and label file", md)
	case 1:
		return curated.Errorf(missingArgs, "label file", md)
	case 2:
	default:
		return curated.Errorf(tooManyArgs, md)
	}

	st, err := dbgfile.ReadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	n, err := labels.ConvertFile(st, cfg, md.GetArg(1))
	if err != nil {
		// in lenient mode a multierror means that the file was written
		// but some symbols were skipped
		if _, ok := err.(*multierror.Error); !ok || !cfg.Lenient {
			return err
		}
		reportSkipped(stderr, err)
	}

	fmt.Fprintf(stdout, "%d labels written to %s\n", n, md.GetArg(1))

	return nil
}

func list(md *modalflag.Modes, stdout io.Writer, stderr io.Writer) error {
	md.NewMode()
	config := addConfigFlags(md, stderr)

	ok, err := parse(md)
	if !ok {
		return err
	}

	cfg, err := config()
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf(missingArgs, "debug file", md)
	case 1:
	default:
		return curated.Errorf(tooManyArgs, md)
	}

	st, err := dbgfile.ReadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	l, err := labels.Labels(st, cfg)
	if err != nil {
		if !cfg.Lenient {
			return err
		}
		reportSkipped(stderr, err)
	}

	labels.List(stdout, l)

	return nil
}

// readStore is used by the modes that only need the debug file
func readStore(md *modalflag.Modes, stderr io.Writer) (*dbgfile.Store, bool, error) {
	md.NewMode()
	log := md.AddBool("log", false, "echo debugging log to stderr")

	ok, err := parse(md)
	if !ok {
		return nil, false, err
	}

	setLogEcho(*log, stderr)

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, false, curated.Errorf(missingArgs, "debug file", md)
	case 1:
	default:
		return nil, false, curated.Errorf(tooManyArgs, md)
	}

	st, err := dbgfile.ReadFile(md.GetArg(0))
	if err != nil {
		return nil, false, err
	}

	return st, true, nil
}

func info(md *modalflag.Modes, stdout io.Writer, stderr io.Writer) error {
	st, ok, err := readStore(md, stderr)
	if !ok {
		return err
	}
	st.Summary(stdout)
	return nil
}

func dump(md *modalflag.Modes, stdout io.Writer, stderr io.Writer) error {
	st, ok, err := readStore(md, stderr)
	if !ok {
		return err
	}

	// color only if the output is a terminal
	var coloring bool
	if f, ok := stdout.(*os.File); ok {
		coloring = isatty.IsTerminal(f.Fd())
	}

	return st.Dump(stdout, coloring)
}

func regionMap(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()
	md.AddLegacy("e", "exp")
	exp := md.AddString("exp", "W", "usage of the $6000-$7fff block: W (work RAM) or S (save RAM)")

	ok, err := parse(md)
	if !ok {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(tooManyArgs, md)
	}

	e, err := labels.ParseExpansion(*exp)
	if err != nil {
		return err
	}

	_, err = io.WriteString(stdout, memorymap.Summary(e))
	return err
}

func showVersion(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information from version control")

	ok, err := parse(md)
	if !ok {
		return err
	}

	if *revision {
		v, r, _ := version.Version()
		fmt.Fprintf(stdout, "%s %s\n", v, r)
		return nil
	}

	fmt.Fprintln(stdout, version.String())
	return nil
}

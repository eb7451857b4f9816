// This file is part of brainf - https://github.com/prog-lang/brainf
//
// Copyright 2026 The brainf Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pkg/errors"
	"github.com/prog-lang/brainf/asm"
	"github.com/prog-lang/brainf/internal/config"
	"github.com/prog-lang/brainf/internal/logs"
	"github.com/prog-lang/brainf/vm"
	"github.com/tebeka/atexit"
)

type fileList []string

func (f *fileList) String() string     { return "" }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

var (
	rawIO       bool
	debug       bool
	dump        bool
	list        bool
	interactive bool
	logFileName string
	cfgFileName string
	withFiles   fileList
	stdout      = bufio.NewWriter(os.Stdout)
)

var errPrefix = text.Colors{text.FgRed, text.Bold}

// printError writes err to w with an "error:" prefix, including a stack trace
// in debug mode.
func printError(w io.Writer, err error) {
	if debug {
		fmt.Fprintf(w, "%s %+v\n", errPrefix.Sprint("error:"), err)
		return
	}
	fmt.Fprintf(w, "%s %v\n", errPrefix.Sprint("error:"), err)
}

func atExit(err error) {
	if err == nil {
		atexit.Exit(0)
	}
	stdout.Flush()
	printError(os.Stderr, err)
	atexit.Exit(1)
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] source.bf\n       %s -i [flags]\n\nFlags:\n", os.Args[0], os.Args[0])
	flag.PrintDefaults()
}

// loadConfig loads the configuration file and applies the flags that were
// explicitly set on the command line on top of it.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFileName != "" {
		cfg, err = config.Load(cfgFileName)
	} else {
		cfg, err = config.FindAndLoad(".")
	}
	if err != nil {
		return nil, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "raw":
			cfg.Run.Raw = rawIO
		case "dump":
			cfg.Run.Dump = dump
		case "log":
			cfg.Log.File = logFileName
		case "debug":
			if debug {
				cfg.Log.Level = "debug"
			}
		}
	})
	cfg.Run.With = append(cfg.Run.With, withFiles...)
	return cfg, nil
}

func setupLogger(cfg *config.Config) (*slog.Logger, error) {
	if err := logs.SetLevel(cfg.Log.Level); err != nil {
		return nil, err
	}
	if cfg.Log.File == "" {
		return logs.New(os.Stderr, nil), nil
	}
	f, err := os.OpenFile(config.ExpandHome(cfg.Log.File), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open log file")
	}
	atexit.Register(func() { f.Close() })
	return logs.New(os.Stderr, f), nil
}

// setupIO switches the terminal to raw mode if requested and returns the
// reader to use as the VM's standard input.
func setupIO(raw bool, logger *slog.Logger) io.Reader {
	if raw {
		tearDown, err := setRawIO()
		if err == nil {
			atexit.Register(tearDown)
			// in raw tty mode, we need to handle CTRL-D ourselves
			return &eotReader{os.Stdin}
		}
		logger.Warn("raw terminal mode unavailable", "error", err)
	}
	// If not raw tty, buffer stdin, but do not check further if the i/o is
	// a terminal or not.
	return bufio.NewReader(os.Stdin)
}

func run(fileName string, cfg *config.Config, stdin io.Reader, logger *slog.Logger) error {
	p, err := asm.AssembleFile(fileName)
	if err != nil {
		return err
	}
	logger.Debug("program loaded", "file", fileName, "instructions", len(p))
	if list {
		return asm.DisassembleAll(p, stdout)
	}

	opts := []vm.Option{
		vm.Output(stdout),
		vm.Input(stdin),
	}
	// append -with files to input stack in reverse order so that they are
	// read in order of appearance on the command line.
	for n := len(cfg.Run.With) - 1; n >= 0; n-- {
		f, err := os.Open(cfg.Run.With[n])
		if err != nil {
			return errors.Wrap(err, "cannot open input")
		}
		opts = append(opts, vm.Input(bufio.NewReader(f)))
		atexit.Register(func() { f.Close() })
	}

	i, err := vm.New(p, opts...)
	if err != nil {
		return err
	}
	start := time.Now()
	err = i.Run()
	logger.Debug("run complete",
		"instructions", i.InstructionCount(),
		"elapsed", time.Since(start),
		"pc", i.PC,
		"cells", i.Tape.Len())
	if cfg.Run.Dump {
		if derr := dumpTape(i.Tape, stdout); err == nil {
			err = derr
		}
	}
	return err
}

func main() {
	flag.Usage = usage
	flag.Var(&withFiles, "with", "Add `filename` to the input list (can be specified multiple times)")
	flag.BoolVar(&rawIO, "raw", false, "enable raw terminal IO")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.BoolVar(&dump, "dump", false, "dump the tape upon exit")
	flag.BoolVar(&list, "list", false, "print the disassembled program instead of running it")
	flag.BoolVar(&interactive, "i", false, "start an interactive session")
	flag.StringVar(&logFileName, "log", "", "also write JSON logs to `filename`")
	flag.StringVar(&cfgFileName, "config", "", "configuration `filename` (default: search for "+config.FileName+")")
	flag.Parse()

	if !isTerminal(os.Stderr.Fd()) {
		text.DisableColors()
	}

	atexit.Register(func() { stdout.Flush() })

	// exit through atexit so that the terminal gets restored.
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigc
		atexit.Exit(130)
	}()

	cfg, err := loadConfig()
	if err != nil {
		atExit(err)
	}
	logger, err := setupLogger(cfg)
	if err != nil {
		atExit(err)
	}
	if cfg.Path != "" {
		logger.Debug("configuration loaded", "file", cfg.Path)
	}

	if interactive {
		if flag.NArg() != 0 {
			usage()
			atexit.Exit(2)
		}
		atExit(repl(cfg, logger))
	}

	if flag.NArg() != 1 {
		usage()
		atexit.Exit(2)
	}

	stdin := setupIO(cfg.Run.Raw, logger)
	atExit(run(flag.Arg(0), cfg, stdin, logger))
}

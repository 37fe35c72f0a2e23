// Package cli parses command-line arguments, validates them and handles
// process-level concerns like exit codes. Flags explicitly set on the
// command line override the HCL configuration file.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/driller/config"
)

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Settings is the parsed command line.
type Settings struct {
	ConfigPath string
	GridPath   string
	Serve      bool
	Top        int // runner-up paths to list after the report

	set       map[string]bool // flags given explicitly
	size      int
	pad       bool
	logLevel  string
	logFormat string
	addr      string
	noGrid    bool
	noMap     bool
}

// Parse processes args. It returns the Settings, a boolean telling the
// caller to exit cleanly (help was shown), or an *ExitError.
func Parse(args []string, output io.Writer) (*Settings, bool, error) {
	fs := flag.NewFlagSet("driller", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
driller - find the richest diagonal descent through a square mine.

Usage:
  driller [options] [GRID_PATH]

Arguments:
  GRID_PATH
    Text file with one row per line of whitespace-separated integers.

Options:
`)
		fs.PrintDefaults()
	}

	s := &Settings{set: make(map[string]bool)}
	fs.StringVar(&s.ConfigPath, "config", "", "Path to an HCL configuration file.")
	fs.IntVar(&s.size, "size", 0, "Grid size n. 0 infers it from the first row, or from the row count with -pad.")
	fs.BoolVar(&s.pad, "pad", false, "Right-pad short (triangular) rows with zeros.")
	fs.StringVar(&s.logLevel, "log-level", "info", "Logging level: 'debug', 'info', 'warn', 'error'.")
	fs.StringVar(&s.logFormat, "log-format", "text", "Log output format: 'text' or 'json'.")
	fs.BoolVar(&s.Serve, "serve", false, "Run the HTTP API instead of solving a file.")
	fs.StringVar(&s.addr, "addr", ":8080", "Listen address for -serve.")
	fs.BoolVar(&s.noGrid, "no-grid", false, "Do not print the input grid.")
	fs.BoolVar(&s.noMap, "no-map", false, "Do not print the visual path map.")
	fs.IntVar(&s.Top, "top", 0, "Also list the N best paths.")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	fs.Visit(func(f *flag.Flag) { s.set[f.Name] = true })

	if fs.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "at most one GRID_PATH may be given"}
	}
	s.GridPath = fs.Arg(0)

	if s.GridPath == "" && s.ConfigPath == "" && !s.Serve {
		fs.Usage()
		return nil, true, nil
	}
	if s.size < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid size: must not be negative"}
	}
	if s.Top < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid top: must not be negative"}
	}
	s.logLevel = strings.ToLower(s.logLevel)
	s.logFormat = strings.ToLower(s.logFormat)

	return s, false, nil
}

// Apply overlays explicitly set flags and the positional grid path on cfg
// and re-validates it.
func (s *Settings) Apply(cfg *config.Config) error {
	if s.GridPath != "" {
		cfg.Input.Path = s.GridPath
		cfg.Input.Rows = nil
	}
	if s.set["size"] {
		cfg.Input.Size = s.size
	}
	if s.set["pad"] {
		cfg.Input.Padding = s.pad
	}
	if s.set["log-level"] || s.ConfigPath == "" {
		cfg.Log.Level = s.logLevel
	}
	if s.set["log-format"] || s.ConfigPath == "" {
		cfg.Log.Format = s.logFormat
	}
	if s.set["addr"] {
		cfg.Server.Addr = s.addr
	}
	if s.noGrid {
		cfg.Output.ShowGrid = false
	}
	if s.noMap {
		cfg.Output.Map = false
	}

	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	return nil
}

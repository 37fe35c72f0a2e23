// Package config loads the driller HCL configuration file.
//
// A file may contain input, output, log and server blocks, all optional:
//
//	input {
//	  path    = "mine1.txt"   # or rows = [[3, 0, 0], [1, 5, 0], [2, 6, 8]]
//	  size    = 7
//	  padding = false
//	}
//	output {
//	  show_grid = true
//	  narrative = true
//	  map       = true
//	}
//	log {
//	  level  = "info"
//	  format = "text"
//	}
//	server {
//	  addr     = ":8080"
//	  max_size = 14   # each extra row doubles search memory
//	}
//
// Expressions may read the process environment as env.NAME.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/driller/grid"
)

// ErrInvalidConfig wraps every parse, decode and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved configuration of a driller run.
type Config struct {
	Input  Input
	Output Output
	Log    Log
	Server Server
}

// Input describes where the grid comes from. At most one of Path and Rows is set.
type Input struct {
	Path    string
	Rows    [][]int
	Size    int
	Padding bool
}

// Output toggles report sections.
type Output struct {
	ShowGrid  bool
	Narrative bool
	Map       bool
}

// Log selects the slog level and handler.
type Log struct {
	Level  string // debug|info|warn|error
	Format string // text|json
}

// Server configures the HTTP API.
type Server struct {
	Addr string
	// MaxSize is the largest grid accepted by POST /api/solve. The search
	// keeps every node it creates, about 2^n per start column: n = 14 costs
	// a few MB per request, n = 20 close to 1 GB.
	MaxSize int
}

// DefaultMaxSize is the default server.max_size.
const DefaultMaxSize = 14

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output: Output{ShowGrid: true, Narrative: true, Map: true},
		Log:    Log{Level: "info", Format: "text"},
		Server: Server{Addr: ":8080", MaxSize: DefaultMaxSize},
	}
}

// fileRoot decodes all top-level blocks of a config file.
type fileRoot struct {
	Input  *inputBlock  `hcl:"input,block"`
	Output *outputBlock `hcl:"output,block"`
	Log    *logBlock    `hcl:"log,block"`
	Server *serverBlock `hcl:"server,block"`
}

type inputBlock struct {
	Path    *string `hcl:"path,optional"`
	Rows    [][]int `hcl:"rows,optional"`
	Size    *int    `hcl:"size,optional"`
	Padding *bool   `hcl:"padding,optional"`
}

type outputBlock struct {
	ShowGrid  *bool `hcl:"show_grid,optional"`
	Narrative *bool `hcl:"narrative,optional"`
	Map       *bool `hcl:"map,optional"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

type serverBlock struct {
	Addr    *string `hcl:"addr,optional"`
	MaxSize *int    `hcl:"max_size,optional"`
}

// Load reads and decodes the HCL file at path. A relative input path
// inside the file is resolved against the file's directory.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg, err := Parse(src, path)
	if err != nil {
		return nil, err
	}
	if cfg.Input.Path != "" && !filepath.IsAbs(cfg.Input.Path) {
		cfg.Input.Path = filepath.Join(filepath.Dir(path), cfg.Input.Path)
	}

	return cfg, nil
}

// Parse decodes HCL source on top of Default. filename is used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse %s: %s", ErrInvalidConfig, filename, diags.Error())
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: decode %s: %s", ErrInvalidConfig, filename, diags.Error())
	}

	cfg := Default()
	root.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// evalContext exposes the process environment as the env object.
func evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = cty.StringVal(v)
		}
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": cty.ObjectVal(env)},
	}
}

// apply copies every attribute present in the file onto cfg.
func (r *fileRoot) apply(cfg *Config) {
	if in := r.Input; in != nil {
		setString(&cfg.Input.Path, in.Path)
		setInt(&cfg.Input.Size, in.Size)
		setBool(&cfg.Input.Padding, in.Padding)
		if in.Rows != nil {
			cfg.Input.Rows = in.Rows
		}
	}
	if out := r.Output; out != nil {
		setBool(&cfg.Output.ShowGrid, out.ShowGrid)
		setBool(&cfg.Output.Narrative, out.Narrative)
		setBool(&cfg.Output.Map, out.Map)
	}
	if l := r.Log; l != nil {
		setString(&cfg.Log.Level, l.Level)
		setString(&cfg.Log.Format, l.Format)
	}
	if s := r.Server; s != nil {
		setString(&cfg.Server.Addr, s.Addr)
		setInt(&cfg.Server.MaxSize, s.MaxSize)
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// Validate checks enumerations and mutually exclusive inputs.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q: must be 'debug', 'info', 'warn', or 'error'", ErrInvalidConfig, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q: must be 'text' or 'json'", ErrInvalidConfig, c.Log.Format)
	}
	if c.Input.Path != "" && c.Input.Rows != nil {
		return fmt.Errorf("%w: input: set either path or rows, not both", ErrInvalidConfig)
	}
	if c.Input.Size < 0 {
		return fmt.Errorf("%w: input size %d is negative", ErrInvalidConfig, c.Input.Size)
	}
	if c.Server.MaxSize < 1 {
		return fmt.Errorf("%w: server max_size %d must be at least 1", ErrInvalidConfig, c.Server.MaxSize)
	}

	return nil
}

// Grid builds the configured grid from inline rows or the input file.
// Padding applies to both sources: short rows are filled with zeros up to
// the row count, as grid.WithPadding does for files.
// Returns grid.ErrMalformedInput (or grid.ErrEmptyGrid) on bad input and
// ErrInvalidConfig if no input is configured.
func (c *Config) Grid() (*grid.Grid, error) {
	if c.Input.Rows != nil {
		if c.Input.Size > 0 && len(c.Input.Rows) != c.Input.Size {
			return nil, fmt.Errorf("%w: %d rows, want %d", grid.ErrMalformedInput, len(c.Input.Rows), c.Input.Size)
		}
		if c.Input.Padding {
			return grid.New(padRows(c.Input.Rows))
		}
		return grid.New(c.Input.Rows)
	}
	if c.Input.Path == "" {
		return nil, fmt.Errorf("%w: no input path or rows", ErrInvalidConfig)
	}

	opts := []grid.LoadOption{grid.WithSize(c.Input.Size)}
	if c.Input.Padding {
		opts = append(opts, grid.WithPadding())
	}

	return grid.Load(c.Input.Path, opts...)
}

// padRows copies rows, right-padding each one with zeros to len(rows).
// Rows longer than len(rows) are copied as is and rejected by grid.New.
func padRows(rows [][]int) [][]int {
	n := len(rows)
	out := make([][]int, n)
	for i, row := range rows {
		out[i] = make([]int, max(n, len(row)))
		copy(out[i], row)
	}

	return out
}

package cli_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/driller/config"
	"github.com/katalvlaran/driller/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_UsageWhenNoInput(t *testing.T) {
	var out bytes.Buffer
	s, exit, err := cli.Parse(nil, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, s)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	_, exit, err := cli.Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"UnknownFlag", []string{"-depth", "3", "mine.txt"}},
		{"TwoPaths", []string{"a.txt", "b.txt"}},
		{"NegativeSize", []string{"-size", "-1", "mine.txt"}},
		{"NegativeTop", []string{"-top", "-2", "mine.txt"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			_, _, err := cli.Parse(tc.args, &out)
			var exitErr *cli.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}

// TestApply_FlagsOverrideConfig: only explicitly set flags replace file values.
func TestApply_FlagsOverrideConfig(t *testing.T) {
	var out bytes.Buffer
	s, exit, err := cli.Parse([]string{"-config", "driller.hcl", "-size", "7", "-pad", "-no-map", "-top", "3", "mine7.txt"}, &out)
	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, 3, s.Top)

	cfg := config.Default()
	cfg.Input.Rows = [][]int{{1}}
	cfg.Log = config.Log{Level: "debug", Format: "json"}
	require.NoError(t, s.Apply(cfg))

	assert.Equal(t, config.Input{Path: "mine7.txt", Size: 7, Padding: true}, cfg.Input)
	assert.False(t, cfg.Output.Map)
	assert.True(t, cfg.Output.ShowGrid)
	assert.Equal(t, config.Log{Level: "debug", Format: "json"}, cfg.Log)
}

// TestApply_NoConfigUsesFlagDefaults sets logging from flags when there is no file.
func TestApply_NoConfigUsesFlagDefaults(t *testing.T) {
	var out bytes.Buffer
	s, _, err := cli.Parse([]string{"-log-level", "WARN", "-serve", "-addr", ":9000"}, &out)
	require.NoError(t, err)
	assert.True(t, s.Serve)

	cfg := config.Default()
	require.NoError(t, s.Apply(cfg))
	assert.Equal(t, config.Log{Level: "warn", Format: "text"}, cfg.Log)
	assert.Equal(t, ":9000", cfg.Server.Addr)
}

func TestApply_InvalidLogLevel(t *testing.T) {
	var out bytes.Buffer
	s, _, err := cli.Parse([]string{"-log-level", "loud", "mine.txt"}, &out)
	require.NoError(t, err)

	err = s.Apply(config.Default())
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

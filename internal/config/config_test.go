package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jcorbin/intcode/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "intcode.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
program = "day9.txt"
inputs = [1, -2]
mode = "run"
ascii = true
mem-limit = 4096
timeout = "1m30s"
tee = "out.log"

[set]
1 = 12
2 = 2
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Program:  "day9.txt",
		Inputs:   []int64{1, -2},
		Set:      map[string]int64{"1": 12, "2": 2},
		Mode:     config.ModeRun,
		ASCII:    true,
		MemLimit: 4096,
		Timeout:  90 * time.Second,
		Tee:      "out.log",
	}, cfg)
	require.NoError(t, cfg.Validate())

	pokes, err := cfg.Pokes()
	require.NoError(t, err)
	assert.Equal(t, []config.Poke{{1, 12}, {2, 2}}, pokes)
}

func TestLoad_defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `program = "prog.txt"`))
	require.NoError(t, err)
	assert.Equal(t, config.ModeInput, cfg.Mode, "expected default mode")
}

func TestLoad_errors(t *testing.T) {
	path := writeConfig(t, `progarm = "typo.txt"`)
	_, err := config.Load(path)
	assert.EqualError(t, err, "unknown keys in "+path+": progarm")

	_, err = config.Load(writeConfig(t, `mode = `))
	assert.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("ENVE_LOGDISABLED", "1")
	t.Setenv("INTCODE_TRACE", "true")
	t.Setenv("INTCODE_MEM_LIMIT", "1024")
	t.Setenv("INTCODE_TIMEOUT", "250ms")
	t.Setenv("INTCODE_MODE", "")

	cfg := config.Default()
	cfg.PageSize = 64
	cfg = config.FromEnv(cfg)
	assert.True(t, cfg.Trace)
	assert.Equal(t, uint64(1024), cfg.MemLimit)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.Equal(t, uint64(64), cfg.PageSize, "expected unset variable to keep value")
	assert.Equal(t, config.ModeInput, cfg.Mode, "expected empty variable to keep value")

	t.Setenv("INTCODE_PAGE_SIZE", "32")
	cfg = config.FromEnv(cfg)
	assert.Equal(t, uint64(32), cfg.PageSize)
	assert.Equal(t, uint64(1024), cfg.MemLimit)
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name string
		cfg  config.Config
		err  string
	}{
		{"ok", config.Config{Program: "p", Mode: config.ModeOutput}, ""},
		{"resume", config.Config{Resume: "p.snap", Mode: config.ModeInput}, ""},
		{"bad mode", config.Config{Program: "p", Mode: "walk"}, `invalid mode "walk", must be one of run, output, or input`},
		{"no program", config.Config{Mode: config.ModeRun}, "no program given"},
		{"negative timeout", config.Config{Program: "p", Mode: config.ModeRun, Timeout: -1}, "invalid negative timeout -1ns"},
		{"bad set", config.Config{Program: "p", Mode: config.ModeRun, Set: map[string]int64{"x": 1}}, `invalid set address "x"`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); tc.err == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.err)
			}
		})
	}
}

func TestAddSet(t *testing.T) {
	var cfg config.Config
	require.NoError(t, cfg.AddSet("1=12"))
	require.NoError(t, cfg.AddSet(" 002 = -7 "))
	require.NoError(t, cfg.AddSet("1=13"))
	assert.Equal(t, map[string]int64{"1": 13, "2": -7}, cfg.Set)

	assert.EqualError(t, cfg.AddSet("12"), `invalid assignment "12", expected ADDR=VALUE`)
	assert.EqualError(t, cfg.AddSet("-1=2"), `invalid address in "-1=2"`)
	assert.Error(t, cfg.AddSet("1=two"))
}

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stegosaurus-midi/usbname/board"
	"github.com/stegosaurus-midi/usbname/pkg"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "usbname.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "Stegosaurus", cfg.Name)
	assert.Equal(t, "teensy41", cfg.Board)
	assert.EqualValues(t, 3, cfg.ProductIndex)
	assert.EqualValues(t, 0x0409, cfg.LangID)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
name: Stegosaurus Mk II
board: ARDUINO_TEENSY40
product_index: 2
format: c
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Stegosaurus Mk II", cfg.Name)
	assert.Equal(t, "ARDUINO_TEENSY40", cfg.Board)
	assert.EqualValues(t, 2, cfg.ProductIndex)
	assert.Equal(t, "c", cfg.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.EqualValues(t, 0x0409, cfg.LangID, "unset keys keep defaults")
	assert.NoError(t, cfg.Validate())

	p, err := cfg.Profile()
	require.NoError(t, err)
	assert.Equal(t, board.Teensy40, p.Identity)
	assert.EqualValues(t, 2, p.ProductIndex)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("USBNAME_BOARD", "atmega32u4")
	t.Setenv("USBNAME_LOG_LEVEL", "error")

	cfg, err := Load(writeConfig(t, "board: teensy40\n"))
	require.NoError(t, err)
	assert.Equal(t, "atmega32u4", cfg.Board)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "name: [unterminated\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"empty name", func(c *Config) { c.Name = "" }, pkg.ErrNameEmpty},
		{"unhandled board", func(c *Config) { c.Board = "rp2040" }, pkg.ErrUnhandledBoard},
		{"index zero", func(c *Config) { c.ProductIndex = 0 }, pkg.ErrInvalidParameter},
		{"lang zero", func(c *Config) { c.LangID = 0 }, pkg.ErrInvalidParameter},
		{"bad format", func(c *Config) { c.Format = "pdf" }, pkg.ErrInvalidParameter},
		{"bad log level", func(c *Config) { c.Log.Level = "chatty" }, pkg.ErrInvalidParameter},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, pkg.ErrInvalidParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestApplyLogging(t *testing.T) {
	original := pkg.GetLogLevel()
	defer func() {
		pkg.SetLogLevel(original)
		pkg.SetLogFormat(pkg.LogFormatText)
	}()

	cfg := DefaultConfig()
	cfg.Log.Level = "debug"
	require.NoError(t, cfg.ApplyLogging())
	assert.Equal(t, slog.LevelDebug, pkg.GetLogLevel())

	cfg.Log.Format = "yaml"
	assert.ErrorIs(t, cfg.ApplyLogging(), pkg.ErrInvalidParameter)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "usbname.yaml"), expandPath("~/usbname.yaml"))
	assert.Equal(t, "/etc/usbname", expandPath("/etc/usbname"))
}

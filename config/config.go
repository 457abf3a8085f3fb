// Package config loads usbname settings from a YAML file, the environment,
// and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/stegosaurus-midi/usbname/board"
	"github.com/stegosaurus-midi/usbname/descriptor"
	"github.com/stegosaurus-midi/usbname/pkg"
	"github.com/stegosaurus-midi/usbname/product"
)

// Config represents the application configuration.
type Config struct {
	Name         string    `mapstructure:"name" yaml:"name"`
	Board        string    `mapstructure:"board" yaml:"board"`
	ProductIndex uint8     `mapstructure:"product_index" yaml:"product_index"`
	LangID       uint16    `mapstructure:"lang_id" yaml:"lang_id"`
	Format       string    `mapstructure:"format" yaml:"format"`
	SysfsPath    string    `mapstructure:"sysfs_path" yaml:"sysfs_path"`
	Log          LogConfig `mapstructure:"log" yaml:"log"`
}

// LogConfig represents logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Formats lists the accepted output formats for encoded descriptors.
var Formats = []string{"hex", "go", "c"}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Name:         product.Name,
		Board:        string(board.Teensy41),
		ProductIndex: board.DefaultProductIndex,
		LangID:       descriptor.LangIDUSEnglish,
		Format:       "hex",
		SysfsPath:    "/sys/bus/usb/devices",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load loads configuration from file and returns the merged config.
// Priority: environment variables > config file > defaults. CLI flags are
// applied on top by the caller.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(expandPath(configPath))
	} else {
		v.SetConfigName(".usbname")
		v.SetConfigType("yaml")

		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(homeDir)
		}
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/usbname/")
	}

	v.SetEnvPrefix("USBNAME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The config file is optional.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		pkg.LogDebug(pkg.ComponentCLI, "no config file, using defaults")
	} else {
		pkg.LogDebug(pkg.ComponentCLI, "loaded config", "file", v.ConfigFileUsed())
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.SysfsPath = expandPath(cfg.SysfsPath)

	return cfg, nil
}

// setDefaults sets default values in viper.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("name", d.Name)
	v.SetDefault("board", d.Board)
	v.SetDefault("product_index", d.ProductIndex)
	v.SetDefault("lang_id", d.LangID)
	v.SetDefault("format", d.Format)
	v.SetDefault("sysfs_path", d.SysfsPath)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// expandPath expands ~ to the home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := product.ValidateName(c.Name); err != nil {
		return fmt.Errorf("name: %w", err)
	}
	if _, err := board.Parse(c.Board); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	if c.ProductIndex == 0 {
		return fmt.Errorf("%w: product_index 0 is the language table", pkg.ErrInvalidParameter)
	}
	if c.LangID == 0 {
		return fmt.Errorf("%w: lang_id must be non-zero", pkg.ErrInvalidParameter)
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("%w: format %q (must be one of %s)",
			pkg.ErrInvalidParameter, c.Format, strings.Join(Formats, ", "))
	}
	if _, err := pkg.ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	if _, err := pkg.ParseLogFormat(c.Log.Format); err != nil {
		return err
	}
	return nil
}

// Profile returns the board profile named by Board with ProductIndex
// applied.
func (c *Config) Profile() (board.Profile, error) {
	p, err := board.Parse(c.Board)
	if err != nil {
		return board.Profile{}, err
	}
	if c.ProductIndex != 0 {
		p.ProductIndex = c.ProductIndex
	}
	return p, nil
}

// ApplyLogging configures the shared logger from the Log section.
func (c *Config) ApplyLogging() error {
	level, err := pkg.ParseLogLevel(c.Log.Level)
	if err != nil {
		return err
	}
	format, err := pkg.ParseLogFormat(c.Log.Format)
	if err != nil {
		return err
	}
	pkg.SetLogLevel(level)
	pkg.SetLogFormat(format)
	return nil
}

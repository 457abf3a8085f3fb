// Command usbname prints the product-name string descriptor of the
// Stegosaurus controller and checks that devices report it.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/i582/cfmt/cmd/cfmt"
	"github.com/umputun/go-flags"

	"github.com/stegosaurus-midi/usbname/config"
	"github.com/stegosaurus-midi/usbname/pkg"
)

const (
	ver = "v0.4"
	url = "https://github.com/stegosaurus-midi/usbname"
)

// Options are the global flags and subcommands.
type Options struct {
	ConfigFile string `long:"config" env:"USBNAME_CONFIG" description:"path to config file (YAML)"`
	LogLevel   string `long:"log-level" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"log level"`
	LogFormat  string `long:"log-format" choice:"text" choice:"json" description:"log format"`
	NoColor    bool   `long:"no-color" env:"NO_COLOR" description:"disable colored output"`

	Encode    EncodeCommand    `command:"encode" description:"print the product-name descriptor for a board"`
	Decode    DecodeCommand    `command:"decode" description:"validate and decode descriptor bytes"`
	Boards    BoardsCommand    `command:"boards" description:"list supported boards"`
	Verify    VerifyCommand    `command:"verify" description:"check connected devices report the product name"`
	SelfCheck SelfCheckCommand `command:"selfcheck" description:"serve the descriptor and read it back in memory"`
}

type app struct {
	opts Options
	out  io.Writer
	ctx  context.Context
}

func newApp(ctx context.Context, out io.Writer) *app {
	a := &app{out: out, ctx: ctx}
	a.opts.Encode.app = a
	a.opts.Decode.app = a
	a.opts.Boards.app = a
	a.opts.Verify.app = a
	a.opts.SelfCheck.app = a
	return a
}

// run parses args and executes the selected command.
func (a *app) run(args []string) error {
	p := flags.NewParser(&a.opts, flags.PassDoubleDash|flags.HelpFlag)
	p.Name = "usbname"
	_, err := p.ParseArgs(args)
	return err
}

// loadConfig reads the config file and merges the global flags over it.
// CLI flags take precedence over config file values.
func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(a.opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if a.opts.LogLevel != "" {
		cfg.Log.Level = a.opts.LogLevel
	}
	if a.opts.LogFormat != "" {
		cfg.Log.Format = a.opts.LogFormat
	}
	if a.opts.NoColor {
		color.NoColor = true
	}
	return cfg, nil
}

// finish validates cfg after command flags were merged and applies logging.
func (a *app) finish(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := cfg.ApplyLogging(); err != nil {
		return err
	}
	pkg.LogDebug(pkg.ComponentCLI, "configuration",
		"name", cfg.Name, "board", cfg.Board, "index", cfg.ProductIndex, "format", cfg.Format)
	return nil
}

func (a *app) banner() {
	if color.NoColor {
		_, _ = fmt.Fprintf(a.out, "usbname %s %s\n", ver, url)
		return
	}
	_, _ = fmt.Fprintln(a.out, cfmt.Sprintf(
		"{{usbname}}::bgLightGreen|black {{USB product-name descriptor tool %s}}::lightYellow {{%s}}::lightBlue", ver, url))
}

// setupSignalHandler returns a context cancelled on SIGINT or SIGTERM.
func setupSignalHandler() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func main() {
	ctx, cancel := setupSignalHandler()
	defer cancel()

	err := newApp(ctx, os.Stdout).run(os.Args[1:])
	if err == nil {
		return
	}

	var flagsErr *flags.Error
	if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
		_, _ = fmt.Fprintln(os.Stdout, flagsErr.Message)
		return
	}
	_, _ = fmt.Fprintln(os.Stderr, cfmt.Sprintf("{{[ERROR] %s}}::red", err.Error()))
	cancel()
	os.Exit(1)
}

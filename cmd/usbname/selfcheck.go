package main

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"

	"github.com/stegosaurus-midi/usbname/descriptor"
	"github.com/stegosaurus-midi/usbname/device"
	"github.com/stegosaurus-midi/usbname/host"
	"github.com/stegosaurus-midi/usbname/pkg"
	"github.com/stegosaurus-midi/usbname/product"
)

// SelfCheckCommand installs the descriptor into an in-memory string table
// and reads it back the way a host does during enumeration.
type SelfCheckCommand struct {
	Board string `short:"b" long:"board" description:"board identity or build macro"`
	Name  string `short:"n" long:"name" description:"product name"`

	app *app
}

// Execute implements flags.Commander.
func (c *SelfCheckCommand) Execute(_ []string) error {
	cfg, err := c.app.loadConfig()
	if err != nil {
		return err
	}
	if c.Board != "" {
		cfg.Board = c.Board
	}
	if c.Name != "" {
		cfg.Name = c.Name
	}
	if err := c.app.finish(cfg); err != nil {
		return err
	}
	c.app.banner()

	p, err := cfg.Profile()
	if err != nil {
		return err
	}
	r, err := product.Resolve(p, cfg.Name)
	if err != nil {
		return err
	}
	out := c.app.out
	if r.External() {
		_, _ = color.New(color.FgYellow).Fprintf(out,
			"SKIP: %s takes its product name from %s\n", p.Name, p.External.File)
		return nil
	}

	var table device.StringTable
	langBuf := make([]byte, descriptor.HeaderSize+2)
	if err := r.Install(&table, langBuf, cfg.LangID); err != nil {
		return err
	}
	lb := &host.Loopback{Table: &table}

	raw, err := host.ReadRaw(c.app.ctx, lb, p.ProductIndex, cfg.LangID)
	if err != nil {
		return fmt.Errorf("read string %d: %w", p.ProductIndex, err)
	}
	got, err := host.ReadProductName(c.app.ctx, lb, p.ProductIndex)
	if err != nil {
		return fmt.Errorf("read product name: %w", err)
	}

	_, _ = fmt.Fprintf(out, "board:      %s (%s)\n", p.Name, p.Identity)
	_, _ = fmt.Fprintf(out, "index:      %d\n", p.ProductIndex)
	_, _ = fmt.Fprintf(out, "descriptor: %s\n", descriptor.FormatHex(raw))
	_, _ = fmt.Fprintf(out, "read back:  %q\n", got)

	if !bytes.Equal(raw, r.Descriptor) {
		_, _ = color.New(color.FgRed, color.Bold).Fprintln(out, "FAIL: served bytes differ from the encoded descriptor")
		return fmt.Errorf("%w: served % X, encoded % X", pkg.ErrNameMismatch, raw, r.Descriptor)
	}
	status := host.Compare(cfg.Name, got)
	if err := status.Error(); err != nil {
		_, _ = color.New(color.FgRed, color.Bold).Fprintf(out, "FAIL: %s\n", status)
		return fmt.Errorf("%w: got %q, want %q", err, got, cfg.Name)
	}
	_, _ = color.New(color.FgGreen, color.Bold).Fprintf(out, "PASS: %s\n", status)
	return nil
}

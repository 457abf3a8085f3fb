package main

import (
	"fmt"

	"github.com/stegosaurus-midi/usbname/descriptor"
	"github.com/stegosaurus-midi/usbname/pkg"
	"github.com/stegosaurus-midi/usbname/product"
)

// EncodeCommand prints the product-name descriptor for one board.
type EncodeCommand struct {
	Board  string `short:"b" long:"board" description:"board identity or build macro"`
	Name   string `short:"n" long:"name" description:"product name"`
	Index  uint8  `short:"i" long:"index" description:"product string index"`
	Format string `short:"f" long:"format" choice:"hex" choice:"go" choice:"c" description:"output format"`
	Symbol string `long:"symbol" default:"usb_string_product_name" description:"C symbol name"`

	app *app
}

// Execute implements flags.Commander.
func (c *EncodeCommand) Execute(_ []string) error {
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
	if c.Index != 0 {
		cfg.ProductIndex = c.Index
	}
	if c.Format != "" {
		cfg.Format = c.Format
	}
	if err := c.app.finish(cfg); err != nil {
		return err
	}

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
		_, _ = fmt.Fprintf(out, "# %s: product name is set in %s\n", p.Name, p.External.File)
		ids := p.BoardIDs
		if len(ids) == 0 {
			ids = []string{"<board>"}
		}
		for _, id := range ids {
			_, _ = fmt.Fprintln(out, p.External.Entry(id, r.Name))
		}
		return nil
	}

	switch cfg.Format {
	case "hex":
		_, _ = fmt.Fprintln(out, descriptor.FormatHex(r.Descriptor))
	case "go":
		_, _ = fmt.Fprintln(out, descriptor.FormatGo(r.Descriptor))
	case "c":
		src, err := descriptor.FormatC(c.Symbol, r.Name)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(out, src)
	default:
		return fmt.Errorf("%w: format %q", pkg.ErrInvalidParameter, cfg.Format)
	}
	pkg.LogInfo(pkg.ComponentCLI, "encoded product descriptor",
		"board", p.Identity, "index", p.ProductIndex, "length", len(r.Descriptor))
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/stegosaurus-midi/usbname/descriptor"
	"github.com/stegosaurus-midi/usbname/host"
	"github.com/stegosaurus-midi/usbname/pkg"
)

// DecodeCommand validates descriptor bytes given as hex and prints their
// fields.
type DecodeCommand struct {
	Expect string `short:"e" long:"expect" description:"fail unless the decoded name equals this"`
	Args   struct {
		Bytes []string `positional-arg-name:"BYTES" required:"1" description:"descriptor bytes in hex"`
	} `positional-args:"yes"`

	app *app
}

// Execute implements flags.Commander.
func (c *DecodeCommand) Execute(_ []string) error {
	cfg, err := c.app.loadConfig()
	if err != nil {
		return err
	}
	if err := c.app.finish(cfg); err != nil {
		return err
	}

	data, err := descriptor.ParseHex(strings.Join(c.Args.Bytes, " "))
	if err != nil {
		return err
	}
	name, err := descriptor.Decode(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", descriptor.FormatHex(data), err)
	}

	var d descriptor.StringDescriptor
	if err := descriptor.ParseStringDescriptor(data, &d); err != nil {
		return err
	}

	out := c.app.out
	_, _ = fmt.Fprintf(out, "bLength:         %d (0x%02X)\n", d.Length, d.Length)
	_, _ = fmt.Fprintf(out, "bDescriptorType: %d\n", d.DescriptorType)
	_, _ = fmt.Fprintf(out, "code units:      %d\n", len(d.Units))
	_, _ = fmt.Fprintf(out, "name:            %q\n", name)

	if c.Expect != "" {
		status := host.Compare(c.Expect, name)
		pkg.LogDebug(pkg.ComponentCLI, "compared decoded name", "want", c.Expect, "status", status)
		if err := status.Error(); err != nil {
			return fmt.Errorf("%w: got %q, want %q", err, name, c.Expect)
		}
	}
	return nil
}

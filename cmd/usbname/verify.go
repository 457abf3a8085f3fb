package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/thoas/go-funk"

	"github.com/stegosaurus-midi/usbname/host"
	"github.com/stegosaurus-midi/usbname/host/sysfs"
	"github.com/stegosaurus-midi/usbname/pkg"
)

// VerifyCommand checks that a connected device reports the product name.
type VerifyCommand struct {
	Name  string `short:"n" long:"name" description:"expected product name"`
	Sysfs string `long:"sysfs" description:"sysfs USB device directory"`
	Wire  bool   `short:"w" long:"wire" description:"read descriptors over libusb instead of sysfs"`
	All   bool   `short:"a" long:"all" description:"list every device, not only matches"`

	app *app
}

// found is one device seen by a scan backend.
type found struct {
	Location  string
	VendorID  uint16
	ProductID uint16
	Product   string
	Status    pkg.MatchStatus
	Err       error
}

// Execute implements flags.Commander.
func (c *VerifyCommand) Execute(_ []string) error {
	cfg, err := c.app.loadConfig()
	if err != nil {
		return err
	}
	if c.Name != "" {
		cfg.Name = c.Name
	}
	if c.Sysfs != "" {
		cfg.SysfsPath = c.Sysfs
	}
	if err := c.app.finish(cfg); err != nil {
		return err
	}
	c.app.banner()

	var devices []found
	if c.Wire {
		devices, err = scanWire(c.app, cfg.Name)
	} else {
		devices, err = scanSysfs(cfg.SysfsPath, cfg.Name)
	}
	if err != nil {
		return err
	}

	matches := funk.Filter(devices, func(d found) bool {
		return d.Status == pkg.MatchStatusMatch
	}).([]found)

	shown := matches
	if c.All {
		shown = devices
	}
	if len(shown) > 0 {
		if err := c.printDevices(shown); err != nil {
			return err
		}
	}

	if len(matches) == 0 {
		_, _ = color.New(color.FgRed, color.Bold).Fprintf(c.app.out,
			"FAIL: none of %d device(s) report %q\n", len(devices), cfg.Name)
		return fmt.Errorf("%w: no device reports %q", pkg.ErrNoDevice, cfg.Name)
	}
	_, _ = color.New(color.FgGreen, color.Bold).Fprintf(c.app.out,
		"PASS: %d device(s) report %q\n", len(matches), cfg.Name)
	return nil
}

func (c *VerifyCommand) printDevices(devices []found) error {
	table := tablewriter.NewWriter(c.app.out)
	table.Header("Location", "VID", "PID", "Product", "Status")
	for _, d := range devices {
		status := d.Status.String()
		if d.Err != nil {
			status = d.Err.Error()
		}
		if err := table.Append(
			d.Location,
			fmt.Sprintf("%04x", d.VendorID),
			fmt.Sprintf("%04x", d.ProductID),
			d.Product,
			status,
		); err != nil {
			return err
		}
	}
	return table.Render()
}

// scanSysfs classifies every device listed under root against name.
func scanSysfs(root, name string) ([]found, error) {
	devices, err := sysfs.Scan(root)
	if err != nil {
		return nil, err
	}
	out := make([]found, 0, len(devices))
	for _, d := range devices {
		out = append(out, found{
			Location:  d.Port,
			VendorID:  d.VendorID,
			ProductID: d.ProductID,
			Product:   d.Product,
			Status:    host.Compare(name, d.Product),
		})
	}
	pkg.LogDebug(pkg.ComponentCLI, "sysfs scan", "root", root, "devices", len(out))
	return out, nil
}

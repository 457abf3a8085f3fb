//go:build gousb && cgo

package main

import (
	"errors"
	"fmt"

	"github.com/stegosaurus-midi/usbname/host"
	"github.com/stegosaurus-midi/usbname/host/gousb"
	"github.com/stegosaurus-midi/usbname/pkg"
)

// scanWire reads the product string descriptor of every device over libusb.
func scanWire(a *app, name string) ([]found, error) {
	infos, err := gousb.Scan(a.ctx, nil)
	if err != nil {
		return nil, err
	}
	out := make([]found, 0, len(infos))
	for _, info := range infos {
		f := found{
			Location:  fmt.Sprintf("%03d:%03d", info.Bus, info.Address),
			VendorID:  info.VendorID,
			ProductID: info.ProductID,
			Product:   info.Product,
			Status:    host.Compare(name, info.Product),
		}
		if info.Err != nil && !errors.Is(info.Err, pkg.ErrNoProductString) {
			f.Err = info.Err
		}
		out = append(out, f)
	}
	return out, nil
}

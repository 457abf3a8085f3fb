//go:build !gousb || !cgo

package main

import (
	"fmt"

	"github.com/stegosaurus-midi/usbname/pkg"
)

// scanWire needs libusb; build with -tags gousb.
func scanWire(_ *app, _ string) ([]found, error) {
	return nil, fmt.Errorf("%w: built without libusb support (use -tags gousb)", pkg.ErrInvalidParameter)
}

//go:build !linux

package sysfs

import (
	"fmt"

	"github.com/stegosaurus-midi/usbname/pkg"
)

// DefaultRoot is where the kernel lists USB devices on Linux.
const DefaultRoot = "/sys/bus/usb/devices"

// Device holds information about a USB device discovered via sysfs.
type Device struct {
	Port         string
	SysfsPath    string
	DevfsPath    string
	BusNum       uint8
	DevNum       uint8
	VendorID     uint16
	ProductID    uint16
	Manufacturer string
	Product      string
	Serial       string
	Speed        string
}

// Scan is only available on Linux.
func Scan(root string) ([]Device, error) {
	return nil, fmt.Errorf("sysfs: %w on this platform", pkg.ErrNoDevice)
}

// FindByProduct is only available on Linux.
func FindByProduct(root, name string) ([]Device, error) {
	return Scan(root)
}

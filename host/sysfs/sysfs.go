//go:build linux

package sysfs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/stegosaurus-midi/usbname/pkg"
)

// DefaultRoot is where the kernel lists USB devices.
const DefaultRoot = "/sys/bus/usb/devices"

// DevfsRoot is where usbfs device nodes live.
const DevfsRoot = "/dev/bus/usb"

// =============================================================================
// USB Device Information
// =============================================================================

// Device holds information about a USB device discovered via sysfs.
type Device struct {
	Port         string // sysfs name, e.g. "1-1.2"
	SysfsPath    string // Path in /sys/bus/usb/devices
	DevfsPath    string // Path in /dev/bus/usb
	BusNum       uint8
	DevNum       uint8
	VendorID     uint16
	ProductID    uint16
	Manufacturer string
	Product      string
	Serial       string
	Speed        string // Link speed in Mb/s as reported by the kernel
}

// =============================================================================
// Sysfs Parsing
// =============================================================================

// Scan lists the USB devices under root. An empty root means DefaultRoot.
// Entries that cannot be parsed are skipped.
func Scan(root string) ([]Device, error) {
	if root == "" {
		root = DefaultRoot
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	var devices []Device
	for _, entry := range entries {
		name := entry.Name()

		// USB devices have names like "1-1", "1-1.2", etc.
		// Skip root hubs (usb1, usb2, etc.) and interfaces (1-1:1.0).
		if strings.HasPrefix(name, "usb") || strings.Contains(name, ":") {
			continue
		}

		dev, err := parseDevice(filepath.Join(root, name))
		if err != nil {
			pkg.LogDebug(pkg.ComponentHost, "skipping sysfs entry", "port", name, "error", err)
			continue
		}
		devices = append(devices, dev)
	}
	return devices, nil
}

// FindByProduct returns the devices under root whose product string equals
// name.
func FindByProduct(root, name string) ([]Device, error) {
	devices, err := Scan(root)
	if err != nil {
		return nil, err
	}
	var found []Device
	for _, dev := range devices {
		if dev.Product == name {
			found = append(found, dev)
		}
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: no device reports product %q", pkg.ErrNoDevice, name)
	}
	return found, nil
}

// parseDevice parses USB device information from sysfs.
func parseDevice(sysfsPath string) (Device, error) {
	dev := Device{
		Port:      filepath.Base(sysfsPath),
		SysfsPath: sysfsPath,
	}

	busNum, err := readUint8(filepath.Join(sysfsPath, "busnum"))
	if err != nil {
		return dev, err
	}
	dev.BusNum = busNum

	devNum, err := readUint8(filepath.Join(sysfsPath, "devnum"))
	if err != nil {
		return dev, err
	}
	dev.DevNum = devNum
	dev.DevfsPath = formatDevfsPath(busNum, devNum)

	if v, err := readHexUint16(filepath.Join(sysfsPath, "idVendor")); err == nil {
		dev.VendorID = v
	}
	if v, err := readHexUint16(filepath.Join(sysfsPath, "idProduct")); err == nil {
		dev.ProductID = v
	}

	// String attributes are absent when the device has no such string.
	dev.Manufacturer, _ = readString(filepath.Join(sysfsPath, "manufacturer"))
	dev.Product, _ = readString(filepath.Join(sysfsPath, "product"))
	dev.Serial, _ = readString(filepath.Join(sysfsPath, "serial"))
	dev.Speed, _ = readString(filepath.Join(sysfsPath, "speed"))

	return dev, nil
}

// =============================================================================
// Sysfs Read Helpers
// =============================================================================

// readString reads a string from a sysfs attribute file.
func readString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// readUint8 reads an unsigned decimal uint8 from a sysfs attribute file.
func readUint8(path string) (uint8, error) {
	s, err := readString(path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}

// readHexUint16 reads a hexadecimal uint16 from a sysfs attribute file.
func readHexUint16(path string) (uint16, error) {
	s, err := readString(path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

// formatDevfsPath constructs a /dev/bus/usb path from bus and device numbers.
func formatDevfsPath(busNum, devNum uint8) string {
	return fmt.Sprintf("%s/%03d/%03d", DevfsRoot, busNum, devNum)
}

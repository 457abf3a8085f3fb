//go:build linux

package sysfs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stegosaurus-midi/usbname/pkg"
)

// writeDevice creates a fake sysfs device directory under root.
func writeDevice(t *testing.T, root, port string, attrs map[string]string) {
	t.Helper()
	dir := filepath.Join(root, port)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, value := range attrs {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(value+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func fakeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeDevice(t, root, "usb1", map[string]string{"busnum": "1", "devnum": "1"})
	writeDevice(t, root, "1-1", map[string]string{
		"busnum":       "1",
		"devnum":       "4",
		"idVendor":     "16c0",
		"idProduct":    "0485",
		"manufacturer": "Teensyduino",
		"product":      "Stegosaurus",
		"serial":       "12345670",
		"speed":        "480",
	})
	writeDevice(t, root, "1-1:1.0", map[string]string{"bInterfaceNumber": "00"})
	writeDevice(t, root, "1-2", map[string]string{
		"busnum":    "1",
		"devnum":    "5",
		"idVendor":  "2341",
		"idProduct": "8037",
		"product":   "Arduino Micro",
	})
	writeDevice(t, root, "2-1", map[string]string{"idVendor": "1234"}) // no busnum
	return root
}

func TestScan(t *testing.T) {
	devices, err := Scan(fakeTree(t))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(devices) != 2 {
		t.Fatalf("len(devices) = %d, want 2: %+v", len(devices), devices)
	}

	dev := devices[0]
	if dev.Port != "1-1" {
		t.Errorf("Port = %s, want 1-1", dev.Port)
	}
	if dev.VendorID != 0x16C0 || dev.ProductID != 0x0485 {
		t.Errorf("VID:PID = %04x:%04x", dev.VendorID, dev.ProductID)
	}
	if dev.Product != "Stegosaurus" || dev.Manufacturer != "Teensyduino" {
		t.Errorf("strings = %q / %q", dev.Manufacturer, dev.Product)
	}
	if dev.DevfsPath != "/dev/bus/usb/001/004" {
		t.Errorf("DevfsPath = %s", dev.DevfsPath)
	}
	if devices[1].Serial != "" {
		t.Errorf("missing serial read as %q", devices[1].Serial)
	}
}

func TestScan_MissingRoot(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestFindByProduct(t *testing.T) {
	root := fakeTree(t)

	found, err := FindByProduct(root, "Stegosaurus")
	if err != nil {
		t.Fatalf("FindByProduct: %v", err)
	}
	if len(found) != 1 || found[0].Port != "1-1" {
		t.Errorf("found = %+v", found)
	}

	if _, err := FindByProduct(root, "Brontosaurus"); !errors.Is(err, pkg.ErrNoDevice) {
		t.Errorf("error = %v, want ErrNoDevice", err)
	}
}

func TestFormatDevfsPath(t *testing.T) {
	tests := []struct {
		busNum   uint8
		devNum   uint8
		expected string
	}{
		{1, 1, "/dev/bus/usb/001/001"},
		{1, 123, "/dev/bus/usb/001/123"},
		{12, 34, "/dev/bus/usb/012/034"},
		{255, 255, "/dev/bus/usb/255/255"},
	}

	for _, tt := range tests {
		got := formatDevfsPath(tt.busNum, tt.devNum)
		if got != tt.expected {
			t.Errorf("formatDevfsPath(%d, %d) = %q, want %q",
				tt.busNum, tt.devNum, got, tt.expected)
		}
	}
}

//go:build gousb && cgo

package gousb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/gousb"
	"github.com/google/gousb/usbid"

	"github.com/stegosaurus-midi/usbname/descriptor"
	"github.com/stegosaurus-midi/usbname/device"
	"github.com/stegosaurus-midi/usbname/host"
	"github.com/stegosaurus-midi/usbname/pkg"
)

// Device adapts a libusb device handle to host.ControlTransferer.
type Device struct {
	dev *gousb.Device
}

// ControlTransfer implements host.ControlTransferer. A context deadline
// becomes the libusb control timeout.
func (d *Device) ControlTransfer(ctx context.Context, setup *device.SetupPacket, data []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		d.dev.ControlTimeout = time.Until(deadline)
	}
	if int(setup.Length) < len(data) {
		data = data[:setup.Length]
	}
	return d.dev.Control(setup.RequestType, setup.Request, setup.Value, setup.Index, data)
}

// Info describes one device and the product string it served.
type Info struct {
	Bus         int
	Address     int
	VendorID    uint16
	ProductID   uint16
	Description string // From the usb.ids database
	Product     string // Read over the wire; empty on error
	Raw         []byte // Product string descriptor as received
	Err         error
}

// Scan opens every device for which accept returns true and reads its
// product string descriptor. accept may be nil to open every device.
func Scan(ctx context.Context, accept func(vid, pid uint16) bool) ([]Info, error) {
	usbctx := gousb.NewContext()
	defer usbctx.Close()

	devs, err := usbctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return accept == nil || accept(uint16(desc.Vendor), uint16(desc.Product))
	})
	defer func() {
		for _, d := range devs {
			d.Close()
		}
	}()
	if err != nil && len(devs) == 0 {
		return nil, fmt.Errorf("open devices: %w", err)
	}

	infos := make([]Info, 0, len(devs))
	for _, d := range devs {
		info := Info{
			Bus:         d.Desc.Bus,
			Address:     d.Desc.Address,
			VendorID:    uint16(d.Desc.Vendor),
			ProductID:   uint16(d.Desc.Product),
			Description: usbid.Describe(d.Desc),
		}
		info.Product, info.Raw, info.Err = readProduct(ctx, &Device{dev: d})
		if info.Err != nil {
			pkg.LogWarn(pkg.ComponentHost, "product string unreadable",
				"bus", info.Bus, "address", info.Address, "error", info.Err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func readProduct(ctx context.Context, d *Device) (string, []byte, error) {
	index, err := host.ReadProductIndex(ctx, d)
	if err != nil {
		return "", nil, err
	}
	if index == 0 {
		return "", nil, pkg.ErrNoProductString
	}
	langs, err := host.ReadLanguages(ctx, d)
	if err != nil {
		return "", nil, err
	}
	raw, err := host.ReadRaw(ctx, d, index, langs[0])
	if err != nil {
		return "", nil, err
	}
	name, err := descriptor.Decode(raw)
	return name, raw, err
}

package host

import (
	"context"
	"fmt"

	"github.com/stegosaurus-midi/usbname/device"
	"github.com/stegosaurus-midi/usbname/pkg"
)

// Loopback is a ControlTransferer that answers requests from a string table
// in the same process. Setup packets go through their 8-byte wire form.
type Loopback struct {
	Table *device.StringTable
}

// ControlTransfer implements ControlTransferer.
func (l *Loopback) ControlTransfer(ctx context.Context, setup *device.SetupPacket, data []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if l.Table == nil {
		return 0, pkg.ErrNoDevice
	}

	var wire [device.SetupPacketSize]byte
	setup.MarshalTo(wire[:])
	var received device.SetupPacket
	if err := device.ParseSetupPacket(wire[:], &received); err != nil {
		return 0, err
	}

	resp, err := l.Table.HandleSetup(&received)
	if err != nil {
		return 0, fmt.Errorf("stall: %w", err)
	}
	return copy(data, resp), nil
}

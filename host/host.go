package host

import (
	"context"
	"fmt"

	"github.com/stegosaurus-midi/usbname/descriptor"
	"github.com/stegosaurus-midi/usbname/device"
	"github.com/stegosaurus-midi/usbname/pkg"
)

// ControlTransferer performs control transfers on a device's default pipe.
// For IN transfers, data is filled with received data and the number of
// bytes received is returned.
type ControlTransferer interface {
	ControlTransfer(ctx context.Context, setup *device.SetupPacket, data []byte) (int, error)
}

// readDescriptor reads the string descriptor at index into buf and returns
// the descriptor bytes.
func readDescriptor(ctx context.Context, ct ControlTransferer, index uint8, langID uint16, buf []byte) ([]byte, error) {
	var setup device.SetupPacket

	// Header first; some devices misbehave on an oversized first request.
	device.GetStringDescriptorSetup(&setup, index, langID, descriptor.HeaderSize)
	n, err := ct.ControlTransfer(ctx, &setup, buf[:descriptor.HeaderSize])
	if err != nil {
		return nil, fmt.Errorf("string %d header: %w", index, err)
	}
	if n < descriptor.HeaderSize {
		return nil, fmt.Errorf("string %d: %w", index, pkg.ErrDescriptorTooShort)
	}
	if buf[1] != descriptor.DescriptorTypeString {
		return nil, fmt.Errorf("string %d: %w", index, pkg.ErrDescriptorTypeMismatch)
	}

	length := int(buf[0])
	if length < descriptor.HeaderSize {
		return nil, fmt.Errorf("string %d: %w: bLength %d", index, pkg.ErrDescriptorLength, length)
	}
	if length > len(buf) {
		return nil, fmt.Errorf("string %d: %w: bLength %d", index, pkg.ErrBufferTooSmall, length)
	}
	device.GetStringDescriptorSetup(&setup, index, langID, uint16(length))
	n, err = ct.ControlTransfer(ctx, &setup, buf[:length])
	if err != nil {
		return nil, fmt.Errorf("string %d: %w", index, err)
	}
	if n != length || int(buf[0]) != length {
		return nil, fmt.Errorf("string %d: %w: bLength %d, received %d",
			index, pkg.ErrDescriptorLength, buf[0], n)
	}
	return buf[:n], nil
}

// Device descriptor layout offsets (USB 2.0 Spec Table 9-8).
const (
	deviceDescriptorSize = 18
	offsetProductIndex   = 15
)

// ReadProductIndex reads the device descriptor and returns iProduct.
// A device without a product string reports index 0.
func ReadProductIndex(ctx context.Context, ct ControlTransferer) (uint8, error) {
	var setup device.SetupPacket
	var buf [deviceDescriptorSize]byte
	device.GetDescriptorSetup(&setup, descriptor.DescriptorTypeDevice, 0, deviceDescriptorSize)
	n, err := ct.ControlTransfer(ctx, &setup, buf[:])
	if err != nil {
		return 0, fmt.Errorf("device descriptor: %w", err)
	}
	if n < deviceDescriptorSize {
		return 0, fmt.Errorf("device descriptor: %w", pkg.ErrDescriptorTooShort)
	}
	if buf[1] != descriptor.DescriptorTypeDevice {
		return 0, fmt.Errorf("device descriptor: %w", pkg.ErrDescriptorTypeMismatch)
	}
	return buf[offsetProductIndex], nil
}

// ReadLanguages reads string descriptor zero.
func ReadLanguages(ctx context.Context, ct ControlTransferer) ([]uint16, error) {
	var buf [descriptor.MaxLength + 1]byte
	data, err := readDescriptor(ctx, ct, 0, 0, buf[:])
	if err != nil {
		return nil, err
	}
	var langs descriptor.LanguageDescriptor
	if err := descriptor.ParseLanguageDescriptor(data, &langs); err != nil {
		return nil, err
	}
	return langs.LangIDs, nil
}

// ReadRaw reads the string descriptor at index without decoding it.
func ReadRaw(ctx context.Context, ct ControlTransferer, index uint8, langID uint16) ([]byte, error) {
	if index == 0 {
		return nil, fmt.Errorf("%w: index 0 is the language table", pkg.ErrInvalidIndex)
	}
	var buf [descriptor.MaxLength + 1]byte
	data, err := readDescriptor(ctx, ct, index, langID, buf[:])
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// ReadString reads and decodes the string descriptor at index.
func ReadString(ctx context.Context, ct ControlTransferer, index uint8, langID uint16) (string, error) {
	data, err := ReadRaw(ctx, ct, index, langID)
	if err != nil {
		return "", err
	}
	s, err := descriptor.Decode(data)
	if err != nil {
		return "", fmt.Errorf("string %d: %w", index, err)
	}
	pkg.LogDebug(pkg.ComponentHost, "string descriptor", "index", index, "value", s)
	return s, nil
}

// ReadProductName reads the product string at index in the first language
// the device lists.
func ReadProductName(ctx context.Context, ct ControlTransferer, index uint8) (string, error) {
	langs, err := ReadLanguages(ctx, ct)
	if err != nil {
		return "", err
	}
	return ReadString(ctx, ct, index, langs[0])
}

// Compare classifies a product string read from a device against want.
func Compare(want, got string) pkg.MatchStatus {
	switch {
	case got == "":
		return pkg.MatchStatusMissing
	case got == want:
		return pkg.MatchStatusMatch
	default:
		return pkg.MatchStatusMismatch
	}
}

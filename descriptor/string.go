package descriptor

import (
	"encoding/binary"
	"fmt"
	"unicode"
	"unicode/utf16"

	"github.com/stegosaurus-midi/usbname/pkg"
)

// USB Descriptor Types used by this package (USB 2.0 Spec Table 9-5).
const (
	DescriptorTypeDevice = 0x01
	DescriptorTypeString = 0x03
)

const (
	// HeaderSize is the size of bLength plus bDescriptorType.
	HeaderSize = 2

	// MaxLength is the largest string descriptor in bytes. bLength is a
	// single byte and the payload must be whole UTF-16 code units, so the
	// largest usable value is 254.
	MaxLength = 254

	// MaxTextUnits is the largest number of UTF-16 code units a string
	// descriptor can carry.
	MaxTextUnits = (MaxLength - HeaderSize) / 2
)

// LengthFor returns bLength for a string of n UTF-16 code units: 2 + 2*n.
func LengthFor(n int) (uint8, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: negative unit count %d", pkg.ErrInvalidParameter, n)
	}
	if n > MaxTextUnits {
		return 0, fmt.Errorf("%w: %d code units, max %d", pkg.ErrNameTooLong, n, MaxTextUnits)
	}
	return uint8(HeaderSize + 2*n), nil
}

// UnitCount returns the number of UTF-16 code units needed to encode s.
// Runes outside the Basic Multilingual Plane take two units. Invalid UTF-8
// counts as one unit per replacement character.
func UnitCount(s string) int {
	n := 0
	for _, r := range s {
		if utf16.RuneLen(r) == 2 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// StringDescriptorTo writes the string descriptor for s to buf.
// Returns the number of bytes written, which always equals buf[0].
func StringDescriptorTo(buf []byte, s string) (int, error) {
	length, err := LengthFor(UnitCount(s))
	if err != nil {
		return 0, err
	}
	if len(buf) < int(length) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", pkg.ErrBufferTooSmall, length, len(buf))
	}
	buf[0] = length
	buf[1] = DescriptorTypeString
	i := HeaderSize
	for _, r := range s {
		if utf16.RuneLen(r) == 2 {
			r1, r2 := utf16.EncodeRune(r)
			binary.LittleEndian.PutUint16(buf[i:], uint16(r1))
			binary.LittleEndian.PutUint16(buf[i+2:], uint16(r2))
			i += 4
			continue
		}
		binary.LittleEndian.PutUint16(buf[i:], uint16(r))
		i += 2
	}
	return i, nil
}

// Encode returns a newly allocated string descriptor for s.
func Encode(s string) ([]byte, error) {
	var buf [MaxLength]byte
	n, err := StringDescriptorTo(buf[:], s)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, buf[:n])
	pkg.LogDebug(pkg.ComponentDescriptor, "encoded string descriptor",
		"text", s, "length", n)
	return out, nil
}

// StringDescriptor represents a USB string descriptor (2 + 2*N bytes).
type StringDescriptor struct {
	Length         uint8    // Size of this descriptor (2 + 2*len(Units))
	DescriptorType uint8    // String descriptor type (0x03)
	Units          []uint16 // UTF-16 code units, host byte order
}

// NewStringDescriptor builds a descriptor from s with Length computed from
// the encoded text.
func NewStringDescriptor(s string) (*StringDescriptor, error) {
	units := utf16.Encode([]rune(s))
	length, err := LengthFor(len(units))
	if err != nil {
		return nil, err
	}
	return &StringDescriptor{
		Length:         length,
		DescriptorType: DescriptorTypeString,
		Units:          units,
	}, nil
}

// MarshalTo serializes the descriptor to buf. bLength is recomputed from
// Units; the Length field is not trusted. Returns 0 if buf is too small or
// Units does not fit a descriptor.
func (d *StringDescriptor) MarshalTo(buf []byte) int {
	length, err := LengthFor(len(d.Units))
	if err != nil || len(buf) < int(length) {
		return 0
	}
	buf[0] = length
	buf[1] = DescriptorTypeString
	for i, u := range d.Units {
		binary.LittleEndian.PutUint16(buf[HeaderSize+i*2:], u)
	}
	return int(length)
}

// String decodes Units. Unpaired surrogates decode to U+FFFD.
func (d *StringDescriptor) String() string {
	return string(utf16.Decode(d.Units))
}

// ParseStringDescriptor parses a string descriptor from bytes into out.
// data may be longer than the descriptor; bytes past bLength are ignored.
// out.Units is reused when it has enough capacity.
func ParseStringDescriptor(data []byte, out *StringDescriptor) error {
	if len(data) < HeaderSize {
		return pkg.ErrDescriptorTooShort
	}
	if data[1] != DescriptorTypeString {
		return pkg.ErrDescriptorTypeMismatch
	}
	length := int(data[0])
	if length < HeaderSize || length > len(data) {
		return fmt.Errorf("%w: bLength %d, have %d bytes", pkg.ErrDescriptorLength, length, len(data))
	}
	if (length-HeaderSize)%2 != 0 {
		return fmt.Errorf("%w: bLength %d", pkg.ErrOddPayload, length)
	}
	out.Length = data[0]
	out.DescriptorType = data[1]
	out.Units = out.Units[:0]
	for i := HeaderSize; i < length; i += 2 {
		out.Units = append(out.Units, binary.LittleEndian.Uint16(data[i:]))
	}
	return nil
}

// Validate checks that data is exactly one well-formed string descriptor:
// correct type, bLength equal to len(data), a whole number of code units,
// and no unpaired surrogates.
func Validate(data []byte) error {
	if len(data) < HeaderSize {
		return pkg.ErrDescriptorTooShort
	}
	if int(data[0]) != len(data) {
		return fmt.Errorf("%w: bLength %d, descriptor is %d bytes", pkg.ErrDescriptorLength, data[0], len(data))
	}
	var d StringDescriptor
	if err := ParseStringDescriptor(data, &d); err != nil {
		return err
	}
	return checkSurrogates(d.Units)
}

// Decode validates data and returns the text it carries.
func Decode(data []byte) (string, error) {
	if err := Validate(data); err != nil {
		return "", err
	}
	var d StringDescriptor
	if err := ParseStringDescriptor(data, &d); err != nil {
		return "", err
	}
	return d.String(), nil
}

func checkSurrogates(units []uint16) error {
	for i := 0; i < len(units); i++ {
		u := rune(units[i])
		if !utf16.IsSurrogate(u) {
			continue
		}
		if i+1 >= len(units) || utf16.DecodeRune(u, rune(units[i+1])) == unicode.ReplacementChar {
			return fmt.Errorf("%w: unit %d (0x%04X)", pkg.ErrInvalidUTF16, i, units[i])
		}
		i++
	}
	return nil
}

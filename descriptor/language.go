package descriptor

import (
	"encoding/binary"
	"fmt"

	"github.com/stegosaurus-midi/usbname/pkg"
)

// LangIDUSEnglish is the language ID for US English.
const LangIDUSEnglish = 0x0409

// LanguageDescriptor is string descriptor zero: the list of language IDs
// the device supports.
type LanguageDescriptor struct {
	Length         uint8
	DescriptorType uint8
	LangIDs        []uint16
}

// LanguageDescriptorTo writes the language ID string descriptor to buf.
// Returns the number of bytes written.
func LanguageDescriptorTo(buf []byte, langIDs ...uint16) (int, error) {
	if len(langIDs) == 0 {
		return 0, fmt.Errorf("%w: no language IDs", pkg.ErrInvalidParameter)
	}
	length, err := LengthFor(len(langIDs))
	if err != nil {
		return 0, err
	}
	if len(buf) < int(length) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", pkg.ErrBufferTooSmall, length, len(buf))
	}
	buf[0] = length
	buf[1] = DescriptorTypeString
	for i, id := range langIDs {
		binary.LittleEndian.PutUint16(buf[HeaderSize+i*2:], id)
	}
	return int(length), nil
}

// ParseLanguageDescriptor parses string descriptor zero into out.
func ParseLanguageDescriptor(data []byte, out *LanguageDescriptor) error {
	var d StringDescriptor
	if err := ParseStringDescriptor(data, &d); err != nil {
		return err
	}
	if len(d.Units) == 0 {
		return fmt.Errorf("%w: empty language table", pkg.ErrDescriptorTooShort)
	}
	out.Length = d.Length
	out.DescriptorType = d.DescriptorType
	out.LangIDs = d.Units
	return nil
}

// Supports reports whether id is listed.
func (d *LanguageDescriptor) Supports(id uint16) bool {
	for _, l := range d.LangIDs {
		if l == id {
			return true
		}
	}
	return false
}

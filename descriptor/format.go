package descriptor

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/stegosaurus-midi/usbname/pkg"
)

// DefaultCSymbol is the symbol the Teensy core links as the product name.
const DefaultCSymbol = "usb_string_product_name"

// FormatHex renders data as space-separated upper-case hex bytes.
func FormatHex(data []byte) string {
	var sb strings.Builder
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", b)
	}
	return sb.String()
}

// ParseHex parses bytes written as hex, tolerating whitespace, commas,
// colons, and 0x prefixes ("18 03 53 00", "0x18,0x03", "18035300").
func ParseHex(s string) ([]byte, error) {
	var sb strings.Builder
	for _, field := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == ':' || r == '\n' || r == '\t' || r == '\r'
	}) {
		field = strings.TrimPrefix(strings.TrimPrefix(field, "0x"), "0X")
		if len(field) == 1 {
			field = "0" + field
		}
		sb.WriteString(field)
	}
	data, err := hex.DecodeString(sb.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pkg.ErrInvalidParameter, err)
	}
	return data, nil
}

// FormatGo renders data as a Go byte slice literal, eight bytes per line.
func FormatGo(data []byte) string {
	var sb strings.Builder
	sb.WriteString("[]byte{")
	for i, b := range data {
		if i%8 == 0 {
			sb.WriteString("\n\t")
		} else {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "0x%02X,", b)
	}
	sb.WriteString("\n}")
	return sb.String()
}

// FormatC renders the usb_string_descriptor_struct initializer for s as the
// Teensy core declares it. The length field is written as the expression
// 2 + N * 2 so that the source shows how it was derived.
func FormatC(symbol, s string) (string, error) {
	if symbol == "" {
		symbol = DefaultCSymbol
	}
	units := utf16.Encode([]rune(s))
	length, err := LengthFor(len(units))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "struct usb_string_descriptor_struct %s = {\n", symbol)
	fmt.Fprintf(&sb, "    2 + %d * 2, /* %d */\n", len(units), length)
	fmt.Fprintf(&sb, "    %d,\n", DescriptorTypeString)
	sb.WriteString("    {")
	for i, u := range units {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(cUnit(u))
	}
	sb.WriteString("}};\n")
	return sb.String(), nil
}

// cUnit renders one code unit as a C character literal when it is
// printable ASCII, otherwise as a hex constant.
func cUnit(u uint16) string {
	switch {
	case u == '\'' || u == '\\':
		return fmt.Sprintf("'\\%c'", rune(u))
	case u >= 0x20 && u < 0x7F:
		return fmt.Sprintf("'%c'", rune(u))
	default:
		return fmt.Sprintf("0x%04X", u)
	}
}

//go:build teensy40 || teensy41

package product

import "github.com/stegosaurus-midi/usbname/descriptor"

// HasStringProduct reports whether this build defines StringProduct.
const HasStringProduct = true

// Name must fit a descriptor; this fails to compile otherwise.
const _ = uint8(descriptor.HeaderSize + 2*len(Name))

// StringProduct is the product-name string descriptor linked into Teensy
// firmware. Its size is derived from Name, so it cannot drift from the text.
var StringProduct [descriptor.HeaderSize + 2*len(Name)]byte

func init() {
	n, err := descriptor.StringDescriptorTo(StringProduct[:], Name)
	if err != nil || n != len(StringProduct) {
		// Non-ASCII names encode to a different number of code units than
		// bytes; the array size above assumes ASCII.
		panic("product: Name must be ASCII")
	}
}

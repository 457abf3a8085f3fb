// Package descriptor encodes and decodes USB string descriptors.
//
// A string descriptor is the length-prefixed, type-tagged block a host reads
// with GET_DESCRIPTOR during enumeration:
//
//	offset 0  bLength          2 + 2*N
//	offset 1  bDescriptorType  0x03
//	offset 2  bString          N UTF-16LE code units
//
// bLength is always derived from the text by [LengthFor]; no API accepts a
// caller-supplied length. Decoding is strict: [Validate] rejects a
// descriptor whose length byte disagrees with its content, which is the
// usual failure of hand-written descriptor tables.
//
// # Zero-Allocation Encoding
//
// [StringDescriptorTo] and [LanguageDescriptorTo] write into caller-provided
// buffers so that firmware builds can keep descriptors in static storage:
//
//	var buf [descriptor.MaxLength]byte
//	n, err := descriptor.StringDescriptorTo(buf[:], "Stegosaurus")
//
// [Encode] is the allocating convenience for host-side tooling.
package descriptor

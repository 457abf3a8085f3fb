// Package host reads string descriptors back from a device, the way a host
// does during enumeration.
//
// Anything that can perform a control transfer satisfies
// [ControlTransferer]: the in-memory [Loopback] that serves a
// [device.StringTable], or a libusb handle from the gousb subpackage.
// [ReadString] issues GET_DESCRIPTOR(STRING) in two stages, first for the
// two-byte header and then for bLength bytes, and decodes the full UTF-16LE
// payload.
//
// Connected devices can also be inspected without control transfers through
// the kernel's cached attributes; see the sysfs subpackage.
package host

// Package gousb reads product strings over the wire through libusb.
//
// It is built only with the gousb tag and cgo, since it links against
// libusb-1.0:
//
//	go build -tags gousb ./cmd/usbname
//
// Unlike the sysfs listing, this issues real GET_DESCRIPTOR requests and so
// sees exactly the bytes the firmware serves, including a bLength that does
// not match the name.
package gousb

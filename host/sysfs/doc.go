// Package sysfs lists USB devices from the Linux sysfs tree and reports the
// strings the kernel read from them during enumeration.
//
// The kernel caches the manufacturer, product, and serial strings of every
// device it enumerates under /sys/bus/usb/devices/<port>/. Reading them
// needs no privileges and no control transfers, which makes this the
// default way to check what name a connected board reports.
package sysfs

//go:build teensy41

package board

const selected = Teensy41

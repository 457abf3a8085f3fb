//go:build teensy40

package board

const selected = Teensy40

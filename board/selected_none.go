//go:build !teensy40 && !teensy41 && !atmega32u4 && !atmega16u4

package board

const selected Identity = ""

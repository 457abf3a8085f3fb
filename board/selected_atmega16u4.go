//go:build atmega16u4

package board

const selected = ATmega16U4

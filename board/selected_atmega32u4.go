//go:build atmega32u4

package board

const selected = ATmega32U4

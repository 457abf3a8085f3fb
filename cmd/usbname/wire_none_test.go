//go:build !gousb || !cgo

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stegosaurus-midi/usbname/pkg"
)

func TestVerify_WireUnavailable(t *testing.T) {
	_, err := runCLI(t, "", "verify", "--wire")
	assert.ErrorIs(t, err, pkg.ErrInvalidParameter)
}

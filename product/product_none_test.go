//go:build !teensy40 && !teensy41

package product

import (
	"errors"
	"testing"

	"github.com/stegosaurus-midi/usbname/pkg"
)

// This file compiles without StringProduct; referencing it here would break
// every build that is not for a Teensy.
func TestHasStringProduct_Absent(t *testing.T) {
	if HasStringProduct {
		t.Error("HasStringProduct = true without a Teensy build tag")
	}
}

func TestResolveSelected_NoBoard(t *testing.T) {
	_, err := ResolveSelected(Name)
	if !errors.Is(err, pkg.ErrUnhandledBoard) {
		t.Errorf("ResolveSelected error = %v, want ErrUnhandledBoard", err)
	}
}

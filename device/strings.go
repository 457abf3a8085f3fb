package device

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/stegosaurus-midi/usbname/descriptor"
	"github.com/stegosaurus-midi/usbname/pkg"
)

// MaxStrings is the maximum number of string descriptors per device,
// including the language table at index zero.
const MaxStrings = 16

// StringTable holds the string descriptors a device reports, indexed by
// string index. The zero value is an empty table ready for use.
type StringTable struct {
	mutex sync.RWMutex

	// Fixed-size array; each entry references caller-owned storage.
	strings [MaxStrings][]byte
}

// Set stores a pre-encoded string descriptor at index.
// The data slice is stored by reference (not copied). data must be a
// well-formed descriptor whose bLength matches its size.
func (t *StringTable) Set(index uint8, data []byte) error {
	if index == 0 || index >= MaxStrings {
		return fmt.Errorf("%w: %d", pkg.ErrInvalidIndex, index)
	}
	if err := descriptor.Validate(data); err != nil {
		return fmt.Errorf("string %d: %w", index, err)
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.strings[index] = data
	return nil
}

// SetFrom encodes s as a string descriptor into buf and stores the resulting
// slice at index. Returns the number of bytes written.
func (t *StringTable) SetFrom(index uint8, buf []byte, s string) (int, error) {
	if index == 0 || index >= MaxStrings {
		return 0, fmt.Errorf("%w: %d", pkg.ErrInvalidIndex, index)
	}
	n, err := descriptor.StringDescriptorTo(buf, s)
	if err != nil {
		return 0, fmt.Errorf("string %d: %w", index, err)
	}
	t.mutex.Lock()
	t.strings[index] = buf[:n]
	t.mutex.Unlock()
	return n, nil
}

// SetLanguages stores the language table (index 0) by reference.
func (t *StringTable) SetLanguages(data []byte) error {
	var langs descriptor.LanguageDescriptor
	if err := descriptor.ParseLanguageDescriptor(data, &langs); err != nil {
		return fmt.Errorf("language table: %w", err)
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.strings[0] = data[:langs.Length]
	return nil
}

// SetLanguagesFrom encodes language IDs into buf and stores the result at
// index 0. Returns the number of bytes written.
func (t *StringTable) SetLanguagesFrom(buf []byte, langIDs ...uint16) (int, error) {
	n, err := descriptor.LanguageDescriptorTo(buf, langIDs...)
	if err != nil {
		return 0, fmt.Errorf("language table: %w", err)
	}
	t.mutex.Lock()
	t.strings[0] = buf[:n]
	t.mutex.Unlock()
	return n, nil
}

// Get returns the string descriptor stored at index, or nil.
func (t *StringTable) Get(index uint8) []byte {
	if index >= MaxStrings {
		return nil
	}
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.strings[index]
}

// supportsLanguage reports whether the language table lists langID. A table
// without languages, or a request for language 0, accepts any language.
func (t *StringTable) supportsLanguage(langID uint16) bool {
	langs := t.Get(0)
	if langID == 0 || len(langs) < descriptor.HeaderSize {
		return true
	}
	for i := descriptor.HeaderSize; i+1 < len(langs); i += 2 {
		if binary.LittleEndian.Uint16(langs[i:]) == langID {
			return true
		}
	}
	return false
}

// HandleSetup answers a standard GET_DESCRIPTOR(STRING) request.
// The response is truncated to wLength and references table storage; the
// caller must not modify it. Any other request returns
// [pkg.ErrInvalidRequest], which a USB stack reports as a STALL.
func (t *StringTable) HandleSetup(setup *SetupPacket) ([]byte, error) {
	if !setup.IsStandard() || !setup.IsDeviceToHost() ||
		setup.Recipient() != RequestRecipientDevice ||
		setup.Request != RequestGetDescriptor {
		return nil, pkg.ErrInvalidRequest
	}
	if setup.DescriptorType() != descriptor.DescriptorTypeString {
		return nil, fmt.Errorf("%w: descriptor type 0x%02X", pkg.ErrInvalidRequest, setup.DescriptorType())
	}

	index := setup.DescriptorIndex()
	if index != 0 && !t.supportsLanguage(setup.LangID()) {
		pkg.LogDebug(pkg.ComponentDevice, "unsupported language",
			"index", index, "langID", setup.LangID())
		return nil, fmt.Errorf("%w: language 0x%04X", pkg.ErrInvalidRequest, setup.LangID())
	}

	data := t.Get(index)
	if data == nil {
		return nil, fmt.Errorf("%w: %d", pkg.ErrInvalidIndex, index)
	}

	n := len(data)
	if n > int(setup.Length) {
		n = int(setup.Length)
	}
	pkg.LogDebug(pkg.ComponentDevice, "string descriptor request",
		"index", index, "langID", setup.LangID(), "length", n)
	return data[:n], nil
}

package product

import (
	"fmt"

	"github.com/stegosaurus-midi/usbname/board"
	"github.com/stegosaurus-midi/usbname/descriptor"
	"github.com/stegosaurus-midi/usbname/device"
	"github.com/stegosaurus-midi/usbname/pkg"
)

// Name is the product name the device reports.
const Name = "Stegosaurus"

// Resolution is the product-name outcome for one board.
type Resolution struct {
	Profile    board.Profile
	Name       string
	Descriptor []byte // Encoded string descriptor; nil in external mode
}

// External reports whether the name is set outside the firmware source.
func (r Resolution) External() bool {
	return r.Profile.Mode == board.ModeExternal
}

// ValidateName checks that name can be carried by a string descriptor.
func ValidateName(name string) error {
	if name == "" {
		return pkg.ErrNameEmpty
	}
	if n := descriptor.UnitCount(name); n > descriptor.MaxTextUnits {
		return fmt.Errorf("%w: %d code units, max %d", pkg.ErrNameTooLong, n, descriptor.MaxTextUnits)
	}
	return nil
}

// Resolve computes the product-name outcome of name on profile p.
func Resolve(p board.Profile, name string) (Resolution, error) {
	if err := p.Validate(); err != nil {
		return Resolution{}, err
	}
	if err := ValidateName(name); err != nil {
		return Resolution{}, err
	}

	r := Resolution{Profile: p, Name: name}
	if p.Mode == board.ModeExternal {
		pkg.LogInfo(pkg.ComponentProduct, "product name set by build configuration",
			"board", p.Identity, "file", p.External.File, "key", p.External.Key)
		return r, nil
	}

	data, err := descriptor.Encode(name)
	if err != nil {
		return Resolution{}, err
	}
	r.Descriptor = data
	pkg.LogDebug(pkg.ComponentProduct, "product descriptor resolved",
		"board", p.Identity, "index", p.ProductIndex, "length", len(data))
	return r, nil
}

// ResolveSelected resolves name for the board this binary was built for.
func ResolveSelected(name string) (Resolution, error) {
	p, err := board.Selected()
	if err != nil {
		return Resolution{}, err
	}
	return Resolve(p, name)
}

// Install registers the language table and the product descriptor with t.
// langBuf receives the encoded language table and must outlive t. With no
// langIDs the table lists US English only.
func (r Resolution) Install(t *device.StringTable, langBuf []byte, langIDs ...uint16) error {
	if r.External() {
		return fmt.Errorf("%s: %w (%s)", r.Profile.Identity, pkg.ErrExternalName, r.Profile.External.File)
	}
	if r.Descriptor == nil {
		return fmt.Errorf("%w: unresolved product descriptor", pkg.ErrInvalidParameter)
	}
	if len(langIDs) == 0 {
		langIDs = []uint16{descriptor.LangIDUSEnglish}
	}
	if _, err := t.SetLanguagesFrom(langBuf, langIDs...); err != nil {
		return err
	}
	return t.Set(r.Profile.ProductIndex, r.Descriptor)
}

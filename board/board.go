package board

import (
	"fmt"
	"slices"
	"strings"

	"github.com/stegosaurus-midi/usbname/pkg"
)

// Identity names a target board family.
type Identity string

// Board identities.
const (
	Teensy40   Identity = "teensy40"
	Teensy41   Identity = "teensy41"
	ATmega32U4 Identity = "atmega32u4" // Arduino Micro, Leonardo
	ATmega16U4 Identity = "atmega16u4"
)

// String returns the identity name.
func (id Identity) String() string {
	return string(id)
}

// Mode says where a board's product name comes from.
type Mode uint8

// Product name modes.
const (
	ModeUnhandled Mode = iota // No profile
	ModeSource                // Descriptor compiled into the firmware
	ModeExternal              // Set by the board's build configuration
)

// String returns a human-readable mode description.
func (m Mode) String() string {
	switch m {
	case ModeSource:
		return "source"
	case ModeExternal:
		return "external"
	default:
		return "unhandled"
	}
}

// ExternalConfig names the build-configuration entry that carries the
// product name for an external-mode board.
type ExternalConfig struct {
	File string // Configuration file, relative to the Arduino core
	Key  string // Property suffix, prefixed by the board's menu ID
}

// Entry returns the property line that sets name for the given board menu
// ID, e.g. micro.build.usb_product="Stegosaurus".
func (c ExternalConfig) Entry(boardID, name string) string {
	return fmt.Sprintf("%s.%s=%q", boardID, c.Key, name)
}

// Profile describes one supported board family.
type Profile struct {
	Identity     Identity
	Name         string          // Display name
	MCU          string          // Microcontroller
	Mode         Mode            // Where the product name comes from
	ProductIndex uint8           // String index the host reads as iProduct
	Macros       []string        // Preprocessor macros identifying the board
	BoardIDs     []string        // Arduino boards.txt menu IDs (external mode)
	External     *ExternalConfig // nil for source-mode boards
}

// DefaultProductIndex is the string index at which the product name is
// served.
const DefaultProductIndex = 3

// Arduino core configuration carrying the product name for AVR boards.
var arduinoBoardsTxt = &ExternalConfig{
	File: "boards.txt",
	Key:  "build.usb_product",
}

var profiles = map[Identity]Profile{
	Teensy40: {
		Identity:     Teensy40,
		Name:         "Teensy 4.0",
		MCU:          "IMXRT1062",
		Mode:         ModeSource,
		ProductIndex: DefaultProductIndex,
		Macros:       []string{"ARDUINO_TEENSY40"},
	},
	Teensy41: {
		Identity:     Teensy41,
		Name:         "Teensy 4.1",
		MCU:          "IMXRT1062",
		Mode:         ModeSource,
		ProductIndex: DefaultProductIndex,
		Macros:       []string{"ARDUINO_TEENSY41"},
	},
	ATmega32U4: {
		Identity:     ATmega32U4,
		Name:         "Arduino Micro",
		MCU:          "ATmega32U4",
		Mode:         ModeExternal,
		ProductIndex: DefaultProductIndex,
		Macros:       []string{"__AVR_ATmega32U4__"},
		BoardIDs:     []string{"micro", "leonardo"},
		External:     arduinoBoardsTxt,
	},
	ATmega16U4: {
		Identity:     ATmega16U4,
		Name:         "ATmega16U4",
		MCU:          "ATmega16U4",
		Mode:         ModeExternal,
		ProductIndex: DefaultProductIndex,
		Macros:       []string{"__AVR_ATmega16U4__"},
		External:     arduinoBoardsTxt,
	},
}

// Lookup returns the profile for id.
func Lookup(id Identity) (Profile, error) {
	p, ok := profiles[id]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", pkg.ErrUnhandledBoard, string(id))
	}
	return p, nil
}

// Parse resolves s to a profile. s may be an identity name or one of the
// board's preprocessor macros; matching is case-insensitive.
func Parse(s string) (Profile, error) {
	key := strings.TrimSpace(s)
	for _, p := range profiles {
		if strings.EqualFold(key, string(p.Identity)) {
			return p, nil
		}
		for _, m := range p.Macros {
			if strings.EqualFold(key, m) {
				return p, nil
			}
		}
	}
	pkg.LogDebug(pkg.ComponentBoard, "no profile for board", "board", s)
	return Profile{}, fmt.Errorf("%w: %q", pkg.ErrUnhandledBoard, s)
}

// Profiles returns every profile ordered by identity.
func Profiles() []Profile {
	out := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Profile) int {
		return strings.Compare(string(a.Identity), string(b.Identity))
	})
	return out
}

// Selected returns the profile of the board this binary was built for.
func Selected() (Profile, error) {
	if selected == "" {
		return Profile{}, fmt.Errorf("%w: no board build tag set", pkg.ErrUnhandledBoard)
	}
	return Lookup(selected)
}

// Validate checks that p is a complete profile for its mode.
func (p Profile) Validate() error {
	switch p.Mode {
	case ModeSource:
		if p.ProductIndex == 0 {
			return fmt.Errorf("%w: %s: product index 0 is the language table",
				pkg.ErrInvalidParameter, p.Identity)
		}
	case ModeExternal:
		if p.External == nil {
			return fmt.Errorf("%w: %s: external mode without configuration",
				pkg.ErrInvalidParameter, p.Identity)
		}
	default:
		return fmt.Errorf("%w: %q", pkg.ErrUnhandledBoard, string(p.Identity))
	}
	return nil
}

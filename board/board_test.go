package board

import (
	"errors"
	"testing"

	"github.com/stegosaurus-midi/usbname/pkg"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		id   Identity
		mode Mode
	}{
		{Teensy40, ModeSource},
		{Teensy41, ModeSource},
		{ATmega32U4, ModeExternal},
		{ATmega16U4, ModeExternal},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			p, err := Lookup(tt.id)
			if err != nil {
				t.Fatalf("Lookup(%s): %v", tt.id, err)
			}
			if p.Identity != tt.id {
				t.Errorf("Identity = %s, want %s", p.Identity, tt.id)
			}
			if p.Mode != tt.mode {
				t.Errorf("Mode = %s, want %s", p.Mode, tt.mode)
			}
			if err := p.Validate(); err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}

func TestLookup_Unhandled(t *testing.T) {
	_, err := Lookup(Identity("rp2040"))
	if !errors.Is(err, pkg.ErrUnhandledBoard) {
		t.Errorf("Lookup(rp2040) error = %v, want ErrUnhandledBoard", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Identity
	}{
		{"teensy40", Teensy40},
		{"TEENSY41", Teensy41},
		{"ARDUINO_TEENSY40", Teensy40},
		{"arduino_teensy41", Teensy41},
		{"__AVR_ATmega32U4__", ATmega32U4},
		{" __AVR_ATmega16U4__ ", ATmega16U4},
		{"atmega32u4", ATmega32U4},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if p.Identity != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.in, p.Identity, tt.want)
			}
		})
	}
}

func TestParse_Unhandled(t *testing.T) {
	for _, in := range []string{"", "ARDUINO_TEENSY36", "__AVR_ATmega328P__", "esp32"} {
		if _, err := Parse(in); !errors.Is(err, pkg.ErrUnhandledBoard) {
			t.Errorf("Parse(%q) error = %v, want ErrUnhandledBoard", in, err)
		}
	}
}

func TestProfiles_Sorted(t *testing.T) {
	ps := Profiles()
	if len(ps) != 4 {
		t.Fatalf("len(Profiles()) = %d, want 4", len(ps))
	}
	want := []Identity{ATmega16U4, ATmega32U4, Teensy40, Teensy41}
	for i, p := range ps {
		if p.Identity != want[i] {
			t.Errorf("Profiles()[%d] = %s, want %s", i, p.Identity, want[i])
		}
	}
}

func TestProfiles_ExternalHasConfig(t *testing.T) {
	for _, p := range Profiles() {
		switch p.Mode {
		case ModeExternal:
			if p.External == nil || p.External.File != "boards.txt" {
				t.Errorf("%s: External = %+v", p.Identity, p.External)
			}
		case ModeSource:
			if p.External != nil {
				t.Errorf("%s: source-mode board has External", p.Identity)
			}
		}
	}
}

func TestExternalConfig_Entry(t *testing.T) {
	p, _ := Lookup(ATmega32U4)
	got := p.External.Entry(p.BoardIDs[0], "Stegosaurus")
	want := `micro.build.usb_product="Stegosaurus"`
	if got != want {
		t.Errorf("Entry = %s, want %s", got, want)
	}
}

func TestProfile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		p       Profile
		wantErr error
	}{
		{"unhandled", Profile{Identity: "x"}, pkg.ErrUnhandledBoard},
		{"source index zero", Profile{Identity: "x", Mode: ModeSource}, pkg.ErrInvalidParameter},
		{"external without config", Profile{Identity: "x", Mode: ModeExternal}, pkg.ErrInvalidParameter},
		{"source ok", Profile{Identity: "x", Mode: ModeSource, ProductIndex: 2}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.p.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeSource, "source"},
		{ModeExternal, "external"},
		{ModeUnhandled, "unhandled"},
		{Mode(42), "unhandled"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %s, want %s", tt.mode, got, tt.want)
		}
	}
}

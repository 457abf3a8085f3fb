package pkg

import "errors"

// Descriptor errors.
var (
	// ErrDescriptorTooShort indicates the descriptor data is too short.
	ErrDescriptorTooShort = errors.New("descriptor too short")

	// ErrDescriptorTypeMismatch indicates the descriptor type does not match expected.
	ErrDescriptorTypeMismatch = errors.New("descriptor type mismatch")

	// ErrDescriptorLength indicates bLength disagrees with the descriptor content.
	ErrDescriptorLength = errors.New("descriptor length mismatch")

	// ErrOddPayload indicates a string payload that is not a whole number of
	// UTF-16 code units.
	ErrOddPayload = errors.New("odd string payload length")

	// ErrInvalidUTF16 indicates an unpaired surrogate in a string payload.
	ErrInvalidUTF16 = errors.New("invalid UTF-16 payload")

	// ErrBufferTooSmall indicates the provided buffer is too small.
	ErrBufferTooSmall = errors.New("buffer too small")
)

// Name errors.
var (
	// ErrNameEmpty indicates an empty product name.
	ErrNameEmpty = errors.New("product name is empty")

	// ErrNameTooLong indicates a name whose descriptor would not fit bLength.
	ErrNameTooLong = errors.New("product name too long")
)

// Board errors.
var (
	// ErrUnhandledBoard indicates a board identity with no profile.
	ErrUnhandledBoard = errors.New("unhandled board identity")

	// ErrExternalName indicates a board whose product name is set outside
	// the firmware source.
	ErrExternalName = errors.New("product name is set by external build configuration")
)

// Request and host errors.
var (
	// ErrSetupPacketTooShort indicates the setup packet data is too short.
	ErrSetupPacketTooShort = errors.New("setup packet too short")

	// ErrInvalidIndex indicates a string index outside the string table.
	ErrInvalidIndex = errors.New("invalid string index")

	// ErrInvalidRequest indicates an invalid or unsupported request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNoDevice indicates no matching device is present.
	ErrNoDevice = errors.New("device not present")

	// ErrNoProductString indicates a device without a product string.
	ErrNoProductString = errors.New("no product string")

	// ErrNameMismatch indicates a device reporting a different product name.
	ErrNameMismatch = errors.New("product name mismatch")

	// ErrInvalidParameter indicates an invalid parameter was provided.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// MatchStatus is the outcome of comparing a device's product string with
// the expected name.
type MatchStatus int

// Match status values.
const (
	MatchStatusMatch    MatchStatus = iota // Product string equals the name
	MatchStatusMismatch                    // Device reports a different name
	MatchStatusMissing                     // Device reports no product string
)

// String returns a string representation of the match status.
func (s MatchStatus) String() string {
	switch s {
	case MatchStatusMatch:
		return "match"
	case MatchStatusMismatch:
		return "mismatch"
	case MatchStatusMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Error returns the corresponding error for the match status.
func (s MatchStatus) Error() error {
	switch s {
	case MatchStatusMatch:
		return nil
	case MatchStatusMissing:
		return ErrNoProductString
	default:
		return ErrNameMismatch
	}
}

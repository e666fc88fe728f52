package access

import "errors"

// Format errors, raised while decoding untrusted wire bytes or records.
// A caller should treat these as a malformed frame and drop it.
var (
	// ErrTruncated indicates fewer bytes than the format requires.
	ErrTruncated = errors.New("truncated input")

	// ErrOpcodeRFU indicates the reserved single-octet opcode 0x7F.
	ErrOpcodeRFU = errors.New("opcode reserved for future use")

	// ErrBadLength indicates a slice whose length matches no valid layout.
	ErrBadLength = errors.New("bad byte length")

	// ErrMalformedRecord indicates an external record that cannot be
	// parsed back into a message.
	ErrMalformedRecord = errors.New("malformed message record")
)

// Validation errors, raised at construction time for locally supplied
// values. A caller should treat these as a rejected message, not a
// malformed frame.
var (
	// ErrInvalidOpcode indicates an opcode/company-ID combination outside
	// the valid ranges.
	ErrInvalidOpcode = errors.New("invalid opcode")

	// ErrInvalidAddress indicates an address of the wrong kind for its
	// position (e.g. a group address as source).
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidTTL indicates a TTL outside the 7-bit range.
	ErrInvalidTTL = errors.New("invalid TTL")

	// ErrInvalidKeyIndex indicates a key index outside the 12-bit range.
	ErrInvalidKeyIndex = errors.New("invalid key index")

	// ErrBothDeviceKeys indicates local and remote device-key flags set
	// together.
	ErrBothDeviceKeys = errors.New("local and remote device-key flags both set")

	// ErrDeviceKeyWithAppKey indicates a device-key flag combined with an
	// application-key index. A message is secured by exactly one of the two.
	ErrDeviceKeyWithAppKey = errors.New("device-key flag set together with application-key index")
)

// ErrPayloadTooLarge indicates access payload parameters exceeding
// MaxParametersSize.
var ErrPayloadTooLarge = errors.New("access payload too large")

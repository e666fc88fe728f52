package access

import (
	"encoding/binary"
	"fmt"

	"github.com/btmesh-protocol/btmesh-go/pkg/mesh"
)

// OpcodeFormat identifies the wire size class of an opcode. The numeric
// value equals the encoded length in octets.
type OpcodeFormat uint8

const (
	// OpcodeSingleOctet covers values 0x00-0x7E.
	OpcodeSingleOctet OpcodeFormat = 1

	// OpcodeDoubleOctet covers 14-bit values 0x80-0x3FFF.
	OpcodeDoubleOctet OpcodeFormat = 2

	// OpcodeVendor covers 6-bit values scoped by a company ID.
	OpcodeVendor OpcodeFormat = 3
)

// String returns the format name.
func (f OpcodeFormat) String() string {
	switch f {
	case OpcodeSingleOctet:
		return "SINGLE"
	case OpcodeDoubleOctet:
		return "DOUBLE"
	case OpcodeVendor:
		return "VENDOR"
	default:
		return "UNKNOWN"
	}
}

// Opcode value-range bounds.
const (
	opcodeRFU          = 0x7F   // reserved single-octet value
	singleOctetMax     = 0x7E   // largest single-octet opcode
	doubleOctetMax     = 0x3FFF // largest 14-bit opcode
	vendorOpcodeMax    = 0x3F   // largest 6-bit vendor opcode
	doubleOctetWireBit = 0x8000 // top-two-bits 10 marker
	vendorWireBits     = 0xC0   // top-two-bits 11 marker
)

// Opcode is an access-layer operation code in one of the three size
// classes. The zero value is invalid; use NewOpcode or NewVendorOpcode.
// Opcodes are immutable once constructed, so only canonical combinations
// of format, value, and company ID are representable.
type Opcode struct {
	format  OpcodeFormat
	value   uint16
	company mesh.CompanyID
}

// NewOpcode creates a SIG opcode. Values up to 0x7E use the single-octet
// form, values 0x80-0x3FFF the double-octet form. 0x7F is reserved and
// values above 14 bits do not fit either form.
func NewOpcode(value uint16) (Opcode, error) {
	switch {
	case value == opcodeRFU:
		return Opcode{}, fmt.Errorf("%w: 0x7F is reserved", ErrInvalidOpcode)
	case value <= singleOctetMax:
		return Opcode{format: OpcodeSingleOctet, value: value}, nil
	case value <= doubleOctetMax:
		return Opcode{format: OpcodeDoubleOctet, value: value}, nil
	default:
		return Opcode{}, fmt.Errorf("%w: 0x%X exceeds 14 bits", ErrInvalidOpcode, value)
	}
}

// NewVendorOpcode creates a vendor opcode scoped by a company ID. The
// opcode value must fit in 6 bits and the company ID must identify a
// vendor (0xFFFF is unassigned).
func NewVendorOpcode(value uint8, company mesh.CompanyID) (Opcode, error) {
	if value > vendorOpcodeMax {
		return Opcode{}, fmt.Errorf("%w: vendor opcode 0x%X exceeds 6 bits", ErrInvalidOpcode, value)
	}
	if !company.Valid() {
		return Opcode{}, fmt.Errorf("%w: company ID 0x%04X is unassigned", ErrInvalidOpcode, uint16(company))
	}
	return Opcode{format: OpcodeVendor, value: uint16(value), company: company}, nil
}

// Format returns the opcode's size class.
func (o Opcode) Format() OpcodeFormat {
	return o.format
}

// IsValid returns true for opcodes produced by a constructor or decoder.
func (o Opcode) IsValid() bool {
	return o.format >= OpcodeSingleOctet && o.format <= OpcodeVendor
}

// Value returns the opcode value (up to 7, 14, or 6 significant bits
// depending on the format).
func (o Opcode) Value() uint16 {
	return o.value
}

// CompanyID returns the vendor company ID and whether one is present.
// It is present exactly for the vendor format.
func (o Opcode) CompanyID() (mesh.CompanyID, bool) {
	return o.company, o.format == OpcodeVendor
}

// Length returns the encoded size in octets: 1, 2, or 3.
func (o Opcode) Length() int {
	return int(o.format)
}

// Encode returns the wire form of the opcode. It panics on the invalid
// zero value, which no constructor produces.
func (o Opcode) Encode() []byte {
	switch o.format {
	case OpcodeSingleOctet:
		return []byte{byte(o.value)}
	case OpcodeDoubleOctet:
		b := make([]byte, 2)
		binary.BigEndian.PutUint16(b, o.value|doubleOctetWireBit)
		return b
	case OpcodeVendor:
		b := make([]byte, 3)
		b[0] = byte(o.value) | vendorWireBits
		binary.LittleEndian.PutUint16(b[1:], uint16(o.company))
		return b
	default:
		panic(fmt.Sprintf("access: encode of invalid opcode format %d", o.format))
	}
}

// String returns the opcode as hex, with the company ID for vendor opcodes.
func (o Opcode) String() string {
	switch o.format {
	case OpcodeSingleOctet:
		return fmt.Sprintf("0x%02X", o.value)
	case OpcodeDoubleOctet:
		return fmt.Sprintf("0x%04X", o.value)
	case OpcodeVendor:
		return fmt.Sprintf("0x%02X (company 0x%04X)", o.value, uint16(o.company))
	default:
		return "INVALID"
	}
}

// DecodeOpcode decodes an opcode from the start of b and returns it with
// the number of bytes consumed. The size class is determined from the top
// two bits of b[0]; decoding fails with ErrTruncated when b is shorter
// than the class requires, and with ErrOpcodeRFU for the reserved byte
// 0x7F.
func DecodeOpcode(b []byte) (Opcode, int, error) {
	if len(b) == 0 {
		return Opcode{}, 0, fmt.Errorf("%w: empty opcode", ErrTruncated)
	}

	switch b[0] >> 6 {
	case 0, 1: // single octet
		if b[0] == opcodeRFU {
			return Opcode{}, 0, fmt.Errorf("%w: 0x7F", ErrOpcodeRFU)
		}
		op, err := NewOpcode(uint16(b[0]))
		if err != nil {
			return Opcode{}, 0, err
		}
		return op, 1, nil

	case 2: // double octet, 14-bit big-endian value
		if len(b) < 2 {
			return Opcode{}, 0, fmt.Errorf("%w: double-octet opcode needs 2 bytes, have %d", ErrTruncated, len(b))
		}
		value := uint16(b[0]&0x3F)<<8 | uint16(b[1])
		if value == opcodeRFU {
			// Non-canonical two-octet encoding of the reserved value.
			return Opcode{}, 0, fmt.Errorf("%w: 0x7F", ErrOpcodeRFU)
		}
		op, err := NewOpcode(value)
		if err != nil {
			return Opcode{}, 0, err
		}
		return op, 2, nil

	default: // vendor: 6-bit opcode, little-endian company ID
		if len(b) < 3 {
			return Opcode{}, 0, fmt.Errorf("%w: vendor opcode needs 3 bytes, have %d", ErrTruncated, len(b))
		}
		op, err := NewVendorOpcode(b[0]&0x3F, mesh.CompanyID(binary.LittleEndian.Uint16(b[1:3])))
		if err != nil {
			return Opcode{}, 0, err
		}
		return op, 3, nil
	}
}

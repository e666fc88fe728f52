package access

import (
	"encoding/binary"
	"fmt"

	"github.com/btmesh-protocol/btmesh-go/pkg/mesh"
)

// Model identifier wire sizes.
const (
	// SIGModelIdentifierSize is the encoded size of a SIG model identifier.
	SIGModelIdentifierSize = 2

	// VendorModelIdentifierSize is the encoded size of a vendor model
	// identifier (company ID followed by model ID).
	VendorModelIdentifierSize = 4
)

// ModelIdentifier references a model within an element, either a Bluetooth
// SIG defined model or a vendor model scoped by a company ID. Immutable
// value type.
type ModelIdentifier struct {
	model   mesh.ModelID
	company mesh.CompanyID
	vendor  bool
}

// NewSIGModelIdentifier creates an identifier for a SIG-defined model.
func NewSIGModelIdentifier(model mesh.ModelID) ModelIdentifier {
	return ModelIdentifier{model: model}
}

// NewVendorModelIdentifier creates an identifier for a vendor model. The
// company ID must identify a vendor.
func NewVendorModelIdentifier(model mesh.ModelID, company mesh.CompanyID) (ModelIdentifier, error) {
	if !company.Valid() {
		return ModelIdentifier{}, fmt.Errorf("%w: company ID 0x%04X is unassigned", ErrInvalidOpcode, uint16(company))
	}
	return ModelIdentifier{model: model, company: company, vendor: true}, nil
}

// ModelID returns the 16-bit model ID.
func (m ModelIdentifier) ModelID() mesh.ModelID {
	return m.model
}

// CompanyID returns the company ID and whether one is present. It is
// present exactly for vendor models.
func (m ModelIdentifier) CompanyID() (mesh.CompanyID, bool) {
	return m.company, m.vendor
}

// IsVendor returns true for vendor models.
func (m ModelIdentifier) IsVendor() bool {
	return m.vendor
}

// Length returns the encoded size in octets: 2 for SIG models, 4 for
// vendor models.
func (m ModelIdentifier) Length() int {
	if m.vendor {
		return VendorModelIdentifierSize
	}
	return SIGModelIdentifierSize
}

// Encode returns the wire form: model ID little-endian for SIG models,
// company ID then model ID (both little-endian) for vendor models.
func (m ModelIdentifier) Encode() []byte {
	if m.vendor {
		b := make([]byte, VendorModelIdentifierSize)
		binary.LittleEndian.PutUint16(b[0:2], uint16(m.company))
		binary.LittleEndian.PutUint16(b[2:4], uint16(m.model))
		return b
	}
	b := make([]byte, SIGModelIdentifierSize)
	binary.LittleEndian.PutUint16(b, uint16(m.model))
	return b
}

// DecodeModelIdentifier decodes a model identifier. Unlike opcodes the
// length is not self-describing, so the caller must supply a slice of
// exactly 2 (SIG) or 4 (vendor) bytes.
func DecodeModelIdentifier(b []byte) (ModelIdentifier, error) {
	switch len(b) {
	case SIGModelIdentifierSize:
		return NewSIGModelIdentifier(mesh.ModelID(binary.LittleEndian.Uint16(b))), nil
	case VendorModelIdentifierSize:
		id, err := NewVendorModelIdentifier(
			mesh.ModelID(binary.LittleEndian.Uint16(b[2:4])),
			mesh.CompanyID(binary.LittleEndian.Uint16(b[0:2])),
		)
		if err != nil {
			return ModelIdentifier{}, err
		}
		return id, nil
	default:
		return ModelIdentifier{}, fmt.Errorf("%w: model identifier must be 2 or 4 bytes, got %d", ErrBadLength, len(b))
	}
}

// String returns the identifier as hex, with the company ID for vendor
// models.
func (m ModelIdentifier) String() string {
	if m.vendor {
		return fmt.Sprintf("model 0x%04X (company 0x%04X)", uint16(m.model), uint16(m.company))
	}
	return fmt.Sprintf("model 0x%04X", uint16(m.model))
}

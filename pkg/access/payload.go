package access

import (
	"bytes"
	"fmt"
)

// MaxParametersSize is the largest parameter block an access payload can
// carry: 32 transport segments of 12 bytes minus the 4-byte MIC, i.e. 380
// bytes. The payload's own opcode does not count against it.
const MaxParametersSize = 380

// Payload is an access payload: an opcode followed by opaque parameter
// bytes. Immutable once constructed; the parameter bytes are copied in.
type Payload struct {
	opcode     Opcode
	parameters []byte
}

// NewPayload creates a payload, rejecting parameter blocks over
// MaxParametersSize with ErrPayloadTooLarge.
func NewPayload(opcode Opcode, parameters []byte) (Payload, error) {
	if !opcode.IsValid() {
		return Payload{}, fmt.Errorf("%w: zero opcode", ErrInvalidOpcode)
	}
	if len(parameters) > MaxParametersSize {
		return Payload{}, fmt.Errorf("%w: %d > %d bytes", ErrPayloadTooLarge, len(parameters), MaxParametersSize)
	}
	return Payload{opcode: opcode, parameters: bytes.Clone(parameters)}, nil
}

// Opcode returns the payload's opcode.
func (p Payload) Opcode() Opcode {
	return p.opcode
}

// Parameters returns the parameter bytes. The returned slice must not be
// modified.
func (p Payload) Parameters() []byte {
	return p.parameters
}

// Length returns the total encoded size: opcode length plus parameter
// length.
func (p Payload) Length() int {
	return p.opcode.Length() + len(p.parameters)
}

// Encode returns the wire form: opcode bytes followed by the parameters.
func (p Payload) Encode() []byte {
	out := make([]byte, 0, p.Length())
	out = append(out, p.opcode.Encode()...)
	return append(out, p.parameters...)
}

// DecodePayload decodes an access payload: the opcode is sized and decoded
// from the prefix, the remainder becomes the parameters. Fails with the
// opcode's format error or with ErrPayloadTooLarge when the remainder
// exceeds MaxParametersSize.
func DecodePayload(b []byte) (Payload, error) {
	opcode, consumed, err := DecodeOpcode(b)
	if err != nil {
		return Payload{}, err
	}
	return NewPayload(opcode, b[consumed:])
}

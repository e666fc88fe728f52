// Package access implements the access-layer message codec: opcodes, model
// identifiers, and the access payload carried inside a transport PDU.
//
// The access layer sits between the application and the upper transport
// layer. This package only converts between wire bytes and validated
// in-memory values; segmentation, encryption, and key management belong to
// the surrounding layers.
//
// # Opcode Format
//
// Opcodes come in three sizes, discriminated by the top two bits of the
// first octet:
//   - 0xxxxxxx: single octet (0x7F is reserved for future use)
//   - 10xxxxxx xxxxxxxx: double octet, 14-bit value
//   - 11xxxxxx: vendor opcode, 6-bit value followed by a 16-bit
//     little-endian company ID
//
// A receiver can therefore size the opcode by inspecting the first octet
// only, which matters for reassembly of segmented payloads upstream.
//
// # Errors
//
// All errors are sentinel values testable with errors.Is, in three groups:
// format errors for untrusted input (ErrTruncated, ErrOpcodeRFU,
// ErrBadLength, ErrMalformedRecord), validation errors for locally
// constructed values (ErrInvalidOpcode, ErrBothDeviceKeys, ...), and the
// size error ErrPayloadTooLarge.
package access

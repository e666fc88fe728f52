package access

import (
	"bytes"
	"fmt"

	"github.com/btmesh-protocol/btmesh-go/pkg/mesh"
)

// Message is a validated access-layer message: addressing, TTL, security
// context, and the opcode/parameter pair that becomes the access payload.
//
// A message is secured by exactly one key: an application key referenced
// by AppKeyIndex, or a device key when one of the device-key flags is set.
// LocalDeviceKey selects the receiving node's own device key,
// RemoteDeviceKey the peer's; they are mutually exclusive.
//
// BigMIC selects a 64-bit instead of 32-bit authentication tag and
// ForceSegment forces segmented transport framing; both are hints for the
// transport layer and do not change this codec's byte layout.
//
// Construct with NewMessage, which validates every invariant; messages are
// treated as immutable afterwards.
type Message struct {
	Src             mesh.Address
	Dst             mesh.Address
	TTL             mesh.TTL
	Opcode          Opcode
	Parameters      []byte
	AppKeyIndex     *mesh.AppKeyIndex
	NetKeyIndex     mesh.NetKeyIndex
	BigMIC          bool
	LocalDeviceKey  bool
	RemoteDeviceKey bool
	ForceSegment    bool
}

// NewMessage validates m and returns an independent copy (the parameter
// bytes are cloned). The copy should not be mutated.
func NewMessage(m Message) (*Message, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.Parameters = bytes.Clone(m.Parameters)
	return &m, nil
}

// Validate checks all field and security-context invariants. It never
// mutates the message.
func (m *Message) Validate() error {
	if !m.Src.IsUnicast() {
		return fmt.Errorf("%w: source %s is not unicast", ErrInvalidAddress, m.Src)
	}
	if !m.Dst.IsAssigned() {
		return fmt.Errorf("%w: destination is unassigned", ErrInvalidAddress)
	}
	if !m.TTL.Valid() {
		return fmt.Errorf("%w: %d exceeds 7 bits", ErrInvalidTTL, m.TTL)
	}
	if !m.Opcode.IsValid() {
		return fmt.Errorf("%w: zero opcode", ErrInvalidOpcode)
	}
	if len(m.Parameters) > MaxParametersSize {
		return fmt.Errorf("%w: %d > %d bytes", ErrPayloadTooLarge, len(m.Parameters), MaxParametersSize)
	}
	if !m.NetKeyIndex.Valid() {
		return fmt.Errorf("%w: netkey index 0x%X", ErrInvalidKeyIndex, uint16(m.NetKeyIndex))
	}
	if m.AppKeyIndex != nil && !m.AppKeyIndex.Valid() {
		return fmt.Errorf("%w: appkey index 0x%X", ErrInvalidKeyIndex, uint16(*m.AppKeyIndex))
	}
	if m.LocalDeviceKey && m.RemoteDeviceKey {
		return ErrBothDeviceKeys
	}
	if (m.LocalDeviceKey || m.RemoteDeviceKey) && m.AppKeyIndex != nil {
		return ErrDeviceKeyWithAppKey
	}
	return nil
}

// UsesDeviceKey returns true if the message is secured by a device key,
// local or remote.
func (m *Message) UsesDeviceKey() bool {
	return m.LocalDeviceKey || m.RemoteDeviceKey
}

// AccessPayload assembles the message's access payload from its opcode and
// parameters.
func (m *Message) AccessPayload() (Payload, error) {
	return NewPayload(m.Opcode, m.Parameters)
}

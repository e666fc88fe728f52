package access

import (
	"encoding/hex"
	"fmt"

	"github.com/btmesh-protocol/btmesh-go/pkg/mesh"
)

// Record is the structured external representation of a Message, the
// boundary format persisted and interchanged by logging, storage, and test
// tooling. Addresses, TTL, and key indices appear as their numeric values;
// opcode and payload are hex strings. A null or absent appkey_index means
// the message is not application-key secured.
//
// The field set and names are fixed for interoperability with existing
// tooling; do not rename tags.
type Record struct {
	Src             uint16  `json:"src" yaml:"src"`
	Dst             uint16  `json:"dst" yaml:"dst"`
	TTL             uint8   `json:"ttl" yaml:"ttl"`
	Opcode          string  `json:"opcode" yaml:"opcode"`
	Payload         string  `json:"payload" yaml:"payload"`
	NetKeyIndex     uint16  `json:"netkey_index" yaml:"netkey_index"`
	AppKeyIndex     *uint16 `json:"appkey_index" yaml:"appkey_index"`
	BigMIC          bool    `json:"big_mic" yaml:"big_mic"`
	LocalDeviceKey  bool    `json:"local_device_key" yaml:"local_device_key"`
	RemoteDeviceKey bool    `json:"remote_device_key" yaml:"remote_device_key"`
	ForceSeg        bool    `json:"force_seg" yaml:"force_seg"`
}

// Record returns the external representation of the message.
func (m *Message) Record() Record {
	r := Record{
		Src:             uint16(m.Src),
		Dst:             uint16(m.Dst),
		TTL:             uint8(m.TTL),
		Opcode:          hex.EncodeToString(m.Opcode.Encode()),
		Payload:         hex.EncodeToString(m.Parameters),
		NetKeyIndex:     uint16(m.NetKeyIndex),
		BigMIC:          m.BigMIC,
		LocalDeviceKey:  m.LocalDeviceKey,
		RemoteDeviceKey: m.RemoteDeviceKey,
		ForceSeg:        m.ForceSegment,
	}
	if m.AppKeyIndex != nil {
		idx := uint16(*m.AppKeyIndex)
		r.AppKeyIndex = &idx
	}
	return r
}

// FromRecord parses a record back into a validated message. Malformed hex
// or trailing bytes after the opcode fail with ErrMalformedRecord; field
// values outside their ranges fail with the same validation errors as
// NewMessage. Nothing is coerced silently.
func FromRecord(r Record) (*Message, error) {
	opcodeBytes, err := hex.DecodeString(r.Opcode)
	if err != nil {
		return nil, fmt.Errorf("%w: opcode %q: %v", ErrMalformedRecord, r.Opcode, err)
	}
	opcode, consumed, err := DecodeOpcode(opcodeBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: opcode %q: %v", ErrMalformedRecord, r.Opcode, err)
	}
	if consumed != len(opcodeBytes) {
		return nil, fmt.Errorf("%w: %d trailing bytes after opcode", ErrMalformedRecord, len(opcodeBytes)-consumed)
	}

	parameters, err := hex.DecodeString(r.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w: payload: %v", ErrMalformedRecord, err)
	}
	if len(parameters) == 0 {
		parameters = nil
	}

	m := Message{
		Src:             mesh.Address(r.Src),
		Dst:             mesh.Address(r.Dst),
		TTL:             mesh.TTL(r.TTL),
		Opcode:          opcode,
		Parameters:      parameters,
		NetKeyIndex:     mesh.NetKeyIndex(r.NetKeyIndex),
		BigMIC:          r.BigMIC,
		LocalDeviceKey:  r.LocalDeviceKey,
		RemoteDeviceKey: r.RemoteDeviceKey,
		ForceSegment:    r.ForceSeg,
	}
	if r.AppKeyIndex != nil {
		idx := mesh.AppKeyIndex(*r.AppKeyIndex)
		m.AppKeyIndex = &idx
	}
	return NewMessage(m)
}

package access

import (
	"bytes"
	"errors"
	"testing"
)

func mustOpcode(t *testing.T, value uint16) Opcode {
	t.Helper()
	op, err := NewOpcode(value)
	if err != nil {
		t.Fatalf("NewOpcode(0x%X) failed: %v", value, err)
	}
	return op
}

func TestNewPayloadSizeLimit(t *testing.T) {
	op := mustOpcode(t, 0x01)

	// Exactly at the limit succeeds.
	p, err := NewPayload(op, make([]byte, MaxParametersSize))
	if err != nil {
		t.Fatalf("NewPayload at limit failed: %v", err)
	}
	if p.Length() != 1+MaxParametersSize {
		t.Errorf("Length() = %d, want %d", p.Length(), 1+MaxParametersSize)
	}

	// One byte over fails.
	if _, err := NewPayload(op, make([]byte, MaxParametersSize+1)); !errors.Is(err, ErrPayloadTooLarge) {
		t.Errorf("NewPayload over limit = %v, want ErrPayloadTooLarge", err)
	}
}

func TestPayloadEncode(t *testing.T) {
	op, err := NewVendorOpcode(0x10, 0x0059)
	if err != nil {
		t.Fatalf("NewVendorOpcode failed: %v", err)
	}
	p, err := NewPayload(op, []byte{0x01, 0x02, 0x03})
	if err != nil {
		t.Fatalf("NewPayload failed: %v", err)
	}

	want := []byte{0xD0, 0x59, 0x00, 0x01, 0x02, 0x03}
	if got := p.Encode(); !bytes.Equal(got, want) {
		t.Errorf("Encode() = %X, want %X", got, want)
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		params []byte
	}{
		{"single octet no params", 0x01, nil},
		{"single octet with params", 0x04, []byte{0xAA, 0xBB}},
		{"double octet", 0x0234, []byte{0x00}},
		{"max params", 0x02, bytes.Repeat([]byte{0x5A}, MaxParametersSize)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPayload(mustOpcode(t, tt.opcode), tt.params)
			if err != nil {
				t.Fatalf("NewPayload failed: %v", err)
			}
			decoded, err := DecodePayload(p.Encode())
			if err != nil {
				t.Fatalf("DecodePayload failed: %v", err)
			}
			if decoded.Opcode() != p.Opcode() {
				t.Errorf("opcode: got %s, want %s", decoded.Opcode(), p.Opcode())
			}
			if !bytes.Equal(decoded.Parameters(), p.Parameters()) {
				t.Errorf("parameters differ after round trip")
			}
			if decoded.Length() != len(p.Encode()) {
				t.Errorf("Length() = %d, want %d", decoded.Length(), len(p.Encode()))
			}
		})
	}
}

func TestDecodePayloadErrors(t *testing.T) {
	if _, err := DecodePayload(nil); !errors.Is(err, ErrTruncated) {
		t.Errorf("empty input: got %v, want ErrTruncated", err)
	}
	if _, err := DecodePayload([]byte{0x7F}); !errors.Is(err, ErrOpcodeRFU) {
		t.Errorf("RFU opcode: got %v, want ErrOpcodeRFU", err)
	}

	oversized := append([]byte{0x01}, make([]byte, MaxParametersSize+1)...)
	if _, err := DecodePayload(oversized); !errors.Is(err, ErrPayloadTooLarge) {
		t.Errorf("oversized input: got %v, want ErrPayloadTooLarge", err)
	}
}

func TestPayloadImmutable(t *testing.T) {
	params := []byte{0x01, 0x02}
	p, err := NewPayload(mustOpcode(t, 0x01), params)
	if err != nil {
		t.Fatalf("NewPayload failed: %v", err)
	}
	params[0] = 0xFF
	if p.Parameters()[0] != 0x01 {
		t.Error("payload shares memory with caller's slice")
	}
}

package log

import (
	"reflect"
	"testing"
	"time"

	"github.com/btmesh-protocol/btmesh-go/pkg/access"
	"github.com/btmesh-protocol/btmesh-go/pkg/mesh"
)

func testMessage(t *testing.T) *access.Message {
	t.Helper()
	opcode, err := access.NewOpcode(0x04)
	if err != nil {
		t.Fatalf("NewOpcode failed: %v", err)
	}
	idx := mesh.AppKeyIndex(2)
	msg, err := access.NewMessage(access.Message{
		Src:         0x0001,
		Dst:         mesh.AllNodes,
		TTL:         5,
		Opcode:      opcode,
		Parameters:  []byte{0x01, 0x02, 0x03},
		AppKeyIndex: &idx,
		NetKeyIndex: 0,
	})
	if err != nil {
		t.Fatalf("NewMessage failed: %v", err)
	}
	return msg
}

func TestNewMessageEvent(t *testing.T) {
	msg := testMessage(t)
	event := NewMessageEvent("node-1", DirectionOut, msg)

	if event.Category != CategoryMessage {
		t.Errorf("Category = %v, want CategoryMessage", event.Category)
	}
	if event.Layer != LayerAccess {
		t.Errorf("Layer = %v, want LayerAccess", event.Layer)
	}
	if event.Message == nil {
		t.Fatal("Message payload not set")
	}
	// 1-octet opcode + 3 parameter bytes
	if event.Message.PayloadLength != 4 {
		t.Errorf("PayloadLength = %d, want 4", event.Message.PayloadLength)
	}
	if event.Message.Record.Opcode != "04" {
		t.Errorf("Record.Opcode = %q, want %q", event.Message.Record.Opcode, "04")
	}
	if event.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
}

func TestEventCBORRoundTrip(t *testing.T) {
	msg := testMessage(t)
	event := NewMessageEvent("node-1", DirectionIn, msg)
	event.Timestamp = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if decoded.NodeID != event.NodeID {
		t.Errorf("NodeID = %q, want %q", decoded.NodeID, event.NodeID)
	}
	if decoded.Direction != DirectionIn {
		t.Errorf("Direction = %v, want DirectionIn", decoded.Direction)
	}
	if decoded.Message == nil {
		t.Fatal("Message payload lost")
	}
	if !reflect.DeepEqual(decoded.Message.Record, event.Message.Record) {
		t.Errorf("Record mismatch:\n got %+v\nwant %+v", decoded.Message.Record, event.Message.Record)
	}
	if !decoded.Timestamp.Equal(event.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", decoded.Timestamp, event.Timestamp)
	}

	// The round-tripped record must still parse to a valid message.
	if _, err := access.FromRecord(decoded.Message.Record); err != nil {
		t.Errorf("round-tripped record invalid: %v", err)
	}
}

func TestNewErrorEvent(t *testing.T) {
	_, _, err := access.DecodeOpcode([]byte{0x7F})
	if err == nil {
		t.Fatal("expected decode error")
	}

	event := NewErrorEvent("node-1", DirectionIn, "decode opcode", err)
	if event.Category != CategoryError {
		t.Errorf("Category = %v, want CategoryError", event.Category)
	}
	if event.Error == nil || event.Error.Context != "decode opcode" {
		t.Errorf("Error payload = %+v", event.Error)
	}
}

package log

import (
	"time"

	"github.com/btmesh-protocol/btmesh-go/pkg/access"
)

// Event represents a protocol log event captured at the access or
// transport boundary. CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// NodeID identifies the local node that captured the event (UUID).
	NodeID string `cbor:"2,keyasint"`

	// Direction indicates message flow.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// Type-specific payload (one of these will be set).
	Message *MessageEvent   `cbor:"6,keyasint,omitempty"` // Decoded access message
	Error   *ErrorEventData `cbor:"7,keyasint,omitempty"` // Codec errors
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates an incoming message.
	DirectionIn Direction = 0
	// DirectionOut indicates an outgoing message.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which protocol layer captured the event.
type Layer uint8

const (
	// LayerTransport is the segmentation/reassembly layer (raw payloads).
	LayerTransport Layer = 0
	// LayerAccess is the access message layer (decoded messages).
	LayerAccess Layer = 1
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerTransport:
		return "TRANSPORT"
	case LayerAccess:
		return "ACCESS"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryMessage indicates a decoded access message.
	CategoryMessage Category = 0
	// CategoryError indicates a codec error.
	CategoryError Category = 1
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// MessageEvent captures a decoded access message. The message is stored
// as its structured external record, so log files double as replayable
// fixtures.
type MessageEvent struct {
	// Record is the access message in external form.
	Record access.Record `cbor:"1,keyasint"`

	// PayloadLength is the total encoded access payload size in bytes.
	PayloadLength int `cbor:"2,keyasint"`
}

// ErrorEventData captures a codec error.
type ErrorEventData struct {
	// Message is the error text.
	Message string `cbor:"1,keyasint"`

	// Context describes where the error occurred (e.g. "decode payload").
	Context string `cbor:"2,keyasint,omitempty"`
}

// NewMessageEvent builds a message event for a validated access message.
func NewMessageEvent(nodeID string, direction Direction, msg *access.Message) Event {
	return Event{
		Timestamp: time.Now(),
		NodeID:    nodeID,
		Direction: direction,
		Layer:     LayerAccess,
		Category:  CategoryMessage,
		Message: &MessageEvent{
			Record:        msg.Record(),
			PayloadLength: msg.Opcode.Length() + len(msg.Parameters),
		},
	}
}

// NewErrorEvent builds an error event.
func NewErrorEvent(nodeID string, direction Direction, context string, err error) Event {
	return Event{
		Timestamp: time.Now(),
		NodeID:    nodeID,
		Direction: direction,
		Layer:     LayerAccess,
		Category:  CategoryError,
		Error: &ErrorEventData{
			Message: err.Error(),
			Context: context,
		},
	}
}

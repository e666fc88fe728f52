package log

import (
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Filter selects events while reading a log file. A zero Filter matches
// everything; each non-zero field narrows the selection.
type Filter struct {
	// NodeID matches the event's node ID exactly.
	NodeID string

	// Direction, Layer and Category match the corresponding event field.
	Direction *Direction
	Layer     *Layer
	Category  *Category

	// TimeStart (inclusive) and TimeEnd (exclusive) bound the timestamp.
	TimeStart *time.Time
	TimeEnd   *time.Time
}

func (f *Filter) match(event Event) bool {
	switch {
	case f.NodeID != "" && event.NodeID != f.NodeID:
		return false
	case f.Direction != nil && event.Direction != *f.Direction:
		return false
	case f.Layer != nil && event.Layer != *f.Layer:
		return false
	case f.Category != nil && event.Category != *f.Category:
		return false
	case f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart):
		return false
	case f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd):
		return false
	}
	return true
}

// Reader iterates over the events in a CBOR log file, streaming them one
// at a time so arbitrarily large files can be processed.
type Reader struct {
	file   *os.File
	dec    *cbor.Decoder
	filter Filter
}

// NewReader opens path and yields every event it contains.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader opens path and yields only events matching filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{file: f, dec: NewDecoder(f), filter: filter}, nil
}

// Next returns the next matching event, or io.EOF after the last one.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.dec.Decode(&event); err != nil {
			return Event{}, err
		}
		if r.filter.match(event) {
			return event, nil
		}
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

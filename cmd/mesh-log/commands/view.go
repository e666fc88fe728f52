// Package commands implements the mesh-log CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/btmesh-protocol/btmesh-go/pkg/log"
)

// FilterOptions holds the raw flag values a filter is built from.
// Empty fields leave the corresponding criterion unset.
type FilterOptions struct {
	NodeID    string
	Direction string
	Category  string
	Layer     string
	Since     string // RFC 3339, inclusive
	Until     string // RFC 3339, exclusive
}

// BuildFilter parses the flag values into a log.Filter.
func BuildFilter(opts FilterOptions) (log.Filter, error) {
	filter := log.Filter{NodeID: opts.NodeID}

	switch opts.Direction {
	case "":
	case "in":
		d := log.DirectionIn
		filter.Direction = &d
	case "out":
		d := log.DirectionOut
		filter.Direction = &d
	default:
		return log.Filter{}, fmt.Errorf("unknown direction %q (want in or out)", opts.Direction)
	}

	switch opts.Category {
	case "":
	case "message":
		c := log.CategoryMessage
		filter.Category = &c
	case "error":
		c := log.CategoryError
		filter.Category = &c
	default:
		return log.Filter{}, fmt.Errorf("unknown category %q (want message or error)", opts.Category)
	}

	switch opts.Layer {
	case "":
	case "transport":
		l := log.LayerTransport
		filter.Layer = &l
	case "access":
		l := log.LayerAccess
		filter.Layer = &l
	default:
		return log.Filter{}, fmt.Errorf("unknown layer %q (want transport or access)", opts.Layer)
	}

	if opts.Since != "" {
		ts, err := time.Parse(time.RFC3339, opts.Since)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid -since time: %w", err)
		}
		filter.TimeStart = &ts
	}
	if opts.Until != "" {
		ts, err := time.Parse(time.RFC3339, opts.Until)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid -until time: %w", err)
		}
		filter.TimeEnd = &ts
	}

	return filter, nil
}

// RunView prints matching events from the log file in human-readable form.
func RunView(path string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	nodeID := shortenNodeID(event.NodeID)

	var typeLabel string
	switch {
	case event.Message != nil:
		typeLabel = "Message"
	case event.Error != nil:
		typeLabel = "Error"
	default:
		typeLabel = "Unknown"
	}

	fmt.Fprintf(w, "%s [node:%s] %-3s %s %s\n",
		ts, nodeID, event.Direction, event.Layer, typeLabel)

	switch {
	case event.Message != nil:
		rec := event.Message.Record
		fmt.Fprintf(w, "  src=0x%04X dst=0x%04X ttl=%d opcode=%s payload=%s\n",
			rec.Src, rec.Dst, rec.TTL, rec.Opcode, orEmpty(rec.Payload))
		switch {
		case rec.LocalDeviceKey:
			fmt.Fprintf(w, "  secured=device-key(local) netkey_index=%d\n", rec.NetKeyIndex)
		case rec.RemoteDeviceKey:
			fmt.Fprintf(w, "  secured=device-key(remote) netkey_index=%d\n", rec.NetKeyIndex)
		case rec.AppKeyIndex != nil:
			fmt.Fprintf(w, "  secured=app-key appkey_index=%d netkey_index=%d\n",
				*rec.AppKeyIndex, rec.NetKeyIndex)
		default:
			fmt.Fprintf(w, "  secured=none netkey_index=%d\n", rec.NetKeyIndex)
		}
	case event.Error != nil:
		fmt.Fprintf(w, "  %s: %s\n", event.Error.Context, event.Error.Message)
	}
}

// shortenNodeID returns the first 8 characters of a node ID for display.
func shortenNodeID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return "--------"
	}
	return id
}

func orEmpty(s string) string {
	if s == "" {
		return "(empty)"
	}
	return s
}

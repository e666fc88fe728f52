package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/btmesh-protocol/btmesh-go/pkg/log"
)

// exportedEvent is the flattened form of an event for export.
type exportedEvent struct {
	Timestamp string              `json:"timestamp" yaml:"timestamp"`
	NodeID    string              `json:"node_id,omitempty" yaml:"node_id,omitempty"`
	Direction string              `json:"direction" yaml:"direction"`
	Layer     string              `json:"layer" yaml:"layer"`
	Category  string              `json:"category" yaml:"category"`
	Message   *log.MessageEvent   `json:"message,omitempty" yaml:"message,omitempty"`
	Error     *log.ErrorEventData `json:"error,omitempty" yaml:"error,omitempty"`
}

// RunExport reads all events from the log file and writes them to w in
// the requested format: json (one array), jsonl (one object per line), or
// yaml (a document per event).
func RunExport(path, format string, w io.Writer) error {
	switch format {
	case "json", "jsonl", "yaml":
	default:
		return fmt.Errorf("unknown format %q (want json, jsonl, or yaml)", format)
	}

	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	var events []exportedEvent
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		events = append(events, exportEvent(event))
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(events)
	case "jsonl":
		enc := json.NewEncoder(w)
		for _, e := range events {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
		return nil
	default: // yaml
		enc := yaml.NewEncoder(w)
		for _, e := range events {
			if err := enc.Encode(e); err != nil {
				enc.Close()
				return err
			}
		}
		// Close flushes the final document; a dropped error here would
		// leave a silently truncated export.
		return enc.Close()
	}
}

func exportEvent(event log.Event) exportedEvent {
	return exportedEvent{
		Timestamp: event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000000Z"),
		NodeID:    event.NodeID,
		Direction: event.Direction.String(),
		Layer:     event.Layer.String(),
		Category:  event.Category.String(),
		Message:   event.Message,
		Error:     event.Error,
	}
}

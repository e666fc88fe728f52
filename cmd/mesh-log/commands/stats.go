package commands

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/btmesh-protocol/btmesh-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents       int
	EventsByDirection map[log.Direction]int
	EventsByCategory  map[log.Category]int
	Nodes             map[string]int
	Errors            int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByDirection: make(map[log.Direction]int),
		EventsByCategory:  make(map[log.Category]int),
		Nodes:             make(map[string]int),
	}

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByDirection[event.Direction]++
		stats.EventsByCategory[event.Category]++
		if event.NodeID != "" {
			stats.Nodes[event.NodeID]++
		}
		if event.Category == log.CategoryError {
			stats.Errors++
		}
		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}
	}

	fmt.Fprintf(w, "Total events:  %d\n", stats.TotalEvents)
	if stats.TotalEvents == 0 {
		return nil
	}
	fmt.Fprintf(w, "Time range:    %s - %s\n",
		stats.TimeRange.Start.UTC().Format(time.RFC3339),
		stats.TimeRange.End.UTC().Format(time.RFC3339))
	fmt.Fprintf(w, "Incoming:      %d\n", stats.EventsByDirection[log.DirectionIn])
	fmt.Fprintf(w, "Outgoing:      %d\n", stats.EventsByDirection[log.DirectionOut])
	fmt.Fprintf(w, "Messages:      %d\n", stats.EventsByCategory[log.CategoryMessage])
	fmt.Fprintf(w, "Errors:        %d\n", stats.Errors)
	fmt.Fprintf(w, "Nodes:         %d\n", len(stats.Nodes))
	return nil
}

package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes protocol events to an slog.Logger.
// Useful for development when you want to see protocol events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("node_id", event.NodeID),
		slog.String("direction", event.Direction.String()),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}

	switch {
	case event.Message != nil:
		rec := event.Message.Record
		attrs = append(attrs,
			slog.Uint64("src", uint64(rec.Src)),
			slog.Uint64("dst", uint64(rec.Dst)),
			slog.Uint64("ttl", uint64(rec.TTL)),
			slog.String("opcode", rec.Opcode),
			slog.Int("payload_len", event.Message.PayloadLength),
			slog.Bool("device_key", rec.LocalDeviceKey || rec.RemoteDeviceKey),
		)
		if rec.AppKeyIndex != nil {
			attrs = append(attrs, slog.Uint64("appkey_index", uint64(*rec.AppKeyIndex)))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "protocol", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)

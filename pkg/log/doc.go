// Package log provides structured protocol logging for the mesh stack.
//
// It defines the Logger interface and Event types for capturing protocol
// events as they pass through the access layer. It is separate from
// operational logging (slog): protocol capture provides a complete
// machine-readable trace of encoded and decoded access messages for
// debugging and analysis.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	logger, _ := log.NewFileLogger("/var/log/mesh/node.mlog")
//
//	// Both: use MultiLogger
//	logger := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Log files use CBOR encoding with the .mlog extension. Message events
// embed the access-layer structured record, so a log file doubles as a set
// of replayable message fixtures. The mesh-log CLI tool provides viewing,
// filtering, and export capabilities.
package log

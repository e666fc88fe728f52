package log

import (
	"fmt"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileLogger appends CBOR-encoded events to a log file (by convention
// with a .mlog extension). Safe for concurrent use.
type FileLogger struct {
	mu   sync.Mutex
	file *os.File
	enc  *cbor.Encoder
	done bool
}

// NewFileLogger opens path for appending, creating it with mode 0644 if
// it does not exist yet.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &FileLogger{file: f, enc: NewEncoder(f)}, nil
}

// Log appends the event to the file. Encoding errors are swallowed:
// logging must never take the message path down with it.
func (fl *FileLogger) Log(event Event) {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	if fl.done {
		return
	}
	_ = fl.enc.Encode(event)
}

// Close closes the underlying file. Further Log calls become no-ops,
// and calling Close again returns nil.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	if fl.done {
		return nil
	}
	fl.done = true
	return fl.file.Close()
}

var _ Logger = (*FileLogger)(nil)

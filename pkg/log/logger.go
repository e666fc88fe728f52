package log

// Logger receives access-layer protocol events. Implementations must be
// safe for concurrent use; Log is called on the message path, so slow
// sinks should buffer internally rather than block the caller.
type Logger interface {
	Log(event Event)
}

// NoopLogger drops every event. The zero value is ready to use.
type NoopLogger struct{}

func (NoopLogger) Log(Event) {}

var _ Logger = NoopLogger{}

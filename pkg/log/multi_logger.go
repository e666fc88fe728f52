package log

// MultiLogger fans each event out to every attached logger, in order.
// Typical use is a FileLogger for later analysis plus a SlogAdapter for
// live console output.
type MultiLogger struct {
	sinks []Logger
}

// NewMultiLogger builds a MultiLogger over the given loggers.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{sinks: loggers}
}

func (m *MultiLogger) Log(event Event) {
	for _, s := range m.sinks {
		s.Log(event)
	}
}

var _ Logger = (*MultiLogger)(nil)

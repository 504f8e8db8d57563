package publisher

import (
	"log"
	"time"
)

// LoggingObserver wraps an Observer and logs around each notification.
type LoggingObserver struct {
	name   string
	inner  Observer
	logger *log.Logger
}

// NewLoggingObserver wraps inner. name identifies the observer in log lines.
// A nil logger uses the standard logger.
func NewLoggingObserver(name string, inner Observer, logger *log.Logger) *LoggingObserver {
	if logger == nil {
		logger = log.Default()
	}
	return &LoggingObserver{name: name, inner: inner, logger: logger}
}

// Execute logs before and after delegating to the wrapped observer.
func (o *LoggingObserver) Execute(eventName string) {
	o.logger.Printf("observer %s: executing for event %q", o.name, eventName)
	start := time.Now()
	o.inner.Execute(eventName)
	o.logger.Printf("observer %s: event %q done in %v", o.name, eventName, time.Since(start))
}

// Unwrap returns the wrapped observer.
func (o *LoggingObserver) Unwrap() Observer {
	return o.inner
}

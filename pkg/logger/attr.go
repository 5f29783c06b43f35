package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// Empty ids produce an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Field records a single form field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Fields records form field names under the key "fields".
func Fields(names ...string) slog.Attr {
	return slog.Any("fields", names)
}

// Masked records an already-masked personal value. The key is prefixed
// with "masked_" so log processors can tell it was redacted at the source.
func Masked(key, masked string) slog.Attr {
	return slog.String("masked_"+key, masked)
}

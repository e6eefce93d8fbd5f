package log

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Logger provides structured logging capabilities.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field with key "error".
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// Any creates a field with any value.
func Any(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Size creates a string field holding n bytes in human-readable form,
// such as "1.2 kB".
func Size(key string, n int) Field {
	if n < 0 {
		n = 0
	}
	return Field{Key: key, Value: humanize.Bytes(uint64(n))}
}

// Digest creates a string field holding a 64-bit content hash in hex.
func Digest(key string, sum uint64) Field {
	return Field{Key: key, Value: fmt.Sprintf("%016x", sum)}
}

package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologAdapterFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapterWithLogger(zerolog.New(&buf))

	l.Info("configuration loaded",
		String("source", "embedded"),
		Int("sections", 8),
		Any("seed", int64(-3)),
		Size("size", 2048),
		Digest("xxhash", 0xbeef),
		Err(errors.New("boom")),
	)

	got := buf.String()
	for _, want := range []string{
		`"level":"info"`,
		`"source":"embedded"`,
		`"sections":8`,
		`"seed":-3`,
		`"size":"2.0 kB"`,
		`"xxhash":"000000000000beef"`,
		`"error":"boom"`,
		`"message":"configuration loaded"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("log line %s missing %s", got, want)
		}
	}
}

func TestZerologAdapterLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapter(&buf, zerolog.WarnLevel)

	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("below-level events written: %q", buf.String())
	}

	l.Warn("date outside sanity window", String("text", "x"))
	if !strings.Contains(buf.String(), "date outside sanity window") {
		t.Errorf("warn event missing: %q", buf.String())
	}
}

func TestSizeClampsNegative(t *testing.T) {
	if got := Size("size", -1).Value; got != "0 B" {
		t.Errorf("Size(-1) = %v, want 0 B", got)
	}
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NewNoopLogger()
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
}

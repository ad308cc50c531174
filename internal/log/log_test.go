package log

import (
	"bytes"
	"context"
	"testing"
)

func TestPrintf(t *testing.T) {
	t.Parallel()

	t.Run("writes formatted output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Printf("hello %s %d", "world", 42)
		if got := buf.String(); got != "hello world 42" {
			t.Errorf("Printf output = %q, want %q", got, "hello world 42")
		}
	})

	t.Run("suppressed when quiet", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, true)
		l.Printf("should not appear")
		if buf.Len() != 0 {
			t.Errorf("Printf wrote %q when quiet", buf.String())
		}
	})
}

func TestPrintln(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, false, false)
	l.Println("hello", "world")
	if got := buf.String(); got != "hello world\n" {
		t.Errorf("Println output = %q, want %q", got, "hello world\n")
	}
}

func TestVerbosef(t *testing.T) {
	t.Parallel()

	t.Run("prints when verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		l.Verbosef("created %s\n", "/tmp/x/.git/objects")
		if got := buf.String(); got != "created /tmp/x/.git/objects\n" {
			t.Errorf("Verbosef output = %q", got)
		}
	})

	t.Run("silent by default", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Verbosef("should not appear")
		if buf.Len() != 0 {
			t.Errorf("Verbosef wrote %q without verbose", buf.String())
		}
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("returns attached logger", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		ctx := WithLogger(context.Background(), l)
		if FromContext(ctx) != l {
			t.Error("FromContext did not return the attached logger")
		}
	})

	t.Run("no-op without logger", func(t *testing.T) {
		t.Parallel()
		l := FromContext(context.Background())
		// must not panic, output is discarded
		l.Printf("discarded %d", 1)
		l.Verbosef("discarded")
		if l.Verbose() {
			t.Error("fallback logger reports verbose")
		}
	})
}

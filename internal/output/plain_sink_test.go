package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPlainSinkWritesFormattedLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := NewPlainSink(&buf)

	EmitStatus(sink, "pulling", "alpine:latest", "")
	EmitProgress(sink, "layer1", "Download complete", 0, 0)
	EmitStatus(sink, "ready", "alpine:latest", "c0ffee123456")

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "Pulling alpine:latest..." {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if lines[2] != "alpine:latest ready (c0ffee123456)" {
		t.Fatalf("unexpected last line %q", lines[2])
	}
	if sink.Err() != nil {
		t.Fatalf("unexpected sink error: %v", sink.Err())
	}
}

func TestPlainSinkSkipsUnformattableEvents(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := NewPlainSink(&buf)
	sink.emit(struct{}{})

	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("pipe closed")
}

func TestPlainSinkRecordsFirstWriteError(t *testing.T) {
	t.Parallel()

	sink := NewPlainSink(failingWriter{})
	EmitLog(sink, "one")
	EmitLog(sink, "two")

	if sink.Err() == nil {
		t.Fatal("expected write error")
	}
}

func TestSilentError(t *testing.T) {
	t.Parallel()

	cause := errors.New("already shown")
	err := NewSilentError(cause)

	if !IsSilent(err) {
		t.Fatal("expected error to be silent")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected unwrap to reach the cause")
	}
	if IsSilent(cause) {
		t.Fatal("bare cause must not be silent")
	}
}

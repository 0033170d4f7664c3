package output

import (
	"fmt"
	"io"
	"os"
)

// PlainSink renders pipeline events as one line each, for non-interactive
// runs and captured CI logs. Writes never interrupt the pipeline; the first
// write error is kept and readable via Err once the run finishes.
type PlainSink struct {
	out io.Writer
	err error
}

func NewPlainSink(out io.Writer) *PlainSink {
	if out == nil {
		out = os.Stdout
	}
	return &PlainSink{out: out}
}

func (s *PlainSink) Err() error {
	return s.err
}

func (s *PlainSink) emit(event any) {
	line, ok := FormatEventLine(event)
	if !ok {
		return
	}
	if _, err := fmt.Fprintln(s.out, line); err != nil && s.err == nil {
		s.err = err
	}
}

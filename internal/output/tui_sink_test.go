package output

import "testing"

type captureSender struct {
	msgs []any
}

func (s *captureSender) Send(msg any) {
	s.msgs = append(s.msgs, msg)
}

func TestTUISinkForwardsEvents(t *testing.T) {
	t.Parallel()

	sender := &captureSender{}
	sink := NewTUISink(sender)

	EmitStatus(sink, "creating", "alpine:latest", "")
	EmitLog(sink, "hello")

	if len(sender.msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(sender.msgs))
	}
	if _, ok := sender.msgs[0].(ResourceStatusEvent); !ok {
		t.Fatalf("expected ResourceStatusEvent, got %T", sender.msgs[0])
	}
}

func TestTUISinkNilSender(t *testing.T) {
	t.Parallel()

	// Must not panic.
	EmitLog(NewTUISink(nil), "ignored")
}

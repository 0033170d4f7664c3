package components

import (
	"strings"
	"testing"
)

func TestHeaderView(t *testing.T) {
	t.Parallel()

	view := NewHeader("v1.0.0").View()
	if !strings.Contains(view, "dockhand") {
		t.Fatalf("expected header to contain app name, got: %q", view)
	}
	if !strings.Contains(view, "v1.0.0") {
		t.Fatalf("expected header to contain version, got: %q", view)
	}
}

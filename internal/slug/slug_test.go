package slug

import (
	"regexp"
	"testing"
)

var alphanumeric = regexp.MustCompile(`^[A-Za-z0-9]+$`)

func TestGenerateLength(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 6, 32, 256} {
		got := Generate(n)
		if len(got) != n {
			t.Fatalf("Generate(%d) returned %d characters: %q", n, len(got), got)
		}
	}
}

func TestGenerateAlphabet(t *testing.T) {
	t.Parallel()

	got := Generate(512)
	if !alphanumeric.MatchString(got) {
		t.Fatalf("expected alphanumeric output, got %q", got)
	}
}

func TestGenerateVaries(t *testing.T) {
	t.Parallel()

	// 16 characters gives ~95 bits of entropy; a collision here means the
	// generator is broken, not unlucky.
	if Generate(16) == Generate(16) {
		t.Fatal("two generated slugs were identical")
	}
}

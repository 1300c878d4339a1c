package terminal

import (
	"strings"
	"testing"
)

func TestFit_ShortStringsPassThrough(t *testing.T) {
	if got := Fit("hello", 80); got != "hello" {
		t.Errorf("Fit(hello, 80) = %q", got)
	}
}

func TestFit_TruncatesWithEllipsis(t *testing.T) {
	long := strings.Repeat("x", 100)
	got := Fit(long, 20)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated string %q should end with an ellipsis", got)
	}
	if len([]rune(got)) != 20 {
		t.Errorf("Fit returned %d runes, want 20", len([]rune(got)))
	}
}

func TestFit_IgnoresEscapeSequences(t *testing.T) {
	colored := "\x1b[31mred\x1b[0m text"
	if got := Fit(colored, 80); got != colored {
		t.Errorf("Fit should not count escape bytes, got %q", got)
	}
}

func TestGetSize_ReturnsPositiveDimensions(t *testing.T) {
	w, h := GetSize()
	if w <= 0 || h <= 0 {
		t.Errorf("GetSize() = (%d, %d), want positive dimensions", w, h)
	}
}

package ui

import (
	"strings"
	"testing"
)

func TestFitLines(t *testing.T) {
	out := fitLines("a\nbb", 4, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "a   " || lines[1] != "bb  " {
		t.Fatalf("lines not padded: %q", lines)
	}
	if lines[2] != "    " {
		t.Fatalf("missing fill line: %q", lines[2])
	}
}

func TestFitLinesTruncatesHeight(t *testing.T) {
	out := fitLines("a\nb\nc\nd", 1, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a" || lines[1] != "b" {
		t.Fatalf("unexpected lines: %q", lines)
	}
}

func TestTruncateLine(t *testing.T) {
	if got := truncateLine("short", 10); got != "short" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := truncateLine("a longer line", 8); got != "a lon..." {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := truncateLine("abc", 2); got != "ab" {
		t.Fatalf("unexpected tiny-width truncation: %q", got)
	}
}

func TestModalWidth(t *testing.T) {
	if got := modalWidth(200); got != 80 {
		t.Fatalf("expected cap at 80, got %d", got)
	}
	if got := modalWidth(50); got != 46 {
		t.Fatalf("expected width-4, got %d", got)
	}
	if got := modalWidth(10); got != 44 {
		t.Fatalf("expected floor at 44, got %d", got)
	}
}

package main

import (
	"strings"
	"testing"
)

func TestRenderASCIISquare(t *testing.T) {
	img := []uint8{0, 255, 255, 0}
	out := renderASCII(img)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d: %q", len(lines), out)
	}
	if lines[0] != " @" || lines[1] != "@ " {
		t.Fatalf("unexpected rendering: %q", out)
	}
}

func TestRenderASCIINonSquare(t *testing.T) {
	out := renderASCII([]uint8{0, 0, 0})
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("non-square record should render one row, got %q", out)
	}
}

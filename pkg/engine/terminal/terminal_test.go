package terminal

import (
	"bytes"
	"testing"
)

func TestIsTerminal_Buffer(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("IsTerminal(bytes.Buffer) = true, want false")
	}
}

func TestSizeOf_NonTerminalFallsBack(t *testing.T) {
	w, h := SizeOf(&bytes.Buffer{})
	if w != DefaultWidth || h != DefaultHeight {
		t.Errorf("SizeOf(buffer) = %dx%d, want %dx%d", w, h, DefaultWidth, DefaultHeight)
	}
}

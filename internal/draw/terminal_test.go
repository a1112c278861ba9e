package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestChunkWriterAppliesOffsetToCursorMoves(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 2, 1)

	cw.WriteAt(3, 4, "hi")
	if err := cw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	if got, want := buf.String(), "\033[5;5Hhi"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestChunkWriterSetOffsetTakesEffect(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 0, 0)
	cw.SetOffset(1, 1)

	cw.MoveCursor(1, 1)
	if err := cw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	if got, want := buf.String(), "\033[2;2H"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestChunkWriterStyledWriteResetsAttributes(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 0, 0)

	cw.WriteStyledAt(1, 1, "GO", ColorGreen)
	if err := cw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, Fg(ColorGreen)+"GO") {
		t.Errorf("output %q missing colored text", out)
	}
	if !strings.HasSuffix(out, Reset) {
		t.Errorf("output %q does not end with a reset", out)
	}
}

func TestChunkWriterFlushDeliversLargePayloadIntact(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 0, 0)

	payload := strings.Repeat("x", maxChunkSize*3+17)
	cw.WriteString(payload)
	if err := cw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	if buf.String() != payload {
		t.Errorf("flushed %d bytes, want %d intact", buf.Len(), len(payload))
	}

	// The buffer resets after a flush.
	buf.Reset()
	if err := cw.Flush(); err != nil {
		t.Fatalf("second flush: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty flush wrote %d bytes", buf.Len())
	}
}

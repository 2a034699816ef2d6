package frames

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestReader_Frames(t *testing.T) {
	var buf bytes.Buffer
	for i := 0; i < 3; i++ {
		buf.Write(bytes.Repeat([]byte{byte(10 + i)}, 12))
	}

	fr, err := NewReader(&buf, 4, 2)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	var got [][]byte
	for {
		frame, err := fr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		got = append(got, frame)
	}

	if len(got) != 3 {
		t.Fatalf("got %d frames, want 3", len(got))
	}
	for i, frame := range got {
		if len(frame) != 12 || frame[0] != byte(10+i) {
			t.Errorf("frame %d: got len %d first byte %d", i, len(frame), frame[0])
		}
	}
	if fr.Count() != 3 {
		t.Errorf("Count: got %d, want 3", fr.Count())
	}
	if fr.Width() != 4 || fr.Height() != 2 {
		t.Errorf("dimensions: got %dx%d, want 4x2", fr.Width(), fr.Height())
	}
}

func TestReader_TruncatedFrame(t *testing.T) {
	data := make([]byte, 12+5)
	fr, err := NewReader(bytes.NewReader(data), 4, 2)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	if _, err := fr.Next(); err != nil {
		t.Fatalf("first Next failed: %v", err)
	}
	if _, err := fr.Next(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("got %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestReader_Empty(t *testing.T) {
	fr, err := NewReader(bytes.NewReader(nil), 4, 2)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	if _, err := fr.Next(); err != io.EOF {
		t.Errorf("got %v, want io.EOF", err)
	}
}

func TestNewReader_InvalidDimensions(t *testing.T) {
	if _, err := NewReader(bytes.NewReader(nil), 4, -1); err == nil {
		t.Error("NewReader should fail for negative height")
	}
}

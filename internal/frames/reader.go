package frames

import (
	"bufio"
	"fmt"
	"io"
)

// Reader splits a stream of concatenated YUV420SP frames into frames.
//
// Each call to Next returns a freshly allocated slice, so callers may keep
// frames after the next read.
type Reader struct {
	r          *bufio.Reader
	width      int
	height     int
	frameBytes int
	read       int
}

// NewReader wraps r as a frame stream of the given dimensions.
func NewReader(r io.Reader, width, height int) (*Reader, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame dimensions %dx%d", width, height)
	}

	frameBytes := FrameLen(width, height)
	return &Reader{
		r:          bufio.NewReaderSize(r, frameBytes),
		width:      width,
		height:     height,
		frameBytes: frameBytes,
	}, nil
}

// Next returns the next frame. It returns io.EOF when the stream ends on a
// frame boundary and an error wrapping io.ErrUnexpectedEOF when it ends
// inside a frame.
func (fr *Reader) Next() ([]byte, error) {
	frame := make([]byte, fr.frameBytes)
	n, err := io.ReadFull(fr.r, frame)
	switch {
	case err == io.EOF:
		return nil, io.EOF
	case err == io.ErrUnexpectedEOF:
		return nil, fmt.Errorf("frame %d truncated after %d of %d bytes: %w", fr.read, n, fr.frameBytes, err)
	case err != nil:
		return nil, fmt.Errorf("failed to read frame %d: %w", fr.read, err)
	}

	fr.read++
	return frame, nil
}

// Width returns the frame width in pixels.
func (fr *Reader) Width() int { return fr.width }

// Height returns the frame height in pixels.
func (fr *Reader) Height() int { return fr.height }

// Count returns the number of frames returned so far.
func (fr *Reader) Count() int { return fr.read }

package yuv

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDegenerateFrame is returned when width*height is not a positive pixel count.
	ErrDegenerateFrame = errors.New("degenerate frame")

	// ErrShortFrame is returned when the buffer cannot hold the luma plane.
	ErrShortFrame = errors.New("frame shorter than luma plane")

	// ErrUnknownChannel is returned for a Channel outside Red, Green, Blue.
	ErrUnknownChannel = errors.New("unknown channel")
)

// Channel identifies one of the three RGB accumulators.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("channel(%d)", int(c))
	}
}

// ParseChannel maps "red", "green" or "blue" (any case) to a Channel.
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownChannel, s)
	}
}

// ChannelSums holds the per-channel totals of one frame.
//
// Each total lies in [0, 255*width*height].
type ChannelSums struct {
	Red   int `json:"red"`   // Sum of red bytes
	Green int `json:"green"` // Sum of green bytes
	Blue  int `json:"blue"`  // Sum of blue bytes
}

// Get returns the total for c, or 0 for an unknown channel.
func (s ChannelSums) Get(c Channel) int {
	switch c {
	case Red:
		return s.Red
	case Green:
		return s.Green
	case Blue:
		return s.Blue
	}
	return 0
}

func (s *ChannelSums) add(o ChannelSums) {
	s.Red += o.Red
	s.Green += o.Green
	s.Blue += o.Blue
}

// ChannelAverages holds the per-channel means of one frame, each in [0, 255].
type ChannelAverages struct {
	Red   int `json:"red"`   // Mean red byte (truncated)
	Green int `json:"green"` // Mean green byte (truncated)
	Blue  int `json:"blue"`  // Mean blue byte (truncated)
}

// Get returns the average for c, or 0 for an unknown channel.
func (a ChannelAverages) Get(c Channel) int {
	switch c {
	case Red:
		return a.Red
	case Green:
		return a.Green
	case Blue:
		return a.Blue
	}
	return 0
}

// Fixed-point conversion constants. Coefficients are BT.601 scaled by 1024,
// so clamped channel values occupy 18 bits.
const (
	lumaOffset   = 16
	chromaOffset = 128
	maxFixed     = 262143
)

// Sums decodes a YUV420SP frame and returns the total of each RGB channel.
//
// Parameters:
//   - frame: YUV420SP bytes, or nil for "no data".
//   - width: Frame width in pixels. Must be positive.
//   - height: Frame height in pixels. Must be positive.
//
// Returns:
//   - *ChannelSums: The channel totals, or nil when frame is nil.
//   - error: ErrDegenerateFrame or ErrShortFrame for invalid input.
//
// # Algorithm
//
// Pixels are visited row-major. Each row starts its chroma cursor at
// frameSize + (row/2)*width with (u,v) = (0,0). On even columns the next V,U
// pair is read if both bytes are inside the buffer; odd columns reuse it.
// RGB is computed as
//
//	r = 1192*y + 1634*v
//	g = 1192*y - 833*v - 400*u
//	b = 1192*y + 2066*u
//
// clamped to [0, 262143] and packed as
//
//	0xff000000 | (r<<6)&0xff0000 | (g>>2)&0xff00 | (b>>10)&0xff
//
// before the three bytes are unpacked and added up.
func Sums(frame []byte, width, height int) (*ChannelSums, error) {
	if frame == nil {
		return nil, nil
	}
	if err := checkFrame(frame, width, height); err != nil {
		return nil, err
	}

	sums := sumRows(frame, width, height, 0, height)
	return &sums, nil
}

// Averages returns the mean of each RGB channel over the frame.
//
// A nil frame yields a nil result and a nil error. Each mean is the channel
// total divided by width*height, truncated toward zero.
func Averages(frame []byte, width, height int) (*ChannelAverages, error) {
	sums, err := Sums(frame, width, height)
	if err != nil || sums == nil {
		return nil, err
	}
	return sums.averages(width * height), nil
}

// ChannelAverage returns the mean of a single channel over the frame.
//
// Unlike Averages, a nil frame yields 0 rather than an absent result.
func ChannelAverage(frame []byte, width, height int, c Channel) (int, error) {
	if frame == nil {
		return 0, nil
	}
	if c < Red || c > Blue {
		return 0, fmt.Errorf("%w: %d", ErrUnknownChannel, int(c))
	}

	sums, err := Sums(frame, width, height)
	if err != nil {
		return 0, err
	}
	return sums.Get(c) / (width * height), nil
}

func (s ChannelSums) averages(frameSize int) *ChannelAverages {
	return &ChannelAverages{
		Red:   s.Red / frameSize,
		Green: s.Green / frameSize,
		Blue:  s.Blue / frameSize,
	}
}

func checkFrame(frame []byte, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrDegenerateFrame, width, height)
	}
	if len(frame) < width*height {
		return fmt.Errorf("%w: %d bytes for %dx%d", ErrShortFrame, len(frame), width, height)
	}
	return nil
}

// sumRows accumulates rows [start, end). Rows share no decoder state, which
// lets callers split a frame into independent bands.
func sumRows(frame []byte, width, height, start, end int) ChannelSums {
	frameSize := width * height

	var sums ChannelSums
	for j := start; j < end; j++ {
		yp := j * width
		uvp := frameSize + (j>>1)*width
		u, v := 0, 0

		for i := 0; i < width; i, yp = i+1, yp+1 {
			y := int(frame[yp]) - lumaOffset
			if y < 0 {
				y = 0
			}
			if i&1 == 0 && uvp+1 < len(frame) {
				v = int(frame[uvp]) - chromaOffset
				u = int(frame[uvp+1]) - chromaOffset
				uvp += 2
			}

			pixel := packPixel(y, u, v)
			sums.Red += int((pixel >> 16) & 0xff)
			sums.Green += int((pixel >> 8) & 0xff)
			sums.Blue += int(pixel & 0xff)
		}
	}
	return sums
}

// packPixel converts one YUV sample to a 0xAARRGGBB value.
func packPixel(y, u, v int) uint32 {
	y1192 := 1192 * y
	r := clampFixed(y1192 + 1634*v)
	g := clampFixed(y1192 - 833*v - 400*u)
	b := clampFixed(y1192 + 2066*u)

	return 0xff000000 |
		uint32((r<<6)&0xff0000) |
		uint32((g>>2)&0xff00) |
		uint32((b>>10)&0xff)
}

func clampFixed(x int) int {
	if x < 0 {
		return 0
	}
	if x > maxFixed {
		return maxFixed
	}
	return x
}

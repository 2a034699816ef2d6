package yuv

import (
	"errors"
	"math/rand"
	"testing"
)

// uniformFrame builds a YUV420SP frame with constant luma and a repeated V,U pair.
func uniformFrame(width, height int, y, v, u byte) []byte {
	frameSize := width * height
	frame := make([]byte, frameSize+frameSize/2)
	for i := 0; i < frameSize; i++ {
		frame[i] = y
	}
	for i := frameSize; i < len(frame); i++ {
		if (i-frameSize)%2 == 0 {
			frame[i] = v
		} else {
			frame[i] = u
		}
	}
	return frame
}

// randomFrame builds a frame of random bytes from a fixed seed.
func randomFrame(seed int64, width, height int) []byte {
	rng := rand.New(rand.NewSource(seed))
	frame := make([]byte, width*height+width*height/2)
	rng.Read(frame)
	return frame
}

func TestSums_UniformFrames(t *testing.T) {
	tests := []struct {
		name    string
		y, v, u byte
		want    ChannelSums // per pixel
	}{
		{"black", 16, 128, 128, ChannelSums{0, 0, 0}},
		{"below black luma", 0, 128, 128, ChannelSums{0, 0, 0}},
		{"mid gray", 235, 128, 128, ChannelSums{254, 254, 254}},
		{"red chroma", 16, 255, 128, ChannelSums{202, 0, 0}},
		{"blue chroma clamps", 16, 128, 255, ChannelSums{0, 0, 255}},
		{"green from negative chroma", 16, 0, 0, ChannelSums{0, 154, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := uniformFrame(4, 2, tt.y, tt.v, tt.u)

			got, err := Sums(frame, 4, 2)
			if err != nil {
				t.Fatalf("Sums failed: %v", err)
			}
			want := ChannelSums{tt.want.Red * 8, tt.want.Green * 8, tt.want.Blue * 8}
			if *got != want {
				t.Errorf("Sums: got %+v, want %+v", *got, want)
			}
		})
	}
}

func TestAverages_MidGray(t *testing.T) {
	frame := uniformFrame(4, 2, 235, 128, 128)

	sums, err := Sums(frame, 4, 2)
	if err != nil {
		t.Fatalf("Sums failed: %v", err)
	}
	if *sums != (ChannelSums{2032, 2032, 2032}) {
		t.Errorf("Sums: got %+v, want 2032 per channel", *sums)
	}

	avg, err := Averages(frame, 4, 2)
	if err != nil {
		t.Fatalf("Averages failed: %v", err)
	}
	if *avg != (ChannelAverages{254, 254, 254}) {
		t.Errorf("Averages: got %+v, want 254 per channel", *avg)
	}
}

func TestSums_HorizontalSubsampling(t *testing.T) {
	// Columns 0-1 share the first V,U pair (red), columns 2-3 the second (blue).
	frame := uniformFrame(4, 2, 16, 128, 128)
	copy(frame[8:], []byte{255, 128, 128, 255})

	sums, err := Sums(frame, 4, 2)
	if err != nil {
		t.Fatalf("Sums failed: %v", err)
	}
	want := ChannelSums{Red: 202 * 4, Green: 0, Blue: 255 * 4}
	if *sums != want {
		t.Errorf("Sums: got %+v, want %+v", *sums, want)
	}

	avg, err := Averages(frame, 4, 2)
	if err != nil {
		t.Fatalf("Averages failed: %v", err)
	}
	if *avg != (ChannelAverages{Red: 101, Green: 0, Blue: 127}) {
		t.Errorf("Averages: got %+v, want {101 0 127}", *avg)
	}
}

func TestSums_VerticalSubsampling(t *testing.T) {
	// Rows 0-1 read the first chroma row (red), rows 2-3 the second (blue).
	frame := uniformFrame(4, 4, 16, 128, 128)
	copy(frame[16:], []byte{255, 128, 255, 128, 128, 255, 128, 255})

	sums, err := Sums(frame, 4, 4)
	if err != nil {
		t.Fatalf("Sums failed: %v", err)
	}
	want := ChannelSums{Red: 202 * 8, Green: 0, Blue: 255 * 8}
	if *sums != want {
		t.Errorf("Sums: got %+v, want %+v", *sums, want)
	}
}

func TestSums_OddWidthReusesLastChroma(t *testing.T) {
	// 3x2: luma 6 bytes, chroma 3 bytes. Column 2 finds only one byte left
	// and must keep the pair read at column 0.
	frame := []byte{
		16, 16, 16,
		16, 16, 16,
		255, 128, 0,
	}

	sums, err := Sums(frame, 3, 2)
	if err != nil {
		t.Fatalf("Sums failed: %v", err)
	}
	want := ChannelSums{Red: 202 * 6}
	if *sums != want {
		t.Errorf("Sums: got %+v, want %+v", *sums, want)
	}

	avg, err := ChannelAverage(frame, 3, 2, Red)
	if err != nil {
		t.Fatalf("ChannelAverage failed: %v", err)
	}
	if avg != 202 {
		t.Errorf("ChannelAverage(Red): got %d, want 202", avg)
	}
}

func TestSums_LumaOnlyFrameUsesNeutralChroma(t *testing.T) {
	frame := make([]byte, 8)
	for i := range frame {
		frame[i] = 235
	}

	sums, err := Sums(frame, 4, 2)
	if err != nil {
		t.Fatalf("Sums failed: %v", err)
	}
	if *sums != (ChannelSums{2032, 2032, 2032}) {
		t.Errorf("Sums: got %+v, want 2032 per channel", *sums)
	}
}

func TestAbsentFrame(t *testing.T) {
	sums, err := Sums(nil, 4, 2)
	if err != nil || sums != nil {
		t.Errorf("Sums(nil): got (%v, %v), want (nil, nil)", sums, err)
	}

	avg, err := Averages(nil, 4, 2)
	if err != nil || avg != nil {
		t.Errorf("Averages(nil): got (%v, %v), want (nil, nil)", avg, err)
	}

	par, err := SumsParallel(nil, 4, 2)
	if err != nil || par != nil {
		t.Errorf("SumsParallel(nil): got (%v, %v), want (nil, nil)", par, err)
	}

	for _, c := range []Channel{Red, Green, Blue} {
		got, err := ChannelAverage(nil, 4, 2, c)
		if err != nil || got != 0 {
			t.Errorf("ChannelAverage(nil, %s): got (%d, %v), want (0, nil)", c, got, err)
		}
	}
}

func TestInvalidInput(t *testing.T) {
	tests := []struct {
		name          string
		frame         []byte
		width, height int
		wantErr       error
	}{
		{"zero width", make([]byte, 12), 0, 2, ErrDegenerateFrame},
		{"zero height", make([]byte, 12), 4, 0, ErrDegenerateFrame},
		{"negative width", make([]byte, 12), -4, 2, ErrDegenerateFrame},
		{"empty frame", []byte{}, 4, 2, ErrShortFrame},
		{"short luma", make([]byte, 7), 4, 2, ErrShortFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Sums(tt.frame, tt.width, tt.height); !errors.Is(err, tt.wantErr) {
				t.Errorf("Sums: got %v, want %v", err, tt.wantErr)
			}
			if _, err := Averages(tt.frame, tt.width, tt.height); !errors.Is(err, tt.wantErr) {
				t.Errorf("Averages: got %v, want %v", err, tt.wantErr)
			}
			if _, err := ChannelAverage(tt.frame, tt.width, tt.height, Green); !errors.Is(err, tt.wantErr) {
				t.Errorf("ChannelAverage: got %v, want %v", err, tt.wantErr)
			}
			if _, err := SumsParallel(tt.frame, tt.width, tt.height); !errors.Is(err, tt.wantErr) {
				t.Errorf("SumsParallel: got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestChannelAverage_UnknownChannel(t *testing.T) {
	frame := uniformFrame(4, 2, 235, 128, 128)
	if _, err := ChannelAverage(frame, 4, 2, Channel(7)); !errors.Is(err, ErrUnknownChannel) {
		t.Errorf("got %v, want ErrUnknownChannel", err)
	}
}

func TestProperties_RandomFrames(t *testing.T) {
	sizes := []struct{ width, height int }{
		{1, 1}, {2, 2}, {3, 5}, {7, 3}, {16, 9}, {64, 48}, {33, 17},
	}

	for i, sz := range sizes {
		frame := randomFrame(int64(i+1), sz.width, sz.height)
		frameSize := sz.width * sz.height

		sums, err := Sums(frame, sz.width, sz.height)
		if err != nil {
			t.Fatalf("%dx%d: Sums failed: %v", sz.width, sz.height, err)
		}

		again, _ := Sums(frame, sz.width, sz.height)
		if *again != *sums {
			t.Errorf("%dx%d: not deterministic: %+v vs %+v", sz.width, sz.height, *sums, *again)
		}

		avg, err := Averages(frame, sz.width, sz.height)
		if err != nil {
			t.Fatalf("%dx%d: Averages failed: %v", sz.width, sz.height, err)
		}

		for _, c := range []Channel{Red, Green, Blue} {
			if v := sums.Get(c); v < 0 || v > 255*frameSize {
				t.Errorf("%dx%d: %s sum %d out of [0, %d]", sz.width, sz.height, c, v, 255*frameSize)
			}
			if avg.Get(c) != sums.Get(c)/frameSize {
				t.Errorf("%dx%d: %s average %d != %d/%d", sz.width, sz.height, c, avg.Get(c), sums.Get(c), frameSize)
			}
			single, err := ChannelAverage(frame, sz.width, sz.height, c)
			if err != nil {
				t.Fatalf("%dx%d: ChannelAverage failed: %v", sz.width, sz.height, err)
			}
			if single != avg.Get(c) {
				t.Errorf("%dx%d: ChannelAverage(%s) = %d, Averages = %d", sz.width, sz.height, c, single, avg.Get(c))
			}
		}
	}
}

func TestParseChannel(t *testing.T) {
	tests := []struct {
		in      string
		want    Channel
		wantErr bool
	}{
		{"red", Red, false},
		{"GREEN", Green, false},
		{" Blue ", Blue, false},
		{"alpha", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseChannel(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownChannel) {
					t.Errorf("got %v, want ErrUnknownChannel", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseChannel failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
			if got.String() != tt.want.String() {
				t.Errorf("String: got %s, want %s", got.String(), tt.want.String())
			}
		})
	}
}

func TestPackPixel(t *testing.T) {
	tests := []struct {
		name    string
		y, u, v int
		want    uint32
	}{
		{"black", 0, 0, 0, 0xff000000},
		{"near white", 219, 0, 0, 0xfffefefe},
		{"clamped white", 255, 0, 0, 0xffffffff},
		{"red", 0, 0, 127, 0xffca0000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := packPixel(tt.y, tt.u, tt.v); got != tt.want {
				t.Errorf("packPixel: got %#08x, want %#08x", got, tt.want)
			}
		})
	}
}

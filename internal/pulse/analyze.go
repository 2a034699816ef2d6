package pulse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ironsheep/yuv-pulse-mcp/internal/yuv"
)

// FrameSource yields YUV420SP frames until it returns io.EOF.
type FrameSource interface {
	Next() ([]byte, error)
}

// Report summarises a pulse analysis over a frame sequence.
type Report struct {
	Frames       int           `json:"frames"`
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	FPS          float64       `json:"fps"`
	Duration     time.Duration `json:"duration"`
	Measurements []Measurement `json:"measurements"`

	// LastRate is the running rate of the unfinished window at the end of
	// the stream.
	LastRate int `json:"last_rate"`
}

// Analyze reads every frame from src, reduces it to channel averages and
// feeds them to a Monitor, timing frame i at i/fps seconds.
//
// A nil frame from src carries no data: it is counted and timed but not
// observed.
//
// progress, if non-nil, is called after each frame with the number of frames
// processed so far. Cancelling ctx stops the analysis between frames.
func Analyze(ctx context.Context, src FrameSource, width, height int, fps float64, cfg Config, progress func(int)) (*Report, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("frame rate must be positive, got %g", fps)
	}

	mon, err := NewMonitor(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid pulse config: %w", err)
	}

	report := &Report{
		Width:        width,
		Height:       height,
		FPS:          fps,
		Measurements: []Measurement{},
	}

	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		frame, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		avg, err := yuv.AveragesParallel(frame, width, height)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}

		// An absent frame still occupies its slot in the timeline.
		elapsed := time.Duration(float64(i) / fps * float64(time.Second))
		if avg != nil {
			if m := mon.Observe(Sample{Red: avg.Red, Blue: avg.Blue, Elapsed: elapsed}); m != nil {
				report.Measurements = append(report.Measurements, *m)
			}
		}

		report.Frames = i + 1
		report.Duration = elapsed
		if progress != nil {
			progress(report.Frames)
		}
	}

	report.LastRate = mon.Rate()
	return report, nil
}

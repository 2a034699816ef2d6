package yuv

import (
	"sync"

	"github.com/anthonynsimon/bild/parallel"
)

// SumsParallel is Sums with the rows split into bands summed on separate
// goroutines. Results are identical to Sums for every input.
//
// It pays off for full camera frames; for small frames the goroutine fan-out
// costs more than it saves.
func SumsParallel(frame []byte, width, height int) (*ChannelSums, error) {
	if frame == nil {
		return nil, nil
	}
	if err := checkFrame(frame, width, height); err != nil {
		return nil, err
	}

	var (
		mu    sync.Mutex
		total ChannelSums
	)
	parallel.Line(height, func(start, end int) {
		band := sumRows(frame, width, height, start, end)
		mu.Lock()
		total.add(band)
		mu.Unlock()
	})

	return &total, nil
}

// AveragesParallel is Averages computed through SumsParallel.
func AveragesParallel(frame []byte, width, height int) (*ChannelAverages, error) {
	sums, err := SumsParallel(frame, width, height)
	if err != nil || sums == nil {
		return nil, err
	}
	return sums.averages(width * height), nil
}

package pulse

import (
	"fmt"
	"time"
)

// Config tunes beat detection and measurement windows.
type Config struct {
	// RollingWindow is the number of recent red averages the beat detector
	// compares each new sample against.
	RollingWindow int `json:"rolling_window"`

	// HistoryWindow is the number of accepted heart rates averaged into the
	// reported value.
	HistoryWindow int `json:"history_window"`

	// Period is how long beats are counted before a heart rate is computed.
	Period time.Duration `json:"period"`

	// MinBPM and MaxBPM bound a plausible heart rate. Windows outside the
	// range are discarded and counting restarts.
	MinBPM int `json:"min_bpm"`
	MaxBPM int `json:"max_bpm"`

	// Profile feeds the blood pressure estimate.
	Profile Profile `json:"profile"`
}

// DefaultConfig returns the settings the monitor was tuned with: a 4-sample
// rolling average, 3 measurements of history and 10 second windows.
func DefaultConfig() Config {
	return Config{
		RollingWindow: 4,
		HistoryWindow: 3,
		Period:        10 * time.Second,
		MinBPM:        30,
		MaxBPM:        180,
		Profile:       DefaultProfile(),
	}
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.RollingWindow <= 0:
		return fmt.Errorf("rolling window must be positive, got %d", c.RollingWindow)
	case c.HistoryWindow <= 0:
		return fmt.Errorf("history window must be positive, got %d", c.HistoryWindow)
	case c.Period <= 0:
		return fmt.Errorf("period must be positive, got %s", c.Period)
	case c.MinBPM < 0 || c.MaxBPM <= c.MinBPM:
		return fmt.Errorf("invalid heart rate range [%d, %d]", c.MinBPM, c.MaxBPM)
	}
	return nil
}

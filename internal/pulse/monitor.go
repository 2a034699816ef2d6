package pulse

import "time"

// Sample is one frame's contribution to the pulse signal.
type Sample struct {
	Red     int           // Red channel average of the frame
	Blue    int           // Blue channel average of the frame
	Elapsed time.Duration // Capture time relative to the start of the stream
}

// Measurement is the result of one completed counting window.
//
// HeartRate is the mean of the last HistoryWindow accepted window rates, so it
// equals WindowRate for the first measurement after a Reset and differs from
// it only once earlier windows are in the history.
type Measurement struct {
	HeartRate     int           `json:"heart_rate"`     // Smoothed over the history window
	WindowRate    int           `json:"window_rate"`    // Rate of this window alone
	Beats         int           `json:"beats"`          // Beats counted in this window
	Frames        int           `json:"frames"`         // Samples observed for this measurement
	SpO2          int           `json:"spo2"`           // Percent, 0 when unavailable
	SpO2Available bool          `json:"spo2_available"` // False when the signal was too flat
	Systolic      int           `json:"systolic"`       // mmHg
	Diastolic     int           `json:"diastolic"`      // mmHg
	At            time.Duration `json:"at"`             // Elapsed time of the closing sample
}

type phase int

const (
	phaseGreen phase = iota
	phaseRed
)

// Monitor turns a stream of red/blue frame averages into heart rate
// measurements. A fingertip over the lens with the torch on darkens slightly
// on every heartbeat; each drop of the red average below its recent mean is
// counted as a beat.
//
// A Monitor is not safe for concurrent use.
type Monitor struct {
	cfg Config

	rolling    []int
	rollingIdx int
	phase      phase
	beats      int

	started bool
	start   time.Duration
	rate    int

	reds  []int
	blues []int

	history    []int
	historyIdx int
}

// NewMonitor creates a Monitor. The configuration must be valid.
func NewMonitor(cfg Config) (*Monitor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Monitor{
		cfg:     cfg,
		rolling: make([]int, cfg.RollingWindow),
		history: make([]int, cfg.HistoryWindow),
	}, nil
}

// Observe feeds one sample and returns a Measurement when it closes a
// counting window, or nil otherwise.
//
// Samples whose red average is 0 or 255 mean the lens is uncovered or
// saturated; they still feed the oxygen estimate but not beat detection.
func (m *Monitor) Observe(s Sample) *Measurement {
	if !m.started {
		m.started = true
		m.start = s.Elapsed
	}

	m.reds = append(m.reds, s.Red)
	m.blues = append(m.blues, s.Blue)

	if s.Red == 0 || s.Red == 255 {
		return nil
	}

	mean := positiveMean(m.rolling)
	next := m.phase
	if s.Red < mean {
		next = phaseRed
		if next != m.phase {
			m.beats++
		}
	} else if s.Red > mean {
		next = phaseGreen
	}
	m.rolling[m.rollingIdx] = s.Red
	m.rollingIdx = (m.rollingIdx + 1) % len(m.rolling)
	m.phase = next

	seconds := (s.Elapsed - m.start).Seconds()
	if seconds <= 0 {
		return nil
	}
	m.rate = int(float64(m.beats) / seconds * 60)

	if seconds < m.cfg.Period.Seconds() {
		return nil
	}

	windowRate := m.rate
	if windowRate < m.cfg.MinBPM || windowRate > m.cfg.MaxBPM {
		m.start = s.Elapsed
		m.beats = 0
		m.rate = 0
		return nil
	}

	m.history[m.historyIdx] = windowRate
	m.historyIdx = (m.historyIdx + 1) % len(m.history)
	heartRate := positiveMean(m.history)

	meas := &Measurement{
		HeartRate:  heartRate,
		WindowRate: windowRate,
		Beats:      m.beats,
		Frames:     len(m.reds),
		At:         s.Elapsed,
	}
	if spo2, err := OxygenSaturation(m.reds, m.blues); err == nil {
		meas.SpO2 = spo2
		meas.SpO2Available = true
	}
	meas.Systolic, meas.Diastolic = BloodPressure(heartRate, m.cfg.Profile)

	m.resetWindow()
	return meas
}

// Rate returns the running heart rate of the current window, suitable for a
// live readout. It is 0 until time has passed since the window began.
func (m *Monitor) Rate() int {
	return m.rate
}

// Reset clears all state including the heart rate history.
func (m *Monitor) Reset() {
	m.resetWindow()
	for i := range m.history {
		m.history[i] = 0
	}
	m.historyIdx = 0
}

func (m *Monitor) resetWindow() {
	for i := range m.rolling {
		m.rolling[i] = 0
	}
	m.rollingIdx = 0
	m.phase = phaseGreen
	m.beats = 0
	m.started = false
	m.start = 0
	m.rate = 0
	m.reds = m.reds[:0]
	m.blues = m.blues[:0]
}

// positiveMean averages the positive entries; unfilled ring slots are zero.
func positiveMean(values []int) int {
	var sum, n int
	for _, v := range values {
		if v > 0 {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / n
}

package pulse

import (
	"errors"
	"math"
	"strings"
)

// ErrInsufficientSamples is returned when a signal is too short or too flat
// to derive a ratio from.
var ErrInsufficientSamples = errors.New("insufficient samples")

// OxygenSaturation estimates SpO2 in percent from per-frame red and blue
// channel averages using the ratio-of-ratios method:
//
//	R = (σred / μred) / (σblue / μblue)
//	SpO2 = 100 - 5R
//
// Means and variances are truncated to integers along the way, and the last
// sample is left out of the deviation sum, matching the calibration the
// constants were fitted with.
func OxygenSaturation(reds, blues []int) (int, error) {
	n := len(reds)
	if n < 2 || len(blues) != n {
		return 0, ErrInsufficientSamples
	}

	var sumR, sumB int
	for i := 0; i < n; i++ {
		sumR += reds[i]
		sumB += blues[i]
	}
	meanR := float64(sumR / n)
	meanB := float64(sumB / n)

	var devR, devB int
	for i := 0; i < n-1; i++ {
		dr := float64(reds[i]) - meanR
		db := float64(blues[i]) - meanB
		devR = int(math.Round(float64(devR) + dr*dr))
		devB = int(math.Round(float64(devB) + db*db))
	}

	varR := math.Sqrt(float64(devR / (n - 1)))
	varB := math.Sqrt(float64(devB / (n - 1)))
	if meanR == 0 || meanB == 0 || varB == 0 {
		return 0, ErrInsufficientSamples
	}

	ratio := varR / meanR / (varB / meanB)
	return int(100 - float64(5*ratio)), nil
}

// Position is the subject's posture during measurement.
type Position string

const (
	Sitting Position = "sitting"
	Supine  Position = "supine"
)

// Profile describes the subject for the blood pressure estimate.
type Profile struct {
	Female   bool     `json:"female"`
	WeightKg float64  `json:"weight_kg"`
	HeightCm float64  `json:"height_cm"`
	Age      int      `json:"age"`
	Position Position `json:"position"`

	// Resistance is the assumed peripheral vascular resistance in mmHg·min/L.
	Resistance float64 `json:"resistance"`
}

// DefaultProfile returns the fallback subject used when none is configured.
func DefaultProfile() Profile {
	return Profile{
		WeightKg:   130,
		HeightCm:   190,
		Age:        25,
		Position:   Sitting,
		Resistance: 18.5,
	}
}

// BloodPressure estimates systolic and diastolic pressure in mmHg from the
// heart rate and subject profile.
//
// Stroke volume comes from ejection time and body surface area; pulse
// pressure is stroke volume over an arterial compliance term, and mean
// pressure is cardiac output times resistance.
func BloodPressure(heartRate int, p Profile) (systolic, diastolic int) {
	hr := float64(heartRate)
	weight := p.WeightKg * 2.20462
	height := p.HeightCm * 0.393701
	age := float64(p.Age)

	output := 5.0
	if p.Female {
		output = 4.5
	}

	ejection := 386 - 1.64*hr
	if strings.EqualFold(string(p.Position), string(Supine)) {
		ejection = 364.5 - 1.23*hr
	}

	surface := 0.007184 * math.Pow(weight, 0.425) * math.Pow(height, 0.725)
	stroke := -6.6 + 0.25*(ejection-35) - 0.62*hr + 40.4*surface - 0.51*age
	pulse := math.Abs(stroke / (0.013*weight - 0.007*age - 0.004*hr + 1.307))
	mean := output * p.Resistance

	return int(mean + 4.5/3*pulse), int(mean - pulse/3)
}

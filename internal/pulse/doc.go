// Package pulse estimates heart rate, oxygen saturation and blood pressure
// from the channel averages of fingertip camera frames.
//
// The signal is photoplethysmographic: with the torch on and a finger over
// the lens, blood volume changes on each heartbeat modulate how much red
// light reaches the sensor. Monitor counts those modulations over fixed
// windows; OxygenSaturation and BloodPressure derive the secondary figures.
//
// These are rough estimates tuned on a single phone model, not medical
// measurements.
package pulse

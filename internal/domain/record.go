package domain

import "time"

// DateLayout is the ISO-8601 calendar date format used in the source CSV.
const DateLayout = time.DateOnly

// WeatherRecord is one day's observation.
type WeatherRecord struct {
	Date          time.Time `json:"date"`
	Temperature   float64   `json:"temperature"`   // °C
	Humidity      float64   `json:"humidity"`      // percent
	Precipitation float64   `json:"precipitation"` // mm
}

// Rainy reports whether any precipitation was measured.
func (r WeatherRecord) Rainy() bool {
	return r.Precipitation > 0
}

// Dataset is the ordered sequence of records produced by one load.
// Order matches the source file; duplicates are kept.
type Dataset []WeatherRecord

package domain

import (
	"math"
	"time"
)

// AverageTemperature returns the mean temperature of all records in month.
// The month is not range checked; a month with no records returns NaN.
func (d Dataset) AverageTemperature(month time.Month) float64 {
	var (
		sum   float64
		count int
	)
	for _, r := range d {
		if r.Date.Month() != month {
			continue
		}
		sum += r.Temperature
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}

// DaysAbove returns the records whose temperature is strictly greater than
// threshold, in their original order. The result is never nil.
func (d Dataset) DaysAbove(threshold float64) Dataset {
	out := make(Dataset, 0)
	for _, r := range d {
		if r.Temperature > threshold {
			out = append(out, r)
		}
	}
	return out
}

// RainyDays counts records with precipitation above zero.
func (d Dataset) RainyDays() int {
	n := 0
	for _, r := range d {
		if r.Rainy() {
			n++
		}
	}
	return n
}

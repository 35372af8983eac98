package pipeline

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/couchcryptid/weather-data-analyzer/internal/domain"
)

// Summary holds the statistics reported for one dataset.
type Summary struct {
	Month              time.Month
	Threshold          float64
	Records            int
	AverageTemperature float64 // NaN when Month has no records
	HotDays            domain.Dataset
	RainyDays          int
	Categories         map[domain.Category]int
}

// Summarize computes every reported statistic over ds.
func Summarize(ds domain.Dataset, opts Options) Summary {
	return Summary{
		Month:              opts.Month,
		Threshold:          opts.Threshold,
		Records:            len(ds),
		AverageTemperature: ds.AverageTemperature(opts.Month),
		HotDays:            ds.DaysAbove(opts.Threshold),
		RainyDays:          ds.RainyDays(),
		Categories:         ds.Categories(),
	}
}

const summaryFormat = `Weather Data Summary:
---------------------
Average Temperature for %s: %s°C
Number of days above %s°C: %d
Number of rainy days: %d
`

// Render writes the fixed-format text summary followed by a blank line.
func (s Summary) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w, summaryFormat+"\n",
		s.Month,
		formatCelsius(s.AverageTemperature),
		strconv.FormatFloat(s.Threshold, 'f', -1, 64),
		len(s.HotDays),
		s.RainyDays,
	)
	return err
}

// formatCelsius renders v with two decimals, rounding half away from zero on
// the shortest decimal form of v (33.125 -> "33.13").
func formatCelsius(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

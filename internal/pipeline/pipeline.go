package pipeline

import (
	"log/slog"
	"time"

	"github.com/couchcryptid/weather-data-analyzer/internal/domain"
	"github.com/couchcryptid/weather-data-analyzer/internal/observability"
)

// DatasetLoader reads a named source into a dataset.
type DatasetLoader interface {
	Load(name string) (domain.Dataset, error)
}

// Options selects which month and threshold the summary reports on.
type Options struct {
	Month     time.Month
	Threshold float64
}

// Pipeline runs one load-and-summarize pass.
type Pipeline struct {
	loader  DatasetLoader
	logger  *slog.Logger
	metrics *observability.Metrics
	opts    Options
}

// New creates a Pipeline with the given loader and observability.
func New(l DatasetLoader, logger *slog.Logger, metrics *observability.Metrics, opts Options) *Pipeline {
	return &Pipeline{
		loader:  l,
		logger:  logger,
		metrics: metrics,
		opts:    opts,
	}
}

// Run loads the named source and summarizes it. Only malformed input is an
// error; a missing source summarizes as an empty dataset.
func (p *Pipeline) Run(name string) (Summary, error) {
	p.logger.Info("analysis started",
		"source", name,
		"month", p.opts.Month.String(),
		"threshold", p.opts.Threshold,
	)

	ds, err := p.loader.Load(name)
	if err != nil {
		return Summary{}, err
	}

	s := Summarize(ds, p.opts)
	p.logHotDays(s.HotDays)
	p.record(s)

	p.logger.Info("analysis complete",
		"records", s.Records,
		"days_above", len(s.HotDays),
		"rainy_days", s.RainyDays,
	)
	return s, nil
}

func (p *Pipeline) logHotDays(days domain.Dataset) {
	for _, r := range days {
		p.logger.Debug("day above threshold",
			"record", domain.Describe(r),
			"temperature", r.Temperature,
			"category", domain.WeatherCategory(r.Temperature),
		)
	}
}

// record publishes the summary as gauges.
func (p *Pipeline) record(s Summary) {
	p.metrics.AverageTemperature.WithLabelValues(s.Month.String()).Set(s.AverageTemperature)
	p.metrics.DaysAbove.Set(float64(len(s.HotDays)))
	p.metrics.RainyDays.Set(float64(s.RainyDays))
	for _, c := range []domain.Category{domain.CategoryHot, domain.CategoryWarm, domain.CategoryCold} {
		p.metrics.CategoryDays.WithLabelValues(string(c)).Set(float64(s.Categories[c]))
	}
}

package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for one analyzer run.
type Metrics struct {
	RecordsLoaded prometheus.Counter
	RowErrors     prometheus.Counter
	LoadFailures  prometheus.Counter
	LoadDuration  prometheus.Histogram

	// Summary results of the last run.
	AverageTemperature *prometheus.GaugeVec // labels: month
	DaysAbove          prometheus.Gauge
	RainyDays          prometheus.Gauge
	CategoryDays       *prometheus.GaugeVec // labels: category={Hot,Warm,Cold}
}

// NewMetrics creates all analyzer metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_analyzer",
			Name:      "records_loaded_total",
			Help:      "Total weather records parsed from the source CSV.",
		}),
		RowErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_analyzer",
			Name:      "row_errors_total",
			Help:      "Total malformed CSV rows encountered.",
		}),
		LoadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_analyzer",
			Name:      "load_failures_total",
			Help:      "Loads that fell back to an empty dataset because the source could not be read.",
		}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_analyzer",
			Name:      "load_duration_seconds",
			Help:      "Duration of reading and parsing the source CSV.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		AverageTemperature: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "weather_analyzer",
			Name:      "average_temperature_celsius",
			Help:      "Mean temperature for the summarized month. NaN when the month has no records.",
		}, []string{"month"}),
		DaysAbove: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_analyzer",
			Name:      "days_above_threshold",
			Help:      "Days with temperature strictly above the hot threshold.",
		}),
		RainyDays: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_analyzer",
			Name:      "rainy_days",
			Help:      "Days with precipitation above zero.",
		}),
		CategoryDays: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "weather_analyzer",
			Name:      "category_days",
			Help:      "Days per temperature band.",
		}, []string{"category"}),
	}

	reg.MustRegister(
		m.RecordsLoaded,
		m.RowErrors,
		m.LoadFailures,
		m.LoadDuration,
		m.AverageTemperature,
		m.DaysAbove,
		m.RainyDays,
		m.CategoryDays,
	)

	return m
}

// NewMetricsForTesting creates Metrics registered with a throwaway registry.
func NewMetricsForTesting() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}

// WriteTextfile writes every metric gathered from g to path in the Prometheus
// text exposition format, for pickup by a node_exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}

package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/couchcryptid/weather-data-analyzer/internal/domain"
	"github.com/couchcryptid/weather-data-analyzer/internal/observability"
)

// Loader reads named CSV files from a file system into datasets.
type Loader struct {
	fsys    fs.FS
	logger  *slog.Logger
	metrics *observability.Metrics
	strict  bool
}

// NewLoader creates a Loader over fsys. In strict mode the first malformed row
// fails the whole load; otherwise malformed rows are logged and skipped.
func NewLoader(fsys fs.FS, logger *slog.Logger, metrics *observability.Metrics, strict bool) *Loader {
	return &Loader{
		fsys:    fsys,
		logger:  logger,
		metrics: metrics,
		strict:  strict,
	}
}

// Load reads the named file. A missing or unreadable file is logged and
// yields an empty dataset with a nil error. A malformed row is returned as an
// error wrapping *RowError when the loader is strict.
func (l *Loader) Load(name string) (domain.Dataset, error) {
	start := clock.Now()
	defer func() {
		l.metrics.LoadDuration.Observe(clock.Since(start).Seconds())
	}()

	f, err := l.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Error("data file not found", "source", name)
		} else {
			l.logger.Error("error opening data file", "source", name, "error", err)
		}
		l.metrics.LoadFailures.Inc()
		return domain.Dataset{}, nil
	}
	defer f.Close()

	ds, err := decode(f, l.rowErrorHandler(name))
	if err != nil {
		var rowErr *RowError
		if errors.As(err, &rowErr) {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		l.logger.Error("error reading data file", "source", name, "error", err)
		l.metrics.LoadFailures.Inc()
		return domain.Dataset{}, nil
	}

	l.metrics.RecordsLoaded.Add(float64(len(ds)))
	l.logger.Info("dataset loaded", "source", name, "records", len(ds))
	return ds, nil
}

func (l *Loader) rowErrorHandler(name string) rowErrorFunc {
	return func(re *RowError) error {
		l.metrics.RowErrors.Inc()
		if l.strict {
			return re
		}
		l.logger.Warn("malformed row, skipping",
			"source", name,
			"line", re.Line,
			"error", re.Err,
		)
		return nil
	}
}

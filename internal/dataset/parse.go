package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/weather-data-analyzer/internal/domain"
)

// fieldCount is the number of columns in every data row:
// date, temperature, humidity, precipitation.
const fieldCount = 4

// maxLineSize bounds a single CSV line.
const maxLineSize = 1 << 20

var (
	// ErrFieldCount reports a row that does not split into exactly four fields.
	ErrFieldCount = errors.New("wrong number of fields")

	// ErrLineTooLong reports a row longer than maxLineSize. Decoding cannot
	// resume after it, so it aborts the load even in lenient mode.
	ErrLineTooLong = errors.New("line too long")
)

// RowError describes a malformed data row. Line is 1-based and counts the header.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// rowErrorFunc decides what happens to a malformed row. Returning nil skips the
// row; returning an error aborts decoding with that error.
type rowErrorFunc func(*RowError) error

// Read decodes a weather CSV stream. The first line is a header and is
// discarded without inspection. Blank lines are skipped. The first malformed
// row aborts decoding with a *RowError; read failures are returned as-is.
func Read(r io.Reader) (domain.Dataset, error) {
	return decode(r, func(re *RowError) error { return re })
}

func decode(r io.Reader, onRowError rowErrorFunc) (domain.Dataset, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	ds := make(domain.Dataset, 0)
	line := 0
	for sc.Scan() {
		line++
		if line == 1 {
			continue // header
		}

		text := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		rec, err := parseLine(text)
		if err != nil {
			if abort := onRowError(&RowError{Line: line, Err: err}); abort != nil {
				return nil, abort
			}
			continue
		}
		ds = append(ds, rec)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &RowError{Line: line + 1, Err: ErrLineTooLong}
		}
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return ds, nil
}

// parseLine splits a row on literal commas and converts each field.
// Quoting is not supported.
func parseLine(text string) (domain.WeatherRecord, error) {
	fields := strings.Split(text, ",")
	if len(fields) != fieldCount {
		return domain.WeatherRecord{}, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), fieldCount)
	}

	date, err := time.Parse(domain.DateLayout, fields[0])
	if err != nil {
		return domain.WeatherRecord{}, fmt.Errorf("parse date %q: %w", fields[0], err)
	}
	temp, err := parseFloat("temperature", fields[1])
	if err != nil {
		return domain.WeatherRecord{}, err
	}
	humidity, err := parseFloat("humidity", fields[2])
	if err != nil {
		return domain.WeatherRecord{}, err
	}
	precip, err := parseFloat("precipitation", fields[3])
	if err != nil {
		return domain.WeatherRecord{}, err
	}

	return domain.WeatherRecord{
		Date:          date,
		Temperature:   temp,
		Humidity:      humidity,
		Precipitation: precip,
	}, nil
}

// parseFloat parses a decimal field, ignoring surrounding whitespace.
func parseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", field, err)
	}
	return v, nil
}

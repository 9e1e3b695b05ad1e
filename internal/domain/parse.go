package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Sentinel parse failure kinds, matched through wrapping with errors.Is.
var (
	ErrMalformedDate   = errors.New("malformed date")
	ErrMalformedNumber = errors.New("malformed number")
	ErrMissingField    = errors.New("missing field")
)

// dateLayout is the only accepted date format (ISO-8601 calendar date).
const dateLayout = "2006-01-02"

// fieldNames indexes the CSV columns for error messages.
var fieldNames = [...]string{"date", "temperature", "humidity", "precipitation", "windSpeed"}

// ParseError describes a single malformed input line. Line is 1-based and
// counts the header, so the first data line is line 2.
type ParseError struct {
	Line  int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse line %d: field %q: %v", e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseLine converts one comma-separated data line into an Observation.
// Fields split on commas with no quote handling. windSpeed may be absent
// and defaults to 0. The returned error is a *ParseError wrapping one of
// the sentinel kinds; lineNo is used only for error reporting.
func ParseLine(line string, lineNo int) (Observation, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 4 {
		missing := fieldNames[len(parts)]
		return Observation{}, &ParseError{Line: lineNo, Field: missing, Err: ErrMissingField}
	}

	date, err := time.Parse(dateLayout, parts[0])
	if err != nil {
		return Observation{}, &ParseError{
			Line:  lineNo,
			Field: "date",
			Err:   fmt.Errorf("%w: %q", ErrMalformedDate, parts[0]),
		}
	}

	numeric := make([]float64, 3)
	for i, raw := range parts[1:4] {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Observation{}, &ParseError{
				Line:  lineNo,
				Field: fieldNames[i+1],
				Err:   fmt.Errorf("%w: %q", ErrMalformedNumber, raw),
			}
		}
		numeric[i] = v
	}

	windSpeed := 0.0
	if len(parts) > 4 {
		v, err := strconv.ParseFloat(parts[4], 64)
		if err != nil {
			return Observation{}, &ParseError{
				Line:  lineNo,
				Field: "windSpeed",
				Err:   fmt.Errorf("%w: %q", ErrMalformedNumber, parts[4]),
			}
		}
		windSpeed = v
	}

	return Observation{
		Date:          date,
		Temperature:   numeric[0],
		Humidity:      numeric[1],
		Precipitation: numeric[2],
		WindSpeed:     windSpeed,
	}, nil
}

// ParseLines converts a full file's lines into ordered Observations.
// The first line is always treated as a header and skipped, whatever its
// content. Any malformed data line aborts the whole parse; there is no
// per-record skip or coercion.
func ParseLines(lines []string) ([]Observation, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	observations := make([]Observation, 0, len(lines)-1)
	for i, line := range lines[1:] {
		obs, err := ParseLine(line, i+2)
		if err != nil {
			return nil, err
		}
		observations = append(observations, obs)
	}
	return observations, nil
}

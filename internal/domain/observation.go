package domain

import "time"

// Category is the temperature classification of a single day.
type Category string

const (
	Hot  Category = "Hot"
	Warm Category = "Warm"
	Mild Category = "Mild"
	Cool Category = "Cool"
	Cold Category = "Cold"
)

// Observation is one parsed daily weather record. Values are never mutated
// after parsing.
type Observation struct {
	Date          time.Time // calendar date, midnight UTC
	Temperature   float64   // °C
	Humidity      float64   // percent
	Precipitation float64   // mm
	WindSpeed     float64   // km/h
}

// Category buckets the temperature into one of the five labels. Total over
// all float64 inputs; readings at or above 60°C fall back to Cold, matching
// the decade-bucket scheme described in the package documentation.
func (o Observation) Category() Category {
	switch t := o.Temperature; {
	case t < 0:
		return Cold
	case t < 10:
		return Cool
	case t < 20:
		return Mild
	case t < 30:
		return Warm
	case t < 60:
		return Hot
	default:
		return Cold
	}
}

// IsRainy reports whether any precipitation fell, however little.
func (o Observation) IsRainy() bool {
	return o.Precipitation > 0
}

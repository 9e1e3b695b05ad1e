package domain

import "time"

// Filter returns the observations matching pred, preserving order.
// Compose with any aggregator: AverageTemperature(Filter(obs, pred)).
func Filter(observations []Observation, pred func(Observation) bool) []Observation {
	var matched []Observation
	for _, o := range observations {
		if pred(o) {
			matched = append(matched, o)
		}
	}
	return matched
}

// WarmerThan is a Filter predicate selecting days with temperature strictly
// above the threshold.
func WarmerThan(threshold float64) func(Observation) bool {
	return func(o Observation) bool { return o.Temperature > threshold }
}

// AverageTemperature returns the arithmetic mean temperature, or 0 for an
// empty input. Zero on empty is a policy choice, not an error.
func AverageTemperature(observations []Observation) float64 {
	if len(observations) == 0 {
		return 0
	}
	var sum float64
	for _, o := range observations {
		sum += o.Temperature
	}
	return sum / float64(len(observations))
}

// CountRainyDays returns the number of observations with any precipitation.
func CountRainyDays(observations []Observation) int {
	count := 0
	for _, o := range observations {
		if o.IsRainy() {
			count++
		}
	}
	return count
}

// CountByCategory returns a histogram of temperature categories. Only
// categories that occur appear as keys.
func CountByCategory(observations []Observation) map[Category]int {
	counts := make(map[Category]int)
	for _, o := range observations {
		counts[o.Category()]++
	}
	return counts
}

// GroupByMonth partitions observations by month-of-year, preserving the
// original relative order within each group. Year is deliberately ignored:
// January 2022 and January 2023 land in the same bucket.
func GroupByMonth(observations []Observation) map[time.Month][]Observation {
	groups := make(map[time.Month][]Observation)
	for _, o := range observations {
		m := o.Date.Month()
		groups[m] = append(groups[m], o)
	}
	return groups
}

// DominantCategory returns the most frequent category among the given
// observations. Ties resolve to whichever category reached the winning count
// first in observation order, which keeps the result deterministic for a
// given input. Returns "Unknown" for an empty input.
func DominantCategory(observations []Observation) string {
	if len(observations) == 0 {
		return "Unknown"
	}

	counts := make(map[Category]int)
	var dominant Category
	best := 0
	for _, o := range observations {
		c := o.Category()
		counts[c]++
		if counts[c] > best {
			best = counts[c]
			dominant = c
		}
	}
	return string(dominant)
}

// DateRange returns the minimum and maximum dates present. ok is false for
// an empty input, in which case both times are zero.
func DateRange(observations []Observation) (min, max time.Time, ok bool) {
	if len(observations) == 0 {
		return time.Time{}, time.Time{}, false
	}
	min, max = observations[0].Date, observations[0].Date
	for _, o := range observations[1:] {
		if o.Date.Before(min) {
			min = o.Date
		}
		if o.Date.After(max) {
			max = o.Date
		}
	}
	return min, max, true
}

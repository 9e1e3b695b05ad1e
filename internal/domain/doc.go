// Package domain models daily weather observations and the pure analysis
// functions computed over them.
//
// # Data Source
//
// Observations arrive as comma-separated text, one day per line:
//
//	date,temperature,humidity,precipitation,windSpeed
//	2023-01-01,5.5,80.0,2.1,12.3
//
// The first line of a file is always a header and is skipped regardless of
// content. Fields are split on commas with no quoting or escaping. The date
// must be an ISO-8601 calendar date (YYYY-MM-DD); the numeric fields are
// base-10 decimals. windSpeed may be omitted per line and defaults to 0.
//
// # Classification
//
// Each observation derives a temperature category from decade buckets of the
// floored temperature:
//
//	< 0°C      Cold
//	[0, 10)    Cool
//	[10, 20)   Mild
//	[20, 30)   Warm
//	[30, 60)   Hot
//	>= 60      Cold (out-of-range readings fall through to the default bucket)
//
// A day is rainy when precipitation is strictly greater than zero; a trace
// amount of 0.01mm still counts.
//
// # Aggregation
//
// Aggregators are pure functions over an ordered slice of observations.
// Filtering composes with aggregation by ordinary function composition:
// aggregate(Filter(obs, pred)) rather than stateful accumulators. Grouping
// is by month-of-year only; observations from different years share a bucket.
package domain

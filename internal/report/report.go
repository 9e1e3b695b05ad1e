// Package report composes the human-readable analysis text from aggregated
// weather observations.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/weather-report/internal/domain"
)

const dateLayout = "2006-01-02"

// categoryOrder fixes the rendering order of the histogram section, warmest
// first. Absent categories are skipped.
var categoryOrder = [...]domain.Category{
	domain.Hot, domain.Warm, domain.Mild, domain.Cool, domain.Cold,
}

// Composer renders the multi-section analysis report.
type Composer struct {
	// Threshold is the cutoff for the hot-days section; days strictly
	// warmer are listed individually.
	Threshold float64
}

// WriteSummary writes the header, overall averages, rainy-day count,
// category histogram, monthly averages, and the hot-days section to w.
func (c Composer) WriteSummary(w io.Writer, observations []domain.Observation) error {
	var b strings.Builder

	b.WriteString("Weather Data Analysis Summary\n")
	b.WriteString("----------------------------\n")
	fmt.Fprintf(&b, "Generated: %s\n", clock.Now().UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "Total records: %d\n", len(observations))
	if min, max, ok := domain.DateRange(observations); ok {
		fmt.Fprintf(&b, "Date range: %s to %s\n", min.Format(dateLayout), max.Format(dateLayout))
	} else {
		b.WriteString("Date range: none\n")
	}
	b.WriteString("\nDetailed Analysis:\n\n")

	fmt.Fprintf(&b, "Average Temperature: %.2f°C\n", domain.AverageTemperature(observations))
	fmt.Fprintf(&b, "Rainy Days: %d\n", domain.CountRainyDays(observations))

	b.WriteString("\nTemperature Categories:\n")
	counts := domain.CountByCategory(observations)
	for _, cat := range categoryOrder {
		if n, ok := counts[cat]; ok {
			fmt.Fprintf(&b, " - %s: %d day(s)\n", cat, n)
		}
	}

	b.WriteString("\nMonthly Average Temperatures:\n")
	byMonth := domain.GroupByMonth(observations)
	for month := time.January; month <= time.December; month++ {
		monthObs, ok := byMonth[month]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, " - %s: %.1f°C\n", month, domain.AverageTemperature(monthObs))
	}

	hotDays := domain.Filter(observations, domain.WarmerThan(c.Threshold))
	fmt.Fprintf(&b, "\nDays with temperature above %.1f°C: %d\n", c.Threshold, len(hotDays))
	for _, o := range hotDays {
		fmt.Fprintf(&b, " - %s: %s°C\n", o.Date.Format(dateLayout), formatTemp(o.Temperature))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// MonthlyReport composes the per-month narrative section as a string.
// Months render in calendar order; each month shows its average temperature,
// rainy-day count, and dominant category.
func (c Composer) MonthlyReport(observations []domain.Observation) string {
	var b strings.Builder

	b.WriteString("Monthly Weather Report\n")
	b.WriteString("---------------------\n")

	byMonth := domain.GroupByMonth(observations)
	for month := time.January; month <= time.December; month++ {
		monthObs, ok := byMonth[month]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", month)
		fmt.Fprintf(&b, "  Average Temperature: %.1f°C\n", domain.AverageTemperature(monthObs))
		fmt.Fprintf(&b, "  Rainy Days: %d\n", domain.CountRainyDays(monthObs))
		fmt.Fprintf(&b, "  Dominant Weather: %s\n", domain.DominantCategory(monthObs))
	}

	return b.String()
}

// formatTemp renders a temperature with its exact decimal representation,
// so 26.5 prints as "26.5" rather than "26.50".
func formatTemp(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64)
}

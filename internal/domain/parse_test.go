package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLine = "2023-01-01,5.5,80.0,2.1,12.3"

func TestParseLine(t *testing.T) {
	t.Run("full line", func(t *testing.T) {
		obs, err := ParseLine(sampleLine, 2)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), obs.Date)
		assert.Equal(t, 5.5, obs.Temperature)
		assert.Equal(t, 80.0, obs.Humidity)
		assert.Equal(t, 2.1, obs.Precipitation)
		assert.Equal(t, 12.3, obs.WindSpeed)
	})

	t.Run("missing windSpeed defaults to zero", func(t *testing.T) {
		obs, err := ParseLine("2023-01-02,4.8,85.0,0.0", 3)

		require.NoError(t, err)
		assert.Equal(t, 0.0, obs.WindSpeed)
		assert.Equal(t, 4.8, obs.Temperature)
	})

	t.Run("negative temperature", func(t *testing.T) {
		obs, err := ParseLine("2023-01-05,-3.4,90.0,0.0,5.0", 2)

		require.NoError(t, err)
		assert.Equal(t, -3.4, obs.Temperature)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := ParseLine("not-a-date,5,5,5", 2)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedDate)

		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 2, perr.Line)
		assert.Equal(t, "date", perr.Field)
	})

	t.Run("non-ISO date format rejected", func(t *testing.T) {
		_, err := ParseLine("01/15/2023,5.5,80.0,2.1", 2)

		assert.ErrorIs(t, err, ErrMalformedDate)
	})

	t.Run("malformed temperature", func(t *testing.T) {
		_, err := ParseLine("2023-01-01,chilly,80.0,2.1", 4)

		require.ErrorIs(t, err, ErrMalformedNumber)

		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 4, perr.Line)
		assert.Equal(t, "temperature", perr.Field)
	})

	t.Run("malformed windSpeed", func(t *testing.T) {
		_, err := ParseLine("2023-01-01,5.5,80.0,2.1,breezy", 2)

		require.ErrorIs(t, err, ErrMalformedNumber)

		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "windSpeed", perr.Field)
	})

	t.Run("too few fields", func(t *testing.T) {
		_, err := ParseLine("2023-01-01,5.5,80.0", 2)

		require.ErrorIs(t, err, ErrMissingField)

		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "precipitation", perr.Field)
	})

	t.Run("empty line", func(t *testing.T) {
		_, err := ParseLine("", 5)

		assert.ErrorIs(t, err, ErrMissingField)
	})
}

func TestParseLines(t *testing.T) {
	t.Run("skips header unconditionally", func(t *testing.T) {
		// A first line that looks like valid data is still dropped.
		lines := []string{
			"2023-01-01,1.0,50.0,0.0,0.0",
			sampleLine,
		}

		obs, err := ParseLines(lines)

		require.NoError(t, err)
		require.Len(t, obs, 1)
		assert.Equal(t, 5.5, obs[0].Temperature)
	})

	t.Run("preserves file order", func(t *testing.T) {
		lines := []string{
			"date,temperature,humidity,precipitation,windSpeed",
			"2023-02-01,6.7,75.0,0.0,10.5",
			sampleLine,
		}

		obs, err := ParseLines(lines)

		require.NoError(t, err)
		require.Len(t, obs, 2)
		assert.Equal(t, 6.7, obs[0].Temperature)
		assert.Equal(t, 5.5, obs[1].Temperature)
	})

	t.Run("empty input", func(t *testing.T) {
		obs, err := ParseLines(nil)

		require.NoError(t, err)
		assert.Empty(t, obs)
	})

	t.Run("header only", func(t *testing.T) {
		obs, err := ParseLines([]string{"date,temperature,humidity,precipitation,windSpeed"})

		require.NoError(t, err)
		assert.Empty(t, obs)
	})

	t.Run("malformed line aborts the whole parse", func(t *testing.T) {
		lines := []string{
			"date,temperature,humidity,precipitation,windSpeed",
			sampleLine,
			"not-a-date,5,5,5",
			"2023-01-03,3.2,90.0,5.6,15.2",
		}

		obs, err := ParseLines(lines)

		require.ErrorIs(t, err, ErrMalformedDate)
		assert.Nil(t, obs)

		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 3, perr.Line)
	})
}

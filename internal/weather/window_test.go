package weather

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDay(date string, n int) DailyForecast {
	hours := make([]HourlyRecord, n)
	for h := range hours {
		hours[h] = HourlyRecord{
			Time:      fmt.Sprintf("%s %02d:00", date, h),
			TempC:     float64(h),
			TempF:     float64(h)*9/5 + 32,
			Condition: "Sunny",
		}
	}
	return DailyForecast{Date: date, Hours: hours}
}

func testBundle() ForecastBundle {
	return ForecastBundle{testDay("2024-10-21", 24), testDay("2024-10-22", 24)}
}

func TestNextHours(t *testing.T) {
	bundle := testBundle()

	t.Run("Midnight uses only today", func(t *testing.T) {
		got := NextHours(bundle, "2024-10-21 0:15")
		require.Len(t, got, 24)
		assert.Equal(t, bundle[0].Hours, got)
	})

	t.Run("Last hour spills into tomorrow", func(t *testing.T) {
		got := NextHours(bundle, "2024-10-21 23:59")
		require.Len(t, got, 24)
		assert.Equal(t, bundle[0].Hours[23], got[0])
		assert.Equal(t, bundle[1].Hours[:23], got[1:])
	})

	t.Run("Noon without tomorrow is not padded", func(t *testing.T) {
		got := NextHours(bundle[:1], "2024-10-21 12:00")
		require.Len(t, got, 12)
		assert.Equal(t, bundle[0].Hours[12:], got)
	})

	t.Run("Single digit hour", func(t *testing.T) {
		got := NextHours(bundle, "2024-10-21 9:05")
		require.Len(t, got, 24)
		assert.Equal(t, "2024-10-21 09:00", got[0].Time)
		assert.Equal(t, "2024-10-22 08:00", got[23].Time)
	})

	t.Run("Short tomorrow truncates", func(t *testing.T) {
		short := ForecastBundle{testDay("2024-10-21", 24), testDay("2024-10-22", 3)}
		got := NextHours(short, "2024-10-21 18:00")
		assert.Len(t, got, 9)
	})

	t.Run("Idempotent", func(t *testing.T) {
		a := NextHours(bundle, "2024-10-21 7:00")
		b := NextHours(bundle, "2024-10-21 7:00")
		assert.Equal(t, a, b)
	})
}

func TestNextHoursDegradedInput(t *testing.T) {
	bundle := testBundle()

	for name, tc := range map[string]struct {
		bundle ForecastBundle
		now    string
	}{
		"empty now":       {bundle, ""},
		"malformed now":   {bundle, "yesterday-ish"},
		"impossible hour": {bundle, "2024-10-21 27:00"},
		"nil bundle":      {nil, "2024-10-21 10:00"},
		"empty bundle":    {ForecastBundle{}, "2024-10-21 10:00"},
		"nil today hours": {ForecastBundle{{Date: "2024-10-21"}, testDay("2024-10-22", 24)}, "2024-10-21 05:00"},
		"empty today hours": {
			ForecastBundle{{Date: "2024-10-21", Hours: []HourlyRecord{}}, testDay("2024-10-22", 24)},
			"2024-10-21 05:00",
		},
	} {
		t.Run(name, func(t *testing.T) {
			got := NextHours(tc.bundle, tc.now)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestWindow(t *testing.T) {
	bundle := testBundle()

	assert.Empty(t, Window(&bundle[0], &bundle[1], -1))
	assert.Empty(t, Window(&bundle[0], &bundle[1], 24))
	assert.Empty(t, Window(nil, &bundle[1], 5))
	assert.Empty(t, Window(&DailyForecast{}, &bundle[1], 5))

	t.Run("Today missing hours", func(t *testing.T) {
		today := DailyForecast{Hours: bundle[0].Hours[:10]}
		got := Window(&today, &bundle[1], 12)
		assert.Equal(t, bundle[1].Hours, got)
	})

	t.Run("Does not alias input", func(t *testing.T) {
		got := Window(&bundle[0], &bundle[1], 20)
		got[0].Condition = "changed"
		assert.Equal(t, "Sunny", bundle[0].Hours[20].Condition)
		assert.Equal(t, "Sunny", bundle[1].Hours[4].Condition)
	})
}

func TestLocalHour(t *testing.T) {
	for in, want := range map[string]int{
		"2024-10-21 0:00":     0,
		"2024-10-21 09:30":    9,
		"2024-10-21T17:45:00": 17,
		"2024-10-21 23:10:59": 23,
		"2024-10-21":          0,
	} {
		h, ok := LocalHour(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, h, in)
	}

	_, ok := LocalHour("21/10/2024 10:00")
	assert.False(t, ok)
}

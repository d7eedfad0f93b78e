package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeSolarTimesNewYorkSolstice(t *testing.T) {
	times := ComputeSolarTimes(40.7128, -74.0060, utcDate(2024, time.June, 21))

	require.False(t, times.Polar())
	// Almanac: sunrise 09:24 UTC, sunset 00:31 UTC the next day.
	require.InDelta(t, 564, *times.SunriseMinutes, 10)
	require.InDelta(t, 1471, *times.SunsetMinutes, 10)
	require.InDelta(t, 1017, times.SolarNoonMinutes, 10)
}

func TestComputeSolarTimesLondonEquinox(t *testing.T) {
	times := ComputeSolarTimes(51.5074, -0.1278, utcDate(2024, time.March, 20))

	require.False(t, times.Polar())
	require.InDelta(t, 363, *times.SunriseMinutes, 10)
	require.InDelta(t, 1095, *times.SunsetMinutes, 10)
}

func TestComputeSolarTimesSouthernWinter(t *testing.T) {
	// Sydney on the June solstice: sunrise falls on the previous UTC day
	// and must come back as negative minutes, not wrapped.
	times := ComputeSolarTimes(-33.8688, 151.2093, utcDate(2024, time.June, 21))

	require.False(t, times.Polar())
	require.Less(t, *times.SunriseMinutes, 0.0)
	require.InDelta(t, -179, *times.SunriseMinutes, 10)
	require.InDelta(t, 414, *times.SunsetMinutes, 10)
}

func TestComputeSolarTimesPolar(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
	}{
		{"polar day", utcDate(2024, time.June, 21)},
		{"polar night", utcDate(2024, time.December, 21)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			times := ComputeSolarTimes(78.2232, 15.6267, tc.date)
			require.True(t, times.Polar())
			require.Nil(t, times.SunriseMinutes)
			require.Nil(t, times.SunsetMinutes)
			require.NotZero(t, times.SolarNoonMinutes)
		})
	}
}

func TestComputeSolarTimesOrdering(t *testing.T) {
	locations := []struct {
		name     string
		lat, lon float64
	}{
		{"New York", 40.7128, -74.0060},
		{"London", 51.5074, -0.1278},
		{"Sydney", -33.8688, 151.2093},
		{"Quito", -0.1807, -78.4678},
		{"Cape Town", -33.9249, 18.4241},
	}
	dates := []time.Time{
		utcDate(2024, time.March, 20),
		utcDate(2024, time.June, 21),
		utcDate(2024, time.September, 22),
		utcDate(2024, time.December, 21),
	}
	for _, loc := range locations {
		for _, date := range dates {
			times := ComputeSolarTimes(loc.lat, loc.lon, date)
			require.False(t, times.Polar(), "%s %s", loc.name, date)
			require.Less(t, *times.SunriseMinutes, times.SolarNoonMinutes, "%s %s", loc.name, date)
			require.Less(t, times.SolarNoonMinutes, *times.SunsetMinutes, "%s %s", loc.name, date)
		}
	}
}

func TestComputeSolarTimesDeterministic(t *testing.T) {
	date := utcDate(2024, time.August, 15)
	first := ComputeSolarTimes(40.7128, -74.0060, date)
	second := ComputeSolarTimes(40.7128, -74.0060, date)

	require.Equal(t, *first.SunriseMinutes, *second.SunriseMinutes)
	require.Equal(t, *first.SunsetMinutes, *second.SunsetMinutes)
	require.Equal(t, first.SolarNoonMinutes, second.SolarNoonMinutes)
}

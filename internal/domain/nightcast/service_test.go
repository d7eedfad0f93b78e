package nightcast

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anglerworks/fishcast/internal/domain/astro"
	apperrors "github.com/anglerworks/fishcast/pkg/errors"
)

type stubAstro struct {
	solarFn   func(lat, lon float64, date time.Time) astro.SolarTimes
	moonFn    func(date time.Time) astro.MoonPhase
	windowsFn func(times astro.SolarTimes, date time.Time) astro.SolunarDay
}

func (s *stubAstro) SolarTimes(lat, lon float64, date time.Time) astro.SolarTimes {
	if s.solarFn != nil {
		return s.solarFn(lat, lon, date)
	}
	return astro.ComputeSolarTimes(lat, lon, date)
}

func (s *stubAstro) MoonPhase(date time.Time) astro.MoonPhase {
	if s.moonFn != nil {
		return s.moonFn(date)
	}
	return astro.ComputeMoonPhase(date)
}

func (s *stubAstro) SolunarWindows(times astro.SolarTimes, date time.Time) astro.SolunarDay {
	if s.windowsFn != nil {
		return s.windowsFn(times, date)
	}
	return astro.ComputeSolunarWindows(times, date)
}

func newServiceUnderTest(astroStub Astro) Service {
	return NewService(astroStub, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func floatPtr(v float64) *float64 { return &v }

func TestScorePrimeNightIsLegendaryBand(t *testing.T) {
	ts := time.Date(2024, time.June, 7, 3, 0, 0, 0, time.UTC)
	stub := &stubAstro{
		windowsFn: func(astro.SolarTimes, time.Time) astro.SolunarDay {
			return astro.SolunarDay{Major: []astro.SolunarWindow{
				{Kind: astro.WindowMajor, Start: ts.Add(-time.Hour), End: ts.Add(time.Hour)},
			}}
		},
	}
	svc := newServiceUnderTest(stub)

	resp, err := svc.Score(context.Background(), Request{
		Latitude:                40.7128,
		Longitude:               -74.0060,
		Timestamp:               ts,
		CloudCoverPercent:       90,
		WindSpeedKmh:            5,
		WaterTempF:              65,
		PressureTrendMb:         -3,
		MoonIlluminationPercent: floatPtr(5),
		HoursAfterSunset:        floatPtr(3),
	})
	require.NoError(t, err)
	require.False(t, resp.Degraded)
	require.GreaterOrEqual(t, resp.Score, 70)
	require.Contains(t, []string{"Legendary", "Excellent"}, resp.Rating)

	impacts := make(map[string]int, len(resp.Factors))
	for _, f := range resp.Factors {
		impacts[f.Name] = f.Impact
	}
	require.Equal(t, 15, impacts["moonIllumination"])
	require.Equal(t, 10, impacts["cloudCover"])
	require.Equal(t, 12, impacts["wind"])
	require.Equal(t, 8, impacts["waterTemp"])
	require.Equal(t, 12, impacts["pressureTrend"])
	require.Equal(t, 15, impacts["solunar"])
	require.Equal(t, 8, impacts["hoursAfterSunset"])
}

func TestScoreFactorsSumToScore(t *testing.T) {
	svc := newServiceUnderTest(&stubAstro{})

	resp, err := svc.Score(context.Background(), Request{
		Latitude:                40.7128,
		Longitude:               -74.0060,
		Timestamp:               time.Date(2024, time.June, 21, 12, 0, 0, 0, time.UTC),
		CloudCoverPercent:       20,
		WindSpeedKmh:            20,
		WaterTempF:              50,
		PressureTrendMb:         0,
		MoonIlluminationPercent: floatPtr(85),
		HoursAfterSunset:        floatPtr(5),
	})
	require.NoError(t, err)

	sum := 0
	for _, f := range resp.Factors {
		sum += f.Impact
	}
	require.GreaterOrEqual(t, baselineScore+sum, 0)
	require.LessOrEqual(t, baselineScore+sum, 100)
	require.Equal(t, baselineScore+sum, resp.Score)
}

func TestScoreClampsToRange(t *testing.T) {
	stub := &stubAstro{
		windowsFn: func(astro.SolarTimes, time.Time) astro.SolunarDay {
			return astro.SolunarDay{}
		},
	}
	svc := newServiceUnderTest(stub)

	resp, err := svc.Score(context.Background(), Request{
		Latitude:                40.7128,
		Longitude:               -74.0060,
		Timestamp:               time.Date(2024, time.June, 21, 12, 0, 0, 0, time.UTC),
		CloudCoverPercent:       0,
		WindSpeedKmh:            40,
		WaterTempF:              40,
		PressureTrendMb:         5,
		MoonIlluminationPercent: floatPtr(95),
		HoursAfterSunset:        floatPtr(8),
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, resp.Score, 0)
	require.LessOrEqual(t, resp.Score, 100)
	require.Equal(t, "Poor", resp.Rating)
}

func TestRatingBoundaries(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, "Legendary"},
		{85, "Legendary"},
		{84, "Excellent"},
		{70, "Excellent"},
		{69, "Good"},
		{55, "Good"},
		{54, "Fair"},
		{40, "Fair"},
		{39, "Poor"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.expected, ratingFor(tc.score), "score %d", tc.score)
	}
}

func TestBestSpeciesDarkBand(t *testing.T) {
	picks := bestSpecies(DefaultSpecies(), 5)

	require.Len(t, picks, 5)
	require.Equal(t, "Walleye", picks[0].Name)
	for i := 1; i < len(picks); i++ {
		require.LessOrEqual(t, picks[i].NightRating, picks[i-1].NightRating)
	}
	// Bright-only species never show up on a dark night.
	for _, p := range picks {
		require.NotEqual(t, "White Bass", p.Name)
	}
}

func TestBestSpeciesBrightBand(t *testing.T) {
	picks := bestSpecies(DefaultSpecies(), 95)
	require.NotEmpty(t, picks)
	require.LessOrEqual(t, len(picks), 5)
	for _, p := range picks {
		require.NotEqual(t, "Brown Trout", p.Name)
	}
}

func TestHoursAfterSunsetDerivedFromSolarTimes(t *testing.T) {
	sunset := 1200.0 // 20:00 UTC
	stub := &stubAstro{
		solarFn: func(lat, lon float64, date time.Time) astro.SolarTimes {
			rise := 300.0
			return astro.SolarTimes{SunriseMinutes: &rise, SunsetMinutes: &sunset, SolarNoonMinutes: 750}
		},
	}
	svc := newServiceUnderTest(stub)

	resp, err := svc.Score(context.Background(), Request{
		Latitude:  40.7128,
		Longitude: -74.0060,
		Timestamp: time.Date(2024, time.June, 21, 23, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.HoursAfterSunset)
	require.InDelta(t, 3.0, *resp.HoursAfterSunset, 0.01)
}

func TestPolarNightSkipsSunsetFactor(t *testing.T) {
	stub := &stubAstro{
		solarFn: func(lat, lon float64, date time.Time) astro.SolarTimes {
			return astro.SolarTimes{SolarNoonMinutes: 750}
		},
	}
	svc := newServiceUnderTest(stub)

	resp, err := svc.Score(context.Background(), Request{
		Latitude:  78.2232,
		Longitude: 15.6267,
		Timestamp: time.Date(2024, time.December, 21, 22, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Nil(t, resp.HoursAfterSunset)

	for _, f := range resp.Factors {
		if f.Name == "hoursAfterSunset" {
			require.Equal(t, 0, f.Impact)
		}
	}
}

func TestScoreRecoversFromPipelinePanic(t *testing.T) {
	stub := &stubAstro{
		moonFn: func(time.Time) astro.MoonPhase {
			panic("bad lunar state")
		},
	}
	svc := newServiceUnderTest(stub)

	resp, err := svc.Score(context.Background(), Request{
		Latitude:  40.7128,
		Longitude: -74.0060,
		Timestamp: time.Date(2024, time.June, 21, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.True(t, resp.Degraded)
	require.Contains(t, resp.DegradedReason, "bad lunar state")
	require.Equal(t, 50, resp.Score)
	require.Equal(t, "Fair", resp.Rating)
}

func TestScoreRejectsInvalidMoment(t *testing.T) {
	svc := newServiceUnderTest(&stubAstro{})
	_, err := svc.Score(context.Background(), Request{Latitude: 120, Longitude: 0, Timestamp: time.Now()})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

package astro

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestComputeMoonPhaseKnownDates(t *testing.T) {
	tests := []struct {
		name             string
		date             time.Time
		expectedFraction float64
		expectedName     PhaseName
	}{
		{"new moon Jan 2024", utcDate(2024, time.January, 11), 0, PhaseNew},
		{"full moon Jan 2024", utcDate(2024, time.January, 25), 0.5, PhaseFull},
		{"full moon Feb 2023", utcDate(2023, time.February, 5), 0.5, PhaseFull},
		{"new moon Jun 2024", utcDate(2024, time.June, 6), 0, PhaseNew},
		{"first quarter Jun 2024", utcDate(2024, time.June, 14), 0.25, PhaseFirstQuarter},
		{"last quarter Jun 2024", utcDate(2024, time.June, 28), 0.75, PhaseLastQuarter},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			phase := ComputeMoonPhase(tc.date)
			delta := math.Abs(phase.Fraction - tc.expectedFraction)
			if delta > 0.5 {
				delta = 1 - delta
			}
			require.LessOrEqual(t, delta, 0.1, "fraction %f", phase.Fraction)
			require.Equal(t, tc.expectedName, phase.Name)
		})
	}
}

func TestComputeMoonPhaseIlluminationExtremes(t *testing.T) {
	newMoon := ComputeMoonPhase(utcDate(2024, time.June, 6))
	require.Less(t, newMoon.IlluminationPercent, 10.0)

	fullMoon := ComputeMoonPhase(utcDate(2024, time.June, 21))
	require.Greater(t, fullMoon.IlluminationPercent, 90.0)
}

func TestComputeMoonPhaseInvariantsOverSweep(t *testing.T) {
	date := utcDate(2023, time.January, 1)
	for i := 0; i < 400; i++ {
		phase := ComputeMoonPhase(date)
		require.GreaterOrEqual(t, phase.Fraction, 0.0, date)
		require.Less(t, phase.Fraction, 1.0, date)
		require.GreaterOrEqual(t, phase.IlluminationPercent, 0.0, date)
		require.LessOrEqual(t, phase.IlluminationPercent, 100.0, date)
		require.NotEmpty(t, phase.Name, date)
		date = date.AddDate(0, 0, 1)
	}
}

func TestPhaseNameBuckets(t *testing.T) {
	tests := []struct {
		fraction float64
		expected PhaseName
	}{
		{0.00, PhaseNew},
		{0.99, PhaseNew},
		{0.13, PhaseWaxingCrescent},
		{0.25, PhaseFirstQuarter},
		{0.38, PhaseWaxingGibbous},
		{0.50, PhaseFull},
		{0.63, PhaseWaningGibbous},
		{0.75, PhaseLastQuarter},
		{0.88, PhaseWaningCrescent},
	}
	for _, tc := range tests {
		require.Equal(t, tc.expected, phaseNameFor(tc.fraction), "fraction %f", tc.fraction)
	}
}

func TestFishingRating(t *testing.T) {
	require.Equal(t, 5, MoonPhase{Name: PhaseNew}.FishingRating())
	require.Equal(t, 5, MoonPhase{Name: PhaseFull}.FishingRating())
	require.Equal(t, 4, MoonPhase{Name: PhaseFirstQuarter}.FishingRating())
	require.Equal(t, 4, MoonPhase{Name: PhaseLastQuarter}.FishingRating())
	require.Equal(t, 3, MoonPhase{Name: PhaseWaxingGibbous}.FishingRating())
	require.Equal(t, 3, MoonPhase{Name: PhaseWaningCrescent}.FishingRating())
}

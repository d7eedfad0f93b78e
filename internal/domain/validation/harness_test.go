package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/anglerworks/fishcast/pkg/errors"
)

func TestRunDefaultSetPasses(t *testing.T) {
	summary, err := Run(DefaultReferenceSet(), DefaultTolerances())
	require.NoError(t, err)
	require.True(t, summary.Ok())

	// 6 non-polar sun rows contribute 4 events each (table + NOAA cross
	// check), 2 polar rows contribute 2 skipped events each, 7 moon rows
	// contribute 1 each.
	require.Len(t, summary.Results, 35)
	require.Equal(t, 31, summary.Passed)
	require.Equal(t, 0, summary.Failed)
	require.Equal(t, 4, summary.Skipped)
}

func TestRunPolarRowsAreSkippedNotFailed(t *testing.T) {
	summary, err := Run(DefaultReferenceSet(), DefaultTolerances())
	require.NoError(t, err)

	for _, r := range summary.Results {
		if r.Row == "Longyearbyen, polar day" || r.Row == "Longyearbyen, polar night" {
			require.Equal(t, StatusSkipped, r.Status, "%s/%s", r.Row, r.Event)
		}
	}
}

func TestRunTightToleranceReportsFailuresWithoutError(t *testing.T) {
	summary, err := Run(DefaultReferenceSet(), Tolerances{SunMinutes: 0.001, MoonFraction: 0.0001})
	require.NoError(t, err)
	require.False(t, summary.Ok())
	require.Greater(t, summary.Failed, 0)

	for _, r := range summary.Results {
		if r.Status == StatusFail {
			require.NotEmpty(t, r.Note)
		}
	}
}

func TestRunRejectsMalformedReferenceData(t *testing.T) {
	valid := date(2024, time.June, 21)

	tests := []struct {
		name string
		set  ReferenceSet
		tol  Tolerances
	}{
		{
			name: "non-positive tolerance",
			set:  DefaultReferenceSet(),
			tol:  Tolerances{SunMinutes: 0, MoonFraction: 0.15},
		},
		{
			name: "sun row with bad latitude",
			set: ReferenceSet{Sun: []SunReference{
				{Name: "bad", Latitude: 95, Longitude: 0, Date: valid},
			}},
			tol: DefaultTolerances(),
		},
		{
			name: "sun row without date",
			set: ReferenceSet{Sun: []SunReference{
				{Name: "bad", Latitude: 40, Longitude: -74},
			}},
			tol: DefaultTolerances(),
		},
		{
			name: "moon row with fraction out of range",
			set: ReferenceSet{Moon: []MoonReference{
				{Name: "bad", Date: valid, Fraction: 1.2},
			}},
			tol: DefaultTolerances(),
		},
		{
			name: "moon row without date",
			set: ReferenceSet{Moon: []MoonReference{
				{Name: "bad", Fraction: 0.5},
			}},
			tol: DefaultTolerances(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Run(tc.set, tc.tol)
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, apperrors.CodeReferenceData))
		})
	}
}

func TestRunFlagsNonPolarResultForPolarRow(t *testing.T) {
	set := ReferenceSet{Sun: []SunReference{
		{
			Name: "mislabeled polar", Latitude: 40.7128, Longitude: -74.0060,
			Date: date(2024, time.June, 21), Polar: true,
		},
	}}

	summary, err := Run(set, DefaultTolerances())
	require.NoError(t, err)
	require.Equal(t, 2, summary.Failed)
	require.False(t, summary.Ok())
}

func TestCycleDistanceWrapsAroundTheCycle(t *testing.T) {
	require.InDelta(t, 0.04, cycleDistance(0.98, 0.02), 1e-9)
	require.InDelta(t, 0.04, cycleDistance(0.02, 0.98), 1e-9)
	require.InDelta(t, 0.5, cycleDistance(0.0, 0.5), 1e-9)
	require.InDelta(t, 0.0, cycleDistance(0.3, 0.3), 1e-9)
}

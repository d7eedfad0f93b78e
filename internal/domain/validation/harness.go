// Package validation checks the astronomical calculators against externally
// sourced reference data. It is an offline harness: deviations are reported
// as data, never thrown, and only malformed reference rows produce errors.
package validation

import (
	"fmt"
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/anglerworks/fishcast/internal/domain/astro"
	apperrors "github.com/anglerworks/fishcast/pkg/errors"
)

// Status classifies a single reference event.
type Status string

const (
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusSkipped Status = "skipped"
)

// Tolerances bound the accepted deviation per event kind. The defaults are
// deliberately generous: the calculators use low-precision formulas.
type Tolerances struct {
	SunMinutes   float64
	MoonFraction float64
}

// DefaultTolerances returns the stock tolerances: 20 minutes for sun
// events, 0.15 of a cycle for moon phase.
func DefaultTolerances() Tolerances {
	return Tolerances{SunMinutes: 20, MoonFraction: 0.15}
}

// EventResult is the outcome of one reference comparison.
type EventResult struct {
	Row      string
	Event    string
	Status   Status
	Expected float64
	Actual   float64
	Delta    float64
	Note     string
}

// Summary aggregates a harness run.
type Summary struct {
	Results []EventResult
	Passed  int
	Failed  int
	Skipped int
}

// Ok reports whether the run is free of failures.
func (s Summary) Ok() bool { return s.Failed == 0 }

// Run compares the calculators against every reference row. Beyond the
// embedded table it cross-checks each non-polar sunrise/sunset against the
// NOAA implementation in go-sunrise, catching regressions the coarse table
// tolerances would let through.
func Run(set ReferenceSet, tol Tolerances) (Summary, error) {
	if err := validateInputs(set, tol); err != nil {
		return Summary{}, err
	}

	var summary Summary
	for _, row := range set.Sun {
		summary.record(checkSunRow(row, tol)...)
	}
	for _, row := range set.Moon {
		summary.record(checkMoonRow(row, tol))
	}
	return summary, nil
}

func (s *Summary) record(results ...EventResult) {
	for _, r := range results {
		s.Results = append(s.Results, r)
		switch r.Status {
		case StatusPass:
			s.Passed++
		case StatusFail:
			s.Failed++
		case StatusSkipped:
			s.Skipped++
		}
	}
}

func checkSunRow(row SunReference, tol Tolerances) []EventResult {
	times := astro.ComputeSolarTimes(row.Latitude, row.Longitude, row.Date)

	if row.Polar {
		status := StatusSkipped
		note := "polar day/night, no sun events"
		if !times.Polar() {
			status = StatusFail
			note = "expected polar conditions but calculator produced sun events"
		}
		return []EventResult{
			{Row: row.Name, Event: "sunrise", Status: status, Note: note},
			{Row: row.Name, Event: "sunset", Status: status, Note: note},
		}
	}

	if times.Polar() {
		note := "calculator reported polar conditions for a non-polar row"
		return []EventResult{
			{Row: row.Name, Event: "sunrise", Status: StatusFail, Expected: row.SunriseMinutes, Note: note},
			{Row: row.Name, Event: "sunset", Status: StatusFail, Expected: row.SunsetMinutes, Note: note},
		}
	}

	results := []EventResult{
		compare(row.Name, "sunrise", row.SunriseMinutes, *times.SunriseMinutes, tol.SunMinutes),
		compare(row.Name, "sunset", row.SunsetMinutes, *times.SunsetMinutes, tol.SunMinutes),
	}
	results = append(results, crossCheckNOAA(row, times, tol)...)
	return results
}

// crossCheckNOAA compares the low-precision calculator against the NOAA
// algorithm for the same row.
func crossCheckNOAA(row SunReference, times astro.SolarTimes, tol Tolerances) []EventResult {
	rise, set := sunrise.SunriseSunset(
		row.Latitude, row.Longitude,
		row.Date.Year(), row.Date.Month(), row.Date.Day(),
	)
	if rise.IsZero() || set.IsZero() {
		return []EventResult{{
			Row: row.Name, Event: "sunrise/sunset (noaa)", Status: StatusSkipped,
			Note: "noaa reference unavailable for this row",
		}}
	}

	dayStart := time.Date(row.Date.Year(), row.Date.Month(), row.Date.Day(), 0, 0, 0, 0, time.UTC)
	riseMinutes := rise.Sub(dayStart).Minutes()
	setMinutes := set.Sub(dayStart).Minutes()

	return []EventResult{
		compare(row.Name, "sunrise vs noaa", riseMinutes, *times.SunriseMinutes, tol.SunMinutes),
		compare(row.Name, "sunset vs noaa", setMinutes, *times.SunsetMinutes, tol.SunMinutes),
	}
}

func checkMoonRow(row MoonReference, tol Tolerances) EventResult {
	phase := astro.ComputeMoonPhase(row.Date)
	delta := cycleDistance(phase.Fraction, row.Fraction)

	result := EventResult{
		Row:      row.Name,
		Event:    "moon phase",
		Status:   StatusPass,
		Expected: row.Fraction,
		Actual:   phase.Fraction,
		Delta:    delta,
	}
	if delta > tol.MoonFraction {
		result.Status = StatusFail
		result.Note = fmt.Sprintf("phase fraction off by %.3f of a cycle", delta)
	}
	return result
}

func compare(rowName, event string, expected, actual, tolerance float64) EventResult {
	delta := math.Abs(actual - expected)
	result := EventResult{
		Row:      rowName,
		Event:    event,
		Status:   StatusPass,
		Expected: expected,
		Actual:   actual,
		Delta:    delta,
	}
	if delta > tolerance {
		result.Status = StatusFail
		result.Note = fmt.Sprintf("deviation %.1f min exceeds tolerance %.1f", delta, tolerance)
	}
	return result
}

// cycleDistance measures the shortest distance between two phase fractions
// around the synodic cycle, so 0.98 and 0.02 are 0.04 apart, not 0.96.
func cycleDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 0.5 {
		d = 1 - d
	}
	return d
}

func validateInputs(set ReferenceSet, tol Tolerances) error {
	if tol.SunMinutes <= 0 || tol.MoonFraction <= 0 {
		return apperrors.Wrap(apperrors.CodeReferenceData, "tolerances must be positive", nil)
	}
	for _, row := range set.Sun {
		if row.Latitude < -90 || row.Latitude > 90 || row.Longitude < -180 || row.Longitude > 180 {
			return apperrors.Wrap(apperrors.CodeReferenceData,
				fmt.Sprintf("sun row %q has out-of-range coordinates", row.Name), nil)
		}
		if row.Date.IsZero() {
			return apperrors.Wrap(apperrors.CodeReferenceData,
				fmt.Sprintf("sun row %q has no date", row.Name), nil)
		}
	}
	for _, row := range set.Moon {
		if row.Fraction < 0 || row.Fraction >= 1 {
			return apperrors.Wrap(apperrors.CodeReferenceData,
				fmt.Sprintf("moon row %q has fraction outside [0,1)", row.Name), nil)
		}
		if row.Date.IsZero() {
			return apperrors.Wrap(apperrors.CodeReferenceData,
				fmt.Sprintf("moon row %q has no date", row.Name), nil)
		}
	}
	return nil
}

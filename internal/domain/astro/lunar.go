package astro

import (
	"math"
	"time"
)

// synodicMonthDays is the mean length of a lunation.
const synodicMonthDays = 29.5305882

// PhaseName identifies one of the eight conventional moon phases.
type PhaseName string

const (
	PhaseNew            PhaseName = "new"
	PhaseWaxingCrescent PhaseName = "waxing_crescent"
	PhaseFirstQuarter   PhaseName = "first_quarter"
	PhaseWaxingGibbous  PhaseName = "waxing_gibbous"
	PhaseFull           PhaseName = "full"
	PhaseWaningGibbous  PhaseName = "waning_gibbous"
	PhaseLastQuarter    PhaseName = "last_quarter"
	PhaseWaningCrescent PhaseName = "waning_crescent"
)

var phaseNames = [8]PhaseName{
	PhaseNew,
	PhaseWaxingCrescent,
	PhaseFirstQuarter,
	PhaseWaxingGibbous,
	PhaseFull,
	PhaseWaningGibbous,
	PhaseLastQuarter,
	PhaseWaningCrescent,
}

// MoonPhase is the lunar state for a calendar date. Fraction runs through
// the synodic cycle: 0 is new, 0.5 is full.
type MoonPhase struct {
	Fraction            float64
	IlluminationPercent float64
	Name                PhaseName
}

// FishingRating grades the phase 1-5 for feeding activity. New and full
// moons rate highest, quarters next, the in-between phases lowest.
func (p MoonPhase) FishingRating() int {
	switch p.Name {
	case PhaseNew, PhaseFull:
		return 5
	case PhaseFirstQuarter, PhaseLastQuarter:
		return 4
	default:
		return 3
	}
}

// ComputeMoonPhase maps a calendar date (interpreted in UTC) to a phase
// fraction using the conventional synodic approximation. The result is
// location independent and deliberately coarse: expect day-level accuracy,
// roughly ±15% of the cycle, not ephemeris precision.
func ComputeMoonPhase(date time.Time) MoonPhase {
	year, month, day := date.UTC().Date()
	y := year
	m := int(month)
	if m < 3 {
		y--
		m += 12
	}
	m++

	days := 365.25*float64(y) + 30.6*float64(m) + float64(day) - 694039.09
	cycles := days / synodicMonthDays
	fraction := cycles - math.Floor(cycles)

	return MoonPhase{
		Fraction:            fraction,
		IlluminationPercent: 50 * (1 - math.Cos(2*math.Pi*fraction)),
		Name:                phaseNameFor(fraction),
	}
}

// phaseNameFor buckets the cycle into eight equal-width phases centered on
// the multiples of 1/8.
func phaseNameFor(fraction float64) PhaseName {
	idx := int(math.Round(fraction*8)) % 8
	return phaseNames[idx]
}

// Package astro implements the low-precision solar and lunar approximations
// the scoring engines were calibrated against. All calculations are pure
// functions of their inputs: same arguments, same result.
//
// Conventions used throughout: north latitude and east longitude are
// positive, and clock times are expressed as minutes from UTC midnight of
// the requested date. Events that fall on a neighboring UTC day show up as
// negative minutes or minutes beyond 1440 rather than being wrapped.
package astro

import (
	"math"
	"time"
)

// sunAltitudeDeg is the refraction-corrected sun altitude that defines
// sunrise and sunset.
const sunAltitudeDeg = -0.833

// SolarTimes holds the solar events for one date at one location.
// Sunrise and Sunset are nil during polar day or polar night; solar noon
// is defined everywhere.
type SolarTimes struct {
	SunriseMinutes   *float64
	SunsetMinutes    *float64
	SolarNoonMinutes float64
}

// Polar reports whether the sun neither rises nor sets on this date.
func (s SolarTimes) Polar() bool {
	return s.SunriseMinutes == nil || s.SunsetMinutes == nil
}

// ComputeSolarTimes returns sunrise, sunset and solar noon for the given
// location and calendar date (interpreted in UTC).
//
// The solar position uses the standard sinusoidal fits keyed to
// day-of-year: declination 23.45°·sin(2π(284+N)/365) and the equation of
// time 9.87·sin(2B) − 7.53·cos(B) − 1.5·sin(B) with B = 2π(N−81)/364.
// Solar noon is 720 − 4·longitude − EoT; sunrise and sunset sit 4·H
// minutes either side of it, H being the hour angle at −0.833° altitude.
func ComputeSolarTimes(latitude, longitude float64, date time.Time) SolarTimes {
	doy := float64(date.UTC().YearDay())

	declDeg := 23.45 * math.Sin(2*math.Pi*(284+doy)/365)
	b := 2 * math.Pi * (doy - 81) / 364
	eotMinutes := 9.87*math.Sin(2*b) - 7.53*math.Cos(b) - 1.5*math.Sin(b)

	noon := 720 - 4*longitude - eotMinutes

	latRad := radians(latitude)
	declRad := radians(declDeg)
	cosH := (math.Sin(radians(sunAltitudeDeg)) - math.Sin(latRad)*math.Sin(declRad)) /
		(math.Cos(latRad) * math.Cos(declRad))
	if cosH < -1 || cosH > 1 {
		// Polar day or polar night. Noon is still meaningful.
		return SolarTimes{SolarNoonMinutes: noon}
	}

	hourAngleDeg := degrees(math.Acos(cosH))
	sunrise := noon - 4*hourAngleDeg
	sunset := noon + 4*hourAngleDeg

	return SolarTimes{
		SunriseMinutes:   &sunrise,
		SunsetMinutes:    &sunset,
		SolarNoonMinutes: noon,
	}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

package validation

import "time"

// SunReference is one externally sourced sunrise/sunset row. Expected
// values are minutes from UTC midnight of Date; events on a neighboring
// UTC day appear as negative minutes or minutes beyond 1440. Polar rows
// expect no events at all.
type SunReference struct {
	Name           string
	Latitude       float64
	Longitude      float64
	Date           time.Time
	SunriseMinutes float64
	SunsetMinutes  float64
	Polar          bool
}

// MoonReference is one externally sourced phase row; Fraction is the
// expected position in the synodic cycle (0 new, 0.5 full).
type MoonReference struct {
	Name     string
	Date     time.Time
	Fraction float64
}

// ReferenceSet bundles the reference rows the harness runs against.
type ReferenceSet struct {
	Sun  []SunReference
	Moon []MoonReference
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DefaultReferenceSet returns the embedded table: almanac values spanning
// both hemispheres, the equator, solstices, equinoxes and polar latitudes.
func DefaultReferenceSet() ReferenceSet {
	return ReferenceSet{
		Sun: []SunReference{
			{
				Name: "New York, June solstice", Latitude: 40.7128, Longitude: -74.0060,
				Date: date(2024, time.June, 21), SunriseMinutes: 564, SunsetMinutes: 1471,
			},
			{
				Name: "London, March equinox", Latitude: 51.5074, Longitude: -0.1278,
				Date: date(2024, time.March, 20), SunriseMinutes: 363, SunsetMinutes: 1095,
			},
			{
				Name: "Sydney, June solstice", Latitude: -33.8688, Longitude: 151.2093,
				Date: date(2024, time.June, 21), SunriseMinutes: -179, SunsetMinutes: 414,
			},
			{
				Name: "Cape Town, December solstice", Latitude: -33.9249, Longitude: 18.4241,
				Date: date(2024, time.December, 21), SunriseMinutes: 212, SunsetMinutes: 1077,
			},
			{
				Name: "Reykjavik, June solstice", Latitude: 64.1466, Longitude: -21.9426,
				Date: date(2024, time.June, 21), SunriseMinutes: 175, SunsetMinutes: 1444,
			},
			{
				Name: "Quito, March equinox", Latitude: -0.1807, Longitude: -78.4678,
				Date: date(2024, time.March, 20), SunriseMinutes: 677, SunsetMinutes: 1403,
			},
			{
				Name: "Longyearbyen, polar day", Latitude: 78.2232, Longitude: 15.6267,
				Date: date(2024, time.June, 21), Polar: true,
			},
			{
				Name: "Longyearbyen, polar night", Latitude: 78.2232, Longitude: 15.6267,
				Date: date(2024, time.December, 21), Polar: true,
			},
		},
		Moon: []MoonReference{
			{Name: "New moon Jan 2024", Date: date(2024, time.January, 11), Fraction: 0},
			{Name: "Full moon Jan 2024", Date: date(2024, time.January, 25), Fraction: 0.5},
			{Name: "Full moon Feb 2023", Date: date(2023, time.February, 5), Fraction: 0.5},
			{Name: "New moon Jun 2024", Date: date(2024, time.June, 6), Fraction: 0},
			{Name: "First quarter Jun 2024", Date: date(2024, time.June, 14), Fraction: 0.25},
			{Name: "Full moon Jun 2024", Date: date(2024, time.June, 21), Fraction: 0.5},
			{Name: "Last quarter Jun 2024", Date: date(2024, time.June, 28), Fraction: 0.75},
		},
	}
}

package astro

import "time"

// Calculator bundles the package's pure functions behind methods so the
// scoring services can depend on a narrow interface and tests can swap in
// controlled implementations.
type Calculator struct{}

func NewCalculator() *Calculator { return &Calculator{} }

func (Calculator) SolarTimes(latitude, longitude float64, date time.Time) SolarTimes {
	return ComputeSolarTimes(latitude, longitude, date)
}

func (Calculator) MoonPhase(date time.Time) MoonPhase {
	return ComputeMoonPhase(date)
}

func (Calculator) SolunarWindows(times SolarTimes, date time.Time) SolunarDay {
	return ComputeSolunarWindows(times, date)
}

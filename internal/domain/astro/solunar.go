package astro

import (
	"math"
	"sort"
	"time"
)

// WindowKind distinguishes the two solunar feeding-period classes.
type WindowKind string

const (
	WindowMajor WindowKind = "major"
	WindowMinor WindowKind = "minor"
)

// Window durations. Majors bracket the estimated lunar transit and
// anti-transit, minors the estimated moonrise and moonset.
const (
	majorWindowMinutes = 120.0
	minorWindowMinutes = 60.0
)

// SolunarWindow is a single feeding period expressed as UTC instants.
type SolunarWindow struct {
	Kind  WindowKind
	Start time.Time
	End   time.Time
}

// Contains reports window membership, start inclusive, end exclusive.
func (w SolunarWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// SolunarDay groups a date's feeding windows: always two majors, and up to
// four minors. Minors are absent when the solar times are polar, since
// moonrise and moonset are estimated from sunrise and sunset.
type SolunarDay struct {
	Major []SolunarWindow
	Minor []SolunarWindow
}

// Membership returns the kind of window covering t, or "" when t falls
// outside every window. Majors win over minors on overlap.
func (d SolunarDay) Membership(t time.Time) WindowKind {
	for _, w := range d.Major {
		if w.Contains(t) {
			return WindowMajor
		}
	}
	for _, w := range d.Minor {
		if w.Contains(t) {
			return WindowMinor
		}
	}
	return ""
}

// ComputeSolunarWindows derives the feeding windows for the UTC calendar
// day containing date. Moon timing is approximated by lagging the sun:
// the moon trails by the elapsed fraction of the synodic cycle, a full day
// at full moon and nothing at new moon.
func ComputeSolunarWindows(times SolarTimes, date time.Time) SolunarDay {
	phase := ComputeMoonPhase(date)
	lagMinutes := phase.Fraction * 24 * 60

	year, month, day := date.UTC().Date()
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	transit := wrapMinutes(times.SolarNoonMinutes + lagMinutes)
	antiTransit := wrapMinutes(transit + 720)

	majors := []SolunarWindow{
		windowAt(dayStart, transit, majorWindowMinutes, WindowMajor),
		windowAt(dayStart, antiTransit, majorWindowMinutes, WindowMajor),
	}
	sort.Slice(majors, func(i, j int) bool { return majors[i].Start.Before(majors[j].Start) })

	var minors []SolunarWindow
	if !times.Polar() {
		moonrise := *times.SunriseMinutes + lagMinutes
		moonset := *times.SunsetMinutes + lagMinutes
		for _, event := range []float64{moonrise, moonset} {
			base := wrapMinutes(event)
			// An event near midnight contributes through both the wrapped
			// occurrence and its neighbor, so a day can see up to four minors.
			for _, center := range []float64{base - 1440, base, base + 1440} {
				if center+minorWindowMinutes/2 <= 0 || center-minorWindowMinutes/2 >= 1440 {
					continue
				}
				minors = append(minors, windowAt(dayStart, center, minorWindowMinutes, WindowMinor))
			}
		}
		sort.Slice(minors, func(i, j int) bool { return minors[i].Start.Before(minors[j].Start) })
	}

	return SolunarDay{Major: majors, Minor: minors}
}

func windowAt(dayStart time.Time, centerMinutes, durationMinutes float64, kind WindowKind) SolunarWindow {
	half := time.Duration(durationMinutes/2 * float64(time.Minute))
	center := dayStart.Add(time.Duration(centerMinutes * float64(time.Minute)))
	return SolunarWindow{Kind: kind, Start: center.Add(-half), End: center.Add(half)}
}

func wrapMinutes(m float64) float64 {
	wrapped := math.Mod(m, 1440)
	if wrapped < 0 {
		wrapped += 1440
	}
	return wrapped
}

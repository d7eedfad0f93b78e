package fishcast

import "time"

// TideState labels the direction of the tide in a TideSnapshot.
type TideState string

const (
	TideRising  TideState = "rising"
	TideFalling TideState = "falling"
	TideUnknown TideState = "unknown"
)

// WeatherSnapshot carries the already-parsed weather values supplied by the
// caller. The engine never fetches weather itself. Sunrise/Sunset echo the
// provider's values for display; scoring derives its own solar times.
type WeatherSnapshot struct {
	TemperatureC      float64    `json:"temperatureC"`
	WindSpeedKmh      float64    `json:"windSpeedKmh"`
	CloudCoverPercent float64    `json:"cloudCoverPercent"`
	PrecipitationMm   float64    `json:"precipitationMm"`
	PressureMsl       float64    `json:"pressureMsl"`
	Sunrise           *time.Time `json:"sunrise,omitempty"`
	Sunset            *time.Time `json:"sunset,omitempty"`
}

// TideSnapshot is the optional tide input. ProgressPercent runs 0-100
// through the current rising or falling leg.
type TideSnapshot struct {
	State           TideState `json:"state"`
	ProgressPercent float64   `json:"progressPercent"`
}

// Factor is one entry of the explainable score breakdown. Impact is the
// weighted contribution relative to a neutral sub-score of 50, so positive
// values pushed the score up and negative values pulled it down.
type Factor struct {
	Name        string  `json:"name"`
	Impact      float64 `json:"impact"`
	Description string  `json:"description"`
}

// ScoreResult is the composite 0-100 FishCast score with its breakdown.
// Factors preserve evaluation order; callers may rely on it.
type ScoreResult struct {
	Score   int      `json:"score"`
	Label   string   `json:"label"`
	Factors []Factor `json:"factors"`
}

// Outcome tags a result as fully valid or degraded. A degraded outcome
// still carries a usable neutral score; Reason says what was lost.
type Outcome struct {
	Result   ScoreResult
	Degraded bool
	Reason   string
}

// Request is the scoring input: a geographic moment plus the external
// weather and optional tide snapshots.
type Request struct {
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Timestamp time.Time       `json:"timestamp"`
	Weather   WeatherSnapshot `json:"weather"`
	Tide      *TideSnapshot   `json:"tide,omitempty"`
}

// MoonSummary is the lunar metadata echoed back with a score.
type MoonSummary struct {
	Fraction            float64 `json:"fraction"`
	IlluminationPercent float64 `json:"illuminationPercent"`
	Name                string  `json:"name"`
}

// WindowSummary is a solunar window serialized for API consumers.
type WindowSummary struct {
	Kind  string    `json:"kind"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SolarSummary is the derived solar timing, minutes from UTC midnight.
// Nil sunrise/sunset marks a polar day or night.
type SolarSummary struct {
	SunriseMinutes   *float64 `json:"sunriseUtcMinutes"`
	SunsetMinutes    *float64 `json:"sunsetUtcMinutes"`
	SolarNoonMinutes float64  `json:"solarNoonUtcMinutes"`
}

// Response is serialized back to API consumers.
type Response struct {
	Score          int             `json:"score"`
	Label          string          `json:"label"`
	Factors        []Factor        `json:"factors"`
	Degraded       bool            `json:"degraded"`
	DegradedReason string          `json:"degradedReason,omitempty"`
	Moon           MoonSummary     `json:"moon"`
	Solar          SolarSummary    `json:"solar"`
	SolunarWindows []WindowSummary `json:"solunarWindows"`
}

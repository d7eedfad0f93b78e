package nightcast

import "time"

// Request is the night scoring input. Location and timestamp drive the
// derived lunar and solunar factors; the remaining fields are the caller's
// sensor readings. MoonIlluminationPercent and HoursAfterSunset may be
// supplied to override the derivation, e.g. when the client already has
// better data.
type Request struct {
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	Timestamp         time.Time `json:"timestamp"`
	CloudCoverPercent float64   `json:"cloudCoverPercent"`
	WindSpeedKmh      float64   `json:"windSpeedKmh"`
	WaterTempF        float64   `json:"waterTempF"`
	PressureTrendMb   float64   `json:"pressureTrendMb"`

	MoonIlluminationPercent *float64 `json:"moonIlluminationPercent,omitempty"`
	HoursAfterSunset        *float64 `json:"hoursAfterSunset,omitempty"`
}

// Conditions is the fully resolved input the additive engine scores.
type Conditions struct {
	MoonIlluminationPercent float64
	CloudCoverPercent       float64
	WindSpeedKmh            float64
	WaterTempF              float64
	PressureTrendMb         float64
	InMajorWindow           bool
	InMinorWindow           bool
	// HoursAfterSunsetKnown is false on polar dates, when no sunset
	// exists to measure from.
	HoursAfterSunset      float64
	HoursAfterSunsetKnown bool
}

// Factor is one additive delta applied to the baseline score.
type Factor struct {
	Name        string `json:"name"`
	Impact      int    `json:"impact"`
	Description string `json:"description"`
}

// SpeciesPick is one entry of the ranked species list.
type SpeciesPick struct {
	Name        string `json:"name"`
	NightRating int    `json:"nightRating"`
	Notes       string `json:"notes,omitempty"`
}

// Result is the composite night score before API serialization.
type Result struct {
	Score       int           `json:"score"`
	Rating      string        `json:"rating"`
	Factors     []Factor      `json:"factors"`
	BestSpecies []SpeciesPick `json:"bestSpecies"`
}

// Outcome tags a result as fully valid or degraded, mirroring the day
// engine's contract.
type Outcome struct {
	Result   Result
	Degraded bool
	Reason   string
}

// Response is serialized back to API consumers.
type Response struct {
	Score                   int           `json:"score"`
	Rating                  string        `json:"rating"`
	Factors                 []Factor      `json:"factors"`
	BestSpecies             []SpeciesPick `json:"bestSpecies"`
	Degraded                bool          `json:"degraded"`
	DegradedReason          string        `json:"degradedReason,omitempty"`
	MoonIlluminationPercent float64       `json:"moonIlluminationPercent"`
	HoursAfterSunset        *float64      `json:"hoursAfterSunset,omitempty"`
}

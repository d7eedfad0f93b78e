package fishcast

import (
	"fmt"
	"math"
	"time"

	"github.com/anglerworks/fishcast/internal/domain/astro"
)

// neutralSubScore substitutes for any factor whose input is missing, so a
// single absent reading never dominates the composite.
const neutralSubScore = 50.0

// Factor weights, in evaluation order. They sum to 1.0.
const (
	weightPressure      = 0.20
	weightMoonPhase     = 0.15
	weightSolunarPeriod = 0.15
	weightWind          = 0.12
	weightTimeOfDay     = 0.12
	weightCloudCover    = 0.08
	weightPrecipitation = 0.08
	weightTideState     = 0.10
)

type subScore struct {
	name        string
	weight      float64
	value       float64
	description string
}

// evaluateFactors produces the eight weighted sub-scores in their fixed
// order: pressure, moonPhase, solunarPeriod, wind, timeOfDay, cloudCover,
// precipitation, tideState.
func evaluateFactors(req Request, phase astro.MoonPhase, windows astro.SolunarDay) []subScore {
	factors := make([]subScore, 0, 8)

	value, desc := scorePressure(req.Weather.PressureMsl)
	factors = append(factors, subScore{"pressure", weightPressure, value, desc})

	value, desc = scoreMoonPhase(phase)
	factors = append(factors, subScore{"moonPhase", weightMoonPhase, value, desc})

	value, desc = scoreSolunarPeriod(windows, req.Timestamp)
	factors = append(factors, subScore{"solunarPeriod", weightSolunarPeriod, value, desc})

	value, desc = scoreWind(req.Weather.WindSpeedKmh)
	factors = append(factors, subScore{"wind", weightWind, value, desc})

	value, desc = scoreTimeOfDay(req.Longitude, req.Timestamp)
	factors = append(factors, subScore{"timeOfDay", weightTimeOfDay, value, desc})

	value, desc = scoreCloudCover(req.Weather.CloudCoverPercent)
	factors = append(factors, subScore{"cloudCover", weightCloudCover, value, desc})

	value, desc = scorePrecipitation(req.Weather.PrecipitationMm)
	factors = append(factors, subScore{"precipitation", weightPrecipitation, value, desc})

	value, desc = scoreTideState(req.Tide)
	factors = append(factors, subScore{"tideState", weightTideState, value, desc})

	return factors
}

func composeScore(factors []subScore) ScoreResult {
	total := 0.0
	breakdown := make([]Factor, 0, len(factors))
	for _, f := range factors {
		total += f.weight * f.value
		breakdown = append(breakdown, Factor{
			Name:        f.name,
			Impact:      math.Round(f.weight*(f.value-neutralSubScore)*10) / 10,
			Description: f.description,
		})
	}

	score := int(math.Round(math.Min(100, math.Max(0, total))))
	return ScoreResult{Score: score, Label: labelFor(score), Factors: breakdown}
}

func labelFor(score int) string {
	switch {
	case score >= 85:
		return "Excellent"
	case score >= 70:
		return "Very Good"
	case score >= 55:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Poor"
	}
}

func scorePressure(hpa float64) (float64, string) {
	if math.IsNaN(hpa) || hpa <= 0 {
		return neutralSubScore, "no pressure reading"
	}
	switch {
	case hpa >= 1013 && hpa <= 1023:
		return 90, "ideal stable pressure"
	case hpa >= 1005 && hpa < 1013:
		return 70, "slightly low, pre-front conditions"
	case hpa > 1023 && hpa <= 1030:
		return 60, "high pressure, slower bite"
	case hpa < 1005:
		return 40, "low pressure system"
	default:
		return 30, "very high pressure"
	}
}

func scoreMoonPhase(phase astro.MoonPhase) (float64, string) {
	rating := phase.FishingRating()
	return float64(rating * 20), fmt.Sprintf("%s moon, rated %d/5", phase.Name, rating)
}

func scoreSolunarPeriod(windows astro.SolunarDay, at time.Time) (float64, string) {
	switch windows.Membership(at) {
	case astro.WindowMajor:
		return 95, "inside a major feeding period"
	case astro.WindowMinor:
		return 75, "inside a minor feeding period"
	default:
		return 40, "outside solunar feeding periods"
	}
}

func scoreWind(kmh float64) (float64, string) {
	if math.IsNaN(kmh) || kmh < 0 {
		return neutralSubScore, "no wind reading"
	}
	switch {
	case kmh <= 5:
		return 85, "calm"
	case kmh <= 12:
		return 75, "light breeze"
	case kmh <= 20:
		return 55, "moderate wind"
	case kmh <= 30:
		return 30, "strong wind"
	default:
		return 10, "very strong wind"
	}
}

// scoreTimeOfDay estimates the local hour from longitude alone
// (round(lon/15) hours off UTC). A timezone database would be more exact,
// but the band thresholds were tuned against this simplified model.
func scoreTimeOfDay(longitude float64, at time.Time) (float64, string) {
	offset := int(math.Round(longitude / 15))
	hour := ((at.UTC().Hour()+offset)%24 + 24) % 24
	switch {
	case hour >= 4 && hour < 8:
		return 90, "dawn bite window"
	case hour >= 17 && hour < 21:
		return 85, "dusk bite window"
	case (hour >= 8 && hour < 10) || (hour >= 15 && hour < 17):
		return 65, "morning or late afternoon"
	case hour >= 21 || hour < 4:
		return 50, "night hours"
	default:
		return 40, "midday lull"
	}
}

func scoreCloudCover(percent float64) (float64, string) {
	if math.IsNaN(percent) || percent < 0 {
		return neutralSubScore, "no cloud cover reading"
	}
	switch {
	case percent >= 50 && percent <= 80:
		return 80, "good cloud cover"
	case percent >= 30 && percent < 50:
		return 65, "partial cloud cover"
	case percent > 80:
		return 60, "overcast"
	default:
		return 40, "clear skies"
	}
}

func scorePrecipitation(mm float64) (float64, string) {
	if math.IsNaN(mm) || mm < 0 {
		return neutralSubScore, "no precipitation reading"
	}
	switch {
	case mm == 0:
		return 60, "dry"
	case mm <= 2:
		return 85, "light rain, often the best bite"
	case mm <= 5:
		return 65, "steady rain"
	case mm <= 10:
		return 40, "heavy rain"
	default:
		return 20, "downpour"
	}
}

func scoreTideState(tide *TideSnapshot) (float64, string) {
	if tide == nil || tide.State == TideUnknown || tide.State == "" {
		return neutralSubScore, "no tide data"
	}
	p := tide.ProgressPercent
	switch {
	case p >= 30 && p <= 70 && tide.State == TideRising:
		return 90, "mid rising tide"
	case p >= 30 && p <= 70 && tide.State == TideFalling:
		return 80, "mid falling tide"
	case p < 15 || p > 85:
		return 40, "near slack tide"
	default:
		return 60, "early tide movement"
	}
}

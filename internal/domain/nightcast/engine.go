package nightcast

import "math"

// baselineScore is the starting point every additive factor adjusts.
const baselineScore = 50

// evaluateFactors returns the additive deltas in their fixed order:
// moonIllumination, cloudCover, wind, waterTemp, pressureTrend, solunar,
// hoursAfterSunset. Factors with no applicable delta are still listed at
// impact 0 so the breakdown stays inspectable.
func evaluateFactors(c Conditions) []Factor {
	factors := make([]Factor, 0, 7)

	factors = append(factors, scoreMoonIllumination(c.MoonIlluminationPercent))
	factors = append(factors, scoreCloudCover(c.CloudCoverPercent))
	factors = append(factors, scoreWind(c.WindSpeedKmh))
	factors = append(factors, scoreWaterTemp(c.WaterTempF))
	factors = append(factors, scorePressureTrend(c.PressureTrendMb))
	factors = append(factors, scoreSolunar(c.InMajorWindow, c.InMinorWindow))
	factors = append(factors, scoreHoursAfterSunset(c))

	return factors
}

func composeScore(factors []Factor) (int, string) {
	total := baselineScore
	for _, f := range factors {
		total += f.Impact
	}
	score := int(math.Min(100, math.Max(0, float64(total))))
	return score, ratingFor(score)
}

func ratingFor(score int) string {
	switch {
	case score >= 85:
		return "Legendary"
	case score >= 70:
		return "Excellent"
	case score >= 55:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Poor"
	}
}

func scoreMoonIllumination(percent float64) Factor {
	f := Factor{Name: "moonIllumination"}
	switch {
	case percent < 10:
		f.Impact, f.Description = 15, "near-dark skies, prime for nocturnal feeders"
	case percent < 30:
		f.Impact, f.Description = 10, "dim moonlight"
	case percent < 50:
		f.Impact, f.Description = 5, "partial moonlight"
	case percent < 80:
		f.Impact, f.Description = 0, "bright moonlight"
	default:
		f.Impact, f.Description = -5, "near-full moon washes out the dark bite"
	}
	return f
}

func scoreCloudCover(percent float64) Factor {
	f := Factor{Name: "cloudCover", Description: "clear night sky"}
	switch {
	case percent > 80:
		f.Impact, f.Description = 10, "heavy overcast deepens the dark"
	case percent > 50:
		f.Impact, f.Description = 5, "broken cloud cover"
	}
	return f
}

func scoreWind(kmh float64) Factor {
	f := Factor{Name: "wind", Description: "moderate wind"}
	switch {
	case kmh < 8:
		f.Impact, f.Description = 12, "calm water, easy strike detection"
	case kmh < 16:
		f.Impact, f.Description = 5, "light chop"
	case kmh > 30:
		f.Impact, f.Description = -15, "strong wind, rough night conditions"
	}
	return f
}

func scoreWaterTemp(tempF float64) Factor {
	f := Factor{Name: "waterTemp", Description: "acceptable water temperature"}
	switch {
	case tempF >= 55 && tempF <= 75:
		f.Impact, f.Description = 8, "ideal water temperature"
	case tempF < 45:
		f.Impact, f.Description = -10, "cold water slows metabolism"
	case tempF > 85:
		f.Impact, f.Description = -5, "warm water, oxygen stressed"
	}
	return f
}

func scorePressureTrend(deltaMb float64) Factor {
	f := Factor{Name: "pressureTrend", Description: "steady pressure"}
	switch {
	case deltaMb < -2:
		f.Impact, f.Description = 12, "pressure falling fast, front approaching"
	case deltaMb < -0.5:
		f.Impact, f.Description = 6, "pressure drifting down"
	case deltaMb > 3:
		f.Impact, f.Description = -8, "pressure rising sharply"
	}
	return f
}

func scoreSolunar(inMajor, inMinor bool) Factor {
	f := Factor{Name: "solunar", Description: "outside feeding periods"}
	switch {
	case inMajor:
		f.Impact, f.Description = 15, "inside a major feeding period"
	case inMinor:
		f.Impact, f.Description = 8, "inside a minor feeding period"
	}
	return f
}

func scoreHoursAfterSunset(c Conditions) Factor {
	f := Factor{Name: "hoursAfterSunset", Description: "outside the post-sunset pattern"}
	if !c.HoursAfterSunsetKnown {
		f.Description = "no sunset tonight to measure from"
		return f
	}
	h := c.HoursAfterSunset
	switch {
	case h >= 2 && h <= 4:
		f.Impact, f.Description = 8, "prime window after sunset"
	case h >= 1 && h < 2:
		f.Impact, f.Description = 4, "early night, bite building"
	case h > 6:
		f.Impact, f.Description = -3, "deep into the night"
	}
	return f
}

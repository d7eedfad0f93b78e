package nightcast

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/anglerworks/fishcast/internal/domain/astro"
	apperrors "github.com/anglerworks/fishcast/pkg/errors"
)

// Service exposes the nighttime scoring engine.
type Service interface {
	Score(ctx context.Context, req Request) (Response, error)
}

// Astro abstracts the astronomical calculators the night engine derives
// moonlight and solunar membership from.
type Astro interface {
	SolarTimes(latitude, longitude float64, date time.Time) astro.SolarTimes
	MoonPhase(date time.Time) astro.MoonPhase
	SolunarWindows(times astro.SolarTimes, date time.Time) astro.SolunarDay
}

type service struct {
	astro   Astro
	species []Species
	logger  *slog.Logger
}

// NewService wires up the night scoring domain. A nil species table falls
// back to the embedded reference data.
func NewService(astroCalc Astro, species []Species, logger *slog.Logger) Service {
	if species == nil {
		species = DefaultSpecies()
	}
	return &service{
		astro:   astroCalc,
		species: species,
		logger:  logger.With("component", "nightcast.service"),
	}
}

func (s *service) Score(ctx context.Context, req Request) (Response, error) {
	if err := validateMoment(req.Latitude, req.Longitude, req.Timestamp); err != nil {
		return Response{}, err
	}

	outcome, conditions := s.evaluate(req)
	s.logger.Info("nightcast scored",
		"score", outcome.Result.Score,
		"rating", outcome.Result.Rating,
		"degraded", outcome.Degraded,
	)

	resp := Response{
		Score:                   outcome.Result.Score,
		Rating:                  outcome.Result.Rating,
		Factors:                 outcome.Result.Factors,
		BestSpecies:             outcome.Result.BestSpecies,
		Degraded:                outcome.Degraded,
		DegradedReason:          outcome.Reason,
		MoonIlluminationPercent: conditions.MoonIlluminationPercent,
	}
	if conditions.HoursAfterSunsetKnown {
		h := conditions.HoursAfterSunset
		resp.HoursAfterSunset = &h
	}
	return resp, nil
}

// evaluate resolves the derived factors and runs the additive engine,
// converting any panic into a neutral degraded outcome.
func (s *service) evaluate(req Request) (outcome Outcome, conditions Conditions) {
	defer func() {
		if r := recover(); r != nil {
			reason := fmt.Sprintf("scoring pipeline failure: %v", r)
			s.logger.Error("nightcast evaluation recovered", "reason", reason)
			outcome = neutralOutcome(reason)
		}
	}()

	conditions = s.resolveConditions(req)
	factors := evaluateFactors(conditions)
	score, rating := composeScore(factors)
	outcome = Outcome{
		Result: Result{
			Score:       score,
			Rating:      rating,
			Factors:     factors,
			BestSpecies: bestSpecies(s.species, conditions.MoonIlluminationPercent),
		},
	}
	return
}

func (s *service) resolveConditions(req Request) Conditions {
	c := Conditions{
		CloudCoverPercent: req.CloudCoverPercent,
		WindSpeedKmh:      req.WindSpeedKmh,
		WaterTempF:        req.WaterTempF,
		PressureTrendMb:   req.PressureTrendMb,
	}

	if req.MoonIlluminationPercent != nil {
		c.MoonIlluminationPercent = *req.MoonIlluminationPercent
	} else {
		c.MoonIlluminationPercent = s.astro.MoonPhase(req.Timestamp).IlluminationPercent
	}

	solar := s.astro.SolarTimes(req.Latitude, req.Longitude, req.Timestamp)
	windows := s.astro.SolunarWindows(solar, req.Timestamp)
	switch windows.Membership(req.Timestamp) {
	case astro.WindowMajor:
		c.InMajorWindow = true
	case astro.WindowMinor:
		c.InMinorWindow = true
	}

	if req.HoursAfterSunset != nil {
		c.HoursAfterSunset = *req.HoursAfterSunset
		c.HoursAfterSunsetKnown = true
	} else {
		c.HoursAfterSunset, c.HoursAfterSunsetKnown = s.hoursAfterSunset(req, solar)
	}

	return c
}

// hoursAfterSunset measures from today's sunset, or yesterday's when the
// instant precedes today's. Polar dates have no sunset to measure from.
func (s *service) hoursAfterSunset(req Request, solar astro.SolarTimes) (float64, bool) {
	if solar.Polar() {
		return 0, false
	}
	instant := minutesIntoDay(req.Timestamp)
	elapsed := instant - *solar.SunsetMinutes
	if elapsed < 0 {
		previous := s.astro.SolarTimes(req.Latitude, req.Longitude, req.Timestamp.AddDate(0, 0, -1))
		if previous.Polar() {
			return 0, false
		}
		elapsed = instant + 1440 - *previous.SunsetMinutes
	}
	return elapsed / 60, true
}

func minutesIntoDay(t time.Time) float64 {
	utc := t.UTC()
	return float64(utc.Hour()*60+utc.Minute()) + float64(utc.Second())/60
}

func neutralOutcome(reason string) Outcome {
	return Outcome{
		Result:   Result{Score: 50, Rating: "Fair", Factors: []Factor{}, BestSpecies: []SpeciesPick{}},
		Degraded: true,
		Reason:   reason,
	}
}

func validateMoment(latitude, longitude float64, ts time.Time) error {
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) || latitude < -90 || latitude > 90 {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "latitude must be within [-90, 90]", nil)
	}
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) || longitude < -180 || longitude > 180 {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "longitude must be within [-180, 180]", nil)
	}
	if ts.IsZero() {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "timestamp is required", nil)
	}
	return nil
}

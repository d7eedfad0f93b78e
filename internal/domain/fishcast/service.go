package fishcast

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/anglerworks/fishcast/internal/domain/astro"
	apperrors "github.com/anglerworks/fishcast/pkg/errors"
)

// Service exposes the daytime FishCast scoring engine.
type Service interface {
	Score(ctx context.Context, req Request) (Response, error)
}

// Astro abstracts the astronomical calculators so scoring stays testable
// with controlled inputs.
type Astro interface {
	SolarTimes(latitude, longitude float64, date time.Time) astro.SolarTimes
	MoonPhase(date time.Time) astro.MoonPhase
	SolunarWindows(times astro.SolarTimes, date time.Time) astro.SolunarDay
}

type service struct {
	astro  Astro
	logger *slog.Logger
}

// NewService wires up the FishCast scoring domain.
func NewService(astroCalc Astro, logger *slog.Logger) Service {
	return &service{
		astro:  astroCalc,
		logger: logger.With("component", "fishcast.service"),
	}
}

func (s *service) Score(ctx context.Context, req Request) (Response, error) {
	if err := validateMoment(req.Latitude, req.Longitude, req.Timestamp); err != nil {
		return Response{}, err
	}

	outcome, solar, phase, windows := s.evaluate(req)
	s.logger.Info("fishcast scored",
		"score", outcome.Result.Score,
		"label", outcome.Result.Label,
		"degraded", outcome.Degraded,
	)

	return Response{
		Score:          outcome.Result.Score,
		Label:          outcome.Result.Label,
		Factors:        outcome.Result.Factors,
		Degraded:       outcome.Degraded,
		DegradedReason: outcome.Reason,
		Moon: MoonSummary{
			Fraction:            phase.Fraction,
			IlluminationPercent: phase.IlluminationPercent,
			Name:                string(phase.Name),
		},
		Solar: SolarSummary{
			SunriseMinutes:   solar.SunriseMinutes,
			SunsetMinutes:    solar.SunsetMinutes,
			SolarNoonMinutes: solar.SolarNoonMinutes,
		},
		SolunarWindows: summarizeWindows(windows),
	}, nil
}

// evaluate runs the pipeline and converts any panic from a corrupt input
// into a neutral degraded outcome. A broken environmental reading must
// never take the prediction path down with it.
func (s *service) evaluate(req Request) (outcome Outcome, solar astro.SolarTimes, phase astro.MoonPhase, windows astro.SolunarDay) {
	defer func() {
		if r := recover(); r != nil {
			reason := fmt.Sprintf("scoring pipeline failure: %v", r)
			s.logger.Error("fishcast evaluation recovered", "reason", reason)
			outcome = neutralOutcome(reason)
		}
	}()

	solar = s.astro.SolarTimes(req.Latitude, req.Longitude, req.Timestamp)
	phase = s.astro.MoonPhase(req.Timestamp)
	windows = s.astro.SolunarWindows(solar, req.Timestamp)

	factors := evaluateFactors(req, phase, windows)
	outcome = Outcome{Result: composeScore(factors)}
	return
}

func neutralOutcome(reason string) Outcome {
	return Outcome{
		Result:   ScoreResult{Score: 50, Label: "Fair", Factors: []Factor{}},
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

func summarizeWindows(day astro.SolunarDay) []WindowSummary {
	out := make([]WindowSummary, 0, len(day.Major)+len(day.Minor))
	for _, w := range day.Major {
		out = append(out, WindowSummary{Kind: string(w.Kind), Start: w.Start, End: w.End})
	}
	for _, w := range day.Minor {
		out = append(out, WindowSummary{Kind: string(w.Kind), Start: w.Start, End: w.End})
	}
	return out
}

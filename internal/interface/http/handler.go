package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anglerworks/fishcast/internal/domain/astro"
	"github.com/anglerworks/fishcast/internal/domain/fishcast"
	"github.com/anglerworks/fishcast/internal/domain/nightcast"
	apperrors "github.com/anglerworks/fishcast/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	daySvc    fishcast.Service
	nightSvc  nightcast.Service
	astroCalc *astro.Calculator
	logger    *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(daySvc fishcast.Service, nightSvc nightcast.Service, astroCalc *astro.Calculator, logger *slog.Logger) *Handler {
	return &Handler{
		daySvc:    daySvc,
		nightSvc:  nightSvc,
		astroCalc: astroCalc,
		logger:    logger.With("component", "http.handler"),
	}
}

// FishCast computes the daytime activity score from the posted snapshots.
func (h *Handler) FishCast(c *gin.Context) {
	var req fishcast.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.daySvc.Score(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "fishcast_failed"
		if apperrors.IsCode(err, apperrors.CodeInvalidInput) {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// NightCast computes the nighttime score and the ranked species list.
func (h *Handler) NightCast(c *gin.Context) {
	var req nightcast.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.nightSvc.Score(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "nightcast_failed"
		if apperrors.IsCode(err, apperrors.CodeInvalidInput) {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

type astroResponse struct {
	Date           string                   `json:"date"`
	Solar          fishcast.SolarSummary    `json:"solar"`
	Moon           fishcast.MoonSummary     `json:"moon"`
	SolunarWindows []fishcast.WindowSummary `json:"solunarWindows"`
}

// Astro exposes the raw astronomical data for a location and date.
func (h *Handler) Astro(c *gin.Context) {
	lat, err := parseCoordinate(c.Query("lat"), -90, 90)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "lat must be a number within [-90, 90]", err))
		return
	}
	lon, err := parseCoordinate(c.Query("lon"), -180, 180)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "lon must be a number within [-180, 180]", err))
		return
	}
	date, err := parseDate(c.Query("date"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "date must be formatted as YYYY-MM-DD", err))
		return
	}

	solar := h.astroCalc.SolarTimes(lat, lon, date)
	phase := h.astroCalc.MoonPhase(date)
	windows := h.astroCalc.SolunarWindows(solar, date)

	summaries := make([]fishcast.WindowSummary, 0, len(windows.Major)+len(windows.Minor))
	for _, w := range append(windows.Major, windows.Minor...) {
		summaries = append(summaries, fishcast.WindowSummary{Kind: string(w.Kind), Start: w.Start, End: w.End})
	}

	c.JSON(http.StatusOK, astroResponse{
		Date: date.Format("2006-01-02"),
		Solar: fishcast.SolarSummary{
			SunriseMinutes:   solar.SunriseMinutes,
			SunsetMinutes:    solar.SunsetMinutes,
			SolarNoonMinutes: solar.SolarNoonMinutes,
		},
		Moon: fishcast.MoonSummary{
			Fraction:            phase.Fraction,
			IlluminationPercent: phase.IlluminationPercent,
			Name:                string(phase.Name),
		},
		SolunarWindows: summaries,
	})
}

// Health responds to liveness probes.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseCoordinate(raw string, min, max float64) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if v < min || v > max {
		return 0, apperrors.Wrap(apperrors.CodeInvalidInput, "coordinate out of range", nil)
	}
	return v, nil
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", raw)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

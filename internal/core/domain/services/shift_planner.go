package services

import (
	"log/slog"
	"strings"
	"time"

	"routesync/internal/core/domain/model/shift"
	"routesync/internal/pkg/clock"
)

// estimatedStartLayout is the layout accepted for timestamps without a zone
// offset. Offset-carrying timestamps are parsed as RFC 3339.
const estimatedStartLayout = "2006-01-02T15:04:05"

// RouteTiming carries the timing metrics produced by the routing engine for
// a computed route.
type RouteTiming struct {
	// DurationSeconds is the total driving time of the route.
	DurationSeconds int64
	// EstimatedStartISO is the projected departure timestamp in ISO 8601
	// form. It may be empty or malformed; the planner falls back to the
	// current time in that case.
	EstimatedStartISO string
}

// ShiftPlan is the timing a dynamic shift should be scheduled with.
type ShiftPlan struct {
	// StartAt is the planned departure instant.
	StartAt time.Time
	// DurationMinutes is the shift length, never below the legal minimum.
	DurationMinutes int
	// StartFellBack reports whether StartAt was substituted with the
	// current time because the estimated start could not be parsed.
	StartFellBack bool
}

// ShiftPlanner is a domain service that translates route timing metrics into
// a schedulable shift plan.
//
// Business rules:
//   - The shift duration is the route duration rounded down to whole minutes
//   - Durations below the legal minimum are raised to shift.MinDurationMinutes
//   - An unparseable estimated start falls back to the current time
type ShiftPlanner struct {
	clock  clock.Clock
	logger *slog.Logger
}

// NewShiftPlanner creates a ShiftPlanner using the given clock for fallback
// start times.
func NewShiftPlanner(clk clock.Clock, logger *slog.Logger) ShiftPlanner {
	if logger == nil {
		logger = slog.Default()
	}
	return ShiftPlanner{clock: clk, logger: logger}
}

// Plan derives the shift timing for the given route metrics.
func (p ShiftPlanner) Plan(timing RouteTiming) ShiftPlan {
	durationMinutes := int(timing.DurationSeconds / 60)
	if durationMinutes < shift.MinDurationMinutes {
		durationMinutes = shift.MinDurationMinutes
	}

	startAt, err := parseEstimatedStart(timing.EstimatedStartISO)
	if err != nil {
		p.logger.Warn("estimated start is not parseable, falling back to current time",
			"estimatedStart", timing.EstimatedStartISO,
			"error", err)
		return ShiftPlan{
			StartAt:         p.clock.Now(),
			DurationMinutes: durationMinutes,
			StartFellBack:   true,
		}
	}

	return ShiftPlan{
		StartAt:         startAt,
		DurationMinutes: durationMinutes,
	}
}

// parseEstimatedStart accepts RFC 3339 timestamps (a trailing "Z" included)
// as well as zone-less timestamps, which are taken as UTC.
func parseEstimatedStart(value string) (time.Time, error) {
	if strings.ContainsAny(value, "Z+") || strings.Count(value, "-") > 2 {
		return time.Parse(time.RFC3339, value)
	}
	return time.ParseInLocation(estimatedStartLayout, value, time.UTC)
}

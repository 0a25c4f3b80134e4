// Package season models the NFL calendar: season type codes, per-type week
// ranges, and week-by-week navigation across season boundaries.
package season

import (
	"fmt"

	"github.com/lightscore/nfl-playoff-service/internal/domain/games"
	"github.com/lightscore/nfl-playoff-service/internal/playoffs"
)

// Navigation directions accepted by Navigate.
const (
	DirectionNext = "next"
	DirectionPrev = "prev"
)

// weekRange is the inclusive week span of one season type.
type weekRange struct {
	min int
	max int
}

var seasonLimits = map[int]weekRange{
	playoffs.SeasonTypePreseason:  {min: 1, max: 4},
	playoffs.SeasonTypeRegular:    {min: 1, max: 18},
	playoffs.SeasonTypePostseason: {min: 1, max: 4},
}

// defaultLimits covers unknown season type codes.
var defaultLimits = weekRange{min: 1, max: 18}

// Limits reports the valid week range for a season type.
func Limits(seasonType int) (min, max int) {
	r, ok := seasonLimits[seasonType]
	if !ok {
		r = defaultLimits
	}
	return r.min, r.max
}

// Navigate steps one week forward or backward from the given context,
// crossing season type boundaries where needed: preseason rolls into the
// regular season, the regular season into the postseason, and the
// postseason into next year's preseason (and the reverse going backward).
func Navigate(ctx games.WeekContext, direction string) (games.WeekContext, error) {
	limits, ok := seasonLimits[ctx.SeasonType]
	if !ok {
		limits = defaultLimits
	}

	switch direction {
	case DirectionNext:
		if ctx.Week < limits.max {
			return games.WeekContext{Year: ctx.Year, Week: ctx.Week + 1, SeasonType: ctx.SeasonType}, nil
		}
		switch ctx.SeasonType {
		case playoffs.SeasonTypePreseason:
			return games.WeekContext{Year: ctx.Year, Week: 1, SeasonType: playoffs.SeasonTypeRegular}, nil
		case playoffs.SeasonTypeRegular:
			return games.WeekContext{Year: ctx.Year, Week: 1, SeasonType: playoffs.SeasonTypePostseason}, nil
		default:
			return games.WeekContext{Year: ctx.Year + 1, Week: 1, SeasonType: playoffs.SeasonTypePreseason}, nil
		}
	case DirectionPrev:
		if ctx.Week > limits.min {
			return games.WeekContext{Year: ctx.Year, Week: ctx.Week - 1, SeasonType: ctx.SeasonType}, nil
		}
		switch ctx.SeasonType {
		case playoffs.SeasonTypePreseason:
			return games.WeekContext{Year: ctx.Year - 1, Week: 4, SeasonType: playoffs.SeasonTypePostseason}, nil
		case playoffs.SeasonTypeRegular:
			return games.WeekContext{Year: ctx.Year, Week: 4, SeasonType: playoffs.SeasonTypePreseason}, nil
		default:
			return games.WeekContext{Year: ctx.Year, Week: 18, SeasonType: playoffs.SeasonTypeRegular}, nil
		}
	default:
		return games.WeekContext{}, fmt.Errorf("direction must be %q or %q, got %q", DirectionNext, DirectionPrev, direction)
	}
}

// ClampContext forces a context into plausible bounds, substituting the
// defaults the upstream feed would imply for out-of-range values.
func ClampContext(ctx games.WeekContext) games.WeekContext {
	if ctx.Year < 1970 || ctx.Year > 2030 {
		ctx.Year = DefaultYear
	}
	if _, ok := seasonLimits[ctx.SeasonType]; !ok {
		ctx.SeasonType = playoffs.SeasonTypeRegular
	}
	if ctx.Week < 1 || ctx.Week > MaxWeek {
		ctx.Week = 1
	}
	return ctx
}

const (
	// DefaultYear substitutes for missing or implausible season years.
	DefaultYear = 2025
	// MaxWeek is the largest week number any season type can carry.
	MaxWeek = 25
)

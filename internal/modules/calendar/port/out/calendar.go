package out

import (
	"context"

	"flowstreak/internal/modules/calendar/domain"
)

// DaySource supplies per-day activity keyed by YYYY-MM-DD.
type DaySource interface {
	Days(ctx context.Context) (map[string]domain.Activity, error)
}

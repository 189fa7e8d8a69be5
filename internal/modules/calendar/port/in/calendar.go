package in

import (
	"context"

	"flowstreak/internal/modules/calendar/dto"
)

type Usecase interface {
	Month(ctx context.Context, input dto.MonthInput) (dto.MonthOutput, error)
	Day(ctx context.Context, input dto.DayInput) (dto.DayOutput, error)
}

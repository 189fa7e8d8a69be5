package in

import (
	"context"

	calendardto "flowstreak/internal/modules/calendar/dto"
	calendarin "flowstreak/internal/modules/calendar/port/in"
)

type CLIHandler struct {
	usecase calendarin.Usecase
}

func NewCLIHandler(usecase calendarin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Month(ctx context.Context, offset int) (calendardto.MonthOutput, error) {
	return h.usecase.Month(ctx, calendardto.MonthInput{Offset: offset})
}

func (h CLIHandler) Day(ctx context.Context, date string, offset int) (calendardto.DayOutput, error) {
	return h.usecase.Day(ctx, calendardto.DayInput{Date: date, Offset: offset})
}

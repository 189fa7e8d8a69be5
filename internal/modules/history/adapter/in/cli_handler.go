package in

import (
	"context"

	historydto "flowstreak/internal/modules/history/dto"
	historyin "flowstreak/internal/modules/history/port/in"
)

type CLIHandler struct {
	usecase historyin.Usecase
}

func NewCLIHandler(usecase historyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Record(ctx context.Context, minutes int) (historydto.RecordOutput, error) {
	return h.usecase.Record(ctx, historydto.RecordInput{Minutes: minutes})
}

func (h CLIHandler) Days(ctx context.Context) ([]historydto.DayOutput, error) {
	return h.usecase.Days(ctx)
}

func (h CLIHandler) Today(ctx context.Context) (historydto.TodayOutput, error) {
	return h.usecase.Today(ctx)
}

func (h CLIHandler) Overview(ctx context.Context) (historydto.OverviewOutput, error) {
	return h.usecase.Overview(ctx)
}

func (h CLIHandler) Export(ctx context.Context, format string) ([]byte, error) {
	return h.usecase.Export(ctx, historydto.ExportInput{Format: format})
}

func (h CLIHandler) Check(ctx context.Context) (historydto.CheckOutput, error) {
	return h.usecase.Check(ctx)
}

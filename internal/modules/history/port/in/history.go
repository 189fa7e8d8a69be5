package in

import (
	"context"

	"flowstreak/internal/modules/history/dto"
)

type Usecase interface {
	Record(ctx context.Context, input dto.RecordInput) (dto.RecordOutput, error)
	Days(ctx context.Context) ([]dto.DayOutput, error)
	Today(ctx context.Context) (dto.TodayOutput, error)
	Overview(ctx context.Context) (dto.OverviewOutput, error)
	Export(ctx context.Context, input dto.ExportInput) ([]byte, error)
	Check(ctx context.Context) (dto.CheckOutput, error)
}

package in

import (
	"context"

	"flowstreak/internal/modules/timer/dto"
)

type Usecase interface {
	Start(ctx context.Context) dto.StateOutput
	Pause(ctx context.Context) dto.StateOutput
	Toggle(ctx context.Context) dto.StateOutput
	Reset(ctx context.Context) dto.StateOutput
	QuickSet(ctx context.Context, input dto.QuickSetInput) (dto.StateOutput, error)
	Tick(ctx context.Context) dto.TickOutput
	State() dto.StateOutput
	// Run counts down in the foreground until completion or ctx cancellation.
	Run(ctx context.Context, input dto.RunInput, onTick func(dto.StateOutput)) (dto.RunOutput, error)
	Active(ctx context.Context) (dto.ActiveRunOutput, error)
}

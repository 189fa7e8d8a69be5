package in

import (
	"context"

	timerdto "flowstreak/internal/modules/timer/dto"
	timerin "flowstreak/internal/modules/timer/port/in"
)

type CLIHandler struct {
	usecase timerin.Usecase
}

func NewCLIHandler(usecase timerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Run(ctx context.Context, minutes int, onTick func(timerdto.StateOutput)) (timerdto.RunOutput, error) {
	return h.usecase.Run(ctx, timerdto.RunInput{Minutes: minutes}, onTick)
}

func (h CLIHandler) Status(ctx context.Context) (timerdto.ActiveRunOutput, error) {
	return h.usecase.Active(ctx)
}

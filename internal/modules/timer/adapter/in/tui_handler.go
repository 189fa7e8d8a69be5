package in

import (
	"context"

	timerdto "flowstreak/internal/modules/timer/dto"
	timerin "flowstreak/internal/modules/timer/port/in"
)

type TUIHandler struct {
	usecase timerin.Usecase
}

func NewTUIHandler(usecase timerin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Toggle(ctx context.Context) timerdto.StateOutput {
	return h.usecase.Toggle(ctx)
}

func (h TUIHandler) Reset(ctx context.Context) timerdto.StateOutput {
	return h.usecase.Reset(ctx)
}

func (h TUIHandler) QuickSet(ctx context.Context, minutes int) (timerdto.StateOutput, error) {
	return h.usecase.QuickSet(ctx, timerdto.QuickSetInput{Minutes: minutes})
}

func (h TUIHandler) Tick(ctx context.Context) timerdto.TickOutput {
	return h.usecase.Tick(ctx)
}

func (h TUIHandler) State() timerdto.StateOutput {
	return h.usecase.State()
}

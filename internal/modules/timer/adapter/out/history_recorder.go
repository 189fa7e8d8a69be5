package out

import (
	"context"

	historydto "flowstreak/internal/modules/history/dto"
	historyin "flowstreak/internal/modules/history/port/in"
	timerout "flowstreak/internal/modules/timer/port/out"
)

type HistoryRecorder struct {
	history historyin.Usecase
}

func NewHistoryRecorder(history historyin.Usecase) timerout.CompletionRecorder {
	return &HistoryRecorder{history: history}
}

func (r *HistoryRecorder) RecordCompletion(ctx context.Context, minutes int) error {
	_, err := r.history.Record(ctx, historydto.RecordInput{Minutes: minutes})
	return err
}

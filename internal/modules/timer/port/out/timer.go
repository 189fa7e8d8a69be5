package out

import (
	"context"

	"flowstreak/internal/modules/timer/domain"
)

// CompletionRecorder credits a finished session to the history.
type CompletionRecorder interface {
	RecordCompletion(ctx context.Context, minutes int) error
}

type Notifier interface {
	Notify(ctx context.Context) error
}

type ActiveRunStore interface {
	Save(ctx context.Context, run domain.ActiveRun) error
	Load(ctx context.Context) (domain.ActiveRun, error)
	Clear(ctx context.Context) error
}

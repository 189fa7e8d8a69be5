package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"flowstreak/internal/modules/timer/domain"
	timerout "flowstreak/internal/modules/timer/port/out"
	apperrors "flowstreak/internal/platform/errors"
	"flowstreak/internal/platform/kv"
)

const activeRunKey = "activeTimer"

type KVActiveRunStore struct {
	kv kv.Store
}

func NewKVActiveRunStore(store kv.Store) timerout.ActiveRunStore {
	return &KVActiveRunStore{kv: store}
}

func (s *KVActiveRunStore) Save(ctx context.Context, run domain.ActiveRun) error {
	payload, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshal active timer: %w", err)
	}
	return s.kv.Set(ctx, activeRunKey, string(payload))
}

func (s *KVActiveRunStore) Load(ctx context.Context) (domain.ActiveRun, error) {
	raw, err := s.kv.Get(ctx, activeRunKey)
	if errors.Is(err, apperrors.ErrNotFound) {
		return domain.ActiveRun{}, apperrors.ErrNoActiveRun
	}
	if err != nil {
		return domain.ActiveRun{}, fmt.Errorf("read active timer: %w", err)
	}
	run := domain.ActiveRun{}
	if err := json.Unmarshal([]byte(raw), &run); err != nil {
		return domain.ActiveRun{}, fmt.Errorf("decode active timer: %w", err)
	}
	if run.RunID == "" {
		return domain.ActiveRun{}, apperrors.ErrNoActiveRun
	}
	return run, nil
}

func (s *KVActiveRunStore) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, activeRunKey)
}

package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"flowstreak/internal/modules/history/domain"
	historyout "flowstreak/internal/modules/history/port/out"
	apperrors "flowstreak/internal/platform/errors"
	"flowstreak/internal/platform/kv"
)

// KVHistoryStore keeps the history as one JSON object under the sessionHistory key.
type KVHistoryStore struct {
	kv kv.Store
}

func NewKVHistoryStore(store kv.Store) historyout.HistoryStore {
	return &KVHistoryStore{kv: store}
}

func (s *KVHistoryStore) Load(ctx context.Context) (domain.History, error) {
	raw, found, err := s.LoadRaw(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		return domain.History{}, nil
	}
	return decode(raw)
}

func (s *KVHistoryStore) LoadRaw(ctx context.Context) (string, bool, error) {
	raw, err := s.kv.Get(ctx, domain.HistoryKey)
	if errors.Is(err, apperrors.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load session history: %w", err)
	}
	return raw, true, nil
}

func (s *KVHistoryStore) Update(ctx context.Context, fn func(domain.History) error) error {
	return s.kv.Update(ctx, domain.HistoryKey, func(current string, found bool) (string, error) {
		h := domain.History{}
		if found {
			decoded, err := decode(current)
			if err != nil {
				return "", err
			}
			h = decoded
		}
		if err := fn(h); err != nil {
			return "", err
		}
		payload, err := json.Marshal(h)
		if err != nil {
			return "", fmt.Errorf("encode session history: %w", err)
		}
		return string(payload), nil
	})
}

func decode(raw string) (domain.History, error) {
	h := domain.History{}
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCorruptHistory, err)
	}
	if h == nil {
		// "null" decodes to a nil map.
		h = domain.History{}
	}
	return h, nil
}

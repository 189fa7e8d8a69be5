package out

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"flowstreak/internal/modules/history/domain"
	historyout "flowstreak/internal/modules/history/port/out"
	apperrors "flowstreak/internal/platform/errors"
	"flowstreak/internal/platform/kv"
)

type KVLegacyCounterStore struct {
	kv kv.Store
}

func NewKVLegacyCounterStore(store kv.Store) historyout.LegacyCounterStore {
	return &KVLegacyCounterStore{kv: store}
}

// LoadLegacy reads the old counters. Unparseable values count as zero, like the app that wrote them.
func (s *KVLegacyCounterStore) LoadLegacy(ctx context.Context) (domain.LegacyCounters, error) {
	out := domain.LegacyCounters{}
	for key, dst := range map[string]*int{
		domain.LegacySessionsKey: &out.Sessions,
		domain.LegacyMinutesKey:  &out.TotalMinutes,
	} {
		raw, err := s.kv.Get(ctx, key)
		if errors.Is(err, apperrors.ErrNotFound) {
			continue
		}
		if err != nil {
			return domain.LegacyCounters{}, fmt.Errorf("load legacy %s: %w", key, err)
		}
		out.Present = true
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			*dst = n
		}
	}
	return out, nil
}

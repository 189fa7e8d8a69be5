package service

import (
	"context"
	"fmt"

	"flowstreak/internal/modules/history/domain"
	historyout "flowstreak/internal/modules/history/port/out"
	"flowstreak/internal/platform/clock"
	apperrors "flowstreak/internal/platform/errors"
)

type HistoryService struct {
	clock clock.Clock
	store historyout.HistoryStore
}

func NewHistoryService(clock clock.Clock, store historyout.HistoryStore) *HistoryService {
	return &HistoryService{clock: clock, store: store}
}

// Record adds minutes to today's entry and returns the day key and its new total.
func (s *HistoryService) Record(ctx context.Context, minutes int) (string, int, error) {
	if minutes <= 0 {
		return "", 0, fmt.Errorf("%w: minutes must be positive", apperrors.ErrInvalidInput)
	}
	date := domain.DayKey(s.clock.Now())
	total := 0
	err := s.store.Update(ctx, func(h domain.History) error {
		h[date] += minutes
		total = h[date]
		return nil
	})
	if err != nil {
		return "", 0, err
	}
	return date, total, nil
}

func (s *HistoryService) Load(ctx context.Context) (domain.History, error) {
	return s.store.Load(ctx)
}

// Days returns the aggregated history, most recent first.
func (s *HistoryService) Days(ctx context.Context) ([]domain.CalendarDay, error) {
	h, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	days := domain.Aggregate(h)
	domain.SortDesc(days)
	return days, nil
}

func (s *HistoryService) Today() string {
	return domain.DayKey(s.clock.Now())
}

func (s *HistoryService) Streak(days []domain.CalendarDay) int {
	return domain.Streak(days, s.clock.Now())
}

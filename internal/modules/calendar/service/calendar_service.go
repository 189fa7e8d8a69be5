package service

import (
	"context"
	"fmt"

	"flowstreak/internal/modules/calendar/domain"
	calendarout "flowstreak/internal/modules/calendar/port/out"
	"flowstreak/internal/platform/clock"
	apperrors "flowstreak/internal/platform/errors"
)

type CalendarService struct {
	clock  clock.Clock
	source calendarout.DaySource
}

func NewCalendarService(clock clock.Clock, source calendarout.DaySource) *CalendarService {
	return &CalendarService{clock: clock, source: source}
}

func (s *CalendarService) Month(ctx context.Context, offset int) (domain.Month, map[string]domain.Activity, error) {
	days, err := s.source.Days(ctx)
	if err != nil {
		return domain.Month{}, nil, err
	}
	return domain.BuildMonth(days, s.clock.Now(), offset), days, nil
}

func (s *CalendarService) Day(ctx context.Context, date string, offset int) (domain.DayDetail, error) {
	month, days, err := s.Month(ctx, offset)
	if err != nil {
		return domain.DayDetail{}, err
	}
	detail, err := domain.Detail(date, days, s.clock.Now(), month)
	if err != nil {
		return domain.DayDetail{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return detail, nil
}

package out

import (
	"context"

	"flowstreak/internal/modules/calendar/domain"
	calendarout "flowstreak/internal/modules/calendar/port/out"
	historyin "flowstreak/internal/modules/history/port/in"
)

type HistoryDaySource struct {
	history historyin.Usecase
}

func NewHistoryDaySource(history historyin.Usecase) calendarout.DaySource {
	return &HistoryDaySource{history: history}
}

func (s *HistoryDaySource) Days(ctx context.Context) (map[string]domain.Activity, error) {
	days, err := s.history.Days(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.Activity, len(days))
	for _, d := range days {
		out[d.Date] = domain.Activity{Minutes: d.Minutes, Level: d.Level, Sessions: d.Sessions}
	}
	return out, nil
}

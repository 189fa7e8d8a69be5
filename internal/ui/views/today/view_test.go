package today_test

import (
	"errors"
	"strings"
	"testing"

	historydto "flowstreak/internal/modules/history/dto"
	"flowstreak/internal/ui/views/today"
)

func TestLoadErrorFallsBackToZeros(t *testing.T) {
	t.Parallel()
	m := today.New(nil)
	m, _ = m.Update(today.LoadedMsg{Overview: historydto.OverviewOutput{
		Today:         historydto.TodayOutput{Date: "2026-10-16", Minutes: 50, Sessions: 2},
		Streak:        4,
		LongestStreak: 6,
		TotalMinutes:  300,
		TotalSessions: 12,
		ActiveDays:    7,
	}})
	if m.Streak() != 4 {
		t.Fatalf("expected streak 4 before the failure, got %d", m.Streak())
	}

	m, _ = m.Update(today.LoadedMsg{Err: errors.New("corrupt session history: invalid character 'x'")})
	if m.Streak() != 0 {
		t.Fatalf("expected streak 0 after a failed load, got %d", m.Streak())
	}
	view := m.View()
	if strings.Contains(view, "corrupt") || strings.Contains(view, "invalid character") || strings.Contains(view, "unavailable") {
		t.Fatalf("view leaks the load error:\n%s", view)
	}
	if !strings.Contains(view, "0 minutes across 0 sessions on 0 days") {
		t.Fatalf("expected zero totals in view:\n%s", view)
	}
}

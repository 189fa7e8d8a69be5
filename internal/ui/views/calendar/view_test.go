package calendar_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	calendardto "flowstreak/internal/modules/calendar/dto"
	"flowstreak/internal/ui/views/calendar"
)

func sampleMonth() calendardto.MonthOutput {
	week := make([]calendardto.CellOutput, 7)
	for i := range week {
		week[i] = calendardto.CellOutput{Date: fmt.Sprintf("2026-10-%02d", i+1), Day: i + 1, IsCurrentMonth: true}
	}
	return calendardto.MonthOutput{Year: 2026, Month: 10, Title: "October 2026", Weeks: [][]calendardto.CellOutput{week}}
}

func TestMonthLoadErrorShowsEmptyGrid(t *testing.T) {
	t.Parallel()
	m := calendar.New(nil)
	m, _ = m.Update(calendar.MonthLoadedMsg{Month: sampleMonth()})
	if !strings.Contains(m.View(), "October 2026") {
		t.Fatalf("expected month title in view:\n%s", m.View())
	}

	m, _ = m.Update(calendar.MonthLoadedMsg{Err: errors.New("corrupt session history: unexpected end of JSON input")})
	view := m.View()
	if strings.Contains(view, "October 2026") {
		t.Fatalf("stale month kept after a failed load:\n%s", view)
	}
	if strings.Contains(view, "corrupt") || strings.Contains(view, "unavailable") {
		t.Fatalf("view leaks the load error:\n%s", view)
	}
}

func TestDayLoadErrorKeepsGrid(t *testing.T) {
	t.Parallel()
	m := calendar.New(nil)
	m, _ = m.Update(calendar.MonthLoadedMsg{Month: sampleMonth()})
	m, _ = m.Update(calendar.DayLoadedMsg{Err: errors.New("disk I/O error")})
	view := m.View()
	if strings.Contains(view, "disk I/O error") || strings.Contains(view, "esc close") {
		t.Fatalf("unexpected view after a failed day load:\n%s", view)
	}
	if !strings.Contains(view, "October 2026") {
		t.Fatalf("grid should stay visible:\n%s", view)
	}
}

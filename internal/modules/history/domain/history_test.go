package domain_test

import (
	"testing"
	"time"

	"flowstreak/internal/modules/history/domain"
)

var today = time.Date(2026, 10, 16, 14, 30, 0, 0, time.Local)

func day(offset int) string {
	return domain.DayKey(today.AddDate(0, 0, offset))
}

func TestLevelBreakpoints(t *testing.T) {
	t.Parallel()
	cases := map[int]int{
		-5: 0, 0: 0, 1: 1, 24: 1, 25: 2, 49: 2, 50: 3, 74: 3, 75: 4, 500: 4,
	}
	for minutes, want := range cases {
		if got := domain.LevelFor(minutes); got != want {
			t.Fatalf("LevelFor(%d) = %d, want %d", minutes, got, want)
		}
	}
}

func TestLevelIsMonotonic(t *testing.T) {
	t.Parallel()
	prev := domain.LevelFor(0)
	for m := 1; m <= 200; m++ {
		got := domain.LevelFor(m)
		if got < prev {
			t.Fatalf("level decreased at %d minutes: %d -> %d", m, prev, got)
		}
		prev = got
	}
}

func TestAggregateOneEntryPerKey(t *testing.T) {
	t.Parallel()
	history := domain.History{"2026-10-01": 25, "2026-09-03": 10, "not-a-date": 80, "2026-10-02": 0}
	days := domain.Aggregate(history)
	if len(days) != len(history) {
		t.Fatalf("expected %d days, got %d", len(history), len(days))
	}
	seen := map[string]bool{}
	for _, d := range days {
		if seen[d.Date] {
			t.Fatalf("duplicate entry for %s", d.Date)
		}
		seen[d.Date] = true
		if d.Minutes != history[d.Date] {
			t.Fatalf("minutes changed for %s: %d vs %d", d.Date, d.Minutes, history[d.Date])
		}
		if d.Level != domain.LevelFor(d.Minutes) {
			t.Fatalf("level mismatch for %s", d.Date)
		}
	}
	if !seen["not-a-date"] {
		t.Fatalf("malformed keys must pass through")
	}
}

func TestStreak(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		history domain.History
		want    int
	}{
		{name: "empty", history: domain.History{}, want: 0},
		{name: "three consecutive", history: domain.History{day(0): 25, day(-1): 25, day(-2): 25}, want: 3},
		{name: "yesterday only", history: domain.History{day(-1): 25}, want: 0},
		{name: "today zero yesterday active", history: domain.History{day(0): 0, day(-1): 25}, want: 0},
		{name: "gap", history: domain.History{day(0): 25, day(-3): 25}, want: 1},
		{name: "stale", history: domain.History{day(-5): 25, day(-6): 25}, want: 0},
		{name: "stops at first gap", history: domain.History{day(0): 5, day(-1): 5, day(-3): 5, day(-4): 5}, want: 2},
		{name: "zero minutes break the run", history: domain.History{day(0): 25, day(-1): 0, day(-2): 25}, want: 1},
		{name: "malformed keys ignored", history: domain.History{day(0): 25, "garbage": 25, day(-1): 25}, want: 2},
		{name: "future only", history: domain.History{day(1): 25}, want: 0},
	}
	for _, tc := range cases {
		days := domain.Aggregate(tc.history)
		if got := domain.Streak(days, today); got != tc.want {
			t.Fatalf("%s: streak = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestStreakAcrossMonthBoundary(t *testing.T) {
	t.Parallel()
	first := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
	days := domain.Aggregate(domain.History{"2026-03-01": 25, "2026-02-28": 25, "2026-02-27": 30})
	if got := domain.Streak(days, first); got != 3 {
		t.Fatalf("expected 3 across month boundary, got %d", got)
	}
}

func TestLongestStreak(t *testing.T) {
	t.Parallel()
	history := domain.History{
		"2026-01-01": 25, "2026-01-02": 25, "2026-01-03": 25, "2026-01-04": 25,
		"2026-02-10": 25, "2026-02-11": 25,
		"2026-03-05": 0,
	}
	if got := domain.LongestStreak(domain.Aggregate(history)); got != 4 {
		t.Fatalf("expected longest 4, got %d", got)
	}
	if got := domain.LongestStreak(nil); got != 0 {
		t.Fatalf("expected 0 for empty, got %d", got)
	}
}

func TestSessionsFor(t *testing.T) {
	t.Parallel()
	cases := map[int]int{0: 0, 1: 1, 25: 1, 26: 2, 50: 2, 75: 3}
	for minutes, want := range cases {
		if got := domain.SessionsFor(minutes); got != want {
			t.Fatalf("SessionsFor(%d) = %d, want %d", minutes, got, want)
		}
	}
}

func TestSortDesc(t *testing.T) {
	t.Parallel()
	days := []domain.CalendarDay{{Date: "2026-01-02"}, {Date: "bad"}, {Date: "2026-03-01"}, {Date: "2025-12-31"}}
	domain.SortDesc(days)
	want := []string{"2026-03-01", "2026-01-02", "2025-12-31", "bad"}
	for i, d := range days {
		if d.Date != want[i] {
			t.Fatalf("position %d: got %s, want %s", i, d.Date, want[i])
		}
	}
}

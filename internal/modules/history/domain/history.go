package domain

import (
	"sort"
	"time"
)

const (
	// DateLayout is the zero-padded local calendar day used as the history key.
	DateLayout = "2006-01-02"

	// SessionMinutes is the nominal length of one focus session.
	SessionMinutes = 25

	MaxLevel = 4
)

// History maps a local calendar day to the minutes accumulated on it.
type History map[string]int

type CalendarDay struct {
	Date    string
	Minutes int
	Level   int
}

// LevelFor buckets minutes into five intensity tiers with breakpoints at 0, 25, 50 and 75.
func LevelFor(minutes int) int {
	switch {
	case minutes <= 0:
		return 0
	case minutes < 25:
		return 1
	case minutes < 50:
		return 2
	case minutes < 75:
		return 3
	default:
		return MaxLevel
	}
}

// SessionsFor converts minutes into a session count, rounding partial sessions up.
func SessionsFor(minutes int) int {
	if minutes <= 0 {
		return 0
	}
	return (minutes + SessionMinutes - 1) / SessionMinutes
}

// DayKey formats t as a history key in t's own location.
func DayKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDay parses a history key as a UTC midnight so day arithmetic ignores DST.
func ParseDay(key string) (time.Time, error) {
	return time.Parse(DateLayout, key)
}

// Aggregate returns one CalendarDay per history key. Keys are passed through unvalidated
// and the order is unspecified.
func Aggregate(history History) []CalendarDay {
	out := make([]CalendarDay, 0, len(history))
	for date, minutes := range history {
		out = append(out, CalendarDay{Date: date, Minutes: minutes, Level: LevelFor(minutes)})
	}
	return out
}

// Streak counts consecutive active days ending today. A run whose most recent day is
// yesterday does not count: only an unbroken run that includes today is a streak.
func Streak(days []CalendarDay, today time.Time) int {
	active := activeDaysDesc(days)
	if len(active) == 0 {
		return 0
	}
	todayDay, err := ParseDay(DayKey(today))
	if err != nil {
		return 0
	}

	mostRecent := active[0]
	if daysBetween(todayDay, mostRecent) > 1 {
		return 0
	}
	if !mostRecent.Equal(todayDay) {
		return 0
	}

	streak := 1
	for i := 1; i < len(active); i++ {
		if daysBetween(active[i-1], active[i]) != 1 {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak returns the longest run of consecutive active days anywhere in the history.
func LongestStreak(days []CalendarDay) int {
	active := activeDaysDesc(days)
	if len(active) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(active); i++ {
		switch daysBetween(active[i-1], active[i]) {
		case 0:
			continue
		case 1:
			run++
		default:
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// SortDesc orders days most recent first. Unparseable dates sort last, lexicographically.
func SortDesc(days []CalendarDay) {
	sort.SliceStable(days, func(i, j int) bool {
		a, errA := ParseDay(days[i].Date)
		b, errB := ParseDay(days[j].Date)
		switch {
		case errA == nil && errB == nil:
			return a.After(b)
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return days[i].Date > days[j].Date
		}
	})
}

func activeDaysDesc(days []CalendarDay) []time.Time {
	active := make([]time.Time, 0, len(days))
	for _, d := range days {
		if d.Minutes <= 0 {
			continue
		}
		t, err := ParseDay(d.Date)
		if err != nil {
			continue
		}
		active = append(active, t)
	}
	sort.Slice(active, func(i, j int) bool { return active[i].After(active[j]) })
	return active
}

func daysBetween(later, earlier time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}

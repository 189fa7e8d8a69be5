package domain

import (
	"fmt"
	"time"
)

const (
	// MaxOffset bounds month navigation in both directions.
	MaxOffset = 12

	dateLayout = "2006-01-02"
)

var Weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Activity is what the grid needs to know about one day of history.
type Activity struct {
	Minutes  int
	Level    int
	Sessions int
}

type Cell struct {
	Date           string
	Day            int
	Minutes        int
	Level          int
	IsCurrentMonth bool
	IsFuture       bool
	IsToday        bool
}

// DisplayLevel is the level used for colouring: filler and future cells always show as empty.
func (c Cell) DisplayLevel() int {
	if !c.IsCurrentMonth || c.IsFuture {
		return 0
	}
	return c.Level
}

// Dimmed reports whether the cell is drawn faded.
func (c Cell) Dimmed() bool {
	return !c.IsCurrentMonth || c.IsFuture
}

type Month struct {
	Year    int
	Month   time.Month
	Offset  int
	Title   string
	Weeks   [][]Cell
	CanPrev bool
	CanNext bool
}

func ClampOffset(offset int) int {
	if offset < -MaxOffset {
		return -MaxOffset
	}
	if offset > MaxOffset {
		return MaxOffset
	}
	return offset
}

// BuildMonth lays out the Sunday-first grid for the month offset months from today's month.
// Leading and trailing cells come from the adjacent months so every week has seven cells.
func BuildMonth(days map[string]Activity, today time.Time, offset int) Month {
	offset = ClampOffset(offset)
	todayKey := today.Format(dateLayout)
	first := time.Date(today.Year(), today.Month()+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	start := first.AddDate(0, 0, -int(first.Weekday()))
	weeks := make([][]Cell, 0, 6)
	for cursor := start; cursor.Before(next); {
		week := make([]Cell, 0, 7)
		for i := 0; i < 7; i++ {
			key := cursor.Format(dateLayout)
			activity := days[key]
			week = append(week, Cell{
				Date:           key,
				Day:            cursor.Day(),
				Minutes:        activity.Minutes,
				Level:          activity.Level,
				IsCurrentMonth: cursor.Month() == first.Month(),
				IsFuture:       key > todayKey,
				IsToday:        key == todayKey,
			})
			cursor = cursor.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}

	return Month{
		Year:    first.Year(),
		Month:   first.Month(),
		Offset:  offset,
		Title:   fmt.Sprintf("%s %d", first.Month(), first.Year()),
		Weeks:   weeks,
		CanPrev: offset > -MaxOffset,
		CanNext: offset < MaxOffset,
	}
}

// DayDetail describes one day. OtherMonth is set when the day lies outside the viewed month.
type DayDetail struct {
	Date       string
	Weekday    string
	LongDate   string
	Minutes    int
	Sessions   int
	Level      int
	IsToday    bool
	IsFuture   bool
	OtherMonth bool
	NoActivity bool
}

func Detail(date string, days map[string]Activity, today time.Time, viewed Month) (DayDetail, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return DayDetail{}, fmt.Errorf("parse date %q: %w", date, err)
	}
	key := day.Format(dateLayout)
	todayKey := today.Format(dateLayout)
	activity := days[key]
	return DayDetail{
		Date:       key,
		Weekday:    day.Weekday().String(),
		LongDate:   day.Format("January 2, 2006"),
		Minutes:    activity.Minutes,
		Sessions:   activity.Sessions,
		Level:      activity.Level,
		IsToday:    key == todayKey,
		IsFuture:   key > todayKey,
		OtherMonth: day.Year() != viewed.Year || day.Month() != viewed.Month,
		NoActivity: activity.Minutes == 0,
	}, nil
}

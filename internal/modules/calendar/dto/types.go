package dto

type MonthInput struct {
	Offset int
}

type CellOutput struct {
	Date           string
	Day            int
	Minutes        int
	Level          int
	DisplayLevel   int
	IsCurrentMonth bool
	IsFuture       bool
	IsToday        bool
	Dimmed         bool
}

type MonthOutput struct {
	Year     int
	Month    int
	Title    string
	Offset   int
	CanPrev  bool
	CanNext  bool
	Weekdays []string
	Weeks    [][]CellOutput
}

type DayInput struct {
	Date string
	// Offset selects the viewed month; it only affects OtherMonth.
	Offset int
}

type DayOutput struct {
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

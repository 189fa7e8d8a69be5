package dto

type RecordInput struct {
	Minutes int
}

type RecordOutput struct {
	Date    string
	Added   int
	Minutes int
}

type DayOutput struct {
	Date     string
	Minutes  int
	Level    int
	Sessions int
}

type TodayOutput struct {
	Date     string
	Minutes  int
	Sessions int
}

type OverviewOutput struct {
	Today         TodayOutput
	Streak        int
	LongestStreak int
	TotalMinutes  int
	TotalSessions int
	ActiveDays    int
}

type ExportInput struct {
	Format string
}

type CheckOutput struct {
	HistoryFound bool
	SchemaValid  bool
	Problems     []string
	Days         int

	LegacyPresent      bool
	LegacySessions     int
	LegacyTotalMinutes int
	// DerivedSessions is what the history implies, for comparison with the legacy counter.
	DerivedSessions int
}

package domain

// LegacyCounters are the `sessions` and `totalMinutes` keys older builds wrote next to the
// history. They are never written and never used for display.
type LegacyCounters struct {
	Present      bool
	Sessions     int
	TotalMinutes int
}

// Keys under which state lives in the key-value store.
const (
	HistoryKey        = "sessionHistory"
	LegacySessionsKey = "sessions"
	LegacyMinutesKey  = "totalMinutes"
)

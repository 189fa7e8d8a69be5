package dto

import "time"

type StateOutput struct {
	Status    string
	Remaining int
	Preset    int
	Clock     string
	Progress  float64
	RunID     string
}

type QuickSetInput struct {
	Minutes int
}

type TickOutput struct {
	State     StateOutput
	Completed bool
	// Recorded is true when the completion reached the history store.
	Recorded bool
}

type RunInput struct {
	Minutes int
}

type RunOutput struct {
	RunID     string
	Completed bool
	Recorded  bool
	Credited  int
}

type ActiveRunOutput struct {
	RunID            string
	Status           string
	PresetSeconds    int
	RemainingSeconds int
	UpdatedAt        time.Time
}

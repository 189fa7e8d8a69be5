package domain

import (
	"fmt"
	"time"
)

// DefaultDuration is the Pomodoro preset in seconds.
const DefaultDuration = 1500

type Status string

const (
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
)

// Timer is the countdown state machine. It holds no clock: one Tick is one elapsed second.
type Timer struct {
	Status    Status
	Remaining int
	Preset    int
}

func NewTimer() Timer {
	return Timer{Status: StatusIdle, Remaining: DefaultDuration, Preset: DefaultDuration}
}

func (t Timer) Running() bool {
	return t.Status == StatusRunning
}

func (t *Timer) Start() {
	if t.Remaining <= 0 {
		t.Remaining = t.Preset
	}
	t.Status = StatusRunning
}

func (t *Timer) Pause() {
	if t.Status == StatusRunning {
		t.Status = StatusPaused
	}
}

func (t *Timer) Toggle() {
	if t.Running() {
		t.Pause()
		return
	}
	t.Start()
}

func (t *Timer) Reset() {
	*t = NewTimer()
}

// QuickSet replaces the preset and stops the countdown.
func (t *Timer) QuickSet(seconds int) error {
	if seconds <= 0 {
		return fmt.Errorf("duration must be positive, got %d", seconds)
	}
	t.Status = StatusIdle
	t.Preset = seconds
	t.Remaining = seconds
	return nil
}

// Tick advances a running timer by one second and reports whether it just completed.
// A completed timer is back to its default state.
func (t *Timer) Tick() bool {
	if !t.Running() || t.Remaining <= 0 {
		return false
	}
	t.Remaining--
	if t.Remaining > 0 {
		return false
	}
	t.Reset()
	return true
}

// Progress is the elapsed fraction of the current preset, in [0, 1].
func (t Timer) Progress() float64 {
	if t.Preset <= 0 {
		return 0
	}
	p := float64(t.Preset-t.Remaining) / float64(t.Preset)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// FormatClock renders seconds as MM:SS; minutes are not capped at 59.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// ActiveRun is the persisted snapshot of a timer running in some process.
type ActiveRun struct {
	RunID            string    `json:"run_id"`
	PresetSeconds    int       `json:"preset_seconds"`
	RemainingSeconds int       `json:"remaining_seconds"`
	Status           Status    `json:"status"`
	UpdatedAt        time.Time `json:"updated_at"`
}

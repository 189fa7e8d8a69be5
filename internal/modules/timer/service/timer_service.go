package service

import (
	"time"

	"flowstreak/internal/modules/timer/domain"
	"flowstreak/internal/platform/clock"
	"flowstreak/internal/platform/id"
)

type TimerService struct {
	clock          clock.Clock
	idGen          id.Generator
	sessionMinutes int
	tickInterval   time.Duration
}

// NewTimerService builds the service. sessionMinutes is what a completion credits,
// independent of the preset that was counted down.
func NewTimerService(clock clock.Clock, idGen id.Generator, sessionMinutes int, tickInterval time.Duration) *TimerService {
	if sessionMinutes <= 0 {
		sessionMinutes = domain.DefaultDuration / 60
	}
	if tickInterval <= 0 {
		tickInterval = time.Second
	}
	return &TimerService{clock: clock, idGen: idGen, sessionMinutes: sessionMinutes, tickInterval: tickInterval}
}

func (s *TimerService) NewRunID() string {
	return s.idGen.New()
}

func (s *TimerService) Snapshot(runID string, t domain.Timer) domain.ActiveRun {
	return domain.ActiveRun{
		RunID:            runID,
		PresetSeconds:    t.Preset,
		RemainingSeconds: t.Remaining,
		Status:           t.Status,
		UpdatedAt:        s.clock.Now(),
	}
}

func (s *TimerService) SessionMinutes() int {
	return s.sessionMinutes
}

func (s *TimerService) TickInterval() time.Duration {
	return s.tickInterval
}

package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"flowstreak/internal/modules/timer/domain"
	timerdto "flowstreak/internal/modules/timer/dto"
	timerin "flowstreak/internal/modules/timer/port/in"
	timerout "flowstreak/internal/modules/timer/port/out"
	"flowstreak/internal/modules/timer/service"
	apperrors "flowstreak/internal/platform/errors"
)

// snapshotEvery is how many running seconds pass between active-run snapshots.
const snapshotEvery = 60

type Interactor struct {
	svc         *service.TimerService
	recorder    timerout.CompletionRecorder
	notifier    timerout.Notifier
	activeStore timerout.ActiveRunStore
	logger      hclog.Logger

	mu    sync.Mutex
	timer domain.Timer
	runID string
}

func NewInteractor(
	svc *service.TimerService,
	recorder timerout.CompletionRecorder,
	notifier timerout.Notifier,
	activeStore timerout.ActiveRunStore,
	logger hclog.Logger,
) timerin.Usecase {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Interactor{
		svc:         svc,
		recorder:    recorder,
		notifier:    notifier,
		activeStore: activeStore,
		logger:      logger,
		timer:       domain.NewTimer(),
	}
}

func (i *Interactor) Start(ctx context.Context) timerdto.StateOutput {
	i.mu.Lock()
	if i.timer.Running() {
		state := i.stateLocked()
		i.mu.Unlock()
		return state
	}
	if i.runID == "" {
		i.runID = i.svc.NewRunID()
	}
	i.timer.Start()
	snap := i.svc.Snapshot(i.runID, i.timer)
	state := i.stateLocked()
	i.mu.Unlock()

	i.saveSnapshot(ctx, snap)
	return state
}

func (i *Interactor) Pause(ctx context.Context) timerdto.StateOutput {
	i.mu.Lock()
	if !i.timer.Running() {
		state := i.stateLocked()
		i.mu.Unlock()
		return state
	}
	i.timer.Pause()
	snap := i.svc.Snapshot(i.runID, i.timer)
	state := i.stateLocked()
	i.mu.Unlock()

	i.saveSnapshot(ctx, snap)
	return state
}

func (i *Interactor) Toggle(ctx context.Context) timerdto.StateOutput {
	i.mu.Lock()
	running := i.timer.Running()
	i.mu.Unlock()
	if running {
		return i.Pause(ctx)
	}
	return i.Start(ctx)
}

func (i *Interactor) Reset(ctx context.Context) timerdto.StateOutput {
	i.mu.Lock()
	i.timer.Reset()
	i.runID = ""
	state := i.stateLocked()
	i.mu.Unlock()

	i.clearSnapshot(ctx)
	return state
}

func (i *Interactor) QuickSet(ctx context.Context, input timerdto.QuickSetInput) (timerdto.StateOutput, error) {
	i.mu.Lock()
	if err := i.timer.QuickSet(input.Minutes * 60); err != nil {
		i.mu.Unlock()
		return timerdto.StateOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	i.runID = ""
	state := i.stateLocked()
	i.mu.Unlock()

	i.clearSnapshot(ctx)
	return state, nil
}

func (i *Interactor) Tick(ctx context.Context) timerdto.TickOutput {
	i.mu.Lock()
	runID := i.runID
	completed := i.timer.Tick()
	snapshotDue := !completed && i.timer.Running() && i.timer.Remaining%snapshotEvery == 0
	var snap domain.ActiveRun
	if snapshotDue {
		snap = i.svc.Snapshot(runID, i.timer)
	}
	if completed {
		i.runID = ""
	}
	state := i.stateLocked()
	i.mu.Unlock()

	out := timerdto.TickOutput{State: state, Completed: completed}
	switch {
	case completed:
		out.Recorded = i.complete(ctx, runID)
	case snapshotDue:
		i.saveSnapshot(ctx, snap)
	}
	return out
}

func (i *Interactor) State() timerdto.StateOutput {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.stateLocked()
}

func (i *Interactor) Run(ctx context.Context, input timerdto.RunInput, onTick func(timerdto.StateOutput)) (timerdto.RunOutput, error) {
	if input.Minutes < 0 {
		return timerdto.RunOutput{}, fmt.Errorf("%w: minutes must not be negative", apperrors.ErrInvalidInput)
	}
	if input.Minutes > 0 {
		if _, err := i.QuickSet(ctx, timerdto.QuickSetInput{Minutes: input.Minutes}); err != nil {
			return timerdto.RunOutput{}, err
		}
	}
	runID := i.Start(ctx).RunID

	ticker := time.NewTicker(i.svc.TickInterval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			i.Reset(context.WithoutCancel(ctx))
			return timerdto.RunOutput{RunID: runID}, ctx.Err()
		case <-ticker.C:
			out := i.Tick(ctx)
			if onTick != nil {
				onTick(out.State)
			}
			if out.Completed {
				credited := 0
				if out.Recorded {
					credited = i.svc.SessionMinutes()
				}
				return timerdto.RunOutput{RunID: runID, Completed: true, Recorded: out.Recorded, Credited: credited}, nil
			}
		}
	}
}

func (i *Interactor) Active(ctx context.Context) (timerdto.ActiveRunOutput, error) {
	if i.activeStore == nil {
		return timerdto.ActiveRunOutput{}, apperrors.ErrNoActiveRun
	}
	run, err := i.activeStore.Load(ctx)
	if err != nil {
		return timerdto.ActiveRunOutput{}, err
	}
	return timerdto.ActiveRunOutput{
		RunID:            run.RunID,
		Status:           string(run.Status),
		PresetSeconds:    run.PresetSeconds,
		RemainingSeconds: run.RemainingSeconds,
		UpdatedAt:        run.UpdatedAt,
	}, nil
}

// complete runs the completion side effects. Failures are logged, never surfaced.
func (i *Interactor) complete(ctx context.Context, runID string) bool {
	recorded := false
	minutes := i.svc.SessionMinutes()
	if i.recorder != nil {
		if err := i.recorder.RecordCompletion(ctx, minutes); err != nil {
			i.logger.Error("record completed session", "run_id", runID, "minutes", minutes, "error", err)
		} else {
			recorded = true
			i.logger.Info("session completed", "run_id", runID, "minutes", minutes)
		}
	}
	if i.notifier != nil {
		if err := i.notifier.Notify(ctx); err != nil {
			i.logger.Warn("notify completion", "run_id", runID, "error", err)
		}
	}
	i.clearSnapshot(ctx)
	return recorded
}

func (i *Interactor) saveSnapshot(ctx context.Context, run domain.ActiveRun) {
	if i.activeStore == nil {
		return
	}
	if err := i.activeStore.Save(ctx, run); err != nil {
		i.logger.Warn("save active timer", "run_id", run.RunID, "error", err)
	}
}

func (i *Interactor) clearSnapshot(ctx context.Context) {
	if i.activeStore == nil {
		return
	}
	if err := i.activeStore.Clear(ctx); err != nil {
		i.logger.Warn("clear active timer", "error", err)
	}
}

func (i *Interactor) stateLocked() timerdto.StateOutput {
	return timerdto.StateOutput{
		Status:    string(i.timer.Status),
		Remaining: i.timer.Remaining,
		Preset:    i.timer.Preset,
		Clock:     domain.FormatClock(i.timer.Remaining),
		Progress:  i.timer.Progress(),
		RunID:     i.runID,
	}
}

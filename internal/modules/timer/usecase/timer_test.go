package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"flowstreak/internal/modules/timer/domain"
	timerdto "flowstreak/internal/modules/timer/dto"
	timerin "flowstreak/internal/modules/timer/port/in"
	"flowstreak/internal/modules/timer/service"
	"flowstreak/internal/modules/timer/usecase"
	apperrors "flowstreak/internal/platform/errors"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type fakeID struct{ value string }

func (f fakeID) New() string { return f.value }

type fakeRecorder struct {
	mu      sync.Mutex
	minutes []int
	err     error
}

func (f *fakeRecorder) RecordCompletion(_ context.Context, minutes int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.minutes = append(f.minutes, minutes)
	return nil
}

type fakeNotifier struct{ calls int }

func (f *fakeNotifier) Notify(context.Context) error {
	f.calls++
	return nil
}

type memoryRunStore struct {
	mu    sync.Mutex
	run   *domain.ActiveRun
	saves int
}

func (m *memoryRunStore) Save(_ context.Context, run domain.ActiveRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.run = &run
	m.saves++
	return nil
}

func (m *memoryRunStore) Load(context.Context) (domain.ActiveRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.run == nil {
		return domain.ActiveRun{}, apperrors.ErrNoActiveRun
	}
	return *m.run, nil
}

func (m *memoryRunStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.run = nil
	return nil
}

func newTimer(recorder *fakeRecorder, notifier *fakeNotifier, store *memoryRunStore, tick time.Duration) timerin.Usecase {
	svc := service.NewTimerService(fakeClock{now: time.Date(2026, 10, 16, 9, 0, 0, 0, time.Local)}, fakeID{value: "run-1"}, 25, tick)
	return usecase.NewInteractor(svc, recorder, notifier, store, nil)
}

func TestCompletionCreditsSessionMinutes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	recorder := &fakeRecorder{}
	notifier := &fakeNotifier{}
	store := &memoryRunStore{}
	uc := newTimer(recorder, notifier, store, time.Second)

	state := uc.Start(ctx)
	if state.Status != "running" || state.RunID != "run-1" {
		t.Fatalf("unexpected start state %+v", state)
	}
	if _, err := uc.Active(ctx); err != nil {
		t.Fatalf("expected active snapshot after start: %v", err)
	}

	completions := 0
	for i := 0; i < domain.DefaultDuration; i++ {
		out := uc.Tick(ctx)
		if out.Completed {
			completions++
			if !out.Recorded {
				t.Fatalf("completion was not recorded")
			}
		}
	}
	if completions != 1 {
		t.Fatalf("expected one completion, got %d", completions)
	}
	if len(recorder.minutes) != 1 || recorder.minutes[0] != 25 {
		t.Fatalf("unexpected recorded minutes %v", recorder.minutes)
	}
	if notifier.calls != 1 {
		t.Fatalf("expected one notification, got %d", notifier.calls)
	}
	final := uc.State()
	if final.Status != "idle" || final.Remaining != domain.DefaultDuration || final.RunID != "" {
		t.Fatalf("unexpected state after completion %+v", final)
	}
	if _, err := uc.Active(ctx); !errors.Is(err, apperrors.ErrNoActiveRun) {
		t.Fatalf("expected snapshot cleared, got %v", err)
	}
	// One save on start plus one per elapsed minute before the last.
	if store.saves != 1+domain.DefaultDuration/60-1 {
		t.Fatalf("unexpected snapshot saves %d", store.saves)
	}
}

func TestQuickSetCreditsFixedMinutes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	recorder := &fakeRecorder{}
	uc := newTimer(recorder, &fakeNotifier{}, &memoryRunStore{}, time.Second)

	if _, err := uc.QuickSet(ctx, timerdto.QuickSetInput{Minutes: 1}); err != nil {
		t.Fatalf("quick set: %v", err)
	}
	uc.Start(ctx)
	for i := 0; i < 60; i++ {
		uc.Tick(ctx)
	}
	if len(recorder.minutes) != 1 || recorder.minutes[0] != 25 {
		t.Fatalf("expected fixed 25 minute credit, got %v", recorder.minutes)
	}
}

func TestRecorderFailureIsSwallowed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	recorder := &fakeRecorder{err: errors.New("disk full")}
	notifier := &fakeNotifier{}
	uc := newTimer(recorder, notifier, &memoryRunStore{}, time.Second)

	if _, err := uc.QuickSet(ctx, timerdto.QuickSetInput{Minutes: 1}); err != nil {
		t.Fatalf("quick set: %v", err)
	}
	uc.Start(ctx)
	var last timerdto.TickOutput
	for i := 0; i < 60; i++ {
		last = uc.Tick(ctx)
	}
	if !last.Completed || last.Recorded {
		t.Fatalf("expected unrecorded completion, got %+v", last)
	}
	if notifier.calls != 1 {
		t.Fatalf("notifier must still ring, got %d calls", notifier.calls)
	}
	if uc.State().Status != "idle" {
		t.Fatalf("timer must still reset after a failed record")
	}
}

func TestPauseAndToggle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := &memoryRunStore{}
	uc := newTimer(&fakeRecorder{}, &fakeNotifier{}, store, time.Second)

	uc.Toggle(ctx)
	uc.Tick(ctx)
	uc.Tick(ctx)
	paused := uc.Toggle(ctx)
	if paused.Status != "paused" || paused.Remaining != domain.DefaultDuration-2 {
		t.Fatalf("unexpected paused state %+v", paused)
	}
	uc.Tick(ctx)
	if uc.State().Remaining != domain.DefaultDuration-2 {
		t.Fatalf("paused timer ticked")
	}
	run, err := uc.Active(ctx)
	if err != nil || run.Status != "paused" || run.RemainingSeconds != domain.DefaultDuration-2 {
		t.Fatalf("unexpected snapshot %+v err=%v", run, err)
	}
	resumed := uc.Toggle(ctx)
	if resumed.Status != "running" || resumed.RunID != paused.RunID {
		t.Fatalf("resume should keep the run, got %+v", resumed)
	}
}

func TestQuickSetRejectsNonPositive(t *testing.T) {
	t.Parallel()
	uc := newTimer(&fakeRecorder{}, &fakeNotifier{}, &memoryRunStore{}, time.Second)
	if _, err := uc.QuickSet(context.Background(), timerdto.QuickSetInput{Minutes: 0}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestResetClearsSnapshot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newTimer(&fakeRecorder{}, &fakeNotifier{}, &memoryRunStore{}, time.Second)
	uc.Start(ctx)
	state := uc.Reset(ctx)
	if state.Status != "idle" || state.Remaining != domain.DefaultDuration {
		t.Fatalf("unexpected reset state %+v", state)
	}
	if _, err := uc.Active(ctx); !errors.Is(err, apperrors.ErrNoActiveRun) {
		t.Fatalf("expected no active run, got %v", err)
	}
}

func TestRunCompletesInForeground(t *testing.T) {
	t.Parallel()
	recorder := &fakeRecorder{}
	uc := newTimer(recorder, &fakeNotifier{}, &memoryRunStore{}, time.Millisecond)

	ticks := 0
	out, err := uc.Run(context.Background(), timerdto.RunInput{Minutes: 1}, func(timerdto.StateOutput) { ticks++ })
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !out.Completed || !out.Recorded || out.Credited != 25 || out.RunID != "run-1" {
		t.Fatalf("unexpected run output %+v", out)
	}
	if ticks != 60 {
		t.Fatalf("expected 60 ticks, got %d", ticks)
	}
}

func TestRunCancelledDoesNotRecord(t *testing.T) {
	t.Parallel()
	recorder := &fakeRecorder{}
	uc := newTimer(recorder, &fakeNotifier{}, &memoryRunStore{}, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	_, err := uc.Run(ctx, timerdto.RunInput{Minutes: 5}, func(s timerdto.StateOutput) {
		if s.Remaining <= 5*60-3 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
	if len(recorder.minutes) != 0 {
		t.Fatalf("cancelled run must not record, got %v", recorder.minutes)
	}
	if uc.State().Status != "idle" {
		t.Fatalf("cancelled run should reset the timer")
	}
}

func TestActiveRunStoreOverSQLite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newKVRunStore(t, filepath.Join(t.TempDir(), "flowstreak.db"))
	uc := newTimerWithStore(store)

	uc.Start(ctx)
	run, err := uc.Active(ctx)
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if run.RunID != "run-1" || run.Status != "running" || run.PresetSeconds != domain.DefaultDuration {
		t.Fatalf("unexpected active run %+v", run)
	}
	uc.Reset(ctx)
	if _, err := uc.Active(ctx); !errors.Is(err, apperrors.ErrNoActiveRun) {
		t.Fatalf("expected no active run after reset, got %v", err)
	}
}

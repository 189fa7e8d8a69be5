package usecase_test

import (
	"testing"
	"time"

	timerout "flowstreak/internal/modules/timer/adapter/out"
	timerin "flowstreak/internal/modules/timer/port/in"
	timerport "flowstreak/internal/modules/timer/port/out"
	"flowstreak/internal/modules/timer/service"
	"flowstreak/internal/modules/timer/usecase"
	"flowstreak/internal/platform/kv"
)

func newKVRunStore(t *testing.T, dbPath string) timerport.ActiveRunStore {
	t.Helper()
	store, err := kv.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("new kv store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return timerout.NewKVActiveRunStore(store)
}

func newTimerWithStore(store timerport.ActiveRunStore) timerin.Usecase {
	svc := service.NewTimerService(fakeClock{now: time.Date(2026, 10, 16, 9, 0, 0, 0, time.Local)}, fakeID{value: "run-1"}, 25, time.Second)
	return usecase.NewInteractor(svc, &fakeRecorder{}, &fakeNotifier{}, store, nil)
}

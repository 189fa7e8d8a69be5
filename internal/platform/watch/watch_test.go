package watch

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestCheckFiresOnlyOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flowstreak.db")
	if err := os.WriteFile(path, []byte("a"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var fired int32
	w := New([]string{path}, time.Hour, func() { atomic.AddInt32(&fired, 1) })

	w.check()
	if got := atomic.LoadInt32(&fired); got != 0 {
		t.Fatalf("unchanged file must not fire, got %d", got)
	}

	if err := os.WriteFile(path, []byte("abc"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	w.check()
	if got := atomic.LoadInt32(&fired); got != 1 {
		t.Fatalf("expected one change, got %d", got)
	}
}

func TestSidecarFilesCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flowstreak.db")
	if err := os.WriteFile(path, []byte("a"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var fired int32
	w := New([]string{path}, time.Hour, func() { atomic.AddInt32(&fired, 1) })
	if err := os.WriteFile(path+"-wal", []byte("frame"), 0o644); err != nil {
		t.Fatalf("write wal: %v", err)
	}
	w.check()
	if got := atomic.LoadInt32(&fired); got != 1 {
		t.Fatalf("expected wal write to count, got %d", got)
	}
}

func TestMatches(t *testing.T) {
	t.Parallel()
	w := New([]string{"/data/flowstreak.db"}, time.Hour, nil)
	if !w.matches("/data/flowstreak.db-wal") {
		t.Fatalf("expected wal sidecar to match")
	}
	if !w.matches("/data/flowstreak.db") || !w.matches("/data/flowstreak.db-journal") {
		t.Fatalf("expected database and journal to match")
	}
	for _, name := range []string{"/data/config.yaml", "/data/flowstreak.dbx", "/data/flowstreak.db.bak", "/data/flowstreak.db-wal.old"} {
		if w.matches(name) {
			t.Fatalf("%s must not match", name)
		}
	}
}

func TestPollingDetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flowstreak.db")
	if err := os.WriteFile(path, []byte("a"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	changed := make(chan struct{}, 8)
	w := New([]string{path}, 50*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	w.Start()
	defer w.Stop()

	if err := os.WriteFile(path, []byte("abcdef"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected change notification")
	}
}

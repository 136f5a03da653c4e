package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func waitFor(t *testing.T, cond func() bool, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestWatcherDeliversWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aurora.toml")
	if err := os.WriteFile(path, []byte("[tap]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(WithDebounce(20 * time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	var mu sync.Mutex
	var got []string
	w.OnChange(func(p string) {
		mu.Lock()
		got = append(got, p)
		mu.Unlock()
	})

	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}
	w.Start()

	if err := os.WriteFile(path, []byte("[tap]\nmax_distance = 12.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) > 0
	}, 2*time.Second)

	mu.Lock()
	defer mu.Unlock()
	if filepath.Base(got[0]) != "aurora.toml" {
		t.Errorf("changed path = %q", got[0])
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aurora.toml")
	if err := os.WriteFile(path, []byte("a = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(WithDebounce(100 * time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	var mu sync.Mutex
	count := 0
	w.OnChange(func(string) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}
	w.Start()

	// A rapid burst of writes coalesces into one delivery.
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("a = 2\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return count >= 1
	}, 2*time.Second)

	time.Sleep(200 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if count != 1 {
		t.Errorf("deliveries = %d, want 1", count)
	}
}

func TestWatcherHandlerPanicIsolated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aurora.toml")
	if err := os.WriteFile(path, []byte("a = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(WithDebounce(20 * time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	var mu sync.Mutex
	survived := false
	w.OnChange(func(string) { panic("bad hook") })
	w.OnChange(func(string) {
		mu.Lock()
		survived = true
		mu.Unlock()
	})

	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}
	w.Start()

	if err := os.WriteFile(path, []byte("a = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return survived
	}, 2*time.Second)
}

func TestWatcherStopIdempotent(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatal(err)
	}
	w.Start()
	if !w.IsRunning() {
		t.Error("not running after Start")
	}
	if err := w.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("second Stop: %v", err)
	}
	if w.IsRunning() {
		t.Error("running after Stop")
	}
}

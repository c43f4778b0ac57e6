package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func collect(t *testing.T, events <-chan string, want int, within time.Duration) map[string]struct{} {
	t.Helper()
	got := map[string]struct{}{}
	deadline := time.After(within)
	for len(got) < want {
		select {
		case p, ok := <-events:
			if !ok {
				return got
			}
			got[p] = struct{}{}
		case <-deadline:
			return got
		}
	}
	return got
}

func TestStartWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{}, testLogger())
	require.Error(t, err)
}

func TestStartWatcherInitialScan(t *testing.T) {
	dir := t.TempDir()
	receipt := filepath.Join(dir, "lunch.jpg")
	require.NoError(t, os.WriteFile(receipt, []byte("jpg"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, _, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{dir},
		InitialScan: true,
	}, testLogger())
	require.NoError(t, err)

	got := collect(t, events, 1, 2*time.Second)
	assert.Contains(t, got, receipt)
	assert.NotContains(t, got, filepath.Join(dir, "notes.txt"))
}

func TestStartWatcherPicksUpNewFiles(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 10 * time.Millisecond,
	}, testLogger())
	require.NoError(t, err)

	receipt := filepath.Join(dir, "coffee.png")
	require.NoError(t, os.WriteFile(receipt, []byte("png"), 0o644))

	got := collect(t, events, 1, 3*time.Second)
	assert.Contains(t, got, receipt)
}

// A burst of creates under a short debounce exercises the timer and the
// watcher loop together. Run with -race: the pending set must only ever be
// touched by the loop goroutine.
func TestStartWatcherDebounceBurst(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: time.Millisecond,
	}, testLogger())
	require.NoError(t, err)

	const n = 200
	for i := 0; i < n; i++ {
		path := filepath.Join(dir, fmt.Sprintf("receipt-%03d.jpg", i))
		require.NoError(t, os.WriteFile(path, []byte("jpg"), 0o644))
	}

	got := collect(t, events, n, 5*time.Second)
	assert.NotEmpty(t, got)
	for p := range got {
		assert.Equal(t, ".jpg", filepath.Ext(p))
	}
}

func TestStartWatcherClosesOnCancel(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	events, errs, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}}, testLogger())
	require.NoError(t, err)

	cancel()
	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("events channel did not close after cancel")
	}
	select {
	case _, ok := <-errs:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("errors channel did not close after cancel")
	}
}

package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/justrun/internal/adapters/logger"
	"go.trai.ch/justrun/internal/adapters/watcher"
	"go.trai.ch/justrun/internal/core/domain"
	"go.trai.ch/justrun/internal/core/ports"
)

const eventTimeout = 5 * time.Second

func startWatcher(t *testing.T, paths ...string) <-chan ports.WatchEvent {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	w, err := watcher.NewWatcher(logger.Discard())
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx, paths))
	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
	})

	out := make(chan ports.WatchEvent, 100)
	go func() {
		defer close(out)
		for event := range w.Events() {
			out <- event
		}
	}()
	return out
}

func nextEvent(t *testing.T, events <-chan ports.WatchEvent) ports.WatchEvent {
	t.Helper()
	select {
	case event, ok := <-events:
		require.True(t, ok, "event stream closed")
		return event
	case <-time.After(eventTimeout):
		t.Fatal("timed out waiting for a watch event")
		return ports.WatchEvent{}
	}
}

func TestWatcher_DirectoryInput(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "nested"), 0o750))

	events := startWatcher(t, src)

	target := filepath.Join(src, "nested", "index.ts")
	require.NoError(t, os.WriteFile(target, []byte("export {}"), 0o600))

	event := nextEvent(t, events)
	assert.Equal(t, target, event.Path)
}

func TestWatcher_NewSubdirectory(t *testing.T) {
	src := t.TempDir()
	events := startWatcher(t, src)

	sub := filepath.Join(src, "generated")
	require.NoError(t, os.Mkdir(sub, 0o750))
	event := nextEvent(t, events)
	assert.Equal(t, sub, event.Path)
	assert.Equal(t, ports.OpCreate, event.Operation)

	// Give the watcher a moment to add the new directory.
	time.Sleep(100 * time.Millisecond)

	target := filepath.Join(sub, "out.ts")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o600))
	for {
		event = nextEvent(t, events)
		if event.Path == target {
			break
		}
	}
}

func TestWatcher_FileInputIgnoresSiblings(t *testing.T) {
	root := t.TempDir()
	pkg := filepath.Join(root, "package.json")
	require.NoError(t, os.WriteFile(pkg, []byte("{}"), 0o600))

	events := startWatcher(t, pkg)

	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("docs"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.CacheFileName), []byte("abc"), 0o600))
	require.NoError(t, os.WriteFile(pkg, []byte(`{"name":"app"}`), 0o600))

	event := nextEvent(t, events)
	assert.Equal(t, pkg, event.Path)
}

func TestWatcher_MissingInput(t *testing.T) {
	w, err := watcher.NewWatcher(logger.Discard())
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	err = w.Start(context.Background(), []string{filepath.Join(t.TempDir(), "missing")})
	require.ErrorIs(t, err, domain.ErrMissingInput)
}

func TestWatcher_EventsEndOnCancel(t *testing.T) {
	src := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	w, err := watcher.NewWatcher(logger.Discard())
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()
	require.NoError(t, w.Start(ctx, []string{src}))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range w.Events() {
		}
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(eventTimeout):
		t.Fatal("event stream not closed after cancel")
	}
}

func TestIsCacheRecord(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/work/.run-tool-cache", want: true},
		{path: "/work/.run-tool-cache.123456.tmp", want: true},
		{path: "/work/src/main.ts", want: false},
		{path: "/work/run-tool-cache", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, watcher.IsCacheRecord(tt.path))
		})
	}
}

package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRunInvokesOnWrite(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "light.json")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(input, []byte(`{}`), 0644))

	w := &Watcher{Debounce: 20 * time.Millisecond, Logger: zerolog.Nop()}
	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, []string{input}, func(context.Context) error {
			calls.Add(1)
			return nil
		})
	}()

	// Give the watcher a moment to register.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(other, []byte("x"), 0644))
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, int32(0), calls.Load(), "unrelated file must not trigger")

	require.NoError(t, os.WriteFile(input, []byte(`{"colors":{}}`), 0644))
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after context cancellation")
	}
}

func TestRunRequiresPaths(t *testing.T) {
	err := New(zerolog.Nop()).Run(context.Background(), nil, func(context.Context) error { return nil })
	require.Error(t, err)
}

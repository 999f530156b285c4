package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAttachValidates(t *testing.T) {
	s := New()
	require.Error(t, s.Attach("zero", 0, func() {}))
	require.Error(t, s.Attach("nil", 10, nil))
	require.NoError(t, s.Attach("ok", 10, func() {}))
}

func TestCallbacksRunUntilStopped(t *testing.T) {
	s := New()
	var fast, slow atomic.Int32
	require.NoError(t, s.AttachEvery("fast", 2*time.Millisecond, func() { fast.Add(1) }))
	require.NoError(t, s.AttachEvery("slow", 20*time.Millisecond, func() { slow.Add(1) }))

	s.Start(context.Background())
	require.Eventually(t, func() bool { return fast.Load() >= 5 && slow.Load() >= 1 }, 2*time.Second, time.Millisecond)
	require.Error(t, s.Attach("late", 10, func() {}), "attaching while running is refused")

	s.Stop()
	s.Wait()
	stopped := fast.Load()
	time.Sleep(10 * time.Millisecond)
	require.Equal(t, stopped, fast.Load())
}

func TestContextCancelStopsCallbacks(t *testing.T) {
	s := New()
	var n atomic.Int32
	require.NoError(t, s.AttachEvery("tick", time.Millisecond, func() { n.Add(1) }))
	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	require.Eventually(t, func() bool { return n.Load() > 0 }, time.Second, time.Millisecond)
	cancel()
	s.Wait()
}

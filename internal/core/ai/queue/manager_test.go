package queue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Submit(t *testing.T) {
	m := NewManager(2, 4)
	m.Start()
	t.Cleanup(m.Close)

	var calls int32
	err := m.Submit(context.Background(), func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = m.Submit(context.Background(), func(ctx context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, 2, m.GetQueueStatus().ProcessedCount)
}

func TestManager_QueueFull(t *testing.T) {
	m := NewManager(1, 1)
	m.Start()
	t.Cleanup(m.Close)

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = m.Submit(context.Background(), func(ctx context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	// The single worker is busy; this one fills the backlog.
	go func() {
		_ = m.Submit(context.Background(), func(ctx context.Context) error { return nil })
	}()
	require.Eventually(t, func() bool { return m.GetQueueStatus().QueueLength == 1 }, time.Second, 5*time.Millisecond)

	err := m.Submit(context.Background(), func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrQueueFull)

	close(release)
}

func TestManager_ContextCancelled(t *testing.T) {
	m := NewManager(1, 1)
	m.Start()
	t.Cleanup(m.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := m.Submit(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestManager_Closed(t *testing.T) {
	m := NewManager(1, 1)
	m.Start()
	m.Close()

	err := m.Submit(context.Background(), func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrClosed)
}

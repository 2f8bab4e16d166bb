package queue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"recipe-transformer/internal/pkg/common"

	"go.uber.org/zap"
)

var (
	ErrQueueFull = errors.New("queue is full")
	ErrClosed    = errors.New("queue manager is closed")
)

// Job is one outbound call executed by a worker.
type Job func(ctx context.Context) error

type request struct {
	ctx    context.Context
	job    Job
	result chan error
}

// Status is a snapshot of the queue.
type Status struct {
	QueueLength    int `json:"queue_length"`
	ProcessedCount int `json:"processed_count"`
	MaxQueueSize   int `json:"max_queue_size"`
	Workers        int `json:"workers"`
}

// Manager bounds concurrent outbound calls with a fixed worker pool and a
// bounded backlog.
type Manager struct {
	workers   int
	maxSize   int
	queue     chan *request
	done      chan struct{}
	processed int64
	wg        sync.WaitGroup
	startOnce sync.Once
	closeOnce sync.Once
}

// NewManager creates a manager. Call Start before Submit.
func NewManager(workers, maxSize int) *Manager {
	if workers <= 0 {
		workers = 1
	}
	if maxSize <= 0 {
		maxSize = 1
	}
	return &Manager{
		workers: workers,
		maxSize: maxSize,
		queue:   make(chan *request, maxSize),
		done:    make(chan struct{}),
	}
}

// Start launches the workers.
func (m *Manager) Start() {
	m.startOnce.Do(func() {
		for i := 0; i < m.workers; i++ {
			m.wg.Add(1)
			go m.worker(i)
		}
		common.LogInfo("Queue workers started",
			zap.Int("workers", m.workers),
			zap.Int("max_queue_size", m.maxSize),
		)
	})
}

func (m *Manager) worker(id int) {
	defer m.wg.Done()
	for {
		select {
		case <-m.done:
			return
		case req := <-m.queue:
			if err := req.ctx.Err(); err != nil {
				req.result <- err
				continue
			}
			err := req.job(req.ctx)
			atomic.AddInt64(&m.processed, 1)
			req.result <- err
			common.LogDebug("Queue job processed", zap.Int("worker", id))
		}
	}
}

// Submit enqueues job without blocking and waits for its result. A full
// backlog fails immediately with ErrQueueFull.
func (m *Manager) Submit(ctx context.Context, job Job) error {
	select {
	case <-m.done:
		return ErrClosed
	default:
	}

	req := &request{ctx: ctx, job: job, result: make(chan error, 1)}
	select {
	case m.queue <- req:
	default:
		common.LogWarn("Queue is full", zap.Int("max_queue_size", m.maxSize))
		return ErrQueueFull
	}

	select {
	case err := <-req.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-m.done:
		return ErrClosed
	}
}

// GetQueueStatus returns the current backlog and throughput.
func (m *Manager) GetQueueStatus() *Status {
	return &Status{
		QueueLength:    len(m.queue),
		ProcessedCount: int(atomic.LoadInt64(&m.processed)),
		MaxQueueSize:   m.maxSize,
		Workers:        m.workers,
	}
}

// Close stops the workers and waits for in-flight jobs to return.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
	})
	m.wg.Wait()
}

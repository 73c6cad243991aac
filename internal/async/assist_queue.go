package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/lbeckmann/cardvault/internal/pipeline"
)

// AssistQueue runs LLM enrichment in the background so ScanCard can return
// as soon as the heuristic result is stored.
type AssistQueue struct {
	assistant *pipeline.Assistant
	logger    *slog.Logger
	workers   int
	timeout   time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*AssistQueue)

func WithWorkers(n int) Option {
	return func(q *AssistQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *AssistQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *AssistQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewAssistQueue(assistant *pipeline.Assistant, logger *slog.Logger, opts ...Option) *AssistQueue {
	q := &AssistQueue{
		assistant: assistant,
		logger:    logger,
		workers:   4,
		timeout:   3 * time.Minute,
		ch:        make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *AssistQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.assistant.AssistScan(ctx, job.ScanID)
					cancel()

					if err != nil {
						q.logger.Error("assist failed", "worker_id", workerID, "scan_id", job.ScanID, "trace_id", job.TraceID, "error", err)
					} else {
						q.logger.Info("assist finished", "worker_id", workerID, "scan_id", job.ScanID, "trace_id", job.TraceID, "wait_ms", time.Since(job.SubmittedAt).Milliseconds())
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *AssistQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "scan_id", job.ScanID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued scan for assist", "scan_id", job.ScanID)
	default:
		q.logger.Warn("queue full, applying backpressure", "scan_id", job.ScanID)
		q.ch <- job
	}
	return nil
}

func (q *AssistQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}

package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// DefaultWorkers is the default number of concurrent task runners.
const DefaultWorkers = 4

// DefaultQueueSize is the default capacity of the pending-task queue.
const DefaultQueueSize = 64

// DefaultRetention is how long finished tasks stay visible in the
// registry before the sweeper evicts them.
const DefaultRetention = 10 * time.Minute

var (
	// ErrManagerClosed is returned when submitting to a closed manager.
	ErrManagerClosed = errors.New("task manager is closed")
	// ErrQueueFull is returned when the pending queue is at capacity.
	// The task is not registered in that case.
	ErrQueueFull = errors.New("task queue is full")
)

// TaskFunc is the unit of background work. The context is cancelled when
// the manager shuts down.
type TaskFunc func(ctx context.Context) error

// Task is a handle to one submitted unit of work. Err and the finish
// time are written exactly once before Done is closed, so readers must
// observe Done first.
type Task struct {
	ID        string
	Name      string
	CreatedAt time.Time

	fn   TaskFunc
	done chan struct{}

	err        error
	finishedAt time.Time
}

// Done is closed when the task has finished, successfully or not.
func (t *Task) Done() <-chan struct{} { return t.done }

// Finished reports whether the task has completed.
func (t *Task) Finished() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Err returns the task's failure, nil on success. Always nil while the
// task is still running.
func (t *Task) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

func (t *Task) finish(err error, now time.Time) {
	t.err = err
	t.finishedAt = now
	close(t.done)
}

// Config holds configuration for the task manager.
type Config struct {
	Workers   int           // concurrent runners (default: 4)
	QueueSize int           // pending queue capacity (default: 64)
	Retention time.Duration // finished-task visibility window (default: 10m)
	Logger    *slog.Logger
}

// Manager runs fire-and-forget tasks on a fixed pool of workers and
// tracks them in a registry keyed by generated task id. Finished tasks
// are evicted after the retention window so the registry stays bounded.
type Manager struct {
	log       *slog.Logger
	tasks     map[string]*Task
	queue     chan *Task
	retention time.Duration

	mu      sync.Mutex
	closed  atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	sweepWG sync.WaitGroup
}

// NewManager starts the workers and the eviction sweeper.
func NewManager(cfg Config) *Manager {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.Retention <= 0 {
		cfg.Retention = DefaultRetention
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Manager{
		log:       cfg.Logger,
		tasks:     make(map[string]*Task),
		queue:     make(chan *Task, cfg.QueueSize),
		retention: cfg.Retention,
		ctx:       ctx,
		cancel:    cancel,
	}

	for i := 0; i < cfg.Workers; i++ {
		m.wg.Add(1)
		go m.run()
	}
	m.sweepWG.Add(1)
	go m.sweepLoop()

	return m
}

// Submit registers a task and enqueues it without blocking. On a full
// queue the registration is rolled back and ErrQueueFull returned, so
// callers never see a registered task that will not run.
func (m *Manager) Submit(name string, fn TaskFunc) (*Task, error) {
	t := &Task{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
		fn:        fn,
		done:      make(chan struct{}),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed.Load() {
		return nil, ErrManagerClosed
	}
	m.tasks[t.ID] = t
	select {
	case m.queue <- t:
		return t, nil
	default:
		delete(m.tasks, t.ID)
		return nil, ErrQueueFull
	}
}

// Get returns the task with the given id, nil if unknown or already
// evicted.
func (m *Manager) Get(id string) *Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tasks[id]
}

// Len returns the number of registered tasks, finished ones included.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Close stops accepting tasks, drains the queue and shuts the workers
// down. Safe to call more than once.
func (m *Manager) Close() {
	if m.closed.Swap(true) {
		return
	}
	m.mu.Lock()
	close(m.queue)
	m.mu.Unlock()

	m.wg.Wait()
	m.cancel()
	m.sweepWG.Wait()
}

func (m *Manager) run() {
	defer m.wg.Done()
	for t := range m.queue {
		err := m.invoke(t)
		t.finish(err, time.Now())
		if err != nil {
			m.log.Error("background task failed",
				slog.String("task_id", t.ID),
				slog.String("task", t.Name),
				slog.Any("error", err))
		}
	}
}

func (m *Manager) invoke(t *Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("background task panic",
				slog.String("task_id", t.ID),
				slog.String("task", t.Name),
				slog.String("stack", string(debug.Stack())))
			err = fmt.Errorf("task panic: %v", r)
		}
	}()
	return t.fn(m.ctx)
}

func (m *Manager) sweepLoop() {
	defer m.sweepWG.Done()

	interval := m.retention / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.evict(time.Now())
		}
	}
}

// evict removes finished tasks older than the retention window.
func (m *Manager) evict(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for id, t := range m.tasks {
		if t.Finished() && now.Sub(t.finishedAt) >= m.retention {
			delete(m.tasks, id)
			n++
		}
	}
	return n
}

// Package scheduler runs the site's periodic background work, currently the
// optional registration count refresh.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"

	"github.com/Hari-prashath-123/art-finity/pkg/logger"
)

var Module = fx.Module("scheduler",
	fx.Provide(NewScheduler),
	fx.Invoke(RegisterLifecycle),
)

// DefaultTaskTimeout bounds a single task run.
const DefaultTaskTimeout = time.Minute

type TaskFunc func(ctx context.Context) error

// task is one registered job plus the outcome of its last run.
type task struct {
	entry    cron.EntryID
	interval time.Duration
	runs     int
	lastErr  error
	lastTook time.Duration
}

// Scheduler wraps cron with named interval tasks. Overlapping runs of the
// same task are skipped.
type Scheduler struct {
	cron    *cron.Cron
	log     *slog.Logger
	timeout time.Duration

	mu      sync.RWMutex
	tasks   map[string]*task
	running bool
}

func NewScheduler(log *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		log:     log.With(logger.Scope("scheduler")),
		timeout: DefaultTaskTimeout,
		tasks:   make(map[string]*task),
	}
}

func RegisterLifecycle(lc fx.Lifecycle, s *Scheduler) {
	lc.Append(fx.Hook{
		OnStart: s.Start,
		OnStop:  s.Stop,
	})
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		s.cron.Start()
		s.running = true
		s.log.Info("scheduler started", slog.Int("tasks", len(s.tasks)))
	}
	return nil
}

// Stop waits for in-flight runs until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	done := s.cron.Stop()
	s.mu.Unlock()

	select {
	case <-done.Done():
		s.log.Info("scheduler stopped")
	case <-ctx.Done():
		s.log.Warn("scheduler stop timed out", logger.Error(ctx.Err()))
	}
	return nil
}

// AddIntervalTask schedules fn every interval under name. A task already
// registered under name is replaced.
func (s *Scheduler) AddIntervalTask(name string, interval time.Duration, fn TaskFunc) error {
	if interval <= 0 {
		return fmt.Errorf("task %s: interval must be positive, got %s", name, interval)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dropLocked(name)

	entry, err := s.cron.AddFunc("@every "+interval.String(), func() { s.run(name, fn) })
	if err != nil {
		return fmt.Errorf("task %s: %w", name, err)
	}
	s.tasks[name] = &task{entry: entry, interval: interval}

	s.log.Info("task scheduled", slog.String("task", name), slog.Duration("interval", interval))
	return nil
}

func (s *Scheduler) RemoveTask(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dropLocked(name) {
		s.log.Info("task removed", slog.String("task", name))
	}
}

func (s *Scheduler) dropLocked(name string) bool {
	t, ok := s.tasks[name]
	if ok {
		s.cron.Remove(t.entry)
		delete(s.tasks, name)
	}
	return ok
}

func (s *Scheduler) run(name string, fn TaskFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	err := fn(ctx)
	took := time.Since(start)

	s.mu.Lock()
	if t, ok := s.tasks[name]; ok {
		t.runs++
		t.lastErr = err
		t.lastTook = took
	}
	s.mu.Unlock()

	if err != nil {
		s.log.Warn("task failed", slog.String("task", name), slog.Duration("took", took), logger.Error(err))
		return
	}
	s.log.Debug("task done", slog.String("task", name), slog.Duration("took", took))
}

// TaskInfo describes a scheduled task for /debug.
type TaskInfo struct {
	Name      string        `json:"name"`
	Interval  time.Duration `json:"interval"`
	Runs      int           `json:"runs"`
	LastError string        `json:"last_error,omitempty"`
	LastTook  time.Duration `json:"last_took,omitempty"`
	NextRun   time.Time     `json:"next_run"`
}

// Tasks lists the registered tasks ordered by name.
func (s *Scheduler) Tasks() []TaskInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]TaskInfo, 0, len(s.tasks))
	for name, t := range s.tasks {
		info := TaskInfo{
			Name:     name,
			Interval: t.interval,
			Runs:     t.runs,
			LastTook: t.lastTook,
			NextRun:  s.cron.Entry(t.entry).Next,
		}
		if t.lastErr != nil {
			info.LastError = t.lastErr.Error()
		}
		out = append(out, info)
	}
	slices.SortFunc(out, func(a, b TaskInfo) int { return strings.Compare(a.Name, b.Name) })
	return out
}

func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

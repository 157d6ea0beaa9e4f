package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Hari-prashath-123/art-finity/pkg/logger"
)

func TestNewScheduler(t *testing.T) {
	s := NewScheduler(logger.Discard())

	if s.cron == nil {
		t.Error("Scheduler cron should not be nil")
	}
	if s.IsRunning() {
		t.Error("New scheduler should not be running")
	}
	if tasks := s.Tasks(); len(tasks) != 0 {
		t.Errorf("New scheduler should have no tasks, got %d", len(tasks))
	}
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(logger.Discard())
	ctx := context.Background()

	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := s.Start(ctx); err != nil {
		t.Fatalf("second Start() error = %v", err)
	}
	if !s.IsRunning() {
		t.Error("Scheduler should be running after Start")
	}

	if err := s.Stop(ctx); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if s.IsRunning() {
		t.Error("Scheduler should not be running after Stop")
	}
}

func TestScheduler_AddIntervalTask(t *testing.T) {
	s := NewScheduler(logger.Discard())
	noop := func(ctx context.Context) error { return nil }

	if err := s.AddIntervalTask("registrations.refresh", 15*time.Minute, noop); err != nil {
		t.Fatalf("AddIntervalTask() error = %v", err)
	}
	// Re-adding replaces instead of duplicating
	if err := s.AddIntervalTask("registrations.refresh", 30*time.Minute, noop); err != nil {
		t.Fatalf("AddIntervalTask() error = %v", err)
	}

	tasks := s.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("Tasks() returned %d items, want 1", len(tasks))
	}
	if tasks[0].Name != "registrations.refresh" {
		t.Errorf("Name = %q", tasks[0].Name)
	}
	if tasks[0].Interval != 30*time.Minute {
		t.Errorf("Interval = %s, want 30m", tasks[0].Interval)
	}

	s.RemoveTask("registrations.refresh")
	if len(s.Tasks()) != 0 {
		t.Error("task should be removed")
	}
}

func TestScheduler_RejectsNonPositiveInterval(t *testing.T) {
	s := NewScheduler(logger.Discard())
	noop := func(ctx context.Context) error { return nil }

	if err := s.AddIntervalTask("bad", 0, noop); err == nil {
		t.Error("AddIntervalTask() with zero interval should fail")
	}
	if len(s.Tasks()) != 0 {
		t.Error("rejected task must not be registered")
	}
}

func TestScheduler_RunsTask(t *testing.T) {
	s := NewScheduler(logger.Discard())

	var calls atomic.Int32
	done := make(chan struct{}, 1)
	err := s.AddIntervalTask("tick", time.Second, func(ctx context.Context) error {
		if calls.Add(1) == 1 {
			done <- struct{}{}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("AddIntervalTask() error = %v", err)
	}

	ctx := context.Background()
	_ = s.Start(ctx)
	defer s.Stop(ctx)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("task did not run within 5s")
	}

	// The run is recorded after the task returns.
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) && s.Tasks()[0].Runs == 0 {
		time.Sleep(10 * time.Millisecond)
	}
	if s.Tasks()[0].Runs == 0 {
		t.Error("Runs should count completed runs")
	}
}

func TestScheduler_RecordsFailure(t *testing.T) {
	s := NewScheduler(logger.Discard())
	s.tasks["refresh"] = &task{interval: time.Minute}

	s.run("refresh", func(ctx context.Context) error { return errors.New("sheet down") })

	info := s.Tasks()[0]
	if info.Runs != 1 {
		t.Errorf("Runs = %d, want 1", info.Runs)
	}
	if info.LastError != "sheet down" {
		t.Errorf("LastError = %q", info.LastError)
	}
}

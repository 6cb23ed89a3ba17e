package schedule

import (
	"context"
	"sync"
	"testing"
	"time"
)

type countingSweeper struct {
	mu    sync.Mutex
	calls []time.Time
}

func (c *countingSweeper) SweepIdle(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, now)
	return 2
}

func (c *countingSweeper) Count() int { return 0 }

func TestExecuteScheduledTask(t *testing.T) {
	sweeper := &countingSweeper{}
	fixed := time.Date(2025, time.January, 5, 12, 0, 0, 0, time.UTC)
	s := NewSessionSweeper(sweeper, "")
	s.now = func() time.Time { return fixed }

	s.ExecuteScheduledTask()

	if len(sweeper.calls) != 1 || !sweeper.calls[0].Equal(fixed) {
		t.Errorf("calls = %v", sweeper.calls)
	}
	if s.cronExpression != "@every 1m" {
		t.Errorf("default cron = %q", s.cronExpression)
	}
}

func TestInitRejectsInvalidCron(t *testing.T) {
	s := NewSessionSweeper(&countingSweeper{}, "not a cron")
	if err := s.InitSessionScheduleTasks(context.Background()); err == nil {
		t.Fatal("expected error for invalid cron expression")
	}
}

func TestInitStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewSessionSweeper(&countingSweeper{}, "@every 1h")
	if err := s.InitSessionScheduleTasks(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if len(s.cron.Entries()) != 1 {
		t.Errorf("entries = %d", len(s.cron.Entries()))
	}
	cancel()
}

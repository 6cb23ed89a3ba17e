package schedule

import (
	"context"
	"fmt"
	"time"

	"go-widget/pkg/log"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultSweepCron = "@every 1m"

// IdleSweeper removes sessions that were not seen for a while
type IdleSweeper interface {
	SweepIdle(now time.Time) int
	Count() int
}

// SessionSweeper periodically discards idle widget sessions
type SessionSweeper struct {
	cron           *cron.Cron
	sweeper        IdleSweeper
	cronExpression string
	now            func() time.Time
}

// NewSessionSweeper creates a sweeper running on cronExpression (standard or @every syntax)
func NewSessionSweeper(sweeper IdleSweeper, cronExpression string) *SessionSweeper {
	if cronExpression == "" {
		cronExpression = defaultSweepCron
	}
	return &SessionSweeper{
		cron:           cron.New(),
		sweeper:        sweeper,
		cronExpression: cronExpression,
		now:            time.Now,
	}
}

// InitSessionScheduleTasks registers the sweep and starts the scheduler; it stops when ctx is done
func (s *SessionSweeper) InitSessionScheduleTasks(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.cronExpression, s.ExecuteScheduledTask); err != nil {
		return fmt.Errorf("invalid session sweep cron expression %q: %w", s.cronExpression, err)
	}

	s.cron.Start()
	log.Infof("Session sweeper started with cron expression: %s", s.cronExpression)

	go func() {
		<-ctx.Done()
		s.Stop()
		log.Info("Session sweeper stopped gracefully")
	}()
	return nil
}

// ExecuteScheduledTask removes idle sessions once
func (s *SessionSweeper) ExecuteScheduledTask() {
	requestID := uuid.New().String()

	log.Debug("Session sweep triggered", zap.String("request_id", requestID))

	removed := s.sweeper.SweepIdle(s.now())
	if removed > 0 {
		log.Info("Idle sessions removed",
			zap.String("request_id", requestID),
			zap.Int("removed", removed),
			zap.Int("remaining", s.sweeper.Count()))
	}
}

// Stop gracefully stops the scheduler
func (s *SessionSweeper) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

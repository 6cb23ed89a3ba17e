package health

import (
	"context"
	"strconv"

	"go-widget/internal/domain/model"
	"go-widget/pkg/redis"
)

// EventsChecker reports the state of the event bus connection
type EventsChecker interface {
	HealthCheck(ctx context.Context) redis.RedisHealthCheck
}

// SessionCounter reports how many widget sessions are open
type SessionCounter interface {
	Count() int
}

type healthUseCase struct {
	eventsChecker EventsChecker
	sessions      SessionCounter
}

// NewHealthUseCase builds the health aggregation; eventsChecker is nil when redis is disabled.
func NewHealthUseCase(eventsChecker EventsChecker, sessions SessionCounter) UseCase {
	return &healthUseCase{
		eventsChecker: eventsChecker,
		sessions:      sessions,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	eventsHealth := useCase.eventsHealth(ctx)
	sessionsHealth := model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: map[string]string{"open": strconv.Itoa(useCase.sessions.Count())},
	}

	overallStatus := model.StatusUp
	if eventsHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Events:   eventsHealth,
		Sessions: sessionsHealth,
	}
}

func (useCase *healthUseCase) eventsHealth(ctx context.Context) model.ComponentHealthStatus {
	if useCase.eventsChecker == nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusUnknown,
			Details: map[string]string{"publisher": "log"},
		}
	}

	check := useCase.eventsChecker.HealthCheck(ctx)
	status := model.StatusUp
	if check.Status != redis.StatusUp {
		status = model.StatusDown
	}
	details := map[string]string{"publisher": "redis"}
	for k, v := range check.Details {
		details[k] = v
	}
	return model.ComponentHealthStatus{Status: status, Details: details}
}

package redis

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// HealthStatus is the reported state of the Redis connection
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// RedisHealthCheck represents the health check response for Redis
type RedisHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// Pinger is the connectivity check the health checker depends on
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker provides Redis health checking functionality
type HealthChecker struct {
	client    Pinger
	config    *Config
	timeout   time.Duration
	mu        sync.Mutex
	lastCheck time.Time
	lastError string
}

// NewHealthChecker creates a new Redis health checker
func NewHealthChecker(client Pinger, config *Config) *HealthChecker {
	if config == nil {
		config = DefaultConfig()
	}
	return &HealthChecker{
		client:  client,
		config:  config,
		timeout: 2 * time.Second,
	}
}

// HealthCheck pings Redis and reports the connection details
func (h *HealthChecker) HealthCheck(ctx context.Context) RedisHealthCheck {
	h.mu.Lock()
	defer h.mu.Unlock()

	pingCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	status := StatusUp
	if err := h.client.Ping(pingCtx); err != nil {
		status = StatusDown
		h.lastError = fmt.Sprintf("ping failed: %v", err)
	} else {
		h.lastError = ""
	}
	h.lastCheck = time.Now()

	return RedisHealthCheck{
		Status: status,
		Details: map[string]string{
			"host":       h.config.Host,
			"port":       strconv.Itoa(h.config.Port),
			"database":   strconv.Itoa(h.config.Database),
			"last_check": h.lastCheck.Format(time.RFC3339),
			"last_error": h.lastError,
		},
	}
}

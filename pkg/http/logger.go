package http

import (
	"go-widget/pkg/log"

	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called when the request fails or the response carries an error HTTP status
	LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error)
}

// ZapHTTPLogger logs outbound calls through pkg/log. Query strings are redacted
// by the client before reaching the logger, so API keys never hit the output.
type ZapHTTPLogger struct {
	Name string
}

var _ HTTPLogger = ZapHTTPLogger{}

func (l ZapHTTPLogger) LogRequest(method, url string, headers map[string]string) {
	log.Debug("outbound request",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url))
}

func (l ZapHTTPLogger) LogResponseSuccess(method, url string, httpStatus int, responseBody string, latency int64) {
	log.Info("outbound response",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (l ZapHTTPLogger) LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("outbound response failed",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}

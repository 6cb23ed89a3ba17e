package geo

import (
	"context"
	"fmt"
	"time"

	"go-widget/internal/domain/entity"
	"go-widget/internal/domain/model/external"
	"go-widget/pkg/log"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	defaultIPLookupURL     = "http://ip-api.com"
	defaultIPLookupTimeout = 3 * time.Second
	ipLookupPath           = "/json"
	ipLookupFields         = "status,message,country,countryCode,city,lat,lon,query"
)

// IPLocator approximates the caller's position from the server's public address.
type IPLocator struct {
	client *resty.Client
}

// NewIPLocator builds a locator against an ip-api.com compatible service.
func NewIPLocator(baseURL string, timeout time.Duration) *IPLocator {
	if baseURL == "" {
		baseURL = defaultIPLookupURL
	}
	if timeout <= 0 {
		timeout = defaultIPLookupTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		log.Debug("IP lookup response",
			zap.String("method", resp.Request.Method),
			zap.String("url", resp.Request.URL),
			zap.Int("status", resp.StatusCode()),
			zap.Duration("latency", resp.Time()))
		return nil
	})

	return &IPLocator{client: client}
}

func (l *IPLocator) Locate(ctx context.Context) (entity.Coordinates, error) {
	var result external.IPLocationResponse

	resp, err := l.client.R().
		SetContext(ctx).
		SetQueryParam("fields", ipLookupFields).
		SetResult(&result).
		Get(ipLookupPath)
	if err != nil {
		return entity.Coordinates{}, fmt.Errorf("ip lookup request failed: %w", err)
	}
	if resp.IsError() {
		return entity.Coordinates{}, fmt.Errorf("ip lookup returned status %d", resp.StatusCode())
	}
	if result.Status != "success" {
		return entity.Coordinates{}, fmt.Errorf("ip lookup failed: %s", result.Message)
	}

	log.Info("Position resolved from IP address",
		zap.String("city", result.City),
		zap.String("country", result.CountryCode))

	return entity.Coordinates{Latitude: result.Lat, Longitude: result.Lon}, nil
}

package api

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"strconv"

	"go-widget/internal/domain/entity"
	"go-widget/internal/domain/model/external"
	"go-widget/pkg/http"
)

const (
	currentPath  = "/weather"
	forecastPath = "/forecast"
)

// Response formats offered by the provider
const (
	ModeJSON = "json"
	ModeXML  = "xml"
)

// weatherGatewayImpl implements the WeatherGateway interface over the OpenWeatherMap 2.5 API
type weatherGatewayImpl struct {
	httpClient *http.Client
	mode       string
}

// NewWeatherGateway creates a WeatherGateway; apiKey and units are sent with every request.
// mode selects the provider response format, anything but "xml" means JSON.
func NewWeatherGateway(baseUrl string, apiKey string, units string, mode string, clientOptions http.ClientOptions) WeatherGateway {
	if units == "" {
		units = "metric"
	}
	if mode != ModeXML {
		mode = ModeJSON
	}
	defaults := map[string]string{"units": units, "appid": apiKey}
	headers := map[string]string{"Accept": "application/json"}
	if mode == ModeXML {
		defaults["mode"] = ModeXML
		headers["Accept"] = "application/xml"
	}
	for k, v := range clientOptions.DefaultQueryParams {
		defaults[k] = v
	}
	for k, v := range clientOptions.DefaultHeaders {
		headers[k] = v
	}
	clientOptions.DefaultQueryParams = defaults
	clientOptions.DefaultHeaders = headers
	clientOptions.RedactedParams = append(clientOptions.RedactedParams, "appid")
	if clientOptions.Logger == nil {
		clientOptions.Logger = http.ZapHTTPLogger{Name: "openweathermap"}
	}

	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		mode:       mode,
	}
}

func coordinateParams(coords entity.Coordinates) map[string]string {
	return map[string]string{
		"lat": strconv.FormatFloat(coords.Latitude, 'f', -1, 64),
		"lon": strconv.FormatFloat(coords.Longitude, 'f', -1, 64),
	}
}

func coordinateQuery(coords entity.Coordinates) string {
	return fmt.Sprintf("%g,%g", coords.Latitude, coords.Longitude)
}

// CurrentByCoordinates gets current conditions for a latitude/longitude pair
func (w *weatherGatewayImpl) CurrentByCoordinates(ctx context.Context, coords entity.Coordinates) (*external.CurrentWeatherResponse, error) {
	return w.current(ctx, coordinateParams(coords), coordinateQuery(coords))
}

// ForecastByCoordinates gets the forecast list for a latitude/longitude pair
func (w *weatherGatewayImpl) ForecastByCoordinates(ctx context.Context, coords entity.Coordinates) (*external.ForecastResponse, error) {
	return w.forecast(ctx, coordinateParams(coords), coordinateQuery(coords))
}

// CurrentByPlace gets current conditions for a place name
func (w *weatherGatewayImpl) CurrentByPlace(ctx context.Context, place string) (*external.CurrentWeatherResponse, error) {
	return w.current(ctx, map[string]string{"q": place}, place)
}

// ForecastByPlace gets the forecast list for a place name
func (w *weatherGatewayImpl) ForecastByPlace(ctx context.Context, place string) (*external.ForecastResponse, error) {
	return w.forecast(ctx, map[string]string{"q": place}, place)
}

func (w *weatherGatewayImpl) current(ctx context.Context, params map[string]string, query string) (*external.CurrentWeatherResponse, error) {
	var target any = &external.CurrentWeatherResponse{}
	if w.mode == ModeXML {
		target = &external.CurrentWeatherXML{}
	}

	successResp, errResp, status, err := w.get(ctx, currentPath, params, target)
	if err != nil {
		return nil, translateError(query, status, errResp, err)
	}

	switch resp := successResp.(type) {
	case *external.CurrentWeatherResponse:
		return resp, nil
	case *external.CurrentWeatherXML:
		return resp.ToCurrentWeatherResponse(), nil
	default:
		return nil, fmt.Errorf("unexpected current weather payload %T", successResp)
	}
}

func (w *weatherGatewayImpl) forecast(ctx context.Context, params map[string]string, query string) (*external.ForecastResponse, error) {
	var target any = &external.ForecastResponse{}
	if w.mode == ModeXML {
		target = &external.ForecastXML{}
	}

	successResp, errResp, status, err := w.get(ctx, forecastPath, params, target)
	if err != nil {
		return nil, translateError(query, status, errResp, err)
	}

	switch resp := successResp.(type) {
	case *external.ForecastResponse:
		return resp, nil
	case *external.ForecastXML:
		return resp.ToForecastResponse(), nil
	default:
		return nil, fmt.Errorf("unexpected forecast payload %T", successResp)
	}
}

func (w *weatherGatewayImpl) get(ctx context.Context, path string, params map[string]string, target any) (any, any, int, error) {
	return w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithQueryParams(params).
		WithSuccessResp(target).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()
}

// translateError turns "not found" answers into LookupError and wraps everything else
func translateError(query string, status int, errResp any, err error) error {
	var message string
	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr != nil {
		message = apiErr.Message
	}

	var statusErr *http.StatusError
	if errors.As(err, &statusErr) && (status == nethttp.StatusNotFound || status == nethttp.StatusBadRequest) {
		return &LookupError{Query: query, StatusCode: status, Message: message}
	}

	if message != "" {
		return fmt.Errorf("weather provider error for %q: %s: %w", query, message, err)
	}
	return fmt.Errorf("weather provider request for %q failed: %w", query, err)
}

package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-widget/internal/domain/entity"
	"go-widget/internal/domain/model"
	"go-widget/internal/domain/usecase/session"

	"github.com/labstack/echo/v4"
)

type stubWeather struct {
	coordErr error
}

func (s *stubWeather) ByCoordinates(context.Context, entity.Coordinates) (*entity.WeatherSnapshot, error) {
	if s.coordErr != nil {
		return nil, s.coordErr
	}
	return &entity.WeatherSnapshot{City: "Asansol", Country: "IN", TemperatureCelsius: 31, ConditionMain: "Clouds",
		Forecast: []entity.ForecastEntry{{DateText: "2025-01-05 12:00:00", Temperature: 24.4}}}, nil
}

func (s *stubWeather) ByPlace(_ context.Context, place string) (*entity.WeatherSnapshot, error) {
	if strings.HasPrefix(place, "Atlantis") {
		return nil, errors.New("city not found")
	}
	return &entity.WeatherSnapshot{City: "Paris", Country: "FR", TemperatureCelsius: 18, ConditionMain: "Rain", Humidity: 81}, nil
}

func newTestServer(weather *stubWeather) *echo.Echo {
	e := echo.New()
	api := e.Group("/weather-widget")
	NewSessionController(api, session.NewSessionUseCase(weather, nil, nil, session.Options{})).InitSessionRoutes()
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func createSession(t *testing.T, e *echo.Echo, body string) model.CreateSessionResponse {
	t.Helper()
	rec := doJSON(t, e, http.MethodPost, "/weather-widget/sessions", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d body = %s", rec.Code, rec.Body.String())
	}
	var resp model.CreateSessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) model.WidgetView {
	t.Helper()
	var view model.WidgetView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v (%s)", err, rec.Body.String())
	}
	return view
}

func TestCreateSessionWithDeniedGeolocation(t *testing.T) {
	e := newTestServer(&stubWeather{})

	resp := createSession(t, e, `{"geolocation":"denied"}`)
	if resp.SessionID == "" {
		t.Fatal("missing session id")
	}
	if resp.Notice == nil || resp.Notice.Kind != entity.NoticePermissionDenied {
		t.Errorf("notice = %+v", resp.Notice)
	}
	if resp.View.Location == nil || resp.View.Location.TemperatureLabel != "31°C" {
		t.Errorf("view = %+v", resp.View)
	}
}

func TestCreateSessionRejectsBadInput(t *testing.T) {
	e := newTestServer(&stubWeather{})

	if rec := doJSON(t, e, http.MethodPost, "/weather-widget/sessions", `{"geolocation":`); rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d", rec.Code)
	}
	if rec := doJSON(t, e, http.MethodPost, "/weather-widget/sessions", `{"geolocation":"granted"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("granted without position status = %d", rec.Code)
	}
}

func TestCreateSessionFetchFailure(t *testing.T) {
	e := newTestServer(&stubWeather{coordErr: errors.New("connection refused")})

	rec := doJSON(t, e, http.MethodPost, "/weather-widget/sessions", `{"geolocation":"granted","position":{"latitude":1,"longitude":2}}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp model.CreateSessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.SessionID == "" || resp.View.FetchError == nil || resp.View.Loading == nil {
		t.Errorf("resp = %+v", resp)
	}
}

func TestSearchRoundTrip(t *testing.T) {
	e := newTestServer(&stubWeather{})
	id := createSession(t, e, `{"geolocation":"unsupported"}`).SessionID
	base := "/weather-widget/sessions/" + id

	rec := doJSON(t, e, http.MethodPost, base+"/search", `{"city":""}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("empty search status = %d", rec.Code)
	}
	view := decodeView(t, rec)
	if view.Search.SearchError == nil || view.Search.SearchError.Message != "Please enter a city name" {
		t.Errorf("search error = %+v", view.Search.SearchError)
	}

	if rec = doJSON(t, e, http.MethodPut, base+"/query", `{"query":"Paris"}`); rec.Code != http.StatusOK {
		t.Fatalf("query status = %d", rec.Code)
	}
	if got := decodeView(t, rec).Search.Query; got != "Paris" {
		t.Errorf("query = %q", got)
	}

	rec = doJSON(t, e, http.MethodPost, base+"/search", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("search status = %d body = %s", rec.Code, rec.Body.String())
	}
	view = decodeView(t, rec)
	if view.Phase != entity.PhaseSearchActive || view.Location.City != "Paris" {
		t.Errorf("view = %+v", view)
	}
	if view.Search.Heading != "Paris, FR" || view.Search.Details.Humidity != "81%" {
		t.Errorf("search panel = %+v", view.Search)
	}

	rec = doJSON(t, e, http.MethodPost, base+"/search", `{"city":"Atlantis"}`)
	view = decodeView(t, rec)
	if view.Search.Message != "Atlantis: City not found" {
		t.Errorf("inline message = %q", view.Search.Message)
	}
}

func TestSelectForecastAndRefresh(t *testing.T) {
	e := newTestServer(&stubWeather{})
	id := createSession(t, e, `{"geolocation":"granted","position":{"latitude":23.6,"longitude":86.9}}`).SessionID
	base := "/weather-widget/sessions/" + id

	rec := doJSON(t, e, http.MethodPost, base+"/forecast/select?index=0", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("select status = %d", rec.Code)
	}
	if loc := decodeView(t, rec).Location; loc.TemperatureLabel != "24°C" || !loc.FromForecast {
		t.Errorf("location = %+v", loc)
	}

	if rec = doJSON(t, e, http.MethodPost, base+"/forecast/select?index=5", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("out of range status = %d", rec.Code)
	}
	if rec = doJSON(t, e, http.MethodPost, base+"/forecast/select?index=-1", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("negative index status = %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodPost, base+"/forecast/select", `{"temperature":12.5}`)
	if loc := decodeView(t, rec).Location; loc.TemperatureLabel != "13°C" {
		t.Errorf("temperature selection = %+v", loc)
	}

	rec = doJSON(t, e, http.MethodPost, base+"/refresh", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh status = %d", rec.Code)
	}
	if loc := decodeView(t, rec).Location; loc.TemperatureLabel != "31°C" || loc.FromForecast {
		t.Errorf("refresh did not replace state: %+v", loc)
	}
}

func TestDeleteSession(t *testing.T) {
	e := newTestServer(&stubWeather{})
	id := createSession(t, e, `{"geolocation":"denied"}`).SessionID

	if rec := doJSON(t, e, http.MethodDelete, "/weather-widget/sessions/"+id, ""); rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	if rec := doJSON(t, e, http.MethodGet, "/weather-widget/sessions/"+id, ""); rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d", rec.Code)
	}
}

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

type payload struct {
	Name string `json:"name"`
}

type apiError struct {
	Cod     string `json:"cod"`
	Message string `json:"message"`
}

type recordingLogger struct {
	mu       sync.Mutex
	requests []string
	errors   int
}

func (l *recordingLogger) LogRequest(method, url string, headers map[string]string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.requests = append(l.requests, url)
}

func (l *recordingLogger) LogResponseSuccess(method, url string, httpStatus int, responseBody string, latency int64) {
}

func (l *recordingLogger) LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors++
}

func TestExecuteDecodesSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/weather" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "São Paulo,BR" {
			t.Errorf("q = %q", got)
		}
		if got := r.URL.Query().Get("appid"); got != "key" {
			t.Errorf("appid = %q", got)
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"name":"São Paulo"}`))
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client := NewHttpClient(server.URL+"/", ClientOptions{
		DefaultQueryParams: map[string]string{"appid": "key"},
		RedactedParams:     []string{"appid"},
		Logger:             logger,
	})

	resp, errResp, status, err := client.Request().
		WithPath("weather").
		WithQueryParams(map[string]string{"q": "São Paulo,BR"}).
		WithSuccessResp(&payload{}).
		Execute()
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if errResp != nil {
		t.Errorf("unexpected error response %v", errResp)
	}
	if status != http.StatusOK {
		t.Errorf("status = %d", status)
	}
	if got := resp.(*payload).Name; got != "São Paulo" {
		t.Errorf("name = %q", got)
	}
	if len(logger.requests) != 1 || strings.Contains(logger.requests[0], "appid=key") {
		t.Errorf("api key leaked into logs: %v", logger.requests)
	}
}

func TestExecuteDecodesErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client := NewHttpClient(server.URL, ClientOptions{Logger: logger})

	_, errResp, status, err := client.Request().
		WithPath("/weather").
		WithSuccessResp(&payload{}).
		WithErrorResp(&apiError{}).
		Execute()

	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected StatusError 404, got %v", err)
	}
	if status != http.StatusNotFound {
		t.Errorf("status = %d", status)
	}
	if got := errResp.(*apiError).Message; got != "city not found" {
		t.Errorf("message = %q", got)
	}
	if logger.errors != 1 {
		t.Errorf("errors logged = %d, want 1", logger.errors)
	}
}

func TestExecuteDecodesXML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml; charset=ISO-8859-1")
		_, _ = w.Write([]byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><city name=\"Bras\xedlia\"></city>"))
	}))
	defer server.Close()

	type city struct {
		Name string `xml:"name,attr"`
	}

	resp, _, _, err := NewHttpClient(server.URL, ClientOptions{}).Request().
		WithSuccessResp(&city{}).
		Execute()
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := resp.(*city).Name; got != "Brasília" {
		t.Errorf("name = %q, want Brasília", got)
	}
}

func TestExecuteHonoursContextCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, _, _, err := NewHttpClient(server.URL, ClientOptions{}).Request().
		WithContext(ctx).
		WithSuccessResp(&payload{}).
		Execute()
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestExecuteRequiresClient(t *testing.T) {
	if _, _, _, err := NewHttpClientRequest(nil).Execute(); err == nil {
		t.Fatal("expected error without client")
	}
}

func TestExecuteSendsDefaultHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/xml" {
			t.Errorf("accept = %q", got)
		}
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		_, _ = w.Write([]byte(`<city name="Asansol"></city>`))
	}))
	defer server.Close()

	type city struct {
		Name string `xml:"name,attr"`
	}

	logger := &recordingLogger{}
	resp, _, _, err := NewHttpClient(server.URL, ClientOptions{
		DefaultHeaders: map[string]string{"Accept": "application/xml"},
		Logger:         logger,
	}).Request().
		WithPath("/weather").
		WithSuccessResp(&city{}).
		Execute()
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := resp.(*city).Name; got != "Asansol" {
		t.Errorf("name = %q", got)
	}
	if len(logger.requests) != 1 {
		t.Errorf("requests logged = %d, want 1", len(logger.requests))
	}
}

package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/msuleman526/tripshow/pkg/adapters/logger"
	"github.com/msuleman526/tripshow/pkg/ports"
)

var testDate = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

func TestService_Temperature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("start_date"); got != "2025-07-01" {
			t.Errorf("start_date = %q, want 2025-07-01", got)
		}
		w.Write([]byte(`{"hourly":{"temperature_2m":[18.0, 20.0, null, 22.6]}}`))
	}))
	defer srv.Close()

	svc := New(srv.URL, srv.Client(), logger.NewNoop())
	got := svc.Temperature(context.Background(), 46.0, 7.7, testDate)

	// (18 + 20 + 22.6) / 3 = 20.2 rounds to 20; null samples skipped.
	if got != "20°C" {
		t.Errorf("Temperature = %q, want 20°C", got)
	}
}

func TestService_TemperatureAllNull(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hourly":{"temperature_2m":[null, null]}}`))
	}))
	defer srv.Close()

	svc := New(srv.URL, srv.Client(), logger.NewNoop())
	if got := svc.Temperature(context.Background(), 46.0, 7.7, testDate); got != ports.NotAvailable {
		t.Errorf("Temperature = %q, want %q", got, ports.NotAvailable)
	}
}

func TestService_TemperatureServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := New(srv.URL, srv.Client(), logger.NewNoop())
	if got := svc.Temperature(context.Background(), 46.0, 7.7, testDate); got != ports.NotAvailable {
		t.Errorf("Temperature = %q, want %q", got, ports.NotAvailable)
	}
}

func TestService_TemperatureUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	svc := New(srv.URL, nil, logger.NewNoop())
	if got := svc.Temperature(context.Background(), 46.0, 7.7, testDate); got != ports.NotAvailable {
		t.Errorf("Temperature = %q, want %q", got, ports.NotAvailable)
	}
}

package openelevation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/msuleman526/tripshow/pkg/adapters/logger"
	"github.com/msuleman526/tripshow/pkg/ports"
)

func TestService_Elevation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"elevation":1608.4}]}`))
	}))
	defer srv.Close()

	svc := New(srv.URL, srv.Client(), logger.NewNoop())
	if got := svc.Elevation(context.Background(), 46.0, 7.7); got != "1608m" {
		t.Errorf("Elevation = %q, want 1608m", got)
	}
}

func TestService_ElevationEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	svc := New(srv.URL, srv.Client(), logger.NewNoop())
	if got := svc.Elevation(context.Background(), 46.0, 7.7); got != ports.NotAvailable {
		t.Errorf("Elevation = %q, want %q", got, ports.NotAvailable)
	}
}

func TestService_ElevationServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := New(srv.URL, srv.Client(), logger.NewNoop())
	if got := svc.Elevation(context.Background(), 46.0, 7.7); got != ports.NotAvailable {
		t.Errorf("Elevation = %q, want %q", got, ports.NotAvailable)
	}
}

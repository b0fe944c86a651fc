package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ErlanBelekov/bookstore/internal/health"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestRegister_ExposesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	Register(reg)

	OrdersPlacedTotal.WithLabelValues("COD").Inc()
	OrdersCancelledTotal.WithLabelValues("expired").Add(2)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	names := map[string]bool{}
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	for _, want := range []string{"bookstore_orders_placed_total", "bookstore_orders_cancelled_total"} {
		if !names[want] {
			t.Errorf("metric %s not gathered", want)
		}
	}
}

func TestNewServer_Probes(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{"liveness", "/healthz", errors.New("down"), http.StatusOK, "up"},
		{"ready", "/readyz", nil, http.StatusOK, "up"},
		{"not ready", "/readyz", errors.New("connection refused"), http.StatusServiceUnavailable, "down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := health.NewChecker(map[string]health.Pinger{"postgres": pinger{err: tt.pingErr}}, slog.Default(), prometheus.NewRegistry())
			srv := NewServer(":0", checker)

			w := httptest.NewRecorder()
			srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var res health.HealthResult
			if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if res.Status != tt.wantBody {
				t.Errorf("status field = %q, want %q", res.Status, tt.wantBody)
			}
		})
	}
}

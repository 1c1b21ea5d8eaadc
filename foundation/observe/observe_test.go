package observe_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/superfeelapi/goMptTriage/foundation/observe"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

func TestNewMetrics(t *testing.T) {
	m, err := observe.NewMetrics(sdkmetric.NewMeterProvider())
	if err != nil {
		t.Fatal(err)
	}
	if m.AnalysisDuration == nil || m.Analyses == nil || m.HTTPRequestDuration == nil {
		t.Fatal("instruments not initialised")
	}
}

func TestMiddleware(t *testing.T) {
	m, err := observe.NewMetrics(sdkmetric.NewMeterProvider())
	if err != nil {
		t.Fatal(err)
	}

	handler := observe.Middleware(m, zap.NewNop().Sugar())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analyze-mpt", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}

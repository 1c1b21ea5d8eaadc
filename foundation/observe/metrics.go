// Package observe holds the OpenTelemetry metric instruments for the triage
// service plus the HTTP middleware that records them. Metrics are exported
// through a Prometheus reader so the standard /metrics endpoint keeps
// working.
package observe

import (
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope for all service metrics.
const meterName = "github.com/superfeelapi/goMptTriage"

// Metrics holds the metric instruments. The underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// AnalysisDuration tracks end-to-end measurement latency per request.
	AnalysisDuration metric.Float64Histogram

	// Analyses counts measurements. Use with attributes:
	//   attribute.String("status", ...), attribute.String("urgency", ...)
	Analyses metric.Int64Counter

	// HTTPRequestDuration tracks HTTP request processing time by method and
	// path.
	HTTPRequestDuration metric.Float64Histogram
}

// latencyBuckets covers the expected processing range: a full scan of a 30s
// clip stays well under a second.
var latencyBuckets = []float64{
	0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5,
}

// NewMetrics creates the instruments on the given MeterProvider.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.AnalysisDuration, err = m.Float64Histogram("mpt.analysis.duration",
		metric.WithDescription("Latency of one MPT measurement."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	if met.Analyses, err = m.Int64Counter("mpt.analyses",
		metric.WithDescription("Total MPT measurements by status and urgency."),
	); err != nil {
		return nil, err
	}

	if met.HTTPRequestDuration, err = m.Float64Histogram("mpt.http.request.duration",
		metric.WithDescription("HTTP request latency by method and path."),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	return met, nil
}

package worker

import (
	"context"

	"github.com/superfeelapi/goMptTriage/foundation/state"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

func (w *Worker) eventsOperation() {
	w.logger.Infow("worker: eventsOperation: G started")
	defer w.logger.Infow("worker: eventsOperation: G completed")

	ch := w.analysisSub.GetChannel()

	w.logger.Infow("worker: eventsOperation: G listening")
	for {
		select {
		case evt := <-ch:
			w.recordAnalysis(evt)

		case <-w.shut:
			w.logger.Infow("worker: eventsOperation: received shut signal")
			return
		}
	}
}

func (w *Worker) recordAnalysis(evt Event) {
	status := "success"
	if !evt.Result.Success {
		status = "rejected"
	}

	urgency := "NONE"
	if evt.Result.Classification != nil {
		urgency = evt.Result.Classification.Urgency
	}

	w.logger.Infow("worker: eventsOperation: analysis completed",
		"request_id", evt.RequestID,
		"mpt", evt.Result.Mpt,
		"status", status,
		"urgency", urgency,
		"elapsed", evt.Elapsed,
	)

	if w.metrics == nil || !w.state.Get(state.Metrics) {
		return
	}

	ctx := context.Background()
	w.metrics.Analyses.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", status),
		attribute.String("urgency", urgency),
	))
	w.metrics.AnalysisDuration.Record(ctx, evt.Elapsed.Seconds())
}

package worker

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/superfeelapi/goMptTriage/business/mpt"
	"github.com/superfeelapi/goMptTriage/foundation/wave"
)

type analyzeRequest struct {
	AudioData string `json:"audio_data"`
}

// analyzeHandler runs one measurement: decode the payload, scan, respond.
// Processing-level failures (undecodable audio, wrong format, phonation too
// short) come back as structured results, never as bare status codes.
func (w *Worker) analyzeHandler(rw http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.respond(rw, http.StatusBadRequest, mpt.Result{Error: "invalid request body"})
		return
	}
	if req.AudioData == "" {
		w.respond(rw, http.StatusBadRequest, mpt.Result{Error: "no audio data provided"})
		return
	}

	audio, err := base64.StdEncoding.DecodeString(req.AudioData)
	if err != nil {
		w.failProcessing(rw, requestID, fmt.Errorf("decoding base64 audio: %w", err))
		return
	}

	clip, err := wave.Decode(audio)
	if err != nil {
		w.failProcessing(rw, requestID, fmt.Errorf("decoding wav container: %w", err))
		return
	}
	if clip.SampleRate != w.engine.SampleRate {
		w.failProcessing(rw, requestID, fmt.Errorf("expected %dHz audio, got %dHz", w.engine.SampleRate, clip.SampleRate))
		return
	}

	start := time.Now()
	result := w.processor.Process(clip.PCM)
	elapsed := time.Since(start)

	if err := w.broker.Publish(AnalysisTopic, Event{
		RequestID: requestID,
		Result:    result,
		Elapsed:   elapsed,
	}); err != nil {
		w.logger.Errorw("worker: analyze: publish", "request_id", requestID, "ERROR", err)
	}

	w.respond(rw, http.StatusOK, result)
}

func (w *Worker) failProcessing(rw http.ResponseWriter, requestID string, err error) {
	w.logger.Errorw("worker: analyze", "request_id", requestID, "ERROR", err)
	w.respond(rw, http.StatusInternalServerError, mpt.Result{
		Error: fmt.Sprintf("processing error: %s", err),
	})
}

func (w *Worker) respond(rw http.ResponseWriter, status int, result mpt.Result) {
	rw.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(result); err != nil {
		w.logger.Errorw("worker: respond", "ERROR", err)
	}
}

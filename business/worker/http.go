package worker

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/superfeelapi/goMptTriage/foundation/observe"
)

func (w *Worker) httpOperation() {
	w.logger.Infow("worker: httpOperation: G started")
	defer w.logger.Infow("worker: httpOperation: G completed")

	server := &http.Server{
		Addr:         w.config.APIHost,
		Handler:      w.Handler(),
		ReadTimeout:  w.config.ReadTimeout,
		WriteTimeout: w.config.WriteTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.ListenAndServe()
	}()

	w.logger.Infow("worker: httpOperation: G listening", "host", w.config.APIHost)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			w.errors <- err
		}

	case <-w.shut:
		w.logger.Infow("worker: httpOperation: received shut signal")

		ctx, cancel := context.WithTimeout(context.Background(), w.config.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			w.logger.Errorw("worker: httpOperation: graceful shutdown", "ERROR", err)
			server.Close()
		}
	}
}

// Handler exposes the full HTTP surface of the worker.
func (w *Worker) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/analyze-mpt", w.analyzeHandler)
	mux.Handle("GET /metrics", promhttp.Handler())
	w.health.Register(mux)

	var handler http.Handler = mux
	if w.metrics != nil {
		handler = observe.Middleware(w.metrics, w.logger)(handler)
	}

	return cors(handler)
}

// cors mirrors the recorder deployment: the clip is posted by a browser
// page served from another origin, so any origin may call the API and
// preflights are answered before routing.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Access-Control-Allow-Origin", "*")
		rw.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		rw.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			rw.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(rw, r)
	})
}

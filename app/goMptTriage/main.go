package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/superfeelapi/goMptTriage/business/mpt"
	"github.com/superfeelapi/goMptTriage/business/worker"
	"github.com/superfeelapi/goMptTriage/foundation/config"
	"github.com/superfeelapi/goMptTriage/foundation/external/vad"
	"github.com/superfeelapi/goMptTriage/foundation/health"
	"github.com/superfeelapi/goMptTriage/foundation/logger"
	"github.com/superfeelapi/goMptTriage/foundation/observe"
	"github.com/superfeelapi/goMptTriage/foundation/pubsub"
	"github.com/superfeelapi/goMptTriage/foundation/state"
	"go.opentelemetry.io/otel"
)

var (
	version   string
	buildTime string
)

func main() {
	// =================================================================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Web struct {
			APIHost         string        `conf:"default:0.0.0.0:5000"`
			ReadTimeout     time.Duration `conf:"default:10s"`
			WriteTimeout    time.Duration `conf:"default:30s"`
			ShutdownTimeout time.Duration `conf:"default:20s"`
		}
		Engine struct {
			SettingsPath string
		}
	}{
		Version: conf.Version{
			Build: version,
			Desc:  buildTime,
		},
	}

	help, err := conf.Parse("MPT", &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// =================================================================================================================
	// Application Logger

	log, err := logger.New("goMptTriage")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	// =================================================================================================================
	// Configuration Stringify

	out, err := conf.String(&cfg)
	if err != nil {
		log.Errorw("startup", "ERROR", err)
		os.Exit(1)
	}
	log.Infow("startup", "config", out)

	// =================================================================================================================
	// Engine Settings

	settings, err := config.Load(cfg.Engine.SettingsPath)
	if err != nil {
		log.Errorw("startup", "ERROR", err)
		os.Exit(1)
	}

	engine := mpt.DefaultConfig()
	if settings.Engine.SampleRate > 0 {
		engine.SampleRate = settings.Engine.SampleRate
	}
	if settings.Engine.FrameDurationMs > 0 {
		engine.FrameDuration = time.Duration(settings.Engine.FrameDurationMs) * time.Millisecond
	}
	if settings.Engine.CalibrationWindowMs > 0 {
		engine.CalibrationWindow = time.Duration(settings.Engine.CalibrationWindowMs) * time.Millisecond
	}
	if settings.Engine.SilenceTimeoutMs > 0 {
		engine.SilenceTimeout = time.Duration(settings.Engine.SilenceTimeoutMs) * time.Millisecond
	}
	if settings.Engine.MinSpeechDurationMs > 0 {
		engine.MinSpeechDuration = time.Duration(settings.Engine.MinSpeechDurationMs) * time.Millisecond
	}

	// =================================================================================================================
	// Service State

	st := state.NewState()

	// =================================================================================================================
	// Metrics

	var metrics *observe.Metrics

	shutdownMetrics, err := observe.InitProvider("goMptTriage", version)
	if err != nil {
		log.Errorw("startup: metrics disabled", "ERROR", err)
		st.Set(state.Metrics, false)
	} else {
		defer shutdownMetrics(context.Background())

		metrics, err = observe.NewMetrics(otel.GetMeterProvider())
		if err != nil {
			log.Errorw("startup: metrics disabled", "ERROR", err)
			st.Set(state.Metrics, false)
			metrics = nil
		}
	}

	// =================================================================================================================
	// Voice Activity Oracle

	oracle, err := vad.New()
	if err != nil {
		log.Errorw("startup", "ERROR", err)
		os.Exit(1)
	}

	// =================================================================================================================
	// Health Probes

	healthHandler := health.New(health.Checker{
		Name: "worker",
		Check: func(ctx context.Context) error {
			if !st.Get(state.Ready) {
				return errors.New("worker not ready")
			}
			return nil
		},
	})

	// =================================================================================================================
	// Run Worker

	w, workerErrors := worker.Run(worker.Settings{
		Logger:  log,
		State:   st,
		Health:  healthHandler,
		Metrics: metrics,
		Broker:  pubsub.NewBroker[worker.Event](),
		Engine:  engine,
		Oracle:  oracle,
		Config: worker.Config{
			APIHost:         cfg.Web.APIHost,
			ReadTimeout:     cfg.Web.ReadTimeout,
			WriteTimeout:    cfg.Web.WriteTimeout,
			ShutdownTimeout: cfg.Web.ShutdownTimeout,
		},
	})

	// =================================================================================================================
	// Blocking main and waiting for error or shutdown signal.

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-workerErrors:
		log.Errorw("shutdown", "ERROR", err)
		w.Stop()
		os.Exit(1)

	case sig := <-shutdown:
		log.Infow("shutdown", "signal", sig.String())
		w.Stop()
	}
}

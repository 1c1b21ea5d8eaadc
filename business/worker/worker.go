package worker

import (
	"sync"

	"github.com/superfeelapi/goMptTriage/business/mpt"
	"github.com/superfeelapi/goMptTriage/foundation/health"
	"github.com/superfeelapi/goMptTriage/foundation/observe"
	"github.com/superfeelapi/goMptTriage/foundation/pubsub"
	"github.com/superfeelapi/goMptTriage/foundation/state"
	"go.uber.org/zap"
)

// AnalysisTopic carries one Event per measurement on the broker.
const AnalysisTopic = "analysis"

type Worker struct {
	config  Config
	state   *state.State
	logger  *zap.SugaredLogger
	health  *health.Handler
	metrics *observe.Metrics

	engine    mpt.Config
	processor *mpt.Processor

	broker      *pubsub.Broker[Event]
	analysisSub *pubsub.Subscriber[Event]

	wg     sync.WaitGroup
	shut   chan struct{}
	errors chan error
}

// New wires a Worker without starting its operations. Run is the normal
// entry point; New stands alone so the HTTP surface can be exercised
// directly.
func New(s Settings) *Worker {
	w := &Worker{
		config:    s.Config,
		state:     s.State,
		logger:    s.Logger,
		health:    s.Health,
		metrics:   s.Metrics,
		engine:    s.Engine,
		processor: mpt.NewProcessor(s.Engine, s.Oracle),
		broker:    s.Broker,
		shut:      make(chan struct{}),
		errors:    make(chan error, 1),
	}

	// Subscribe before any request can publish.
	w.analysisSub = pubsub.NewSubscriber[Event](64)
	w.broker.Subscribe(AnalysisTopic, w.analysisSub)

	return w
}

// Run starts the service operations and reports readiness once every
// goroutine is up. Fatal operation errors arrive on the returned channel.
func Run(s Settings) (*Worker, <-chan error) {
	w := New(s)

	operations := []func(){
		w.eventsOperation,
		w.httpOperation,
	}

	g := len(operations)
	w.wg.Add(g)

	hasStarted := make(chan bool)

	for _, op := range operations {
		go func(op func()) {
			defer w.wg.Done()
			hasStarted <- true
			op()
		}(op)
	}

	for i := 0; i < g; i++ {
		<-hasStarted
	}

	w.state.Set(state.Ready, true)

	return w, w.errors
}

// Stop terminates the operations and waits for them to drain.
func (w *Worker) Stop() {
	w.logger.Infow("worker: stop: started")
	defer w.logger.Infow("worker: stop: completed")

	w.state.Set(state.Ready, false)
	close(w.shut)

	w.wg.Wait()
}

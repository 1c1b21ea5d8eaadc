package worker

import (
	"time"

	"github.com/superfeelapi/goMptTriage/business/mpt"
	"github.com/superfeelapi/goMptTriage/foundation/health"
	"github.com/superfeelapi/goMptTriage/foundation/observe"
	"github.com/superfeelapi/goMptTriage/foundation/pubsub"
	"github.com/superfeelapi/goMptTriage/foundation/state"
	"go.uber.org/zap"
)

type Settings struct {
	Config
	Logger  *zap.SugaredLogger
	State   *state.State
	Health  *health.Handler
	Metrics *observe.Metrics
	Broker  *pubsub.Broker[Event]
	Engine  mpt.Config
	Oracle  mpt.Oracle
}

type Config struct {
	APIHost         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// =====================================================================================================================

// Event is published on the analysis topic after every measurement, whether
// it succeeded or was rejected.
type Event struct {
	RequestID string
	Result    mpt.Result
	Elapsed   time.Duration
}

package behaviours

import (
	"context"
	"time"

	"github.com/skycruzer/fleet-management-v2-sub013/internal/logging"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/metrics"
	"github.com/skycruzer/fleet-management-v2-sub013/mediator"
)

// MetricsBehaviour times every mediator request.
func MetricsBehaviour(ctx context.Context, request any, next mediator.Next) error {
	requestName := mediator.RequestName(request)
	start := time.Now()

	err := next()

	outcome := "ok"
	if err != nil {
		outcome = "error"
		logging.Logger.Debugf("request %s failed: %v", requestName, err)
	}

	metrics.MediatorRequestDuration.
		WithLabelValues(requestName, outcome).
		Observe(time.Since(start).Seconds())

	return err
}

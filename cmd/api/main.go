// @title       Fleet Portal Password API
// @description Password strength evaluation for the fleet operations portal.
// @BasePath    /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/The127/ioc"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/config"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/logging"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/metrics"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/middlewares"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/queries"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/server"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/services/keyValue"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/setup"
	"github.com/skycruzer/fleet-management-v2-sub013/mediator"
	"github.com/skycruzer/fleet-management-v2-sub013/utils"
)

func main() {
	config.Init()

	logging.Init()
	defer logging.Sync()

	metrics.Init()

	dc := ioc.NewDependencyCollection()

	setup.Clock(dc)
	setup.Caching(dc, config.C.Cache)
	setup.Services(dc, config.C.Cache)
	setup.Mediator(dc)
	dp := dc.BuildProvider()

	warmUp(dp)

	srv := server.Serve(dp, config.C.Server)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logging.Logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := server.Shutdown(ctx, srv)
	if err != nil {
		logging.Logger.Errorf("graceful shutdown failed: %v", err)
	}
}

// warmUp resolves the cache and runs one query through the mediator before
// the server accepts traffic, so broken wiring or an unreachable redis stop
// the process at startup.
func warmUp(dp *ioc.DependencyProvider) {
	scope := dp.NewScope()
	defer utils.PanicOnError(scope.Close, "failed closing warm up scope")

	ctx := middlewares.ContextWithScope(context.Background(), scope)

	_ = ioc.GetDependency[keyValue.Store](scope)

	m := ioc.GetDependency[mediator.Mediator](scope)
	levels, err := mediator.Send[*queries.ListStrengthLevelsResponse](ctx, m, queries.ListStrengthLevels{})
	if err != nil {
		logging.Logger.Fatalf("failed to list strength levels: %v", err)
	}

	logging.Logger.Infof("password evaluator ready with %d strength levels", len(levels.Items))
}

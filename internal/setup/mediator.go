package setup

import (
	"github.com/The127/ioc"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/behaviours"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/queries"
	"github.com/skycruzer/fleet-management-v2-sub013/mediator"
)

func Mediator(dc *ioc.DependencyCollection) {
	m := mediator.NewMediator()

	mediator.RegisterHandler(m, queries.HandleEvaluatePassword)
	mediator.RegisterHandler(m, queries.HandleListStrengthLevels)

	mediator.RegisterBehaviour(m, behaviours.MetricsBehaviour)

	ioc.RegisterSingleton(dc, func(_ *ioc.DependencyProvider) mediator.Mediator {
		return m
	})
}

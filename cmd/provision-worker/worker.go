package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ProjectReef/reef/internal/pkg/provision"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/db"
	log "github.com/ProjectReef/reef/internal/pkg/reef-server/logger"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/models"
)

// nonTerminalStates are the states the worker keeps advancing. Anything else
// is left to user or admin action.
var nonTerminalStates = []models.ServiceState{
	models.ServiceStatePending,
	models.ServiceStateProvisioning,
	models.ServiceStateStarting,
	models.ServiceStateUnknown,
}

func worker(db db.DB, coordinator *provision.Coordinator, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		advanceAll(db, coordinator, interval)
		<-ticker.C
	}
}

// advanceAll runs one pass over the in-flight services. Advances run
// sequentially; the coordinator serializes per service anyway, and a single
// pass keeps the load on the orchestration engine predictable.
func advanceAll(db db.DB, coordinator *provision.Coordinator, interval time.Duration) {
	l := log.GetLogger()

	services, err := db.GetServicesByStates(nonTerminalStates...)
	if err != nil {
		l.Error("error listing in-flight services", zap.Error(err))
		return
	}

	for _, service := range services {
		ctx, cancel := context.WithTimeout(context.Background(), interval)
		if err := coordinator.Advance(ctx, service.ID); err != nil {
			l.Error("error advancing service", zap.String("service id", service.ID), zap.Error(err))
		}
		cancel()
	}
}

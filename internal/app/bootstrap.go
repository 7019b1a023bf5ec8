// Package app is the composition root. Bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"uhc-registry.io/registry/internal/api/handlers"
	"uhc-registry.io/registry/internal/app/modules"
	"uhc-registry.io/registry/internal/config"
	"uhc-registry.io/registry/internal/infrastructure"
	"uhc-registry.io/registry/internal/jobs"
	"uhc-registry.io/registry/internal/pkg/worker"
)

// Application holds composed application dependencies.
type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *infrastructure.DatabaseClients
	Pools   *worker.Pools
	Modules []modules.Module
	Watch   *jobs.WatchFolder
}

// Bootstrap initializes all dependencies using module-oriented manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	infra, err := modules.NewInfrastructure(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init infrastructure: %w", err)
	}

	intakeModule, err := modules.NewIntakeModule(infra)
	if err != nil {
		infra.Close()
		return nil, fmt.Errorf("init intake module: %w", err)
	}
	allModules := []modules.Module{intakeModule}

	workers := river.NewWorkers()
	for _, mod := range allModules {
		mod.RegisterWorkers(workers)
	}
	if err := infra.InitRiver(workers); err != nil {
		infra.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}
	if infra.RiverClient != nil {
		// Archive sweep: finish PARTIALLY_COMPLETED packages whose container
		// archival failed at commit time.
		infra.RiverClient.PeriodicJobs().Add(
			river.NewPeriodicJob(
				river.PeriodicInterval(24*time.Hour),
				func() (river.JobArgs, *river.InsertOpts) {
					return jobs.ArchiveSweepArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		)
		// Notification retention cleanup: run daily and once on startup to
		// avoid long-lived inbox bloat.
		infra.RiverClient.PeriodicJobs().Add(
			river.NewPeriodicJob(
				river.PeriodicInterval(24*time.Hour),
				func() (river.JobArgs, *river.InsertOpts) {
					return jobs.NotificationCleanupArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		)
	}

	watch := jobs.NewWatchFolder(cfg.Watch, intakeModule.Service(), infra.RiverClient)

	serverDeps := modules.NewServerDeps(cfg, infra, allModules)
	server := handlers.NewServer(serverDeps)

	return &Application{
		Config:  cfg,
		Router:  newRouter(cfg, server),
		DB:      infra.DB,
		Pools:   infra.Pools,
		Modules: allModules,
		Watch:   watch,
	}, nil
}

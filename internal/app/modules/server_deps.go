package modules

import (
	"uhc-registry.io/registry/internal/api/handlers"
	"uhc-registry.io/registry/internal/config"
)

// NewServerDeps builds base server deps then lets each module contribute
// explicit wiring.
func NewServerDeps(cfg *config.Config, infra *Infrastructure, mods []Module) handlers.ServerDeps {
	deps := handlers.ServerDeps{
		EntClient:      infra.EntClient,
		Pool:           infra.Pool,
		MaxUploadBytes: cfg.Intake.MaxPackageSizeBytes,
	}
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		mod.ContributeServerDeps(&deps)
	}
	return deps
}

package bootstrap

import (
	"sync"

	"github.com/kbukum/wirekit/container"
	"github.com/kbukum/wirekit/logger"
	"github.com/kbukum/wirekit/registry"
)

// CleanupGuard marks a container as having gone through service
// initialization. Its presence is the re-entry check for InitializeServices;
// running it releases the startup-only caches held by the registry.
type CleanupGuard struct {
	registry *registry.Registry
	once     sync.Once
	ran      bool
}

func newCleanupGuard(r *registry.Registry) *CleanupGuard {
	return &CleanupGuard{registry: r}
}

// Run purges the registry's scan snapshots. Only the first call has any
// effect.
func (g *CleanupGuard) Run() {
	g.once.Do(func() {
		g.registry.ClearCaches()
		g.ran = true
	})
}

// Ran reports whether the guard has run.
func (g *CleanupGuard) Ran() bool { return g.ran }

// CompleteStartup ends the startup window for a container: the cleanup guard
// registered by InitializeServices runs, releasing scan snapshots that only
// the initialization phases consume. Call it once every initialization call
// against the container is done. Calling it again, or on a container that was
// never initialized, is a no-op.
func CompleteStartup(c *container.Container) {
	guard, ok := container.TryResolve[*CleanupGuard](c)
	if !ok {
		return
	}
	guard.Run()
	logger.WithComponent("bootstrap").Debug("startup caches released")
}

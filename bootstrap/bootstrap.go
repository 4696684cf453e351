package bootstrap

import (
	"github.com/kbukum/wirekit/config"
	"github.com/kbukum/wirekit/container"
	"github.com/kbukum/wirekit/logger"
	"github.com/kbukum/wirekit/pipeline"
)

// InitializeServices applies the registry's binding declarations to the
// container, binds the declared configuration types from the source, and runs
// the service setups, in that order. It returns the sorted union of
// configuration key paths the bound types consume, for diagnostics and ops
// tooling.
//
// The call is idempotent per container: the first call registers a cleanup
// guard, and later calls observe it and return (nil, nil) without touching
// the container again.
func InitializeServices(c *container.Container, src *config.Source, opts ...Option) ([]string, error) {
	o := resolveOptions(opts)
	log := o.log.WithComponent("bootstrap")

	if c.Contains(container.KeyOf[*CleanupGuard]()) {
		log.Debug("services already initialized, skipping")
		return nil, nil
	}

	snap := o.registry.Scan(o.filter)
	applyBindings(c, o.registry, snap, log)
	c.Put(container.KeyOf[*CleanupGuard](), container.ForInstance(newCleanupGuard(o.registry)))

	keys, err := applyConfigurations(c, src, snap, log)
	if err != nil {
		log.Error("configuration binding failed", logger.ErrorFields("configuration", err))
		return nil, err
	}
	if err := runServiceSetups(c, src, snap, log); err != nil {
		log.Error("service setup failed", logger.ErrorFields("service-setup", err))
		return nil, err
	}
	return keys, nil
}

// InitializeApp runs the registry's app setups against a pipeline builder.
// Each setup fires at most once per process; repeated calls only run setups
// declared since the last one.
func InitializeApp(b *pipeline.Builder, src *config.Source, opts ...Option) error {
	o := resolveOptions(opts)
	log := o.log.WithComponent("bootstrap")

	snap := o.registry.Scan(o.filter)
	if err := runAppSetups(o.registry, b, src, snap, log); err != nil {
		log.Error("app setup failed", logger.ErrorFields("app-setup", err))
		return err
	}
	return nil
}

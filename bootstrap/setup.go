package bootstrap

import (
	"github.com/kbukum/wirekit/config"
	"github.com/kbukum/wirekit/container"
	"github.com/kbukum/wirekit/errors"
	"github.com/kbukum/wirekit/logger"
	"github.com/kbukum/wirekit/pipeline"
	"github.com/kbukum/wirekit/registry"
)

// runServiceSetups invokes the scanned service setups in declaration order.
// The first failure aborts initialization, wrapped with the setup's name.
func runServiceSetups(c *container.Container, src *config.Source, snap *registry.Snapshot, log *logger.Logger) error {
	for _, s := range snap.ServiceSetups {
		log.Debug("running service setup", logger.Fields(logger.FieldSetup, s.Name))
		if err := s.Fn(c, src); err != nil {
			return errors.SetupFailed(s.Name, err)
		}
	}
	log.Info("service setups completed", logger.Fields(logger.FieldCount, len(snap.ServiceSetups)))
	return nil
}

// runAppSetups invokes the scanned app setups in declaration order. Each
// setup is marked invoked before it runs, so it fires at most once per
// process even when InitializeApp is called for several pipelines or retried
// after a failure elsewhere.
func runAppSetups(r *registry.Registry, b *pipeline.Builder, src *config.Source, snap *registry.Snapshot, log *logger.Logger) error {
	ran := 0
	for _, s := range snap.AppSetups {
		if !r.MarkInvoked(s.Name) {
			log.Debug("app setup already ran", logger.Fields(logger.FieldSetup, s.Name))
			continue
		}
		log.Debug("running app setup", logger.Fields(logger.FieldSetup, s.Name))
		if err := s.Fn(b, src); err != nil {
			return errors.SetupFailed(s.Name, err)
		}
		ran++
	}
	log.Info("app setups completed", logger.Fields(logger.FieldCount, ran))
	return nil
}

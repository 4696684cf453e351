package bootstrap

import (
	"reflect"
	"sort"

	"github.com/kbukum/wirekit/container"
	"github.com/kbukum/wirekit/logger"
	"github.com/kbukum/wirekit/registry"
)

// applyBindings registers every scanned binding declaration in the container.
// Declarations are ordered by policy ascending before application: Add
// registrations must exist before Replace rewrites a capability and before
// Skip checks for prior registrations. The sort is stable, so declarations
// sharing a policy apply in declaration order.
func applyBindings(c *container.Container, r *registry.Registry, snap *registry.Snapshot, log *logger.Logger) {
	ordered := make([]*registry.BindingDeclaration, len(snap.Bindings))
	copy(ordered, snap.Bindings)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Policy < ordered[j].Policy
	})

	for _, d := range ordered {
		// One registration shared across every target, so a singleton
		// resolves to the same instance under each of its capabilities.
		reg := container.NewRegistration(d.Concrete, d.Lifetime, d.Provider)

		for _, capability := range r.CapabilitiesFor(d) {
			applied := applyPolicy(c, d.Policy, capability, reg)
			logBinding(log, d, capability, applied)
		}
		applied := applyPolicy(c, d.Policy, d.Concrete, reg)
		logBinding(log, d, d.Concrete, applied)
	}

	log.Info("bindings applied", logger.Fields(logger.FieldCount, len(ordered)))
}

func applyPolicy(c *container.Container, p registry.Policy, key reflect.Type, reg *container.Registration) bool {
	switch p {
	case registry.Replace:
		c.Put(key, reg)
		return true
	case registry.Skip:
		return c.PutIfAbsent(key, reg)
	default:
		c.Append(key, reg)
		return true
	}
}

func logBinding(log *logger.Logger, d *registry.BindingDeclaration, key reflect.Type, applied bool) {
	fields := logger.Fields(
		logger.FieldType, d.Concrete.String(),
		logger.FieldCapability, key.String(),
		logger.FieldLifetime, d.Lifetime.String(),
		logger.FieldPolicy, d.Policy.String(),
	)
	if !applied {
		log.Debug("binding skipped, capability already registered", fields)
		return
	}
	log.Debug("capability bound", fields)
}

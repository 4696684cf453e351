// Package registry collects service, configuration, and setup declarations
// that wirekit applies to a container at startup.
//
// Declarations replace runtime type scanning: packages declare their types in
// init functions (or explicit wiring code) against a Registry, and the
// bootstrap phases consume filtered snapshots of those declarations. The
// registry also owns the process-lifetime caches shared by the phases: scan
// memoization and the invoked-setup set.
//
// # Bindings
//
//	registry.Capability[Notifier](r)
//	err := registry.Bind[EmailNotifier](r,
//	    registry.As[Notifier](),
//	    registry.WithLifetime(container.Singleton),
//	    registry.WithPolicy(registry.Replace),
//	)
//
// A binding with no explicit capability registers under every registry
// capability the type implements; registry.ConcreteOnly() restricts it to the
// concrete type.
//
// # Configurations
//
//	err := registry.Configure[DbConfig](r, registry.WithKey("App:Db"))
//	err := registry.Configure[FeatureFlags](r, registry.Dynamic())
//
// # Setups
//
//	err := r.OnServiceSetup("billing", func(c *container.Container, src *config.Source) error {
//	    ...
//	})
//	err := r.OnAppSetup("routes", func(b *pipeline.Builder, src *config.Source) error {
//	    ...
//	})
package registry

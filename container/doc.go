// Package container provides a capability-keyed service container for wirekit.
//
// Capabilities are reflect.Type keys — usually interface types — and each
// capability may hold multiple registrations, so a single contract can have
// several implementations registered side by side. Registrations carry a
// lifetime (singleton, scoped, or transient) and a provider function.
//
// # Registration
//
//	key := container.KeyOf[Notifier]()
//	c.Append(key, container.NewRegistration(
//	    reflect.TypeOf(EmailNotifier{}), container.Singleton,
//	    func(c *container.Container) (any, error) { return &EmailNotifier{}, nil },
//	))
//
// # Resolution
//
//	n, err := container.Resolve[Notifier](c)
//	all, err := container.ResolveAll[Notifier](c)
//
// # Scopes
//
// Scoped registrations are cached per Scope; resolving one directly from the
// container is an error.
//
//	scope := c.NewScope()
//	session, err := container.In[*Session](scope)
package container

package container

import (
	"reflect"
	"sync"

	"github.com/kbukum/wirekit/errors"
)

// Lifetime determines how instances produced by a registration are cached.
type Lifetime int

const (
	// Singleton caches a single instance on the registration for the life of
	// the container.
	Singleton Lifetime = iota
	// Scoped caches one instance per Scope.
	Scoped
	// Transient constructs a new instance on every resolution.
	Transient
)

// String returns the string representation of the lifetime.
func (l Lifetime) String() string {
	switch l {
	case Singleton:
		return "singleton"
	case Scoped:
		return "scoped"
	case Transient:
		return "transient"
	default:
		return "unknown"
	}
}

// Provider builds a concrete value, resolving dependencies from the container.
type Provider func(c *Container) (any, error)

// Registration holds a provider for a concrete type under a capability key,
// together with its lifetime and any cached singleton instance.
type Registration struct {
	concrete reflect.Type
	lifetime Lifetime
	provider Provider

	mu       sync.Mutex
	instance any
	built    bool
}

// NewRegistration creates a registration for the given concrete type.
func NewRegistration(concrete reflect.Type, lifetime Lifetime, provider Provider) *Registration {
	return &Registration{concrete: concrete, lifetime: lifetime, provider: provider}
}

// ForInstance creates a singleton registration around a pre-built value.
func ForInstance(value any) *Registration {
	return &Registration{
		concrete: reflect.TypeOf(value),
		lifetime: Singleton,
		instance: value,
		built:    true,
	}
}

// Concrete returns the concrete type this registration produces.
func (r *Registration) Concrete() reflect.Type { return r.concrete }

// Lifetime returns the registration's lifetime.
func (r *Registration) Lifetime() Lifetime { return r.lifetime }

// build runs the provider. Singleton results are cached on the registration.
func (r *Registration) build(c *Container) (any, error) {
	if r.lifetime == Singleton {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.built {
			return r.instance, nil
		}
		instance, err := r.provider(c)
		if err != nil {
			return nil, err
		}
		r.instance = instance
		r.built = true
		return instance, nil
	}
	return r.provider(c)
}

// Container is a capability-keyed service container. A capability is any
// reflect.Type — usually an interface type — and may hold multiple
// registrations at once, in registration order.
type Container struct {
	mu            sync.RWMutex
	registrations map[reflect.Type][]*Registration
}

// New creates an empty container.
func New() *Container {
	return &Container{
		registrations: make(map[reflect.Type][]*Registration),
	}
}

// Append adds a registration for a capability, keeping existing ones.
func (c *Container) Append(key reflect.Type, reg *Registration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registrations[key] = append(c.registrations[key], reg)
}

// Put removes every existing registration for a capability and adds the given
// one, leaving exactly one registration.
func (c *Container) Put(key reflect.Type, reg *Registration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registrations[key] = []*Registration{reg}
}

// PutIfAbsent adds a registration only if the capability has none yet.
// It reports whether the registration was added.
func (c *Container) PutIfAbsent(key reflect.Type, reg *Registration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.registrations[key]) > 0 {
		return false
	}
	c.registrations[key] = append(c.registrations[key], reg)
	return true
}

// Contains reports whether a capability has at least one registration.
func (c *Container) Contains(key reflect.Type) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.registrations[key]) > 0
}

// Remove deletes all registrations for a capability.
func (c *Container) Remove(key reflect.Type) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.registrations, key)
}

// Len returns the number of registrations for a capability.
func (c *Container) Len(key reflect.Type) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.registrations[key])
}

// Keys returns all capability keys with at least one registration.
func (c *Container) Keys() []reflect.Type {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]reflect.Type, 0, len(c.registrations))
	for k, regs := range c.registrations {
		if len(regs) > 0 {
			keys = append(keys, k)
		}
	}
	return keys
}

// Registrations returns a copy of the registration list for a capability,
// in registration order.
func (c *Container) Registrations(key reflect.Type) []*Registration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	regs := c.registrations[key]
	out := make([]*Registration, len(regs))
	copy(out, regs)
	return out
}

// Resolve returns an instance for the most recent registration of a
// capability. Scoped registrations must be resolved through a Scope.
func (c *Container) Resolve(key reflect.Type) (any, error) {
	c.mu.RLock()
	regs := c.registrations[key]
	var reg *Registration
	if n := len(regs); n > 0 {
		reg = regs[n-1]
	}
	c.mu.RUnlock()

	if reg == nil {
		return nil, errors.NotRegistered(typeName(key))
	}
	return c.resolveOne(key, reg, nil)
}

// ResolveAll returns instances for every registration of a capability, in
// registration order.
func (c *Container) ResolveAll(key reflect.Type) ([]any, error) {
	regs := c.Registrations(key)
	if len(regs) == 0 {
		return nil, errors.NotRegistered(typeName(key))
	}
	out := make([]any, 0, len(regs))
	for _, reg := range regs {
		instance, err := c.resolveOne(key, reg, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, instance)
	}
	return out, nil
}

func (c *Container) resolveOne(key reflect.Type, reg *Registration, scope *Scope) (any, error) {
	switch reg.lifetime {
	case Scoped:
		if scope == nil {
			return nil, errors.ScopeRequired(typeName(key))
		}
		return scope.instanceFor(reg)
	default:
		return reg.build(c)
	}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

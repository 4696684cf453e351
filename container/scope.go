package container

import (
	"reflect"
	"sync"

	"github.com/google/uuid"

	"github.com/kbukum/wirekit/errors"
)

// Scope caches instances of Scoped registrations. Each scope is isolated:
// two scopes resolving the same registration receive distinct instances.
type Scope struct {
	id        string
	container *Container

	mu        sync.Mutex
	instances map[*Registration]any
}

// NewScope creates a scope bound to the container.
func (c *Container) NewScope() *Scope {
	return &Scope{
		id:        uuid.NewString(),
		container: c,
		instances: make(map[*Registration]any),
	}
}

// ID returns the scope's unique identifier.
func (s *Scope) ID() string { return s.id }

// Resolve returns an instance for the most recent registration of a
// capability, caching Scoped instances in this scope.
func (s *Scope) Resolve(key reflect.Type) (any, error) {
	regs := s.container.Registrations(key)
	if len(regs) == 0 {
		return nil, errors.NotRegistered(typeName(key))
	}
	return s.container.resolveOne(key, regs[len(regs)-1], s)
}

// instanceFor returns the scope-cached instance for a registration, building
// it on first use.
func (s *Scope) instanceFor(reg *Registration) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if instance, ok := s.instances[reg]; ok {
		return instance, nil
	}
	instance, err := reg.provider(s.container)
	if err != nil {
		return nil, err
	}
	s.instances[reg] = instance
	return instance, nil
}

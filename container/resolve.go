package container

import (
	"fmt"
	"reflect"

	"github.com/kbukum/wirekit/errors"
)

// KeyOf returns the reflect.Type capability key for T. It works for interface
// types as well as concrete types.
//
//	key := container.KeyOf[Notifier]()
func KeyOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Resolve resolves the most recent registration for T with type safety.
//
//	repo, err := container.Resolve[UserRepository](c)
func Resolve[T any](c *Container) (T, error) {
	var zero T
	key := KeyOf[T]()
	instance, err := c.Resolve(key)
	if err != nil {
		return zero, err
	}
	result, ok := instance.(T)
	if !ok {
		return zero, errors.WrongType(key.String(), fmt.Sprintf("%T", instance), fmt.Sprintf("%T", zero))
	}
	return result, nil
}

// MustResolve resolves T, panicking on error. Use at wiring sites where a
// missing registration is a programming error.
func MustResolve[T any](c *Container) T {
	result, err := Resolve[T](c)
	if err != nil {
		panic(fmt.Sprintf("container: failed to resolve %s: %v", KeyOf[T](), err))
	}
	return result
}

// TryResolve resolves T, returning false if it is not registered or has a
// different type. Use for optional dependencies.
func TryResolve[T any](c *Container) (T, bool) {
	result, err := Resolve[T](c)
	if err != nil {
		var zero T
		return zero, false
	}
	return result, true
}

// ResolveAll resolves every registration for T, in registration order.
//
//	handlers, err := container.ResolveAll[EventHandler](c)
func ResolveAll[T any](c *Container) ([]T, error) {
	key := KeyOf[T]()
	instances, err := c.ResolveAll(key)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(instances))
	for _, instance := range instances {
		result, ok := instance.(T)
		if !ok {
			var zero T
			return nil, errors.WrongType(key.String(), fmt.Sprintf("%T", instance), fmt.Sprintf("%T", zero))
		}
		out = append(out, result)
	}
	return out, nil
}

// In resolves the most recent registration for T through a scope, so Scoped
// lifetimes are honored.
func In[T any](s *Scope) (T, error) {
	var zero T
	key := KeyOf[T]()
	instance, err := s.Resolve(key)
	if err != nil {
		return zero, err
	}
	result, ok := instance.(T)
	if !ok {
		return zero, errors.WrongType(key.String(), fmt.Sprintf("%T", instance), fmt.Sprintf("%T", zero))
	}
	return result, nil
}

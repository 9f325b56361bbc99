package services

import (
	"sort"
	"sync"

	"github.com/matzehuels/fontroute/pkg/errors"
)

// Container maps service names to implementations.
// It is safe for concurrent use.
type Container struct {
	mu       sync.RWMutex
	services map[string]any
}

// NewContainer returns an empty container.
func NewContainer() *Container {
	return &Container{services: make(map[string]any)}
}

// Register stores svc under name, replacing any previous registration.
func (c *Container) Register(name string, svc any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.services == nil {
		c.services = make(map[string]any)
	}
	c.services[name] = svc
}

// Lookup returns the service registered under name.
func (c *Container) Lookup(name string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	svc, ok := c.services[name]
	return svc, ok
}

// Len returns the number of registered services.
func (c *Container) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.services)
}

// Names returns the registered service names, sorted.
func (c *Container) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.services))
	for name := range c.services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Provide registers svc under name with its static type T.
func Provide[T any](c *Container, name string, svc T) {
	c.Register(name, svc)
}

// Resolve returns the service registered under name as a T. The boolean is
// false if nothing is registered or the registered value is not a T; the
// caller decides what a missing service means.
func Resolve[T any](c *Container, name string) (T, bool) {
	var zero T
	svc, ok := c.Lookup(name)
	if !ok {
		return zero, false
	}
	typed, ok := svc.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// MustResolve is like [Resolve] but returns a NOT_FOUND error when the
// service is missing or has the wrong type.
func MustResolve[T any](c *Container, name string) (T, error) {
	svc, ok := Resolve[T](c, name)
	if !ok {
		return svc, errors.New(errors.ErrCodeNotFound, "service %q is not registered", name)
	}
	return svc, nil
}

// ResolveLogger returns the registered [Logger], or a [NopLogger] if none.
func ResolveLogger(c *Container) Logger {
	if c != nil {
		if l, ok := Resolve[Logger](c, LoggerService); ok && l != nil {
			return l
		}
	}
	return NopLogger{}
}

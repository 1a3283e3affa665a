// Package registry assembles the full adapter set for one agent-kit binding
// and keeps it indexed by tool name. The per-category files declare the
// adapters; Tools composes them in declaration order for hosts that want the
// flat list, and New wraps that list for name lookup.
package registry

import (
	"fmt"
	"sync"

	"github.com/solkit-labs/solkit/kit"
	"github.com/solkit-labs/solkit/tool"
)

// Registry holds adapters indexed by name, preserving registration order.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]*tool.Adapter
	order    []string
}

// New builds a registry from adapters. Duplicate names are a programming
// error in the adapter declarations and fail construction.
func New(adapters ...*tool.Adapter) (*Registry, error) {
	r := &Registry{adapters: make(map[string]*tool.Adapter, len(adapters))}
	for _, adapter := range adapters {
		if err := r.Register(adapter); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ForKit builds a registry holding every adapter bound to k.
func ForKit(k kit.Kit) (*Registry, error) {
	return New(Tools(k)...)
}

// Register adds one adapter. It fails when the name is already taken.
func (r *Registry) Register(adapter *tool.Adapter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.adapters[adapter.Name()]; exists {
		return fmt.Errorf("registry: duplicate tool name %q", adapter.Name())
	}
	r.adapters[adapter.Name()] = adapter
	r.order = append(r.order, adapter.Name())
	return nil
}

// Get returns the adapter registered under name.
func (r *Registry) Get(name string) (*tool.Adapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	adapter, ok := r.adapters[name]
	return adapter, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.adapters[name]
	return ok
}

// All returns every adapter in registration order.
func (r *Registry) All() []*tool.Adapter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*tool.Adapter, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.adapters[name])
	}
	return result
}

// Names returns every registered name in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered adapters.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.adapters)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"sort"
	"sync"
)

// ManagerFactory creates a Manager with the given options.
type ManagerFactory func(opts Options) (Manager, error)

// RegistryEntry represents a registered backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	//   - 100: GPU backends
	//   - 10: software backends
	Priority int

	// Factory creates managers.
	Factory ManagerFactory

	// Available reports if the backend can run on this system.
	Available func() bool
}

var globalRegistry = &Registry{}

// Registry maps backend names to manager factories.
//
//	func init() {
//	    surface.Register("vulkan", 100, vulkanFactory, vulkanAvailable)
//	}
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and NewManager.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a backend to the global registry. A nil available func
// means always available. Registering an existing name replaces it.
func Register(name string, priority int, factory ManagerFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific backend.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// NewManager creates a manager from the global registry. An empty name
// selects the best available backend.
func NewManager(name string, opts Options) (Manager, error) {
	if name == "" {
		return globalRegistry.NewManager(opts)
	}
	return globalRegistry.NewManagerByName(name, opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory ManagerFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}
	if available == nil {
		available = func() bool { return true }
	}
	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns a copy of a backend entry.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	entryCopy := *entry
	return &entryCopy, true
}

// NewManager creates a manager with the best backend whose factory
// succeeds.
func (r *Registry) NewManager(opts Options) (Manager, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	var lastErr error
	for _, name := range available {
		m, err := r.NewManagerByName(name, opts)
		if err == nil {
			return m, nil
		}
		slogger().Debug("surface: backend rejected", "backend", name, "err", err)
		lastErr = err
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoBackendAvailable
}

// NewManagerByName creates a manager with a specific backend.
func (r *Registry) NewManagerByName(name string, opts Options) (Manager, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	return entry.Factory(opts)
}

// sortedNames returns names by descending priority, ties by name.
// Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	entries := make([]*RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func init() {
	Register("wgpu", 100, func(opts Options) (Manager, error) {
		if opts.Pool == nil {
			return nil, ErrNoPool
		}
		return NewGPUManager(opts.Pool, opts.PresentMode), nil
	}, nil)
	Register("software", 10, func(Options) (Manager, error) {
		return NewSoftwareManager(), nil
	}, nil)
}

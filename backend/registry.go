package backend

import (
	"fmt"
	"slices"
	"sync"
)

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for backend selection (first that opens wins).
	// A real GL context beats the headless fallback.
	backendPriority = []string{BackendGL33, BackendNoop}
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the registered backend names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get opens the backend registered under name.
func Get(name string) (Device, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	dev, err := factory()
	if err != nil {
		return nil, fmt.Errorf("backend: open %q: %w", name, err)
	}
	return dev, nil
}

// Default opens the best available backend.
// Priority order: gl33 > noop, then any other registered backend by name.
// A backend whose factory fails is skipped.
func Default() (Device, error) {
	registryMu.RLock()
	order := make([]string, 0, len(backends))
	for _, name := range backendPriority {
		if _, ok := backends[name]; ok {
			order = append(order, name)
		}
	}
	rest := make([]string, 0, len(backends))
	for name := range backends {
		if !slices.Contains(backendPriority, name) {
			rest = append(rest, name)
		}
	}
	factories := make(map[string]Factory, len(backends))
	for name, f := range backends {
		factories[name] = f
	}
	registryMu.RUnlock()

	slices.Sort(rest)
	order = append(order, rest...)

	var errs []error
	for _, name := range order {
		dev, err := factories[name]()
		if err == nil {
			return dev, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", name, err))
	}
	if len(errs) == 0 {
		return nil, ErrBackendNotAvailable
	}
	return nil, fmt.Errorf("%w: %v", ErrBackendNotAvailable, errs)
}

// Open opens the named backend, or the default one when name is empty.
func Open(name string) (Device, error) {
	if name == "" {
		return Default()
	}
	return Get(name)
}

// MustDefault returns the default backend or panics.
func MustDefault() Device {
	dev, err := Default()
	if err != nil {
		panic(err)
	}
	return dev
}

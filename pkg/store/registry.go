package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry tracks lookup sources by name so settings documents can reference
// a source without holding the value directly. Lookups are case-insensitive.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]LookupSource
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: make(map[string]LookupSource)}
}

// Register associates a source with the provided name. Existing entries are
// replaced.
func (r *Registry) Register(name string, source LookupSource) error {
	key := normalize(name)
	if key == "" {
		return fmt.Errorf("store: source name is required")
	}
	if source == nil {
		return fmt.Errorf("store: source for %q is nil", key)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[key] = source
	return nil
}

// Lookup returns the source registered under name.
func (r *Registry) Lookup(name string) (LookupSource, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	source, ok := r.sources[normalize(name)]
	return source, ok
}

// Names returns the registered source names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

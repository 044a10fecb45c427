package palette

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry tracks palettes by name so settings documents can reference them.
// Lookups are case-insensitive. The zero value is not usable; call NewRegistry.
type Registry struct {
	mu       sync.RWMutex
	palettes map[string]Palette
}

// NewRegistry constructs a registry seeded with the built-in palettes.
func NewRegistry() *Registry {
	reg := &Registry{palettes: make(map[string]Palette)}
	_ = reg.Register(Bootstrap())
	return reg
}

// Register adds a palette under its own name. Existing entries are replaced.
func (r *Registry) Register(p Palette) error {
	name := normalize(p.Name)
	if name == "" {
		return fmt.Errorf("palette: palette name is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.palettes[name] = p
	return nil
}

// Lookup returns the palette registered under name.
func (r *Registry) Lookup(name string) (Palette, bool) {
	if r == nil {
		return Palette{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.palettes[normalize(name)]
	return p, ok
}

// Names returns the registered palette names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.palettes))
	for name := range r.palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

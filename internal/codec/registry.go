package codec

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownFormat is returned when no codec is registered under a name.
var ErrUnknownFormat = errors.New("unknown format")

// Registry manages codecs by name.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Codec
}

// NewRegistry creates an empty codec registry.
func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Codec),
	}
}

// Register adds a codec to the registry.
func (r *Registry) Register(c Codec) error {
	if c == nil {
		return fmt.Errorf("cannot register nil codec")
	}
	name := c.Name()
	if name == "" {
		return fmt.Errorf("codec name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.codecs[name]; exists {
		return fmt.Errorf("codec already registered: %s", name)
	}

	r.codecs[name] = c
	return nil
}

// Get returns a codec by name.
func (r *Registry) Get(name string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.codecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
	return c, nil
}

// ForExtension returns the codec claiming a file extension such as ".htm".
func (r *Registry) ForExtension(ext string) (Codec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.codecs {
		for _, e := range c.Extensions() {
			if e == ext {
				return c, true
			}
		}
	}
	return nil, false
}

// List returns all registered codec names (sorted).
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.codecs))
	for name := range r.codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has checks if a codec is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.codecs[name]
	return ok
}

// Count returns the number of registered codecs.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.codecs)
}

// Unregister removes a codec from the registry.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.codecs[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
	delete(r.codecs, name)
	return nil
}

// DefaultRegistry is the global codec registry, holding the standard codecs
// with default options.
var DefaultRegistry = Standard(DefaultOptions())

// Get returns a codec from the default registry.
func Get(name string) (Codec, error) {
	return DefaultRegistry.Get(name)
}

// List returns all codec names from the default registry.
func List() []string {
	return DefaultRegistry.List()
}

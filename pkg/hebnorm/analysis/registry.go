package analysis

import (
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/hebnorm/pkg/hebnorm/internalerr"
)

// Built-in filter names.
const (
	FilterDecompose = "decompose"
	FilterNiqqud    = "niqqud"
	FilterLowerCase = "lowercase"
	FilterDropEmpty = "drop_empty"
	FilterStop      = "stop"
)

// DefaultFilters is the chain used when none is configured.
var DefaultFilters = []string{FilterDecompose, FilterNiqqud, FilterLowerCase, FilterDropEmpty}

// Registry maps filter names to constructors.
type Registry struct {
	filters map[string]Filter
	mu      sync.RWMutex
}

// NewRegistry creates a Registry with the built-in filters registered.
// The stop filter needs a word list and is registered separately.
func NewRegistry() *Registry {
	r := &Registry{
		filters: make(map[string]Filter),
	}
	r.filters[FilterDecompose] = func(in TokenStream) TokenStream { return NewDecomposeFilter(in) }
	r.filters[FilterNiqqud] = func(in TokenStream) TokenStream { return NewNiqqudFilter(in) }
	r.filters[FilterLowerCase] = func(in TokenStream) TokenStream { return NewLowerCaseFilter(in) }
	r.filters[FilterDropEmpty] = func(in TokenStream) TokenStream { return NewDropEmptyFilter(in) }
	return r
}

// Get returns the filter registered under name.
func (r *Registry) Get(name string) (Filter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.filters[name]
	if !ok {
		return nil, fmt.Errorf("filter %q: %w", name, internalerr.ErrNotFound)
	}
	return f, nil
}

// Register adds a filter under name.
func (r *Registry) Register(name string, f Filter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.filters[name]; exists {
		return fmt.Errorf("filter %q: %w", name, internalerr.ErrDuplicate)
	}
	r.filters[name] = f
	return nil
}

// RegisterStopwords registers the stop filter for the given set.
func (r *Registry) RegisterStopwords(set StopSet) error {
	return r.Register(FilterStop, set.Filter)
}

// Names returns the registered filter names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.filters))
	for name := range r.filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

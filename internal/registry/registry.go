package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/specialistvlad/psetforge/internal/pset"
)

var (
	// ErrDuplicate is returned when registering a name that is already taken.
	ErrDuplicate = errors.New("record already registered")
	// ErrSealed is returned when registering into a sealed registry.
	ErrSealed = errors.New("registry is sealed")
	// ErrUnknownRecord is returned when a name is not registered.
	ErrUnknownRecord = errors.New("unknown record")
)

// Module is the interface that all core modules must implement to be registered.
type Module interface {
	Register(ctx context.Context, r *Registry) error
}

type entry struct {
	record *pset.Record
	// base is the name of the record this one was cloned from, if any.
	base   string
	source string
}

// Registry holds the named records of a single application instance.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
	order   []string
	sealed  bool
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		entries: make(map[string]*entry),
	}
}

// Register adds rec under name. The registry takes ownership of rec.
func (r *Registry) Register(name string, rec *pset.Record) error {
	return r.add(name, &entry{record: rec})
}

func (r *Registry) add(name string, e *entry) error {
	if name == "" {
		return errors.New("record name must not be empty")
	}
	if e.record == nil {
		return fmt.Errorf("record %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.availableLocked(name); err != nil {
		return err
	}

	r.entries[name] = e
	r.order = append(r.order, name)
	return nil
}

// availableLocked reports why name cannot be registered, if it cannot.
func (r *Registry) availableLocked(name string) error {
	if r.sealed {
		return fmt.Errorf("register %q: %w", name, ErrSealed)
	}
	if prev, exists := r.entries[name]; exists {
		if prev.source != "" {
			return fmt.Errorf("register %q: %w (first declared at %s)", name, ErrDuplicate, prev.source)
		}
		return fmt.Errorf("register %q: %w", name, ErrDuplicate)
	}
	return nil
}

// Lookup returns the record registered under name.
func (r *Registry) Lookup(name string) (*pset.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecord, name)
	}
	return e.record, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[name]
	return ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// BaseOf returns the name of the record name was cloned from.
func (r *Registry) BaseOf(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok || e.base == "" {
		return "", false
	}
	return e.base, true
}

// Clone registers a deep copy of base under name and returns it.
func (r *Registry) Clone(name, base string) (*pset.Record, error) {
	return r.Derive(name, base)
}

// Derive clones base, applies overrides and registers the result under
// name. Nothing is registered when any step fails.
func (r *Registry) Derive(name, base string, overrides ...pset.Override) (*pset.Record, error) {
	return r.derive(name, base, "", overrides)
}

func (r *Registry) derive(name, base, source string, overrides []pset.Override) (*pset.Record, error) {
	r.mu.RLock()
	err := r.availableLocked(name)
	r.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	baseRec, err := r.Lookup(base)
	if err != nil {
		return nil, fmt.Errorf("derive %q: %w", name, err)
	}

	rec := baseRec.Clone()
	if err := rec.Apply(overrides...); err != nil {
		return nil, fmt.Errorf("derive %q from %q: %w", name, base, err)
	}

	if err := r.add(name, &entry{record: rec, base: base, source: source}); err != nil {
		return nil, err
	}
	return rec, nil
}

// Seal freezes every registered record and rejects further registrations.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		e.record.Freeze()
	}
	r.sealed = true
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sealed
}

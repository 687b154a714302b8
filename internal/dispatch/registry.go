package dispatch

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownVariant   = errors.New("unknown variant")
	ErrDuplicateVariant = errors.New("duplicate variant")
)

// Constructor builds a fresh variant of T from its defining attributes.
type Constructor[T any] func(args []string) (T, error)

// Registry is a closed set of named variant constructors for one abstraction.
// It is filled once at startup and only read afterwards.
type Registry[T any] struct {
	family   string
	names    []string
	ctors    map[string]Constructor[T]
	fallback string
	canon    func(string) (string, error)
}

// NewRegistry creates an empty registry for the named variant family.
func NewRegistry[T any](family string) *Registry[T] {
	return &Registry[T]{
		family: family,
		ctors:  make(map[string]Constructor[T]),
	}
}

// Family returns the family name the registry was created with.
func (r *Registry[T]) Family() string { return r.family }

// Register adds a named variant constructor.
func (r *Registry[T]) Register(name string, ctor Constructor[T]) error {
	if name == "" {
		return fmt.Errorf("%s: empty variant name", r.family)
	}
	if ctor == nil {
		return fmt.Errorf("%s: nil constructor for %q", r.family, name)
	}
	if _, ok := r.ctors[name]; ok {
		return fmt.Errorf("%s %q: %w", r.family, name, ErrDuplicateVariant)
	}
	r.ctors[name] = ctor
	r.names = append(r.names, name)
	return nil
}

// MustRegister is Register for package-level tables; it panics on error.
func (r *Registry[T]) MustRegister(name string, ctor Constructor[T]) *Registry[T] {
	if err := r.Register(name, ctor); err != nil {
		panic(err)
	}
	return r
}

// Fallback marks an already registered variant as the one built for any
// name the registry does not know.
func (r *Registry[T]) Fallback(name string) error {
	if _, ok := r.ctors[name]; !ok {
		return fmt.Errorf("%s fallback %q: %w", r.family, name, ErrUnknownVariant)
	}
	r.fallback = name
	return nil
}

// Canonical installs a function that maps a requested name onto its
// registered spelling before lookup. An error from canon is returned by New.
func (r *Registry[T]) Canonical(canon func(name string) (string, error)) *Registry[T] {
	r.canon = canon
	return r
}

// Names lists registered variants in registration order.
func (r *Registry[T]) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Has reports whether name is registered.
func (r *Registry[T]) Has(name string) bool {
	_, ok := r.ctors[name]
	return ok
}

// New constructs the named variant. The caller only ever sees T.
func (r *Registry[T]) New(name string, args ...string) (T, error) {
	if r.canon != nil {
		c, err := r.canon(name)
		if err != nil {
			var zero T
			return zero, err
		}
		name = c
	}
	ctor, ok := r.ctors[name]
	if !ok && r.fallback != "" {
		ctor, ok = r.ctors[r.fallback], true
	}
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %q: %w", r.family, name, ErrUnknownVariant)
	}
	return ctor(args)
}

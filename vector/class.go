package vector

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Tag identifies a Class in a Registry.
type Tag string

// Tags of the built-in classes.
const (
	TagOwned    Tag = "owned"
	TagBorrowed Tag = "borrowed"
	TagLazy     Tag = "lazy"
)

var (
	// ErrDuplicateClass is returned when a tag is registered twice.
	ErrDuplicateClass = errors.New("vector: class already registered")

	// ErrIncompleteClass is returned for a class lacking a required operation.
	ErrIncompleteClass = errors.New("vector: class missing required operation")
)

// Class is the operation table of one vector representation. Each function
// receives the per-handle state the class created.
//
// Length, Elt, DataOrNil, Data and Describe are required. The others are
// optional.
type Class struct {
	// Tag is the registry key.
	Tag Tag

	// Length returns the element count. It must not allocate or compute.
	Length func(state any) int

	// Elt returns element i. Out-of-range i is undefined.
	Elt func(state any, i int) float64

	// DataOrNil returns contiguous storage only if it already exists.
	// It must not allocate or compute.
	DataOrNil func(state any) []float64

	// Data returns contiguous storage, computing it if necessary.
	Data func(state any) []float64

	// Region returns Data()[start:start+n] with n = min(count, len-start),
	// after clamping start into [0, len]. Nil uses that default.
	Region func(state any, start, count int) []float64

	// Describe returns a one-line diagnostic.
	Describe func(state any) string

	// Children lists handles to show beneath this one in Inspect.
	Children func(state any) []*Handle

	// Share returns the state for a read-only sibling handle and marks the
	// shared storage copy-on-write. Nil means the state is immutable and the
	// handle itself is retained instead.
	Share func(state any) any

	// Finalize releases what the state owns. It runs exactly once.
	Finalize func(state any)
}

func (c *Class) validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil class", ErrIncompleteClass)
	}
	if c.Tag == "" {
		return fmt.Errorf("%w: empty tag", ErrIncompleteClass)
	}

	missing := func(op string) error {
		return fmt.Errorf("%w: %s lacks %s", ErrIncompleteClass, c.Tag, op)
	}
	switch {
	case c.Length == nil:
		return missing("Length")
	case c.Elt == nil:
		return missing("Elt")
	case c.DataOrNil == nil:
		return missing("DataOrNil")
	case c.Data == nil:
		return missing("Data")
	case c.Describe == nil:
		return missing("Describe")
	}
	return nil
}

// Registry maps tags to classes. It is safe for concurrent use, but all
// registrations should complete before handles are created.
type Registry struct {
	mu      sync.RWMutex
	classes map[Tag]*Class
	order   []Tag
}

// DefaultRegistry holds the built-in classes and anything a host adds.
var DefaultRegistry = NewRegistry()

func init() {
	if err := RegisterBuiltins(DefaultRegistry); err != nil {
		panic(err)
	}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{classes: make(map[Tag]*Class)}
}

// RegisterBuiltins adds the owned, borrowed and lazy classes to r.
func RegisterBuiltins(r *Registry) error {
	for _, c := range []*Class{OwnedClass, BorrowedClass, LazyClass} {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Register adds c under c.Tag.
func (r *Registry) Register(c *Class) error {
	if err := c.validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.classes[c.Tag]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateClass, c.Tag)
	}
	r.classes[c.Tag] = c
	r.order = append(r.order, c.Tag)

	Logger().Debug("vector: class registered", zap.String("tag", string(c.Tag)))
	return nil
}

// Lookup returns the class registered under tag.
func (r *Registry) Lookup(tag Tag) (*Class, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.classes[tag]
	return c, ok
}

// MustLookup is like Lookup but panics if tag is unknown.
func (r *Registry) MustLookup(tag Tag) *Class {
	c, ok := r.Lookup(tag)
	if !ok {
		panic(fmt.Sprintf("vector: class %q not registered", tag))
	}
	return c
}

// Classes returns the registered classes in registration order.
func (r *Registry) Classes() []*Class {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Class, len(r.order))
	for i, tag := range r.order {
		out[i] = r.classes[tag]
	}
	return out
}

// Reset removes all classes. Intended for tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.classes = make(map[Tag]*Class)
	r.order = nil
}

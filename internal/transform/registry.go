package transform

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"dimension-mapper/dimension"
)

// ErrDuplicate is returned when a transform name is registered twice.
var ErrDuplicate = errors.New("transform already registered")

// Def is the YAML definition of a transform.
type Def struct {
	Name        string   `yaml:"name"`
	Kind        string   `yaml:"kind"`
	Factor      *float64 `yaml:"factor,omitempty"`
	Offset      float64  `yaml:"offset,omitempty"`
	IndexWeight float64  `yaml:"index_weight,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Deprecated  string   `yaml:"deprecated,omitempty"`
}

// Transform is a validated definition ready to apply.
type Transform struct {
	Def  Def
	Kind Kind
}

// Apply computes the transform for a leaf x at path.
func (t *Transform) Apply(x float64, path dimension.IndexPath) float64 {
	var y float64

	switch t.Kind {
	case KindScale:
		y = x*t.factor() + t.Def.Offset
	case KindNegate:
		y = -x
	case KindSquare:
		y = x * x
	case KindAbs:
		y = math.Abs(x)
	default:
		y = x
	}

	if t.Def.IndexWeight != 0 {
		sum := 0
		for _, i := range path {
			sum += i
		}

		y += t.Def.IndexWeight * float64(sum)
	}

	return y
}

// factor returns Def.Factor, 1 when unset.
func (t *Transform) factor() float64 {
	if t.Def.Factor == nil {
		return 1
	}

	return *t.Def.Factor
}

// UsesIndex reports whether the result depends on the leaf's position.
func (t *Transform) UsesIndex() bool {
	return t.Def.IndexWeight != 0
}

// Registry holds validated transforms keyed by name.
type Registry struct {
	transforms map[string]*Transform
}

// Float returns a pointer to f, for Def.Factor literals.
func Float(f float64) *float64 { return &f }

// Builtins are registered by NewRegistry.
var Builtins = []Def{
	{Name: "identity", Kind: "identity", Description: "returns every leaf unchanged"},
	{Name: "double", Kind: "scale", Factor: Float(2), Description: "multiplies every leaf by 2"},
	{Name: "negate", Kind: "negate", Description: "flips the sign of every leaf"},
	{Name: "square", Kind: "square", Description: "squares every leaf"},
	{Name: "abs", Kind: "abs", Description: "takes the absolute value of every leaf"},
	{Name: "index-sum", Kind: "identity", IndexWeight: 1, Description: "adds the sum of the leaf's indices"},
}

// NewRegistry creates a registry holding the builtin transforms.
func NewRegistry() *Registry {
	r := &Registry{transforms: make(map[string]*Transform)}

	for _, def := range Builtins {
		if err := r.Add(def); err != nil {
			panic(err)
		}
	}

	return r
}

// BuildRegistry builds a registry from the builtins plus defs, collecting
// every invalid definition instead of stopping at the first.
func BuildRegistry(defs []Def) (*Registry, []error) {
	registry := NewRegistry()

	var errs []error

	for _, def := range defs {
		if err := registry.Add(def); err != nil {
			errs = append(errs, err)
		}
	}

	return registry, errs
}

// Add validates def and registers it.
func (r *Registry) Add(def Def) error {
	if def.Name == "" {
		return errors.New("transform without a name")
	}

	if _, exists := r.transforms[def.Name]; exists {
		return fmt.Errorf("transform %q: %w", def.Name, ErrDuplicate)
	}

	kind, err := ParseKind(def.Kind)
	if err != nil {
		return fmt.Errorf("transform %q: %w", def.Name, err)
	}

	r.transforms[def.Name] = &Transform{Def: def, Kind: kind}

	return nil
}

// Get returns a transform by name, or nil if not found.
func (r *Registry) Get(name string) *Transform {
	return r.transforms[name]
}

// Has returns true if a transform with the given name exists.
func (r *Registry) Has(name string) bool {
	_, exists := r.transforms[name]
	return exists
}

// Names returns all transform names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.transforms))
	for name := range r.transforms {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// All returns all transforms sorted by name.
func (r *Registry) All() []*Transform {
	names := r.Names()

	result := make([]*Transform, 0, len(names))
	for _, name := range names {
		result = append(result, r.transforms[name])
	}

	return result
}

package dimension

import (
	"errors"
	"fmt"
	"reflect"
)

// MaxDepth bounds the declared depth accepted by Map and MapIndexed, whose
// result type has one slice level per declared level.
const MaxDepth = 1 << 10

// pathCap is the initial capacity of index paths; deeper paths grow by append.
const pathCap = 8

var (
	// ErrInvalidDepth is returned when the declared depth is below 1.
	ErrInvalidDepth = errors.New("depth must be at least 1")
	// ErrDepthMismatch is matched by every *DepthError.
	ErrDepthMismatch = errors.New("nesting does not match declared depth")
)

// DepthError reports a scalar found where the declared depth requires a sequence.
type DepthError struct {
	// Depth is the depth declared by the caller.
	Depth int
	// Level is the 1-based nesting level that should have held a sequence.
	Level int
	// Path locates the offending value.
	Path IndexPath
	// Found describes the value's type, "<nil>" for nil.
	Found string
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("declared depth %d: expected a sequence at %s (level %d), found %s",
		e.Depth, e.Path, e.Level, e.Found)
}

// Is makes errors.Is(err, ErrDepthMismatch) hold for any *DepthError.
func (e *DepthError) Is(target error) bool {
	return target == ErrDepthMismatch
}

func validateDepth(depth int) error {
	if depth < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}

	return nil
}

// sequence unwraps interfaces and returns v when it is a slice or an array.
func sequence(v reflect.Value, depth, level int, path IndexPath) (reflect.Value, error) {
	for v.IsValid() && v.Kind() == reflect.Interface {
		v = v.Elem()
	}

	if v.IsValid() && (v.Kind() == reflect.Slice || v.Kind() == reflect.Array) {
		return v, nil
	}

	found := "<nil>"
	if v.IsValid() {
		found = v.Type().String()
	}

	return reflect.Value{}, &DepthError{
		Depth: depth,
		Level: level,
		Path:  path.Clone(),
		Found: found,
	}
}

// leaf returns the dynamic value held at v.
func leaf(v reflect.Value) any {
	for v.IsValid() && v.Kind() == reflect.Interface {
		v = v.Elem()
	}

	if !v.IsValid() || !v.CanInterface() {
		return nil
	}

	return v.Interface()
}

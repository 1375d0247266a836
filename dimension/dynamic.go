package dimension

import (
	"fmt"
	"reflect"
)

// Transform maps a leaf to a result. path holds the leaf's position,
// outermost index first, and may be retained by the callee.
type Transform[R any] func(leaf any, path IndexPath) R

// Map applies fn to every leaf of input, a slice or array nested depth levels
// deep. The result is depth levels of []R with input's shape.
func Map[R any](depth int, input any, fn func(leaf any) R) (any, error) {
	return mapNested(depth, input, func(v any, _ IndexPath) R { return fn(v) }, false)
}

// MapIndexed is Map with each leaf's index path passed to fn.
// A depth above MaxDepth fails with a *DepthError when input is shallower,
// and with ErrInvalidDepth otherwise.
func MapIndexed[R any](depth int, input any, fn Transform[R]) (any, error) {
	return mapNested(depth, input, fn, true)
}

func mapNested[R any](depth int, input any, fn Transform[R], indexed bool) (any, error) {
	if err := validateDepth(depth); err != nil {
		return nil, err
	}

	if depth > MaxDepth {
		// Report a shallower input as a mismatch before rejecting the depth.
		if err := walk(reflect.ValueOf(input), depth, 1, make(IndexPath, 0, pathCap), func(any, IndexPath) {}); err != nil {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %d exceeds the maximum of %d", ErrInvalidDepth, depth, MaxDepth)
	}

	m := &mapper[R]{
		depth:   depth,
		fn:      fn,
		indexed: indexed,
		types:   sliceTypes(reflect.TypeFor[R](), depth),
	}

	out, err := m.level(reflect.ValueOf(input), 1, make(IndexPath, 0, pathCap))
	if err != nil {
		return nil, err
	}

	return out.Interface(), nil
}

type mapper[R any] struct {
	depth   int
	fn      Transform[R]
	indexed bool
	// types[k] is the output type of a level with k levels remaining.
	types []reflect.Type
}

func (m *mapper[R]) level(v reflect.Value, level int, path IndexPath) (reflect.Value, error) {
	seq, err := sequence(v, m.depth, level, path)
	if err != nil {
		return reflect.Value{}, err
	}

	remaining := m.depth - level + 1
	outType := m.types[remaining]

	if seq.Kind() == reflect.Slice && seq.IsNil() {
		return reflect.Zero(outType), nil
	}

	n := seq.Len()
	out := reflect.MakeSlice(outType, n, n)

	for i := range n {
		p := append(path, i)

		if remaining > 1 {
			child, err := m.level(seq.Index(i), level+1, p)
			if err != nil {
				return reflect.Value{}, err
			}

			out.Index(i).Set(child)

			continue
		}

		var leafPath IndexPath
		if m.indexed {
			leafPath = p.Clone()
		}

		r := m.fn(leaf(seq.Index(i)), leafPath)
		out.Index(i).Set(reflect.ValueOf(&r).Elem())
	}

	return out, nil
}

func sliceTypes(elem reflect.Type, depth int) []reflect.Type {
	types := make([]reflect.Type, depth+1)
	types[0] = elem

	for k := 1; k <= depth; k++ {
		types[k] = reflect.SliceOf(types[k-1])
	}

	return types
}

// ForEach calls fn for every leaf of input in traversal order.
func ForEach(depth int, input any, fn func(leaf any, path IndexPath)) error {
	if err := validateDepth(depth); err != nil {
		return err
	}

	return walk(reflect.ValueOf(input), depth, 1, make(IndexPath, 0, pathCap), fn)
}

func walk(v reflect.Value, depth, level int, path IndexPath, fn func(any, IndexPath)) error {
	seq, err := sequence(v, depth, level, path)
	if err != nil {
		return err
	}

	for i := range seq.Len() {
		p := append(path, i)

		if level == depth {
			fn(leaf(seq.Index(i)), p.Clone())
			continue
		}

		if err := walk(seq.Index(i), depth, level+1, p, fn); err != nil {
			return err
		}
	}

	return nil
}

package dimension

import (
	"reflect"
	"strconv"
	"strings"
)

// Shape records the lengths of a nested sequence at every level.
// Children is nil at the leaf level.
type Shape struct {
	Len      int
	Children []Shape
}

// ShapeOf measures input as a nested sequence of the given depth.
func ShapeOf(depth int, input any) (Shape, error) {
	if err := validateDepth(depth); err != nil {
		return Shape{}, err
	}

	return measure(reflect.ValueOf(input), depth, 1, make(IndexPath, 0, pathCap))
}

func measure(v reflect.Value, depth, level int, path IndexPath) (Shape, error) {
	seq, err := sequence(v, depth, level, path)
	if err != nil {
		return Shape{}, err
	}

	s := Shape{Len: seq.Len()}
	if level == depth {
		return s, nil
	}

	s.Children = make([]Shape, s.Len)

	for i := range s.Len {
		child, err := measure(seq.Index(i), depth, level+1, append(path, i))
		if err != nil {
			return Shape{}, err
		}

		s.Children[i] = child
	}

	return s, nil
}

// Equal reports whether s and o have the same lengths at every level.
func (s Shape) Equal(o Shape) bool {
	if s.Len != o.Len || len(s.Children) != len(o.Children) {
		return false
	}

	for i := range s.Children {
		if !s.Children[i].Equal(o.Children[i]) {
			return false
		}
	}

	return true
}

// Leaves returns the number of leaves below s.
func (s Shape) Leaves() int {
	if s.Children == nil {
		return s.Len
	}

	total := 0
	for _, c := range s.Children {
		total += c.Leaves()
	}

	return total
}

// String renders s as "2{3, 1}" for a depth-2 sequence with rows of 3 and 1.
func (s Shape) String() string {
	var b strings.Builder
	s.write(&b)

	return b.String()
}

func (s Shape) write(b *strings.Builder) {
	b.WriteString(strconv.Itoa(s.Len))

	if s.Children == nil {
		return
	}

	b.WriteByte('{')

	for i, c := range s.Children {
		if i > 0 {
			b.WriteString(", ")
		}

		c.write(b)
	}

	b.WriteByte('}')
}

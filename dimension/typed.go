package dimension

// Map1 applies fn to every element of in and returns the results in order.
func Map1[T, R any](in []T, fn func(T) R) []R {
	if in == nil {
		return nil
	}

	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}

	return out
}

// Map1Indexed is Map1 with the element's position passed to fn.
func Map1Indexed[T, R any](in []T, fn func(v T, i int) R) []R {
	if in == nil {
		return nil
	}

	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v, i)
	}

	return out
}

// Map2 applies fn to every leaf of a depth-2 sequence.
func Map2[T, R any](in [][]T, fn func(T) R) [][]R {
	return Map1(in, func(row []T) []R {
		return Map1(row, fn)
	})
}

// Map2Indexed applies fn to every leaf of a depth-2 sequence,
// passing the outer and inner positions.
func Map2Indexed[T, R any](in [][]T, fn func(v T, i1, i2 int) R) [][]R {
	return Map1Indexed(in, func(row []T, i1 int) []R {
		return Map1Indexed(row, func(v T, i2 int) R {
			return fn(v, i1, i2)
		})
	})
}

// Map3 applies fn to every leaf of a depth-3 sequence.
func Map3[T, R any](in [][][]T, fn func(T) R) [][][]R {
	return Map1(in, func(plane [][]T) [][]R {
		return Map2(plane, fn)
	})
}

// Map3Indexed applies fn to every leaf of a depth-3 sequence,
// passing the three positions outermost first.
func Map3Indexed[T, R any](in [][][]T, fn func(v T, i1, i2, i3 int) R) [][][]R {
	return Map1Indexed(in, func(plane [][]T, i1 int) [][]R {
		return Map2Indexed(plane, func(v T, i2, i3 int) R {
			return fn(v, i1, i2, i3)
		})
	})
}

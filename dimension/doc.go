// Package dimension maps transforms over nested slices of a known depth.
//
// A nested sequence of depth 1 is a flat slice of leaves; a nested sequence of
// depth d is a slice whose elements are nested sequences of depth d-1. The depth
// is declared by the caller for every call and is never inferred.
//
// Two flavours are provided:
//
//   - Map1, Map2, Map3 and their Indexed variants work on statically typed
//     slices ([]T, [][]T, [][][]T). A depth mismatch is a compile error.
//   - Map, MapIndexed, ForEach and Shape take any slice or array value and walk
//     it with reflection for an arbitrary depth.
//
// Every mapper builds a new structure with the same lengths at every level as
// its input; leaf values are replaced by the transform's result and the input
// is left untouched. Indexed transforms receive the position of the leaf,
// outermost index first.
//
// The dynamic mappers fail fast when a level that should hold a sequence holds
// a scalar instead, returning a *DepthError. Nesting deeper than declared is not
// detected: sequence-valued leaves are passed to the transform unchanged.
// Memory use follows the input's actual nesting, never the declared depth;
// the one exception is the result type of Map, which caps depth at MaxDepth.
package dimension

// Package transform provides the registry of named numeric leaf transforms.
//
// A transform is declared in YAML and referenced by name from the CLI:
//
//	transforms:
//	  - name: triple
//	    kind: scale
//	    factor: 3
//	  - name: ramp
//	    kind: identity
//	    index_weight: 0.5
//	    description: adds half the index sum to every leaf
//
// # Kinds
//
//   - identity: x
//   - scale: x*factor + offset (factor defaults to 1 when omitted, an explicit 0 is kept)
//   - negate: -x
//   - square: x*x
//   - abs: |x|
//
// Every kind then adds index_weight times the sum of the leaf's indices, so a
// transform can depend on where a leaf sits as well as on its value.
//
// A definition with a non-empty "deprecated" note still works; callers are
// expected to warn when it is used.
package transform

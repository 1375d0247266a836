package nested

import (
	"fmt"

	"dimension-mapper/dimension"
	"dimension-mapper/internal/diagnostic"
)

// Depth infers the nesting depth of doc by following the first element of
// every sequence. An empty sequence counts as one level. Scalars have depth 0.
func Depth(doc any) int {
	depth := 0

	for {
		seq, ok := doc.([]any)
		if !ok {
			return depth
		}

		depth++

		if len(seq) == 0 {
			return depth
		}

		doc = seq[0]
	}
}

// Check validates doc against depth and collects every problem found.
func Check(doc any, depth int) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	if depth < 1 {
		d.AddError(diagnostic.CodeDepthMismatch, "", "declared depth %d is below 1", depth)
		return d
	}

	c := checker{depth: depth, diags: &d}
	c.visit(doc, 1, make(dimension.IndexPath, 0, 8))

	if c.leaves == 0 && d.IsValid() {
		d.AddInfo(diagnostic.CodeEmpty, "", "document has no leaves")
	}

	return d
}

type checker struct {
	depth  int
	leaves int
	diags  *diagnostic.Diagnostics
}

func (c *checker) visit(v any, level int, path dimension.IndexPath) {
	seq, ok := v.([]any)
	if !ok {
		c.diags.AddError(diagnostic.CodeDepthMismatch, path.String(),
			"expected a sequence at level %d of %d, found %s", level, c.depth, describe(v))

		return
	}

	if level < c.depth {
		c.uneven(seq, level, path)
	}

	for i, el := range seq {
		p := append(path, i)

		if level < c.depth {
			c.visit(el, level+1, p)
			continue
		}

		c.leaf(el, p)
	}
}

// uneven warns when the sequences held by seq differ in length.
func (c *checker) uneven(seq []any, level int, path dimension.IndexPath) {
	lo, hi, n := 0, 0, 0

	for _, el := range seq {
		child, ok := el.([]any)
		if !ok {
			continue
		}

		if n == 0 || len(child) < lo {
			lo = len(child)
		}

		if n == 0 || len(child) > hi {
			hi = len(child)
		}

		n++
	}

	if lo != hi {
		c.diags.AddWarning(diagnostic.CodeUneven, path.String(),
			"sequences at level %d have uneven lengths (%d to %d)", level+1, lo, hi)
	}
}

func (c *checker) leaf(v any, path dimension.IndexPath) {
	c.leaves++

	switch v.(type) {
	case float64:
	case []any:
		c.diags.AddError(diagnostic.CodeRaggedDepth, path.String(),
			"nested deeper than declared depth %d", c.depth)
	default:
		c.diags.AddError(diagnostic.CodeNonNumeric, path.String(),
			"leaf is %s, not a number", describe(v))
	}
}

func describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("string %q", x)
	case map[string]any:
		return "a mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}

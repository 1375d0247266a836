package dimension

import (
	"strconv"
	"strings"
)

// IndexPath locates a leaf inside a nested sequence, outermost index first.
type IndexPath []int

// String renders the path as "[i1][i2]...". The empty path renders as "root".
func (p IndexPath) String() string {
	if len(p) == 0 {
		return "root"
	}

	var b strings.Builder
	for _, i := range p {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(']')
	}

	return b.String()
}

// Clone returns a copy of p that does not share its backing array.
func (p IndexPath) Clone() IndexPath {
	out := make(IndexPath, len(p))
	copy(out, p)

	return out
}

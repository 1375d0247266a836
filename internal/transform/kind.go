package transform

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

type Kind int

const (
	_ Kind = iota // skip zero value, it marks an unset kind

	KindIdentity // identity
	KindScale    // scale
	KindNegate   // negate
	KindSquare   // square
	KindAbs      // abs
)

// ParseKind returns the Kind with the given name.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k := KindIdentity; k <= KindAbs; k++ {
		if k.String() == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("unknown transform kind %q", s)
}

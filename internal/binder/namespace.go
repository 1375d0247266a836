package binder

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	// ErrAlreadyBound is returned when binding over an existing entry.
	ErrAlreadyBound = errors.New("path already bound")
	// ErrNotNamespace is returned when a path runs through a bound value.
	ErrNotNamespace = errors.New("not a namespace")
	// ErrInvalidPath is returned for empty paths and malformed segments.
	ErrInvalidPath = errors.New("invalid path")
)

// Namespace is a tree of bound values. It is safe for concurrent use.
type Namespace struct {
	mu   sync.RWMutex
	root node
}

type node struct {
	children map[string]*node
	value    any
	bound    bool
}

// NewNamespace returns an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{}
}

// Bind binds v at path.
func (ns *Namespace) Bind(path string, v any) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}

	if v == nil {
		return fmt.Errorf("bind %q: nil value", path)
	}

	ns.mu.Lock()
	defer ns.mu.Unlock()

	cur := &ns.root
	for i, seg := range segments[:len(segments)-1] {
		next, ok := cur.children[seg]
		if !ok {
			next = &node{}

			if cur.children == nil {
				cur.children = make(map[string]*node)
			}

			cur.children[seg] = next
		}

		if next.bound {
			return fmt.Errorf("bind %q: %q: %w", path, strings.Join(segments[:i+1], "."), ErrNotNamespace)
		}

		cur = next
	}

	last := segments[len(segments)-1]
	if _, exists := cur.children[last]; exists {
		return fmt.Errorf("bind %q: %w", path, ErrAlreadyBound)
	}

	if cur.children == nil {
		cur.children = make(map[string]*node)
	}

	cur.children[last] = &node{value: v, bound: true}

	return nil
}

// Lookup returns the value bound at path.
func (ns *Namespace) Lookup(path string) (any, bool) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, false
	}

	ns.mu.RLock()
	defer ns.mu.RUnlock()

	cur := &ns.root
	for _, seg := range segments {
		next, ok := cur.children[seg]
		if !ok {
			return nil, false
		}

		cur = next
	}

	return cur.value, cur.bound
}

// LookupAs returns the value bound at path when it has type T.
func LookupAs[T any](ns *Namespace, path string) (T, bool) {
	v, ok := ns.Lookup(path)
	if !ok {
		var zero T
		return zero, false
	}

	t, ok := v.(T)

	return t, ok
}

// Paths returns every bound path, sorted.
func (ns *Namespace) Paths() []string {
	ns.mu.RLock()
	defer ns.mu.RUnlock()

	var paths []string

	var collect func(n *node, prefix string)

	collect = func(n *node, prefix string) {
		for name, child := range n.children {
			p := name
			if prefix != "" {
				p = prefix + "." + name
			}

			if child.bound {
				paths = append(paths, p)
				continue
			}

			collect(child, p)
		}
	}

	collect(&ns.root, "")
	slices.Sort(paths)

	return paths
}

func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPath)
	}

	segments := strings.Split(path, ".")
	for _, seg := range segments {
		if !isValidSegment(seg) {
			return nil, fmt.Errorf("%w %q: bad segment %q", ErrInvalidPath, path, seg)
		}
	}

	return segments, nil
}

// isValidSegment accepts letters, digits, '_' and '-', not starting with a digit or '-'.
func isValidSegment(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case isLetter(r) || r == '_':
		case i > 0 && (isDigit(r) || r == '-'):
		default:
			return false
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

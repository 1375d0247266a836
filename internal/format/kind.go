// Package format names the document encodings understood by the CLI.
package format

import (
	"fmt"
	"path/filepath"
	"strings"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

type Kind int

const (
	_ Kind = iota // zero value is invalid

	JSON // json
	YAML // yaml
)

// Parse returns the Kind named by s, case-insensitively.
func Parse(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("unknown format %q (want json or yaml)", s)
	}
}

// FromPath guesses the Kind from a file extension, falling back to def.
func FromPath(path string, def Kind) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	default:
		return def
	}
}

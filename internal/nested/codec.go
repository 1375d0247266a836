package nested

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"dimension-mapper/internal/format"
)

// LoadFile reads and decodes a document, picking the format from the file
// extension and falling back to def.
func LoadFile(path string, def format.Kind) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	return Decode(data, format.FromPath(path, def))
}

// Read decodes a whole document from r.
func Read(r io.Reader, kind format.Kind) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return Decode(data, kind)
}

// Decode parses data as the given format and normalizes numeric leaves.
func Decode(data []byte, kind format.Kind) (any, error) {
	var doc any

	switch kind {
	case format.JSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON document: %w", err)
		}
	case format.YAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML document: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported document format %s", kind)
	}

	return normalize(doc), nil
}

// normalize rewrites integer leaves as float64 in place.
func normalize(v any) any {
	switch x := v.(type) {
	case []any:
		for i := range x {
			x[i] = normalize(x[i])
		}

		return x
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	default:
		return v
	}
}

// Encode serializes v in the given format. JSON output is indented and ends
// with a newline.
func Encode(v any, kind format.Kind) ([]byte, error) {
	switch kind {
	case format.JSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON document: %w", err)
		}

		return append(data, '\n'), nil
	case format.YAML:
		var buf bytes.Buffer

		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("failed to encode YAML document: %w", err)
		}

		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode YAML document: %w", err)
		}

		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported document format %s", kind)
	}
}

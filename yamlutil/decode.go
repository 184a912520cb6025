// Package yamlutil decodes JSON and YAML documents into plain Go values while
// preserving the order of mapping keys. JSON is read through the YAML parser,
// so a single code path serves both formats.
package yamlutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jongio/urlkit/security"
	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned when the input contains no YAML or JSON value.
var ErrEmptyDocument = errors.New("document is empty")

// Pair is a single key/value entry of a Map.
type Pair struct {
	Key   string
	Value any
}

// Map is a decoded mapping that remembers the order its keys appeared in.
type Map []Pair

// Get returns the value stored under key. When a key occurs more than once
// the last occurrence wins, matching JSON object semantics.
func (m Map) Get(key string) (any, bool) {
	for i := len(m) - 1; i >= 0; i-- {
		if m[i].Key == key {
			return m[i].Value, true
		}
	}
	return nil, false
}

// MarshalJSON encodes m as a JSON object with keys in document order.
func (m Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalJSON(p.Key)
		if err != nil {
			return nil, err
		}
		value, err := marshalJSON(p.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %q: %w", p.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalJSON is json.Marshal without HTML escaping, so URLs keep their
// literal "&".
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Decode parses a JSON or YAML document. Mappings become Map, sequences
// become []any, and scalars become string, bool, int, float64 or nil.
func Decode(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		return nil, ErrEmptyDocument
	}
	return convert(&doc)
}

// DecodeReader reads at most security.MaxInputBytes from r and decodes it.
func DecodeReader(r io.Reader) (any, error) {
	data, err := io.ReadAll(io.LimitReader(r, security.MaxInputBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if len(data) > security.MaxInputBytes {
		return nil, fmt.Errorf("%w: document exceeds %d bytes", security.ErrInputTooLarge, security.MaxInputBytes)
	}
	return Decode(data)
}

// LoadFile validates path and decodes the document stored there.
func LoadFile(path string) (any, error) {
	if err := security.ValidateInputPath(path); err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// #nosec G304 -- Path validated by security.ValidateInputPath
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return DecodeReader(f)
}

func convert(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return convert(n.Content[0])
	case yaml.AliasNode:
		return convert(n.Alias)
	case yaml.MappingNode:
		m := make(Map, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			value, err := convert(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m = append(m, Pair{Key: key.Value, Value: value})
		}
		return m, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, child := range n.Content {
			value, err := convert(child)
			if err != nil {
				return nil, err
			}
			items = append(items, value)
		}
		return items, nil
	case yaml.ScalarNode:
		return scalar(n)
	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}

func scalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool", "!!int", "!!float":
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil
	default:
		return n.Value, nil
	}
}

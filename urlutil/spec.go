package urlutil

import (
	"sort"

	"github.com/jongio/urlkit/yamlutil"
)

// DefaultProtocol is used when a spec has no protocol, or an empty one.
const DefaultProtocol = "https://"

// Mode selects the representation Create returns.
type Mode string

const (
	// ModeString returns the serialized URL.
	ModeString Mode = "string"
	// ModeURL returns the structured *URL. It is the default.
	ModeURL Mode = "URL"
)

// Valid reports whether m is a recognized mode. The empty Mode means
// "not provided" and is not itself valid.
func (m Mode) Valid() bool {
	return m == ModeString || m == ModeURL
}

// Param is a single query parameter. Value must be a string, a bool, or a
// value of any integer or floating point kind.
type Param struct {
	Key   string
	Value any
}

// Params is an ordered list of query parameters. Keys may repeat; each entry
// becomes its own key=value pair in the query string.
type Params []Param

// Add returns p with key=value appended.
func (p Params) Add(key string, value any) Params {
	return append(p, Param{Key: key, Value: value})
}

// Spec describes a URL to build.
type Spec struct {
	// Protocol is the scheme followed by "://". Empty means DefaultProtocol.
	Protocol string
	// Domain is the host, optionally followed by a port or path.
	Domain string
	// Path replaces any path carried by Domain when non-nil.
	Path *string
	// Params are appended to the query in order.
	Params Params
}

// PathOf returns a pointer to path for use in Spec literals.
func PathOf(path string) *string {
	return &path
}

// fields is a shape-checked view of a spec whose values have not been
// validated yet. Untyped input keeps its original dynamic types here so
// that wrong-typed fields surface as the matching error kind.
type fields struct {
	protocol any
	domain   any
	path     any
	hasPath  bool
	params   Params
}

func (s Spec) fields() fields {
	f := fields{
		protocol: s.Protocol,
		domain:   s.Domain,
		params:   s.Params,
	}
	if s.Path != nil {
		f.path = *s.Path
		f.hasPath = true
	}
	return f
}

type lookupFunc func(key string) (any, bool)

func fieldsFromLookup(get lookupFunc) fields {
	var f fields
	f.protocol, _ = get("protocol")
	f.domain, _ = get("domain")
	f.path, f.hasPath = get("path")
	if raw, ok := get("params"); ok {
		f.params = paramsOf(raw)
	}
	return f
}

// fieldsOf accepts the record-like values a spec may arrive as. Anything
// else, including nil and typed nils, is not a spec.
func fieldsOf(raw any) (fields, bool) {
	switch v := raw.(type) {
	case Spec:
		return v.fields(), true
	case *Spec:
		if v == nil {
			return fields{}, false
		}
		return v.fields(), true
	case yamlutil.Map:
		if v == nil {
			return fields{}, false
		}
		return fieldsFromLookup(v.Get), true
	case map[string]any:
		if v == nil {
			return fields{}, false
		}
		return fieldsFromLookup(func(key string) (any, bool) {
			value, ok := v[key]
			return value, ok
		}), true
	default:
		return fields{}, false
	}
}

// paramsOf converts a params value into an ordered list. Values that are
// not records are ignored. Go maps carry no insertion order, so their keys
// are emitted sorted to keep serialization stable.
func paramsOf(raw any) Params {
	switch v := raw.(type) {
	case Params:
		return v
	case []Param:
		return v
	case yamlutil.Map:
		params := make(Params, 0, len(v))
		for _, pair := range v {
			params = append(params, Param{Key: pair.Key, Value: pair.Value})
		}
		return params
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		params := make(Params, 0, len(v))
		for _, k := range keys {
			params = append(params, Param{Key: k, Value: v[k]})
		}
		return params
	case map[string]string:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		params := make(Params, 0, len(v))
		for _, k := range keys {
			params = append(params, Param{Key: k, Value: v[k]})
		}
		return params
	default:
		return nil
	}
}

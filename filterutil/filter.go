// Package filterutil selects records whose URL matches a search term.
//
// The term is a regular expression matched case-insensitively anywhere in
// the record's URL, so "link" keeps "https://www.link3.dev" and so does
// "LINK". Metacharacters keep their regex meaning: "url.\.dev" matches
// "url1.dev", and an unbalanced "(" is reported as KindInvalidPattern.
// Patterns use RE2 syntax; lookaround and backreferences are not available.
//
// Filter works on typed records that implement Linker:
//
//	kept, err := filterutil.Filter(records, "link")
//
// FilterAny accepts untyped data, such as the output of yamlutil.Decode,
// and performs the same checks at runtime:
//
//	doc, _ := yamlutil.Decode(data)
//	kept, err := filterutil.FilterAny(doc, "link", false)
//
// Neither function modifies its input; the result is a new slice holding
// the matching records in their original order.
package filterutil

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/jongio/urlkit/yamlutil"
)

// Linker is implemented by records that expose a URL to match against.
type Linker interface {
	Link() string
}

// Record is a generic record. Its "url" field is matched; all other fields
// are carried through untouched.
type Record map[string]any

// Link returns the record's "url" field, or "" when it is missing or not
// a scalar.
func (r Record) Link() string {
	return linkString(r["url"])
}

// Option configures Filter.
type Option func(*options)

type options struct {
	failOnEmptyTerm bool
}

// WithFailOnEmptyTerm makes Filter refuse a term that is empty after
// trimming whitespace, instead of keeping every record.
func WithFailOnEmptyTerm(fail bool) Option {
	return func(o *options) {
		o.failOnEmptyTerm = fail
	}
}

// Filter returns the records whose Link matches term. A nil slice counts as
// empty input.
func Filter[T Linker](records []T, term string, opts ...Option) ([]T, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if len(records) == 0 {
		return nil, newError(KindEmptyInput, nil)
	}

	re, err := compileTerm(term, o.failOnEmptyTerm)
	if err != nil {
		return nil, err
	}

	result := make([]T, 0, len(records))
	for _, r := range records {
		if re.MatchString(r.Link()) {
			result = append(result, r)
		}
	}
	return result, nil
}

// FilterAny is the untyped form of Filter. records must be a slice or array;
// its elements may be Linkers, yamlutil.Maps or map[string]any values. term
// must be a string. Checks run in this order:
//
//  1. records is not a slice or array (KindNonArray)
//  2. records is empty (KindEmptyInput)
//  3. failOnEmptyTerm is set and term is a blank string (KindEmptyTerm)
//  4. term is not a string (KindNonString)
//  5. term is not a valid pattern (KindInvalidPattern)
func FilterAny(records any, term any, failOnEmptyTerm bool) ([]any, error) {
	items, ok := sliceOf(records)
	if !ok {
		return nil, newError(KindNonArray, nil)
	}
	if len(items) == 0 {
		return nil, newError(KindEmptyInput, nil)
	}

	re, err := compileTerm(term, failOnEmptyTerm)
	if err != nil {
		return nil, err
	}

	result := make([]any, 0, len(items))
	for _, item := range items {
		if re.MatchString(LinkOf(item)) {
			result = append(result, item)
		}
	}
	return result, nil
}

func compileTerm(term any, failOnEmpty bool) (*regexp.Regexp, error) {
	s, isString := term.(string)
	if failOnEmpty && isString && strings.TrimSpace(s) == "" {
		return nil, newError(KindEmptyTerm, nil)
	}
	if !isString {
		return nil, newError(KindNonString, nil)
	}

	re, err := regexp.Compile("(?i)" + s)
	if err != nil {
		return nil, newError(KindInvalidPattern, err)
	}
	return re, nil
}

func sliceOf(v any) ([]any, bool) {
	switch items := v.(type) {
	case []any:
		return items, true
	case yamlutil.Map:
		// A decoded record is stored as a slice of pairs but is not a list.
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// LinkOf returns the URL FilterAny matches item against: Link() for a
// Linker, the "url" field for a yamlutil.Map or map[string]any, and ""
// for anything else.
func LinkOf(item any) string {
	switch v := item.(type) {
	case Linker:
		return v.Link()
	case yamlutil.Map:
		raw, _ := v.Get("url")
		return linkString(raw)
	case map[string]any:
		return linkString(v["url"])
	default:
		return ""
	}
}

func linkString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case nil:
		return ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return fmt.Sprint(v)
	default:
		return ""
	}
}

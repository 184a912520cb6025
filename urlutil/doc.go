// Package urlutil builds URLs from structured specs with strict, ordered
// validation.
//
// A spec names a protocol, a domain, an optional path and ordered query
// parameters. Create accepts typed specs as well as untyped records decoded
// from JSON or YAML, and reports the first problem it finds as an *Error
// whose message is fixed per Kind:
//
//	r, err := urlutil.Create(doc, urlutil.ModeString)
//	if errors.Is(err, urlutil.ErrInvalidDomain) {
//		// "An invalid domain was provided."
//	}
//
// Typed callers can use Build and BuildString directly:
//
//	s, err := urlutil.BuildString(urlutil.Spec{
//		Domain: "www.google.com",
//		Path:   urlutil.PathOf("index.html"),
//	})
//	// s == "https://www.google.com/index.html"
//
// # Validation Rules
//
// Checks run in this order and stop at the first failure:
//   - the spec must be a record (Spec, *Spec, yamlutil.Map, map[string]any)
//   - the mode must be empty, "string" or "URL"
//   - the protocol defaults to "https://" and must start with word characters followed by "://"
//   - the domain must be a string starting with a dotted name such as "www.example.com"
//   - the path must be absent or a string
//   - query values must be strings, numbers or booleans
//
// The domain pattern only admits word characters and dots in the leading
// name, so hyphenated hosts such as "my-app.example.com" are rejected.
//
// A path replaces any path carried by the domain. Percent escapes in it are
// kept as written ("a%20b" stays "a%20b") and characters that may not appear
// in a path are escaped. An empty path becomes "/" for http, https, ws, wss,
// ftp and file URLs and stays empty for other schemes.
//
// Query values are form encoded in order; numbers use their shortest
// natural form ("10", "1.5"). Parameters given as a Go map are emitted in
// sorted key order, since maps carry no insertion order.
package urlutil

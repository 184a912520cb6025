package urlutil

import (
	"fmt"
	neturl "net/url"
	"regexp"
	"strings"
)

var (
	// protocolPattern requires a (possibly empty) run of word characters
	// followed by "://". Only the prefix is checked.
	protocolPattern = regexp.MustCompile(`(?i)^(\w*://)`)

	// domainPattern requires at least one "label.label" segment built from
	// word characters and dots. Only the prefix is checked; whatever follows
	// is left to net/url.
	domainPattern = regexp.MustCompile(`(?i)^([\w.]*\w+\.[\w.])+`)
)

// Result is the outcome of Create: the composed URL together with the mode
// it was requested in.
type Result struct {
	url  *URL
	mode Mode
}

// Mode returns the mode the result was built for.
func (r Result) Mode() Mode {
	return r.mode
}

// URL returns the structured URL. It is available in either mode.
func (r Result) URL() *URL {
	return r.url
}

// String returns the serialized URL.
func (r Result) String() string {
	if r.url == nil {
		return ""
	}
	return r.url.String()
}

// Value returns a string for ModeString and a *URL for ModeURL.
func (r Result) Value() any {
	if r.mode == ModeString {
		return r.String()
	}
	return r.url
}

// Create validates raw and composes a URL from it.
//
// raw may be a Spec, a *Spec, a yamlutil.Map or a map[string]any with the
// keys "protocol", "domain", "path" and "params". An empty mode selects
// ModeURL. Checks run in a fixed order and the first failure is returned
// as an *Error:
//
//  1. raw must be one of the record types above (KindInvalidSpec)
//  2. mode must be empty, ModeString or ModeURL (KindInvalidMode)
//  3. the protocol, after defaulting to DefaultProtocol, must look like
//     "scheme://" (KindInvalidProtocol)
//  4. the domain must be a string containing a dotted name (KindInvalidDomain)
//  5. the path must be absent or a string (KindInvalidPath)
//  6. every params value must be a string, number or bool (KindInvalidParam)
func Create(raw any, mode Mode) (Result, error) {
	f, ok := fieldsOf(raw)
	if !ok {
		return Result{}, newError(KindInvalidSpec, nil)
	}

	if mode == "" {
		mode = ModeURL
	} else if !mode.Valid() {
		return Result{}, newError(KindInvalidMode, nil)
	}

	u, err := f.compose()
	if err != nil {
		return Result{}, err
	}
	return Result{url: u, mode: mode}, nil
}

// Build composes spec into a structured URL.
//
// Example:
//
//	u, err := urlutil.Build(urlutil.Spec{Domain: "www.google.com", Path: urlutil.PathOf("index.html")})
//	if err != nil {
//		return err
//	}
//	fmt.Println(u.Host(), u.Path()) // www.google.com /index.html
func Build(spec Spec) (*URL, error) {
	r, err := Create(spec, ModeURL)
	if err != nil {
		return nil, err
	}
	return r.URL(), nil
}

// BuildString composes spec and returns its serialization.
//
// Example:
//
//	s, err := urlutil.BuildString(urlutil.Spec{
//		Domain: "www.ficticious.net",
//		Path:   urlutil.PathOf("some-path"),
//		Params: urlutil.Params{}.Add("q", "someQueryValue").Add("page", 10),
//	})
//	// s == "https://www.ficticious.net/some-path?q=someQueryValue&page=10"
func BuildString(spec Spec) (string, error) {
	r, err := Create(spec, ModeString)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

func (f fields) compose() (*URL, error) {
	protocol, err := effectiveProtocol(f.protocol)
	if err != nil {
		return nil, err
	}

	domain, ok := f.domain.(string)
	if !ok || !domainPattern.MatchString(domain) {
		return nil, newError(KindInvalidDomain, nil)
	}

	var path *string
	if f.hasPath {
		s, ok := f.path.(string)
		if !ok {
			return nil, newError(KindInvalidPath, nil)
		}
		path = &s
	}

	u, err := neturl.Parse(protocol + domain)
	if err != nil {
		return nil, newError(KindInvalidDomain, err)
	}

	if path != nil {
		setPath(u, *path)
	}
	if u.Host != "" && !strings.HasPrefix(u.Path, "/") && (u.Path != "" || specialSchemes[u.Scheme]) {
		u.Path = "/" + u.Path
		if u.RawPath != "" {
			u.RawPath = "/" + u.RawPath
		}
	}

	var query strings.Builder
	query.WriteString(u.RawQuery)
	for _, p := range f.params {
		value, ok := scalarString(p.Value)
		if !ok {
			return nil, newError(KindInvalidParam, nil)
		}
		appendQuery(&query, p.Key, value)
	}
	u.RawQuery = query.String()

	return &URL{u: u}, nil
}

// specialSchemes always carry a path, so an empty one serializes as "/".
// Other schemes keep an empty path empty.
var specialSchemes = map[string]bool{
	"ftp":   true,
	"file":  true,
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
}

// setPath replaces the path of u with p. Percent escapes already present in
// p are kept as written; other characters that may not appear in a path are
// escaped. A p with a malformed escape, such as "100%", is taken literally.
func setPath(u *neturl.URL, p string) {
	decoded, err := neturl.PathUnescape(p)
	if err != nil {
		u.Path = p
		u.RawPath = ""
		return
	}
	u.Path = decoded
	u.RawPath = escapePath(p)
}

// escapePath escapes the bytes of p that are not allowed in a path,
// leaving "%XX" sequences untouched.
func escapePath(p string) string {
	var b strings.Builder
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c == '%' && i+2 < len(p) && isHex(p[i+1]) && isHex(p[i+2]) {
			b.WriteString(p[i : i+3])
			i += 2
			continue
		}
		if pathByteAllowed(c) {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

func pathByteAllowed(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-._~!$&'()*+,;=:@/", c) >= 0
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// effectiveProtocol applies DefaultProtocol to falsy values and checks the
// shape of anything else.
func effectiveProtocol(v any) (string, error) {
	if !truthy(v) {
		return DefaultProtocol, nil
	}
	s, ok := v.(string)
	if !ok || !protocolPattern.MatchString(s) {
		return "", newError(KindInvalidProtocol, nil)
	}
	return s, nil
}

package urlutil

import (
	neturl "net/url"
	"strings"
)

// URL is a composed URL. It exposes the scheme, host, path and ordered
// query parameters, and String returns the exact serialization BuildString
// would have produced.
type URL struct {
	u *neturl.URL
}

// Scheme returns the lower-cased scheme without "://", e.g. "https".
func (u *URL) Scheme() string {
	return u.u.Scheme
}

// Host returns the host, including a port if one was given.
func (u *URL) Host() string {
	return u.u.Host
}

// Hostname returns the host without any port.
func (u *URL) Hostname() string {
	return u.u.Hostname()
}

// Port returns the port, or "" when none was given.
func (u *URL) Port() string {
	return u.u.Port()
}

// Path returns the decoded path. It always starts with "/" when the URL has
// a host.
func (u *URL) Path() string {
	return u.u.Path
}

// RawQuery returns the encoded query string without the leading "?".
func (u *URL) RawQuery() string {
	return u.u.RawQuery
}

// Query returns the query parameters in order, with decoded string values.
// Repeated keys are returned once per occurrence.
func (u *URL) Query() Params {
	if u.u.RawQuery == "" {
		return nil
	}
	var params Params
	for _, part := range strings.Split(u.u.RawQuery, "&") {
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		params = append(params, Param{Key: unescapeQuery(key), Value: unescapeQuery(value)})
	}
	return params
}

// String serializes the URL, percent-encoding reserved characters.
func (u *URL) String() string {
	return u.u.String()
}

// URL returns a copy of the underlying net/url value.
func (u *URL) URL() *neturl.URL {
	c := *u.u
	return &c
}

// MarshalText encodes the URL as its string form.
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func unescapeQuery(s string) string {
	if v, err := neturl.QueryUnescape(s); err == nil {
		return v
	}
	return s
}

// appendQuery adds key=value to raw using form encoding.
func appendQuery(raw *strings.Builder, key, value string) {
	if raw.Len() > 0 {
		raw.WriteByte('&')
	}
	raw.WriteString(neturl.QueryEscape(key))
	raw.WriteByte('=')
	raw.WriteString(neturl.QueryEscape(value))
}

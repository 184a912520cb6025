package urlutil

import (
	"errors"
	"testing"

	"github.com/jongio/urlkit/yamlutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildString(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want string
	}{
		{
			name: "google index page",
			spec: Spec{Protocol: "https://", Domain: "www.google.com", Path: PathOf("index.html")},
			want: "https://www.google.com/index.html",
		},
		{
			name: "default protocol",
			spec: Spec{Domain: "www.google.com", Path: PathOf("index.html")},
			want: "https://www.google.com/index.html",
		},
		{
			name: "params in order with numeric value",
			spec: Spec{
				Protocol: "https://",
				Domain:   "www.ficticious.net",
				Path:     PathOf("some-path"),
				Params:   Params{}.Add("q", "someQueryValue").Add("page", 10),
			},
			want: "https://www.ficticious.net/some-path?q=someQueryValue&page=10",
		},
		{
			name: "no path",
			spec: Spec{Domain: "www.google.com"},
			want: "https://www.google.com/",
		},
		{
			name: "empty path",
			spec: Spec{Domain: "www.google.com", Path: PathOf("")},
			want: "https://www.google.com/",
		},
		{
			name: "path with leading slash",
			spec: Spec{Domain: "www.google.com", Path: PathOf("/a/b")},
			want: "https://www.google.com/a/b",
		},
		{
			name: "path replaces domain path",
			spec: Spec{Domain: "www.google.com/search", Path: PathOf("maps")},
			want: "https://www.google.com/maps",
		},
		{
			name: "domain path kept without spec path",
			spec: Spec{Domain: "www.google.com/search"},
			want: "https://www.google.com/search",
		},
		{
			name: "path is percent-encoded",
			spec: Spec{Domain: "www.example.com", Path: PathOf("a b/c?d")},
			want: "https://www.example.com/a%20b/c%3Fd",
		},
		{
			name: "pre-encoded path",
			spec: Spec{Domain: "www.example.com", Path: PathOf("a%20b")},
			want: "https://www.example.com/a%20b",
		},
		{
			name: "encoded slash kept and space escaped",
			spec: Spec{Domain: "www.example.com", Path: PathOf("/a%2Fb c")},
			want: "https://www.example.com/a%2Fb%20c",
		},
		{
			name: "lower-case escape kept as written",
			spec: Spec{Domain: "www.example.com", Path: PathOf("caf%c3%a9")},
			want: "https://www.example.com/caf%c3%a9",
		},
		{
			name: "malformed escape taken literally",
			spec: Spec{Domain: "www.example.com", Path: PathOf("100%")},
			want: "https://www.example.com/100%25",
		},
		{
			name: "non-special scheme keeps empty path",
			spec: Spec{Protocol: "foo://", Domain: "files.example.com"},
			want: "foo://files.example.com",
		},
		{
			name: "non-special scheme with empty path",
			spec: Spec{Protocol: "foo://", Domain: "files.example.com", Path: PathOf("")},
			want: "foo://files.example.com",
		},
		{
			name: "non-special scheme path gets slash",
			spec: Spec{Protocol: "foo://", Domain: "files.example.com", Path: PathOf("a")},
			want: "foo://files.example.com/a",
		},
		{
			name: "query escapes star and keeps tilde",
			spec: Spec{Domain: "www.example.com", Params: Params{}.Add("q", "a*b~c")},
			want: "https://www.example.com/?q=a%2Ab~c",
		},
		{
			name: "http protocol",
			spec: Spec{Protocol: "http://", Domain: "api.example.com"},
			want: "http://api.example.com/",
		},
		{
			name: "upper-case protocol is lowered",
			spec: Spec{Protocol: "HTTPS://", Domain: "www.example.com"},
			want: "https://www.example.com/",
		},
		{
			name: "port in domain",
			spec: Spec{Domain: "127.0.0.1:8080", Path: PathOf("health")},
			want: "https://127.0.0.1:8080/health",
		},
		{
			name: "query values are form encoded",
			spec: Spec{
				Domain: "www.example.com",
				Params: Params{}.Add("q", "hello world").Add("a&b", "c=d"),
			},
			want: "https://www.example.com/?q=hello+world&a%26b=c%3Dd",
		},
		{
			name: "duplicate keys repeat",
			spec: Spec{
				Domain: "www.example.com",
				Params: Params{}.Add("tag", "a").Add("tag", "b"),
			},
			want: "https://www.example.com/?tag=a&tag=b",
		},
		{
			name: "bools and floats",
			spec: Spec{
				Domain: "www.example.com",
				Params: Params{}.Add("debug", true).Add("ratio", 1.5).Add("off", false),
			},
			want: "https://www.example.com/?debug=true&ratio=1.5&off=false",
		},
		{
			name: "params appended to domain query",
			spec: Spec{
				Domain: "www.example.com/search?lang=en",
				Params: Params{}.Add("q", "go"),
			},
			want: "https://www.example.com/search?lang=en&q=go",
		},
		{
			name: "empty params",
			spec: Spec{Domain: "www.example.com", Params: Params{}},
			want: "https://www.example.com/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildString(tt.spec)
			if err != nil {
				t.Fatalf("BuildString() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("BuildString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuild_Structured(t *testing.T) {
	u, err := Build(Spec{
		Domain: "www.ficticious.net",
		Path:   PathOf("some-path"),
		Params: Params{}.Add("q", "some value").Add("page", 10),
	})
	require.NoError(t, err)

	assert.Equal(t, "https", u.Scheme())
	assert.Equal(t, "www.ficticious.net", u.Host())
	assert.Equal(t, "/some-path", u.Path())
	assert.Equal(t, Params{
		{Key: "q", Value: "some value"},
		{Key: "page", Value: "10"},
	}, u.Query())
	assert.Equal(t, "https://www.ficticious.net/some-path?q=some+value&page=10", u.String())
}

func TestCreate_DefaultModeIsURL(t *testing.T) {
	spec := Spec{Domain: "www.google.com", Path: PathOf("index.html")}

	omitted, err := Create(spec, "")
	require.NoError(t, err)
	explicit, err := Create(spec, ModeURL)
	require.NoError(t, err)

	assert.Equal(t, ModeURL, omitted.Mode())
	assert.Equal(t, explicit.String(), omitted.String())

	u, ok := omitted.Value().(*URL)
	require.True(t, ok, "expected *URL, got %T", omitted.Value())
	assert.Equal(t, "https://www.google.com/index.html", u.String())
}

func TestCreate_StringMode(t *testing.T) {
	r, err := Create(Spec{Domain: "www.google.com", Path: PathOf("index.html")}, ModeString)
	require.NoError(t, err)

	s, ok := r.Value().(string)
	require.True(t, ok, "expected string, got %T", r.Value())
	assert.Equal(t, "https://www.google.com/index.html", s)
	assert.Equal(t, s, r.URL().String())
}

func TestCreate_UntypedRecords(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want string
	}{
		{
			name: "ordered map keeps param order",
			raw: yamlutil.Map{
				{Key: "protocol", Value: "https://"},
				{Key: "domain", Value: "www.ficticious.net"},
				{Key: "path", Value: "some-path"},
				{Key: "params", Value: yamlutil.Map{
					{Key: "q", Value: "someQueryValue"},
					{Key: "page", Value: 10},
				}},
			},
			want: "https://www.ficticious.net/some-path?q=someQueryValue&page=10",
		},
		{
			name: "go map params sorted",
			raw: map[string]any{
				"domain": "www.example.com",
				"params": map[string]any{"z": 1, "a": "x"},
			},
			want: "https://www.example.com/?a=x&z=1",
		},
		{
			name: "pointer to spec",
			raw:  &Spec{Domain: "www.example.com"},
			want: "https://www.example.com/",
		},
		{
			name: "falsy protocol defaults",
			raw: yamlutil.Map{
				{Key: "protocol", Value: nil},
				{Key: "domain", Value: "www.example.com"},
			},
			want: "https://www.example.com/",
		},
		{
			name: "false protocol defaults",
			raw:  map[string]any{"protocol": false, "domain": "www.example.com"},
			want: "https://www.example.com/",
		},
		{
			name: "zero protocol defaults",
			raw:  map[string]any{"protocol": 0, "domain": "www.example.com"},
			want: "https://www.example.com/",
		},
		{
			name: "non-record params ignored",
			raw:  map[string]any{"domain": "www.example.com", "params": "q=1"},
			want: "https://www.example.com/",
		},
		{
			name: "null params ignored",
			raw:  map[string]any{"domain": "www.example.com", "params": nil},
			want: "https://www.example.com/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Create(tt.raw, ModeString)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Value())
		})
	}
}

func TestCreate_Errors(t *testing.T) {
	validSpec := Spec{Protocol: "https://", Domain: "www.google.com", Path: PathOf("index.html")}

	tests := []struct {
		name    string
		raw     any
		mode    Mode
		wantErr *Error
		wantMsg string
	}{
		// Spec shape
		{name: "nil spec", raw: nil, mode: ModeString, wantErr: ErrInvalidSpec, wantMsg: "An invalid URL object was provided."},
		{name: "string spec", raw: "string", wantErr: ErrInvalidSpec},
		{name: "number spec", raw: 123, mode: ModeString, wantErr: ErrInvalidSpec},
		{name: "float spec", raw: 1.5, wantErr: ErrInvalidSpec},
		{name: "bool spec", raw: true, wantErr: ErrInvalidSpec},
		{name: "empty list spec", raw: []any{}, mode: ModeString, wantErr: ErrInvalidSpec},
		{name: "list of specs", raw: []Spec{validSpec}, wantErr: ErrInvalidSpec},
		{name: "nil spec pointer", raw: (*Spec)(nil), wantErr: ErrInvalidSpec},
		{name: "nil ordered map", raw: yamlutil.Map(nil), wantErr: ErrInvalidSpec},
		{name: "nil go map", raw: map[string]any(nil), wantErr: ErrInvalidSpec},
		{name: "func spec", raw: func() {}, wantErr: ErrInvalidSpec},
		{name: "shape checked before mode", raw: nil, mode: "INVALID", wantErr: ErrInvalidSpec},

		// Mode
		{name: "unknown mode", raw: validSpec, mode: "INVALID", wantErr: ErrInvalidMode, wantMsg: "An invalid return type was provided."},
		{name: "lower-case url mode", raw: validSpec, mode: "url", wantErr: ErrInvalidMode},
		{name: "mode checked before protocol", raw: Spec{Protocol: "banana", Domain: "x"}, mode: "bad", wantErr: ErrInvalidMode},

		// Protocol
		{name: "missing colon", raw: Spec{Protocol: "https//", Domain: "www.google.com"}, wantErr: ErrInvalidProtocol, wantMsg: "An invalid protocol was passed."},
		{name: "single slash", raw: Spec{Protocol: "https:/", Domain: "www.google.com"}, wantErr: ErrInvalidProtocol},
		{name: "leading colon", raw: Spec{Protocol: ":htps//", Domain: "www.google.com"}, wantErr: ErrInvalidProtocol},
		{name: "word only", raw: Spec{Protocol: "banana", Domain: "www.google.com"}, wantErr: ErrInvalidProtocol},
		{name: "non-string protocol", raw: map[string]any{"protocol": 42, "domain": "www.google.com"}, wantErr: ErrInvalidProtocol},
		{name: "protocol checked before domain", raw: Spec{Protocol: "banana", Domain: "nodot"}, wantErr: ErrInvalidProtocol},

		// Domain
		{name: "empty domain", raw: Spec{}, wantErr: ErrInvalidDomain, wantMsg: "An invalid domain was provided."},
		{name: "bare word", raw: Spec{Domain: "localhost"}, wantErr: ErrInvalidDomain},
		{name: "hyphenated host", raw: Spec{Domain: "my-app.example.com"}, wantErr: ErrInvalidDomain},
		{name: "leading dot only", raw: Spec{Domain: ".com"}, wantErr: ErrInvalidDomain},
		{name: "missing domain", raw: yamlutil.Map{{Key: "path", Value: "x"}}, wantErr: ErrInvalidDomain},
		{name: "null domain", raw: map[string]any{"domain": nil}, wantErr: ErrInvalidDomain},
		{name: "number domain", raw: map[string]any{"domain": 123}, wantErr: ErrInvalidDomain},
		{name: "bool domain", raw: map[string]any{"domain": true}, wantErr: ErrInvalidDomain},
		{name: "list domain", raw: map[string]any{"domain": []any{"www.google.com"}}, wantErr: ErrInvalidDomain},
		{name: "record domain", raw: map[string]any{"domain": yamlutil.Map{}}, wantErr: ErrInvalidDomain},
		{name: "func domain", raw: map[string]any{"domain": func() {}}, wantErr: ErrInvalidDomain},
		{name: "unparseable host", raw: Spec{Domain: "www.google.com extra"}, wantErr: ErrInvalidDomain},
		{name: "domain checked before path", raw: map[string]any{"domain": "nodot", "path": 1}, wantErr: ErrInvalidDomain},

		// Path
		{name: "null path", raw: map[string]any{"domain": "www.google.com", "path": nil}, wantErr: ErrInvalidPath, wantMsg: "An invalid path was provided."},
		{name: "number path", raw: map[string]any{"domain": "www.google.com", "path": 10}, wantErr: ErrInvalidPath},
		{name: "list path", raw: yamlutil.Map{{Key: "domain", Value: "www.google.com"}, {Key: "path", Value: []any{"a"}}}, wantErr: ErrInvalidPath},
		{name: "path checked before params", raw: map[string]any{"domain": "www.google.com", "path": false, "params": map[string]any{"a": nil}}, wantErr: ErrInvalidPath},

		// Params
		{name: "null param", raw: Spec{Domain: "www.google.com", Params: Params{}.Add("a", nil)}, wantErr: ErrInvalidParam, wantMsg: "An invalid parameter value was provided."},
		{name: "list param", raw: Spec{Domain: "www.google.com", Params: Params{}.Add("a", []any{1})}, wantErr: ErrInvalidParam},
		{name: "record param", raw: Spec{Domain: "www.google.com", Params: Params{}.Add("a", yamlutil.Map{})}, wantErr: ErrInvalidParam},
		{name: "func param", raw: Spec{Domain: "www.google.com", Params: Params{}.Add("a", func() {})}, wantErr: ErrInvalidParam},
		{name: "invalid after valid", raw: Spec{Domain: "www.google.com", Params: Params{}.Add("ok", "1").Add("bad", struct{}{})}, wantErr: ErrInvalidParam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Create(tt.raw, tt.mode)
			if err == nil {
				t.Fatalf("Create() expected error, got %q", r.String())
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v (%T), want kind %v", err, err, tt.wantErr.Kind)
			}
			if tt.wantMsg != "" && err.Error() != tt.wantMsg {
				t.Errorf("Create() error message = %q, want %q", err.Error(), tt.wantMsg)
			}
			if r.URL() != nil {
				t.Errorf("Create() returned a partial result on error")
			}
		})
	}
}

func TestCreate_ParseFailureWrapsCause(t *testing.T) {
	_, err := Create(Spec{Domain: "www.google.com extra"}, ModeString)
	require.Error(t, err)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, KindInvalidDomain, e.Kind)
	assert.NotNil(t, errors.Unwrap(err), "expected the parser error to be wrapped")
	assert.Equal(t, "An invalid domain was provided.", err.Error())
}

func TestBuild_ErrorsMatchCreate(t *testing.T) {
	_, err := Build(Spec{Domain: "nodot"})
	assert.True(t, errors.Is(err, ErrInvalidDomain))

	_, err = BuildString(Spec{Protocol: "banana", Domain: "www.google.com"})
	assert.True(t, errors.Is(err, ErrInvalidProtocol))
}

func TestKindOf(t *testing.T) {
	_, err := Create(nil, "")
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindInvalidSpec, kind)

	_, ok = KindOf(errors.New("other"))
	assert.False(t, ok)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "An invalid parameter value was provided.", KindInvalidParam.String())
	assert.Equal(t, "urlutil.Kind(99)", Kind(99).String())
}

func TestMode_Valid(t *testing.T) {
	assert.True(t, ModeString.Valid())
	assert.True(t, ModeURL.Valid())
	assert.False(t, Mode("").Valid())
	assert.False(t, Mode("String").Valid())
}

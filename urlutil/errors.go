package urlutil

import (
	"errors"
	"fmt"
)

// Kind identifies why a URL could not be built. Each kind carries a fixed,
// human-readable message that callers may rely on verbatim.
type Kind int

const (
	// KindInvalidSpec reports a spec that is not a record (nil, scalar, list).
	KindInvalidSpec Kind = iota + 1
	// KindInvalidMode reports an unrecognized return mode.
	KindInvalidMode
	// KindInvalidProtocol reports a protocol not shaped like "scheme://".
	KindInvalidProtocol
	// KindInvalidDomain reports a missing, non-string or malformed domain.
	KindInvalidDomain
	// KindInvalidPath reports a path that is present but not a string.
	KindInvalidPath
	// KindInvalidParam reports a query value that is not a string, number or bool.
	KindInvalidParam
)

var kindMessages = map[Kind]string{
	KindInvalidSpec:     "An invalid URL object was provided.",
	KindInvalidMode:     "An invalid return type was provided.",
	KindInvalidProtocol: "An invalid protocol was passed.",
	KindInvalidDomain:   "An invalid domain was provided.",
	KindInvalidPath:     "An invalid path was provided.",
	KindInvalidParam:    "An invalid parameter value was provided.",
}

// String returns the fixed message for k.
func (k Kind) String() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return fmt.Sprintf("urlutil.Kind(%d)", int(k))
}

// Error is the error type returned by Create, Build and BuildString.
// Error() is always the fixed message of Kind; Err holds the underlying
// cause when there is one.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind, so the sentinels below work with
// errors.Is regardless of the wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrInvalidSpec     = &Error{Kind: KindInvalidSpec}
	ErrInvalidMode     = &Error{Kind: KindInvalidMode}
	ErrInvalidProtocol = &Error{Kind: KindInvalidProtocol}
	ErrInvalidDomain   = &Error{Kind: KindInvalidDomain}
	ErrInvalidPath     = &Error{Kind: KindInvalidPath}
	ErrInvalidParam    = &Error{Kind: KindInvalidParam}
)

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func newError(kind Kind, cause error) error {
	return &Error{Kind: kind, Err: cause}
}

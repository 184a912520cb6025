package filterutil

import (
	"errors"
	"fmt"
)

// Kind identifies why records could not be filtered.
type Kind int

const (
	// KindNonArray reports records that are not a slice or array.
	KindNonArray Kind = iota + 1
	// KindEmptyInput reports an empty record list.
	KindEmptyInput
	// KindEmptyTerm reports a blank term when blank terms are refused.
	KindEmptyTerm
	// KindNonString reports a term that is not a string.
	KindNonString
	// KindInvalidPattern reports a term that does not compile as a regular expression.
	KindInvalidPattern
)

var kindMessages = map[Kind]string{
	KindNonArray:       "Non-array input",
	KindEmptyInput:     "Empty array input",
	KindEmptyTerm:      "Empty search term",
	KindNonString:      "Non-string search term",
	KindInvalidPattern: "Invalid search term pattern",
}

// String returns the fixed message for k.
func (k Kind) String() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return fmt.Sprintf("filterutil.Kind(%d)", int(k))
}

// Error is the error type returned by Filter and FilterAny.
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

// Is matches any *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrNonArray       = &Error{Kind: KindNonArray}
	ErrEmptyInput     = &Error{Kind: KindEmptyInput}
	ErrEmptyTerm      = &Error{Kind: KindEmptyTerm}
	ErrNonString      = &Error{Kind: KindNonString}
	ErrInvalidPattern = &Error{Kind: KindInvalidPattern}
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

package cryptoerr

import (
	"errors"
	"fmt"
)

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrDecode is returned for malformed hex text (odd length, non-hex
	// characters) and for recovered plaintext that is not valid text.
	ErrDecode = ErrorKind("ErrDecode")

	// ErrFormat is returned when a composite value (point, signature,
	// ciphertext) does not have a length that is a whole number of fields.
	ErrFormat = ErrorKind("ErrFormat")

	// ErrCrypto is returned when a curve primitive rejects its input, e.g. a
	// point that is not on the curve, a zero scalar or an exhausted random
	// source. A signature or key pair that merely does not match is not an
	// error.
	ErrCrypto = ErrorKind("ErrCrypto")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to decoding, formatting or a rejected
// curve operation. It has full support for errors.Is and errors.As, so the
// caller can ascertain the specific reason for the error by checking the
// underlying error.
type Error struct {
	Kind        ErrorKind
	Description string
	Err         error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Description, e.Err)
	}
	return e.Description
}

// Unwrap returns the underlying wrapped errors so both the kind and the cause
// are visible to errors.Is.
func (e Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// New creates an Error of the given kind.
func New(kind ErrorKind, desc string) Error {
	return Error{Kind: kind, Description: desc}
}

// Newf creates an Error of the given kind with a formatted description.
func Newf(kind ErrorKind, format string, args ...interface{}) Error {
	return Error{Kind: kind, Description: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error of the given kind around cause.
func Wrap(kind ErrorKind, desc string, cause error) Error {
	return Error{Kind: kind, Description: desc, Err: cause}
}

// KindOf reports the ErrorKind carried by err, or "" when err carries none.
func KindOf(err error) ErrorKind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var kind ErrorKind
	if errors.As(err, &kind) {
		return kind
	}
	return ""
}

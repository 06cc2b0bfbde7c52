package cryptoerr

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrDecode, "ErrDecode"},
		{ErrFormat, "ErrFormat"},
		{ErrCrypto, "ErrCrypto"},
	}

	for i, test := range tests {
		assert.Equal(t, test.want, test.in.Error(), "#%d", i)
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{
		{New(ErrDecode, "odd length"), "odd length"},
		{Newf(ErrFormat, "got %d chars", 63), "got 63 chars"},
		{Wrap(ErrCrypto, "random source", io.ErrUnexpectedEOF), "random source: unexpected EOF"},
	}

	for i, test := range tests {
		assert.Equal(t, test.want, test.in.Error(), "#%d", i)
	}
}

func TestErrorKindIsAs(t *testing.T) {
	cause := io.ErrUnexpectedEOF
	err := fmt.Errorf("encrypt: %w", Wrap(ErrCrypto, "random source", cause))

	assert.True(t, errors.Is(err, ErrCrypto))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrDecode))

	var e Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, ErrCrypto, e.Kind)

	assert.Equal(t, ErrCrypto, KindOf(err))
	assert.Equal(t, ErrFormat, KindOf(fmt.Errorf("x: %w", ErrFormat)))
	assert.Equal(t, ErrorKind(""), KindOf(cause))
	assert.Equal(t, ErrorKind(""), KindOf(nil))
}

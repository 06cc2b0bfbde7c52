// Package hexcodec converts between raw bytes, curve values and the
// fixed-width hexadecimal text used at the public interface.
//
// Every numeric field is StorageBits wide and is written as FieldHexLen
// uppercase hex digits holding the little-endian bytes of the value.
// Composite values are concatenations of fields with no separators.
package hexcodec

import (
	"encoding/hex"
	"errors"
	"math/big"

	"github.com/smallyu/hash-storage-go/internal/crypto/curves"
	"github.com/smallyu/hash-storage-go/pkg/cryptoerr"
)

const (
	// StorageBits is the designated width of a scalar or coordinate.
	StorageBits = 256

	// FieldBytes is the byte width of one field.
	FieldBytes = StorageBits / 8

	// FieldHexLen is the number of hex characters of one field (W).
	FieldHexLen = StorageBits / 4

	// PointHexLen is the number of hex characters of a point or scalar pair (2W).
	PointHexLen = 2 * FieldHexLen
)

const upperHex = "0123456789ABCDEF"

// EncodeBytes returns two uppercase hex digits per byte, in input order.
func EncodeBytes(b []byte) string {
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = upperHex[v>>4]
		out[i*2+1] = upperHex[v&0x0f]
	}
	return string(out)
}

// DecodeBytes parses hex text of even length. Both letter cases are accepted.
func DecodeBytes(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		var invalid hex.InvalidByteError
		switch {
		case errors.As(err, &invalid):
			return nil, cryptoerr.Wrap(cryptoerr.ErrDecode, "hexcodec: non-hex character", err)
		case errors.Is(err, hex.ErrLength):
			return nil, cryptoerr.Newf(cryptoerr.ErrDecode, "hexcodec: odd length %d", len(s))
		default:
			return nil, cryptoerr.Wrap(cryptoerr.ErrDecode, "hexcodec: invalid hex", err)
		}
	}
	return b, nil
}

// EncodeScalar serializes v as one field.
func EncodeScalar(v *big.Int) (string, error) {
	w := NewWriter()
	w.WriteScalar(v)
	return w.String()
}

// DecodeScalar parses exactly one field.
func DecodeScalar(s string) (*big.Int, error) {
	if err := expectLen(s, FieldHexLen, "scalar"); err != nil {
		return nil, err
	}
	r := NewReader(s)
	v := r.ReadScalar()
	return v, r.Close()
}

// EncodePoint serializes p as hex(x) || hex(y).
func EncodePoint(p curves.Point) (string, error) {
	w := NewWriter()
	w.WritePoint(p)
	return w.String()
}

// DecodePoint parses exactly one point. It does not check that the point is
// on any curve.
func DecodePoint(s string) (curves.Point, error) {
	if err := expectLen(s, PointHexLen, "point"); err != nil {
		return curves.Point{}, err
	}
	r := NewReader(s)
	p := r.ReadPoint()
	return p, r.Close()
}

// EncodeScalarPair serializes (a, b) as hex(a) || hex(b).
func EncodeScalarPair(a, b *big.Int) (string, error) {
	w := NewWriter()
	w.WriteScalar(a)
	w.WriteScalar(b)
	return w.String()
}

// DecodeScalarPair parses exactly two fields.
func DecodeScalarPair(s string) (*big.Int, *big.Int, error) {
	if err := expectLen(s, PointHexLen, "scalar pair"); err != nil {
		return nil, nil, err
	}
	r := NewReader(s)
	a, b := r.ReadScalar(), r.ReadScalar()
	if err := r.Close(); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// EncodePoints serializes a point sequence in order.
func EncodePoints(ps []curves.Point) (string, error) {
	w := NewWriter()
	w.WritePoints(ps)
	return w.String()
}

// DecodePoints splits s into PointHexLen blocks. The length of s must be a
// multiple of PointHexLen.
func DecodePoints(s string) ([]curves.Point, error) {
	r := NewReader(s)
	ps := r.ReadPoints()
	return ps, r.Close()
}

func expectLen(s string, want int, what string) error {
	if len(s) != want {
		return cryptoerr.Newf(cryptoerr.ErrFormat, "hexcodec: %s needs %d hex chars, got %d", what, want, len(s))
	}
	return nil
}

// scalarBytes returns the little-endian FieldBytes encoding of v.
func scalarBytes(v *big.Int) ([]byte, error) {
	if v == nil || v.Sign() < 0 {
		return nil, cryptoerr.New(cryptoerr.ErrFormat, "hexcodec: scalar must be non-negative")
	}
	if v.BitLen() > StorageBits {
		return nil, cryptoerr.Newf(cryptoerr.ErrFormat, "hexcodec: scalar of %d bits overflows field", v.BitLen())
	}
	b := v.FillBytes(make([]byte, FieldBytes))
	reverse(b)
	return b, nil
}

// LittleEndianInt interprets b, of any length, as a little-endian unsigned
// integer.
func LittleEndianInt(b []byte) *big.Int {
	be := make([]byte, len(b))
	copy(be, b)
	reverse(be)
	return new(big.Int).SetBytes(be)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

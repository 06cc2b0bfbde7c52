package curves

import (
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

var one = big.NewInt(1)

// Point is an affine point on an elliptic curve. The zero Point (both
// coordinates nil) is the point at infinity.
type Point struct {
	X, Y *big.Int
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.X == nil && p.Y == nil
}

// Equal reports whether p and q have identical coordinates.
func (p Point) Equal(q Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Curve defines the arithmetic the hex layer needs from an elliptic curve
// implementation. Implementations must be safe for concurrent use.
type Curve interface {
	// Params returns the curve parameters (P, N, Gx, Gy, BitSize, Name).
	// Only the fields are meaningful; the methods of the returned value
	// assume a = -3 and must not be used.
	Params() *elliptic.CurveParams

	// NewScalar draws a uniformly random scalar in [1, N) from rand.
	NewScalar(rand io.Reader) (*big.Int, error)

	// ScalarBaseMult computes k * G.
	ScalarBaseMult(k *big.Int) Point

	// ScalarMult computes k * P.
	ScalarMult(p Point, k *big.Int) Point

	// Add computes P + Q.
	Add(p, q Point) Point

	// Negate computes -P.
	Negate(p Point) Point

	// IsOnCurve reports whether p is a finite point on the curve with
	// coordinates reduced modulo the field prime.
	IsOnCurve(p Point) bool

	// LiftX returns the point with the given x coordinate and even y, if
	// one exists.
	LiftX(x *big.Int) (Point, bool)
}

// FieldBytes returns the number of bytes needed to hold a field element of c.
func FieldBytes(c Curve) int {
	return (c.Params().P.BitLen() + 7) / 8
}

// randScalar generates a random integer in [1, n).
func randScalar(random io.Reader, n *big.Int) (*big.Int, error) {
	if random == nil {
		return nil, errors.New("curves: nil random source")
	}
	max := new(big.Int).Sub(n, one)
	k, err := rand.Int(random, max)
	if err != nil {
		return nil, err
	}
	return k.Add(k, one), nil
}

// inField reports whether 0 <= v < p.
func inField(v, p *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.Cmp(p) < 0
}

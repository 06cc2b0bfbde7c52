package curves

import (
	"crypto/elliptic"
	"io"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Secp256k1 implements Curve on top of the decred secp256k1 package. Points
// cross the interface in affine form and are converted to Jacobian
// coordinates for the arithmetic.
type Secp256k1 struct{}

// NewSecp256k1 returns a new instance of the Secp256k1 curve wrapper
func NewSecp256k1() Curve {
	return &Secp256k1{}
}

func (c *Secp256k1) Params() *elliptic.CurveParams {
	return secp256k1.S256().Params()
}

func (c *Secp256k1) NewScalar(rand io.Reader) (*big.Int, error) {
	return randScalar(rand, c.Params().N)
}

func (c *Secp256k1) ScalarBaseMult(k *big.Int) Point {
	var result secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(c.modN(k), &result)
	return fromJacobian(&result)
}

func (c *Secp256k1) ScalarMult(p Point, k *big.Int) Point {
	if p.IsInfinity() {
		return Infinity()
	}
	var result secp256k1.JacobianPoint
	point := toJacobian(p)
	secp256k1.ScalarMultNonConst(c.modN(k), &point, &result)
	return fromJacobian(&result)
}

func (c *Secp256k1) Add(p, q Point) Point {
	var result secp256k1.JacobianPoint
	a, b := toJacobian(p), toJacobian(q)
	secp256k1.AddNonConst(&a, &b, &result)
	return fromJacobian(&result)
}

func (c *Secp256k1) Negate(p Point) Point {
	if p.IsInfinity() {
		return Infinity()
	}
	P := c.Params().P
	y := new(big.Int).Sub(P, p.Y)
	y.Mod(y, P)
	return Point{X: new(big.Int).Set(p.X), Y: y}
}

func (c *Secp256k1) IsOnCurve(p Point) bool {
	P := c.Params().P
	if p.IsInfinity() || !inField(p.X, P) || !inField(p.Y, P) {
		return false
	}
	var x, y secp256k1.FieldVal
	x.SetByteSlice(p.X.Bytes())
	y.SetByteSlice(p.Y.Bytes())
	return secp256k1.NewPublicKey(&x, &y).IsOnCurve()
}

func (c *Secp256k1) LiftX(x *big.Int) (Point, bool) {
	if !inField(x, c.Params().P) {
		return Point{}, false
	}
	var fx, fy secp256k1.FieldVal
	fx.SetByteSlice(x.Bytes())
	if !secp256k1.DecompressY(&fx, false, &fy) {
		return Point{}, false
	}
	fy.Normalize()
	y := fy.Bytes()
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).SetBytes(y[:])}, true
}

// modN reduces k modulo the group order.
func (c *Secp256k1) modN(k *big.Int) *secp256k1.ModNScalar {
	var s secp256k1.ModNScalar
	s.SetByteSlice(new(big.Int).Mod(k, c.Params().N).Bytes())
	return &s
}

// toJacobian converts an affine point (assumed to be on the curve) to
// Jacobian coordinates with Z = 1.
func toJacobian(p Point) secp256k1.JacobianPoint {
	var j secp256k1.JacobianPoint
	if p.IsInfinity() {
		return j
	}
	j.X.SetByteSlice(p.X.Bytes())
	j.Y.SetByteSlice(p.Y.Bytes())
	j.Z.SetInt(1)
	return j
}

// fromJacobian normalizes j to affine coordinates.
func fromJacobian(j *secp256k1.JacobianPoint) Point {
	if (j.X.IsZero() && j.Y.IsZero()) || j.Z.IsZero() {
		return Infinity()
	}
	j.ToAffine()
	x, y := j.X.Bytes(), j.Y.Bytes()
	return Point{X: new(big.Int).SetBytes(x[:]), Y: new(big.Int).SetBytes(y[:])}
}

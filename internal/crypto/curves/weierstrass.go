package curves

import (
	"crypto/elliptic"
	"io"
	"math/big"
)

// Weierstrass is a plain affine implementation of a short Weierstrass curve
// y^2 = x^3 + a*x + b over a prime field. It is not constant time and exists
// so the layers above can be exercised against small substitute curves.
type Weierstrass struct {
	params *elliptic.CurveParams
	a      *big.Int
}

// NewWeierstrass builds a curve from its parameters. g must generate a
// subgroup of prime order n.
func NewWeierstrass(name string, p, a, b, n, gx, gy *big.Int) *Weierstrass {
	return &Weierstrass{
		params: &elliptic.CurveParams{
			P:       p,
			N:       n,
			B:       b,
			Gx:      gx,
			Gy:      gy,
			BitSize: p.BitLen(),
			Name:    name,
		},
		a: a,
	}
}

// NewToy returns y^2 = x^3 + 7 over GF(130579). The group of points has
// prime order 131251 and is generated by (5, 53388). Field elements fit in
// three bytes.
func NewToy() *Weierstrass {
	return NewWeierstrass("toy17",
		big.NewInt(130579),
		big.NewInt(0),
		big.NewInt(7),
		big.NewInt(131251),
		big.NewInt(5),
		big.NewInt(53388),
	)
}

func (c *Weierstrass) Params() *elliptic.CurveParams {
	return c.params
}

func (c *Weierstrass) NewScalar(rand io.Reader) (*big.Int, error) {
	return randScalar(rand, c.params.N)
}

func (c *Weierstrass) ScalarBaseMult(k *big.Int) Point {
	return c.ScalarMult(Point{X: c.params.Gx, Y: c.params.Gy}, k)
}

// ScalarMult uses left-to-right double-and-add over k mod N.
func (c *Weierstrass) ScalarMult(p Point, k *big.Int) Point {
	e := new(big.Int).Mod(k, c.params.N)
	result := Infinity()
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = c.Add(result, result)
		if e.Bit(i) == 1 {
			result = c.Add(result, p)
		}
	}
	return result
}

func (c *Weierstrass) Add(p, q Point) Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}
	P := c.params.P

	var lambda *big.Int
	if p.X.Cmp(q.X) == 0 {
		sum := new(big.Int).Add(p.Y, q.Y)
		if sum.Mod(sum, P).Sign() == 0 {
			return Infinity()
		}
		// lambda = (3x^2 + a) / 2y
		num := new(big.Int).Mul(p.X, p.X)
		num.Mul(num, big.NewInt(3))
		num.Add(num, c.a)
		den := new(big.Int).Lsh(p.Y, 1)
		lambda = num.Mul(num, den.ModInverse(den.Mod(den, P), P))
	} else {
		// lambda = (y2 - y1) / (x2 - x1)
		num := new(big.Int).Sub(q.Y, p.Y)
		den := new(big.Int).Sub(q.X, p.X)
		den.Mod(den, P)
		lambda = num.Mul(num, den.ModInverse(den, P))
	}
	lambda.Mod(lambda, P)

	x := new(big.Int).Mul(lambda, lambda)
	x.Sub(x, p.X)
	x.Sub(x, q.X)
	x.Mod(x, P)

	y := new(big.Int).Sub(p.X, x)
	y.Mul(y, lambda)
	y.Sub(y, p.Y)
	y.Mod(y, P)

	return Point{X: x, Y: y}
}

func (c *Weierstrass) Negate(p Point) Point {
	if p.IsInfinity() {
		return Infinity()
	}
	y := new(big.Int).Sub(c.params.P, p.Y)
	y.Mod(y, c.params.P)
	return Point{X: new(big.Int).Set(p.X), Y: y}
}

func (c *Weierstrass) IsOnCurve(p Point) bool {
	P := c.params.P
	if p.IsInfinity() || !inField(p.X, P) || !inField(p.Y, P) {
		return false
	}
	lhs := new(big.Int).Mul(p.Y, p.Y)
	lhs.Mod(lhs, P)
	return lhs.Cmp(c.rhs(p.X)) == 0
}

func (c *Weierstrass) LiftX(x *big.Int) (Point, bool) {
	P := c.params.P
	if !inField(x, P) {
		return Point{}, false
	}
	y := new(big.Int).ModSqrt(c.rhs(x), P)
	if y == nil {
		return Point{}, false
	}
	if y.Bit(0) == 1 {
		y.Sub(P, y)
	}
	return Point{X: new(big.Int).Set(x), Y: y}, true
}

// rhs computes x^3 + a*x + b mod P.
func (c *Weierstrass) rhs(x *big.Int) *big.Int {
	P := c.params.P
	r := new(big.Int).Mul(x, x)
	r.Add(r, c.a)
	r.Mul(r, x)
	r.Add(r, c.params.B)
	return r.Mod(r, P)
}

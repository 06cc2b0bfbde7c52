package schema

import (
	"fmt"
	"math/big"

	"github.com/smallyu/hash-storage-go/internal/crypto/curves"
	"github.com/smallyu/hash-storage-go/internal/crypto/modular"
	"github.com/smallyu/hash-storage-go/internal/hexcodec"
)

// Schema is a named curve parameter set: the curve arithmetic, its
// generator and its group order. A Schema is immutable and cheap to build,
// so operations construct or receive one explicitly instead of sharing a
// global.
type Schema struct {
	Name  string
	Curve curves.Curve
	Order *modular.Modulus
}

// New wraps curve into a Schema. The field prime and the group order must
// both fit in one hex field.
func New(name string, curve curves.Curve) (*Schema, error) {
	params := curve.Params()
	if params.P.BitLen() > hexcodec.StorageBits || params.N.BitLen() > hexcodec.StorageBits {
		return nil, fmt.Errorf("schema %s: parameters exceed %d bits", name, hexcodec.StorageBits)
	}
	order, err := modular.NewModulus(params.N)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", name, err)
	}
	return &Schema{Name: name, Curve: curve, Order: order}, nil
}

func mustNew(name string, curve curves.Curve) *Schema {
	s, err := New(name, curve)
	if err != nil {
		panic(err)
	}
	return s
}

// Secp256k1 returns the secp256k1 schema.
func Secp256k1() *Schema {
	return mustNew("secp256k1", curves.NewSecp256k1())
}

// Toy returns a schema over a 17-bit curve. It is only suitable for tests.
func Toy() *Schema {
	return mustNew("toy17", curves.NewToy())
}

func (s *Schema) generator() curves.Point {
	params := s.Curve.Params()
	return curves.Point{X: new(big.Int).Set(params.Gx), Y: new(big.Int).Set(params.Gy)}
}

// PowMod returns base^exp mod the group order.
func (s *Schema) PowMod(base, exp *big.Int) *big.Int {
	return s.Order.Exp(base, exp)
}

// PublicPoint returns x*G.
func (s *Schema) PublicPoint(x *big.Int) curves.Point {
	return s.Curve.ScalarBaseMult(x)
}

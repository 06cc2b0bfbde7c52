package schema

import (
	"crypto/elliptic"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/hash-storage-go/internal/crypto/curves"
)

func TestSecp256k1(t *testing.T) {
	s := Secp256k1()
	assert.Equal(t, "secp256k1", s.Name)
	assert.Equal(t, 32, curves.FieldBytes(s.Curve))
	assert.Equal(t, 32, s.Order.Size())
	assert.True(t, s.Curve.IsOnCurve(s.generator()))
	assert.True(t, s.PublicPoint(big.NewInt(1)).Equal(s.generator()))
}

func TestToy(t *testing.T) {
	s := Toy()
	assert.Equal(t, 3, curves.FieldBytes(s.Curve))
	assert.Equal(t, big.NewInt(131251), s.Order.Big())
	assert.True(t, s.Curve.IsOnCurve(s.generator()))
}

func TestGeneratorIsACopy(t *testing.T) {
	s := Toy()
	g := s.generator()
	g.X.SetInt64(0)
	assert.Equal(t, big.NewInt(5), s.generator().X)
}

func TestPowMod(t *testing.T) {
	s := Secp256k1()
	z := new(big.Int).SetBytes([]byte("a secret longer than the order, used as its own exponent"))
	want := new(big.Int).Exp(z, z, s.Curve.Params().N)
	assert.Equal(t, want, s.PowMod(z, z))
}

type wideCurve struct{ curves.Curve }

func (wideCurve) Params() *elliptic.CurveParams {
	return &elliptic.CurveParams{P: new(big.Int).Lsh(big.NewInt(1), 300), N: big.NewInt(7)}
}

func TestNewRejectsWideCurve(t *testing.T) {
	_, err := New("wide", wideCurve{})
	require.Error(t, err)
}

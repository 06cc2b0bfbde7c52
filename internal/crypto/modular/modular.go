// Arithmetic modulo a group order based on the bigmod package from Go's
// internal stdlib, exported via filippo.io/bigmod. Values cross the API as
// *big.Int; the arithmetic itself runs on bigmod.Nat.

package modular

import (
	"errors"
	"math/big"

	"filippo.io/bigmod"
)

// Modulus is an odd modulus greater than one, typically a curve's group
// order. It is immutable and safe for concurrent use.
type Modulus struct {
	value *bigmod.Modulus
	n     *big.Int
}

// NewModulus creates a Modulus for n. n must be odd and greater than one.
func NewModulus(n *big.Int) (*Modulus, error) {
	if n == nil || n.Cmp(big.NewInt(1)) <= 0 || n.Bit(0) == 0 {
		return nil, errors.New("modular: modulus must be odd and greater than one")
	}
	m, err := bigmod.NewModulus(n.Bytes())
	if err != nil {
		return nil, err
	}
	return &Modulus{value: m, n: new(big.Int).Set(n)}, nil
}

// Big returns a copy of the modulus value.
func (m *Modulus) Big() *big.Int {
	return new(big.Int).Set(m.n)
}

// Size returns the size of the modulus in bytes.
func (m *Modulus) Size() int {
	return m.value.Size()
}

// Reduce returns x mod m.
func (m *Modulus) Reduce(x *big.Int) *big.Int {
	return m.toBig(m.nat(x))
}

// Exp returns x^e mod m. The exponent is used at full length, it is not
// reduced first.
func (m *Modulus) Exp(x, e *big.Int) *big.Int {
	out := bigmod.NewNat().ExpandFor(m.value)
	out.Exp(m.nat(x), new(big.Int).Abs(e).Bytes(), m.value)
	return m.toBig(out)
}

// Mul returns x*y mod m.
func (m *Modulus) Mul(x, y *big.Int) *big.Int {
	return m.toBig(m.nat(x).Mul(m.nat(y), m.value))
}

// Add returns x+y mod m.
func (m *Modulus) Add(x, y *big.Int) *big.Int {
	return m.toBig(m.nat(x).Add(m.nat(y), m.value))
}

// Inverse returns x^-1 mod m, or false if x has no inverse.
func (m *Modulus) Inverse(x *big.Int) (*big.Int, bool) {
	inv, ok := bigmod.NewNat().ExpandFor(m.value).InverseVarTime(m.nat(x), m.value)
	if !ok {
		return nil, false
	}
	return m.toBig(inv), true
}

// nat converts x, of any size, to a Nat reduced modulo m. The bytes are first
// loaded against a power-of-256 modulus that is larger than x, so no
// reduction happens on load, and then reduced modulo m.
func (m *Modulus) nat(x *big.Int) *bigmod.Nat {
	if x.Sign() < 0 {
		x = new(big.Int).Mod(x, m.n)
	}
	out := bigmod.NewNat().ExpandFor(m.value)
	b := x.Bytes()
	if len(b) == 0 {
		return out
	}

	wideBytes := make([]byte, len(b)+1)
	wideBytes[0] = 1
	wide, err := bigmod.NewModulus(wideBytes)
	if err != nil {
		panic("modular: failed to build wide modulus: " + err.Error())
	}
	t, err := bigmod.NewNat().SetBytes(b, wide)
	if err != nil {
		panic("modular: failed to load value: " + err.Error())
	}
	return out.Mod(t, m.value)
}

func (m *Modulus) toBig(x *bigmod.Nat) *big.Int {
	return new(big.Int).SetBytes(x.Bytes(m.value))
}

// Package elgamal implements hybrid ElGamal encryption of point sequences.
// A single ephemeral scalar is drawn per message and its shared point masks
// every block.
package elgamal

import (
	"io"
	"math/big"

	"github.com/smallyu/hash-storage-go/internal/crypto/curves"
	"github.com/smallyu/hash-storage-go/internal/crypto/schema"
	"github.com/smallyu/hash-storage-go/pkg/cryptoerr"
)

// Ciphertext is the ephemeral point C1 = k*G and the masked blocks
// C2[i] = M[i] + k*H.
type Ciphertext struct {
	C1 curves.Point
	C2 []curves.Point
}

// Points returns C1 followed by the C2 blocks.
func (c *Ciphertext) Points() []curves.Point {
	out := make([]curves.Point, 0, len(c.C2)+1)
	out = append(out, c.C1)
	return append(out, c.C2...)
}

// FromPoints splits a point sequence into C1 and C2.
func FromPoints(points []curves.Point) (*Ciphertext, error) {
	if len(points) == 0 {
		return nil, cryptoerr.New(cryptoerr.ErrFormat, "elgamal: ciphertext has no ephemeral point")
	}
	return &Ciphertext{C1: points[0], C2: points[1:]}, nil
}

// Encrypt encrypts msg to the public point h.
func Encrypt(random io.Reader, s *schema.Schema, h curves.Point, msg []curves.Point) (*Ciphertext, error) {
	curve := s.Curve
	if !curve.IsOnCurve(h) {
		return nil, cryptoerr.New(cryptoerr.ErrCrypto, "elgamal: public point is not on the curve")
	}
	for i, m := range msg {
		if !curve.IsOnCurve(m) {
			return nil, cryptoerr.Newf(cryptoerr.ErrCrypto, "elgamal: message block %d is not on the curve", i)
		}
	}

	// 1. Ephemeral scalar k in [1, n)
	k, err := curve.NewScalar(random)
	if err != nil {
		return nil, cryptoerr.Wrap(cryptoerr.ErrCrypto, "elgamal: ephemeral scalar", err)
	}

	// 2. C1 = k*G, shared point S = k*H
	c1 := curve.ScalarBaseMult(k)
	shared := curve.ScalarMult(h, k)
	if shared.IsInfinity() {
		return nil, cryptoerr.New(cryptoerr.ErrCrypto, "elgamal: degenerate shared point")
	}

	// 3. C2[i] = M[i] + S
	c2 := make([]curves.Point, len(msg))
	for i, m := range msg {
		c2[i] = curve.Add(m, shared)
		if c2[i].IsInfinity() {
			return nil, cryptoerr.Newf(cryptoerr.ErrCrypto, "elgamal: block %d masks to infinity", i)
		}
	}

	return &Ciphertext{C1: c1, C2: c2}, nil
}

// Decrypt recovers the message blocks with the private scalar x.
func Decrypt(s *schema.Schema, x *big.Int, ct *Ciphertext) ([]curves.Point, error) {
	curve := s.Curve
	if x == nil || s.Order.Reduce(x).Sign() == 0 {
		return nil, cryptoerr.New(cryptoerr.ErrCrypto, "elgamal: zero private scalar")
	}
	if !curve.IsOnCurve(ct.C1) {
		return nil, cryptoerr.New(cryptoerr.ErrCrypto, "elgamal: ephemeral point is not on the curve")
	}

	// S = x*C1, M[i] = C2[i] - S
	negShared := curve.Negate(curve.ScalarMult(ct.C1, x))
	msg := make([]curves.Point, len(ct.C2))
	for i, c := range ct.C2 {
		if !curve.IsOnCurve(c) {
			return nil, cryptoerr.Newf(cryptoerr.ErrCrypto, "elgamal: block %d is not on the curve", i)
		}
		msg[i] = curve.Add(c, negShared)
		if msg[i].IsInfinity() {
			return nil, cryptoerr.Newf(cryptoerr.ErrCrypto, "elgamal: block %d decrypts to infinity", i)
		}
	}
	return msg, nil
}

// Package ecdsa signs and verifies raw message material over a schema.
//
// The message is turned into an integer by reading at most the order's byte
// length of it as a little-endian number and reducing modulo the order, which
// matches the byte order of the hex fields.
package ecdsa

import (
	"io"
	"math/big"

	"github.com/smallyu/hash-storage-go/internal/crypto/curves"
	"github.com/smallyu/hash-storage-go/internal/crypto/schema"
	"github.com/smallyu/hash-storage-go/internal/hexcodec"
	"github.com/smallyu/hash-storage-go/pkg/cryptoerr"
)

// maxAttempts bounds the r = 0 / s = 0 retry loop. Hitting it means the
// random source is broken.
const maxAttempts = 64

// Signature is an ECDSA signature (r, s).
type Signature struct {
	R *big.Int
	S *big.Int
}

// messageInt converts msg to an integer modulo the order of s.
func messageInt(s *schema.Schema, msg []byte) *big.Int {
	if size := s.Order.Size(); len(msg) > size {
		msg = msg[:size]
	}
	return s.Order.Reduce(hexcodec.LittleEndianInt(msg))
}

// Sign signs msg with the private scalar x, drawing a fresh nonce from random.
func Sign(random io.Reader, s *schema.Schema, x *big.Int, msg []byte) (*Signature, error) {
	if x == nil {
		return nil, cryptoerr.New(cryptoerr.ErrCrypto, "ecdsa: missing private scalar")
	}
	order := s.Order
	d := order.Reduce(x)
	if d.Sign() == 0 {
		return nil, cryptoerr.New(cryptoerr.ErrCrypto, "ecdsa: zero private scalar")
	}
	z := messageInt(s, msg)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		// 1. Nonce k in [1, n)
		k, err := s.Curve.NewScalar(random)
		if err != nil {
			return nil, cryptoerr.Wrap(cryptoerr.ErrCrypto, "ecdsa: nonce", err)
		}

		// 2. r = x(k*G) mod n
		R := s.Curve.ScalarBaseMult(k)
		r := order.Reduce(R.X)
		if r.Sign() == 0 {
			continue
		}

		// 3. s = k^-1 * (z + r*d) mod n
		kInv, ok := order.Inverse(k)
		if !ok {
			continue
		}
		sv := order.Mul(kInv, order.Add(z, order.Mul(r, d)))
		if sv.Sign() == 0 {
			continue
		}
		return &Signature{R: r, S: sv}, nil
	}
	return nil, cryptoerr.New(cryptoerr.ErrCrypto, "ecdsa: no valid nonce")
}

// Verify reports whether sig is a valid signature of msg under the public
// point h. Signatures with components outside [1, n) are invalid; an
// off-curve h is an error.
func Verify(s *schema.Schema, h curves.Point, msg []byte, sig *Signature) (bool, error) {
	if !s.Curve.IsOnCurve(h) {
		return false, cryptoerr.New(cryptoerr.ErrCrypto, "ecdsa: public point is not on the curve")
	}
	order := s.Order
	n := order.Big()
	if sig == nil || !inRange(sig.R, n) || !inRange(sig.S, n) {
		return false, nil
	}

	w, ok := order.Inverse(sig.S)
	if !ok {
		return false, nil
	}
	z := messageInt(s, msg)
	u1 := order.Mul(z, w)
	u2 := order.Mul(sig.R, w)

	// u1*G + u2*H
	P := s.Curve.Add(s.Curve.ScalarBaseMult(u1), s.Curve.ScalarMult(h, u2))
	if P.IsInfinity() {
		return false, nil
	}
	return order.Reduce(P.X).Cmp(sig.R) == 0, nil
}

func inRange(v, n *big.Int) bool {
	return v != nil && v.Sign() > 0 && v.Cmp(n) < 0
}

package ecdsa

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/hash-storage-go/internal/crypto/curves"
	"github.com/smallyu/hash-storage-go/internal/crypto/schema"
	"github.com/smallyu/hash-storage-go/pkg/cryptoerr"
)

func keyPair(t *testing.T, s *schema.Schema) (*big.Int, curves.Point) {
	t.Helper()
	x, err := s.Curve.NewScalar(rand.Reader)
	require.NoError(t, err)
	return x, s.PublicPoint(x)
}

func TestSignVerify(t *testing.T) {
	digest := sha256.Sum256([]byte("Data keyData block"))
	messages := [][]byte{
		digest[:],
		{},
		[]byte("short"),
		bytes.Repeat([]byte{0xd9}, 100),
	}

	for _, s := range []*schema.Schema{schema.Secp256k1(), schema.Toy()} {
		x, h := keyPair(t, s)
		for _, msg := range messages {
			sig, err := Sign(rand.Reader, s, x, msg)
			require.NoError(t, err, s.Name)

			ok, err := Verify(s, h, msg, sig)
			require.NoError(t, err)
			assert.True(t, ok, "%s: signature over %x rejected", s.Name, msg)
		}
	}
}

func TestVerifyRejectsTampering(t *testing.T) {
	s := schema.Secp256k1()
	x, h := keyPair(t, s)
	msg := []byte("Data block")

	sig, err := Sign(rand.Reader, s, x, msg)
	require.NoError(t, err)

	ok, err := Verify(s, h, []byte("Data blocK"), sig)
	require.NoError(t, err)
	assert.False(t, ok, "altered message")

	_, other := keyPair(t, s)
	ok, err = Verify(s, other, msg, sig)
	require.NoError(t, err)
	assert.False(t, ok, "other key")

	bumped := &Signature{R: sig.R, S: new(big.Int).Add(sig.S, big.NewInt(1))}
	ok, err = Verify(s, h, msg, bumped)
	require.NoError(t, err)
	assert.False(t, ok, "altered s")
}

func TestVerifyOutOfRange(t *testing.T) {
	s := schema.Toy()
	x, h := keyPair(t, s)
	msg := []byte("m")
	sig, err := Sign(rand.Reader, s, x, msg)
	require.NoError(t, err)

	n := s.Order.Big()
	for _, bad := range []*Signature{
		nil,
		{R: big.NewInt(0), S: sig.S},
		{R: sig.R, S: big.NewInt(0)},
		{R: n, S: sig.S},
		{R: sig.R, S: new(big.Int).Add(sig.S, n)},
	} {
		ok, err := Verify(s, h, msg, bad)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestVerifyOffCurveKey(t *testing.T) {
	s := schema.Toy()
	_, err := Verify(s, curves.Point{X: big.NewInt(5), Y: big.NewInt(1)}, []byte("m"), &Signature{R: big.NewInt(1), S: big.NewInt(1)})
	assert.True(t, errors.Is(err, cryptoerr.ErrCrypto))
}

func TestSignErrors(t *testing.T) {
	s := schema.Toy()

	_, err := Sign(rand.Reader, s, s.Order.Big(), []byte("m"))
	assert.True(t, errors.Is(err, cryptoerr.ErrCrypto), "x = n")

	_, err = Sign(rand.Reader, s, nil, []byte("m"))
	assert.True(t, errors.Is(err, cryptoerr.ErrCrypto), "nil x")

	_, err = Sign(bytes.NewReader(nil), s, big.NewInt(7), []byte("m"))
	assert.True(t, errors.Is(err, cryptoerr.ErrCrypto), "empty random source")
}

func TestFreshNonce(t *testing.T) {
	s := schema.Secp256k1()
	x, _ := keyPair(t, s)
	a, err := Sign(rand.Reader, s, x, []byte("m"))
	require.NoError(t, err)
	b, err := Sign(rand.Reader, s, x, []byte("m"))
	require.NoError(t, err)
	assert.NotEqual(t, a.R, b.R)
}

func TestMessageIntLittleEndian(t *testing.T) {
	s := schema.Toy()
	// The toy order is three bytes wide: only the first three bytes count.
	assertInt(t, big.NewInt(0x010201), messageInt(s, []byte{1, 2, 1, 4, 5}))
	assertInt(t, new(big.Int).Mod(big.NewInt(0x030201), s.Order.Big()), messageInt(s, []byte{1, 2, 3, 4, 5}))
	assertInt(t, big.NewInt(0), messageInt(s, nil))

	// 0xFFFFFF reduces modulo 131251.
	assertInt(t, new(big.Int).Mod(big.NewInt(0xffffff), s.Order.Big()), messageInt(s, []byte{0xff, 0xff, 0xff}))
}

// A 32-byte message read little-endian equals the reversed bytes read
// big-endian, so the decred verifier accepts our signatures over the
// reversed digest.
func TestCompatibleWithDecred(t *testing.T) {
	s := schema.Secp256k1()
	x, h := keyPair(t, s)
	digest := sha256.Sum256([]byte("Some text."))

	sig, err := Sign(rand.Reader, s, x, digest[:])
	require.NoError(t, err)

	var fx, fy secp256k1.FieldVal
	fx.SetByteSlice(h.X.Bytes())
	fy.SetByteSlice(h.Y.Bytes())
	pk := secp256k1.NewPublicKey(&fx, &fy)

	var r, sv secp256k1.ModNScalar
	r.SetByteSlice(sig.R.Bytes())
	sv.SetByteSlice(sig.S.Bytes())

	reversed := make([]byte, len(digest))
	for i, b := range digest {
		reversed[len(digest)-1-i] = b
	}
	assert.True(t, dcrecdsa.NewSignature(&r, &sv).Verify(reversed, pk))
}

func BenchmarkSign(b *testing.B) {
	s := schema.Secp256k1()
	x := big.NewInt(0x1234567)
	msg := sha256.Sum256([]byte("bench"))
	for i := 0; i < b.N; i++ {
		if _, err := Sign(rand.Reader, s, x, msg[:]); err != nil {
			b.Fatal(err)
		}
	}
}

func assertInt(t *testing.T, want, got *big.Int, msgAndArgs ...interface{}) {
	t.Helper()
	if got == nil || want.Cmp(got) != 0 {
		assert.Fail(t, fmt.Sprintf("want %v, got %v", want, got), msgAndArgs...)
	}
}

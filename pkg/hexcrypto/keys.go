package hexcrypto

import (
	"math/big"
	"time"

	"github.com/smallyu/hash-storage-go/internal/crypto/curves"
	"github.com/smallyu/hash-storage-go/internal/hexcodec"
	"github.com/smallyu/hash-storage-go/pkg/cryptoerr"
)

// GetPrivateKey derives a private key from secret. The UTF-8 bytes of
// secret are read as a little-endian integer z, raised to itself modulo the
// group order, and the x coordinate of z^z * G is the key. The same secret
// always yields the same key.
func (s *Suite) GetPrivateKey(secret string) (key string, err error) {
	defer s.trace("get_private_key", time.Now(), &err)

	z := hexcodec.LittleEndianInt([]byte(secret))
	zz := s.schema.PowMod(z, z)
	if zz.Sign() == 0 {
		return "", cryptoerr.New(cryptoerr.ErrCrypto, "secret derives the zero scalar")
	}
	return hexcodec.EncodeScalar(s.schema.PublicPoint(zz).X)
}

// GetPublicKey returns hex(x*G) for the private key x.
func (s *Suite) GetPublicKey(privateKey string) (key string, err error) {
	defer s.trace("get_public_key", time.Now(), &err)

	x, err := s.privateScalar(privateKey)
	if err != nil {
		return "", err
	}
	return hexcodec.EncodePoint(s.schema.PublicPoint(x))
}

// CheckKeys reports whether publicKey equals privateKey * G.
func (s *Suite) CheckKeys(privateKey, publicKey string) (ok bool, err error) {
	defer s.trace("check_keys", time.Now(), &err)

	x, err := hexcodec.DecodeScalar(privateKey)
	if err != nil {
		return false, err
	}
	h, err := s.publicPoint(publicKey)
	if err != nil {
		return false, err
	}
	return s.schema.PublicPoint(x).Equal(h), nil
}

// privateScalar decodes a private key and rejects keys that are zero modulo
// the group order.
func (s *Suite) privateScalar(text string) (*big.Int, error) {
	x, err := hexcodec.DecodeScalar(text)
	if err != nil {
		return nil, err
	}
	if s.schema.Order.Reduce(x).Sign() == 0 {
		return nil, cryptoerr.New(cryptoerr.ErrCrypto, "private key is zero modulo the group order")
	}
	return x, nil
}

// publicPoint decodes a public key and checks that it lies on the curve.
func (s *Suite) publicPoint(text string) (curves.Point, error) {
	h, err := hexcodec.DecodePoint(text)
	if err != nil {
		return curves.Point{}, err
	}
	if !s.schema.Curve.IsOnCurve(h) {
		return curves.Point{}, cryptoerr.New(cryptoerr.ErrCrypto, "public key is not on the curve")
	}
	return h, nil
}

package hexcrypto

import (
	"time"
	"unicode/utf8"

	"github.com/smallyu/hash-storage-go/internal/crypto/elgamal"
	"github.com/smallyu/hash-storage-go/internal/hexcodec"
	"github.com/smallyu/hash-storage-go/pkg/cryptoerr"
)

// Encrypt packs body into curve points and encrypts them to publicKey. The
// result is hex(C1) followed by one point per block. Every call draws a
// fresh ephemeral scalar, so equal inputs give different outputs.
func (s *Suite) Encrypt(publicKey, body string) (block string, err error) {
	defer s.trace("encrypt", time.Now(), &err)

	h, err := s.publicPoint(publicKey)
	if err != nil {
		return "", err
	}
	msg, err := s.mapper.Pack([]byte(body))
	if err != nil {
		return "", err
	}
	ct, err := elgamal.Encrypt(s.random, s.schema, h, msg)
	if err != nil {
		return "", err
	}
	return hexcodec.EncodePoints(ct.Points())
}

// Decrypt reverses Encrypt. block must be a whole number of points, at
// least two. A wrong key yields ErrDecode or ErrCrypto, never a silent
// result, unless the garbage happens to unpad into valid UTF-8.
func (s *Suite) Decrypt(privateKey, block string) (body string, err error) {
	defer s.trace("decrypt", time.Now(), &err)

	x, err := s.privateScalar(privateKey)
	if err != nil {
		return "", err
	}
	points, err := hexcodec.DecodePoints(block)
	if err != nil {
		return "", err
	}
	ct, err := elgamal.FromPoints(points)
	if err != nil {
		return "", err
	}
	msg, err := elgamal.Decrypt(s.schema, x, ct)
	if err != nil {
		return "", err
	}
	data, err := s.mapper.Unpack(msg)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", cryptoerr.New(cryptoerr.ErrDecode, "decrypted body is not valid UTF-8")
	}
	return string(data), nil
}

package hexcrypto

import (
	"time"

	"github.com/smallyu/hash-storage-go/internal/crypto/digest"
	"github.com/smallyu/hash-storage-go/internal/crypto/ecdsa"
	"github.com/smallyu/hash-storage-go/internal/hexcodec"
)

// BuildSignature signs SHA-256(key || block) and returns hex(r) || hex(s).
// A fresh nonce is drawn per call.
func (s *Suite) BuildSignature(privateKey, key, block string) (sig string, err error) {
	defer s.trace("build_signature", time.Now(), &err)
	return s.sign(privateKey, digest.SumContext(key, block))
}

// CheckSignature verifies a BuildSignature result. A mismatch, including
// out-of-range r or s, is false with a nil error.
func (s *Suite) CheckSignature(publicKey, key, block, signature string) (ok bool, err error) {
	defer s.trace("check_signature", time.Now(), &err)
	return s.verify(publicKey, digest.SumContext(key, block), signature)
}

// BuildSecretSignature signs the bytes of the hex string secret directly,
// without hashing.
func (s *Suite) BuildSecretSignature(privateKey, secret string) (sig string, err error) {
	defer s.trace("build_secret_signature", time.Now(), &err)

	msg, err := hexcodec.DecodeBytes(secret)
	if err != nil {
		return "", err
	}
	return s.sign(privateKey, msg)
}

// CheckSecretSignature verifies a BuildSecretSignature result.
func (s *Suite) CheckSecretSignature(publicKey, secret, signature string) (ok bool, err error) {
	defer s.trace("check_secret_signature", time.Now(), &err)

	msg, err := hexcodec.DecodeBytes(secret)
	if err != nil {
		return false, err
	}
	return s.verify(publicKey, msg, signature)
}

func (s *Suite) sign(privateKey string, msg []byte) (string, error) {
	x, err := s.privateScalar(privateKey)
	if err != nil {
		return "", err
	}
	sig, err := ecdsa.Sign(s.random, s.schema, x, msg)
	if err != nil {
		return "", err
	}
	return hexcodec.EncodeScalarPair(sig.R, sig.S)
}

func (s *Suite) verify(publicKey string, msg []byte, signature string) (bool, error) {
	h, err := s.publicPoint(publicKey)
	if err != nil {
		return false, err
	}
	r, sv, err := hexcodec.DecodeScalarPair(signature)
	if err != nil {
		return false, err
	}
	return ecdsa.Verify(s.schema, h, msg, &ecdsa.Signature{R: r, S: sv})
}

// Package hexcrypto exposes key derivation, hybrid encryption and ECDSA
// signatures over secp256k1 through hexadecimal strings.
//
// Private keys are one 64-character field, public keys and signatures are
// two, and encrypted blocks are a sequence of 128-character points. Fields
// hold little-endian integers and are emitted in uppercase.
package hexcrypto

import (
	"crypto/rand"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/smallyu/hash-storage-go/internal/crypto/mapping"
	"github.com/smallyu/hash-storage-go/internal/crypto/schema"
)

// Suite binds the operations to a schema and a random source. A Suite is
// immutable and safe for concurrent use.
type Suite struct {
	schema *schema.Schema
	mapper *mapping.Mapper
	random io.Reader
	log    logrus.FieldLogger
}

// Option configures a Suite.
type Option func(*Suite)

// WithSchema selects the curve parameters. The default is secp256k1.
func WithSchema(s *schema.Schema) Option {
	return func(suite *Suite) {
		suite.schema = s
	}
}

// WithRandom sets the source for encryption and signing nonces. The default
// is crypto/rand.Reader.
func WithRandom(r io.Reader) Option {
	return func(suite *Suite) {
		suite.random = r
	}
}

// WithLogger sets the logger used for operation traces.
func WithLogger(l logrus.FieldLogger) Option {
	return func(suite *Suite) {
		suite.log = l
	}
}

// NewSuite builds a Suite.
func NewSuite(opts ...Option) (*Suite, error) {
	s := &Suite{
		random: rand.Reader,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.schema == nil {
		s.schema = schema.Secp256k1()
	}
	if s.log == nil {
		s.log = discardLogger()
	}

	m, err := mapping.New(s.schema.Curve)
	if err != nil {
		return nil, err
	}
	s.mapper = m
	return s, nil
}

// Schema returns the schema name, e.g. "secp256k1".
func (s *Suite) Schema() string {
	return s.schema.Name
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// trace logs the outcome of one operation. It is deferred with a pointer to
// the named error result. Arguments are never logged.
func (s *Suite) trace(op string, start time.Time, errp *error) {
	entry := s.log.WithFields(logrus.Fields{
		"op":       op,
		"schema":   s.schema.Name,
		"duration": time.Since(start),
	})
	if err := *errp; err != nil {
		entry.WithError(err).Debug("operation failed")
		return
	}
	entry.Debug("operation done")
}

var defaultSuite = mustSuite()

func mustSuite() *Suite {
	s, err := NewSuite()
	if err != nil {
		panic(err)
	}
	return s
}

// Default returns the secp256k1 Suite used by the package-level functions.
func Default() *Suite {
	return defaultSuite
}

// GetPrivateKey calls Default().GetPrivateKey.
func GetPrivateKey(secret string) (string, error) {
	return defaultSuite.GetPrivateKey(secret)
}

// GetPublicKey calls Default().GetPublicKey.
func GetPublicKey(privateKey string) (string, error) {
	return defaultSuite.GetPublicKey(privateKey)
}

// CheckKeys calls Default().CheckKeys.
func CheckKeys(privateKey, publicKey string) (bool, error) {
	return defaultSuite.CheckKeys(privateKey, publicKey)
}

// Encrypt calls Default().Encrypt.
func Encrypt(publicKey, body string) (string, error) {
	return defaultSuite.Encrypt(publicKey, body)
}

// Decrypt calls Default().Decrypt.
func Decrypt(privateKey, block string) (string, error) {
	return defaultSuite.Decrypt(privateKey, block)
}

// BuildSignature calls Default().BuildSignature.
func BuildSignature(privateKey, key, block string) (string, error) {
	return defaultSuite.BuildSignature(privateKey, key, block)
}

// CheckSignature calls Default().CheckSignature.
func CheckSignature(publicKey, key, block, signature string) (bool, error) {
	return defaultSuite.CheckSignature(publicKey, key, block, signature)
}

// BuildSecretSignature calls Default().BuildSecretSignature.
func BuildSecretSignature(privateKey, secret string) (string, error) {
	return defaultSuite.BuildSecretSignature(privateKey, secret)
}

// CheckSecretSignature calls Default().CheckSecretSignature.
func CheckSecretSignature(publicKey, secret, signature string) (bool, error) {
	return defaultSuite.CheckSecretSignature(publicKey, secret, signature)
}

package hexcrypto

// Service is the string-only surface shared by every host (browser, CLI,
// HTTP). All inputs and outputs are hexadecimal text, except the plaintext
// body, the signature context key and the signed block, which are free text.
type Service interface {
	// GetPrivateKey derives a private key deterministically from a secret.
	GetPrivateKey(secret string) (string, error)

	// GetPublicKey returns the public point of a private key.
	GetPublicKey(privateKey string) (string, error)

	// CheckKeys reports whether the public key belongs to the private key.
	CheckKeys(privateKey, publicKey string) (bool, error)

	// Encrypt encrypts body to a public key. Output is randomized.
	Encrypt(publicKey, body string) (string, error)

	// Decrypt recovers the body of an encrypted block.
	Decrypt(privateKey, block string) (string, error)

	// BuildSignature signs SHA-256(key || block).
	BuildSignature(privateKey, key, block string) (string, error)

	// CheckSignature verifies a signature made by BuildSignature.
	CheckSignature(publicKey, key, block, signature string) (bool, error)

	// BuildSecretSignature signs the raw bytes of a hex secret.
	BuildSecretSignature(privateKey, secret string) (string, error)

	// CheckSecretSignature verifies a signature made by BuildSecretSignature.
	CheckSecretSignature(publicKey, secret, signature string) (bool, error)
}

var _ Service = (*Suite)(nil)

package benchmark

import (
	"fmt"
	"strings"
	"testing"

	"github.com/smallyu/hash-storage-go/internal/crypto/schema"
	"github.com/smallyu/hash-storage-go/pkg/hexcrypto"
)

const (
	privateKey = "12BEC995D37D5267AD734B5B63FFFF048A511F71CD086D3E212FF13C9A037FD1"
	publicKey  = "9F12C869D6330074C913C9D547946C5AA0DC9180F55CC001FDD06FAE3D281011" +
		"FA32C6A14C56180C654E2224B6DB0A5B738736D59E9036254F41D32C7BF9C825"
	secret = "D906DC161380BF7199872C62C24B5488BEEB4D27EA3F6D3E9E5619A460FF2DB1"
)

func BenchmarkGetPrivateKey(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := hexcrypto.GetPrivateKey("alex:1234567"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGetPublicKey(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := hexcrypto.GetPublicKey(privateKey); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCheckKeys(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := hexcrypto.CheckKeys(privateKey, publicKey); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncrypt(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		body := strings.Repeat("x", size)
		b.Run(fmt.Sprintf("%dB", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := hexcrypto.Encrypt(publicKey, body); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecrypt(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		block, err := hexcrypto.Encrypt(publicKey, strings.Repeat("x", size))
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("%dB", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := hexcrypto.Decrypt(privateKey, block); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkBuildSignature(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := hexcrypto.BuildSignature(privateKey, "Data key", "Data block"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCheckSignature(b *testing.B) {
	sig, err := hexcrypto.BuildSignature(privateKey, "Data key", "Data block")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hexcrypto.CheckSignature(publicKey, "Data key", "Data block", sig); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuildSecretSignature(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := hexcrypto.BuildSecretSignature(privateKey, secret); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCheckSecretSignature(b *testing.B) {
	sig, err := hexcrypto.BuildSecretSignature(privateKey, secret)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hexcrypto.CheckSecretSignature(publicKey, secret, sig); err != nil {
			b.Fatal(err)
		}
	}
}

// The toy schema isolates codec and mapping cost from curve arithmetic.
func BenchmarkEncryptDecryptToy(b *testing.B) {
	s, err := hexcrypto.NewSuite(hexcrypto.WithSchema(schema.Toy()))
	if err != nil {
		b.Fatal(err)
	}
	priv, err := s.GetPrivateKey("alex:1234567")
	if err != nil {
		b.Fatal(err)
	}
	pub, err := s.GetPublicKey(priv)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		block, err := s.Encrypt(pub, "Some text.")
		if err != nil {
			b.Fatal(err)
		}
		if _, err := s.Decrypt(priv, block); err != nil {
			b.Fatal(err)
		}
	}
}

//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/smallyu/hash-storage-go/pkg/hexcrypto"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("hash-storage WASM initialized")

	// Expose Go functions to JS
	js.Global().Set("HashStorage", map[string]interface{}{
		"getPrivateKey":        js.FuncOf(GetPrivateKey),
		"getPublicKey":         js.FuncOf(GetPublicKey),
		"checkKeys":            js.FuncOf(CheckKeys),
		"encrypt":              js.FuncOf(Encrypt),
		"decrypt":              js.FuncOf(Decrypt),
		"buildSignature":       js.FuncOf(BuildSignature),
		"checkSignature":       js.FuncOf(CheckSignature),
		"buildSecretSignature": js.FuncOf(BuildSecretSignature),
		"checkSecretSignature": js.FuncOf(CheckSecretSignature),
	})

	<-c
}

// GetPrivateKey derives a private key.
// Arguments:
// 0: secret (string)
// Returns:
// private key hex or "error: ..."
func GetPrivateKey(this js.Value, args []js.Value) interface{} {
	a, errMsg := stringArgs(args, "secret")
	if errMsg != "" {
		return errMsg
	}
	return text(hexcrypto.GetPrivateKey(a[0]))
}

// GetPublicKey returns the public key of a private key.
// Arguments:
// 0: private key (hex)
func GetPublicKey(this js.Value, args []js.Value) interface{} {
	a, errMsg := stringArgs(args, "privateKey")
	if errMsg != "" {
		return errMsg
	}
	return text(hexcrypto.GetPublicKey(a[0]))
}

// CheckKeys reports whether the two keys form a pair.
// Arguments:
// 0: private key (hex)
// 1: public key (hex)
// Returns:
// boolean or "error: ..."
func CheckKeys(this js.Value, args []js.Value) interface{} {
	a, errMsg := stringArgs(args, "privateKey", "publicKey")
	if errMsg != "" {
		return errMsg
	}
	return boolean(hexcrypto.CheckKeys(a[0], a[1]))
}

// Encrypt encrypts a text body.
// Arguments:
// 0: public key (hex)
// 1: body (string)
func Encrypt(this js.Value, args []js.Value) interface{} {
	a, errMsg := stringArgs(args, "publicKey", "body")
	if errMsg != "" {
		return errMsg
	}
	return text(hexcrypto.Encrypt(a[0], a[1]))
}

// Decrypt decrypts an encrypted block.
// Arguments:
// 0: private key (hex)
// 1: block (hex)
func Decrypt(this js.Value, args []js.Value) interface{} {
	a, errMsg := stringArgs(args, "privateKey", "block")
	if errMsg != "" {
		return errMsg
	}
	return text(hexcrypto.Decrypt(a[0], a[1]))
}

// BuildSignature signs a (key, block) pair.
// Arguments:
// 0: private key (hex)
// 1: key (string)
// 2: block (string)
func BuildSignature(this js.Value, args []js.Value) interface{} {
	a, errMsg := stringArgs(args, "privateKey", "key", "block")
	if errMsg != "" {
		return errMsg
	}
	return text(hexcrypto.BuildSignature(a[0], a[1], a[2]))
}

// CheckSignature verifies a (key, block) signature.
// Arguments:
// 0: public key (hex)
// 1: key (string)
// 2: block (string)
// 3: signature (hex)
func CheckSignature(this js.Value, args []js.Value) interface{} {
	a, errMsg := stringArgs(args, "publicKey", "key", "block", "signature")
	if errMsg != "" {
		return errMsg
	}
	return boolean(hexcrypto.CheckSignature(a[0], a[1], a[2], a[3]))
}

// BuildSecretSignature signs the bytes of a hex secret.
// Arguments:
// 0: private key (hex)
// 1: secret (hex)
func BuildSecretSignature(this js.Value, args []js.Value) interface{} {
	a, errMsg := stringArgs(args, "privateKey", "secret")
	if errMsg != "" {
		return errMsg
	}
	return text(hexcrypto.BuildSecretSignature(a[0], a[1]))
}

// CheckSecretSignature verifies a secret signature.
// Arguments:
// 0: public key (hex)
// 1: secret (hex)
// 2: signature (hex)
func CheckSecretSignature(this js.Value, args []js.Value) interface{} {
	a, errMsg := stringArgs(args, "publicKey", "secret", "signature")
	if errMsg != "" {
		return errMsg
	}
	return boolean(hexcrypto.CheckSecretSignature(a[0], a[1], a[2]))
}

// Helpers

// stringArgs checks the argument count and types and returns the arguments as
// Go strings, or an error message for JS.
func stringArgs(args []js.Value, names ...string) ([]string, string) {
	if len(args) != len(names) {
		return nil, fmt.Sprintf("error: expected %d arguments %v", len(names), names)
	}
	out := make([]string, len(args))
	for i, arg := range args {
		if arg.Type() != js.TypeString {
			return nil, fmt.Sprintf("error: argument %s must be a string", names[i])
		}
		out[i] = arg.String()
	}
	return out, ""
}

func text(s string, err error) interface{} {
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return s
}

func boolean(ok bool, err error) interface{} {
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return ok
}

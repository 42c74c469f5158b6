package seahorsetest

import (
	"crypto/rand"
	"testing"

	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/crypto"
)

// NewKey returns a fresh ed25519 key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewAddress returns the address of a fresh key pair.
func NewAddress() seahorse.Address {
	return NewKey().PublicKey().Address()
}

// RandomAddr returns a valid random address genearted on the fly. Unlike
// NewAddress, the result is not guaranteed to be a key pair address.
func RandomAddr(t testing.TB) seahorse.Address {
	raw := make([]byte, seahorse.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot generate a random address: %s", err)
	}
	return seahorse.Address(raw)
}

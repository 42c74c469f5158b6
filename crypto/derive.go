package crypto

import (
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/stellar/go/exp/crypto/derivation"
)

// DefaultDerivationPath is the SLIP-0010 path of the first account.
const DefaultDerivationPath = "m/44'/501'/0'/0'"

// DerivePrivateKey returns the key at given SLIP-0010 path of a wallet
// seed. Only hardened path segments are supported for ed25519.
func DerivePrivateKey(seed []byte, path string) (*PrivateKey, error) {
	if len(seed) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "seed")
	}
	k, err := derivation.DeriveForPath(path, seed)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "derivation path %q: %s", path, err)
	}
	return PrivKeyEd25519FromSeed(k.Key), nil
}

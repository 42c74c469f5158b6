package crypto

import (
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/tyler-smith/go-bip39"
)

// GenerateMnemonic returns a new 24 word BIP-0039 mnemonic.
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", errors.Wrapf(errors.ErrHuman, "entropy: %s", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrapf(errors.ErrHuman, "mnemonic: %s", err)
	}
	return mnemonic, nil
}

// KeyFromMnemonic derives the key at given path of the wallet described by
// a BIP-0039 mnemonic. The passphrase may be empty.
func KeyFromMnemonic(mnemonic, passphrase, path string) (*PrivateKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.Wrap(errors.ErrInput, "invalid mnemonic")
	}
	return DerivePrivateKey(bip39.NewSeed(mnemonic, passphrase), path)
}

package seahorse

import (
	"crypto/sha256"

	"filippo.io/edwards25519"
	"github.com/mtnPay/seahorse-swap/errors"
)

const (
	// MaxSeeds is the maximum number of seeds (bump excluded) used to
	// derive an address.
	MaxSeeds = 16

	// MaxSeedLength is the maximum length of a single seed.
	MaxSeedLength = 32

	derivedAddressMarker = "ProgramDerivedAddress"
)

// CreateProgramAddress computes the address owned by the program for given
// seeds and bump. It fails if the resulting digest is a valid ed25519 point,
// because such an address could have a private key.
func CreateProgramAddress(program string, bump uint8, seeds ...[]byte) (Address, error) {
	if err := validateSeeds(program, seeds); err != nil {
		return nil, err
	}
	addr := deriveAddress(program, bump, seeds)
	if isOnCurve(addr) {
		return nil, errors.Wrap(errors.ErrInput, "derived address is on the ed25519 curve")
	}
	return addr, nil
}

// FindProgramAddress searches for the highest bump, starting at 255, for
// which the derived address is off the ed25519 curve. Given the same inputs
// it always returns the same address and bump.
func FindProgramAddress(program string, seeds ...[]byte) (Address, uint8, error) {
	if err := validateSeeds(program, seeds); err != nil {
		return nil, 0, err
	}
	for bump := 255; bump >= 0; bump-- {
		addr := deriveAddress(program, uint8(bump), seeds)
		if !isOnCurve(addr) {
			return addr, uint8(bump), nil
		}
	}
	return nil, 0, errors.Wrap(errors.ErrState, "no off curve bump found")
}

// MustFindProgramAddress is like FindProgramAddress, but panics instead of
// returning an error. Only use it with seeds you control.
func MustFindProgramAddress(program string, seeds ...[]byte) (Address, uint8) {
	addr, bump, err := FindProgramAddress(program, seeds...)
	if err != nil {
		panic(err)
	}
	return addr, bump
}

func validateSeeds(program string, seeds [][]byte) error {
	if program == "" {
		return errors.Wrap(errors.ErrEmpty, "program")
	}
	if len(seeds) > MaxSeeds {
		return errors.Wrapf(errors.ErrInput, "too many seeds: %d", len(seeds))
	}
	for i, s := range seeds {
		if len(s) > MaxSeedLength {
			return errors.Wrapf(errors.ErrInput, "seed %d exceeds %d bytes", i, MaxSeedLength)
		}
	}
	return nil
}

// deriveAddress hashes length prefixed seeds, so that no two different seed
// lists produce the same preimage.
func deriveAddress(program string, bump uint8, seeds [][]byte) Address {
	h := sha256.New()
	for _, s := range seeds {
		h.Write([]byte{byte(len(s))})
		h.Write(s)
	}
	h.Write([]byte{bump})
	h.Write([]byte(program))
	h.Write([]byte(derivedAddressMarker))
	return Address(h.Sum(nil))
}

func isOnCurve(addr Address) bool {
	_, err := new(edwards25519.Point).SetBytes(addr)
	return err == nil
}

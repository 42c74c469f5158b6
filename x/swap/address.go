package swap

import (
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/x/token"
)

// program is the domain separator of all addresses derived by this
// extension.
const program = "seahorse-swap"

const (
	escrowTag            = "escrow"
	offeringCustodyTag   = "escrow-offered-token-account"
	requestingCustodyTag = "escrow-requested-token-account"
)

func escrowSeeds(offeringHolder, requestingHolder seahorse.Address) [][]byte {
	return [][]byte{[]byte(escrowTag), offeringHolder, requestingHolder}
}

// EscrowAddress returns the address of the escrow record for the pair of
// holder accounts, together with the bump required to act as its
// authority.
func EscrowAddress(offeringHolder, requestingHolder seahorse.Address) (seahorse.Address, uint8, error) {
	if err := validHolders(offeringHolder, requestingHolder); err != nil {
		return nil, 0, err
	}
	return seahorse.FindProgramAddress(program, escrowSeeds(offeringHolder, requestingHolder)...)
}

// CustodyAddress returns the address of the custody account of given side.
// Both holders take part in the derivation, so a custody account is unique
// to the pair.
func CustodyAddress(side Side, offeringHolder, requestingHolder seahorse.Address) (seahorse.Address, error) {
	if err := side.Validate(); err != nil {
		return nil, err
	}
	if err := validHolders(offeringHolder, requestingHolder); err != nil {
		return nil, err
	}
	tag := offeringCustodyTag
	if side == SideRequesting {
		tag = requestingCustodyTag
	}
	addr, _, err := seahorse.FindProgramAddress(program, []byte(tag), offeringHolder, requestingHolder)
	return addr, err
}

// EscrowAuthority returns the proof that allows moving funds out of the
// custody accounts of the escrow. The proof is only valid with the bump
// returned by EscrowAddress.
func EscrowAuthority(bump uint8, offeringHolder, requestingHolder seahorse.Address) token.ProgramAuthority {
	return token.ProgramAuthority{
		Program: program,
		Bump:    bump,
		Seeds:   escrowSeeds(offeringHolder, requestingHolder),
	}
}

func validHolders(offeringHolder, requestingHolder seahorse.Address) error {
	if err := offeringHolder.Validate(); err != nil {
		return errors.Wrap(err, "offering holder")
	}
	if err := requestingHolder.Validate(); err != nil {
		return errors.Wrap(err, "requesting holder")
	}
	return nil
}

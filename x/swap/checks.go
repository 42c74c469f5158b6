package swap

import (
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/coin"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/x"
	"github.com/mtnPay/seahorse-swap/x/token"
)

// CheckParty ensures the party of given side signed the transaction.
func CheckParty(ctx seahorse.Context, auth x.Authenticator, e *Escrow, side Side) error {
	if !auth.HasAddress(ctx, e.Party(side)) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s party signature missing", side)
	}
	return nil
}

// CheckReference ensures a supplied account is the expected one.
func CheckReference(name string, got, want seahorse.Address) error {
	if !got.Equals(want) {
		return errors.Wrapf(ErrReferenceMismatch, "%s: got %s, want %s", name, got, want)
	}
	return nil
}

// CheckOwner ensures the account is owned by the expected address.
func CheckOwner(name string, acc *token.Account, want seahorse.Address) error {
	if !acc.Owner.Equals(want) {
		return errors.Wrapf(ErrOwnership, "%s is owned by %s, not %s", name, acc.Owner, want)
	}
	return nil
}

// CheckSupply ensures the account holds exactly the expected amount.
func CheckSupply(name string, acc *token.Account, want coin.Coin) error {
	if !acc.Balance().Equals(want) {
		return errors.Wrapf(ErrSupply, "%s holds %s, not %s", name, acc.Balance(), want)
	}
	return nil
}

// CheckDerivation ensures the holder accounts are the ones the escrow was
// created for. Both the escrow address and the custody addresses recorded
// on the escrow must derive from them.
func CheckDerivation(escrowAddr seahorse.Address, e *Escrow, offeringHolder, requestingHolder seahorse.Address) error {
	addr, _, err := EscrowAddress(offeringHolder, requestingHolder)
	if err != nil {
		return errors.Wrap(err, "escrow address")
	}
	if err := CheckReference("escrow", addr, escrowAddr); err != nil {
		return errors.Wrap(err, "holders do not derive the escrow")
	}
	for _, side := range []Side{SideOffering, SideRequesting} {
		custody, err := CustodyAddress(side, offeringHolder, requestingHolder)
		if err != nil {
			return errors.Wrapf(err, "%s custody address", side)
		}
		if err := CheckReference(side.String()+" custody", custody, e.Custody(side)); err != nil {
			return errors.Wrap(err, "holders do not derive the custody")
		}
	}
	return nil
}

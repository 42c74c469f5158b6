package token

import (
	"bytes"

	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/coin"
	"github.com/mtnPay/seahorse-swap/errors"
)

// Controller is the transfer primitive. Each method either applies all of
// its changes or returns an error.
type Controller interface {
	// CreateAccount allocates an empty account under given address.
	// ErrDuplicate is returned if the address is already in use.
	CreateAccount(db seahorse.KVStore, addr, owner seahorse.Address, ticker string) (*Account, error)

	// Account returns the account stored under given address.
	Account(db seahorse.ReadOnlyKVStore, addr seahorse.Address) (*Account, error)

	// Transfer moves amount from src to dst. The authority must prove the
	// right to act as the owner of src.
	Transfer(ctx seahorse.Context, db seahorse.KVStore, src, dst seahorse.Address, auth Authority, amount coin.Coin) error

	// Mint adds amount to the account under dst.
	Mint(db seahorse.KVStore, dst seahorse.Address, amount coin.Coin) error
}

// BaseController is the default Controller implementation.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a controller operating on given bucket.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

func (c BaseController) CreateAccount(db seahorse.KVStore, addr, owner seahorse.Address, ticker string) (*Account, error) {
	if err := addr.Validate(); err != nil {
		return nil, errors.Wrap(err, "address")
	}
	acc := NewAccount(owner, ticker)
	if err := c.bucket.Create(db, addr, acc); err != nil {
		return nil, errors.Wrapf(err, "account %s", addr)
	}
	return acc, nil
}

func (c BaseController) Account(db seahorse.ReadOnlyKVStore, addr seahorse.Address) (*Account, error) {
	var acc Account
	if err := c.bucket.One(db, addr, &acc); err != nil {
		return nil, errors.Wrapf(err, "account %s", addr)
	}
	return &acc, nil
}

func (c BaseController) Transfer(ctx seahorse.Context, db seahorse.KVStore, src, dst seahorse.Address, auth Authority, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non positive transfer: %s", amount)
	}
	if bytes.Equal(src, dst) {
		return errors.Wrap(errors.ErrInput, "source and destination are the same")
	}

	sender, err := c.Account(db, src)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	if err := auth.Authorize(ctx, sender.Owner); err != nil {
		return err
	}
	recipient, err := c.Account(db, dst)
	if err != nil {
		return errors.Wrap(err, "destination")
	}
	if sender.Ticker() != amount.Ticker {
		return errors.Wrapf(errors.ErrCurrency, "source holds %q, not %q", sender.Ticker(), amount.Ticker)
	}
	if recipient.Ticker() != amount.Ticker {
		return errors.Wrapf(errors.ErrCurrency, "destination holds %q, not %q", recipient.Ticker(), amount.Ticker)
	}
	if !sender.Amount.IsGTE(amount) {
		return errors.Wrapf(errors.ErrAmount, "insufficient funds: %s < %s", sender.Amount, amount)
	}

	left, err := sender.Amount.Subtract(amount)
	if err != nil {
		return err
	}
	total, err := recipient.Amount.Add(amount)
	if err != nil {
		return err
	}
	sender.Amount = &left
	recipient.Amount = &total

	if err := c.bucket.Put(db, src, sender); err != nil {
		return errors.Wrap(err, "save source")
	}
	if err := c.bucket.Put(db, dst, recipient); err != nil {
		return errors.Wrap(err, "save destination")
	}
	return nil
}

func (c BaseController) Mint(db seahorse.KVStore, dst seahorse.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non positive mint: %s", amount)
	}
	acc, err := c.Account(db, dst)
	if err != nil {
		return err
	}
	if acc.Ticker() != amount.Ticker {
		return errors.Wrapf(errors.ErrCurrency, "account holds %q, not %q", acc.Ticker(), amount.Ticker)
	}
	total, err := acc.Amount.Add(amount)
	if err != nil {
		return err
	}
	acc.Amount = &total
	return c.bucket.Put(db, dst, acc)
}

// CreateAssociatedAccount allocates the associated account of the owner for
// given asset class and returns its address.
func CreateAssociatedAccount(c Controller, db seahorse.KVStore, owner seahorse.Address, ticker string) (seahorse.Address, error) {
	addr, err := AssociatedAddress(owner, ticker)
	if err != nil {
		return nil, err
	}
	if _, err := c.CreateAccount(db, addr, owner, ticker); err != nil {
		return nil, err
	}
	return addr, nil
}

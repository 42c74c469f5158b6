package client

import (
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/app"
	"github.com/mtnPay/seahorse-swap/crypto"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/x/sigs"
	"github.com/mtnPay/seahorse-swap/x/swap"
	"github.com/mtnPay/seahorse-swap/x/token"
)

// Store returns a read only view of the application state, as committed
// by the node.
func (c *Client) Store() seahorse.ReadOnlyKVStore {
	return app.NewABCIStore(c)
}

// Account returns the token account stored under given address.
func (c *Client) Account(addr seahorse.Address) (*token.Account, error) {
	var acc token.Account
	if err := token.NewBucket().One(c.Store(), addr, &acc); err != nil {
		return nil, errors.Wrapf(err, "account %s", addr)
	}
	return &acc, nil
}

// Escrow returns the escrow record stored under given address.
func (c *Client) Escrow(addr seahorse.Address) (*swap.Escrow, error) {
	var e swap.Escrow
	if err := swap.NewEscrowBucket().One(c.Store(), addr, &e); err != nil {
		return nil, errors.Wrapf(err, "escrow %s", addr)
	}
	return &e, nil
}

// EscrowStatus returns the lifecycle stage of the escrow stored under given
// address.
func (c *Client) EscrowStatus(addr seahorse.Address) (swap.State, error) {
	state, err := swap.Status(c.Store(), token.NewController(token.NewBucket()), addr)
	if err != nil {
		return 0, errors.Wrapf(err, "escrow %s", addr)
	}
	return state, nil
}

// NextNonce returns the sequence the next signature of given key must use.
func (c *Client) NextNonce(pubkey *crypto.PublicKey) (int64, error) {
	return sigs.NextNonce(c.Store(), pubkey)
}

package token

import (
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/coin"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/gconf"
)

const optKey = "token"

// GenesisAccount is used to parse the json from genesis file. Each entry
// creates the associated account of the owner and credits it.
type GenesisAccount struct {
	Owner  seahorse.Address `json:"owner"`
	Amount coin.Coin        `json:"amount"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ seahorse.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts seahorse.Options, db seahorse.KVStore) error {
	if err := gconf.InitConfig(db, opts, configPkg, &Configuration{}); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "init config")
	}

	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	control := NewController(NewBucket())
	for i, acct := range accts {
		addr, err := CreateAssociatedAccount(control, db, acct.Owner, acct.Amount.Ticker)
		if err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		if acct.Amount.IsZero() {
			continue
		}
		if err := control.Mint(db, addr, acct.Amount); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}

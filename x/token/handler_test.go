package token

import (
	"context"
	"encoding/json"
	"testing"

	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/coin"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/gconf"
	"github.com/mtnPay/seahorse-swap/seahorsetest"
	"github.com/mtnPay/seahorse-swap/seahorsetest/assert"
	"github.com/mtnPay/seahorse-swap/store"
)

func TestHandlers(t *testing.T) {
	db := store.MemStore()
	control := NewController(NewBucket())
	minter := seahorsetest.NewAddress()
	alice := seahorsetest.NewAddress()
	bob := seahorsetest.NewAddress()
	meta := &seahorse.Metadata{Schema: 1}

	assert.Nil(t, gconf.Save(db, configPkg, &Configuration{
		Metadata: meta,
		Owner:    minter,
		Minter:   minter,
	}))

	ctx := context.Background()
	deliver := func(h seahorse.Handler, msg seahorse.Msg) (*seahorse.DeliverResult, error) {
		if _, err := h.Check(ctx, db.CacheWrap(), &seahorsetest.Tx{Msg: msg}); err != nil {
			return nil, err
		}
		return h.Deliver(ctx, db, &seahorsetest.Tx{Msg: msg})
	}

	create := NewCreateAccountHandler(control)
	res, err := deliver(create, &CreateAccountMsg{Metadata: meta, Owner: alice, Ticker: "GOLD"})
	assert.Nil(t, err)
	aliceAcc := seahorse.Address(res.Data)
	res, err = deliver(create, &CreateAccountMsg{Metadata: meta, Owner: bob, Ticker: "GOLD"})
	assert.Nil(t, err)
	bobAcc := seahorse.Address(res.Data)

	_, err = deliver(create, &CreateAccountMsg{Metadata: meta, Owner: bob, Ticker: "GOLD"})
	assert.IsErr(t, errors.ErrDuplicate, err)
	_, err = deliver(create, &CreateAccountMsg{Metadata: meta, Owner: bob, Ticker: "gold"})
	assert.IsErr(t, errors.ErrCurrency, err)

	mintMsg := &MintMsg{Metadata: meta, Destination: aliceAcc, Amount: coin.NewCoinp(5, 0, "GOLD")}
	_, err = deliver(NewMintHandler(&seahorsetest.Auth{Signer: alice}, control), mintMsg)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = deliver(NewMintHandler(&seahorsetest.Auth{Signer: minter}, control), mintMsg)
	assert.Nil(t, err)

	send := &TransferMsg{Metadata: meta, Source: aliceAcc, Destination: bobAcc, Amount: coin.NewCoinp(2, 0, "GOLD")}
	_, err = deliver(NewTransferHandler(&seahorsetest.Auth{Signer: bob}, control), send)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = deliver(NewTransferHandler(&seahorsetest.Auth{Signer: alice}, control), send)
	assert.Nil(t, err)

	acc, err := control.Account(db, bobAcc)
	assert.Nil(t, err)
	assert.Equal(t, coin.NewCoin(2, 0, "GOLD"), acc.Balance())
	acc, err = control.Account(db, aliceAcc)
	assert.Nil(t, err)
	assert.Equal(t, coin.NewCoin(3, 0, "GOLD"), acc.Balance())
}

func TestGenesis(t *testing.T) {
	minter := seahorsetest.NewAddress()
	alice := seahorsetest.NewAddress()

	genesis := map[string]interface{}{
		"conf": map[string]interface{}{
			"token": map[string]interface{}{
				"metadata": map[string]int{"schema": 1},
				"owner":    minter,
				"minter":   minter,
			},
		},
		"token": []interface{}{
			map[string]interface{}{"owner": alice, "amount": "1 NFTX"},
			map[string]interface{}{"owner": alice, "amount": "0 GOLD"},
		},
	}
	raw, err := json.Marshal(genesis)
	assert.Nil(t, err)
	var opts seahorse.Options
	assert.Nil(t, json.Unmarshal(raw, &opts))

	db := store.MemStore()
	assert.Nil(t, Initializer{}.FromGenesis(opts, db))

	control := NewController(NewBucket())
	addr, err := AssociatedAddress(alice, "NFTX")
	assert.Nil(t, err)
	acc, err := control.Account(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, coin.NewCoin(1, 0, "NFTX"), acc.Balance())

	addr, err = AssociatedAddress(alice, "GOLD")
	assert.Nil(t, err)
	acc, err = control.Account(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, true, acc.Balance().IsZero())

	conf, err := loadConf(db)
	assert.Nil(t, err)
	assert.Equal(t, minter, conf.Minter)
}

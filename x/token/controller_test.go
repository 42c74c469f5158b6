package token

import (
	"context"
	"testing"

	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/coin"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/seahorsetest"
	"github.com/mtnPay/seahorse-swap/seahorsetest/assert"
	"github.com/mtnPay/seahorse-swap/store"
)

func TestTransfer(t *testing.T) {
	alice := seahorsetest.NewAddress()
	bob := seahorsetest.NewAddress()
	vault, bump := seahorse.MustFindProgramAddress("test", []byte("vault"))

	cases := map[string]struct {
		Src     func(seahorse.Address) seahorse.Address
		Auth    Authority
		Amount  coin.Coin
		Dst     string
		WantErr *errors.Error
	}{
		"signed transfer": {
			Auth:   Signed(&seahorsetest.Auth{Signer: alice}),
			Amount: coin.NewCoin(3, 0, "GOLD"),
		},
		"missing signature": {
			Auth:    Signed(&seahorsetest.Auth{Signer: bob}),
			Amount:  coin.NewCoin(3, 0, "GOLD"),
			WantErr: errors.ErrUnauthorized,
		},
		"insufficient funds": {
			Auth:    Signed(&seahorsetest.Auth{Signer: alice}),
			Amount:  coin.NewCoin(11, 0, "GOLD"),
			WantErr: errors.ErrAmount,
		},
		"wrong asset class": {
			Auth:    Signed(&seahorsetest.Auth{Signer: alice}),
			Amount:  coin.NewCoin(1, 0, "SILVER"),
			WantErr: errors.ErrCurrency,
		},
		"destination holds another asset class": {
			Auth:    Signed(&seahorsetest.Auth{Signer: alice}),
			Amount:  coin.NewCoin(1, 0, "GOLD"),
			Dst:     "SILVER",
			WantErr: errors.ErrCurrency,
		},
		"zero amount": {
			Auth:    Signed(&seahorsetest.Auth{Signer: alice}),
			Amount:  coin.NewCoin(0, 0, "GOLD"),
			WantErr: errors.ErrAmount,
		},
		"program authority": {
			Src:    func(seahorse.Address) seahorse.Address { return vault },
			Auth:   ProgramAuthority{Program: "test", Bump: bump, Seeds: [][]byte{[]byte("vault")}},
			Amount: coin.NewCoin(10, 0, "GOLD"),
		},
		"program authority with wrong seeds": {
			Src:     func(seahorse.Address) seahorse.Address { return vault },
			Auth:    ProgramAuthority{Program: "test", Bump: bump, Seeds: [][]byte{[]byte("other")}},
			Amount:  coin.NewCoin(1, 0, "GOLD"),
			WantErr: errors.ErrUnauthorized,
		},
		"program authority with wrong bump": {
			Src:     func(seahorse.Address) seahorse.Address { return vault },
			Auth:    ProgramAuthority{Program: "test", Bump: bump - 1, Seeds: [][]byte{[]byte("vault")}},
			Amount:  coin.NewCoin(1, 0, "GOLD"),
			WantErr: errors.ErrUnauthorized,
		},
		"a signature cannot act for a program address": {
			Src:     func(seahorse.Address) seahorse.Address { return vault },
			Auth:    Signed(&seahorsetest.Auth{Signer: alice}),
			Amount:  coin.NewCoin(1, 0, "GOLD"),
			WantErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			control := NewController(NewBucket())

			owner := alice
			if tc.Src != nil {
				owner = tc.Src(alice)
			}
			src, err := CreateAssociatedAccount(control, db, owner, "GOLD")
			assert.Nil(t, err)
			assert.Nil(t, control.Mint(db, src, coin.NewCoin(10, 0, "GOLD")))

			dstTicker := "GOLD"
			if tc.Dst != "" {
				dstTicker = tc.Dst
			}
			dst, err := CreateAssociatedAccount(control, db, bob, dstTicker)
			assert.Nil(t, err)

			err = control.Transfer(context.Background(), db, src, dst, tc.Auth, tc.Amount)
			assert.IsErr(t, tc.WantErr, err)

			sacc, err := control.Account(db, src)
			assert.Nil(t, err)
			dacc, err := control.Account(db, dst)
			assert.Nil(t, err)

			if tc.WantErr != nil {
				assert.Equal(t, coin.NewCoin(10, 0, "GOLD"), sacc.Balance())
				assert.Equal(t, true, dacc.Balance().IsZero())
				return
			}
			left, _ := coin.NewCoin(10, 0, "GOLD").Subtract(tc.Amount)
			assert.Equal(t, left, sacc.Balance())
			assert.Equal(t, tc.Amount, dacc.Balance())
		})
	}
}

func TestCreateAccount(t *testing.T) {
	db := store.MemStore()
	control := NewController(NewBucket())
	owner := seahorsetest.NewAddress()

	addr, err := CreateAssociatedAccount(control, db, owner, "GOLD")
	assert.Nil(t, err)

	want, err := AssociatedAddress(owner, "GOLD")
	assert.Nil(t, err)
	assert.Equal(t, want, addr)

	_, err = CreateAssociatedAccount(control, db, owner, "GOLD")
	assert.IsErr(t, errors.ErrDuplicate, err)

	other, err := CreateAssociatedAccount(control, db, owner, "SILVER")
	assert.Nil(t, err)
	if addr.Equals(other) {
		t.Fatal("each asset class must use a different account")
	}

	acc, err := control.Account(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, owner, acc.Owner)
	assert.Equal(t, "GOLD", acc.Ticker())

	_, err = control.Account(db, seahorsetest.RandomAddr(t))
	assert.IsErr(t, errors.ErrNotFound, err)

	_, err = AssociatedAddress(owner, "bad")
	assert.IsErr(t, errors.ErrCurrency, err)
}

func TestMint(t *testing.T) {
	db := store.MemStore()
	control := NewController(NewBucket())
	addr, err := CreateAssociatedAccount(control, db, seahorsetest.NewAddress(), "GOLD")
	assert.Nil(t, err)

	assert.Nil(t, control.Mint(db, addr, coin.NewCoin(1, 0, "GOLD")))
	assert.Nil(t, control.Mint(db, addr, coin.NewCoin(0, 5, "GOLD")))
	assert.IsErr(t, errors.ErrCurrency, control.Mint(db, addr, coin.NewCoin(1, 0, "SILVER")))
	assert.IsErr(t, errors.ErrAmount, control.Mint(db, addr, coin.NewCoin(-1, 0, "GOLD")))

	acc, err := control.Account(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, coin.NewCoin(1, 5, "GOLD"), acc.Balance())
}

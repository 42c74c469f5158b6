package swap

import (
	"context"
	"testing"

	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/coin"
	"github.com/mtnPay/seahorse-swap/gconf"
	"github.com/mtnPay/seahorse-swap/seahorsetest"
	"github.com/mtnPay/seahorse-swap/store"
	"github.com/mtnPay/seahorse-swap/x/token"
)

const (
	offeredTicker   = "NFTX"
	requestedTicker = "NFTY"
)

// fixture holds two parties, each with a holder account of the asset it
// trades and an empty destination account of the asset it receives.
type fixture struct {
	db     seahorse.CacheableKVStore
	tokens token.BaseController

	alice seahorse.Address
	bob   seahorse.Address

	aliceHolder seahorse.Address // alice's NFTX
	bobHolder   seahorse.Address // bob's NFTY
	aliceDst    seahorse.Address // alice's NFTY
	bobDst      seahorse.Address // bob's NFTX

	escrow seahorse.Address
	bump   uint8
}

func newFixture(t testing.TB, policy Policy) *fixture {
	t.Helper()

	f := &fixture{
		db:     store.MemStore(),
		tokens: token.NewController(token.NewBucket()),
		alice:  seahorsetest.NewAddress(),
		bob:    seahorsetest.NewAddress(),
	}
	conf := &Configuration{
		Metadata: &seahorse.Metadata{Schema: 1},
		Owner:    seahorsetest.NewAddress(),
		Policy:   policy,
		Quantity: 1,
	}
	if err := gconf.Save(f.db, configPkg, conf); err != nil {
		t.Fatalf("cannot save configuration: %s", err)
	}

	f.aliceHolder = f.newAccount(t, f.alice, offeredTicker, 1)
	f.bobHolder = f.newAccount(t, f.bob, requestedTicker, 1)
	f.aliceDst = f.newAccount(t, f.alice, requestedTicker, 0)
	f.bobDst = f.newAccount(t, f.bob, offeredTicker, 0)

	addr, bump, err := EscrowAddress(f.aliceHolder, f.bobHolder)
	if err != nil {
		t.Fatalf("cannot derive escrow address: %s", err)
	}
	f.escrow, f.bump = addr, bump
	return f
}

func (f *fixture) newAccount(t testing.TB, owner seahorse.Address, ticker string, units int64) seahorse.Address {
	t.Helper()
	addr, err := token.CreateAssociatedAccount(f.tokens, f.db, owner, ticker)
	if err != nil {
		t.Fatalf("cannot create %s account: %s", ticker, err)
	}
	if units > 0 {
		if err := f.tokens.Mint(f.db, addr, coin.NewCoin(units, 0, ticker)); err != nil {
			t.Fatalf("cannot mint %s: %s", ticker, err)
		}
	}
	return addr
}

// deliver runs the handler the way the application does, check first.
func (f *fixture) deliver(h seahorse.Handler, msg seahorse.Msg) (*seahorse.DeliverResult, error) {
	ctx := context.Background()
	tx := &seahorsetest.Tx{Msg: msg}
	if _, err := h.Check(ctx, f.db.CacheWrap(), tx); err != nil {
		return nil, err
	}
	return h.Deliver(ctx, f.db, tx)
}

func (f *fixture) balance(t testing.TB, addr seahorse.Address) int64 {
	t.Helper()
	acc, err := f.tokens.Account(f.db, addr)
	if err != nil {
		t.Fatalf("cannot load account: %s", err)
	}
	return acc.Balance().Whole
}

func signedBy(signers ...seahorse.Address) *seahorsetest.Auth {
	return &seahorsetest.Auth{Signers: signers}
}

func (f *fixture) initMsg() *InitMsg {
	return &InitMsg{
		Metadata:             &seahorse.Metadata{Schema: 1},
		OfferingParty:        f.alice,
		RequestingParty:      f.bob,
		OfferingAssetClass:   offeredTicker,
		RequestingAssetClass: requestedTicker,
		OfferingHolder:       f.aliceHolder,
		RequestingHolder:     f.bobHolder,
	}
}

func (f *fixture) init(t testing.TB) {
	t.Helper()
	if _, err := f.deliver(NewInitHandler(signedBy(f.alice), f.tokens), f.initMsg()); err != nil {
		t.Fatalf("cannot initialize escrow: %s", err)
	}
}

func (f *fixture) custody(side Side) seahorse.Address {
	addr, err := CustodyAddress(side, f.aliceHolder, f.bobHolder)
	if err != nil {
		panic(err)
	}
	return addr
}

func (f *fixture) fundMsg(side Side) *FundMsg {
	holder := f.aliceHolder
	if side == SideRequesting {
		holder = f.bobHolder
	}
	return &FundMsg{
		Metadata: &seahorse.Metadata{Schema: 1},
		Side:     side,
		Escrow:   f.escrow,
		Holder:   holder,
		Custody:  f.custody(side),
	}
}

func (f *fixture) fund(t testing.TB, side Side) {
	t.Helper()
	party := f.alice
	if side == SideRequesting {
		party = f.bob
	}
	if _, err := f.deliver(NewFundHandler(signedBy(party), f.tokens), f.fundMsg(side)); err != nil {
		t.Fatalf("cannot fund %s side: %s", side, err)
	}
}

func (f *fixture) defundMsg(side Side) *DefundMsg {
	return &DefundMsg{
		Metadata:         &seahorse.Metadata{Schema: 1},
		Side:             side,
		Bump:             uint32(f.bump),
		Escrow:           f.escrow,
		OfferingHolder:   f.aliceHolder,
		RequestingHolder: f.bobHolder,
		Custody:          f.custody(side),
	}
}

func (f *fixture) crankMsg() *CrankMsg {
	return &CrankMsg{
		Metadata:              &seahorse.Metadata{Schema: 1},
		Bump:                  uint32(f.bump),
		Escrow:                f.escrow,
		OfferingHolder:        f.aliceHolder,
		RequestingHolder:      f.bobHolder,
		OfferingCustody:       f.custody(SideOffering),
		RequestingCustody:     f.custody(SideRequesting),
		OfferingDestination:   f.bobDst,
		RequestingDestination: f.aliceDst,
	}
}

package swap

import (
	"testing"

	"github.com/mtnPay/seahorse-swap/seahorsetest/assert"
)

func TestSwapScenario(t *testing.T) {
	f := newFixture(t, PolicyExactUnit)

	assertStatus := func(want State) {
		t.Helper()
		got, err := Status(f.db, f.tokens, f.escrow)
		assert.Nil(t, err)
		assert.Equal(t, want, got)
	}

	f.init(t)
	assertStatus(StateCreated)

	f.fund(t, SideOffering)
	assertStatus(StateOfferingFunded)

	// Offering party changes its mind and then funds again.
	_, err := f.deliver(NewDefundHandler(signedBy(f.alice), f.tokens), f.defundMsg(SideOffering))
	assert.Nil(t, err)
	assertStatus(StateCreated)
	assert.Equal(t, int64(1), f.balance(t, f.aliceHolder))

	f.fund(t, SideRequesting)
	assertStatus(StateRequestingFunded)
	f.fund(t, SideOffering)
	assertStatus(StateBothFunded)

	_, err = f.deliver(NewCrankHandler(f.tokens), f.crankMsg())
	assert.Nil(t, err)
	assertStatus(StateSettled)

	assert.Equal(t, int64(0), f.balance(t, f.aliceHolder))
	assert.Equal(t, int64(0), f.balance(t, f.bobHolder))
	assert.Equal(t, int64(1), f.balance(t, f.aliceDst))
	assert.Equal(t, int64(1), f.balance(t, f.bobDst))
	assert.Equal(t, int64(0), f.balance(t, f.custody(SideOffering)))
	assert.Equal(t, int64(0), f.balance(t, f.custody(SideRequesting)))

	// The record keeps describing the trade after settlement.
	var e Escrow
	assert.Nil(t, NewEscrowBucket().One(f.db, f.escrow, &e))
	assert.Equal(t, f.alice, e.OfferingParty)
	assert.Equal(t, f.bob, e.RequestingParty)
}

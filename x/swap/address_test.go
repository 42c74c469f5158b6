package swap

import (
	"testing"

	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/seahorsetest"
	"github.com/mtnPay/seahorse-swap/seahorsetest/assert"
	"github.com/stretchr/testify/require"
)

func TestEscrowAddress(t *testing.T) {
	a := seahorsetest.NewAddress()
	b := seahorsetest.NewAddress()

	addr, bump, err := EscrowAddress(a, b)
	require.NoError(t, err)
	again, againBump, err := EscrowAddress(a, b)
	require.NoError(t, err)
	assert.Equal(t, addr, again)
	assert.Equal(t, bump, againBump)

	// The bump reproduces the address, which is what the authority relies on.
	derived, err := seahorse.CreateProgramAddress(program, bump, escrowSeeds(a, b)...)
	require.NoError(t, err)
	assert.Equal(t, addr, derived)

	authority := EscrowAuthority(bump, a, b)
	authAddr, err := authority.Address()
	require.NoError(t, err)
	assert.Equal(t, addr, authAddr)

	reversed, _, err := EscrowAddress(b, a)
	require.NoError(t, err)
	require.False(t, addr.Equals(reversed), "holder order must matter")

	_, _, err = EscrowAddress(a, nil)
	assert.IsErr(t, errors.ErrEmpty, err)
}

func TestCustodyAddress(t *testing.T) {
	a := seahorsetest.NewAddress()
	b := seahorsetest.NewAddress()
	c := seahorsetest.NewAddress()

	escrow, _, err := EscrowAddress(a, b)
	require.NoError(t, err)
	offering, err := CustodyAddress(SideOffering, a, b)
	require.NoError(t, err)
	requesting, err := CustodyAddress(SideRequesting, a, b)
	require.NoError(t, err)

	require.False(t, offering.Equals(requesting))
	require.False(t, offering.Equals(escrow))
	require.False(t, requesting.Equals(escrow))

	// Another pair sharing the offering holder gets its own custody.
	other, err := CustodyAddress(SideOffering, a, c)
	require.NoError(t, err)
	require.False(t, offering.Equals(other))

	_, err = CustodyAddress(SideInvalid, a, b)
	assert.IsErr(t, errors.ErrInput, err)
}

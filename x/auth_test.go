package x_test

import (
	"context"
	"testing"

	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/seahorsetest"
	"github.com/mtnPay/seahorse-swap/seahorsetest/assert"
	"github.com/mtnPay/seahorse-swap/x"
)

func TestAuth(t *testing.T) {
	a := seahorsetest.NewAddress()
	b := seahorsetest.NewAddress()
	c := seahorsetest.NewAddress()

	ctx := context.Background()
	ctxAuth := &seahorsetest.CtxAuth{Key: "auth"}
	ctx = ctxAuth.SetSigners(ctx, a, b)

	cases := map[string]struct {
		auth     x.Authenticator
		wantMain seahorse.Address
		hasA     bool
		hasC     bool
		all      []seahorse.Address
		hasAll   bool
	}{
		"empty authenticator": {
			auth:   &seahorsetest.Auth{},
			hasAll: true,
		},
		"single signer": {
			auth:     &seahorsetest.Auth{Signer: c},
			wantMain: c,
			hasC:     true,
			all:      []seahorse.Address{c},
			hasAll:   true,
		},
		"context signers": {
			auth:     ctxAuth,
			wantMain: a,
			hasA:     true,
			all:      []seahorse.Address{a, b},
			hasAll:   true,
		},
		"chained authenticators": {
			auth:     x.ChainAuth(ctxAuth, &seahorsetest.Auth{Signers: []seahorse.Address{a, c}}),
			wantMain: a,
			hasA:     true,
			hasC:     true,
			all:      []seahorse.Address{a, b, c},
			hasAll:   true,
		},
		"missing one of required": {
			auth:     ctxAuth,
			wantMain: a,
			hasA:     true,
			all:      []seahorse.Address{a, c},
			hasAll:   false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.wantMain, x.MainSigner(ctx, tc.auth))
			assert.Equal(t, tc.hasA, tc.auth.HasAddress(ctx, a))
			assert.Equal(t, tc.hasC, tc.auth.HasAddress(ctx, c))
			assert.Equal(t, tc.hasAll, x.HasAllAddresses(ctx, tc.auth, tc.all))
		})
	}
}

func TestChainAuthRemovesDuplicates(t *testing.T) {
	a := seahorsetest.NewAddress()
	auth := x.ChainAuth(&seahorsetest.Auth{Signer: a}, &seahorsetest.Auth{Signer: a})
	assert.Equal(t, []seahorse.Address{a}, auth.GetSigners(context.Background()))
}

package seahorsetest

import (
	"context"
	"fmt"

	seahorse "github.com/mtnPay/seahorse-swap"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced addresses.
// You can use either Signer or Signers (or both) attributes to reference
// addresses. Each time all signers (regardless which attribute) are
// considered.
type Auth struct {
	// Signer represents an authentication of a single signer.
	Signer seahorse.Address

	// Signers represents an authentication of multiple signers.
	Signers []seahorse.Address
}

func (a *Auth) GetSigners(seahorse.Context) []seahorse.Address {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx seahorse.Context, addr seahorse.Address) bool {
	for _, s := range a.GetSigners(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve signers.
type CtxAuth struct {
	// Key used to set and retrieve signers from the context. For
	// convinience only string type keys are allowed.
	Key string
}

func (a *CtxAuth) SetSigners(ctx seahorse.Context, signers ...seahorse.Address) seahorse.Context {
	return context.WithValue(ctx, a.Key, signers)
}

func (a *CtxAuth) GetSigners(ctx seahorse.Context) []seahorse.Address {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	signers, ok := val.([]seahorse.Address)
	if !ok {
		panic(fmt.Sprintf("instead of []seahorse.Address got %T", val))
	}
	return signers
}

func (a *CtxAuth) HasAddress(ctx seahorse.Context, addr seahorse.Address) bool {
	for _, s := range a.GetSigners(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}

package token

import (
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/x"
)

// Authority proves the right to move funds out of an account controlled by
// the owner address.
type Authority interface {
	Authorize(ctx seahorse.Context, owner seahorse.Address) error
}

// SignerAuthority authorizes owners that signed the transaction.
type SignerAuthority struct {
	auth x.Authenticator
}

var _ Authority = SignerAuthority{}

// Signed returns an authority backed by transaction signatures.
func Signed(auth x.Authenticator) SignerAuthority {
	return SignerAuthority{auth: auth}
}

func (s SignerAuthority) Authorize(ctx seahorse.Context, owner seahorse.Address) error {
	if !s.auth.HasAddress(ctx, owner) {
		return errors.Wrapf(errors.ErrUnauthorized, "owner %s signature missing", owner)
	}
	return nil
}

// ProgramAuthority authorizes an owner that is a program derived address.
// There is no key behind such an address, so the proof is the ability to
// derive it again.
type ProgramAuthority struct {
	Program string
	Bump    uint8
	Seeds   [][]byte
}

var _ Authority = ProgramAuthority{}

// Address recreates the derived address this authority stands for.
func (p ProgramAuthority) Address() (seahorse.Address, error) {
	return seahorse.CreateProgramAddress(p.Program, p.Bump, p.Seeds...)
}

func (p ProgramAuthority) Authorize(ctx seahorse.Context, owner seahorse.Address) error {
	addr, err := p.Address()
	if err != nil {
		return errors.Wrapf(errors.ErrUnauthorized, "invalid authority proof: %s", err)
	}
	if !addr.Equals(owner) {
		return errors.Wrapf(errors.ErrUnauthorized, "authority proof %s does not match owner %s", addr, owner)
	}
	return nil
}

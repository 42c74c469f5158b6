package swap

import "github.com/mtnPay/seahorse-swap/errors"

var (
	// ErrReferenceMismatch is returned when an account passed with a message
	// is not the one recorded on, or derived for, the escrow.
	ErrReferenceMismatch = errors.Register(400, "reference mismatch")

	// ErrOwnership is returned when an account is not owned by the party
	// expected for its role.
	ErrOwnership = errors.Register(401, "ownership")

	// ErrSupply is returned when a balance is not exactly the required
	// amount.
	ErrSupply = errors.Register(402, "supply invariant")
)

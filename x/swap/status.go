package swap

import (
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/x/token"
)

// State is the lifecycle stage of an escrow.
type State int

const (
	StateCreated State = iota
	StateOfferingFunded
	StateRequestingFunded
	StateBothFunded
	StateSettled
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateOfferingFunded:
		return "offering_funded"
	case StateRequestingFunded:
		return "requesting_funded"
	case StateBothFunded:
		return "both_funded"
	case StateSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Status computes the lifecycle stage of the escrow stored under addr. The
// funding flags are read from the custody balances, so the escrow record
// itself never changes.
func Status(db seahorse.ReadOnlyKVStore, tokens token.Controller, addr seahorse.Address) (State, error) {
	s := newState(tokens)
	var e Escrow
	if err := s.escrows.One(db, addr, &e); err != nil {
		return 0, errors.Wrap(err, "cannot load escrow")
	}
	switch err := s.settlements.Has(db, addr); {
	case err == nil:
		return StateSettled, nil
	case !errors.ErrNotFound.Is(err):
		return 0, err
	}

	var funded [2]bool
	for i, side := range []Side{SideOffering, SideRequesting} {
		custody, err := s.account(db, side.String()+" custody", e.Custody(side))
		if err != nil {
			return 0, err
		}
		funded[i] = custody.Balance().IsPositive()
	}
	switch {
	case funded[0] && funded[1]:
		return StateBothFunded, nil
	case funded[0]:
		return StateOfferingFunded, nil
	case funded[1]:
		return StateRequestingFunded, nil
	default:
		return StateCreated, nil
	}
}

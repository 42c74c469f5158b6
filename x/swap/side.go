package swap

import (
	"encoding/json"
	"strings"

	"github.com/mtnPay/seahorse-swap/errors"
)

// Side selects one of the two legs of an escrow.
type Side int32

const (
	SideInvalid    Side = 0
	SideOffering   Side = 1
	SideRequesting Side = 2
)

func (s Side) String() string {
	switch s {
	case SideOffering:
		return "offering"
	case SideRequesting:
		return "requesting"
	default:
		return "invalid"
	}
}

func (s Side) Validate() error {
	switch s {
	case SideOffering, SideRequesting:
		return nil
	default:
		return errors.Wrapf(errors.ErrInput, "unknown side %d", s)
	}
}

// Counterparty returns the other side.
func (s Side) Counterparty() Side {
	switch s {
	case SideOffering:
		return SideRequesting
	case SideRequesting:
		return SideOffering
	default:
		return SideInvalid
	}
}

// Policy selects how strictly balances are checked.
type Policy int32

const (
	PolicyInvalid Policy = 0
	// PolicyExactUnit trades a single unit. The holder accounts at
	// initialization and the custody accounts at settlement must hold
	// exactly that unit.
	PolicyExactUnit Policy = 1
	// PolicyFixedQuantity trades the configured quantity without checking
	// holder balances up front.
	PolicyFixedQuantity Policy = 2
)

var policyNames = map[Policy]string{
	PolicyExactUnit:     "exact_unit",
	PolicyFixedQuantity: "fixed_quantity",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return "invalid"
}

func (p Policy) Validate() error {
	if _, ok := policyNames[p]; !ok {
		return errors.Wrapf(errors.ErrInput, "unknown policy %d", p)
	}
	return nil
}

// UnmarshalJSON accepts both the numeric and the name representation.
func (p *Policy) UnmarshalJSON(raw []byte) error {
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		var n int32
		if err := json.Unmarshal(raw, &n); err != nil {
			return errors.Wrap(errors.ErrInput, "policy must be a name or a number")
		}
		*p = Policy(n)
		return p.Validate()
	}
	for policy, pname := range policyNames {
		if strings.EqualFold(pname, name) {
			*p = policy
			return nil
		}
	}
	return errors.Wrapf(errors.ErrInput, "unknown policy %q", name)
}

// MarshalJSON returns the name representation.
func (p Policy) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

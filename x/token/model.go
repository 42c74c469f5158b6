package token

import (
	"github.com/gogo/protobuf/proto"
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/coin"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/orm"
)

const (
	// BucketName is where the accounts are stored.
	BucketName = "token"

	// program is the domain of associated account addresses.
	program = "token"
)

// Account holds a balance of a single asset class.
type Account struct {
	Metadata *seahorse.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Owner is the authority allowed to move funds out of this account.
	Owner seahorse.Address `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"owner,omitempty"`
	// Amount always carries the asset class, even when zero.
	Amount *coin.Coin `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Account) Reset()         { *m = Account{} }
func (m *Account) String() string { return proto.CompactTextString(m) }
func (*Account) ProtoMessage()    {}

var _ orm.Model = (*Account)(nil)

func (a *Account) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", a.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", a.Owner.Validate())
	if a.Amount == nil {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrEmpty, "required"))
	} else {
		errs = errors.AppendField(errs, "Amount", a.Amount.Validate())
		if !a.Amount.IsNonNegative() {
			errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "negative balance"))
		}
	}
	return errs
}

// Ticker returns the asset class held by this account.
func (a *Account) Ticker() string {
	if a.Amount == nil {
		return ""
	}
	return a.Amount.Ticker
}

// Balance returns a copy of the account balance.
func (a *Account) Balance() coin.Coin {
	if a.Amount == nil {
		return coin.Coin{}
	}
	return *a.Amount
}

// NewAccount returns an empty account of given asset class.
func NewAccount(owner seahorse.Address, ticker string) *Account {
	return &Account{
		Metadata: &seahorse.Metadata{Schema: 1},
		Owner:    owner,
		Amount:   &coin.Coin{Ticker: ticker},
	}
}

// Bucket stores accounts under their address.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket returns a bucket for token accounts.
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName, &Account{}),
	}
}

// AssociatedAddress returns the address of the account holding given asset
// class on behalf of the owner.
func AssociatedAddress(owner seahorse.Address, ticker string) (seahorse.Address, error) {
	if err := owner.Validate(); err != nil {
		return nil, errors.Wrap(err, "owner")
	}
	if !coin.IsCC(ticker) {
		return nil, errors.Wrapf(errors.ErrCurrency, "invalid asset class: %q", ticker)
	}
	addr, _, err := seahorse.FindProgramAddress(program, owner, []byte(ticker))
	return addr, err
}

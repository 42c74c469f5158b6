package token

import (
	"github.com/gogo/protobuf/proto"
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/coin"
	"github.com/mtnPay/seahorse-swap/errors"
)

var (
	_ seahorse.Msg = (*CreateAccountMsg)(nil)
	_ seahorse.Msg = (*TransferMsg)(nil)
	_ seahorse.Msg = (*MintMsg)(nil)
	_ seahorse.Msg = (*UpdateConfigurationMsg)(nil)
)

const (
	createAccountCost int64 = 50
	transferCost      int64 = 100
	mintCost          int64 = 100
)

// CreateAccountMsg allocates the associated account of the owner for the
// asset class.
type CreateAccountMsg struct {
	Metadata *seahorse.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner    seahorse.Address   `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"owner,omitempty"`
	Ticker   string             `protobuf:"bytes,3,opt,name=ticker,proto3" json:"ticker,omitempty"`
}

func (m *CreateAccountMsg) Reset()         { *m = CreateAccountMsg{} }
func (m *CreateAccountMsg) String() string { return proto.CompactTextString(m) }
func (*CreateAccountMsg) ProtoMessage()    {}

func (CreateAccountMsg) Path() string {
	return "token/create_account"
}

func (m *CreateAccountMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	if !coin.IsCC(m.Ticker) {
		errs = errors.Append(errs, errors.Field("Ticker", errors.ErrCurrency, "invalid asset class %q", m.Ticker))
	}
	return errs
}

// TransferMsg moves funds between two accounts of the same asset class.
// The source account owner must sign.
type TransferMsg struct {
	Metadata    *seahorse.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Source      seahorse.Address   `protobuf:"bytes,2,opt,name=source,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"source,omitempty"`
	Destination seahorse.Address   `protobuf:"bytes,3,opt,name=destination,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"destination,omitempty"`
	Amount      *coin.Coin         `protobuf:"bytes,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *TransferMsg) Reset()         { *m = TransferMsg{} }
func (m *TransferMsg) String() string { return proto.CompactTextString(m) }
func (*TransferMsg) ProtoMessage()    {}

func (TransferMsg) Path() string {
	return "token/transfer"
}

func (m *TransferMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Source", m.Source.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	errs = errors.AppendField(errs, "Amount", validAmount(m.Amount))
	return errs
}

// MintMsg issues new units into an existing account. Only the configured
// minter can sign it.
type MintMsg struct {
	Metadata    *seahorse.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Destination seahorse.Address   `protobuf:"bytes,2,opt,name=destination,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"destination,omitempty"`
	Amount      *coin.Coin         `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *MintMsg) Reset()         { *m = MintMsg{} }
func (m *MintMsg) String() string { return proto.CompactTextString(m) }
func (*MintMsg) ProtoMessage()    {}

func (MintMsg) Path() string {
	return "token/mint"
}

func (m *MintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	errs = errors.AppendField(errs, "Amount", validAmount(m.Amount))
	return errs
}

func validAmount(c *coin.Coin) error {
	if coin.IsEmpty(c) {
		return errors.Wrap(errors.ErrAmount, "required")
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non positive: %s", c)
	}
	return nil
}

// UpdateConfigurationMsg patches the token configuration.
type UpdateConfigurationMsg struct {
	Metadata *seahorse.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Patch    *Configuration     `protobuf:"bytes,2,opt,name=patch,proto3" json:"patch,omitempty"`
}

func (m *UpdateConfigurationMsg) Reset()         { *m = UpdateConfigurationMsg{} }
func (m *UpdateConfigurationMsg) String() string { return proto.CompactTextString(m) }
func (*UpdateConfigurationMsg) ProtoMessage()    {}

func (UpdateConfigurationMsg) Path() string {
	return "token/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	return nil
}

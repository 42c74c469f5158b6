package swap

import (
	"github.com/gogo/protobuf/proto"
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/coin"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/gconf"
)

const configPkg = "swap"

// Configuration of the swap extension.
type Configuration struct {
	Metadata *seahorse.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Owner can update the configuration.
	Owner seahorse.Address `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"owner,omitempty"`
	// Policy and Quantity are copied onto every new escrow. Updating them
	// does not affect escrows that already exist.
	Policy   Policy `protobuf:"varint,3,opt,name=policy,proto3" json:"policy,omitempty"`
	Quantity int64  `protobuf:"varint,4,opt,name=quantity,proto3" json:"quantity,omitempty"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}

var _ gconf.OwnedConfig = (*Configuration)(nil)

func (c *Configuration) GetOwner() seahorse.Address {
	return c.Owner
}

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	errs = errors.AppendField(errs, "Policy", c.Policy.Validate())
	errs = errors.AppendField(errs, "Quantity", validateQuantity(c.Policy, c.Quantity))
	return errs
}

func validateQuantity(p Policy, quantity int64) error {
	if quantity < 1 || quantity > coin.MaxInt {
		return errors.Wrapf(errors.ErrAmount, "must be between 1 and %d", coin.MaxInt)
	}
	if p == PolicyExactUnit && quantity != 1 {
		return errors.Wrapf(errors.ErrAmount, "%s moves a single unit, got %d", p, quantity)
	}
	return nil
}

// UpdateConfigurationMsg patches the swap configuration.
type UpdateConfigurationMsg struct {
	Metadata *seahorse.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Patch    *Configuration     `protobuf:"bytes,2,opt,name=patch,proto3" json:"patch,omitempty"`
}

func (m *UpdateConfigurationMsg) Reset()         { *m = UpdateConfigurationMsg{} }
func (m *UpdateConfigurationMsg) String() string { return proto.CompactTextString(m) }
func (*UpdateConfigurationMsg) ProtoMessage()    {}

func (UpdateConfigurationMsg) Path() string {
	return "swap/update_configuration"
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

func (m *UpdateConfigurationMsg) GetPatch() gconf.OwnedConfig {
	if m.Patch == nil {
		return nil
	}
	return m.Patch
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, configPkg, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

package token

import (
	"github.com/gogo/protobuf/proto"
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/gconf"
)

const configPkg = "token"

// Configuration of the token extension.
type Configuration struct {
	Metadata *seahorse.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Owner can update the configuration.
	Owner seahorse.Address `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"owner,omitempty"`
	// Minter is the only address allowed to issue new units.
	Minter seahorse.Address `protobuf:"bytes,3,opt,name=minter,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"minter,omitempty"`
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
	errs = errors.AppendField(errs, "Minter", c.Minter.Validate())
	return errs
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

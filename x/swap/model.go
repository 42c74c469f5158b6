package swap

import (
	"github.com/gogo/protobuf/proto"
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/coin"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/orm"
)

// Escrow is the record of a two party swap, stored under its derived
// address. It is never modified after creation.
type Escrow struct {
	Metadata *seahorse.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// OfferingParty initialized the escrow and offers an asset.
	OfferingParty seahorse.Address `protobuf:"bytes,2,opt,name=offering_party,json=offeringParty,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"offering_party,omitempty"`
	// RequestingParty is asked for an asset in exchange.
	RequestingParty      seahorse.Address `protobuf:"bytes,3,opt,name=requesting_party,json=requestingParty,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"requesting_party,omitempty"`
	OfferingAssetClass   string           `protobuf:"bytes,4,opt,name=offering_asset_class,json=offeringAssetClass,proto3" json:"offering_asset_class,omitempty"`
	RequestingAssetClass string           `protobuf:"bytes,5,opt,name=requesting_asset_class,json=requestingAssetClass,proto3" json:"requesting_asset_class,omitempty"`
	// Custody accounts are owned by the escrow address.
	OfferingCustody   seahorse.Address `protobuf:"bytes,6,opt,name=offering_custody,json=offeringCustody,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"offering_custody,omitempty"`
	RequestingCustody seahorse.Address `protobuf:"bytes,7,opt,name=requesting_custody,json=requestingCustody,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"requesting_custody,omitempty"`
	// Policy and Quantity are the terms in force when the escrow was
	// initialized.
	Policy   Policy `protobuf:"varint,8,opt,name=policy,proto3" json:"policy,omitempty"`
	Quantity int64  `protobuf:"varint,9,opt,name=quantity,proto3" json:"quantity,omitempty"`
}

func (m *Escrow) Reset()         { *m = Escrow{} }
func (m *Escrow) String() string { return proto.CompactTextString(m) }
func (*Escrow) ProtoMessage()    {}

var _ orm.Model = (*Escrow)(nil)

func (e *Escrow) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", e.Metadata.Validate())
	errs = errors.AppendField(errs, "OfferingParty", e.OfferingParty.Validate())
	errs = errors.AppendField(errs, "RequestingParty", e.RequestingParty.Validate())
	if !coin.IsCC(e.OfferingAssetClass) {
		errs = errors.Append(errs, errors.Field("OfferingAssetClass", errors.ErrCurrency, "invalid asset class %q", e.OfferingAssetClass))
	}
	if !coin.IsCC(e.RequestingAssetClass) {
		errs = errors.Append(errs, errors.Field("RequestingAssetClass", errors.ErrCurrency, "invalid asset class %q", e.RequestingAssetClass))
	}
	errs = errors.AppendField(errs, "OfferingCustody", e.OfferingCustody.Validate())
	errs = errors.AppendField(errs, "RequestingCustody", e.RequestingCustody.Validate())
	errs = errors.AppendField(errs, "Policy", e.Policy.Validate())
	errs = errors.AppendField(errs, "Quantity", validateQuantity(e.Policy, e.Quantity))
	return errs
}

// Party returns the participant of given side.
func (e *Escrow) Party(side Side) seahorse.Address {
	if side == SideOffering {
		return e.OfferingParty
	}
	return e.RequestingParty
}

// AssetClass returns the asset class traded by given side.
func (e *Escrow) AssetClass(side Side) string {
	if side == SideOffering {
		return e.OfferingAssetClass
	}
	return e.RequestingAssetClass
}

// Custody returns the custody account address of given side.
func (e *Escrow) Custody(side Side) seahorse.Address {
	if side == SideOffering {
		return e.OfferingCustody
	}
	return e.RequestingCustody
}

// Amount returns the agreed amount of the asset traded by given side.
func (e *Escrow) Amount(side Side) coin.Coin {
	return coin.NewCoin(e.Quantity, 0, e.AssetClass(side))
}

// Settlement marks an escrow as settled. It is stored under the escrow
// address, which keeps the escrow record itself immutable.
type Settlement struct {
	Metadata *seahorse.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Height of the block the escrow was settled in.
	Height int64 `protobuf:"varint,2,opt,name=height,proto3" json:"height,omitempty"`
}

func (m *Settlement) Reset()         { *m = Settlement{} }
func (m *Settlement) String() string { return proto.CompactTextString(m) }
func (*Settlement) ProtoMessage()    {}

var _ orm.Model = (*Settlement)(nil)

func (s *Settlement) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", s.Metadata.Validate())
	if s.Height < 0 {
		errs = errors.Append(errs, errors.Field("Height", errors.ErrInput, "negative"))
	}
	return errs
}

// NewEscrowBucket returns a bucket for escrow records.
func NewEscrowBucket() orm.ModelBucket {
	return orm.NewModelBucket("escrow", &Escrow{})
}

// NewSettlementBucket returns a bucket for settlement markers.
func NewSettlementBucket() orm.ModelBucket {
	return orm.NewModelBucket("settlement", &Settlement{})
}

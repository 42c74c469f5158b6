package swap

import (
	"github.com/gogo/protobuf/proto"
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/coin"
	"github.com/mtnPay/seahorse-swap/errors"
)

var (
	_ seahorse.Msg = (*InitMsg)(nil)
	_ seahorse.Msg = (*FundMsg)(nil)
	_ seahorse.Msg = (*DefundMsg)(nil)
	_ seahorse.Msg = (*CrankMsg)(nil)
	_ seahorse.Msg = (*UpdateConfigurationMsg)(nil)
)

// InitMsg creates an escrow for a pair of holder accounts. It must be
// signed by the offering party.
type InitMsg struct {
	Metadata             *seahorse.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	OfferingParty        seahorse.Address   `protobuf:"bytes,2,opt,name=offering_party,json=offeringParty,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"offering_party,omitempty"`
	RequestingParty      seahorse.Address   `protobuf:"bytes,3,opt,name=requesting_party,json=requestingParty,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"requesting_party,omitempty"`
	OfferingAssetClass   string             `protobuf:"bytes,4,opt,name=offering_asset_class,json=offeringAssetClass,proto3" json:"offering_asset_class,omitempty"`
	RequestingAssetClass string             `protobuf:"bytes,5,opt,name=requesting_asset_class,json=requestingAssetClass,proto3" json:"requesting_asset_class,omitempty"`
	// OfferingHolder is the account holding the offered asset.
	OfferingHolder seahorse.Address `protobuf:"bytes,6,opt,name=offering_holder,json=offeringHolder,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"offering_holder,omitempty"`
	// RequestingHolder is the account holding the requested asset.
	RequestingHolder seahorse.Address `protobuf:"bytes,7,opt,name=requesting_holder,json=requestingHolder,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"requesting_holder,omitempty"`
}

func (m *InitMsg) Reset()         { *m = InitMsg{} }
func (m *InitMsg) String() string { return proto.CompactTextString(m) }
func (*InitMsg) ProtoMessage()    {}

func (InitMsg) Path() string {
	return "swap/init"
}

func (m *InitMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "OfferingParty", m.OfferingParty.Validate())
	errs = errors.AppendField(errs, "RequestingParty", m.RequestingParty.Validate())
	if m.OfferingParty.Equals(m.RequestingParty) {
		errs = errors.Append(errs, errors.Field("RequestingParty", errors.ErrInput, "must differ from the offering party"))
	}
	if !coin.IsCC(m.OfferingAssetClass) {
		errs = errors.Append(errs, errors.Field("OfferingAssetClass", errors.ErrCurrency, "invalid asset class %q", m.OfferingAssetClass))
	}
	if !coin.IsCC(m.RequestingAssetClass) {
		errs = errors.Append(errs, errors.Field("RequestingAssetClass", errors.ErrCurrency, "invalid asset class %q", m.RequestingAssetClass))
	}
	errs = errors.AppendField(errs, "OfferingHolder", m.OfferingHolder.Validate())
	errs = errors.AppendField(errs, "RequestingHolder", m.RequestingHolder.Validate())
	if m.OfferingHolder.Equals(m.RequestingHolder) {
		errs = errors.Append(errs, errors.Field("RequestingHolder", errors.ErrInput, "must differ from the offering holder"))
	}
	return errs
}

// FundMsg moves the configured quantity from the holder account of the
// signer into the custody account of its side.
type FundMsg struct {
	Metadata *seahorse.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Side     Side               `protobuf:"varint,2,opt,name=side,proto3" json:"side,omitempty"`
	Escrow   seahorse.Address   `protobuf:"bytes,3,opt,name=escrow,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"escrow,omitempty"`
	Holder   seahorse.Address   `protobuf:"bytes,4,opt,name=holder,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"holder,omitempty"`
	Custody  seahorse.Address   `protobuf:"bytes,5,opt,name=custody,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"custody,omitempty"`
}

func (m *FundMsg) Reset()         { *m = FundMsg{} }
func (m *FundMsg) String() string { return proto.CompactTextString(m) }
func (*FundMsg) ProtoMessage()    {}

func (FundMsg) Path() string {
	return "swap/fund"
}

func (m *FundMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Side", m.Side.Validate())
	errs = errors.AppendField(errs, "Escrow", m.Escrow.Validate())
	errs = errors.AppendField(errs, "Holder", m.Holder.Validate())
	errs = errors.AppendField(errs, "Custody", m.Custody.Validate())
	return errs
}

// DefundMsg returns the configured quantity from the custody account of a
// side to its holder account.
type DefundMsg struct {
	Metadata         *seahorse.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Side             Side               `protobuf:"varint,2,opt,name=side,proto3" json:"side,omitempty"`
	Bump             uint32             `protobuf:"varint,3,opt,name=bump,proto3" json:"bump,omitempty"`
	Escrow           seahorse.Address   `protobuf:"bytes,4,opt,name=escrow,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"escrow,omitempty"`
	OfferingHolder   seahorse.Address   `protobuf:"bytes,5,opt,name=offering_holder,json=offeringHolder,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"offering_holder,omitempty"`
	RequestingHolder seahorse.Address   `protobuf:"bytes,6,opt,name=requesting_holder,json=requestingHolder,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"requesting_holder,omitempty"`
	Custody          seahorse.Address   `protobuf:"bytes,7,opt,name=custody,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"custody,omitempty"`
}

func (m *DefundMsg) Reset()         { *m = DefundMsg{} }
func (m *DefundMsg) String() string { return proto.CompactTextString(m) }
func (*DefundMsg) ProtoMessage()    {}

func (DefundMsg) Path() string {
	return "swap/defund"
}

func (m *DefundMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Side", m.Side.Validate())
	errs = errors.AppendField(errs, "Bump", validBump(m.Bump))
	errs = errors.AppendField(errs, "Escrow", m.Escrow.Validate())
	errs = errors.AppendField(errs, "OfferingHolder", m.OfferingHolder.Validate())
	errs = errors.AppendField(errs, "RequestingHolder", m.RequestingHolder.Validate())
	errs = errors.AppendField(errs, "Custody", m.Custody.Validate())
	return errs
}

// Holder returns the holder account of given side.
func (m *DefundMsg) Holder(side Side) seahorse.Address {
	if side == SideOffering {
		return m.OfferingHolder
	}
	return m.RequestingHolder
}

// CrankMsg settles an escrow. Anyone can submit it.
type CrankMsg struct {
	Metadata          *seahorse.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Bump              uint32             `protobuf:"varint,2,opt,name=bump,proto3" json:"bump,omitempty"`
	Escrow            seahorse.Address   `protobuf:"bytes,3,opt,name=escrow,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"escrow,omitempty"`
	OfferingHolder    seahorse.Address   `protobuf:"bytes,4,opt,name=offering_holder,json=offeringHolder,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"offering_holder,omitempty"`
	RequestingHolder  seahorse.Address   `protobuf:"bytes,5,opt,name=requesting_holder,json=requestingHolder,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"requesting_holder,omitempty"`
	OfferingCustody   seahorse.Address   `protobuf:"bytes,6,opt,name=offering_custody,json=offeringCustody,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"offering_custody,omitempty"`
	RequestingCustody seahorse.Address   `protobuf:"bytes,7,opt,name=requesting_custody,json=requestingCustody,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"requesting_custody,omitempty"`
	// OfferingDestination receives the offered asset. It must be owned by
	// the requesting party.
	OfferingDestination seahorse.Address `protobuf:"bytes,8,opt,name=offering_destination,json=offeringDestination,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"offering_destination,omitempty"`
	// RequestingDestination receives the requested asset. It must be owned
	// by the offering party.
	RequestingDestination seahorse.Address `protobuf:"bytes,9,opt,name=requesting_destination,json=requestingDestination,proto3,casttype=github.com/mtnPay/seahorse-swap.Address" json:"requesting_destination,omitempty"`
}

func (m *CrankMsg) Reset()         { *m = CrankMsg{} }
func (m *CrankMsg) String() string { return proto.CompactTextString(m) }
func (*CrankMsg) ProtoMessage()    {}

func (CrankMsg) Path() string {
	return "swap/crank"
}

func (m *CrankMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Bump", validBump(m.Bump))
	errs = errors.AppendField(errs, "Escrow", m.Escrow.Validate())
	errs = errors.AppendField(errs, "OfferingHolder", m.OfferingHolder.Validate())
	errs = errors.AppendField(errs, "RequestingHolder", m.RequestingHolder.Validate())
	errs = errors.AppendField(errs, "OfferingCustody", m.OfferingCustody.Validate())
	errs = errors.AppendField(errs, "RequestingCustody", m.RequestingCustody.Validate())
	errs = errors.AppendField(errs, "OfferingDestination", m.OfferingDestination.Validate())
	errs = errors.AppendField(errs, "RequestingDestination", m.RequestingDestination.Validate())
	return errs
}

// Custody returns the custody account of given side.
func (m *CrankMsg) Custody(side Side) seahorse.Address {
	if side == SideOffering {
		return m.OfferingCustody
	}
	return m.RequestingCustody
}

// Bumps travel as uint32, the protobuf varint type closest to a byte.
func validBump(b uint32) error {
	if b > 255 {
		return errors.Wrapf(errors.ErrInput, "bump %d does not fit a byte", b)
	}
	return nil
}

package swap

import (
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/coin"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/gconf"
	"github.com/mtnPay/seahorse-swap/orm"
	"github.com/mtnPay/seahorse-swap/x"
	"github.com/mtnPay/seahorse-swap/x/token"
)

const (
	initEscrowCost   int64 = 300
	fundEscrowCost   int64 = 100
	defundEscrowCost int64 = 100
	crankEscrowCost  int64 = 200
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r seahorse.Registry, auth x.Authenticator, tokens token.Controller) {
	r.Handle(InitMsg{}.Path(), NewInitHandler(auth, tokens))
	r.Handle(FundMsg{}.Path(), NewFundHandler(auth, tokens))
	r.Handle(DefundMsg{}.Path(), NewDefundHandler(auth, tokens))
	r.Handle(CrankMsg{}.Path(), NewCrankHandler(tokens))
	r.Handle(UpdateConfigurationMsg{}.Path(), NewConfigHandler(auth))
}

// RegisterQuery will register the escrows as "/escrows" and the settlement
// markers as "/settlements"
func RegisterQuery(qr seahorse.QueryRouter) {
	NewEscrowBucket().Register("escrows", qr)
	NewSettlementBucket().Register("settlements", qr)
}

// NewConfigHandler returns a handler that updates the swap configuration.
func NewConfigHandler(auth x.Authenticator) seahorse.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler(configPkg, &conf, auth, nil)
}

// state groups the state shared by all handlers.
type state struct {
	escrows     orm.ModelBucket
	settlements orm.ModelBucket
	tokens      token.Controller
}

func newState(tokens token.Controller) state {
	return state{
		escrows:     NewEscrowBucket(),
		settlements: NewSettlementBucket(),
		tokens:      tokens,
	}
}

// openEscrow loads the escrow and fails if it was already settled.
func (s state) openEscrow(db seahorse.ReadOnlyKVStore, addr seahorse.Address) (*Escrow, error) {
	var e Escrow
	if err := s.escrows.One(db, addr, &e); err != nil {
		return nil, errors.Wrap(err, "cannot load escrow")
	}
	switch err := s.settlements.Has(db, addr); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrState, "escrow %s is settled", addr)
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}
	return &e, nil
}

func (s state) account(db seahorse.ReadOnlyKVStore, name string, addr seahorse.Address) (*token.Account, error) {
	acc, err := s.tokens.Account(db, addr)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return acc, nil
}

// atomically runs fn so that either all or none of its writes are applied.
// Stores that cannot be cache wrapped rely on the savepoint of the
// application.
func atomically(db seahorse.KVStore, fn func(seahorse.KVStore) error) error {
	cstore, ok := db.(seahorse.CacheableKVStore)
	if !ok {
		return fn(db)
	}
	cache := cstore.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	return cache.Write()
}

// InitHandler creates an escrow record and its custody accounts.
type InitHandler struct {
	auth  x.Authenticator
	state state
}

var _ seahorse.Handler = InitHandler{}

func NewInitHandler(auth x.Authenticator, tokens token.Controller) InitHandler {
	return InitHandler{auth: auth, state: newState(tokens)}
}

func (h InitHandler) Check(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*seahorse.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &seahorse.CheckResult{GasAllocated: initEscrowCost}, nil
}

func (h InitHandler) Deliver(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*seahorse.DeliverResult, error) {
	msg, addr, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	offeringCustody, err := CustodyAddress(SideOffering, msg.OfferingHolder, msg.RequestingHolder)
	if err != nil {
		return nil, err
	}
	requestingCustody, err := CustodyAddress(SideRequesting, msg.OfferingHolder, msg.RequestingHolder)
	if err != nil {
		return nil, err
	}
	escrow := &Escrow{
		Metadata:             &seahorse.Metadata{Schema: 1},
		OfferingParty:        msg.OfferingParty,
		RequestingParty:      msg.RequestingParty,
		OfferingAssetClass:   msg.OfferingAssetClass,
		RequestingAssetClass: msg.RequestingAssetClass,
		OfferingCustody:      offeringCustody,
		RequestingCustody:    requestingCustody,
		Policy:               conf.Policy,
		Quantity:             conf.Quantity,
	}

	err = atomically(db, func(db seahorse.KVStore) error {
		if err := h.state.escrows.Create(db, addr, escrow); err != nil {
			return errors.Wrap(err, "cannot store escrow")
		}
		if _, err := h.state.tokens.CreateAccount(db, offeringCustody, addr, msg.OfferingAssetClass); err != nil {
			return errors.Wrap(err, "offering custody")
		}
		if _, err := h.state.tokens.CreateAccount(db, requestingCustody, addr, msg.RequestingAssetClass); err != nil {
			return errors.Wrap(err, "requesting custody")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	seahorse.GetLogger(ctx).Debug("escrow initialized", "escrow", addr, "offering", msg.OfferingParty, "requesting", msg.RequestingParty)
	return &seahorse.DeliverResult{Data: addr}, nil
}

func (h InitHandler) validate(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*InitMsg, seahorse.Address, *Configuration, error) {
	var msg InitMsg
	if err := seahorse.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, nil, err
	}
	if !h.auth.HasAddress(ctx, msg.OfferingParty) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "offering party signature missing")
	}

	addr, _, err := EscrowAddress(msg.OfferingHolder, msg.RequestingHolder)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "escrow address")
	}
	switch err := h.state.escrows.Has(db, addr); {
	case err == nil:
		return nil, nil, nil, errors.Wrapf(errors.ErrDuplicate, "escrow %s already exists", addr)
	case !errors.ErrNotFound.Is(err):
		return nil, nil, nil, err
	}

	offering, err := h.state.account(db, "offering holder", msg.OfferingHolder)
	if err != nil {
		return nil, nil, nil, err
	}
	requesting, err := h.state.account(db, "requesting holder", msg.RequestingHolder)
	if err != nil {
		return nil, nil, nil, err
	}
	if offering.Ticker() != msg.OfferingAssetClass {
		return nil, nil, nil, errors.Wrapf(errors.ErrCurrency, "offering holder holds %q", offering.Ticker())
	}
	if requesting.Ticker() != msg.RequestingAssetClass {
		return nil, nil, nil, errors.Wrapf(errors.ErrCurrency, "requesting holder holds %q", requesting.Ticker())
	}

	if err := CheckOwner("offering holder", offering, msg.OfferingParty); err != nil {
		return nil, nil, nil, err
	}
	if err := CheckOwner("requesting holder", requesting, msg.RequestingParty); err != nil {
		return nil, nil, nil, err
	}
	if conf.Policy == PolicyExactUnit {
		unit := coin.NewCoin(conf.Quantity, 0, msg.OfferingAssetClass)
		if err := CheckSupply("offering holder", offering, unit); err != nil {
			return nil, nil, nil, err
		}
		unit = coin.NewCoin(conf.Quantity, 0, msg.RequestingAssetClass)
		if err := CheckSupply("requesting holder", requesting, unit); err != nil {
			return nil, nil, nil, err
		}
	}
	return &msg, addr, conf, nil
}

// FundHandler moves an asset of one side into custody.
type FundHandler struct {
	auth  x.Authenticator
	state state
}

var _ seahorse.Handler = FundHandler{}

func NewFundHandler(auth x.Authenticator, tokens token.Controller) FundHandler {
	return FundHandler{auth: auth, state: newState(tokens)}
}

func (h FundHandler) Check(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*seahorse.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &seahorse.CheckResult{GasAllocated: fundEscrowCost}, nil
}

func (h FundHandler) Deliver(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*seahorse.DeliverResult, error) {
	msg, escrow, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.state.tokens.Transfer(ctx, db, msg.Holder, msg.Custody, token.Signed(h.auth), escrow.Amount(msg.Side)); err != nil {
		return nil, errors.Wrap(err, "fund custody")
	}
	return &seahorse.DeliverResult{}, nil
}

func (h FundHandler) validate(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*FundMsg, *Escrow, error) {
	var msg FundMsg
	if err := seahorse.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	escrow, err := h.state.openEscrow(db, msg.Escrow)
	if err != nil {
		return nil, nil, err
	}
	if err := CheckParty(ctx, h.auth, escrow, msg.Side); err != nil {
		return nil, nil, err
	}
	if err := CheckReference("custody", msg.Custody, escrow.Custody(msg.Side)); err != nil {
		return nil, nil, err
	}
	custody, err := h.state.account(db, "custody", msg.Custody)
	if err != nil {
		return nil, nil, err
	}
	if err := CheckOwner("custody", custody, msg.Escrow); err != nil {
		return nil, nil, err
	}
	// Custody never holds more than the agreed amount.
	if !custody.Balance().IsZero() {
		return nil, nil, errors.Wrapf(errors.ErrState, "%s custody already holds %s", msg.Side, custody.Balance())
	}
	return &msg, escrow, nil
}

// DefundHandler returns an asset of one side from custody to its holder.
type DefundHandler struct {
	auth  x.Authenticator
	state state
}

var _ seahorse.Handler = DefundHandler{}

func NewDefundHandler(auth x.Authenticator, tokens token.Controller) DefundHandler {
	return DefundHandler{auth: auth, state: newState(tokens)}
}

func (h DefundHandler) Check(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*seahorse.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &seahorse.CheckResult{GasAllocated: defundEscrowCost}, nil
}

func (h DefundHandler) Deliver(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*seahorse.DeliverResult, error) {
	msg, custody, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	// The whole balance goes back, whatever the terms of the escrow.
	authority := EscrowAuthority(uint8(msg.Bump), msg.OfferingHolder, msg.RequestingHolder)
	if err := h.state.tokens.Transfer(ctx, db, msg.Custody, msg.Holder(msg.Side), authority, custody.Balance()); err != nil {
		return nil, errors.Wrap(err, "defund custody")
	}
	return &seahorse.DeliverResult{}, nil
}

func (h DefundHandler) validate(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*DefundMsg, *token.Account, error) {
	var msg DefundMsg
	if err := seahorse.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	escrow, err := h.state.openEscrow(db, msg.Escrow)
	if err != nil {
		return nil, nil, err
	}
	if err := CheckParty(ctx, h.auth, escrow, msg.Side); err != nil {
		return nil, nil, err
	}
	if err := CheckReference("custody", msg.Custody, escrow.Custody(msg.Side)); err != nil {
		return nil, nil, err
	}
	if err := CheckDerivation(msg.Escrow, escrow, msg.OfferingHolder, msg.RequestingHolder); err != nil {
		return nil, nil, err
	}
	offering, err := h.state.account(db, "offering holder", msg.OfferingHolder)
	if err != nil {
		return nil, nil, err
	}
	if err := CheckOwner("offering holder", offering, escrow.OfferingParty); err != nil {
		return nil, nil, err
	}
	requesting, err := h.state.account(db, "requesting holder", msg.RequestingHolder)
	if err != nil {
		return nil, nil, err
	}
	if err := CheckOwner("requesting holder", requesting, escrow.RequestingParty); err != nil {
		return nil, nil, err
	}
	custody, err := h.state.account(db, "custody", msg.Custody)
	if err != nil {
		return nil, nil, err
	}
	if !custody.Balance().IsPositive() {
		return nil, nil, errors.Wrapf(errors.ErrAmount, "%s custody is empty", msg.Side)
	}
	return &msg, custody, nil
}

// CrankHandler settles an escrow. It does not require any signature.
type CrankHandler struct {
	state state
}

var _ seahorse.Handler = CrankHandler{}

func NewCrankHandler(tokens token.Controller) CrankHandler {
	return CrankHandler{state: newState(tokens)}
}

func (h CrankHandler) Check(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*seahorse.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &seahorse.CheckResult{GasAllocated: crankEscrowCost}, nil
}

func (h CrankHandler) Deliver(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*seahorse.DeliverResult, error) {
	msg, custody, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	authority := EscrowAuthority(uint8(msg.Bump), msg.OfferingHolder, msg.RequestingHolder)
	height, _ := seahorse.GetHeight(ctx)

	// Both custody accounts are emptied.
	err = atomically(db, func(db seahorse.KVStore) error {
		requested := custody[SideRequesting].Balance()
		if err := h.state.tokens.Transfer(ctx, db, msg.RequestingCustody, msg.RequestingDestination, authority, requested); err != nil {
			return errors.Wrap(err, "requesting leg")
		}
		offered := custody[SideOffering].Balance()
		if err := h.state.tokens.Transfer(ctx, db, msg.OfferingCustody, msg.OfferingDestination, authority, offered); err != nil {
			return errors.Wrap(err, "offering leg")
		}
		settlement := &Settlement{
			Metadata: &seahorse.Metadata{Schema: 1},
			Height:   height,
		}
		if err := h.state.settlements.Create(db, msg.Escrow, settlement); err != nil {
			return errors.Wrap(err, "cannot store settlement")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	seahorse.GetLogger(ctx).Info("escrow settled", "escrow", msg.Escrow, "height", height)
	return &seahorse.DeliverResult{}, nil
}

func (h CrankHandler) validate(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*CrankMsg, map[Side]*token.Account, error) {
	var msg CrankMsg
	if err := seahorse.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	escrow, err := h.state.openEscrow(db, msg.Escrow)
	if err != nil {
		return nil, nil, err
	}
	for _, side := range []Side{SideOffering, SideRequesting} {
		if err := CheckReference(side.String()+" custody", msg.Custody(side), escrow.Custody(side)); err != nil {
			return nil, nil, err
		}
	}
	if err := CheckDerivation(msg.Escrow, escrow, msg.OfferingHolder, msg.RequestingHolder); err != nil {
		return nil, nil, err
	}

	offeringDst, err := h.state.account(db, "offering destination", msg.OfferingDestination)
	if err != nil {
		return nil, nil, err
	}
	requestingDst, err := h.state.account(db, "requesting destination", msg.RequestingDestination)
	if err != nil {
		return nil, nil, err
	}
	// Each asset goes to the counterparty.
	if err := CheckOwner("offering destination", offeringDst, escrow.RequestingParty); err != nil {
		return nil, nil, err
	}
	if err := CheckOwner("requesting destination", requestingDst, escrow.OfferingParty); err != nil {
		return nil, nil, err
	}

	offeringHolder, err := h.state.account(db, "offering holder", msg.OfferingHolder)
	if err != nil {
		return nil, nil, err
	}
	requestingHolder, err := h.state.account(db, "requesting holder", msg.RequestingHolder)
	if err != nil {
		return nil, nil, err
	}
	// A destination must belong to the owner of the opposite holder.
	if err := CheckOwner("requesting destination", requestingDst, offeringHolder.Owner); err != nil {
		return nil, nil, err
	}
	if err := CheckOwner("offering destination", offeringDst, requestingHolder.Owner); err != nil {
		return nil, nil, err
	}

	custody := make(map[Side]*token.Account, 2)
	for _, side := range []Side{SideOffering, SideRequesting} {
		name := side.String() + " custody"
		acc, err := h.state.account(db, name, escrow.Custody(side))
		if err != nil {
			return nil, nil, err
		}
		want := escrow.Amount(side)
		if escrow.Policy == PolicyExactUnit {
			err = CheckSupply(name, acc, want)
		} else if !acc.Balance().IsGTE(want) {
			err = errors.Wrapf(errors.ErrAmount, "insufficient funds: %s holds %s, less than %s", name, acc.Balance(), want)
		}
		if err != nil {
			return nil, nil, err
		}
		custody[side] = acc
	}
	return &msg, custody, nil
}

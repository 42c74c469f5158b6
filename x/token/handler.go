package token

import (
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/gconf"
	"github.com/mtnPay/seahorse-swap/x"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r seahorse.Registry, auth x.Authenticator, control Controller) {
	r.Handle(CreateAccountMsg{}.Path(), NewCreateAccountHandler(control))
	r.Handle(TransferMsg{}.Path(), NewTransferHandler(auth, control))
	r.Handle(MintMsg{}.Path(), NewMintHandler(auth, control))
	r.Handle(UpdateConfigurationMsg{}.Path(), NewConfigHandler(auth))
}

// RegisterQuery will register this bucket as "/tokens"
func RegisterQuery(qr seahorse.QueryRouter) {
	NewBucket().Register("tokens", qr)
}

// CreateAccountHandler allocates associated accounts. Anyone can create an
// account for any owner.
type CreateAccountHandler struct {
	control Controller
}

var _ seahorse.Handler = CreateAccountHandler{}

func NewCreateAccountHandler(control Controller) CreateAccountHandler {
	return CreateAccountHandler{control: control}
}

func (h CreateAccountHandler) Check(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*seahorse.CheckResult, error) {
	var msg CreateAccountMsg
	if err := seahorse.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &seahorse.CheckResult{GasAllocated: createAccountCost}, nil
}

func (h CreateAccountHandler) Deliver(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*seahorse.DeliverResult, error) {
	var msg CreateAccountMsg
	if err := seahorse.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	addr, err := CreateAssociatedAccount(h.control, db, msg.Owner, msg.Ticker)
	if err != nil {
		return nil, err
	}
	return &seahorse.DeliverResult{Data: addr}, nil
}

// TransferHandler moves funds between accounts.
type TransferHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ seahorse.Handler = TransferHandler{}

func NewTransferHandler(auth x.Authenticator, control Controller) TransferHandler {
	return TransferHandler{auth: auth, control: control}
}

func (h TransferHandler) Check(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*seahorse.CheckResult, error) {
	var msg TransferMsg
	if err := seahorse.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &seahorse.CheckResult{GasAllocated: transferCost}, nil
}

func (h TransferHandler) Deliver(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*seahorse.DeliverResult, error) {
	var msg TransferMsg
	if err := seahorse.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.control.Transfer(ctx, db, msg.Source, msg.Destination, Signed(h.auth), *msg.Amount); err != nil {
		return nil, err
	}
	return &seahorse.DeliverResult{}, nil
}

// MintHandler issues new units.
type MintHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ seahorse.Handler = MintHandler{}

func NewMintHandler(auth x.Authenticator, control Controller) MintHandler {
	return MintHandler{auth: auth, control: control}
}

func (h MintHandler) Check(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*seahorse.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &seahorse.CheckResult{GasAllocated: mintCost}, nil
}

func (h MintHandler) Deliver(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*seahorse.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.Mint(db, msg.Destination, *msg.Amount); err != nil {
		return nil, err
	}
	return &seahorse.DeliverResult{}, nil
}

func (h MintHandler) validate(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*MintMsg, error) {
	var msg MintMsg
	if err := seahorse.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Minter) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "minter signature missing")
	}
	return &msg, nil
}

// NewConfigHandler returns a handler that updates the token configuration.
func NewConfigHandler(auth x.Authenticator) seahorse.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler(configPkg, &conf, auth, nil)
}

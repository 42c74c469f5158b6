package gconf

import (
	"reflect"

	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/x"
)

// OwnedConfig must have an Owner field in protobuf. A configuration update
// message must be signed by an owner in order to be authorized to apply the
// change.
type OwnedConfig interface {
	Configuration
	GetOwner() seahorse.Address
}

// PatchMsg is implemented by configuration update messages.
type PatchMsg interface {
	seahorse.Msg
	// GetPatch returns the configuration carried by the message. Zero
	// value fields are not applied.
	GetPatch() OwnedConfig
}

type UpdateConfigurationHandler struct {
	pkg string
	// We require this type to load the data.
	config    OwnedConfig
	auth      x.Authenticator
	initAdmin func(seahorse.ReadOnlyKVStore) (seahorse.Address, error)
}

var _ seahorse.Handler = (*UpdateConfigurationHandler)(nil)

// NewUpdateConfigurationHandler returns a message handler that process
// configuration patch message.
//
// To pass authentication step, each message must be signed by the current
// configuration owner.
//
// When the configuration does not exist yet, an optional initConfAdmin
// function provides the address that is allowed to create it. Once a
// configuration is created, initConfAdmin is not used anymore.
func NewUpdateConfigurationHandler(
	pkg string,
	config OwnedConfig,
	auth x.Authenticator,
	initConfAdmin func(seahorse.ReadOnlyKVStore) (seahorse.Address, error),
) UpdateConfigurationHandler {
	return UpdateConfigurationHandler{
		pkg:       pkg,
		config:    config,
		auth:      auth,
		initAdmin: initConfAdmin,
	}
}

func (h UpdateConfigurationHandler) Check(ctx seahorse.Context, store seahorse.KVStore, tx seahorse.Tx) (*seahorse.CheckResult, error) {
	if err := h.applyTx(ctx, store, tx); err != nil {
		return nil, err
	}
	return &seahorse.CheckResult{}, nil
}

func (h UpdateConfigurationHandler) Deliver(ctx seahorse.Context, store seahorse.KVStore, tx seahorse.Tx) (*seahorse.DeliverResult, error) {
	if err := h.applyTx(ctx, store, tx); err != nil {
		return nil, err
	}
	return &seahorse.DeliverResult{}, nil
}

func (h UpdateConfigurationHandler) applyTx(ctx seahorse.Context, store seahorse.KVStore, tx seahorse.Tx) error {
	// Work on a fresh copy so a failed transaction never leaks state into
	// the handler.
	config := reflect.New(reflect.TypeOf(h.config).Elem()).Interface().(OwnedConfig)

	switch err := Load(store, h.pkg, config); {
	case err == nil:
		owner := config.GetOwner()
		if owner == nil {
			return errors.Wrap(errors.ErrUnauthorized, "owner signature required")
		}
		if !h.auth.HasAddress(ctx, owner) {
			return errors.Wrap(errors.ErrUnauthorized, "owner did not sign transaction")
		}
	case errors.ErrNotFound.Is(err):
		if h.initAdmin == nil {
			return errors.Wrap(errors.ErrUnauthorized, "configuration does not exist and cannot be initialized")
		}
		admin, err := h.initAdmin(store)
		if err != nil {
			return errors.Wrap(err, "get init admin")
		}
		if !h.auth.HasAddress(ctx, admin) {
			return errors.Wrap(errors.ErrUnauthorized, "initialization admin signature required")
		}
	default:
		return errors.Wrap(err, "load current configuration")
	}

	payload, err := patchPayload(tx)
	if err != nil {
		return errors.Wrap(err, "cannot get message payload")
	}
	if err := patch(config, payload); err != nil {
		return errors.Wrap(err, "cannot patch config with message payload")
	}

	if err := Save(store, h.pkg, config); err != nil {
		return errors.Wrap(err, "cannot save updated config")
	}
	return nil
}

func patch(config OwnedConfig, payload OwnedConfig) error {
	pType := reflect.TypeOf(payload)
	cType := reflect.TypeOf(config)
	if pType != cType {
		return errors.Wrap(errors.ErrMsg, "config in message doesn't match store")
	}

	cval := reflect.ValueOf(config).Elem()
	pval := reflect.ValueOf(payload).Elem()

	for i := 0; i < cval.NumField(); i++ {
		if !cval.Field(i).CanSet() {
			continue
		}
		got := pval.Field(i)

		// Zero values do not update the original configuration.
		if isZero(got) {
			continue
		}

		cval.Field(i).Set(got)
	}

	return nil
}

// isZero returns true if given value represents a zero value of a given type.
func isZero(val reflect.Value) bool {
	zero := reflect.Zero(val.Type()).Interface()
	return reflect.DeepEqual(val.Interface(), zero)
}

func patchPayload(tx seahorse.Tx) (OwnedConfig, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	pm, ok := msg.(PatchMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInput, "invalid message container value: %T", msg)
	}
	payload := pm.GetPatch()
	if payload == nil || reflect.ValueOf(payload).IsNil() {
		return nil, errors.Wrap(errors.ErrState, "patch is required")
	}
	return payload, nil
}

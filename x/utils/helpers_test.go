package utils

import (
	seahorse "github.com/mtnPay/seahorse-swap"
)

// writeHandler writes the key, value pair and returns the error (may be nil)
type writeHandler struct {
	key   []byte
	value []byte
	err   error
}

var _ seahorse.Handler = writeHandler{}

func (h writeHandler) Check(ctx seahorse.Context, store seahorse.KVStore, tx seahorse.Tx) (*seahorse.CheckResult, error) {
	if err := store.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &seahorse.CheckResult{}, h.err
}

func (h writeHandler) Deliver(ctx seahorse.Context, store seahorse.KVStore, tx seahorse.Tx) (*seahorse.DeliverResult, error) {
	if err := store.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &seahorse.DeliverResult{}, h.err
}

// writeDecorator writes the key, value pair.
// either before or after calling the handlers
type writeDecorator struct {
	key   []byte
	value []byte
	after bool
}

var _ seahorse.Decorator = writeDecorator{}

func (d writeDecorator) Check(ctx seahorse.Context, store seahorse.KVStore, tx seahorse.Tx, next seahorse.Checker) (*seahorse.CheckResult, error) {
	if !d.after {
		_ = store.Set(d.key, d.value)
	}
	res, err := next.Check(ctx, store, tx)
	if d.after {
		_ = store.Set(d.key, d.value)
	}
	return res, err
}

func (d writeDecorator) Deliver(ctx seahorse.Context, store seahorse.KVStore, tx seahorse.Tx, next seahorse.Deliverer) (*seahorse.DeliverResult, error) {
	if !d.after {
		_ = store.Set(d.key, d.value)
	}
	res, err := next.Deliver(ctx, store, tx)
	if d.after {
		_ = store.Set(d.key, d.value)
	}
	return res, err
}

type panicHandler struct{}

var _ seahorse.Handler = panicHandler{}

func (p panicHandler) Check(ctx seahorse.Context, store seahorse.KVStore, tx seahorse.Tx) (*seahorse.CheckResult, error) {
	panic("check panic")
}

func (p panicHandler) Deliver(ctx seahorse.Context, store seahorse.KVStore, tx seahorse.Tx) (*seahorse.DeliverResult, error) {
	panic("deliver panic")
}

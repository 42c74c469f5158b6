package app

import (
	"context"
	"testing"

	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/seahorsetest"
	"github.com/mtnPay/seahorse-swap/store"
	"github.com/mtnPay/seahorse-swap/x/utils"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	c1 := &seahorsetest.Decorator{}
	c2 := &seahorsetest.Decorator{}
	var nilDecorator *seahorsetest.Decorator
	h := &seahorsetest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(),
		nilDecorator,
		utils.NewRecovery(),
		c2,
	).WithHandler(h)

	tx := &seahorsetest.Tx{Msg: &seahorsetest.Msg{RoutePath: "test/chain"}}
	_, err := stack.Check(context.Background(), store.MemStore(), tx)
	require.NoError(t, err)
	_, err = stack.Deliver(context.Background(), store.MemStore(), tx)
	require.NoError(t, err)

	require.Equal(t, 2, c1.CallCount())
	require.Equal(t, 2, c2.CallCount())
	require.Equal(t, 2, h.CallCount())

	// A failing decorator stops the chain.
	c1.DeliverErr = errors.ErrUnauthorized
	_, err = stack.Deliver(context.Background(), store.MemStore(), tx)
	require.True(t, errors.ErrUnauthorized.Is(err))
	require.Equal(t, 2, c2.CallCount())
	require.Equal(t, 2, h.CallCount())
}

type panicHandler struct{}

func (panicHandler) Check(seahorse.Context, seahorse.KVStore, seahorse.Tx) (*seahorse.CheckResult, error) {
	panic("check")
}

func (panicHandler) Deliver(seahorse.Context, seahorse.KVStore, seahorse.Tx) (*seahorse.DeliverResult, error) {
	panic("deliver")
}

func TestChainRecoversPanics(t *testing.T) {
	stack := ChainDecorators(utils.NewRecovery()).WithHandler(panicHandler{})

	tx := &seahorsetest.Tx{Msg: &seahorsetest.Msg{RoutePath: "test/panic"}}
	_, err := stack.Check(context.Background(), store.MemStore(), tx)
	require.True(t, errors.ErrPanic.Is(err))
	_, err = stack.Deliver(context.Background(), store.MemStore(), tx)
	require.True(t, errors.ErrPanic.Is(err))
}

func TestChainInitializers(t *testing.T) {
	var calls []string
	record := func(name string, err error) seahorse.Initializer {
		return initFunc(func(seahorse.Options, seahorse.KVStore) error {
			calls = append(calls, name)
			return err
		})
	}

	init := ChainInitializers(record("a", nil), record("b", errors.ErrState), record("c", nil))
	err := init.FromGenesis(seahorse.Options{}, store.MemStore())
	require.True(t, errors.ErrState.Is(err))
	require.Equal(t, []string{"a", "b"}, calls)
}

type initFunc func(seahorse.Options, seahorse.KVStore) error

func (fn initFunc) FromGenesis(opts seahorse.Options, db seahorse.KVStore) error {
	return fn(opts, db)
}

package app

import (
	"context"
	"encoding/json"
	"testing"

	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/orm"
	"github.com/mtnPay/seahorse-swap/seahorsetest"
	"github.com/mtnPay/seahorse-swap/store/iavl"
	"github.com/mtnPay/seahorse-swap/x/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
)

// pathDecoder uses the raw transaction bytes as the message path.
func pathDecoder(raw []byte) (seahorse.Tx, error) {
	if len(raw) == 0 {
		return nil, errors.Wrap(errors.ErrInput, "empty transaction")
	}
	return &seahorsetest.Tx{Msg: &seahorsetest.Msg{RoutePath: string(raw)}}, nil
}

func panicDecoder([]byte) (seahorse.Tx, error) {
	panic("cannot decode")
}

// chainIDHandler fails unless the context carries the chain id.
type chainIDHandler struct{}

func (chainIDHandler) Check(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*seahorse.CheckResult, error) {
	if seahorse.GetChainID(ctx) == "" {
		return nil, errors.Wrap(errors.ErrState, "no chain id")
	}
	return &seahorse.CheckResult{}, nil
}

func (h chainIDHandler) Deliver(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*seahorse.DeliverResult, error) {
	if _, err := h.Check(ctx, db, tx); err != nil {
		return nil, err
	}
	return &seahorse.DeliverResult{}, nil
}

type genesisWriter struct{}

func (genesisWriter) FromGenesis(opts seahorse.Options, db seahorse.KVStore) error {
	var value string
	if err := opts.ReadOptions("value", &value); err != nil {
		return err
	}
	return db.Set([]byte("genesis"), []byte(value))
}

func newTestApp(t *testing.T, decoder seahorse.TxDecoder) (BaseApp, *seahorsetest.Handler) {
	t.Helper()

	write := &seahorsetest.Handler{
		Write:         &seahorse.Model{Key: []byte("written"), Value: []byte("yes")},
		DeliverResult: seahorse.DeliverResult{Data: []byte("ok")},
	}
	fail := &seahorsetest.Handler{
		Write:      &seahorse.Model{Key: []byte("failed"), Value: []byte("yes")},
		DeliverErr: errors.ErrState,
	}
	r := NewRouter()
	r.Handle("test/write", write)
	r.Handle("test/fail", fail)
	r.Handle("test/chain", chainIDHandler{})

	qr := seahorse.NewQueryRouter()
	orm.RegisterQuery(qr)

	handler := ChainDecorators(
		utils.NewRecovery(),
		utils.NewSavepoint().OnDeliver(),
	).WithHandler(r)

	store := NewStoreApp("test-app", iavl.MockCommitStore(), qr, context.Background()).
		WithInit(ChainInitializers(genesisWriter{}))
	return NewBaseApp(store, decoder, handler, false), write
}

func query(t *testing.T, app abci.Application, key string) []byte {
	t.Helper()
	res := app.Query(abci.RequestQuery{Path: "/", Data: []byte(key)})
	require.Equal(t, uint32(0), res.Code, res.Log)
	val, err := NewABCIStore(app).Get([]byte(key))
	require.NoError(t, err)
	return val
}

func TestAppLifecycle(t *testing.T) {
	app, write := newTestApp(t, pathDecoder)

	state, err := json.Marshal(map[string]string{"value": "hello"})
	require.NoError(t, err)
	app.InitChain(abci.RequestInitChain{ChainId: "test-chain", AppStateBytes: state})
	assert.Equal(t, "test-chain", app.GetChainID())

	// A chain can only be initialized once.
	assert.Panics(t, func() {
		app.InitChain(abci.RequestInitChain{ChainId: "other-chain", AppStateBytes: state})
	})

	app.BeginBlock(abci.RequestBeginBlock{})
	check := app.CheckTx([]byte("test/write"))
	assert.Equal(t, uint32(0), check.Code, check.Log)

	deliver := app.DeliverTx([]byte("test/write"))
	assert.Equal(t, uint32(0), deliver.Code, deliver.Log)
	assert.Equal(t, []byte("ok"), deliver.Data)
	assert.Equal(t, 2, write.CallCount())

	deliver = app.DeliverTx([]byte("test/fail"))
	assert.Equal(t, errors.ErrState.ABCICode(), deliver.Code)

	deliver = app.DeliverTx([]byte("test/unknown"))
	assert.Equal(t, errors.ErrNotFound.ABCICode(), deliver.Code)

	deliver = app.DeliverTx(nil)
	assert.Equal(t, errors.ErrInput.ABCICode(), deliver.Code)

	// Nothing is visible until committed.
	assert.Nil(t, query(t, app, "written"))

	commit := app.Commit()
	assert.NotEmpty(t, commit.Data)

	assert.Equal(t, []byte("hello"), query(t, app, "genesis"))
	assert.Equal(t, []byte("yes"), query(t, app, "written"))
	// The savepoint discarded the write of the failing handler.
	assert.Nil(t, query(t, app, "failed"))

	info := app.Info(abci.RequestInfo{})
	assert.Equal(t, int64(1), info.LastBlockHeight)
	assert.Equal(t, commit.Data, info.LastBlockAppHash)
	assert.Equal(t, "test-app", info.Data)
}

func TestCheckTxBeforeFirstBlock(t *testing.T) {
	app, _ := newTestApp(t, pathDecoder)
	state, err := json.Marshal(map[string]string{"value": "hello"})
	require.NoError(t, err)
	app.InitChain(abci.RequestInitChain{ChainId: "test-chain", AppStateBytes: state})

	check := app.CheckTx([]byte("test/chain"))
	assert.Equal(t, uint32(0), check.Code, check.Log)

	app.BeginBlock(abci.RequestBeginBlock{})
	check = app.CheckTx([]byte("test/chain"))
	assert.Equal(t, uint32(0), check.Code, check.Log)
}

func TestAppDecoderPanic(t *testing.T) {
	app, _ := newTestApp(t, panicDecoder)
	res := app.DeliverTx([]byte("anything"))
	assert.Equal(t, errors.ErrPanic.ABCICode(), res.Code)
	check := app.CheckTx([]byte("anything"))
	assert.Equal(t, errors.ErrPanic.ABCICode(), check.Code)
}

func TestAppInitChainRequiresState(t *testing.T) {
	app, _ := newTestApp(t, pathDecoder)
	assert.Panics(t, func() {
		app.InitChain(abci.RequestInitChain{ChainId: "test-chain"})
	})
	assert.Panics(t, func() {
		app.InitChain(abci.RequestInitChain{ChainId: "bad chain id!", AppStateBytes: []byte(`{}`)})
	})
}

func TestUnknownQueryPath(t *testing.T) {
	app, _ := newTestApp(t, pathDecoder)
	res := app.Query(abci.RequestQuery{Path: "/nothing"})
	assert.Equal(t, errors.ErrNotFound.ABCICode(), res.Code)
}

func TestJoinResults(t *testing.T) {
	models := []seahorse.Model{
		seahorse.Pair([]byte("a"), []byte("1")),
		seahorse.Pair([]byte("b"), []byte("2")),
	}
	joined, err := JoinResults(ResultsFromKeys(models), ResultsFromValues(models))
	require.NoError(t, err)
	assert.Equal(t, models, joined)

	_, err = JoinResults(ResultsFromKeys(models), ResultsFromValues(models[:1]))
	assert.True(t, errors.ErrInput.Is(err))
}

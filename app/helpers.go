package app

import (
	"github.com/gogo/protobuf/proto"
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/store"
	abci "github.com/tendermint/tendermint/abci/types"
)

// Querier is the query half of abci.Application. Both a local application
// and a remote node client implement it.
type Querier interface {
	Query(abci.RequestQuery) abci.ResponseQuery
}

// ABCIStore exposes the abci.Query interface as a ReadOnlyKVStore
type ABCIStore struct {
	app Querier
}

var _ seahorse.ReadOnlyKVStore = (*ABCIStore)(nil)

func NewABCIStore(app Querier) *ABCIStore {
	return &ABCIStore{app: app}
}

// Get will query for exactly one value over the abci store.
// This can be wrapped with a bucket to reuse key/index/parse logic
func (a *ABCIStore) Get(key []byte) ([]byte, error) {
	query := a.app.Query(abci.RequestQuery{
		Path: "/",
		Data: key,
	})
	if query.Code != 0 {
		return nil, errors.Wrap(errors.ErrDatabase, query.Log)
	}
	var value ResultSet
	if err := proto.Unmarshal(query.Value, &value); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "unmarshal result set: %s", err)
	}
	if len(value.Results) == 0 {
		return nil, nil
	}
	return value.Results[0], nil
}

// Has returns true if the given key in in the abci app store
func (a *ABCIStore) Has(key []byte) (bool, error) {
	val, err := a.Get(key)
	return len(val) > 0, err
}

// Iterator attempts to do a range iteration over the store,
// We only support prefix queries in the abci server for now.
// This client only supports listing everything...
func (a *ABCIStore) Iterator(start, end []byte) (seahorse.Iterator, error) {
	if start != nil || end != nil {
		return nil, errors.Wrap(errors.ErrInput, "iterator only implemented for entire range")
	}

	query := a.app.Query(abci.RequestQuery{
		Path: "/?" + seahorse.PrefixQueryMod,
		Data: nil,
	})
	if query.Code != 0 {
		return nil, errors.Wrap(errors.ErrDatabase, query.Log)
	}
	models, err := toModels(query.Key, query.Value)
	if err != nil {
		return nil, errors.Wrap(err, "cannot convert to model")
	}
	return store.NewSliceIterator(models), nil
}

func (a *ABCIStore) ReverseIterator(start, end []byte) (seahorse.Iterator, error) {
	return nil, errors.Wrap(errors.ErrHuman, "reverse iteration is not supported over abci")
}

func toModels(keys, values []byte) ([]seahorse.Model, error) {
	var k, v ResultSet
	if err := proto.Unmarshal(keys, &k); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "cannot unmarshal keys: %s", err)
	}
	if err := proto.Unmarshal(values, &v); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "cannot unmarshal values: %s", err)
	}
	return JoinResults(&k, &v)
}

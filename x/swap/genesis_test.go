package swap

import (
	"context"
	"encoding/json"
	"testing"

	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/seahorsetest"
	"github.com/mtnPay/seahorse-swap/seahorsetest/assert"
	"github.com/mtnPay/seahorse-swap/store"
)

func genesisOptions(t testing.TB, conf map[string]interface{}) seahorse.Options {
	t.Helper()
	raw, err := json.Marshal(map[string]interface{}{
		"conf": map[string]interface{}{"swap": conf},
	})
	assert.Nil(t, err)
	var opts seahorse.Options
	assert.Nil(t, json.Unmarshal(raw, &opts))
	return opts
}

func TestGenesis(t *testing.T) {
	owner := seahorsetest.NewAddress()
	opts := genesisOptions(t, map[string]interface{}{
		"metadata": map[string]int{"schema": 1},
		"owner":    owner,
		"policy":   "fixed_quantity",
		"quantity": 3,
	})

	db := store.MemStore()
	assert.Nil(t, Initializer{}.FromGenesis(opts, db))

	conf, err := loadConf(db)
	assert.Nil(t, err)
	assert.Equal(t, owner, conf.Owner)
	assert.Equal(t, PolicyFixedQuantity, conf.Policy)
	assert.Equal(t, int64(3), conf.Quantity)
}

func TestGenesisRejectsZeroQuantity(t *testing.T) {
	opts := genesisOptions(t, map[string]interface{}{
		"metadata": map[string]int{"schema": 1},
		"owner":    seahorsetest.NewAddress(),
		"policy":   "exact_unit",
	})
	err := Initializer{}.FromGenesis(opts, store.MemStore())
	assert.IsErr(t, errors.ErrAmount, err)
}

func TestGenesisRejectsExactUnitQuantity(t *testing.T) {
	opts := genesisOptions(t, map[string]interface{}{
		"metadata": map[string]int{"schema": 1},
		"owner":    seahorsetest.NewAddress(),
		"policy":   "exact_unit",
		"quantity": 2,
	})
	err := Initializer{}.FromGenesis(opts, store.MemStore())
	assert.IsErr(t, errors.ErrAmount, err)
}

func TestUpdateConfiguration(t *testing.T) {
	f := newFixture(t, PolicyExactUnit)
	conf, err := loadConf(f.db)
	assert.Nil(t, err)

	msg := &UpdateConfigurationMsg{
		Metadata: &seahorse.Metadata{Schema: 1},
		Patch: &Configuration{
			Metadata: &seahorse.Metadata{Schema: 1},
			Policy:   PolicyFixedQuantity,
		},
	}
	tx := &seahorsetest.Tx{Msg: msg}

	h := NewConfigHandler(signedBy(f.alice))
	_, err = h.Deliver(context.Background(), f.db, tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	h = NewConfigHandler(signedBy(conf.Owner))
	_, err = h.Deliver(context.Background(), f.db, tx)
	assert.Nil(t, err)

	updated, err := loadConf(f.db)
	assert.Nil(t, err)
	assert.Equal(t, PolicyFixedQuantity, updated.Policy)
	assert.Equal(t, int64(1), updated.Quantity)
	assert.Equal(t, conf.Owner, updated.Owner)

	// A single unit policy cannot trade more than one unit.
	msg.Patch = &Configuration{
		Metadata: &seahorse.Metadata{Schema: 1},
		Policy:   PolicyExactUnit,
		Quantity: 5,
	}
	_, err = h.Deliver(context.Background(), f.db, tx)
	assert.IsErr(t, errors.ErrAmount, err)
}

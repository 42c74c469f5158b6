package server

import (
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/store"
)

// ValidateGenesis runs the initializer against the app_state of each
// genesis file, without persisting anything.
func ValidateGenesis(ini seahorse.Initializer, genesisPaths []string) error {
	for _, path := range genesisPaths {
		if err := validateGenesis(ini, path); err != nil {
			return errors.Wrap(err, path)
		}
	}
	return nil
}

func validateGenesis(ini seahorse.Initializer, genesisPath string) error {
	doc, err := readGenesis(genesisPath)
	if err != nil {
		return err
	}
	var state seahorse.Options
	if err := seahorse.Options(doc).ReadOptions(appStateKey, &state); err != nil {
		return err
	}
	if len(state) == 0 {
		return errors.Wrapf(errors.ErrEmpty, "no %s", appStateKey)
	}

	// Use in memory store because we want to discard the result.
	db := store.MemStore()
	if err := ini.FromGenesis(state, db); err != nil {
		return errors.Wrap(err, "cannot initialize from genesis")
	}
	return nil
}

package app

import (
	seahorse "github.com/mtnPay/seahorse-swap"
)

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...seahorse.Initializer) seahorse.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []seahorse.Initializer
}

// FromGenesis will pass opts to all Initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts seahorse.Options, kv seahorse.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}

package swap

import (
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/gconf"
)

// Initializer loads the swap configuration from the genesis file.
type Initializer struct{}

var _ seahorse.Initializer = Initializer{}

// FromGenesis stores opts["conf"]["swap"] as the swap configuration. The
// configuration is required, every handler depends on it.
func (Initializer) FromGenesis(opts seahorse.Options, db seahorse.KVStore) error {
	return gconf.InitConfig(db, opts, configPkg, &Configuration{})
}

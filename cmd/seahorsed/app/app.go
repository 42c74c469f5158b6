/*
Package app links together all the various components
to construct the seahorsed app.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/app"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/orm"
	"github.com/mtnPay/seahorse-swap/store/iavl"
	"github.com/mtnPay/seahorse-swap/x"
	"github.com/mtnPay/seahorse-swap/x/sigs"
	"github.com/mtnPay/seahorse-swap/x/swap"
	"github.com/mtnPay/seahorse-swap/x/token"
	"github.com/mtnPay/seahorse-swap/x/utils"
)

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewActionTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		// settling an escrow does not require any signature
		sigs.NewDecorator().AllowMissingSigs(),
		// on DeliverTx, bad tx will increment nonce
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching to the token and swap handlers.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	tokens := token.NewController(token.NewBucket())
	token.RegisterRoutes(r, authFn, tokens)
	swap.RegisterRoutes(r, authFn, tokens)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/", "/auth", "/tokens", "/escrows" and "/settlements"
func QueryRouter() seahorse.QueryRouter {
	r := seahorse.NewQueryRouter()
	for _, register := range []func(seahorse.QueryRouter){
		orm.RegisterQuery,
		sigs.RegisterQuery,
		token.RegisterQuery,
		swap.RegisterQuery,
	} {
		register(r)
	}
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() seahorse.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn))
}

// Initializers returns the genesis initialization of all extensions.
func Initializers() seahorse.Initializer {
	return app.ChainInitializers(
		token.Initializer{},
		swap.Initializer{},
	)
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h seahorse.Handler,
	tx seahorse.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {

	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, errors.Wrap(err, "cannot create database instance")
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, tx, h, debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (seahorse.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "invalid database name: %s", path)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name)
}

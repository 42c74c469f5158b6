package app

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"

	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/crypto"
	"github.com/mtnPay/seahorse-swap/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// GenInitOptions will produce the genesis options of a development chain:
// one address owns both configurations and may mint tokens. The address
// can be passed as the first argument, otherwise a new key is generated
// and printed. The settlement policy can be passed as the second
// argument.
func GenInitOptions(args []string) (json.RawMessage, error) {
	var addr seahorse.Address
	if len(args) > 0 {
		a, err := seahorse.ParseAddress(args[0])
		if err != nil {
			return nil, errors.Wrap(err, "address")
		}
		addr = a
	} else {
		a, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = a
		fmt.Println(keys)
	}
	if err := addr.Validate(); err != nil {
		return nil, errors.Wrap(err, "address")
	}

	policy := "exact_unit"
	if len(args) > 1 {
		policy = args[1]
	}

	opts := map[string]interface{}{
		"conf": map[string]interface{}{
			"token": map[string]interface{}{
				"metadata": map[string]interface{}{"schema": 1},
				"owner":    addr,
				"minter":   addr,
			},
			"swap": map[string]interface{}{
				"metadata": map[string]interface{}{"schema": 1},
				"owner":    addr,
				"policy":   policy,
				"quantity": 1,
			},
		},
		"token": []interface{}{},
	}
	raw, err := json.MarshalIndent(opts, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return raw, nil
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "seahorse.db")
	}

	application, err := Application("seahorsed", Stack(), TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(Initializers())

	// set the logger and return
	application.WithLogger(logger)
	return application, nil
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key,
// along with a json representation of the keys.
func GenerateCoinKey() (seahorse.Address, string, error) {
	return coinKey(crypto.GenPrivKeyEd25519())
}

// DeriveCoinKey is like GenerateCoinKey, but the key is derived from a hex
// encoded wallet seed. An empty path means the default one.
func DeriveCoinKey(hexSeed, path string) (seahorse.Address, string, error) {
	seed, err := hex.DecodeString(hexSeed)
	if err != nil {
		return nil, "", errors.Wrapf(errors.ErrInput, "seed: %s", err)
	}
	if path == "" {
		path = crypto.DefaultDerivationPath
	}
	privKey, err := crypto.DerivePrivateKey(seed, path)
	if err != nil {
		return nil, "", err
	}
	return coinKey(privKey)
}

// MnemonicCoinKey is like DeriveCoinKey, but the wallet is described by a
// BIP-0039 mnemonic.
func MnemonicCoinKey(mnemonic, path string) (seahorse.Address, string, error) {
	if path == "" {
		path = crypto.DefaultDerivationPath
	}
	privKey, err := crypto.KeyFromMnemonic(mnemonic, "", path)
	if err != nil {
		return nil, "", err
	}
	return coinKey(privKey)
}

func coinKey(privKey *crypto.PrivateKey) (seahorse.Address, string, error) {
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrInput, err.Error())
	}
	return addr, string(keys), nil
}

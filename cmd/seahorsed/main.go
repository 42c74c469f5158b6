package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/cmd/seahorsed/app"
	"github.com/mtnPay/seahorse-swap/commands/server"
	"github.com/mtnPay/seahorse-swap/crypto"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	flagHome = "home"
	varHome  *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".seahorse")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")

	flag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Println("seahorsed")
	fmt.Println("          Two party asset swap node")
	fmt.Println("")
	fmt.Println("help      Print this message")
	fmt.Println("init      Initialize app options in genesis file")
	fmt.Println("keys      Print a new wallet, or the key of a mnemonic or hex seed")
	fmt.Println("validate  Check the app options of genesis files")
	fmt.Println("start     Run the abci server")
	fmt.Println("version   Print the app version")
	fmt.Println(`
  -home string
        directory to store files under (default "$HOME/.seahorse")`)
}

func main() {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
		With("module", "seahorse")

	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	var err error
	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(app.GenInitOptions, logger, *varHome, rest)
	case "keys":
		err = printKeys(rest)
	case "validate":
		paths := rest
		if len(paths) == 0 {
			paths = []string{server.GenesisFile(*varHome)}
		}
		err = server.ValidateGenesis(app.Initializers(), paths)
	case "start":
		err = server.StartCmd(app.GenerateApp, logger, *varHome, rest)
	case "version":
		fmt.Println(seahorse.Version())
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
}

// printKeys prints a key of a new wallet, or of the wallet given as a
// mnemonic or a hex seed. An optional second argument is the derivation path.
func printKeys(args []string) error {
	var path string
	if len(args) > 1 {
		path = args[1]
	}

	var (
		addr seahorse.Address
		keys string
		err  error
	)
	switch {
	case len(args) == 0:
		var mnemonic string
		if mnemonic, err = crypto.GenerateMnemonic(); err != nil {
			return err
		}
		fmt.Println(mnemonic)
		addr, keys, err = app.MnemonicCoinKey(mnemonic, "")
	case strings.Contains(args[0], " "):
		addr, keys, err = app.MnemonicCoinKey(args[0], path)
	default:
		addr, keys, err = app.DeriveCoinKey(args[0], path)
	}
	if err != nil {
		return err
	}
	fmt.Println(addr)
	fmt.Println(keys)
	return nil
}

package server

import (
	"encoding/json"
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	appStateKey = "app_state"
	dirConfig   = "config"
	genesisName = "genesis.json"
	flagForce   = "i"
)

// GenOptions can parse command-line and flag to
// generate default app_state for the genesis file.
// This is application-specific
type GenOptions func(args []string) (json.RawMessage, error)

// GenesisFile returns the path of the genesis file under the home directory.
func GenesisFile(home string) string {
	return filepath.Join(home, dirConfig, genesisName)
}

// InitCmd adds the app_state generated by gen to the genesis file that
// `tendermint init` created in the home directory.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	force := fs.Bool(flagForce, false, "overwrite an existing app_state")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	genFile := GenesisFile(home)
	if !fileExists(genFile) {
		return errors.Wrapf(errors.ErrNotFound, "genesis file %s, run `tendermint init` first", genFile)
	}
	doc, err := readGenesis(genFile)
	if err != nil {
		return err
	}
	if _, ok := doc[appStateKey]; ok && !*force {
		return errors.Wrapf(errors.ErrDuplicate, "%s already set, use -%s to overwrite", appStateKey, flagForce)
	}

	options, err := gen(fs.Args())
	if err != nil {
		return errors.Wrap(err, "generate app_state")
	}
	doc[appStateKey] = options
	if err := writeGenesis(genFile, doc); err != nil {
		return err
	}
	logger.Info("App state written", "path", genFile)
	return nil
}

func fileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !os.IsNotExist(err)
}

// genesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type genesisDoc map[string]json.RawMessage

func readGenesis(filename string) (genesisDoc, error) {
	bz, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	var doc genesisDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot parse %s: %s", filename, err)
	}
	return doc, nil
}

func writeGenesis(filename string, doc genesisDoc) error {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := ioutil.WriteFile(filename, out, 0600); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

package app

import (
	"encoding/json"
	"testing"

	"github.com/gogo/protobuf/proto"
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/app"
	"github.com/mtnPay/seahorse-swap/crypto"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/x/sigs"
	"github.com/mtnPay/seahorse-swap/x/swap"
	"github.com/mtnPay/seahorse-swap/x/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const chainID = "seahorse-test"

type user struct {
	key *crypto.PrivateKey
	seq int64
}

func newUser() *user {
	return &user{key: crypto.GenPrivKeyEd25519()}
}

func (u *user) addr() seahorse.Address {
	return u.key.PublicKey().Address()
}

func (u *user) account(t testing.TB, ticker string) seahorse.Address {
	t.Helper()
	addr, err := token.AssociatedAddress(u.addr(), ticker)
	require.NoError(t, err)
	return addr
}

// signedTx serializes msg signed by all given users, in order.
func signedTx(t testing.TB, msg seahorse.Msg, signers ...*user) []byte {
	t.Helper()
	tx, err := NewTx(msg)
	require.NoError(t, err)
	for _, u := range signers {
		sig, err := sigs.SignTx(u.key, tx, chainID, u.seq)
		require.NoError(t, err)
		tx.Signatures = append(tx.Signatures, sig)
		u.seq++
	}
	raw, err := proto.Marshal(tx)
	require.NoError(t, err)
	return raw
}

func newTestApp(t testing.TB, admin, alice, bob *user) abci.Application {
	t.Helper()
	application, err := GenerateApp("", log.NewNopLogger(), true)
	require.NoError(t, err)

	genesis := map[string]interface{}{
		"conf": map[string]interface{}{
			"token": map[string]interface{}{
				"metadata": map[string]int{"schema": 1},
				"owner":    admin.addr(),
				"minter":   admin.addr(),
			},
			"swap": map[string]interface{}{
				"metadata": map[string]int{"schema": 1},
				"owner":    admin.addr(),
				"policy":   "exact_unit",
				"quantity": 1,
			},
		},
		"token": []interface{}{
			map[string]interface{}{"owner": alice.addr(), "amount": "1 NFTX"},
			map[string]interface{}{"owner": alice.addr(), "amount": "0 NFTY"},
			map[string]interface{}{"owner": bob.addr(), "amount": "1 NFTY"},
			map[string]interface{}{"owner": bob.addr(), "amount": "0 NFTX"},
		},
	}
	state, err := json.Marshal(genesis)
	require.NoError(t, err)

	application.InitChain(abci.RequestInitChain{ChainId: chainID, AppStateBytes: state})
	application.Commit()
	return application
}

func deliver(t testing.TB, application abci.Application, height int64, txs ...[]byte) []abci.ResponseDeliverTx {
	t.Helper()
	application.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{ChainID: chainID, Height: height}})
	var res []abci.ResponseDeliverTx
	for _, tx := range txs {
		res = append(res, application.DeliverTx(tx))
	}
	application.EndBlock(abci.RequestEndBlock{Height: height})
	application.Commit()
	return res
}

func balance(t testing.TB, application abci.Application, addr seahorse.Address) int64 {
	t.Helper()
	res := application.Query(abci.RequestQuery{Path: "/tokens", Data: addr})
	require.Equal(t, uint32(0), res.Code, res.Log)
	var acc token.Account
	require.NoError(t, app.UnmarshalOneResult(res.Value, &acc))
	require.NotNil(t, acc.Amount, "account %s not found", addr)
	return acc.Amount.Whole
}

func TestSwapOverABCI(t *testing.T) {
	admin, alice, bob := newUser(), newUser(), newUser()
	application := newTestApp(t, admin, alice, bob)

	aliceHolder := alice.account(t, "NFTX")
	bobHolder := bob.account(t, "NFTY")
	escrow, bump, err := swap.EscrowAddress(aliceHolder, bobHolder)
	require.NoError(t, err)
	offeringCustody, err := swap.CustodyAddress(swap.SideOffering, aliceHolder, bobHolder)
	require.NoError(t, err)
	requestingCustody, err := swap.CustodyAddress(swap.SideRequesting, aliceHolder, bobHolder)
	require.NoError(t, err)

	initTx := signedTx(t, &swap.InitMsg{
		Metadata:             &seahorse.Metadata{Schema: 1},
		OfferingParty:        alice.addr(),
		RequestingParty:      bob.addr(),
		OfferingAssetClass:   "NFTX",
		RequestingAssetClass: "NFTY",
		OfferingHolder:       aliceHolder,
		RequestingHolder:     bobHolder,
	}, alice)
	check := application.CheckTx(initTx)
	require.Equal(t, uint32(0), check.Code, check.Log)

	res := deliver(t, application, 1, initTx)
	require.Equal(t, uint32(0), res[0].Code, res[0].Log)
	assert.Equal(t, []byte(escrow), res[0].Data)

	fund := func(side swap.Side, holder, custody seahorse.Address) *swap.FundMsg {
		return &swap.FundMsg{
			Metadata: &seahorse.Metadata{Schema: 1},
			Side:     side,
			Escrow:   escrow,
			Holder:   holder,
			Custody:  custody,
		}
	}
	res = deliver(t, application, 2,
		signedTx(t, fund(swap.SideOffering, aliceHolder, offeringCustody), alice),
		signedTx(t, fund(swap.SideRequesting, bobHolder, requestingCustody), bob),
	)
	for _, r := range res {
		require.Equal(t, uint32(0), r.Code, r.Log)
	}
	assert.Equal(t, int64(1), balance(t, application, offeringCustody))
	assert.Equal(t, int64(1), balance(t, application, requestingCustody))

	crank := &swap.CrankMsg{
		Metadata:              &seahorse.Metadata{Schema: 1},
		Bump:                  uint32(bump),
		Escrow:                escrow,
		OfferingHolder:        aliceHolder,
		RequestingHolder:      bobHolder,
		OfferingCustody:       offeringCustody,
		RequestingCustody:     requestingCustody,
		OfferingDestination:   bob.account(t, "NFTX"),
		RequestingDestination: alice.account(t, "NFTY"),
	}
	// Nobody needs to sign the settlement.
	res = deliver(t, application, 3, signedTx(t, crank))
	require.Equal(t, uint32(0), res[0].Code, res[0].Log)

	assert.Equal(t, int64(1), balance(t, application, alice.account(t, "NFTY")))
	assert.Equal(t, int64(1), balance(t, application, bob.account(t, "NFTX")))
	assert.Equal(t, int64(0), balance(t, application, offeringCustody))
	assert.Equal(t, int64(0), balance(t, application, requestingCustody))

	// A settled escrow rejects everything.
	res = deliver(t, application, 4, signedTx(t, crank))
	assert.Equal(t, errors.ErrState.ABCICode(), res[0].Code)
}

func TestRejectsUnsignedFunding(t *testing.T) {
	admin, alice, bob := newUser(), newUser(), newUser()
	application := newTestApp(t, admin, alice, bob)

	aliceHolder := alice.account(t, "NFTX")
	bobHolder := bob.account(t, "NFTY")
	initTx := signedTx(t, &swap.InitMsg{
		Metadata:             &seahorse.Metadata{Schema: 1},
		OfferingParty:        alice.addr(),
		RequestingParty:      bob.addr(),
		OfferingAssetClass:   "NFTX",
		RequestingAssetClass: "NFTY",
		OfferingHolder:       aliceHolder,
		RequestingHolder:     bobHolder,
	}, alice)
	escrow, _, err := swap.EscrowAddress(aliceHolder, bobHolder)
	require.NoError(t, err)
	custody, err := swap.CustodyAddress(swap.SideOffering, aliceHolder, bobHolder)
	require.NoError(t, err)

	fund := &swap.FundMsg{
		Metadata: &seahorse.Metadata{Schema: 1},
		Side:     swap.SideOffering,
		Escrow:   escrow,
		Holder:   aliceHolder,
		Custody:  custody,
	}
	res := deliver(t, application, 1, initTx, signedTx(t, fund), signedTx(t, fund, bob))
	require.Equal(t, uint32(0), res[0].Code, res[0].Log)
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), res[1].Code)
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), res[2].Code)
	assert.Equal(t, int64(1), balance(t, application, aliceHolder))
	assert.Equal(t, int64(0), balance(t, application, custody))
}

func TestTxRoundTrip(t *testing.T) {
	msg := &token.CreateAccountMsg{
		Metadata: &seahorse.Metadata{Schema: 1},
		Owner:    newUser().addr(),
		Ticker:   "NFTX",
	}
	raw := signedTx(t, msg, newUser())

	tx, err := TxDecoder(raw)
	require.NoError(t, err)
	got, err := tx.GetMsg()
	require.NoError(t, err)
	assert.Equal(t, msg, got)
	assert.Len(t, tx.(*Tx).GetSignatures(), 1)

	_, err = (&Tx{MsgPath: "nope/nope"}).GetMsg()
	assert.True(t, errors.ErrMsg.Is(err))

	_, err = TxDecoder([]byte{0xff, 0xff})
	assert.True(t, errors.ErrInput.Is(err))
}

func TestGenInitOptions(t *testing.T) {
	admin := newUser()
	raw, err := GenInitOptions([]string{admin.addr().String(), "fixed_quantity"})
	require.NoError(t, err)

	var opts seahorse.Options
	require.NoError(t, json.Unmarshal(raw, &opts))
	require.NoError(t, Initializers().FromGenesis(opts, app.NewCommitStore(mustCommitStore(t)).DeliverStore()))

	_, err = GenInitOptions([]string{"zz"})
	assert.Error(t, err)
}

func mustCommitStore(t testing.TB) seahorse.CommitKVStore {
	t.Helper()
	db, err := CommitKVStore("")
	require.NoError(t, err)
	return db
}

func TestDeriveCoinKey(t *testing.T) {
	seed := "d34c1970ae90acf3405f2d99dcaca16d0c7db379f4beafcfdf667b9d69ce350d"

	a1, keys, err := DeriveCoinKey(seed, "")
	require.NoError(t, err)
	assert.Contains(t, keys, "pub_key")
	a2, _, err := DeriveCoinKey(seed, crypto.DefaultDerivationPath)
	require.NoError(t, err)
	assert.Equal(t, a1, a2)

	_, _, err = DeriveCoinKey("not hex", "")
	assert.True(t, errors.ErrInput.Is(err))
	_, _, err = DeriveCoinKey(seed, "m/0/1")
	assert.True(t, errors.ErrInput.Is(err))
}

func TestMnemonicCoinKey(t *testing.T) {
	mnemonic, err := crypto.GenerateMnemonic()
	require.NoError(t, err)
	a1, _, err := MnemonicCoinKey(mnemonic, "")
	require.NoError(t, err)
	a2, _, err := MnemonicCoinKey(mnemonic, crypto.DefaultDerivationPath)
	require.NoError(t, err)
	assert.Equal(t, a1, a2)

	_, _, err = MnemonicCoinKey("abandon abandon", "")
	assert.True(t, errors.ErrInput.Is(err))
}

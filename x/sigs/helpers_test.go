package sigs

import (
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/seahorsetest"
)

//----- mock objects for testing...

type StdTx struct {
	seahorsetest.Tx
	Payload    []byte
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ seahorse.Tx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	return &StdTx{
		Tx:      seahorsetest.Tx{Msg: &seahorsetest.Msg{RoutePath: "sigs/test"}},
		Payload: payload,
	}
}

func (tx *StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx *StdTx) GetSignBytes() ([]byte, error) {
	return tx.Payload, nil
}

// SigCheckHandler stores the seen signers on each call
type SigCheckHandler struct {
	Signers []seahorse.Address
}

var _ seahorse.Handler = (*SigCheckHandler)(nil)

func (s *SigCheckHandler) Check(ctx seahorse.Context, store seahorse.KVStore, tx seahorse.Tx) (*seahorse.CheckResult, error) {
	s.Signers = Authenticate{}.GetSigners(ctx)
	return &seahorse.CheckResult{}, nil
}

func (s *SigCheckHandler) Deliver(ctx seahorse.Context, store seahorse.KVStore, tx seahorse.Tx) (*seahorse.DeliverResult, error) {
	s.Signers = Authenticate{}.GetSigners(ctx)
	return &seahorse.DeliverResult{}, nil
}

package app

import (
	"github.com/gogo/protobuf/proto"
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/x/sigs"
	"github.com/mtnPay/seahorse-swap/x/swap"
	"github.com/mtnPay/seahorse-swap/x/token"
)

// Tx carries a single message together with the signatures authorizing
// it. The message is stored serialized, next to the path that selects its
// type.
type Tx struct {
	Signatures []*sigs.StdSignature `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
	MsgPath    string               `protobuf:"bytes,2,opt,name=msg_path,json=msgPath,proto3" json:"msg_path,omitempty"`
	MsgData    []byte               `protobuf:"bytes,3,opt,name=msg_data,json=msgData,proto3" json:"msg_data,omitempty"`
}

func (m *Tx) Reset()         { *m = Tx{} }
func (m *Tx) String() string { return proto.CompactTextString(m) }
func (*Tx) ProtoMessage()    {}

var _ seahorse.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// messages lists every message this application accepts, by path.
var messages = map[string]func() seahorse.Msg{
	token.CreateAccountMsg{}.Path():       func() seahorse.Msg { return &token.CreateAccountMsg{} },
	token.TransferMsg{}.Path():            func() seahorse.Msg { return &token.TransferMsg{} },
	token.MintMsg{}.Path():                func() seahorse.Msg { return &token.MintMsg{} },
	token.UpdateConfigurationMsg{}.Path(): func() seahorse.Msg { return &token.UpdateConfigurationMsg{} },
	swap.InitMsg{}.Path():                 func() seahorse.Msg { return &swap.InitMsg{} },
	swap.FundMsg{}.Path():                 func() seahorse.Msg { return &swap.FundMsg{} },
	swap.DefundMsg{}.Path():               func() seahorse.Msg { return &swap.DefundMsg{} },
	swap.CrankMsg{}.Path():                func() seahorse.Msg { return &swap.CrankMsg{} },
	swap.UpdateConfigurationMsg{}.Path():  func() seahorse.Msg { return &swap.UpdateConfigurationMsg{} },
}

// NewTx returns an unsigned transaction carrying msg.
func NewTx(msg seahorse.Msg) (*Tx, error) {
	if _, ok := messages[msg.Path()]; !ok {
		return nil, errors.Wrapf(errors.ErrMsg, "unsupported message %q", msg.Path())
	}
	raw, err := proto.Marshal(msg)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrMsg, "cannot serialize: %s", err)
	}
	return &Tx{MsgPath: msg.Path(), MsgData: raw}, nil
}

// GetMsg decodes the carried message.
func (tx *Tx) GetMsg() (seahorse.Msg, error) {
	build, ok := messages[tx.MsgPath]
	if !ok {
		return nil, errors.Wrapf(errors.ErrMsg, "unsupported message %q", tx.MsgPath)
	}
	msg := build()
	if err := proto.Unmarshal(tx.MsgData, msg); err != nil {
		return nil, errors.Wrapf(errors.ErrMsg, "cannot deserialize %q: %s", tx.MsgPath, err)
	}
	return msg, nil
}

// GetSignatures returns the signatures signing this transaction
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign, the transaction without any
// signatures.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	unsigned := Tx{MsgPath: tx.MsgPath, MsgData: tx.MsgData}
	raw, err := proto.Marshal(&unsigned)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrMsg, "cannot serialize: %s", err)
	}
	return raw, nil
}

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (seahorse.Tx, error) {
	tx := new(Tx)
	if err := proto.Unmarshal(bz, tx); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot decode transaction: %s", err)
	}
	return tx, nil
}

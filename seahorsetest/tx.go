package seahorsetest

import seahorse "github.com/mtnPay/seahorse-swap"

// Tx represents a transaction carrying a single message.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg seahorse.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ seahorse.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (seahorse.Msg, error) {
	return tx.Msg, tx.Err
}

// Msg is a message that does nothing but routing.
type Msg struct {
	// RoutePath returned by the path method, consumed by the router.
	RoutePath string
	// Err if set is returned by Validate.
	Err error
}

var _ seahorse.Msg = (*Msg)(nil)

func (m *Msg) Reset()         {}
func (m *Msg) String() string { return "seahorsetest.Msg{" + m.RoutePath + "}" }
func (*Msg) ProtoMessage()    {}

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

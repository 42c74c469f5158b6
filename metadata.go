package seahorse

import (
	"github.com/gogo/protobuf/proto"
	"github.com/mtnPay/seahorse-swap/errors"
)

// Metadata is attached to every persisted model. Schema is the version of
// the model format and must be set.
type Metadata struct {
	Schema uint32 `protobuf:"varint,1,opt,name=schema,proto3" json:"schema,omitempty"`
}

func (m *Metadata) Reset()         { *m = Metadata{} }
func (m *Metadata) String() string { return proto.CompactTextString(m) }
func (*Metadata) ProtoMessage()    {}

// Validate returns an error if the metadata is not usable.
func (m *Metadata) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrMetadata, "nil")
	}
	if m.Schema < 1 {
		return errors.Wrap(errors.ErrMetadata, "schema is required")
	}
	return nil
}

// Copy returns a copy of this object.
func (m *Metadata) Copy() *Metadata {
	cpy := *m
	return &cpy
}

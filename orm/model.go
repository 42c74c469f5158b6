package orm

import (
	"github.com/gogo/protobuf/proto"
)

// Model is impelemented by any entity that can be stored using ModelBucket.
type Model interface {
	proto.Message
	Validate() error
}

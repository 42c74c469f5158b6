package orm

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/gogo/protobuf/proto"
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// ModelBucket stores models of a single type directly in the KVStore.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary key. Result is loaded into given destination model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrType
	// is returned.
	One(db seahorse.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if an entity with given key exists, ErrNotFound
	// otherwise.
	Has(db seahorse.ReadOnlyKVStore, key []byte) error

	// Put saves given model in the database. Existing entity is
	// overwritten.
	Put(db seahorse.KVStore, key []byte, m Model) error

	// Create saves given model in the database. It returns ErrDuplicate
	// if an entity with given key already exists.
	Create(db seahorse.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db seahorse.KVStore, key []byte) error

	// Register registers this bucket for queries under given name. If the
	// name is empty, the bucket name is used.
	Register(name string, r seahorse.QueryRouter)
}

// NewModelBucket returns a ModelBucket instance storing models of the same
// type as given example.
func NewModelBucket(name string, example Model) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	return &modelBucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		model:  reflect.TypeOf(example),
	}
}

type modelBucket struct {
	name   string
	prefix []byte
	model  reflect.Type
}

var _ ModelBucket = (*modelBucket)(nil)
var _ seahorse.QueryHandler = (*modelBucket)(nil)

// dbKey is the full key we store in the db, including prefix. It always
// allocates, so that consecutive calls never share the same array.
func (mb *modelBucket) dbKey(key []byte) []byte {
	l := len(mb.prefix)
	out := make([]byte, l+len(key))
	copy(out, mb.prefix)
	copy(out[l:], key)
	return out
}

func (mb *modelBucket) One(db seahorse.ReadOnlyKVStore, key []byte, dest Model) error {
	if reflect.TypeOf(dest) != mb.model {
		return errors.Wrapf(errors.ErrType, "%T cannot be represented as %s", dest, mb.model)
	}
	raw, err := db.Get(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot read from the database")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s %X", mb.name, key)
	}
	dest.Reset()
	if err := proto.Unmarshal(raw, dest); err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot unmarshal %s: %s", mb.name, err)
	}
	return nil
}

func (mb *modelBucket) Has(db seahorse.ReadOnlyKVStore, key []byte) error {
	ok, err := db.Has(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot read from the database")
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s %X", mb.name, key)
	}
	return nil
}

func (mb *modelBucket) Put(db seahorse.KVStore, key []byte, m Model) error {
	if reflect.TypeOf(m) != mb.model {
		return errors.Wrapf(errors.ErrType, "cannot store %T in %s bucket", m, mb.name)
	}
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := proto.Marshal(m)
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot marshal: %s", err)
	}
	if err := db.Set(mb.dbKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (mb *modelBucket) Create(db seahorse.KVStore, key []byte, m Model) error {
	switch err := mb.Has(db, key); {
	case err == nil:
		return errors.Wrapf(errors.ErrDuplicate, "%s %X", mb.name, key)
	case !errors.ErrNotFound.Is(err):
		return err
	}
	return mb.Put(db, key, m)
}

func (mb *modelBucket) Delete(db seahorse.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	if err := db.Delete(mb.dbKey(key)); err != nil {
		return errors.Wrap(err, "cannot delete from the database")
	}
	return nil
}

func (mb *modelBucket) Register(name string, r seahorse.QueryRouter) {
	if name == "" {
		name = mb.name
	}
	r.Register("/"+name, mb)
}

// Query handles queries from the QueryRouter. Returned keys do not contain
// the bucket prefix.
func (mb *modelBucket) Query(db seahorse.ReadOnlyKVStore, mod string, data []byte) ([]seahorse.Model, error) {
	switch mod {
	case seahorse.KeyQueryMod:
		value, err := db.Get(mb.dbKey(data))
		if err != nil {
			return nil, err
		}
		// return nothing on miss
		if value == nil {
			return nil, nil
		}
		return []seahorse.Model{{Key: data, Value: value}}, nil
	case seahorse.PrefixQueryMod:
		res, err := queryPrefix(db, mb.dbKey(data))
		if err != nil {
			return nil, err
		}
		for i := range res {
			res[i].Key = res[i].Key[len(mb.prefix):]
		}
		return res, nil
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod %q", mod)
	}
}

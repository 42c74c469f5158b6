package orm

import (
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/errors"
)

// RegisterQuery exposes the raw key value store under "/".
func RegisterQuery(qr seahorse.QueryRouter) {
	qr.Register("/", rawQuery{})
}

type rawQuery struct{}

func (rawQuery) Query(db seahorse.ReadOnlyKVStore, mod string, data []byte) ([]seahorse.Model, error) {
	switch mod {
	case seahorse.KeyQueryMod:
		value, err := db.Get(data)
		if err != nil || value == nil {
			return nil, err
		}
		return []seahorse.Model{seahorse.Pair(data, value)}, nil
	case seahorse.PrefixQueryMod:
		return queryPrefix(db, data)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod %q", mod)
	}
}

// ConsumeIterator will read all remaining data into an
// array and close the iterator
func ConsumeIterator(itr seahorse.Iterator) []seahorse.Model {
	defer itr.Close()

	var res []seahorse.Model
	for ; itr.Valid(); itr.Next() {
		res = append(res, seahorse.Model{
			Key:   itr.Key(),
			Value: itr.Value(),
		})
	}
	return res
}

func queryPrefix(db seahorse.ReadOnlyKVStore, prefix []byte) ([]seahorse.Model, error) {
	itr, err := db.Iterator(prefixRange(prefix))
	if err != nil {
		return nil, err
	}
	return ConsumeIterator(itr), nil
}

// prefixRange turns a prefix into (start, end) to create
// and iterator
func prefixRange(prefix []byte) ([]byte, []byte) {
	// special case: no prefix is whole range
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and update last byte
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// wait, what if that overflowed?....
	for end[l] == 0 && l > 0 {
		l--
		end[l]++
	}

	// okay, funny guy, you gave us FFF, no end to this range...
	if l == 0 && end[0] == 0 {
		end = nil
	}
	return prefix, end
}

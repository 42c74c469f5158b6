package store

import (
	"bytes"

	"github.com/google/btree"
)

// ascendBtree collects all cached items within [start, end) in ascending
// key order. A nil bound is open.
func ascendBtree(bt *btree.BTree, start, end []byte) []keyer {
	var res []keyer
	collect := func(item btree.Item) bool {
		res = append(res, item.(keyer))
		return true
	}
	switch {
	case start == nil && end == nil:
		bt.Ascend(collect)
	case start == nil:
		bt.AscendLessThan(bkey{end}, collect)
	case end == nil:
		bt.AscendGreaterOrEqual(bkey{start}, collect)
	default:
		bt.AscendRange(bkey{start}, bkey{end}, collect)
	}
	return res
}

// descendBtree collects the same range as ascendBtree in descending order.
func descendBtree(bt *btree.BTree, start, end []byte) []keyer {
	items := ascendBtree(bt, start, end)
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items
}

// mergeIterator combines the cached writes with the parent iterator. Cached
// values shadow the parent and cached deletes hide parent entries.
type mergeIterator struct {
	cache     []keyer
	parent    Iterator
	ascending bool

	key   []byte
	value []byte
	valid bool
}

var _ Iterator = (*mergeIterator)(nil)

func newMergeIterator(cache []keyer, parent Iterator, ascending bool) *mergeIterator {
	it := &mergeIterator{
		cache:     cache,
		parent:    parent,
		ascending: ascending,
	}
	it.advance()
	return it
}

// before returns true if a comes before b in the iteration order.
func (m *mergeIterator) before(a, b []byte) bool {
	if m.ascending {
		return bytes.Compare(a, b) < 0
	}
	return bytes.Compare(a, b) > 0
}

// advance moves to the next visible item, skipping deleted entries.
func (m *mergeIterator) advance() {
	for {
		hasCache := len(m.cache) > 0
		hasParent := m.parent.Valid()

		switch {
		case !hasCache && !hasParent:
			m.valid = false
			m.key, m.value = nil, nil
			return
		case !hasCache:
			m.take(m.parent.Key(), m.parent.Value())
			m.parent.Next()
			return
		case !hasParent || m.before(m.cache[0].Key(), m.parent.Key()):
			item := m.cache[0]
			m.cache = m.cache[1:]
			if m.takeCached(item) {
				return
			}
		case bytes.Equal(m.cache[0].Key(), m.parent.Key()):
			// Cache shadows the parent value.
			item := m.cache[0]
			m.cache = m.cache[1:]
			m.parent.Next()
			if m.takeCached(item) {
				return
			}
		default:
			m.take(m.parent.Key(), m.parent.Value())
			m.parent.Next()
			return
		}
	}
}

func (m *mergeIterator) take(key, value []byte) {
	m.key, m.value, m.valid = key, value, true
}

// takeCached returns false when the item is a delete marker.
func (m *mergeIterator) takeCached(item keyer) bool {
	set, ok := item.(setItem)
	if !ok {
		return false
	}
	m.take(set.key, set.value)
	return true
}

// Valid implements Iterator and returns true iff it can be read
func (m *mergeIterator) Valid() bool {
	return m.valid
}

// Next moves the iterator to the next sequential key.
func (m *mergeIterator) Next() {
	if !m.valid {
		panic("iterator is not valid")
	}
	m.advance()
}

// Key returns the key of the cursor.
func (m *mergeIterator) Key() []byte {
	if !m.valid {
		panic("iterator is not valid")
	}
	return m.key
}

// Value returns the value of the cursor.
func (m *mergeIterator) Value() []byte {
	if !m.valid {
		panic("iterator is not valid")
	}
	return m.value
}

// Close releases the Iterator.
func (m *mergeIterator) Close() {
	m.cache = nil
	m.parent.Close()
}

package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/mtnPay/seahorse-swap/seahorsetest/assert"
)

func TestCommitStorePersistsCommittedData(t *testing.T) {
	dir, err := ioutil.TempDir("", "iavl-adapter-")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	commit, err := NewCommitStore(dir, "base")
	assert.Nil(t, err)
	assert.Nil(t, commit.LoadLatestVersion())

	cache := commit.CacheWrap()
	assert.Nil(t, cache.Set([]byte("escrow"), []byte("record")))
	assert.Nil(t, cache.Set([]byte("token"), []byte("account")))
	assert.Nil(t, cache.Write())

	// Not committed yet.
	v, err := commit.Get([]byte("escrow"))
	assert.Nil(t, err)
	if v != nil {
		t.Fatalf("uncommitted value is visible: %q", v)
	}

	id, err := commit.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), id.Version)
	if len(id.Hash) == 0 {
		t.Fatal("commit hash is empty")
	}

	v, err = commit.Get([]byte("escrow"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("record"), v)

	latest, err := commit.LatestVersion()
	assert.Nil(t, err)
	assert.Equal(t, id, latest)
}

func TestAdapterIterator(t *testing.T) {
	commit := MockCommitStore()
	kv := commit.Adapter()
	for _, k := range []string{"c", "a", "b"} {
		assert.Nil(t, kv.Set([]byte(k), []byte(k)))
	}

	it, err := kv.Iterator(nil, nil)
	assert.Nil(t, err)
	var keys []string
	for ; it.Valid(); it.Next() {
		keys = append(keys, string(it.Key()))
	}
	it.Close()
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	it, err = kv.ReverseIterator([]byte("a"), []byte("c"))
	assert.Nil(t, err)
	keys = nil
	for ; it.Valid(); it.Next() {
		keys = append(keys, string(it.Key()))
	}
	it.Close()
	assert.Equal(t, []string{"b", "a"}, keys)
}

func TestCacheWrapDiscard(t *testing.T) {
	commit := MockCommitStore()
	cache := commit.CacheWrap()
	assert.Nil(t, cache.Set([]byte("k"), []byte("v")))
	cache.Discard()

	has, err := commit.Adapter().Has([]byte("k"))
	assert.Nil(t, err)
	assert.Equal(t, false, has)
}

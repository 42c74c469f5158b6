// nolint
package store

import seahorse "github.com/mtnPay/seahorse-swap"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = seahorse.ReadOnlyKVStore
type SetDeleter = seahorse.SetDeleter
type KVStore = seahorse.KVStore
type Batch = seahorse.Batch
type Iterator = seahorse.Iterator
type CacheableKVStore = seahorse.CacheableKVStore
type KVCacheWrap = seahorse.KVCacheWrap
type CommitKVStore = seahorse.CommitKVStore
type CommitID = seahorse.CommitID
type Model = seahorse.Model

package extendible

import (
	"github.com/gostonefire/extendiblehash/hashfunc"
	"github.com/gostonefire/extendiblehash/internal/conf"
	"github.com/gostonefire/extendiblehash/internal/hash"
	"github.com/gostonefire/extendiblehash/internal/model"
	"github.com/gostonefire/extendiblehash/internal/storage"
	"github.com/gostonefire/extendiblehash/outcome"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("storage")

func init() {
	logging.SetLevel(logging.WARNING, "storage")
}

// EHStorage - Represents an in memory implementation of an extendible hashing index.
// Buckets are kept in an arena where the position of a bucket equals its id, buckets are never removed so ids stay
// dense. The directory is an ordered slice where entry i has the address i rendered in globalDepth bits and refers
// to its bucket by id.
type EHStorage struct {
	hashModulo        int64
	maxGlobalDepth    int
	bucketCapacity    int
	addressWidth      int
	globalDepth       int
	buckets           []*model.Bucket
	directory         []model.DirectoryEntry
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
}

// NewEHStorage - Returns a pointer to a new instance of the extendible hashing storage in its starting state,
// two buckets addressed "0" and "1" and a global depth of 1.
//   - ehConf is a model.EHConf struct providing configuration parameters affecting the index layout
//
// It returns:
//   - ehStorage which is a pointer to the created instance
//   - err which is of type outcome.ConfigurationError if the hash algorithm reports an unusable modulo
func NewEHStorage(ehConf model.EHConf) (ehStorage *EHStorage, err error) {
	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if ehConf.HashAlgorithm == nil {
		ehConf.HashAlgorithm = hash.NewModuloHashAlgorithm(ehConf.HashModulo)
		internalAlg = true
	} else {
		ehConf.HashAlgorithm.SetModulo(ehConf.HashModulo)
	}

	modulo := ehConf.HashAlgorithm.GetModulo()
	if modulo < conf.MinHashModulo {
		err = outcome.NewConfigurationError("hash algorithm reports modulo %d, must be at least %d", modulo, conf.MinHashModulo)
		return
	}

	ehStorage = &EHStorage{
		hashModulo:        modulo,
		maxGlobalDepth:    ehConf.MaxGlobalDepth,
		bucketCapacity:    ehConf.BucketCapacity,
		addressWidth:      hash.AddressWidth(modulo),
		hashAlgorithm:     ehConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	ehStorage.initialize()

	return
}

// Reset - Discards all buckets and entries and returns to the starting state under the same configuration
func (S *EHStorage) Reset() {
	S.initialize()
}

// NewEntry - Hashes key and returns the entry that would be stored for it
//   - key is a non-negative key
//
// It returns:
//   - entry is the key with its hash value and full width binary hash
//   - err is of type outcome.InvalidKey for negative keys or outcome.HashAlgorithmError if the hash is out of range
//     or the modulo of the hash algorithm was changed after the storage was created
func (S *EHStorage) NewEntry(key int64) (entry model.Entry, err error) {
	if key < 0 {
		err = outcome.NewInvalidKey("key %d is negative, only non-negative keys can be hashed", key)
		return
	}

	if m := S.hashAlgorithm.GetModulo(); m != S.hashModulo {
		err = outcome.NewHashAlgorithmError("hash algorithm modulo changed from %d to %d, stored entries can no longer be routed", S.hashModulo, m)
		return
	}

	h := S.hashAlgorithm.HashFunc(key)
	if h < 0 || h >= S.hashModulo {
		err = outcome.NewHashAlgorithmError("hash algorithm returned %d for key %d, outside 0 to %d", h, key, S.hashModulo-1)
		return
	}

	entry = model.Entry{
		Key:        key,
		Hash:       h,
		BinaryHash: hash.FullAddress(h, S.addressWidth),
	}

	return
}

// Contains - Returns true if key is stored in any bucket. All buckets are scanned, not only the one the key
// is routed to.
func (S *EHStorage) Contains(key int64) bool {
	for _, b := range S.buckets {
		for _, e := range b.Entries {
			if e.Key == key {
				return true
			}
		}
	}

	return false
}

// LookupBucket - Returns a copy of the bucket that the directory routes hash to at the current global depth.
// A missing directory entry means the index is corrupt and results in a panic with outcome.InternalInconsistency.
func (S *EHStorage) LookupBucket(hashValue int64) (bucket model.Bucket) {
	address := hash.BinaryAddress(hashValue, S.addressWidth, S.globalDepth)
	bucket = storage.CopyBucket(S.buckets[S.resolve(address)])

	return
}

// GetBucket - Returns a copy of the bucket with the given id
// It returns an error of type outcome.NoRecordFound if there is no such bucket
func (S *EHStorage) GetBucket(bucketID int) (bucket model.Bucket, err error) {
	if bucketID < 0 || bucketID >= len(S.buckets) {
		err = outcome.NewNoRecordFound("no bucket with id %d", bucketID)
		return
	}

	bucket = storage.CopyBucket(S.buckets[bucketID])

	return
}

// Append - Appends entry to the bucket with the given id.
//   - bucketID is the id of a bucket which address must be a prefix of the entry binary address
//   - entry is an entry as given by NewEntry
//
// It returns:
//   - err is of type outcome.NoRecordFound if bucket is missing, outcome.CapacityExceeded if the bucket is full
//     or a standard error if the entry does not belong in the bucket
func (S *EHStorage) Append(bucketID int, entry model.Entry) (err error) {
	if bucketID < 0 || bucketID >= len(S.buckets) {
		err = outcome.NewNoRecordFound("no bucket with id %d", bucketID)
		return
	}

	bucket := S.buckets[bucketID]
	if len(bucket.Entries) >= bucket.Capacity {
		err = outcome.NewCapacityExceeded("bucket %d is full with %d entries", bucketID, len(bucket.Entries))
		return
	}

	if hash.BinaryAddress(entry.Hash, S.addressWidth, bucket.LocalDepth) != bucket.Address {
		err = errWrongBucket(entry, bucket)
		return
	}

	bucket.Entries = append(bucket.Entries, entry)
	log.Debugf("appended key %d (hash %d -> %s) to bucket %d", entry.Key, entry.Hash, entry.BinaryHash, bucketID)

	return
}

// Split - Splits the bucket with the given id into itself and a new sibling bucket, doubling the directory first
// if the local depth of the bucket equals the global depth. Entries are redistributed by the bit following the old
// local depth and every directory entry is repointed to the bucket with the longest matching address.
//   - bucketID is the id of the bucket to split
//
// It returns:
//   - result is a model.SplitResult describing the split
//   - err is of type outcome.NoRecordFound if there is no such bucket, or outcome.CapacityExceeded if the bucket
//     already has a local depth equal to the max global depth.
func (S *EHStorage) Split(bucketID int) (result model.SplitResult, err error) {
	if bucketID < 0 || bucketID >= len(S.buckets) {
		err = outcome.NewNoRecordFound("no bucket with id %d", bucketID)
		return
	}

	bucket := S.buckets[bucketID]
	if bucket.LocalDepth >= S.maxGlobalDepth {
		err = outcome.NewCapacityExceeded("bucket %d has local depth %d which is the max global depth, it can not be split", bucketID, bucket.LocalDepth)
		return
	}

	result.BucketID = bucketID

	if bucket.LocalDepth == S.globalDepth {
		S.doubleDirectory()
		result.DirectoryDoubled = true
	}

	oldDepth := bucket.LocalDepth
	entries := bucket.Entries

	sibling := &model.Bucket{
		ID:         len(S.buckets),
		LocalDepth: oldDepth + 1,
		Address:    bucket.Address + "1",
		Entries:    make([]model.Entry, 0, S.bucketCapacity),
		Capacity:   S.bucketCapacity,
	}
	S.buckets = append(S.buckets, sibling)
	result.NewBucketID = sibling.ID

	bucket.LocalDepth = oldDepth + 1
	bucket.Address += "0"
	bucket.Entries = make([]model.Entry, 0, S.bucketCapacity)

	result.Moved = S.redistribute(entries, oldDepth, bucket, sibling)
	S.repoint()

	log.Debugf("split bucket %d into %s (%d entries) and bucket %d %s (%d entries), global depth %d",
		bucket.ID, bucket.Address, len(bucket.Entries), sibling.ID, sibling.Address, len(sibling.Entries), S.globalDepth)

	return
}

// EntriesWithHash - Returns the keys of all stored entries having the given hash value, in bucket id order
func (S *EHStorage) EntriesWithHash(hashValue int64) (keys []int64) {
	for _, b := range S.buckets {
		for _, e := range b.Entries {
			if e.Hash == hashValue {
				keys = append(keys, e.Key)
			}
		}
	}

	return
}

// Snapshot - Returns a deep copy of the current state, buckets ordered by id
func (S *EHStorage) Snapshot() (snapshot model.Snapshot) {
	snapshot = model.Snapshot{
		GlobalDepth:    S.globalDepth,
		MaxGlobalDepth: S.maxGlobalDepth,
		BucketCapacity: S.bucketCapacity,
		HashModulo:     S.hashModulo,
		AddressWidth:   S.addressWidth,
		Directory:      storage.CopyDirectory(S.directory),
		Buckets:        storage.CopyBuckets(S.buckets),
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters
func (S *EHStorage) GetStorageParameters() (params model.StorageParameters) {
	return model.StorageParameters{
		HashModulo:        S.hashModulo,
		MaxGlobalDepth:    S.maxGlobalDepth,
		BucketCapacity:    S.bucketCapacity,
		AddressWidth:      S.addressWidth,
		GlobalDepth:       S.globalDepth,
		NumberOfBuckets:   len(S.buckets),
		DirectorySize:     len(S.directory),
		InternalAlgorithm: S.internalAlgorithm,
	}
}

package extendiblehash

import (
	"errors"
	"github.com/gostonefire/extendiblehash/hashfunc"
	"github.com/gostonefire/extendiblehash/internal/conf"
	"github.com/gostonefire/extendiblehash/internal/model"
	"github.com/gostonefire/extendiblehash/internal/storage/extendible"
	"github.com/gostonefire/extendiblehash/internal/utils"
	"github.com/gostonefire/extendiblehash/outcome"
	"github.com/op/go-logging"
	pkgerrors "github.com/pkg/errors"
	"reflect"
)

var log = logging.MustGetLogger("extendiblehash")

// Library logging stays quiet unless the embedding program installs its own backend and levels
func init() {
	logging.SetLevel(logging.WARNING, "extendiblehash")
}

// IndexManagement - Interface for any index storage implementation
type IndexManagement interface {
	Reset()
	NewEntry(key int64) (entry model.Entry, err error)
	Contains(key int64) bool
	LookupBucket(hashValue int64) (bucket model.Bucket)
	GetBucket(bucketID int) (bucket model.Bucket, err error)
	Append(bucketID int, entry model.Entry) (err error)
	Split(bucketID int) (result model.SplitResult, err error)
	EntriesWithHash(hashValue int64) (keys []int64)
	Snapshot() (snapshot model.Snapshot)
	CheckInvariants() (err error)
	GetStorageParameters() (params model.StorageParameters)
}

// Conf - Configuration of an index, all fields but HashAlgorithm and Observer are mandatory.
//   - HashModulo is the number of distinct hash values, at least 2
//   - MaxGlobalDepth is the ceiling for the global depth, at least 1 and at most 24
//   - BucketCapacity is the number of entries each bucket can hold, at least 1
//   - HashAlgorithm is an optional custom hashing policy following the hashfunc.HashAlgorithm interface
//   - Observer is an optional callback receiving an Event after every completed mutation
type Conf struct {
	HashModulo     int64
	MaxGlobalDepth int
	BucketCapacity int
	HashAlgorithm  hashfunc.HashAlgorithm
	Observer       Observer
}

// DefaultConf - Returns a configuration with hash modulo 97, max global depth 4 and bucket capacity 3
func DefaultConf() Conf {
	return Conf{
		HashModulo:     conf.DefaultHashModulo,
		MaxGlobalDepth: conf.DefaultMaxGlobalDepth,
		BucketCapacity: conf.DefaultBucketCapacity,
	}
}

// IndexInfo - Information structure containing some information about the index created
//   - AddressWidth is the number of bits in the binary rendering of a hash value
//   - MaxDirectorySize is the number of directory entries at max global depth
//   - NumberOfBuckets is the current number of buckets
//   - DirectorySize is the current number of directory entries
//   - InternalAlgorithm is true if the internal modulo hash is used
type IndexInfo struct {
	AddressWidth      int
	MaxDirectorySize  int
	NumberOfBuckets   int
	DirectorySize     int
	InternalAlgorithm bool
}

// IndexStat - Statistics on the overall usage and distribution over buckets
//   - Entries is the total number of entries stored
//   - Buckets is the number of buckets
//   - GlobalDepth is the current global depth
//   - DirectorySize is the number of directory entries
//   - FillFactor is Entries divided by the total capacity of all buckets
//   - BucketDistribution is the number of entries stored in each bucket, indexed by bucket id
type IndexStat struct {
	Entries            int
	Buckets            int
	GlobalDepth        int
	DirectorySize      int
	FillFactor         float64
	BucketDistribution []int
}

// ExtendibleHash - The main implementation struct.
// It is not safe for concurrent use, callers must serialize mutations.
type ExtendibleHash struct {
	storage IndexManagement
	conf    Conf
	keys    []int64
}

// NewExtendibleHash - Returns a new index in its starting state: two buckets addressed "0" and "1" with local
// depth 1 and a directory with global depth 1.
//   - conf is the index configuration, see Conf
//
// It returns:
//   - extendibleHash is a pointer to an ExtendibleHash struct
//   - indexInfo is an IndexInfo struct containing some data regarding the index created
//   - err is of type outcome.ConfigurationError if the configuration is invalid
func NewExtendibleHash(conf Conf) (extendibleHash *ExtendibleHash, indexInfo IndexInfo, err error) {
	var s IndexManagement
	s, indexInfo, err = newStorage(conf)
	if err != nil {
		return
	}

	extendibleHash = &ExtendibleHash{storage: s, conf: conf}
	log.Debugf("created index with hash modulo %d, max global depth %d and bucket capacity %d",
		conf.HashModulo, conf.MaxGlobalDepth, conf.BucketCapacity)

	return
}

// Configure - Replaces the whole index state with a fresh one built from conf. If conf is invalid an error of
// type outcome.ConfigurationError is returned and the current state is kept.
func (E *ExtendibleHash) Configure(conf Conf) (indexInfo IndexInfo, err error) {
	var s IndexManagement
	s, indexInfo, err = newStorage(conf)
	if err != nil {
		// The rejected conf may share the hash algorithm of the current state
		if sameAlgorithm(conf.HashAlgorithm, E.conf.HashAlgorithm) {
			E.conf.HashAlgorithm.SetModulo(E.conf.HashModulo)
		}
		return
	}

	E.storage = s
	E.conf = conf
	E.keys = nil
	log.Debugf("reconfigured index with hash modulo %d, max global depth %d and bucket capacity %d",
		conf.HashModulo, conf.MaxGlobalDepth, conf.BucketCapacity)
	E.notify(Event{Kind: EventReset})

	return
}

// Reset - Discards all entries and returns to the starting state under the current configuration
func (E *ExtendibleHash) Reset() {
	E.storage.Reset()
	E.keys = nil
	log.Debug("index reset")
	E.notify(Event{Kind: EventReset})
}

// Reorg - Is used when an index needs to reflect new conditions, for instance when keys were rejected and a
// higher max global depth or bucket capacity is wanted. A new index is created from conf and all keys of from are
// inserted in the order they were originally inserted. The from index is left untouched, which is why conf can
// not reuse the hash algorithm instance of from with a different hash modulo.
//   - from is the existing index
//   - conf is the configuration of the new index
//
// It returns:
//   - to is the new index
//   - rejected holds keys the new configuration could not accommodate
//   - err is of type outcome.ConfigurationError if conf is invalid, or a wrapped error if a key could not be inserted
func Reorg(from *ExtendibleHash, conf Conf) (to *ExtendibleHash, rejected []int64, err error) {
	if sameAlgorithm(conf.HashAlgorithm, from.conf.HashAlgorithm) && conf.HashModulo != from.conf.HashModulo {
		err = outcome.NewConfigurationError("hash algorithm of the existing index can not be reused with hash modulo %d, "+
			"it hashes with modulo %d, use a separate instance", conf.HashModulo, from.conf.HashModulo)
		return
	}

	to, _, err = NewExtendibleHash(conf)
	if err != nil {
		return
	}

	rejected, err = reorgKeys(from.Keys(), to)
	if err != nil {
		to = nil
		return
	}

	log.Infof("reorganized %d keys into new index, %d rejected", len(from.keys), len(rejected))

	return
}

// reorgKeys - Inserts keys one by one into to, collecting the ones that are rejected
func reorgKeys(keys []int64, to *ExtendibleHash) (rejected []int64, err error) {
	var result outcome.Outcome
	for _, key := range keys {
		result, err = to.Insert(key)
		if result == outcome.Rejected && errors.Is(err, outcome.CapacityExceeded{}) {
			rejected = append(rejected, key)
			err = nil
			continue
		}
		if err != nil {
			err = pkgerrors.Wrapf(err, "error while reinserting key %d", key)
			return
		}
	}

	return
}

// sameAlgorithm - Returns true if a and b are the very same hash algorithm instance
func sameAlgorithm(a, b hashfunc.HashAlgorithm) bool {
	if a == nil || b == nil {
		return false
	}

	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) || !t.Comparable() {
		return false
	}

	return a == b
}

// newStorage - Validates conf and returns a new storage with info about it
func newStorage(c Conf) (s IndexManagement, indexInfo IndexInfo, err error) {
	err = validateConf(c)
	if err != nil {
		return
	}

	s, err = extendible.NewEHStorage(model.EHConf{
		HashModulo:     c.HashModulo,
		MaxGlobalDepth: c.MaxGlobalDepth,
		BucketCapacity: c.BucketCapacity,
		HashAlgorithm:  c.HashAlgorithm,
	})
	if err != nil {
		return
	}

	sp := s.GetStorageParameters()
	indexInfo = IndexInfo{
		AddressWidth:      sp.AddressWidth,
		MaxDirectorySize:  utils.Pow2(sp.MaxGlobalDepth),
		NumberOfBuckets:   sp.NumberOfBuckets,
		DirectorySize:     sp.DirectorySize,
		InternalAlgorithm: sp.InternalAlgorithm,
	}

	return
}

// validateConf - Checks that every configuration value is within range, nothing is clamped
func validateConf(c Conf) (err error) {
	// Check if the hash modulo is valid
	if c.HashModulo < conf.MinHashModulo {
		err = outcome.NewConfigurationError("hash modulo must be at least %d, got %d", conf.MinHashModulo, c.HashModulo)
		return
	}

	// Check if the max global depth is valid
	if c.MaxGlobalDepth < conf.MinGlobalDepth || c.MaxGlobalDepth > conf.MaxSupportedGlobalDepth {
		err = outcome.NewConfigurationError("max global depth must be between %d and %d, got %d",
			conf.MinGlobalDepth, conf.MaxSupportedGlobalDepth, c.MaxGlobalDepth)
		return
	}

	// Check if the bucket capacity is valid
	if c.BucketCapacity < conf.MinBucketCapacity {
		err = outcome.NewConfigurationError("bucket capacity must be at least %d, got %d", conf.MinBucketCapacity, c.BucketCapacity)
		return
	}

	return
}

package extendiblehash

import (
	"github.com/gostonefire/extendiblehash/internal/model"
	"github.com/gostonefire/extendiblehash/outcome"
)

// Insert - Adds key to the index. If the bucket the key is routed to is full it is split, doubling the directory
// when needed, and the key is routed again. This repeats until the key fits or the bucket can not be split further.
//   - key is a non-negative key
//
// It returns:
//   - result is outcome.Inserted, outcome.AlreadyPresent if the key was stored already (nothing changes), or
//     outcome.Rejected if the key could not be placed.
//   - err is of type outcome.CapacityExceeded together with outcome.Rejected, outcome.InvalidKey for negative keys,
//     outcome.HashAlgorithmError if a custom hash algorithm misbehaves, otherwise nil.
//
// Splits made before a rejection are kept, each of them leaves the index in a valid state.
func (E *ExtendibleHash) Insert(key int64) (result outcome.Outcome, err error) {
	entry, err := E.storage.NewEntry(key)
	if err != nil {
		return
	}

	// Check if key already exists anywhere in the index
	if E.storage.Contains(key) {
		result = outcome.AlreadyPresent
		log.Debugf("key %d already present", key)
		return
	}

	// Every split increases the local depth of the bucket the key routes to, so this bound is never reached
	// unless something is wrong
	maxAttempts := E.conf.MaxGlobalDepth + 1
	var bucket model.Bucket
	var split model.SplitResult
	for attempt := 0; attempt < maxAttempts; attempt++ {
		bucket = E.storage.LookupBucket(entry.Hash)

		// Bucket has space
		if len(bucket.Entries) < bucket.Capacity {
			err = E.storage.Append(bucket.ID, entry)
			if err != nil {
				return
			}
			E.keys = append(E.keys, key)
			result = outcome.Inserted
			E.notify(Event{Kind: EventInserted, Key: key, BucketID: bucket.ID})
			return
		}

		// Bucket is full and can not be split
		if bucket.LocalDepth >= E.conf.MaxGlobalDepth {
			result = outcome.Rejected
			err = outcome.NewCapacityExceeded("key %d (binary hash %s) rejected, bucket %d with address %s is full at max global depth %d",
				key, entry.BinaryHash, bucket.ID, bucket.Address, E.conf.MaxGlobalDepth)
			log.Warning(err.Error())
			E.notify(Event{Kind: EventRejected, Key: key, BucketID: bucket.ID})
			return
		}

		split, err = E.storage.Split(bucket.ID)
		if err != nil {
			return
		}
		E.notify(Event{Kind: EventSplit, Key: key, BucketID: split.BucketID, NewBucketID: split.NewBucketID, DirectoryDoubled: split.DirectoryDoubled})
	}

	result = outcome.Rejected
	err = outcome.NewCapacityExceeded("key %d rejected after %d split attempts", key, maxAttempts)
	log.Warning(err.Error())
	E.notify(Event{Kind: EventRejected, Key: key, BucketID: bucket.ID})

	return
}

// Lookup - Returns the bucket holding key.
// It returns an error of type outcome.NoRecordFound if the key is not stored, or outcome.InvalidKey for negative keys.
func (E *ExtendibleHash) Lookup(key int64) (bucket Bucket, err error) {
	entry, err := E.storage.NewEntry(key)
	if err != nil {
		return
	}

	b := E.storage.LookupBucket(entry.Hash)
	for _, e := range b.Entries {
		if e.Key == key {
			bucket = toBucket(b)
			return
		}
	}

	err = outcome.NewNoRecordFound("key %d not found in bucket %d with address %s", key, b.ID, b.Address)

	return
}

// BucketFor - Returns the bucket the directory routes key to, regardless of whether key is stored
func (E *ExtendibleHash) BucketFor(key int64) (bucket Bucket, err error) {
	entry, err := E.storage.NewEntry(key)
	if err != nil {
		return
	}

	bucket = toBucket(E.storage.LookupBucket(entry.Hash))

	return
}

// GetBucket - Returns the bucket with the given id, or an error of type outcome.NoRecordFound
func (E *ExtendibleHash) GetBucket(bucketID int) (bucket Bucket, err error) {
	b, err := E.storage.GetBucket(bucketID)
	if err != nil {
		return
	}

	bucket = toBucket(b)

	return
}

// Split - Splits the bucket with the given id, doubling the directory first if its local depth equals the
// global depth. Insert splits on its own, this is for callers that want to drive splits themselves.
// It returns an error of type outcome.CapacityExceeded if the bucket is at max global depth, or
// outcome.NoRecordFound if there is no such bucket.
func (E *ExtendibleHash) Split(bucketID int) (newBucketID int, err error) {
	split, err := E.storage.Split(bucketID)
	if err != nil {
		return
	}

	newBucketID = split.NewBucketID
	E.notify(Event{Kind: EventSplit, BucketID: split.BucketID, NewBucketID: split.NewBucketID, DirectoryDoubled: split.DirectoryDoubled})

	return
}

// Preview - Returns the entry key would get without inserting it
func (E *ExtendibleHash) Preview(key int64) (entry Entry, err error) {
	e, err := E.storage.NewEntry(key)
	if err != nil {
		return
	}

	entry = toEntry(e)

	return
}

// EntriesWithHash - Returns keys of all stored entries sharing hashValue. It is informational, typically used
// to warn before inserting a key that collides with stored keys.
func (E *ExtendibleHash) EntriesWithHash(hashValue int64) (keys []int64) {
	return E.storage.EntriesWithHash(hashValue)
}

// Snapshot - Returns a read only copy of the current state
func (E *ExtendibleHash) Snapshot() Snapshot {
	return toSnapshot(E.storage.Snapshot())
}

// Keys - Returns all stored keys in the order they were inserted
func (E *ExtendibleHash) Keys() (keys []int64) {
	keys = make([]int64, len(E.keys))
	_ = copy(keys, E.keys)

	return
}

// Entries - Returns an iterator over all stored entries, bucket by bucket in id order
func (E *ExtendibleHash) Entries() *EntryIterator {
	return newEntryIterator(E.Snapshot().Buckets)
}

// Verify - Checks every structural invariant of the index, returns an error of type
// outcome.InternalInconsistency describing the first violation found, or nil.
func (E *ExtendibleHash) Verify() error {
	return E.storage.CheckInvariants()
}

// Stat - Walks through all buckets and produces an IndexStat struct with information.
//   - includeDistribution set to true will include a slice with the number of entries per bucket, false will set IndexStat.BucketDistribution to nil.
func (E *ExtendibleHash) Stat(includeDistribution bool) (indexStat *IndexStat) {
	snapshot := E.storage.Snapshot()
	is := IndexStat{
		Buckets:       len(snapshot.Buckets),
		GlobalDepth:   snapshot.GlobalDepth,
		DirectorySize: len(snapshot.Directory),
	}

	if includeDistribution {
		is.BucketDistribution = make([]int, len(snapshot.Buckets))
	}

	iter := newEntryIterator(toSnapshot(snapshot).Buckets)
	for iter.HasNext() {
		_, bucketID, err := iter.Next()
		if err != nil {
			break
		}
		is.Entries++
		if includeDistribution {
			is.BucketDistribution[bucketID]++
		}
	}

	if capacity := is.Buckets * snapshot.BucketCapacity; capacity > 0 {
		is.FillFactor = float64(is.Entries) / float64(capacity)
	}

	indexStat = &is
	return
}

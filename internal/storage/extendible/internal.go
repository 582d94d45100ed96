package extendible

import (
	"fmt"
	"github.com/gostonefire/extendiblehash/internal/conf"
	"github.com/gostonefire/extendiblehash/internal/hash"
	"github.com/gostonefire/extendiblehash/internal/model"
	"github.com/gostonefire/extendiblehash/internal/storage"
	"github.com/gostonefire/extendiblehash/internal/utils"
	"github.com/gostonefire/extendiblehash/outcome"
)

// initialize - Sets up the starting state, one bucket per possible first bit and a directory of global depth 1
func (S *EHStorage) initialize() {
	S.globalDepth = conf.InitialGlobalDepth
	S.buckets = make([]*model.Bucket, 0, conf.InitialNumberOfBuckets)
	S.directory = make([]model.DirectoryEntry, 0, conf.InitialNumberOfBuckets)

	for i := 0; i < conf.InitialNumberOfBuckets; i++ {
		address := hash.FullAddress(int64(i), conf.InitialLocalDepth)
		S.buckets = append(S.buckets, &model.Bucket{
			ID:         i,
			LocalDepth: conf.InitialLocalDepth,
			Address:    address,
			Entries:    make([]model.Entry, 0, S.bucketCapacity),
			Capacity:   S.bucketCapacity,
		})
		S.directory = append(S.directory, model.DirectoryEntry{Address: address, BucketID: i})
	}
}

// doubleDirectory - Increments the global depth and doubles the directory, appending a bit to every address
func (S *EHStorage) doubleDirectory() {
	S.directory = storage.DoubleDirectory(S.directory)
	S.globalDepth++

	log.Debugf("directory doubled to %d entries, global depth %d", len(S.directory), S.globalDepth)
}

// redistribute - Routes entries to bucket or sibling by their bit at position pos, returns number moved to sibling
func (S *EHStorage) redistribute(entries []model.Entry, pos int, bucket, sibling *model.Bucket) (moved int) {
	for _, e := range entries {
		if hash.BitAt(e.Hash, S.addressWidth, pos) == 0 {
			bucket.Entries = append(bucket.Entries, e)
		} else {
			sibling.Entries = append(sibling.Entries, e)
			moved++
		}
	}

	return
}

// repoint - Points every directory entry to the bucket which address is the longest prefix of the entry address.
// Bucket addresses never are prefixes of each other so at most one bucket can match.
func (S *EHStorage) repoint() {
	byAddress := make(map[string]int, len(S.buckets))
	for _, b := range S.buckets {
		byAddress[b.Address] = b.ID
	}

	for i := range S.directory {
		address := S.directory[i].Address
		found := false
		for d := len(address); d >= 1; d-- {
			if id, ok := byAddress[address[:d]]; ok {
				S.directory[i].BucketID = id
				found = true
				break
			}
		}
		if !found {
			S.inconsistent("no bucket covers directory address %s", address)
		}
	}
}

// resolve - Returns the id of the bucket referenced by the directory entry with the given address
func (S *EHStorage) resolve(address string) (bucketID int) {
	index, ok := utils.AddressToIndex(address)
	if !ok || len(address) != S.globalDepth || index >= len(S.directory) || S.directory[index].Address != address {
		S.inconsistent("no directory entry matches address %s at global depth %d", address, S.globalDepth)
	}

	bucketID = S.directory[index].BucketID
	if bucketID < 0 || bucketID >= len(S.buckets) {
		S.inconsistent("directory entry %s refers to unknown bucket %d", address, bucketID)
	}

	return
}

// inconsistent - Logs and panics with an outcome.InternalInconsistency, continuing would corrupt the index
func (S *EHStorage) inconsistent(format string, a ...any) {
	err := outcome.NewInternalInconsistency(format, a...)
	log.Critical(err.Error())
	panic(err)
}

// errWrongBucket - Returns an error telling that entry is not routed to bucket
func errWrongBucket(entry model.Entry, bucket *model.Bucket) error {
	return fmt.Errorf("key %d with binary hash %s does not belong in bucket %d with address %s", entry.Key, entry.BinaryHash, bucket.ID, bucket.Address)
}

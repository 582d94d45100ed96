package extendible

import (
	"github.com/gostonefire/extendiblehash/internal/hash"
	"github.com/gostonefire/extendiblehash/internal/utils"
	"github.com/gostonefire/extendiblehash/outcome"
)

// CheckInvariants - Walks the directory and all buckets and verifies that the structure is consistent.
// It returns an error of type outcome.InternalInconsistency describing the first violation found, or nil.
func (S *EHStorage) CheckInvariants() (err error) {
	if S.globalDepth < 1 || S.globalDepth > S.maxGlobalDepth {
		return outcome.NewInternalInconsistency("global depth %d outside 1 to %d", S.globalDepth, S.maxGlobalDepth)
	}

	if len(S.directory) != utils.Pow2(S.globalDepth) {
		return outcome.NewInternalInconsistency("directory has %d entries, expected %d", len(S.directory), utils.Pow2(S.globalDepth))
	}

	// Directory entries are ordered, have the right length and refer to a covering bucket
	refs := make([]int, len(S.buckets))
	for i, d := range S.directory {
		index, ok := utils.AddressToIndex(d.Address)
		if !ok || len(d.Address) != S.globalDepth || index != i {
			return outcome.NewInternalInconsistency("directory entry %d has address %q", i, d.Address)
		}
		if d.BucketID < 0 || d.BucketID >= len(S.buckets) {
			return outcome.NewInternalInconsistency("directory entry %s refers to unknown bucket %d", d.Address, d.BucketID)
		}
		b := S.buckets[d.BucketID]
		if !utils.IsPrefix(b.Address, d.Address) {
			return outcome.NewInternalInconsistency("directory entry %s refers to bucket %d with address %s", d.Address, b.ID, b.Address)
		}
		refs[d.BucketID]++
	}

	seen := make(map[int64]int)
	for i, b := range S.buckets {
		if b.ID != i {
			return outcome.NewInternalInconsistency("bucket at position %d has id %d", i, b.ID)
		}
		if b.LocalDepth < 1 || b.LocalDepth > S.globalDepth {
			return outcome.NewInternalInconsistency("bucket %d has local depth %d, global depth is %d", b.ID, b.LocalDepth, S.globalDepth)
		}
		if len(b.Address) != b.LocalDepth {
			return outcome.NewInternalInconsistency("bucket %d has address %s at local depth %d", b.ID, b.Address, b.LocalDepth)
		}
		if expected := utils.Pow2(S.globalDepth - b.LocalDepth); refs[i] != expected {
			return outcome.NewInternalInconsistency("bucket %d is referenced by %d directory entries, expected %d", b.ID, refs[i], expected)
		}
		if len(b.Entries) > S.bucketCapacity {
			return outcome.NewInternalInconsistency("bucket %d holds %d entries, capacity is %d", b.ID, len(b.Entries), S.bucketCapacity)
		}
		for _, e := range b.Entries {
			if other, ok := seen[e.Key]; ok {
				return outcome.NewInternalInconsistency("key %d is stored in both bucket %d and %d", e.Key, other, b.ID)
			}
			seen[e.Key] = b.ID
			if hash.BinaryAddress(e.Hash, S.addressWidth, b.LocalDepth) != b.Address {
				return outcome.NewInternalInconsistency("key %d with binary hash %s is stored in bucket %d with address %s", e.Key, e.BinaryHash, b.ID, b.Address)
			}
		}
	}

	return
}

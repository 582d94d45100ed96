package model

import hashfunc "github.com/gostonefire/extendiblehash/hashfunc"

// Entry - Represents one stored key together with its hash and full width binary hash
type Entry struct {
	Key        int64
	Hash       int64
	BinaryHash string
}

// Bucket - Represents a fixed capacity container of entries sharing the address prefix Address of length LocalDepth
type Bucket struct {
	ID         int
	LocalDepth int
	Address    string
	Entries    []Entry
	Capacity   int
}

// DirectoryEntry - Represents one directory slot, Address is always GlobalDepth bits long
type DirectoryEntry struct {
	Address  string
	BucketID int
}

// SplitResult - Describes what a split did
//   - BucketID is the id of the bucket that was split, it keeps entries with a 0 at the new bit
//   - NewBucketID is the id of the sibling bucket, it receives entries with a 1 at the new bit
//   - DirectoryDoubled is true if the directory had to double before the split
//   - Moved is the number of entries moved to the sibling bucket
type SplitResult struct {
	BucketID         int
	NewBucketID      int
	DirectoryDoubled bool
	Moved            int
}

// Snapshot - Deep copy of the whole index state
type Snapshot struct {
	GlobalDepth    int
	MaxGlobalDepth int
	BucketCapacity int
	HashModulo     int64
	AddressWidth   int
	Directory      []DirectoryEntry
	Buckets        []Bucket
}

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	HashModulo        int64
	MaxGlobalDepth    int
	BucketCapacity    int
	AddressWidth      int
	GlobalDepth       int
	NumberOfBuckets   int
	DirectorySize     int
	InternalAlgorithm bool
}

// EHConf - Is a struct to be passed in the call to NewEHStorage and contains configuration that affects
// the index layout.
//   - HashModulo is the number of distinct hash values
//   - MaxGlobalDepth is the ceiling for the global depth
//   - BucketCapacity is the number of entries each bucket can hold
//   - HashAlgorithm is the hash function to use, nil selects the internal modulo hash
type EHConf struct {
	HashModulo     int64
	MaxGlobalDepth int
	BucketCapacity int
	HashAlgorithm  hashfunc.HashAlgorithm
}

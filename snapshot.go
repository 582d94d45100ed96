package extendiblehash

import "github.com/gostonefire/extendiblehash/internal/model"

// Entry - One stored key
//   - Key is the key as inserted
//   - Hash is the value of the hash function for Key
//   - BinaryHash is Hash rendered in address width bits, most significant bit first
type Entry struct {
	Key        int64  `yaml:"key" json:"key"`
	Hash       int64  `yaml:"hash" json:"hash"`
	BinaryHash string `yaml:"binaryHash" json:"binaryHash"`
}

// Bucket - A fixed capacity container of entries which binary hashes all start with Address
type Bucket struct {
	ID         int     `yaml:"id" json:"id"`
	LocalDepth int     `yaml:"localDepth" json:"localDepth"`
	Address    string  `yaml:"address" json:"address"`
	Entries    []Entry `yaml:"entries" json:"entries"`
	Capacity   int     `yaml:"capacity" json:"capacity"`
}

// DirectoryEntry - One directory slot referring to a bucket by id
type DirectoryEntry struct {
	Address  string `yaml:"address" json:"address"`
	BucketID int    `yaml:"bucketId" json:"bucketId"`
}

// Snapshot - Read only copy of the complete index state after an operation. Directory is ordered by address
// and Buckets by id, so Buckets[id] is the bucket with that id.
type Snapshot struct {
	GlobalDepth    int              `yaml:"globalDepth" json:"globalDepth"`
	MaxGlobalDepth int              `yaml:"maxGlobalDepth" json:"maxGlobalDepth"`
	BucketCapacity int              `yaml:"bucketCapacity" json:"bucketCapacity"`
	HashModulo     int64            `yaml:"hashModulo" json:"hashModulo"`
	AddressWidth   int              `yaml:"addressWidth" json:"addressWidth"`
	Directory      []DirectoryEntry `yaml:"directory" json:"directory"`
	Buckets        []Bucket         `yaml:"buckets" json:"buckets"`
}

// toEntry - Converts a model.Entry to an Entry
func toEntry(e model.Entry) Entry {
	return Entry{Key: e.Key, Hash: e.Hash, BinaryHash: e.BinaryHash}
}

// toBucket - Converts a model.Bucket to a Bucket
func toBucket(b model.Bucket) (bucket Bucket) {
	bucket = Bucket{
		ID:         b.ID,
		LocalDepth: b.LocalDepth,
		Address:    b.Address,
		Entries:    make([]Entry, len(b.Entries)),
		Capacity:   b.Capacity,
	}
	for i, e := range b.Entries {
		bucket.Entries[i] = toEntry(e)
	}

	return
}

// toSnapshot - Converts a model.Snapshot to a Snapshot
func toSnapshot(s model.Snapshot) (snapshot Snapshot) {
	snapshot = Snapshot{
		GlobalDepth:    s.GlobalDepth,
		MaxGlobalDepth: s.MaxGlobalDepth,
		BucketCapacity: s.BucketCapacity,
		HashModulo:     s.HashModulo,
		AddressWidth:   s.AddressWidth,
		Directory:      make([]DirectoryEntry, len(s.Directory)),
		Buckets:        make([]Bucket, len(s.Buckets)),
	}
	for i, d := range s.Directory {
		snapshot.Directory[i] = DirectoryEntry{Address: d.Address, BucketID: d.BucketID}
	}
	for i, b := range s.Buckets {
		snapshot.Buckets[i] = toBucket(b)
	}

	return
}

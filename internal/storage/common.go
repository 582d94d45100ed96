package storage

import "github.com/gostonefire/extendiblehash/internal/model"

// CopyBucket - Returns a deep copy of bucket, the entries slice is never shared with the original
func CopyBucket(bucket *model.Bucket) (c model.Bucket) {
	c = *bucket
	c.Entries = make([]model.Entry, len(bucket.Entries))
	_ = copy(c.Entries, bucket.Entries)

	return
}

// CopyBuckets - Returns deep copies of all buckets in the order given
func CopyBuckets(buckets []*model.Bucket) (c []model.Bucket) {
	c = make([]model.Bucket, len(buckets))
	for i, b := range buckets {
		c[i] = CopyBucket(b)
	}

	return
}

// CopyDirectory - Returns a copy of the directory
func CopyDirectory(directory []model.DirectoryEntry) (c []model.DirectoryEntry) {
	c = make([]model.DirectoryEntry, len(directory))
	_ = copy(c, directory)

	return
}

// DoubleDirectory - Returns a directory twice the size where every entry is replaced by two entries with
// addresses extended by '0' and '1' respectively, both referencing the same bucket as the original entry.
// The order of the directory is preserved, entry i of the result has address i in binary.
func DoubleDirectory(directory []model.DirectoryEntry) (doubled []model.DirectoryEntry) {
	doubled = make([]model.DirectoryEntry, 0, 2*len(directory))
	for _, entry := range directory {
		doubled = append(doubled,
			model.DirectoryEntry{Address: entry.Address + "0", BucketID: entry.BucketID},
			model.DirectoryEntry{Address: entry.Address + "1", BucketID: entry.BucketID},
		)
	}

	return
}

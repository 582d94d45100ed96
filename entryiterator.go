package extendiblehash

import "github.com/gostonefire/extendiblehash/outcome"

// EntryIterator - Is used to iterate over entries one by one, bucket by bucket.
// It works on a snapshot, later mutations of the index are not seen.
type EntryIterator struct {
	buckets []Bucket
	bucket  int
	entry   int
}

// newEntryIterator - Returns a pointer to a new EntryIterator struct
func newEntryIterator(buckets []Bucket) *EntryIterator {
	return &EntryIterator{buckets: buckets}
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next.
func (I *EntryIterator) HasNext() bool {
	for I.bucket < len(I.buckets) {
		if I.entry < len(I.buckets[I.bucket].Entries) {
			return true
		}
		I.bucket++
		I.entry = 0
	}

	return false
}

// Next - Returns next entry.
// It returns:
//   - entry is the next entry.
//   - bucketID is the id of the bucket holding the entry.
//   - err is of type outcome.NoRecordFound if there are no more entries when calling this function.
func (I *EntryIterator) Next() (entry Entry, bucketID int, err error) {
	if !I.HasNext() {
		err = outcome.NewNoRecordFound("no more entries")
		return
	}

	b := I.buckets[I.bucket]
	entry = b.Entries[I.entry]
	bucketID = b.ID
	I.entry++

	return
}

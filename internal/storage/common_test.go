//go:build unit

package storage

import (
	"github.com/gostonefire/extendiblehash/internal/model"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCopyBucket(t *testing.T) {
	t.Run("copies bucket without sharing entries", func(t *testing.T) {
		// Prepare
		bucket := &model.Bucket{
			ID:         3,
			LocalDepth: 2,
			Address:    "01",
			Entries:    []model.Entry{{Key: 40, Hash: 40, BinaryHash: "0101000"}},
			Capacity:   3,
		}

		// Execute
		c := CopyBucket(bucket)
		bucket.Entries[0].Key = 99
		bucket.Entries = append(bucket.Entries, model.Entry{Key: 41})

		// Check
		assert.Equal(t, 3, c.ID, "same id")
		assert.Equal(t, "01", c.Address, "same address")
		assert.Len(t, c.Entries, 1, "copy keeps its own length")
		assert.Equal(t, int64(40), c.Entries[0].Key, "copy keeps its own entries")
	})
}

func TestDoubleDirectory(t *testing.T) {
	t.Run("doubles directory keeping order and references", func(t *testing.T) {
		// Prepare
		directory := []model.DirectoryEntry{
			{Address: "0", BucketID: 0},
			{Address: "1", BucketID: 1},
		}

		// Execute
		doubled := DoubleDirectory(directory)

		// Check
		assert.Equal(t, []model.DirectoryEntry{
			{Address: "00", BucketID: 0},
			{Address: "01", BucketID: 0},
			{Address: "10", BucketID: 1},
			{Address: "11", BucketID: 1},
		}, doubled, "addresses extended on the right")
		assert.Len(t, directory, 2, "original untouched")
	})
}

func TestCopyDirectory(t *testing.T) {
	t.Run("copies directory", func(t *testing.T) {
		// Prepare
		directory := []model.DirectoryEntry{{Address: "0", BucketID: 0}, {Address: "1", BucketID: 1}}

		// Execute
		c := CopyDirectory(directory)
		directory[0].BucketID = 5

		// Check
		assert.Equal(t, 0, c[0].BucketID, "copy is independent")
	})
}

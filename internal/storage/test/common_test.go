//go:build integration

package test

import (
	"errors"
	"fmt"
	"github.com/gostonefire/extendiblehash"
	"github.com/gostonefire/extendiblehash/internal/model"
	"github.com/gostonefire/extendiblehash/internal/storage/extendible"
	"github.com/gostonefire/extendiblehash/outcome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"testing"
)

type TestCaseCommon struct {
	layoutName     string
	hashModulo     int64
	maxGlobalDepth int
	bucketCapacity int
	keys           int
}

// place - Routes entry to its bucket, splitting until it fits or the bucket is at max global depth
func place(s extendiblehash.IndexManagement, entry model.Entry) (placed bool, err error) {
	for {
		bucket := s.LookupBucket(entry.Hash)
		if len(bucket.Entries) < bucket.Capacity {
			err = s.Append(bucket.ID, entry)
			placed = err == nil
			return
		}

		_, err = s.Split(bucket.ID)
		if errors.Is(err, outcome.CapacityExceeded{}) {
			err = nil
			return
		}
		if err != nil {
			return
		}
	}
}

func TestStorageUtilization(t *testing.T) {
	t.Run("utilization tests for different layouts", func(t *testing.T) {
		// Prepare
		tests := []TestCaseCommon{
			{layoutName: "narrow", hashModulo: 97, maxGlobalDepth: 7, bucketCapacity: 1, keys: 200},
			{layoutName: "default", hashModulo: 97, maxGlobalDepth: 4, bucketCapacity: 3, keys: 200},
			{layoutName: "wide", hashModulo: 4099, maxGlobalDepth: 10, bucketCapacity: 8, keys: 1000},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("gets utilization information for %s", test.layoutName), func(t *testing.T) {
				// Prepare
				var s extendiblehash.IndexManagement
				var err error
				s, err = extendible.NewEHStorage(model.EHConf{
					HashModulo:     test.hashModulo,
					MaxGlobalDepth: test.maxGlobalDepth,
					BucketCapacity: test.bucketCapacity,
				})
				require.NoError(t, err, "creates storage")

				placed := 0
				for i := 0; i < test.keys; i++ {
					key := rand.Int63n(1 << 30)
					if s.Contains(key) {
						continue
					}
					entry, err := s.NewEntry(key)
					require.NoErrorf(t, err, "creates entry for key %d", key)

					ok, err := place(s, entry)
					require.NoErrorf(t, err, "places key %d", key)
					if ok {
						placed++
					}
				}

				// Execute
				params := s.GetStorageParameters()
				snapshot := s.Snapshot()

				// Check
				assert.NoError(t, s.CheckInvariants(), "invariants hold")
				assert.Equal(t, len(snapshot.Buckets), params.NumberOfBuckets, "same number of buckets between parameters and snapshot")
				assert.Equal(t, len(snapshot.Directory), params.DirectorySize, "same directory size between parameters and snapshot")
				assert.Equal(t, 1<<params.GlobalDepth, params.DirectorySize, "directory size follows global depth")
				assert.LessOrEqual(t, params.GlobalDepth, test.maxGlobalDepth, "global depth within max")

				stored := 0
				for _, b := range snapshot.Buckets {
					stored += len(b.Entries)
					assert.LessOrEqualf(t, len(b.Entries), test.bucketCapacity, "bucket %d within capacity", b.ID)
				}
				assert.Equal(t, placed, stored, "every placed key is stored once")

				// Clean up
				s.Reset()
				assert.Equal(t, 2, s.GetStorageParameters().NumberOfBuckets, "back to two buckets")
			})
		}
	})
}

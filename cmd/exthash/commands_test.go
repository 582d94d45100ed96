//go:build unit

package main

import (
	"bytes"
	"encoding/json"
	"github.com/gostonefire/extendiblehash/outcome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
	"testing"
)

func TestInsert_run(t *testing.T) {
	t.Run("prints layout as text", func(t *testing.T) {
		// Prepare
		var stdout, stderr bytes.Buffer
		x := Insert{Format: formatText}

		// Execute
		err := x.run(DefaultConfig(), &stdout, &stderr, []string{"1", "2", "40", "4", "90"})

		// Check
		assert.NoError(t, err, "runs insert")
		out := stdout.String()
		assert.Contains(t, out, "1, 2, 40, 4, 90", "inserted keys")
		assert.Contains(t, out, "global depth 2 of 4, bucket capacity 3, hash modulo 97 (7 bit addresses)", "header")
		assert.Contains(t, out, "1 (0000001), 2 (0000010), 4 (0000100)", "bucket 0 entries")
		assert.Contains(t, out, "40 (0101000)", "bucket 2 entries")
		assert.Empty(t, stderr.String(), "no warnings")
	})

	t.Run("reports rejected keys as yaml", func(t *testing.T) {
		// Prepare
		var stdout, stderr bytes.Buffer
		x := Insert{Format: formatYAML}

		// Execute
		err := x.run(DefaultConfig(), &stdout, &stderr, []string{"1", "2", "3", "4", "3"})

		// Check
		assert.NoError(t, err, "runs insert")
		var report insertReport
		require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &report), "parses yaml")
		assert.Equal(t, []int64{1, 2, 3}, report.Inserted, "inserted")
		assert.Equal(t, []int64{3}, report.AlreadyPresent, "already present")
		assert.Equal(t, []int64{4}, report.Rejected, "rejected")
		assert.Equal(t, 4, report.Snapshot.GlobalDepth, "global depth")
		assert.Len(t, report.Snapshot.Buckets, 5, "buckets")
	})

	t.Run("traces every step as json", func(t *testing.T) {
		// Prepare
		var stdout, stderr bytes.Buffer
		x := Insert{Format: formatJSON, Trace: true}

		// Execute
		err := x.run(DefaultConfig(), &stdout, &stderr, []string{"1", "2", "40", "4"})

		// Check
		assert.NoError(t, err, "runs insert")
		dec := json.NewDecoder(&stdout)
		var kinds []string
		for i := 0; i < 5; i++ {
			var step traceStep
			require.NoErrorf(t, dec.Decode(&step), "decodes step %d", i)
			kinds = append(kinds, step.Kind)
			if step.Kind == "split" {
				assert.True(t, step.DirectoryDoubled, "split doubled directory")
				assert.Equal(t, 2, step.NewBucketID, "new bucket")
			}
		}
		assert.Equal(t, []string{"inserted", "inserted", "inserted", "split", "inserted"}, kinds, "steps")

		var report insertReport
		require.NoError(t, dec.Decode(&report), "decodes report")
		assert.Equal(t, []int64{1, 2, 40, 4}, report.Inserted, "inserted")
		assert.False(t, dec.More(), "nothing more")
	})

	t.Run("warns on shared hash", func(t *testing.T) {
		// Prepare
		var stdout, stderr bytes.Buffer
		x := Insert{Format: formatText, Warn: true}

		// Execute
		err := x.run(DefaultConfig(), &stdout, &stderr, []string{"90", "187", "90"})

		// Check
		assert.NoError(t, err, "runs insert")
		assert.Equal(t, "warning: key 187 shares hash 90 (1011010) with stored keys 90\n", stderr.String(), "one warning")
	})

	t.Run("error on invalid keys", func(t *testing.T) {
		// Prepare
		var stdout, stderr bytes.Buffer
		x := Insert{Format: formatText}

		// Execute
		errParse := x.run(DefaultConfig(), &stdout, &stderr, []string{"1", "abc"})
		errNegative := x.run(DefaultConfig(), &stdout, &stderr, []string{"1", "-3"})
		errEmpty := x.run(DefaultConfig(), &stdout, &stderr, nil)

		// Check
		assert.Error(t, errParse, "not a number")
		assert.ErrorIs(t, errNegative, outcome.InvalidKey{}, "negative key")
		assert.Error(t, errEmpty, "no keys")
		assert.Empty(t, stdout.String(), "nothing printed")
	})

	t.Run("error on invalid configuration", func(t *testing.T) {
		// Prepare
		var stdout, stderr bytes.Buffer
		x := Insert{Format: formatText}
		config := DefaultConfig()
		config.BucketCapacity = 0

		// Execute
		err := x.run(config, &stdout, &stderr, []string{"1"})

		// Check
		assert.ErrorIs(t, err, outcome.ConfigurationError{}, "configuration error")
	})
}

func TestLookup_run(t *testing.T) {
	t.Run("finds buckets as yaml", func(t *testing.T) {
		// Prepare
		var stdout bytes.Buffer
		x := Lookup{Format: formatYAML, Keys: []int64{40, 7}}

		// Execute
		err := x.run(DefaultConfig(), &stdout, []string{"1", "2", "40", "4"})

		// Check
		assert.NoError(t, err, "runs lookup")
		var results []lookupResult
		require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &results), "parses yaml")
		require.Len(t, results, 2, "two results")
		assert.True(t, results[0].Found, "key 40 found")
		require.NotNil(t, results[0].Bucket, "bucket of key 40")
		assert.Equal(t, 2, results[0].Bucket.ID, "bucket id")
		assert.Equal(t, "01", results[0].Bucket.Address, "bucket address")
		assert.Equal(t, lookupResult{Key: 7}, results[1], "key 7 not found")
	})

	t.Run("prints text table", func(t *testing.T) {
		// Prepare
		var stdout bytes.Buffer
		x := Lookup{Format: formatText, Keys: []int64{90, 8}}

		// Execute
		err := x.run(DefaultConfig(), &stdout, []string{"90"})

		// Check
		assert.NoError(t, err, "runs lookup")
		assert.Contains(t, stdout.String(), "not found", "key 8 not found")
		assert.Contains(t, stdout.String(), "LOCAL DEPTH", "header")
	})
}

package main

import (
	"encoding/json"
	"fmt"
	"github.com/gostonefire/extendiblehash"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
	"io"
	"strings"
	"text/tabwriter"
)

const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

// insertReport - Result of the insert command
type insertReport struct {
	Inserted       []int64                 `yaml:"inserted" json:"inserted"`
	AlreadyPresent []int64                 `yaml:"alreadyPresent" json:"alreadyPresent"`
	Rejected       []int64                 `yaml:"rejected" json:"rejected"`
	Snapshot       extendiblehash.Snapshot `yaml:"snapshot" json:"snapshot"`
}

// lookupResult - Result for one key of the lookup command, Bucket is nil when the key is not stored
type lookupResult struct {
	Key    int64                  `yaml:"key" json:"key"`
	Found  bool                   `yaml:"found" json:"found"`
	Bucket *extendiblehash.Bucket `yaml:"bucket,omitempty" json:"bucket,omitempty"`
}

// traceStep - One observed event as printed by insert --trace
type traceStep struct {
	Kind             string                  `yaml:"kind" json:"kind"`
	Key              int64                   `yaml:"key" json:"key"`
	BucketID         int                     `yaml:"bucketId" json:"bucketId"`
	NewBucketID      int                     `yaml:"newBucketId,omitempty" json:"newBucketId,omitempty"`
	DirectoryDoubled bool                    `yaml:"directoryDoubled,omitempty" json:"directoryDoubled,omitempty"`
	Snapshot         extendiblehash.Snapshot `yaml:"snapshot" json:"snapshot"`
}

// encode - Writes v as YAML or JSON
func encode(w io.Writer, format string, v interface{}) (err error) {
	switch format {
	case formatYAML:
		var data []byte
		data, err = yaml.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "could not encode yaml")
		}
		_, err = w.Write(append([]byte("---\n"), data...))
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(v)
	default:
		err = errors.Errorf("unknown output format %q", format)
	}

	return
}

// renderInsertReport - Writes the outcome of an insert command in format
func renderInsertReport(w io.Writer, format string, report insertReport) error {
	if format != formatText {
		return encode(w, format, report)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "inserted:\t%s\n", joinKeys(report.Inserted))
	_, _ = fmt.Fprintf(tw, "already present:\t%s\n", joinKeys(report.AlreadyPresent))
	_, _ = fmt.Fprintf(tw, "rejected:\t%s\n", joinKeys(report.Rejected))
	if err := tw.Flush(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w)

	return renderSnapshotText(w, report.Snapshot)
}

// renderLookupResults - Writes the outcome of a lookup command in format
func renderLookupResults(w io.Writer, format string, results []lookupResult) error {
	if format != formatText {
		return encode(w, format, results)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "KEY\tBUCKET\tADDRESS\tLOCAL DEPTH")
	for _, r := range results {
		if !r.Found {
			_, _ = fmt.Fprintf(tw, "%d\tnot found\t-\t-\n", r.Key)
			continue
		}
		_, _ = fmt.Fprintf(tw, "%d\t%d\t%s\t%d\n", r.Key, r.Bucket.ID, r.Bucket.Address, r.Bucket.LocalDepth)
	}

	return tw.Flush()
}

// renderEvent - Writes one observed event in format
func renderEvent(w io.Writer, format string, event extendiblehash.Event) error {
	step := traceStep{
		Kind:             event.Kind.String(),
		Key:              event.Key,
		BucketID:         event.BucketID,
		NewBucketID:      event.NewBucketID,
		DirectoryDoubled: event.DirectoryDoubled,
		Snapshot:         event.Snapshot,
	}
	if format != formatText {
		return encode(w, format, step)
	}

	var line string
	switch event.Kind {
	case extendiblehash.EventSplit:
		line = fmt.Sprintf("split bucket %d, new bucket %d", event.BucketID, event.NewBucketID)
		if event.DirectoryDoubled {
			line += ", directory doubled"
		}
	case extendiblehash.EventInserted:
		line = fmt.Sprintf("inserted key %d into bucket %d", event.Key, event.BucketID)
	case extendiblehash.EventRejected:
		line = fmt.Sprintf("rejected key %d, bucket %d is full", event.Key, event.BucketID)
	default:
		line = event.Kind.String()
	}
	_, _ = fmt.Fprintf(w, "== %s\n", line)

	return renderSnapshotText(w, event.Snapshot)
}

// renderSnapshotText - Writes snapshot as a directory table followed by a bucket table
func renderSnapshotText(w io.Writer, snapshot extendiblehash.Snapshot) error {
	_, _ = fmt.Fprintf(w, "global depth %d of %d, bucket capacity %d, hash modulo %d (%d bit addresses)\n\n",
		snapshot.GlobalDepth, snapshot.MaxGlobalDepth, snapshot.BucketCapacity, snapshot.HashModulo, snapshot.AddressWidth)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "DIRECTORY\tBUCKET")
	for _, d := range snapshot.Directory {
		_, _ = fmt.Fprintf(tw, "%s\t%d\n", d.Address, d.BucketID)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w)

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "BUCKET\tADDRESS\tLOCAL DEPTH\tENTRIES")
	for _, b := range snapshot.Buckets {
		entries := make([]string, len(b.Entries))
		for i, e := range b.Entries {
			entries[i] = fmt.Sprintf("%d (%s)", e.Key, e.BinaryHash)
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", b.ID, b.Address, b.LocalDepth, strings.Join(entries, ", "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w)

	return nil
}

// joinKeys - Returns keys separated by commas, or "-" if there are none
func joinKeys(keys []int64) string {
	if len(keys) == 0 {
		return "-"
	}

	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = fmt.Sprintf("%d", k)
	}

	return strings.Join(s, ", ")
}

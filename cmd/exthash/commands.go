package main

import (
	"errors"
	"fmt"
	"github.com/gostonefire/extendiblehash"
	"github.com/gostonefire/extendiblehash/outcome"
	pkgerrors "github.com/pkg/errors"
	"io"
	"os"
	"strconv"
)

// Insert - Options of the insert command
type Insert struct {
	Common
	Trace  bool   `short:"t" long:"trace" description:"print the layout after every insert, split and rejection"`
	Warn   bool   `short:"w" long:"warn" description:"warn before inserting a key which hash is shared by stored keys"`
	Format string `short:"f" long:"format" default:"text" choice:"text" choice:"yaml" choice:"json" description:"output format"`
}

// Lookup - Options of the lookup command
type Lookup struct {
	Common
	Keys   []int64 `short:"k" long:"key" required:"true" description:"key to look up, can be repeated"`
	Format string  `short:"f" long:"format" default:"text" choice:"text" choice:"yaml" choice:"json" description:"output format"`
}

// Execute - Runs the insert command with keys given as positional arguments
func (x *Insert) Execute(args []string) error {
	config, err := x.Common.load()
	if err != nil {
		return err
	}

	return x.run(config, os.Stdout, os.Stderr, args)
}

// run - Builds the index from config and inserts keys, one positional argument each
func (x *Insert) run(config Config, stdout, stderr io.Writer, args []string) (err error) {
	keys, err := parseKeys(args)
	if err != nil {
		return
	}

	// Events can not return errors, the first one is kept and reported after the insert it belongs to
	var traceErr error
	conf := config.indexConf()
	if x.Trace {
		conf.Observer = func(event extendiblehash.Event) {
			if traceErr == nil {
				traceErr = renderEvent(stdout, x.Format, event)
			}
		}
	}

	eh, _, err := extendiblehash.NewExtendibleHash(conf)
	if err != nil {
		return
	}

	report := insertReport{}
	for _, key := range keys {
		if x.Warn {
			warnSharedHash(stderr, eh, key)
		}

		var result outcome.Outcome
		result, err = eh.Insert(key)
		if traceErr != nil {
			return pkgerrors.Wrap(traceErr, "could not print trace")
		}

		switch {
		case result == outcome.Inserted:
			report.Inserted = append(report.Inserted, key)
		case result == outcome.AlreadyPresent:
			report.AlreadyPresent = append(report.AlreadyPresent, key)
		case result == outcome.Rejected && errors.Is(err, outcome.CapacityExceeded{}):
			report.Rejected = append(report.Rejected, key)
		default:
			return pkgerrors.Wrapf(err, "could not insert key %d", key)
		}
	}
	err = nil

	if len(report.Rejected) > 0 {
		log.Warningf("%d keys rejected, a larger bucket capacity or max global depth is needed", len(report.Rejected))
	}

	report.Snapshot = eh.Snapshot()

	return renderInsertReport(stdout, x.Format, report)
}

// Execute - Runs the lookup command with the index keys given as positional arguments
func (x *Lookup) Execute(args []string) error {
	config, err := x.Common.load()
	if err != nil {
		return err
	}

	return x.run(config, os.Stdout, args)
}

// run - Builds the index from config and args, then looks up every --key
func (x *Lookup) run(config Config, stdout io.Writer, args []string) (err error) {
	keys, err := parseKeys(args)
	if err != nil {
		return
	}

	eh, _, err := extendiblehash.NewExtendibleHash(config.indexConf())
	if err != nil {
		return
	}

	var result outcome.Outcome
	for _, key := range keys {
		result, err = eh.Insert(key)
		if result == outcome.Rejected {
			log.Warningf("key %d could not be indexed: %s", key, err)
			continue
		}
		if err != nil {
			return pkgerrors.Wrapf(err, "could not insert key %d", key)
		}
	}

	results := make([]lookupResult, 0, len(x.Keys))
	for _, key := range x.Keys {
		var bucket extendiblehash.Bucket
		bucket, err = eh.Lookup(key)
		if errors.Is(err, outcome.NoRecordFound{}) {
			results = append(results, lookupResult{Key: key})
			continue
		}
		if err != nil {
			return pkgerrors.Wrapf(err, "could not look up key %d", key)
		}
		results = append(results, lookupResult{Key: key, Found: true, Bucket: &bucket})
	}

	return renderLookupResults(stdout, x.Format, results)
}

// warnSharedHash - Writes a warning to w if key is not stored but its hash is shared by stored keys
func warnSharedHash(w io.Writer, eh *extendiblehash.ExtendibleHash, key int64) {
	entry, err := eh.Preview(key)
	if err != nil {
		return
	}

	shared := eh.EntriesWithHash(entry.Hash)
	for _, k := range shared {
		if k == key {
			return
		}
	}

	if len(shared) > 0 {
		_, _ = fmt.Fprintf(w, "warning: key %d shares hash %d (%s) with stored keys %s\n",
			key, entry.Hash, entry.BinaryHash, joinKeys(shared))
	}
}

// parseKeys - Parses every argument as a decimal key
func parseKeys(args []string) (keys []int64, err error) {
	if len(args) == 0 {
		err = pkgerrors.New("no keys given")
		return
	}

	keys = make([]int64, len(args))
	for i, a := range args {
		keys[i], err = strconv.ParseInt(a, 10, 64)
		if err != nil {
			err = pkgerrors.Wrapf(err, "invalid key %q", a)
			return
		}
	}

	return
}

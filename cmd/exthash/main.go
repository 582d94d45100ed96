package main

import (
	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"
	"os"
)

var log = logging.MustGetLogger("main")

var insertCommand Insert
var lookupCommand Lookup
var parser = flags.NewParser(nil, flags.Default)

func main() {
	_, _ = parser.AddCommand("insert",
		"insert keys into an extendible hash index",
		"The insert command builds an index, inserts the keys in the order given and prints the resulting layout",
		&insertCommand)
	_, _ = parser.AddCommand("lookup",
		"find the buckets holding keys",
		"The lookup command builds an index from the keys given and reports the bucket holding every --key",
		&lookupCommand)

	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}
}

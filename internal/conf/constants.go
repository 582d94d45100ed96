package conf

// InitialGlobalDepth - Global depth of a freshly configured index
const InitialGlobalDepth int = 1

// InitialLocalDepth - Local depth of the two buckets of a freshly configured index
const InitialLocalDepth int = 1

// InitialNumberOfBuckets - Number of buckets of a freshly configured index, addressed "0" and "1"
const InitialNumberOfBuckets int = 2

// MinHashModulo - Smallest permitted hash modulo
const MinHashModulo int64 = 2

// MinGlobalDepth - Smallest permitted max global depth
const MinGlobalDepth int = 1

// MinBucketCapacity - Smallest permitted bucket capacity
const MinBucketCapacity int = 1

// MaxSupportedGlobalDepth - Ceiling for the configured max global depth, the directory can hold 2^24 entries
const MaxSupportedGlobalDepth int = 24

// DefaultHashModulo - Hash modulo used when nothing else is configured
const DefaultHashModulo int64 = 97

// DefaultMaxGlobalDepth - Max global depth used when nothing else is configured
const DefaultMaxGlobalDepth int = 4

// DefaultBucketCapacity - Bucket capacity used when nothing else is configured
const DefaultBucketCapacity int = 3

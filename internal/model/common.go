package model

import "github.com/gostonefire/bidhashmap/hashfunc"

// Bucket - Represents all entries in a bucket in insertion order
type Bucket struct {
	BucketNo int64
	Entries  []Entry
}

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	NumberOfBuckets   int64
	Records           int64
	OccupiedBuckets   int64
	InternalAlgorithm bool
}

// ChainConf - Is a struct to be passed in the call to NewSCBuckets and contains configuration that affects
// bucket processing.
//   - NumberOfBuckets is the number of buckets to allocate
//   - HashAlgorithm is the hash function to use, nil selects the internal modulo algorithm
type ChainConf struct {
	NumberOfBuckets int64
	HashAlgorithm   hashfunc.HashAlgorithm
}

package bidhashmap

import (
	"github.com/gostonefire/bidhashmap/hashfunc"
	"github.com/gostonefire/bidhashmap/internal/chain"
	"github.com/gostonefire/bidhashmap/internal/conf"
	"github.com/gostonefire/bidhashmap/internal/model"
	"github.com/gostonefire/bidhashmap/internal/storage/separatechaining"
	"iter"
)

// Bid - A bid record, see model.Bid for field descriptions
type Bid = model.Bid

// DefaultNumberOfBuckets - Number of buckets used by NewDefaultBidHashMap
const DefaultNumberOfBuckets = conf.DefaultNumberOfBuckets

// BucketManagement - Interface for any bucket management implementation
type BucketManagement interface {
	Get(bidId string) (entry model.Entry, err error)
	Append(bid model.Bid) (entry model.Entry, err error)
	Delete(bidId string) (entry model.Entry, err error)
	GetBucketNo(bidId string) (bucketNo int64, err error)
	GetBucket(bucketNo int64) (bucket model.Bucket, chainIterator *chain.Records, err error)
	Occupied() iter.Seq[int64]
	GetStorageParameters() (params model.StorageParameters)
}

// HashMapInfo - Information structure containing some information about the hash map created
//   - NumberOfBuckets is the total number of buckets in the bid hash map, it never changes
//   - InternalAlgorithm is true if the internal modulo hash algorithm is used
type HashMapInfo struct {
	NumberOfBuckets   int64
	InternalAlgorithm bool
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - OccupiedBuckets is the number of buckets holding at least one record
//   - LongestChain is the number of records in the most populated bucket
//   - LoadFactor is Records divided by the number of buckets
//   - BucketDistribution is the number of records stored in each available bucket
type HashMapStat struct {
	Records            int64
	OccupiedBuckets    int64
	LongestChain       int64
	LoadFactor         float64
	BucketDistribution []int64
}

// BidHashMap - The main implementation struct, a fixed size hash table with separate chaining for bids.
// It is not safe for concurrent use.
type BidHashMap struct {
	bucketManagement BucketManagement
	numberOfBuckets  int64
}

// NewBidHashMap - Returns a new bid hash map with a fixed number of buckets.
// The number of buckets never changes, chains simply grow as more bids are inserted.
//   - numberOfBuckets is the number of buckets to allocate, it must be at least 1
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface, nil selects bucket = id % numberOfBuckets
//
// It returns:
//   - bidHashMap is a pointer to a BidHashMap struct
//   - hashMapInfo is a HashMapInfo struct containing some data regarding the hash map created.
//   - err is of type bhmerrors.ConstructionError if numberOfBuckets (or the table size reported by hashAlgorithm) is not usable
func NewBidHashMap(numberOfBuckets int64, hashAlgorithm hashfunc.HashAlgorithm) (
	bidHashMap *BidHashMap,
	hashMapInfo HashMapInfo,
	err error,
) {
	chainConf := model.ChainConf{
		NumberOfBuckets: numberOfBuckets,
		HashAlgorithm:   hashAlgorithm,
	}

	var bm BucketManagement
	bm, err = separatechaining.NewSCBuckets(chainConf)
	if err != nil {
		return
	}

	sp := bm.GetStorageParameters()

	bidHashMap = &BidHashMap{
		bucketManagement: bm,
		numberOfBuckets:  sp.NumberOfBuckets,
	}

	hashMapInfo = HashMapInfo{
		NumberOfBuckets:   sp.NumberOfBuckets,
		InternalAlgorithm: sp.InternalAlgorithm,
	}

	return
}

// NewDefaultBidHashMap - Returns a new bid hash map with DefaultNumberOfBuckets buckets and the internal hash algorithm
func NewDefaultBidHashMap() *BidHashMap {
	// The default parameters are always valid
	bidHashMap, _, _ := NewBidHashMap(DefaultNumberOfBuckets, nil)
	return bidHashMap
}

// Info - Returns information about the bid hash map
func (B *BidHashMap) Info() HashMapInfo {
	sp := B.bucketManagement.GetStorageParameters()

	return HashMapInfo{
		NumberOfBuckets:   sp.NumberOfBuckets,
		InternalAlgorithm: sp.InternalAlgorithm,
	}
}

// Len - Returns the number of bids stored, duplicates included
func (B *BidHashMap) Len() int64 {
	return B.bucketManagement.GetStorageParameters().Records
}

package separatechaining

import (
	"fmt"
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/gostonefire/bidhashmap/bhmerrors"
	"github.com/gostonefire/bidhashmap/hashfunc"
	"github.com/gostonefire/bidhashmap/internal/chain"
	"github.com/gostonefire/bidhashmap/internal/hash"
	"github.com/gostonefire/bidhashmap/internal/model"
	"github.com/gostonefire/bidhashmap/internal/utils"
	"iter"
	"math"
	"slices"
)

// SCBuckets - Represents an in memory implementation of the Separate Chaining Collision Resolution Technique.
// Each bucket holds an ordered chain of entries that grows without bound, and the set of non-empty buckets is
// tracked in a roaring bitmap so that walks over the whole table can skip empty buckets.
type SCBuckets struct {
	buckets           [][]model.Entry
	occupied          *roaring.Bitmap
	numberOfBuckets   int64
	records           int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
}

// NewSCBuckets - Returns a pointer to a new instance of the Separate Chaining bucket implementation.
//   - chainConf is a model.ChainConf struct providing configuration parameters affecting bucket allocation
//
// It returns:
//   - scBuckets which is a pointer to the created instance
//   - err which is either of type bhmerrors.ConstructionError or nil
func NewSCBuckets(chainConf model.ChainConf) (scBuckets *SCBuckets, err error) {
	err = checkNumberOfBuckets(chainConf.NumberOfBuckets)
	if err != nil {
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if chainConf.HashAlgorithm == nil {
		chainConf.HashAlgorithm = hash.NewModuloHashAlgorithm(chainConf.NumberOfBuckets)
		internalAlg = true
	} else {
		chainConf.HashAlgorithm.SetTableSize(chainConf.NumberOfBuckets)
	}

	// A custom algorithm may adjust the table size, so allocate for what it reports
	numberOfBuckets := chainConf.HashAlgorithm.GetTableSize()
	err = checkNumberOfBuckets(numberOfBuckets)
	if err != nil {
		err = bhmerrors.NewConstructionError(fmt.Sprintf("hash algorithm reported an invalid table size: %s", err))
		return
	}

	scBuckets = &SCBuckets{
		buckets:           make([][]model.Entry, numberOfBuckets),
		occupied:          roaring.New(),
		numberOfBuckets:   numberOfBuckets,
		hashAlgorithm:     chainConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from SCBuckets
func (S *SCBuckets) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		NumberOfBuckets:   S.numberOfBuckets,
		Records:           S.records,
		OccupiedBuckets:   int64(S.occupied.GetCardinality()),
		InternalAlgorithm: S.internalAlgorithm,
	}

	return
}

// GetBucketNo - Returns which bucket number the given bid id results in
//   - bidId is the identifier of a bid
//
// It returns:
//   - bucketNo is the bucket the bid id hashes into
//   - err is either of type bhmerrors.ParseError or a standard error if the hash algorithm misbehaves
func (S *SCBuckets) GetBucketNo(bidId string) (bucketNo int64, err error) {
	key, err := utils.ParseKey(bidId)
	if err != nil {
		return
	}

	bucketNo = S.hashAlgorithm.HashFunc(key)
	if bucketNo < 0 || bucketNo >= S.numberOfBuckets {
		err = fmt.Errorf("recieved bucket number %d from hash algorithm is outside permitted range", bucketNo)
		return
	}

	return
}

// GetBucket - Returns a bucket with its entries given the bucket number
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
//
// It returns:
//   - bucket is a model.Bucket struct containing a copy of all entries in the bucket
//   - chainIterator is a chain.Records struct that can be used to walk the same entries one by one
//   - err is standard error
func (S *SCBuckets) GetBucket(bucketNo int64) (bucket model.Bucket, chainIterator *chain.Records, err error) {
	if bucketNo < 0 || bucketNo >= S.numberOfBuckets {
		err = fmt.Errorf("bucket number %d is outside permitted range 0 to %d", bucketNo, S.numberOfBuckets-1)
		return
	}

	bucket = model.Bucket{
		BucketNo: bucketNo,
		Entries:  slices.Clone(S.buckets[bucketNo]),
	}
	chainIterator = chain.NewRecords(bucket.Entries)

	return
}

// Get - Gets the first entry, in insertion order, that matches the given bid id.
//   - bidId is the identifier of a bid
//
// It returns:
//   - entry is the matching entry if found, if not found an error of type bhmerrors.NoRecordFound is also returned.
//   - err is either of type bhmerrors.NoRecordFound, bhmerrors.ParseError or a standard error
func (S *SCBuckets) Get(bidId string) (entry model.Entry, err error) {
	bucketNo, err := S.GetBucketNo(bidId)
	if err != nil {
		return
	}

	position, err := S.findFirst(bucketNo, bidId)
	if err != nil {
		return
	}

	entry = S.buckets[bucketNo][position]

	return
}

// Append - Appends a bid to the end of the chain of the bucket its id hashes into.
// No check is made for existing entries with the same bid id, a duplicate is simply added after them.
//   - bid is the bid to store
//
// It returns:
//   - entry is the entry as stored, including the bucket number it was hashed into
//   - err is either of type bhmerrors.ParseError or a standard error, the storage is unchanged if not nil
func (S *SCBuckets) Append(bid model.Bid) (entry model.Entry, err error) {
	bucketNo, err := S.GetBucketNo(bid.BidId)
	if err != nil {
		return
	}

	entry = model.Entry{Bid: bid, BucketNo: bucketNo}
	S.buckets[bucketNo] = append(S.buckets[bucketNo], entry)
	S.occupied.Add(uint32(bucketNo))
	S.records++

	return
}

// Delete - Deletes the first entry, in insertion order, that matches the given bid id. Later duplicates are kept.
//   - bidId is the identifier of a bid
//
// It returns:
//   - entry is the entry that was removed
//   - err is either of type bhmerrors.NoRecordFound, bhmerrors.ParseError or a standard error
func (S *SCBuckets) Delete(bidId string) (entry model.Entry, err error) {
	bucketNo, err := S.GetBucketNo(bidId)
	if err != nil {
		return
	}

	position, err := S.findFirst(bucketNo, bidId)
	if err != nil {
		return
	}

	entry = S.buckets[bucketNo][position]
	S.buckets[bucketNo] = slices.Delete(S.buckets[bucketNo], position, position+1)
	if len(S.buckets[bucketNo]) == 0 {
		S.buckets[bucketNo] = nil
		S.occupied.Remove(uint32(bucketNo))
	}
	S.records--

	return
}

// Occupied - Returns a sequence of all bucket numbers that currently hold at least one entry, in ascending order.
// The sequence is computed from a snapshot taken when iteration starts.
func (S *SCBuckets) Occupied() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		it := S.occupied.Clone().Iterator()
		for it.HasNext() {
			if !yield(int64(it.Next())) {
				return
			}
		}
	}
}

// checkNumberOfBuckets - Returns a bhmerrors.ConstructionError if the number of buckets can not be addressed
func checkNumberOfBuckets(numberOfBuckets int64) (err error) {
	if numberOfBuckets <= 0 {
		err = bhmerrors.NewConstructionError("number of buckets must be a positive value higher than 0 (zero)")
		return
	}
	if numberOfBuckets > math.MaxUint32 {
		err = bhmerrors.NewConstructionError(fmt.Sprintf("number of buckets can not exceed %d", uint64(math.MaxUint32)))
		return
	}

	return
}

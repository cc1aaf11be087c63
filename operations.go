package bidhashmap

import (
	"errors"
	"github.com/gostonefire/bidhashmap/bhmerrors"
	"iter"
)

// Insert - Adds a bid to the end of the chain of the bucket its id hashes into.
// No uniqueness check is made, inserting a bid id that already exists adds a second entry after the first one.
//   - bid is the bid to insert, its BidId must be a non-negative base 10 integer
//
// It returns:
//   - err is either of type bhmerrors.ParseError or a standard error, if not nil the bid hash map is unchanged
func (B *BidHashMap) Insert(bid Bid) (err error) {
	_, err = B.bucketManagement.Append(bid)

	return
}

// Search - Returns the bid that corresponds to the given bid id.
// If several bids share the id, the one inserted first is returned.
//   - bidId is the identifier of a bid
//
// It returns:
//   - bid is a copy of the matching bid if found
//   - found is false if no bid with the given id exists, this is not an error
//   - err is either of type bhmerrors.ParseError or a standard error, if something went wrong
func (B *BidHashMap) Search(bidId string) (bid Bid, found bool, err error) {
	entry, err := B.bucketManagement.Get(bidId)
	if errors.Is(err, bhmerrors.NoRecordFound{}) {
		err = nil
		return
	}
	if err != nil {
		return
	}

	bid = entry.Bid
	found = true

	return
}

// Remove - Removes the bid that corresponds to the given bid id.
// Only the first bid in insertion order is removed if several share the id, later ones stay searchable.
//   - bidId is the identifier of a bid
//
// It returns:
//   - removed is false if no bid with the given id exists, the bid hash map is then unchanged
//   - err is either of type bhmerrors.ParseError or a standard error, if something went wrong
func (B *BidHashMap) Remove(bidId string) (removed bool, err error) {
	_, err = B.bucketManagement.Delete(bidId)
	if errors.Is(err, bhmerrors.NoRecordFound{}) {
		err = nil
		return
	}
	if err != nil {
		return
	}

	removed = true

	return
}

// Enumerate - Returns a sequence of all bids together with the bucket number they are stored in.
// Buckets are walked in ascending bucket number and bids within a bucket in insertion order, so the overall order
// is not sorted by bid id. The sequence can be iterated any number of times, each iteration starts from bucket 0
// and reflects the contents at the time each bucket is reached.
func (B *BidHashMap) Enumerate() iter.Seq2[int64, Bid] {
	return func(yield func(int64, Bid) bool) {
		for bucketNo := range B.bucketManagement.Occupied() {
			_, chainIter, err := B.bucketManagement.GetBucket(bucketNo)
			if err != nil {
				return
			}

			for chainIter.HasNext() {
				entry, _, _ := chainIter.Next()
				if !yield(bucketNo, entry.Bid) {
					return
				}
			}
		}
	}
}

// Stat - Walks through the entire set of buckets and produce a HashMapStat struct with information.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will set HashMapStat.BucketDistribution to nil.
func (B *BidHashMap) Stat(includeDistribution bool) (hashMapStat *HashMapStat, err error) {
	var hms HashMapStat

	if includeDistribution {
		hms.BucketDistribution = make([]int64, B.numberOfBuckets)
	}

	// Only occupied buckets can contribute
	for bucketNo := range B.bucketManagement.Occupied() {
		bucket, _, bErr := B.bucketManagement.GetBucket(bucketNo)
		if bErr != nil {
			err = bErr
			return
		}

		n := int64(len(bucket.Entries))
		hms.Records += n
		hms.OccupiedBuckets++
		if n > hms.LongestChain {
			hms.LongestChain = n
		}
		if includeDistribution {
			hms.BucketDistribution[bucketNo] = n
		}
	}

	hms.LoadFactor = float64(hms.Records) / float64(B.numberOfBuckets)

	hashMapStat = &hms
	return
}

// GetBucketNo - Returns which bucket number that the given bid id results in
//   - bidId is the identifier of a bid
func (B *BidHashMap) GetBucketNo(bidId string) (bucketNo int64, err error) {
	return B.bucketManagement.GetBucketNo(bidId)
}

package separatechaining

import (
	"github.com/gostonefire/bidhashmap/bhmerrors"
	"github.com/gostonefire/bidhashmap/internal/chain"
)

// findFirst - Walks the chain of a bucket and returns the position of the first entry having the given bid id.
// It returns an error of type bhmerrors.NoRecordFound if no entry matches.
func (S *SCBuckets) findFirst(bucketNo int64, bidId string) (position int, err error) {
	iter := chain.NewRecords(S.buckets[bucketNo])
	for iter.HasNext() {
		entry, p, _ := iter.Next()
		if entry.Bid.BidId == bidId {
			position = p
			return
		}
	}

	err = bhmerrors.NoRecordFound{}

	return
}

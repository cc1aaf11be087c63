package model

// Bid - Represents one bid record as stored in the bid hash map
//   - BidId is the identifier, expected to be a non-negative base 10 integer in string form
//   - Title is a free text description of the item
//   - Fund is the fund the bid is booked on
//   - Amount is the monetary value of the bid
type Bid struct {
	BidId  string
	Title  string
	Fund   string
	Amount float64
}

// Entry - Represents one entry in a bucket chain.
// BucketNo is the bucket the entry was hashed into when inserted, it is kept for diagnostic purposes only.
type Entry struct {
	Bid      Bid
	BucketNo int64
}

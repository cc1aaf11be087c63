package hashfunc

// HashAlgorithm - Interface that permits an implementation using the BidHashMap to supply a custom bucket
// selection algorithm suited for its particular distribution of bid ids.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a new bid hash map. Hence, if a custom hash algorithm is supplied that implements
	// this interface and the instance is already having a table size, it will be overwritten by the number of
	// buckets that was supplied when creating the bid hash map.
	//   - tableSize is the number of buckets the hash map will address
	SetTableSize(tableSize int64)

	// HashFunc - Given the numeric value of a bid id it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc(key uint64) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting
	// The bid hash map allocates exactly this number of buckets, so if an implementation rounds the requested
	// size (to a power of 2, to the nearest prime or similar) it must be reflected here.
	GetTableSize() int64
}

//go:build unit

package bidhashmap

import (
	"fmt"
	"github.com/gostonefire/bidhashmap/bhmerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"strconv"
	"testing"
)

// dumpEntry - One line of a full bucket dump
type dumpEntry struct {
	BucketNo int64
	Bid      Bid
}

func dump(bhm *BidHashMap) []dumpEntry {
	var d []dumpEntry
	for bucketNo, bid := range bhm.Enumerate() {
		d = append(d, dumpEntry{BucketNo: bucketNo, Bid: bid})
	}
	return d
}

func TestBidHashMap_Insert(t *testing.T) {
	t.Run("inserted bids are found", func(t *testing.T) {
		// Prepare
		bhm := NewDefaultBidHashMap()
		bids := make([]Bid, 500)
		for i := range bids {
			bids[i] = Bid{
				BidId:  strconv.Itoa(rand.Intn(1_000_000)),
				Title:  fmt.Sprintf("title %d", i),
				Fund:   "General Fund",
				Amount: float64(rand.Intn(100_000)) / 100,
			}
		}

		for i, bid := range bids {
			// Execute
			err := bhm.Insert(bid)
			assert.NoErrorf(t, err, "inserts bid #%d", i)

			// Check
			found, ok, err := bhm.Search(bid.BidId)
			assert.NoErrorf(t, err, "searches bid #%d", i)
			assert.Truef(t, ok, "bid #%d found", i)
			if found.Title == bid.Title {
				assert.Equalf(t, bid, found, "bid #%d equal", i)
			}
		}
		assert.Equal(t, int64(len(bids)), bhm.Len(), "all bids stored")
	})

	t.Run("colliding ids share one bucket in insertion order", func(t *testing.T) {
		// Prepare
		bhm, _, err := NewBidHashMap(179, nil)
		require.NoError(t, err, "creates bid hash map")

		// Execute
		for _, id := range []string{"1", "180", "359"} {
			err = bhm.Insert(Bid{BidId: id})
			require.NoErrorf(t, err, "inserts bid %s", id)
		}

		// Check
		d := dump(bhm)
		require.Len(t, d, 3, "three entries")
		for i, id := range []string{"1", "180", "359"} {
			assert.Equalf(t, int64(1), d[i].BucketNo, "bid %s in bucket 1", id)
			assert.Equalf(t, id, d[i].Bid.BidId, "bid %s in insertion order", id)
		}
	})

	t.Run("rejects non numeric bid id and leaves table unchanged", func(t *testing.T) {
		// Prepare
		bhm := NewDefaultBidHashMap()
		require.NoError(t, bhm.Insert(Bid{BidId: "5"}), "inserts bid")
		before := dump(bhm)

		for _, id := range []string{"", "abc", "-1", "12x"} {
			// Execute
			err := bhm.Insert(Bid{BidId: id})

			// Check
			assert.ErrorIsf(t, err, bhmerrors.ParseError{}, "rejects %q", id)
		}
		assert.Equal(t, before, dump(bhm), "table unchanged")
	})
}

func TestBidHashMap_Search(t *testing.T) {
	t.Run("returns not found for ids never inserted", func(t *testing.T) {
		// Prepare
		bhm := NewDefaultBidHashMap()
		require.NoError(t, bhm.Insert(Bid{BidId: "1"}), "inserts bid")

		for _, id := range []string{"2", "180", "98269"} {
			// Execute
			bid, found, err := bhm.Search(id)

			// Check
			assert.NoErrorf(t, err, "not found is not an error for %s", id)
			assert.Falsef(t, found, "%s not found", id)
			assert.Equalf(t, Bid{}, bid, "zero bid for %s", id)
		}
	})

	t.Run("returns first inserted bid for duplicate ids", func(t *testing.T) {
		// Prepare
		bhm := NewDefaultBidHashMap()
		first := Bid{BidId: "42", Title: "first", Amount: 1}
		second := Bid{BidId: "42", Title: "second", Amount: 2}
		require.NoError(t, bhm.Insert(first), "inserts first bid")
		require.NoError(t, bhm.Insert(second), "inserts second bid")

		// Execute
		bid, found, err := bhm.Search("42")

		// Check
		assert.NoError(t, err, "searches bid")
		assert.True(t, found, "bid found")
		assert.Equal(t, first, bid, "first inserted returned")
	})

	t.Run("returns a copy", func(t *testing.T) {
		// Prepare
		bhm := NewDefaultBidHashMap()
		require.NoError(t, bhm.Insert(Bid{BidId: "7", Title: "original"}), "inserts bid")

		// Execute
		bid, _, _ := bhm.Search("7")
		bid.Title = "changed"

		// Check
		again, _, _ := bhm.Search("7")
		assert.Equal(t, "original", again.Title, "stored bid unaffected")
	})

	t.Run("fails on non numeric bid id", func(t *testing.T) {
		// Prepare
		bhm := NewDefaultBidHashMap()

		// Execute
		_, found, err := bhm.Search("abc")

		// Check
		assert.ErrorIs(t, err, bhmerrors.ParseError{}, "get correct error")
		assert.False(t, found, "nothing found")
	})
}

func TestBidHashMap_Remove(t *testing.T) {
	t.Run("removes the only matching bid", func(t *testing.T) {
		// Prepare
		bhm := NewDefaultBidHashMap()
		require.NoError(t, bhm.Insert(Bid{BidId: "10"}), "inserts bid")

		// Execute
		removed, err := bhm.Remove("10")

		// Check
		assert.NoError(t, err, "removes bid")
		assert.True(t, removed, "bid removed")
		_, found, err := bhm.Search("10")
		assert.NoError(t, err, "searches bid")
		assert.False(t, found, "bid gone")
		assert.Zero(t, bhm.Len(), "no bids left")
	})

	t.Run("removes only the first of duplicate bids", func(t *testing.T) {
		// Prepare
		bhm := NewDefaultBidHashMap()
		require.NoError(t, bhm.Insert(Bid{BidId: "42", Title: "first"}), "inserts bid")
		require.NoError(t, bhm.Insert(Bid{BidId: "42", Title: "second"}), "inserts bid")

		// Execute
		removed, err := bhm.Remove("42")

		// Check
		assert.NoError(t, err, "removes bid")
		assert.True(t, removed, "bid removed")
		bid, found, err := bhm.Search("42")
		assert.NoError(t, err, "searches bid")
		assert.True(t, found, "duplicate still there")
		assert.Equal(t, "second", bid.Title, "second bid remains")
	})

	t.Run("removes a match that is not first in its chain", func(t *testing.T) {
		// Prepare
		bhm := NewDefaultBidHashMap()
		for _, id := range []string{"1", "180", "359"} {
			require.NoErrorf(t, bhm.Insert(Bid{BidId: id}), "inserts bid %s", id)
		}

		// Execute
		removed, err := bhm.Remove("359")

		// Check
		assert.NoError(t, err, "removes bid")
		assert.True(t, removed, "bid removed")
		d := dump(bhm)
		require.Len(t, d, 2, "two entries left")
		assert.Equal(t, "1", d[0].Bid.BidId, "first kept")
		assert.Equal(t, "180", d[1].Bid.BidId, "second kept")
	})

	t.Run("removing non existent bid id is a no-op", func(t *testing.T) {
		// Prepare
		bhm := NewDefaultBidHashMap()
		for _, id := range []string{"1", "2", "180"} {
			require.NoErrorf(t, bhm.Insert(Bid{BidId: id}), "inserts bid %s", id)
		}
		before := dump(bhm)

		// Execute
		removed, err := bhm.Remove("359")

		// Check
		assert.NoError(t, err, "not found is not an error")
		assert.False(t, removed, "nothing removed")
		assert.Equal(t, before, dump(bhm), "table unchanged")
	})

	t.Run("fails on non numeric bid id", func(t *testing.T) {
		// Prepare
		bhm := NewDefaultBidHashMap()
		require.NoError(t, bhm.Insert(Bid{BidId: "0"}), "inserts bid")

		// Execute
		removed, err := bhm.Remove("zero")

		// Check
		assert.ErrorIs(t, err, bhmerrors.ParseError{}, "get correct error")
		assert.False(t, removed, "nothing removed")
		assert.Equal(t, int64(1), bhm.Len(), "table unchanged")
	})

	t.Run("search and remove scenario", func(t *testing.T) {
		// Prepare
		bhm := NewDefaultBidHashMap()
		require.NoError(t, bhm.Insert(Bid{BidId: "98269", Title: "Hoover Steamvac", Fund: "General Fund", Amount: 1998.49}), "inserts bid")
		require.NoError(t, bhm.Insert(Bid{BidId: "98268", Title: "Table", Fund: "Enterprise", Amount: 500.00}), "inserts bid")

		// Execute & Check
		bid, found, err := bhm.Search("98269")
		assert.NoError(t, err, "searches bid")
		assert.True(t, found, "bid found")
		assert.Equal(t, 1998.49, bid.Amount, "correct amount")

		removed, err := bhm.Remove("98269")
		assert.NoError(t, err, "removes bid")
		assert.True(t, removed, "bid removed")

		_, found, err = bhm.Search("98269")
		assert.NoError(t, err, "searches bid")
		assert.False(t, found, "removed bid not found")

		bid, found, err = bhm.Search("98268")
		assert.NoError(t, err, "searches bid")
		assert.True(t, found, "other bid still found")
		assert.Equal(t, 500.00, bid.Amount, "correct amount")
	})
}

func TestBidHashMap_Enumerate(t *testing.T) {
	t.Run("yields every bid once in bucket order", func(t *testing.T) {
		// Prepare
		bhm, _, err := NewBidHashMap(17, nil)
		require.NoError(t, err, "creates bid hash map")

		n := 300
		inserted := make(map[string]bool, n)
		for i := 0; i < n; i++ {
			id := strconv.Itoa(i * 7)
			inserted[id] = true
			require.NoErrorf(t, bhm.Insert(Bid{BidId: id}), "inserts bid %s", id)
		}

		// Execute
		d := dump(bhm)

		// Check
		assert.Len(t, d, n, "every bid enumerated")
		seen := make(map[string]bool, n)
		lastBucket := int64(-1)
		lastKeyInBucket := -1
		for _, e := range d {
			key, err := strconv.Atoi(e.Bid.BidId)
			require.NoError(t, err, "numeric id")
			assert.Equalf(t, int64(key%17), e.BucketNo, "bid %s in correct bucket", e.Bid.BidId)
			assert.GreaterOrEqual(t, e.BucketNo, lastBucket, "buckets in ascending order")
			if e.BucketNo != lastBucket {
				lastKeyInBucket = -1
			}
			assert.Greaterf(t, key, lastKeyInBucket, "bid %s in insertion order within bucket", e.Bid.BidId)
			lastBucket = e.BucketNo
			lastKeyInBucket = key
			seen[e.Bid.BidId] = true
		}
		assert.Equal(t, inserted, seen, "all inserted bids seen")
	})

	t.Run("is restartable", func(t *testing.T) {
		// Prepare
		bhm := NewDefaultBidHashMap()
		for _, id := range []string{"3", "1", "2"} {
			require.NoErrorf(t, bhm.Insert(Bid{BidId: id}), "inserts bid %s", id)
		}
		seq := bhm.Enumerate()

		// Execute
		var first, second []string
		for _, bid := range seq {
			first = append(first, bid.BidId)
		}
		for _, bid := range seq {
			second = append(second, bid.BidId)
		}

		// Check
		assert.Equal(t, []string{"1", "2", "3"}, first, "bucket order, not insertion order")
		assert.Equal(t, first, second, "second iteration identical")
	})

	t.Run("stops early when asked", func(t *testing.T) {
		// Prepare
		bhm := NewDefaultBidHashMap()
		for i := 0; i < 10; i++ {
			require.NoError(t, bhm.Insert(Bid{BidId: strconv.Itoa(i)}), "inserts bid")
		}

		// Execute
		count := 0
		for range bhm.Enumerate() {
			count++
			if count == 3 {
				break
			}
		}

		// Check
		assert.Equal(t, 3, count, "iteration stopped")
	})

	t.Run("empty table yields nothing", func(t *testing.T) {
		// Execute
		d := dump(NewDefaultBidHashMap())

		// Check
		assert.Empty(t, d, "nothing enumerated")
	})
}

func TestBidHashMap_Stat(t *testing.T) {
	t.Run("gets statistics with distribution", func(t *testing.T) {
		// Prepare
		bhm := NewDefaultBidHashMap()
		for _, id := range []string{"1", "180", "359", "2", "98269"} {
			require.NoErrorf(t, bhm.Insert(Bid{BidId: id}), "inserts bid %s", id)
		}

		// Execute
		stat, err := bhm.Stat(true)

		// Check
		assert.NoError(t, err, "gets statistics")
		assert.Equal(t, int64(5), stat.Records, "records counted")
		assert.Equal(t, int64(3), stat.OccupiedBuckets, "occupied buckets counted")
		assert.Equal(t, int64(3), stat.LongestChain, "longest chain")
		assert.InDelta(t, 5.0/179.0, stat.LoadFactor, 1e-9, "load factor")
		assert.Len(t, stat.BucketDistribution, 179, "one value per bucket")
		assert.Equal(t, int64(3), stat.BucketDistribution[1], "bucket 1 distribution")
		assert.Equal(t, int64(1), stat.BucketDistribution[2], "bucket 2 distribution")
		assert.Equal(t, int64(1), stat.BucketDistribution[98269%179], "bucket of 98269 distribution")
	})

	t.Run("gets statistics without distribution", func(t *testing.T) {
		// Prepare
		bhm := NewDefaultBidHashMap()
		require.NoError(t, bhm.Insert(Bid{BidId: "1"}), "inserts bid")

		// Execute
		stat, err := bhm.Stat(false)

		// Check
		assert.NoError(t, err, "gets statistics")
		assert.Nil(t, stat.BucketDistribution, "no distribution")
		assert.Equal(t, int64(1), stat.Records, "records counted")
	})
}

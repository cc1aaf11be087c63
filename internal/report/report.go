package report

import (
	"fmt"
	"github.com/gostonefire/bidhashmap/internal/model"
	"io"
	"iter"
	"strconv"
	"time"
)

const separator string = "----------------------------------------------------------------"

// PrintAll - Writes every bid grouped per bucket, buckets in the order the sequence yields them.
// A bucket heading and a column header is written each time the bucket number changes.
func PrintAll(w io.Writer, bids iter.Seq2[int64, model.Bid]) (err error) {
	currentBucket := int64(-1)
	for bucketNo, bid := range bids {
		if bucketNo != currentBucket {
			if currentBucket >= 0 {
				if _, err = fmt.Fprintln(w); err != nil {
					return
				}
			}
			currentBucket = bucketNo
			_, err = fmt.Fprintf(w, "index %d: \n%s\n%s\n",
				bucketNo, "Bid Id      |      Title      |       Fund      |      Amount       ", separator)
			if err != nil {
				return
			}
		}

		_, err = fmt.Fprintf(w, "%s  |  %s  |  %s  |  %s\n%s\n", bid.BidId, bid.Title, bid.Fund, FormatAmount(bid.Amount), separator)
		if err != nil {
			return
		}
	}

	if currentBucket >= 0 {
		_, err = fmt.Fprintln(w)
	}

	return
}

// DisplayBid - Writes one bid on a single line
func DisplayBid(w io.Writer, bid model.Bid) (err error) {
	_, err = fmt.Fprintf(w, "%s: %s | %s | %s\n", bid.BidId, bid.Title, FormatAmount(bid.Amount), bid.Fund)
	return
}

// FormatAmount - Formats an amount with the shortest representation that reads back exactly
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// Elapsed - Writes an elapsed time both in microseconds and seconds
func Elapsed(w io.Writer, d time.Duration) (err error) {
	_, err = fmt.Fprintf(w, "time: %d microseconds\ntime: %g seconds\n", d.Microseconds(), d.Seconds())
	return
}

// Stat - Subset of the bid hash map statistics needed for printing
type Stat struct {
	NumberOfBuckets int64
	Records         int64
	OccupiedBuckets int64
	LongestChain    int64
	LoadFactor      float64
}

// PrintStat - Writes bid hash map statistics
func PrintStat(w io.Writer, stat Stat) (err error) {
	_, err = fmt.Fprintf(w,
		"buckets: %d\nrecords: %d\noccupied buckets: %d\nlongest chain: %d\nload factor: %.3f\n",
		stat.NumberOfBuckets, stat.Records, stat.OccupiedBuckets, stat.LongestChain, stat.LoadFactor)
	return
}

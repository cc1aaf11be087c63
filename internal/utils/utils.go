package utils

import (
	"fmt"
	"github.com/gostonefire/bidhashmap/bhmerrors"
	"strconv"
)

// ParseKey - Returns the numeric value of a bid id.
// The id must be a non-empty, non-negative base 10 integer without sign, spaces or other decoration and must fit
// in an uint64. Anything else results in an error of type bhmerrors.ParseError.
func ParseKey(bidId string) (key uint64, err error) {
	if bidId == "" {
		err = bhmerrors.NewParseError("bid id can not be empty")
		return
	}

	// ParseUint accepts underscores only with base 0 and never a sign, so base 10 rejects both
	key, err = strconv.ParseUint(bidId, 10, 64)
	if err != nil {
		err = bhmerrors.NewParseError(fmt.Sprintf("bid id %q is not a valid non-negative integer", bidId))
		return
	}

	return
}

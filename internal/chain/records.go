package chain

import (
	"github.com/gostonefire/bidhashmap/bhmerrors"
	"github.com/gostonefire/bidhashmap/internal/model"
)

// Records - Is used to iterate over the entries of one bucket chain one by one, in insertion order.
type Records struct {
	entries  []model.Entry
	position int
}

// NewRecords - Returns a pointer to a new Records struct over the given chain entries
func NewRecords(entries []model.Entry) *Records {

	return &Records{
		entries:  entries,
		position: 0,
	}
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next.
func (R *Records) HasNext() bool {
	return R.position < len(R.entries)
}

// Next - Returns the next entry.
// It returns:
//   - entry is the next chain entry.
//   - position is the index of the entry within the chain.
//   - err is nil or, if there are no more entries when calling this function, an error of type bhmerrors.NoRecordFound.
func (R *Records) Next() (entry model.Entry, position int, err error) {
	if R.position >= len(R.entries) {
		err = bhmerrors.NoRecordFound{}
		return
	}

	entry = R.entries[R.position]
	position = R.position
	R.position++

	return
}

package file

import (
	"errors"
	"fmt"
	"github.com/gostonefire/bidhashmap/internal/conf"
	"github.com/gostonefire/bidhashmap/internal/model"
	"strconv"
	"strings"
)

// Layout - Represents where bid fields are found in a CSV row
type Layout struct {
	Columns      int
	TitleColumn  int
	BidIdColumn  int
	AmountColumn int
	FundColumn   int
}

// UnknownLayout - Custom error to inform that a CSV header does not match any known layout
type UnknownLayout struct {
	msg string
}

// Error - Used to notify that the CSV layout is unknown
func (U UnknownLayout) Error() string {
	if U.msg == "" {
		return "unknown csv layout"
	}
	return U.msg
}

// Is - Makes errors.Is match any UnknownLayout regardless of message
func (U UnknownLayout) Is(target error) bool {
	_, ok := target.(UnknownLayout)
	return ok
}

// LayoutFromHeader - Returns the layout matching the number of columns in the CSV header.
// It returns an error of type UnknownLayout if the column count matches no known export.
func LayoutFromHeader(header []string) (layout Layout, err error) {
	switch len(header) {
	case conf.MonthlySalesColumns:
		layout = Layout{
			Columns:      conf.MonthlySalesColumns,
			TitleColumn:  conf.TitleColumn,
			BidIdColumn:  conf.BidIdColumn,
			AmountColumn: conf.AmountColumn,
			FundColumn:   conf.MonthlySalesFundColumn,
		}
	case conf.FullExportColumns:
		layout = Layout{
			Columns:      conf.FullExportColumns,
			TitleColumn:  conf.TitleColumn,
			BidIdColumn:  conf.BidIdColumn,
			AmountColumn: conf.AmountColumn,
			FundColumn:   conf.FullExportFundColumn,
		}
	default:
		err = UnknownLayout{msg: fmt.Sprintf("unknown csv layout with %d columns, expected %d or %d",
			len(header), conf.MonthlySalesColumns, conf.FullExportColumns)}
	}

	return
}

// rowToBid - Converts a CSV row to a Bid struct given the layout
func rowToBid(row []string, layout Layout) (bid model.Bid, err error) {
	if len(row) <= layout.FundColumn {
		err = fmt.Errorf("row has %d columns, layout needs at least %d", len(row), layout.FundColumn+1)
		return
	}

	bid = model.Bid{
		BidId:  strings.TrimSpace(row[layout.BidIdColumn]),
		Title:  strings.TrimSpace(row[layout.TitleColumn]),
		Fund:   strings.TrimSpace(row[layout.FundColumn]),
		Amount: StrToAmount(row[layout.AmountColumn]),
	}

	return
}

// StrToAmount - Converts a currency string such as "$1,998.49" to a float.
// All '$' and ',' characters are stripped and then the longest leading part that forms a valid number is used,
// so "12.5 USD" gives 12.5. If no leading part is a number the result is 0.
func StrToAmount(s string) (amount float64) {
	s = strings.TrimSpace(strings.NewReplacer("$", "", ",", "").Replace(s))

	for end := len(s); end > 0; end-- {
		f, err := strconv.ParseFloat(s[:end], 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			amount = f
			return
		}
	}

	return
}

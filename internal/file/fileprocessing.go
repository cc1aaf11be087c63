package file

import (
	"encoding/csv"
	"errors"
	"fmt"
	"github.com/gostonefire/bidhashmap/internal/model"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Inserter - Interface for anything that bids can be loaded into
type Inserter interface {
	Insert(bid model.Bid) error
}

// LoadResult - Summary of a load
//   - Layout is the CSV layout that was detected from the header
//   - Rows is the number of data rows read
//   - Loaded is the number of bids inserted
//   - Skipped is the number of rows that could not be converted or inserted
type LoadResult struct {
	Layout  Layout
	Rows    int64
	Loaded  int64
	Skipped int64
}

// Loader - Reads bids from CSV sources and inserts them one by one
type Loader struct {
	inserter Inserter
	logger   *slog.Logger
}

// NewLoader - Returns a pointer to a new Loader
//   - inserter is where loaded bids are inserted
//   - logger is used to report skipped rows and load summaries, nil discards all output
func NewLoader(inserter Inserter, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Loader{
		inserter: inserter,
		logger:   logger,
	}
}

// LoadFile - Opens the named file, decompressing it if needed, and loads all bids in it.
func (L *Loader) LoadFile(fileName string) (result LoadResult, err error) {
	src, err := OpenSource(fileName)
	if err != nil {
		return
	}
	defer func(src io.ReadCloser) { _ = src.Close() }(src)

	result, err = L.LoadBids(src)
	if err != nil {
		err = fmt.Errorf("error while loading bids from %s: %w", fileName, err)
		return
	}

	L.logger.Info("bids loaded",
		"file", fileName,
		"rows", result.Rows,
		"loaded", result.Loaded,
		"skipped", result.Skipped,
	)

	return
}

// LoadBids - Reads CSV data with a header row from r and inserts every row as a bid.
// The layout is decided by the number of header columns. Rows that are too short, or that the inserter rejects
// (for instance a non numeric bid id), are logged and counted as skipped rather than aborting the load.
//
// It returns:
//   - result is a summary of the load, valid also when err is not nil
//   - err is an error of type UnknownLayout if the header matches no known layout, or a standard error if the
//     CSV data is malformed
func (L *Loader) LoadBids(r io.Reader) (result LoadResult, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("csv source has no header row")
		} else {
			err = fmt.Errorf("error while reading csv header: %w", err)
		}
		return
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	result.Layout, err = LayoutFromHeader(header)
	if err != nil {
		return
	}
	L.logger.Debug("csv layout detected", "columns", result.Layout.Columns, "fund_column", result.Layout.FundColumn)

	var row []string
	var bid model.Bid
	for {
		row, err = reader.Read()
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}
		if err != nil {
			err = fmt.Errorf("error while reading csv row %d: %w", result.Rows+1, err)
			return
		}
		result.Rows++

		bid, err = rowToBid(row, result.Layout)
		if err == nil {
			err = L.inserter.Insert(bid)
		}
		if err != nil {
			result.Skipped++
			L.logger.Warn("skipping csv row", "row", result.Rows, "bid_id", bid.BidId, "error", err)
			err = nil
			continue
		}
		result.Loaded++
	}

	return
}

// OpenSource - Opens the named file for reading. Files ending in .gz, .zst or .lz4 are decompressed transparently.
// Closing the returned reader closes both any decompressor and the file.
func OpenSource(fileName string) (src io.ReadCloser, err error) {
	f, err := os.OpenFile(fileName, os.O_RDONLY, 0644)
	if err != nil {
		err = fmt.Errorf("unable to open csv source: %w", err)
		return
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".gz":
		var gz *gzip.Reader
		gz, err = gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			err = fmt.Errorf("unable to open gzip stream: %w", err)
			return
		}
		src = &source{Reader: gz, closers: []func() error{gz.Close, f.Close}}
	case ".zst":
		var zr *zstd.Decoder
		zr, err = zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			err = fmt.Errorf("unable to open zstd stream: %w", err)
			return
		}
		src = &source{Reader: zr, closers: []func() error{func() error { zr.Close(); return nil }, f.Close}}
	case ".lz4":
		src = &source{Reader: lz4.NewReader(f), closers: []func() error{f.Close}}
	default:
		src = f
	}

	return
}

// source - Couples a possibly decompressing reader with everything that has to be closed after it
type source struct {
	io.Reader
	closers []func() error
}

// Close - Closes in order and returns the first error encountered
func (S *source) Close() (err error) {
	for _, c := range S.closers {
		if cErr := c(); cErr != nil && err == nil {
			err = cErr
		}
	}

	return
}

package main

import (
	"bufio"
	"fmt"
	"github.com/gostonefire/bidhashmap"
	"github.com/gostonefire/bidhashmap/internal/file"
	"github.com/gostonefire/bidhashmap/internal/report"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

const (
	choiceLoad    = 1
	choiceDisplay = 2
	choiceFind    = 3
	choiceRemove  = 4
	choiceStat    = 5
	choiceExit    = 9
)

// menu - The interactive loop working on one bid hash map
type menu struct {
	bidTable *bidhashmap.BidHashMap
	csvPath  string
	bidKey   string
	in       io.Reader
	out      io.Writer
	logger   *slog.Logger
}

// run - Shows the menu and executes choices until exit is chosen or input ends
func (M *menu) run() {
	scanner := bufio.NewScanner(M.in)

	for {
		M.printMenu()
		if !scanner.Scan() {
			_, _ = fmt.Fprintln(M.out)
			break
		}

		choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			_, _ = fmt.Fprintf(M.out, "Invalid choice %q\n", scanner.Text())
			continue
		}
		if choice == choiceExit {
			break
		}

		M.execute(choice)
	}

	_, _ = fmt.Fprintln(M.out, "Good bye.")
}

func (M *menu) printMenu() {
	_, _ = fmt.Fprint(M.out,
		"Menu:\n",
		"  1. Load Bids\n",
		"  2. Display All Bids\n",
		"  3. Find Bid\n",
		"  4. Remove Bid\n",
		"  5. Show Statistics\n",
		"  9. Exit\n",
		"Enter choice: ",
	)
}

// execute - Runs one menu choice, errors are logged and reported but never end the loop
func (M *menu) execute(choice int) {
	switch choice {
	case choiceLoad:
		start := time.Now()
		result, err := file.NewLoader(M.bidTable, M.logger).LoadFile(M.csvPath)
		elapsed := time.Since(start)
		if err != nil {
			M.logger.Error("load failed", "file", M.csvPath, "error", err)
			_, _ = fmt.Fprintf(M.out, "Unable to load %s: %s\n", M.csvPath, err)
			return
		}
		_, _ = fmt.Fprintf(M.out, "%d bids read, %d loaded, %d skipped\n", result.Rows, result.Loaded, result.Skipped)
		_ = report.Elapsed(M.out, elapsed)

	case choiceDisplay:
		if err := report.PrintAll(M.out, M.bidTable.Enumerate()); err != nil {
			M.logger.Error("display failed", "error", err)
		}

	case choiceFind:
		start := time.Now()
		bid, found, err := M.bidTable.Search(M.bidKey)
		elapsed := time.Since(start)
		switch {
		case err != nil:
			M.logger.Warn("search failed", "bid_id", M.bidKey, "error", err)
			_, _ = fmt.Fprintf(M.out, "Bid Id %s is not valid: %s\n", M.bidKey, err)
		case found:
			_ = report.DisplayBid(M.out, bid)
		default:
			_, _ = fmt.Fprintf(M.out, "Bid Id %s not found.\n", M.bidKey)
		}
		_ = report.Elapsed(M.out, elapsed)

	case choiceRemove:
		removed, err := M.bidTable.Remove(M.bidKey)
		switch {
		case err != nil:
			M.logger.Warn("remove failed", "bid_id", M.bidKey, "error", err)
			_, _ = fmt.Fprintf(M.out, "Bid Id %s is not valid: %s\n", M.bidKey, err)
		case removed:
			_, _ = fmt.Fprintf(M.out, "Bid Id %s removed.\n", M.bidKey)
		default:
			_, _ = fmt.Fprintf(M.out, "Bid Id %s not found.\n", M.bidKey)
		}

	case choiceStat:
		stat, err := M.bidTable.Stat(false)
		if err != nil {
			M.logger.Error("statistics failed", "error", err)
			return
		}
		_ = report.PrintStat(M.out, report.Stat{
			NumberOfBuckets: M.bidTable.Info().NumberOfBuckets,
			Records:         stat.Records,
			OccupiedBuckets: stat.OccupiedBuckets,
			LongestChain:    stat.LongestChain,
			LoadFactor:      stat.LoadFactor,
		})

	default:
		_, _ = fmt.Fprintf(M.out, "Invalid choice %d\n", choice)
	}
}

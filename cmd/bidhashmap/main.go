package main

import (
	"fmt"
	"github.com/gostonefire/bidhashmap"
	"github.com/gostonefire/bidhashmap/internal/conf"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

func main() {
	logger := newLogger(os.Getenv(conf.LogLevelEnvVar))

	csvPath, bidKey := parseArgs(os.Args[1:])

	numberOfBuckets, err := bucketsFromEnv(os.Getenv(conf.BucketsEnvVar))
	if err != nil {
		logger.Error("invalid configuration", "env", conf.BucketsEnvVar, "error", err)
		os.Exit(1)
	}

	bidTable, info, err := bidhashmap.NewBidHashMap(numberOfBuckets, nil)
	if err != nil {
		logger.Error("unable to create bid hash map", "buckets", numberOfBuckets, "error", err)
		os.Exit(1)
	}
	logger.Debug("bid hash map created", "buckets", info.NumberOfBuckets, "csv", csvPath, "bid_key", bidKey)

	m := &menu{
		bidTable: bidTable,
		csvPath:  csvPath,
		bidKey:   bidKey,
		in:       os.Stdin,
		out:      os.Stdout,
		logger:   logger,
	}
	m.run()
}

// parseArgs - Returns csv path and bid key from positional arguments, falling back to defaults
func parseArgs(args []string) (csvPath, bidKey string) {
	csvPath = conf.DefaultCSVPath
	bidKey = conf.DefaultBidKey

	if len(args) >= 1 {
		csvPath = args[0]
	}
	if len(args) >= 2 {
		bidKey = args[1]
	}

	return
}

// bucketsFromEnv - Returns the number of buckets given in value, or the default if value is empty
func bucketsFromEnv(value string) (numberOfBuckets int64, err error) {
	if value == "" {
		numberOfBuckets = conf.DefaultNumberOfBuckets
		return
	}

	numberOfBuckets, err = strconv.ParseInt(value, 10, 64)
	if err != nil {
		err = fmt.Errorf("number of buckets %q is not an integer: %w", value, err)
		return
	}

	return
}

// newLogger - Returns a text logger on stderr at the given level, info if level is empty or unknown
func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

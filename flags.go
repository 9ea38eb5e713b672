package main

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

const (
	OutputCompact   = "compact"
	OutputFormatted = "formatted"
	OutputTable     = "table"
	OutputJSON      = "json"
)

var outputFormats = []string{OutputCompact, OutputFormatted, OutputTable, OutputJSON}

var (
	FlagVerbose string // log level
	FlagDevice  int    // device ordinal passed to cuDeviceGet
	FlagOutput  string // report format
)

func addGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVar(&FlagVerbose, "log-verbose", "INFO", "Log verbosity level (DEBUG, INFO, WARN, ERROR)")
}

func addShowFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&FlagDevice, "device", "d", 0, "Device ordinal to query")
	fs.StringVarP(&FlagOutput, "output", "o", OutputFormatted,
		"Output format ("+strings.Join(outputFormats, ", ")+")")
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO", "":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid --log-verbose %q (DEBUG, INFO, WARN, ERROR)", s)
}

func validateFlags() error {
	if _, err := parseLogLevel(FlagVerbose); err != nil {
		return err
	}
	if FlagDevice < 0 {
		return fmt.Errorf("--device must be >= 0, got %d", FlagDevice)
	}
	if !slices.Contains(outputFormats, FlagOutput) {
		return fmt.Errorf("invalid --output %q (%s)", FlagOutput, strings.Join(outputFormats, ", "))
	}
	return nil
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-ini/ini"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sohanhegde1/logslice"
)

const defaultConfigFile = ".logslice.ini"

type config struct {
	Input         string
	OutputDir     string
	Date          string
	DaysPerYear   int
	StrideDivisor int
	ReferenceYear int
	Compress      bool
	JSON          bool
	LogLevel      string
	LogJSON       bool
}

func printHelp() {
	helpText := `
logslice - Extract all records for one date from a huge sorted log file

Usage:
  logslice [flags]

Flags:
  --date=DATE            Target date in YYYY-MM-DD format (required)
  --input=FILE           Input log file path (default: test_logs.log)
  --output=DIR           Output directory (default: output)
  --compress             Write the extracted slice zstd-compressed (.zst)
  --json                 Print the extraction report as JSON on stdout
  --days-per-year=N      Estimator divisor (default: 365)
  --stride-divisor=N     Bracket step divisor (default: 10)
  --reference-year=YYYY  Year assumed at the start of the file (default: current year)
  --config=FILE          Path to configuration file (default: ~/.logslice.ini)
  --log-level=LEVEL      Log level: debug, info, warn, error
  --log-json             Emit logs as JSON instead of console output
  --help                 Display this help message

Configuration file format (.ini):
  [input]
  path = /var/log/app.log
  output_dir = output

  [search]
  date = 2024-12-02

  [tuning]
  days_per_year = 365
  stride_divisor = 10
  reference_year = 2024

Example:
  logslice --date=2024-12-02 --input=/var/log/app.log
  logslice --config=my-config.ini
  logslice --date=2024-12-02 --compress --json
`
	fmt.Println(helpText)
}

func loadConfig(path string) (*config, error) {
	cfg := &config{
		Input:     "test_logs.log",
		OutputDir: "output",
	}

	// Check if config file exists
	if _, err := os.Stat(path); err == nil {
		iniFile, err := ini.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %v", err)
		}

		inputSection := iniFile.Section("input")
		if inputSection != nil {
			cfg.Input = inputSection.Key("path").MustString(cfg.Input)
			cfg.OutputDir = inputSection.Key("output_dir").MustString(cfg.OutputDir)
		}

		searchSection := iniFile.Section("search")
		if searchSection != nil {
			cfg.Date = searchSection.Key("date").String()
		}

		tuningSection := iniFile.Section("tuning")
		if tuningSection != nil {
			cfg.DaysPerYear = tuningSection.Key("days_per_year").MustInt(0)
			cfg.StrideDivisor = tuningSection.Key("stride_divisor").MustInt(0)
			cfg.ReferenceYear = tuningSection.Key("reference_year").MustInt(0)
		}
	}

	return cfg, nil
}

// newLogger builds the process logger: console output for interactive
// use, JSON when requested, level overridable from the command line.
func newLogger(level string, jsonOut bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if jsonOut {
		cfg = zap.NewProductionConfig()
	}
	if level != "" {
		var l zapcore.Level
		if err := l.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(l)
	}
	return cfg.Build()
}

func main() {
	configFile := flag.String("config", getDefaultConfigPath(), "Path to configuration file")
	help := flag.Bool("help", false, "Display help message")
	date := flag.String("date", "", "Target date (YYYY-MM-DD)")
	input := flag.String("input", "", "Input log file path")
	output := flag.String("output", "", "Output directory")
	compress := flag.Bool("compress", false, "Write zstd-compressed output")
	jsonReport := flag.Bool("json", false, "Print the extraction report as JSON")
	daysPerYear := flag.Int("days-per-year", 0, "Estimator divisor")
	strideDivisor := flag.Int("stride-divisor", 0, "Bracket step divisor")
	referenceYear := flag.Int("reference-year", 0, "Year assumed at the start of the file")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	logJSON := flag.Bool("log-json", false, "Emit logs as JSON")
	flag.Parse()

	if *help || len(os.Args) == 1 {
		printHelp()
		os.Exit(0)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	// Command line flags override the config file
	if *date != "" {
		cfg.Date = *date
	}
	if *input != "" {
		cfg.Input = *input
	}
	if *output != "" {
		cfg.OutputDir = *output
	}
	if *daysPerYear != 0 {
		cfg.DaysPerYear = *daysPerYear
	}
	if *strideDivisor != 0 {
		cfg.StrideDivisor = *strideDivisor
	}
	if *referenceYear != 0 {
		cfg.ReferenceYear = *referenceYear
	}
	cfg.Compress = *compress
	cfg.JSON = *jsonReport
	cfg.LogLevel = *logLevel
	cfg.LogJSON = *logJSON

	logger, err := newLogger(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Date == "" {
		logger.Fatal("Date is required. Use --date flag or set in config file.")
	}

	target, err := logslice.ParseDate(cfg.Date)
	if err != nil {
		logger.Fatal("Invalid date format. Please use YYYY-MM-DD",
			zap.String("date", cfg.Date))
	}

	if err := run(logger, cfg, target); err != nil {
		logger.Fatal("Failed to extract logs", zap.Error(err))
	}
}

func run(logger *zap.Logger, cfg *config, target logslice.Date) error {
	f, err := logslice.Open(cfg.Input, logslice.Config{
		DaysPerYear:   cfg.DaysPerYear,
		StrideDivisor: cfg.StrideDivisor,
		ReferenceYear: cfg.ReferenceYear,
	})
	if err != nil {
		return fmt.Errorf("open %s: %w", cfg.Input, err)
	}
	defer f.Close()

	logger.Info("Searching log file",
		zap.String("input", cfg.Input),
		zap.Int64("size", f.Size()),
		zap.String("date", target.String()),
	)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	outPath := filepath.Join(cfg.OutputDir, "output_"+target.String()+".txt")
	if cfg.Compress {
		outPath += ".zst"
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	var sink io.Writer = out
	var enc *zstd.Encoder
	if cfg.Compress {
		enc, err = zstd.NewWriter(out, zstd.WithEncoderLevel(zstd.SpeedFastest))
		if err != nil {
			out.Close()
			return fmt.Errorf("create zstd writer: %w", err)
		}
		sink = enc
	}

	rep, extractErr := f.ExtractTo(sink, target)

	if enc != nil {
		if err := enc.Close(); err != nil {
			out.Close()
			return fmt.Errorf("flush zstd writer: %w", err)
		}
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}

	if extractErr != nil && !errors.Is(extractErr, logslice.ErrNoMatches) {
		return extractErr
	}

	if cfg.JSON {
		buf, err := rep.JSON()
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		fmt.Println(string(buf))
	}

	if errors.Is(extractErr, logslice.ErrNoMatches) {
		logger.Warn("No records found for date",
			zap.String("date", target.String()),
			zap.Int64("range_start", rep.Start),
			zap.Int64("range_end", rep.End),
		)
		return nil
	}

	logger.Info("Successfully extracted logs",
		zap.String("output", outPath),
		zap.Int("matched", rep.Matched),
		zap.Int64("bytes", rep.Bytes),
		zap.String("digest", rep.Digest),
	)
	return nil
}

// getDefaultConfigPath returns the path to the default config file in the
// user's home directory.
func getDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfigFile
	}
	return filepath.Join(homeDir, defaultConfigFile)
}

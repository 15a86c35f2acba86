// Package logslice extracts every record for a single calendar date from a
// large, chronologically sorted, line-oriented log file without reading the
// file from the start.
//
// Logs are assumed to begin with a fixed date token (YYYY-MM-DD ...) and to
// be monotonically non-decreasing by date. Under an even-distribution
// assumption (fileSize / daysPerYear bytes per day), the target date's byte
// offset is estimated directly, aligned to a line boundary, and then
// bracketed by stepping outward in coarse strides until the date prefix
// stops matching. A single forward pass over the bracketed range filters
// out any overshoot. The whole search touches a number of bytes
// proportional to one day's volume, not the file size.
//
// The file is memory-mapped read-only, so a terabyte-scale file costs
// address space rather than RAM; the kernel pages in only the regions the
// probes and the final scan actually touch.
//
// The estimate is a heuristic, not an index. If log volume is heavily
// skewed or the file spans several years, the bracket can come up short
// and the extraction silently returns a partial or empty result. Callers
// who need a guarantee must build a real index, which is out of scope here.
package logslice

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"
)

// Config holds extraction tuning parameters. The zero value selects the
// defaults applied by Open.
type Config struct {
	DaysPerYear     int // estimator divisor: daySize = fileSize / DaysPerYear (default 365)
	StrideDivisor   int // bracket step: stride = daySize / StrideDivisor (default 10)
	ReferenceYear   int // year assumed at byte 0 of the file (default: current year)
	DigestAlgorithm int // 1=xxHash3, 2=FNV1a, 3=Blake2b
}

// File is a read-only, memory-mapped view of one log file. It is created
// by Open, owned by the caller for the duration of the extraction, and
// released by Close. All reads go through the mapping; no seeking state
// is kept, so concurrent extractions against the same File are safe.
type File struct {
	f      *os.File
	data   []byte
	config Config
	closed atomic.Bool
}

// Open opens and memory-maps the log file at path. A zero-length file is
// rejected with ErrEmptyFile because the positional search has nothing to
// estimate against. Missing or unreadable files surface the underlying
// *os.PathError.
func Open(path string, config Config) (*File, error) {
	// Default config values
	if config.DaysPerYear == 0 {
		config.DaysPerYear = 365
	}
	if config.StrideDivisor == 0 {
		config.StrideDivisor = 10
	}
	if config.ReferenceYear == 0 {
		config.ReferenceYear = time.Now().Year()
	}
	if config.DigestAlgorithm == 0 {
		config.DigestAlgorithm = AlgXXH3
	}
	if config.DaysPerYear < 0 || config.StrideDivisor < 0 || config.ReferenceYear < 0 {
		return nil, fmt.Errorf("%w: negative tuning parameter", ErrInvalidConfig)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.Size() == 0 {
		f.Close()
		return nil, ErrEmptyFile
	}

	data, err := mmapFile(f, info.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("map %s: %w", path, err)
	}

	return &File{f: f, data: data, config: config}, nil
}

// Size returns the mapped file length in bytes.
func (f *File) Size() int64 {
	return int64(len(f.data))
}

// Close releases the mapping and the file handle. The File must not be
// used after Close; in-flight Lines iterations would read unmapped memory.
func (f *File) Close() error {
	if f.closed.Swap(true) {
		return ErrClosed
	}
	err := munmap(f.data)
	if cerr := f.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Package fixture generates synthetic, chronologically sorted log files
// for tests and benchmarks. Every line follows the fixed prefix format
// the extractor expects (YYYY-MM-DD HH:MM:SS LEVEL payload), timestamps
// spread evenly across each day, and the payload is derived from a seed
// so two runs with the same Config produce byte-identical files.
//
// The extraction core never imports this package; substituting generated
// data for a missing input is a harness concern, not part of the search
// contract.
package fixture

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/zeebo/xxh3"
)

// INFO is weighted heavier to resemble real traffic.
var levels = [...]string{"INFO", "INFO", "INFO", "WARN", "ERROR", "DEBUG"}

// Config describes the file to generate.
type Config struct {
	Start       time.Time // calendar date of the first line; time-of-day is ignored
	Days        int       // number of consecutive days
	LinesPerDay int
	Seed        uint64 // drives level choice and payload bytes
}

// Write emits the configured log lines to w in chronological order.
func Write(w io.Writer, cfg Config) error {
	bw := bufio.NewWriter(w)
	day := time.Date(cfg.Start.Year(), cfg.Start.Month(), cfg.Start.Day(), 0, 0, 0, 0, time.UTC)

	var seq uint64
	for d := 0; d < cfg.Days; d++ {
		for i := 0; i < cfg.LinesPerDay; i++ {
			h := xxh3.HashString(fmt.Sprintf("%d:%d", cfg.Seed, seq))
			ts := day.Add(time.Duration(i*86400/cfg.LinesPerDay) * time.Second)

			_, err := fmt.Fprintf(bw, "%s %s worker=%02d event=%08x seq=%d\n",
				ts.Format("2006-01-02 15:04:05"),
				levels[h%uint64(len(levels))],
				(h>>32)%16,
				uint32(h),
				seq)
			if err != nil {
				return err
			}
			seq++
		}
		day = day.AddDate(0, 0, 1)
	}
	return bw.Flush()
}

// WriteFile generates the file at path, truncating any existing content.
func WriteFile(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

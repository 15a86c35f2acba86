// Command genlogs writes a synthetic, chronologically sorted log file for
// exercising logslice against realistic inputs. It is a test harness
// utility; the extractor itself never generates data.
//
// Usage:
//
//	genlogs --out=test_logs.log --start=2024-01-01 --days=365 --lines=10000
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sohanhegde1/logslice/fixture"
)

func main() {
	out := flag.String("out", "test_logs.log", "Output file path")
	start := flag.String("start", "", "Date of the first line (YYYY-MM-DD)")
	days := flag.Int("days", 365, "Number of consecutive days")
	lines := flag.Int("lines", 1000, "Lines per day")
	seed := flag.Uint64("seed", 1, "Generator seed")
	flag.Parse()

	startDay := time.Now().UTC().AddDate(0, 0, -*days+1)
	if *start != "" {
		t, err := time.Parse("2006-01-02", *start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --start %q: use YYYY-MM-DD\n", *start)
			os.Exit(1)
		}
		startDay = t
	}

	cfg := fixture.Config{
		Start:       startDay,
		Days:        *days,
		LinesPerDay: *lines,
		Seed:        *seed,
	}
	if err := fixture.WriteFile(*out, cfg); err != nil {
		fmt.Fprintln(os.Stderr, "generate:", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d days x %d lines to %s\n", *days, *lines, *out)
}

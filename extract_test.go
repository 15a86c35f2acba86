// End-to-end extraction tests over real mapped files.
//
// Each test writes a log to a temp file, opens it through the mmap path,
// and extracts one date. ReferenceYear is pinned in the config so the
// estimate does not depend on the clock; the files are small, so the
// estimator mostly lands on the wrong line and the locate phase has to
// do the work — which is exactly the hard case worth testing.
package logslice

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sohanhegde1/logslice/fixture"
)

// openTestLog writes content to a temp file and opens it with a pinned
// reference year.
func openTestLog(t *testing.T, content string) *File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write test log: %v", err)
	}
	f, err := Open(path, Config{ReferenceYear: 2024})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

const sampleLog = "2024-12-01 10:00:00 INFO a\n" +
	"2024-12-02 09:00:00 INFO b\n" +
	"2024-12-02 09:05:00 WARN c\n" +
	"2024-12-03 08:00:00 INFO d\n"

func TestExtractMiddleDate(t *testing.T) {
	f := openTestLog(t, sampleLog)

	var out bytes.Buffer
	rep, err := f.ExtractTo(&out, mustDate(t, "2024-12-02"))
	if err != nil {
		t.Fatalf("ExtractTo: %v", err)
	}

	want := "2024-12-02 09:00:00 INFO b\n2024-12-02 09:05:00 WARN c\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if rep.Matched != 2 {
		t.Errorf("Matched = %d, want 2", rep.Matched)
	}
	if rep.Bytes != int64(len(want)) {
		t.Errorf("Bytes = %d, want %d", rep.Bytes, len(want))
	}
}

func TestExtractFirstDate(t *testing.T) {
	f := openTestLog(t, sampleLog)

	var out bytes.Buffer
	if _, err := f.ExtractTo(&out, mustDate(t, "2024-12-01")); err != nil {
		t.Fatalf("ExtractTo: %v", err)
	}
	if out.String() != "2024-12-01 10:00:00 INFO a\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestExtractLastDate(t *testing.T) {
	f := openTestLog(t, sampleLog)

	var out bytes.Buffer
	if _, err := f.ExtractTo(&out, mustDate(t, "2024-12-03")); err != nil {
		t.Fatalf("ExtractTo: %v", err)
	}
	if out.String() != "2024-12-03 08:00:00 INFO d\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestExtractAbsentDate(t *testing.T) {
	f := openTestLog(t, sampleLog)

	var out bytes.Buffer
	rep, err := f.ExtractTo(&out, mustDate(t, "2024-12-25"))
	if !errors.Is(err, ErrNoMatches) {
		t.Fatalf("err = %v, want ErrNoMatches", err)
	}
	if out.Len() != 0 {
		t.Errorf("output not empty: %q", out.String())
	}
	if rep.Matched != 0 {
		t.Errorf("Matched = %d, want 0", rep.Matched)
	}
}

func TestExtractAbsentDateInsideRange(t *testing.T) {
	// The missing date sits between two present ones, so the seek
	// crosses it rather than running off either end of the file.
	content := "2024-12-01 10:00:00 INFO a\n" +
		"2024-12-03 08:00:00 INFO d\n"
	f := openTestLog(t, content)

	var out bytes.Buffer
	_, err := f.ExtractTo(&out, mustDate(t, "2024-12-02"))
	if !errors.Is(err, ErrNoMatches) {
		t.Fatalf("err = %v, want ErrNoMatches", err)
	}
}

// TestExtractBlockVerbatim checks the headline property: one contiguous
// block surrounded by other dates comes back byte-for-byte, in order.
func TestExtractBlockVerbatim(t *testing.T) {
	var b strings.Builder
	b.WriteString("2024-05-09 23:59:58 INFO before\n")
	var want strings.Builder
	for i := 0; i < 500; i++ {
		fmt.Fprintf(&want, "2024-05-10 %02d:%02d:%02d INFO seq=%d\n", i/3600, i/60%60, i%60, i)
	}
	b.WriteString(want.String())
	b.WriteString("2024-05-11 00:00:01 INFO after\n")

	f := openTestLog(t, b.String())

	var out bytes.Buffer
	rep, err := f.ExtractTo(&out, mustDate(t, "2024-05-10"))
	if err != nil {
		t.Fatalf("ExtractTo: %v", err)
	}
	if out.String() != want.String() {
		t.Error("extracted block differs from input block")
	}
	if rep.Matched != 500 {
		t.Errorf("Matched = %d, want 500", rep.Matched)
	}
}

func TestExtractLargeFixture(t *testing.T) {
	if testing.Short() {
		t.Skip("large fixture")
	}

	const perDay = 100000
	path := filepath.Join(t.TempDir(), "big.log")
	err := fixture.WriteFile(path, fixture.Config{
		Start:       time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Days:        3,
		LinesPerDay: perDay,
		Seed:        7,
	})
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}

	f, err := Open(path, Config{ReferenceYear: 2024})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	// Middle day: all perDay lines, no duplicates, no omissions. The
	// fixture numbers lines globally, so day two carries seq values
	// perDay..2*perDay-1 exactly once each.
	seen := make(map[string]bool, perDay)
	prefix := []byte("2024-03-11")
	for ln, err := range f.Lines(mustDate(t, "2024-03-11")) {
		if err != nil {
			t.Fatalf("Lines: %v", err)
		}
		if !bytes.HasPrefix(ln, prefix) {
			t.Fatalf("non-matching line yielded: %q", ln)
		}
		seq := string(ln[bytes.LastIndexByte(ln, '=')+1 : len(ln)-1])
		if seen[seq] {
			t.Fatalf("duplicate line seq=%s", seq)
		}
		seen[seq] = true
	}
	if len(seen) != perDay {
		t.Errorf("got %d lines, want %d", len(seen), perDay)
	}
}

func TestExtractSmallFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.log")
	err := fixture.WriteFile(path, fixture.Config{
		Start:       time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Days:        3,
		LinesPerDay: 5,
		Seed:        7,
	})
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}

	f, err := Open(path, Config{ReferenceYear: 2024})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	var out bytes.Buffer
	rep, err := f.ExtractTo(&out, mustDate(t, "2024-03-11"))
	if err != nil {
		t.Fatalf("ExtractTo: %v", err)
	}
	if rep.Matched != 5 {
		t.Errorf("Matched = %d, want 5", rep.Matched)
	}
}

func TestLinesEarlyBreak(t *testing.T) {
	f := openTestLog(t, sampleLog)

	var got int
	for _, err := range f.Lines(mustDate(t, "2024-12-02")) {
		if err != nil {
			t.Fatalf("Lines: %v", err)
		}
		got++
		break
	}
	if got != 1 {
		t.Errorf("consumed %d lines after break, want 1", got)
	}
}

func TestLinesAfterClose(t *testing.T) {
	f := openTestLog(t, sampleLog)
	f.Close()

	for _, err := range f.Lines(mustDate(t, "2024-12-02")) {
		if !errors.Is(err, ErrClosed) {
			t.Fatalf("err = %v, want ErrClosed", err)
		}
		return
	}
	t.Fatal("expected an ErrClosed yield")
}

func TestExtractReportRange(t *testing.T) {
	f := openTestLog(t, sampleLog)

	var out bytes.Buffer
	rep, err := f.ExtractTo(&out, mustDate(t, "2024-12-02"))
	if err != nil {
		t.Fatalf("ExtractTo: %v", err)
	}
	if rep.Start < 0 || rep.End > f.Size() || rep.Start > rep.End {
		t.Errorf("bad range: %+v with size %d", rep, f.Size())
	}
	if rep.Scanned < rep.Matched {
		t.Errorf("Scanned %d < Matched %d", rep.Scanned, rep.Matched)
	}
	if len(rep.Digest) != 16 {
		t.Errorf("Digest = %q, want 16 hex chars", rep.Digest)
	}
}

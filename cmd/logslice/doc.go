// Command logslice extracts all log records for a given calendar date
// from a large, chronologically sorted log file.
//
// It memory-maps the input, estimates the date's byte position from the
// file size, brackets the matching range, and writes the matching lines
// to output/output_<date>.txt (optionally zstd-compressed).
//
// Usage:
//
//	logslice --date=2024-12-02 --input=/var/log/app.log
//	logslice --date=2024-12-02 --compress --json
package main

// Line boundary primitives over the mapped bytes.
//
// Every position handed between the estimator, the refiner, and the
// extraction scan must be a line start: offset 0 or the byte right after
// a newline. alignBackward is the only place that walks raw bytes to
// recover that property; its cost is bounded by the longest line in the
// file, which is assumed short relative to one day's volume.
package logslice

import "bytes"

// alignBackward returns the start of the line containing pos. pos is
// clamped into [0, len-1] first, then walked backward until it is 0 or
// preceded by a newline. Aligning an already-aligned position returns it
// unchanged.
func alignBackward(data []byte, pos int64) int64 {
	if pos >= int64(len(data)) {
		pos = int64(len(data)) - 1
	}
	if pos < 0 {
		pos = 0
	}
	for pos > 0 && data[pos-1] != '\n' {
		pos--
	}
	return pos
}

// lineEnd returns the offset one past the line starting at pos: the byte
// after its newline, or len(data) for an unterminated final line.
func lineEnd(data []byte, pos int64) int64 {
	if i := bytes.IndexByte(data[pos:], '\n'); i >= 0 {
		return pos + int64(i) + 1
	}
	return int64(len(data))
}

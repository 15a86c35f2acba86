// Range bracketing around the estimated position.
//
// The refiner is a coarse bracketing search, not a bisection. It runs in
// two phases over the sorted file:
//
//  1. locate: the estimate is only as good as the even-distribution
//     assumption, so the seed line may carry a neighbouring date. Because
//     dates are ordered, comparing the seed line's date token against the
//     target gives a direction; the probe steps stride-wise that way until
//     it lands inside the target's block. A step that jumps clean over the
//     block is detected by the crossing of the comparison sign and repaired
//     with a line-by-line scan of that one stride-sized gap. If the scan
//     finds nothing the date is absent from the file.
//
//  2. bracket: from a line known to match, probe outward in both
//     directions in stride steps, re-aligning after each, stopping at the
//     first probe line that no longer matches. The bracket can overshoot
//     by up to one stride per side — the extraction scan absorbs that by
//     filtering — and undershoots only if matching records are not
//     contiguous, which violates the sorted-log assumption and stays
//     undefined.
//
// stride = daySize / StrideDivisor trades probe count against bracket
// slack: a smaller stride reads more probe lines, a larger one risks more
// gap repair scans. There is no single correct value.
package logslice

import "bytes"

// Range is the bracketed byte interval believed to contain every line
// for the target date. Both bounds are aligned and Start <= End.
type Range struct {
	Start, End int64
}

// token returns the leading n bytes of the line at pos, shorter if the
// file ends first. A truncated tail token compares below any full date,
// which steers the seek forward into the EOF check.
func token(data []byte, pos int64, n int) []byte {
	end := pos + int64(n)
	if end > int64(len(data)) {
		end = int64(len(data))
	}
	return data[pos:end]
}

// scanFor walks [from, to) line by line and returns the start of the
// first line matching prefix, or -1. Only ever called on a single
// stride-sized gap, so the walk is bounded.
func scanFor(data []byte, from, to int64, prefix []byte) int64 {
	for pos := from; pos < to; pos = lineEnd(data, pos) {
		if bytes.HasPrefix(data[pos:], prefix) {
			return pos
		}
	}
	return -1
}

// locate moves from the aligned seed to some line whose date equals
// prefix, or returns -1 when no such line exists. Movement is monotonic:
// once the seek direction is chosen by the first comparison it never
// reverses, so the walk terminates even on unsorted input (where the
// result is undefined anyway).
func locate(data []byte, seed int64, prefix []byte, stride int64) int64 {
	size := int64(len(data))
	cur := seed

	for {
		switch cmp := bytes.Compare(token(data, cur, len(prefix)), prefix); {
		case cmp == 0:
			return cur

		case cmp < 0:
			// Seed date precedes the target: seek forward.
			next := alignBackward(data, cur+stride)
			if next <= cur {
				next = lineEnd(data, cur)
			}
			if next >= size {
				return -1
			}
			if bytes.Compare(token(data, next, len(prefix)), prefix) > 0 {
				// Jumped over the block; repair within the gap.
				return scanFor(data, lineEnd(data, cur), next, prefix)
			}
			cur = next

		default:
			// Seed date follows the target: seek backward.
			if cur == 0 {
				return -1
			}
			prev := alignBackward(data, cur-stride)
			if bytes.Compare(token(data, prev, len(prefix)), prefix) < 0 {
				return scanFor(data, lineEnd(data, prev), cur, prefix)
			}
			cur = prev
		}
	}
}

// refine brackets the target date around seed, which must already be
// aligned. When the date is absent the range collapses around seed; the
// caller treats a range yielding zero matches as "no records", not as a
// failure.
func refine(data []byte, seed int64, prefix []byte, stride int64) Range {
	size := int64(len(data))
	if stride < 1 {
		stride = 1
	}

	hit := locate(data, seed, prefix, stride)
	if hit < 0 {
		return Range{Start: seed, End: seed}
	}

	// Backward: step below the first matching probe. Reaching offset 0
	// ends the search without reading a line there.
	start := hit
	for start > 0 {
		if !bytes.HasPrefix(data[start:], prefix) {
			break
		}
		start = alignBackward(data, start-stride)
	}

	// Forward: step past the last matching probe. Re-alignment can land
	// back on the current line when the stride is shorter than the line
	// or the probe sits on the file's final line; fall through to the
	// next line so the probe always advances.
	end := hit
	for end < size {
		if !bytes.HasPrefix(data[end:], prefix) {
			break
		}
		next := alignBackward(data, end+stride)
		if next <= end {
			next = lineEnd(data, end)
		}
		end = next
	}

	return Range{Start: start, End: end}
}

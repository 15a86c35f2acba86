// Extraction: bracket the range, then one forward filtered pass.
//
// Lines streams matching records lazily; callers consume results via
// range and can break early to stop the scan without touching the rest
// of the bracket. ExtractTo drains the same scan into a writer and
// produces a Report with the resolved range, line counts, and a content
// digest so two runs over the same file can be compared cheaply.
package logslice

import (
	"bytes"
	"fmt"
	"io"
	"iter"
)

// search resolves the bracketed byte range for target: estimate, clamp,
// align, refine.
func (f *File) search(target Date) Range {
	size := int64(len(f.data))
	daySize := size / int64(f.config.DaysPerYear)

	pos := clamp(estimate(size, target, f.config.ReferenceYear, f.config.DaysPerYear), size)
	seed := alignBackward(f.data, pos)

	return refine(f.data, seed, target.prefix(), daySize/int64(f.config.StrideDivisor))
}

// Lines yields every line within the bracketed range whose date prefix
// equals target, verbatim and in file order, trailing newline included.
// The sequence is lazy, finite, and single-pass; re-extraction requires
// a fresh call. A closed File yields ErrClosed.
func (f *File) Lines(target Date) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		if f.closed.Load() {
			yield(nil, ErrClosed)
			return
		}

		r := f.search(target)
		prefix := target.prefix()

		for pos := r.Start; pos < r.End; {
			next := lineEnd(f.data, pos)
			ln := f.data[pos:next]
			if bytes.HasPrefix(ln, prefix) {
				if !yield(ln, nil) {
					return
				}
			}
			pos = next
		}
	}
}

// ExtractTo writes every matching line for target to w, in encountered
// order, and returns a Report describing the run. Zero matches return
// the populated Report together with ErrNoMatches so callers can tell an
// empty day apart from a write failure.
func (f *File) ExtractTo(w io.Writer, target Date) (Report, error) {
	rep := Report{Date: target.String()}
	if f.closed.Load() {
		return rep, ErrClosed
	}

	dig, err := newDigest(f.config.DigestAlgorithm)
	if err != nil {
		return rep, err
	}

	r := f.search(target)
	rep.Start, rep.End = r.Start, r.End

	prefix := target.prefix()
	for pos := r.Start; pos < r.End; {
		next := lineEnd(f.data, pos)
		ln := f.data[pos:next]
		rep.Scanned++
		if bytes.HasPrefix(ln, prefix) {
			if _, err := w.Write(ln); err != nil {
				return rep, fmt.Errorf("write output: %w", err)
			}
			dig.Write(ln)
			rep.Matched++
			rep.Bytes += int64(len(ln))
		}
		pos = next
	}

	rep.Digest = dig.sum()
	if rep.Matched == 0 {
		return rep, ErrNoMatches
	}
	return rep, nil
}

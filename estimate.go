// Position estimation under the even-distribution assumption.
//
// If a year of logs fills the file uniformly, one day occupies
// fileSize / daysPerYear bytes and the target date sits daysFrom(reference)
// day-sizes from byte 0. That single multiplication replaces a bisection
// over the whole file; the refiner downstream absorbs the estimate's error
// as long as the real distribution is roughly even. daysPerYear is a fixed
// divisor, deliberately not leap-year aware — the slack is far below the
// refiner's stride.
package logslice

// estimate returns the unaligned byte offset where records for target are
// expected to start. The result may fall outside [0, size); callers clamp
// it before aligning. Dates far outside a plausible single-year window
// yield extreme offsets, which the overflow guard and clamp turn into the
// file's edges rather than garbage positions.
func estimate(size int64, target Date, referenceYear, daysPerYear int) int64 {
	daySize := size / int64(daysPerYear)
	days := int64(target.daysFrom(referenceYear))

	pos := days * daySize
	if days != 0 && daySize != 0 && pos/days != daySize {
		// Multiplication overflowed. Saturate toward the edge the sign
		// points at; clamp finishes the job.
		if days < 0 {
			return -1
		}
		return size
	}
	return pos
}

// clamp restricts pos to the valid byte offsets of a size-byte file.
func clamp(pos, size int64) int64 {
	if pos < 0 {
		return 0
	}
	if pos >= size {
		return size - 1
	}
	return pos
}

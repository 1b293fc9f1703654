package dataset

import "sort"

// sortedCopy stably sorts a copy of in, so ties keep their snapshot order
// and the snapshot itself is never reordered.
func sortedCopy[T any](in []T, less func(a, b T) bool) []T {
	out := make([]T, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Page returns the half-open window [offset, offset+limit) of in, clamped
// to the slice bounds. A limit of zero or less means no limit.
func Page[T any](in []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(in) {
		return nil
	}
	end := len(in)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return in[offset:end]
}

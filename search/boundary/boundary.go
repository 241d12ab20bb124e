// Package boundary provides binary searches that locate boundary
// positions in a sorted slice, for use in range-query evaluation.
//
// Unlike a plain binary search, which only answers "is the target here",
// SearchGE and SearchLE return the two ends of the run of elements that
// fall inside a value range: the first element >= the low bound and the
// last element <= the high bound. Combining the two indices yields a
// closed interval covering exactly the elements in range; SearchRange
// does that composition.
//
// All searches run in O(log n), iterate (no recursion), allocate
// nothing, and never modify or retain the slice. "Not found" is a
// normal result reported through the ok return, never an error and
// never a negative index. Concurrent calls on the same slice are safe
// as long as nothing mutates it.
package boundary

// SearchGE returns the smallest index whose element is not less than
// target, i.e. the lower bound of target in seq. Every element before
// the returned index compares less than target; if duplicates equal to
// target are adjacent, the index is the start of that run.
//
// ok is false when every element is less than target (including when
// seq is empty), meaning no element >= target exists.
func SearchGE[T any](seq []T, target T, cmp Comparator[T]) (index int, ok bool) {
	// invariant: seq[:i] < target, seq[j:] >= target
	i, j := 0, len(seq)
	for i < j {
		h := int(uint(i+j) >> 1) // avoid overflow when computing h
		if cmp(seq[h], target) < 0 {
			i = h + 1
		} else {
			j = h
		}
	}

	if i == len(seq) {
		return 0, false
	}

	return i, true
}

// SearchLE returns the largest index whose element is not greater than
// target, i.e. the upper bound of target in seq. Every element after
// the returned index compares greater than target; if duplicates equal
// to target are adjacent, the index is the end of that run.
//
// ok is false when every element is greater than target (including when
// seq is empty), meaning no element <= target exists.
func SearchLE[T any](seq []T, target T, cmp Comparator[T]) (index int, ok bool) {
	// find the first index with seq[i] > target, then step back one
	i, j := 0, len(seq)
	for i < j {
		h := int(uint(i+j) >> 1)
		if cmp(seq[h], target) <= 0 {
			i = h + 1
		} else {
			j = h
		}
	}

	if i == 0 {
		return 0, false
	}

	return i - 1, true
}

// SearchEQ returns the index of some element comparing equal to target.
// When duplicates exist it is unspecified which of the equal indices is
// returned; callers that need the leftmost or rightmost equal element
// should use SearchGE and SearchLE instead.
//
// ok is false when no element compares equal to target.
func SearchEQ[T any](seq []T, target T, cmp Comparator[T]) (index int, ok bool) {
	i, j := 0, len(seq)
	for i < j {
		h := int(uint(i+j) >> 1)
		c := cmp(seq[h], target)
		if c < 0 {
			i = h + 1
		} else if c > 0 {
			j = h
		} else {
			return h, true
		}
	}

	return 0, false
}

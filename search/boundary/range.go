package boundary

// SearchRange returns the closed index interval [start, end] covering
// exactly the elements of seq whose value lies in [low, high]. On
// success seq[start : end+1] is the matching run.
//
// ok is false when no element falls in the range: either bound may be
// absent, or the two bounds may cross (low lands past high in a gap
// between elements). A false result is a normal empty outcome, not an
// error; start and end are zero and must not be used for slicing.
func SearchRange[T any](seq []T, low, high T, cmp Comparator[T]) (start, end int, ok bool) {
	start, ok = SearchGE(seq, low, cmp)
	if !ok {
		return 0, 0, false
	}

	end, ok = SearchLE(seq, high, cmp)
	if !ok || start > end {
		return 0, 0, false
	}

	return start, end, true
}

// IsSorted reports whether seq is in ascending order under cmp. The
// search functions assume this and never check it themselves; callers
// can assert it in debug or test paths before searching.
func IsSorted[T any](seq []T, cmp Comparator[T]) bool {
	for i := 1; i < len(seq); i++ {
		if cmp(seq[i-1], seq[i]) > 0 {
			return false
		}
	}

	return true
}

package boundary

// Comparator is a three-way comparison between two values of type T.
//
// Should return:
//
// 1. a negative value if a < b
//
// 2. 0 if a == b
//
// 3. a positive value if a > b
//
// and NOT anything else. The ordering it defines must match the order of
// the sequence being searched; the search functions do not validate this,
// and their result is undefined (wrong index, not a crash) if it is
// violated. Use IsSorted in debug paths to assert the precondition.
//
// Because the comparator is passed per call, callers can search by a
// projected key rather than the element's natural order, e.g. search a
// []user by age without user itself defining an ordering.
type Comparator[T any] func(a, b T) int

package pagination

// StatementPageSize is the fixed page length for customer statements.
const StatementPageSize = 10

// PageCount returns how many pages a list of n items occupies. An empty list
// still renders one (empty) page.
func PageCount(n, size int) int {
	if size <= 0 {
		size = StatementPageSize
	}
	if n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

// ClampPage normalizes a requested page number into [1, PageCount].
func ClampPage(page, n, size int) int {
	if page < 1 {
		return 1
	}
	if max := PageCount(n, size); page > max {
		return max
	}
	return page
}

// Slice returns the half-open index range [lo, hi) for the given page.
func Slice(page, n, size int) (int, int) {
	if size <= 0 {
		size = StatementPageSize
	}
	page = ClampPage(page, n, size)
	lo := (page - 1) * size
	hi := lo + size
	if lo > n {
		lo = n
	}
	if hi > n {
		hi = n
	}
	return lo, hi
}

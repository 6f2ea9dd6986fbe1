package util

import "math"

// PageWindow returns the half-open item range [start, end) covered by a
// 1-indexed page of the given size. ok is false when the page cannot hold
// any item: page or size below 1, or a window past the addressable range.
func PageWindow(page, size int) (start, end int, ok bool) {
	if page < 1 || size < 1 {
		return 0, 0, false
	}
	if page-1 > (math.MaxInt-size)/size {
		return 0, 0, false
	}
	start = (page - 1) * size
	return start, start + size, true
}

package algo

// Helper functions shared by the algorithm implementations and their callers.

// IsSorted reports whether data is in non-decreasing order.
func IsSorted(data []int) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// minMax returns the smallest and largest value of a non-empty slice.
func minMax(data []int) (lo, hi int) {
	lo, hi = data[0], data[0]
	for _, v := range data[1:] {
		if v < lo {
			lo = v
		} else if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func swap(data []int, i, j int) {
	data[i], data[j] = data[j], data[i]
}

package config

// SelectDisplaySize picks the largest supported size strictly smaller than
// limit. When none is smaller, the smallest supported size is returned.
// sizes must be sorted largest first; an empty list yields 0.
func SelectDisplaySize(sizes []int, limit int) int {
	if len(sizes) == 0 {
		return 0
	}
	for _, size := range sizes {
		if limit > size {
			return size
		}
	}
	return sizes[len(sizes)-1]
}

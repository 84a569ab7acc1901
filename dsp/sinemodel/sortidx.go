package sinemodel

import "sort"

// argsortDescending returns idx reordered by descending keys[idx[i]]. Equal
// keys keep their order in idx. idx itself is not modified.
func argsortDescending(keys []float64, idx []int) []int {
	perm := make([]int, len(idx))
	copy(perm, idx)
	sort.SliceStable(perm, func(a, b int) bool {
		return keys[perm[a]] > keys[perm[b]]
	})
	return perm
}

// nonZero returns the indices i for which keep(values[i]) holds.
func nonZero(values []float64, keep func(float64) bool) []int {
	idx := make([]int, 0, len(values))
	for i, v := range values {
		if keep(v) {
			idx = append(idx, i)
		}
	}
	return idx
}

package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// GetKeysSorted returns a map's keys in ascending order, for deterministic
// iteration.
func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

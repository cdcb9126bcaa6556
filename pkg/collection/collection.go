// Package collection provides generic utility functions for slices.
package collection

// Find returns first value of slice when predicate returns true. It returns default value of T if no match is found.
func Find[T any](list []T, predicate func(T) bool) T {
	var result T
	for _, val := range list {
		if predicate(val) {
			return val
		}
	}
	return result
}

// FindIndex returns first index when predicate returns true. It returns "-1" if no match is found.
func FindIndex[T any](list []T, predicate func(T) bool) int {
	for i, val := range list {
		if predicate(val) {
			return i
		}
	}
	return -1
}

// Equal returns true if input a and b have the same value in the same order.
func Equal[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i, val := range a {
		if val != b[i] {
			return false
		}
	}
	return true
}

// Contain returns true if the list includes at least one target value.
func Contain[T comparable](list []T, target T) bool {
	for _, val := range list {
		if val == target {
			return true
		}
	}
	return false
}

// IsUnique returns true if the elements of input list are unique.
func IsUnique[T comparable](list []T) bool {
	temp := map[T]bool{}
	for _, val := range list {
		temp[val] = true
	}
	return len(temp) == len(list)
}

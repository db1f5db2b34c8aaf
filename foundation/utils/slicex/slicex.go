// File: slicex.go
// Title: Slice Utilities
// Description: Generic helpers for order-preserving slice operations used
//              by the evaluator's variable bookkeeping.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Unique, Contains and Clone

package slicex

// Unique returns the elements of slice without duplicates, in order of first
// occurrence. The result is never nil.
func Unique[T comparable](slice []T) []T {
	seen := make(map[T]struct{}, len(slice))
	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

// Contains reports whether element occurs in slice
func Contains[T comparable](slice []T, element T) bool {
	for _, item := range slice {
		if item == element {
			return true
		}
	}
	return false
}

// Clone returns a shallow copy of slice; nil stays nil
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}
	return append(make([]T, 0, len(slice)), slice...)
}

package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateProbability checks that p is a usable probability for the option
// called name.
func ValidateProbability(name string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return New(ErrCodeInvalidRange, "%s must be between 0 and 1, got %g", name, p)
	}
	return nil
}

// ValidateRange checks that lo <= hi and that lo is not below floor.
func ValidateRange[T int | float64](name string, lo, hi, floor T) error {
	if lo < floor {
		return New(ErrCodeInvalidRange, "%s lower bound must be at least %v, got %v", name, floor, lo)
	}
	if lo > hi {
		return New(ErrCodeInvalidRange, "%s lower bound %v exceeds upper bound %v", name, lo, hi)
	}
	return nil
}

// ValidatePositive checks that v is strictly positive and finite.
func ValidatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return New(ErrCodeInvalidRange, "%s must be positive, got %g", name, v)
	}
	return nil
}

// ValidatePath validates an output or profile path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	for _, part := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}

package errors

import (
	"math"
	"strings"
	"unicode"
)

// Upper bounds accepted from flags and query strings.
const (
	MaxDimension = 10000.0
	MaxLimit     = 100000
)

// ValidateSize validates chart dimensions in pixels.
// Both values must be finite, positive and no larger than MaxDimension.
func ValidateSize(width, height float64) error {
	for _, v := range []struct {
		name string
		val  float64
	}{{"width", width}, {"height", height}} {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) {
			return New(ErrCodeInvalidSize, "%s must be a finite number", v.name)
		}
		if v.val <= 0 {
			return New(ErrCodeInvalidSize, "%s must be positive, got %g", v.name, v.val)
		}
		if v.val > MaxDimension {
			return New(ErrCodeInvalidSize, "%s too large (max %g)", v.name, MaxDimension)
		}
	}
	return nil
}

// ValidateLimit validates the number of bars requested. The limit must be at
// least 1; option structs use 0 for "unset" and replace it with their default.
func ValidateLimit(limit int) error {
	if limit < 1 {
		return New(ErrCodeInvalidInput, "limit must be at least 1, got %d", limit)
	}
	if limit > MaxLimit {
		return New(ErrCodeInvalidInput, "limit too large (max %d)", MaxLimit)
	}
	return nil
}

// ValidatePath validates a local file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

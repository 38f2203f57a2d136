package utils

import (
	"strconv"
	"strings"
)

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

// StringOr dereferences s, returning fallback when s is nil or blank.
func StringOr(s *string, fallback string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return fallback
	}
	return *s
}

// FloatOr formats f with the given precision, returning fallback when f is nil.
func FloatOr(f *float64, precision int, fallback string) string {
	if f == nil {
		return fallback
	}
	return strconv.FormatFloat(*f, 'f', precision, 64)
}

// NilIfBlank returns nil for an empty or whitespace-only string and a pointer to the trimmed value otherwise.
func NilIfBlank(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

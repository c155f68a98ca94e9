package helpers

import "strings"

// Ptr returns a pointer to v. Optional request fields are pointers so that an
// absent field and an empty one stay distinct.
func Ptr[T any](v T) *T {
	return &v
}

// ValueOr dereferences p, or returns fallback when p is nil.
func ValueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// TrimmedValue returns the trimmed string behind p; nil reads as "".
func TrimmedValue(p *string) string {
	return strings.TrimSpace(ValueOr(p, ""))
}

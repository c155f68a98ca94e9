package helpers

import "strings"

// SplitCSV splits comma-separated input, trimming entries and dropping empty
// ones. It returns nil when nothing is left.
func SplitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FirstNonEmpty returns the first argument that is not empty.
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

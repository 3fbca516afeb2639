package errs

import "strings"

// sanitize replaces line breaks in error message fragments with spaces.
// Keeps formatted errors on a single line for log processing.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

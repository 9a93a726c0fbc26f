// Package utils holds small helpers with no domain knowledge.
package utils

import "strconv"

// AtoiDefault parses s as a base-10 int, returning def when s is empty or
// malformed. No trimming is applied; " 8" is malformed. The handlers use it
// for optional numeric query parameters such as the featured count, where an
// absent or garbled value should fall through to the service default.
func AtoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// Package stacktrace trims goroutine dumps down to frames inside this module.
package stacktrace

import "strings"

// InternalPaths returns "internal/<file>.go:<line>" entries found in a raw
// debug.Stack() dump, in call order.
func InternalPaths(stack []byte) []string {
	var paths []string
	for line := range strings.SplitSeq(string(stack), "\n") {
		line = strings.TrimSpace(line)
		_, rest, ok := strings.Cut(line, "/internal/")
		if !ok || !strings.Contains(rest, ".go:") {
			continue
		}
		if sp := strings.IndexByte(rest, ' '); sp != -1 {
			rest = rest[:sp]
		}
		paths = append(paths, "internal/"+rest)
	}
	return paths
}

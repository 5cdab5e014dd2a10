package filesystem

import "strings"

// Delimiter separates path segments
const Delimiter = "/"

// NormalizePath strips trailing delimiters. An empty result means the path
// names nothing.
func NormalizePath(p string) string {
	return strings.TrimRight(p, Delimiter)
}

// SplitPath splits a normalized path into its segments.
// Interior empty segments ("a//b") are kept and will fail resolution.
func SplitPath(p string) []string {
	return strings.Split(p, Delimiter)
}

// splitParent splits a normalized path into its parent segments and the leaf name
func splitParent(p string) (parent []string, leaf string) {
	segs := SplitPath(p)
	return segs[:len(segs)-1], segs[len(segs)-1]
}

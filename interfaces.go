// Package dirtree contains core domain types and interfaces for the directory tree explorer
package dirtree

// Executor runs a single raw command line against a tree.
// Implementations report failures as *[Error] values whose message is ready
// to be shown to the user verbatim.
type Executor interface {
	Execute(line string) error
}

// LineSource yields raw command lines for a session.
// Next returns io.EOF once the session is over, either because the underlying
// stream is exhausted or because the end-of-session sentinel was read.
type LineSource interface {
	Next() (string, error)
	Close() error
}

// Package sources provides the line sources consumed by the explorer read loop
package sources

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brettbedarf/dirtree"
)

// ScannerSource reads lines from a stream. With a sentinel set, a line equal
// to it (ignoring case and surrounding whitespace) ends the session.
type ScannerSource struct {
	sc       *bufio.Scanner
	closer   io.Closer // nil when the stream is not owned
	sentinel string
}

func newScannerSource(r io.Reader, maxLineSize int, sentinel string) *ScannerSource {
	sc := bufio.NewScanner(r)
	if maxLineSize > 0 {
		sc.Buffer(make([]byte, 0, min(maxLineSize, 64*1024)), maxLineSize)
	}
	return &ScannerSource{sc: sc, sentinel: sentinel}
}

// NewFileSource yields every line of r in order, blank lines included
func NewFileSource(r io.Reader, maxLineSize int) *ScannerSource {
	return newScannerSource(r, maxLineSize, "")
}

// OpenFile opens path as a [NewFileSource]. Close releases the file.
func OpenFile(path string, maxLineSize int) (*ScannerSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open command file: %w", err)
	}
	src := NewFileSource(f, maxLineSize)
	src.closer = f
	return src, nil
}

// NewReaderSource yields lines of r until the sentinel or end of stream.
// Used for interactive sessions whose input is not a terminal.
func NewReaderSource(r io.Reader, maxLineSize int, sentinel string) *ScannerSource {
	return newScannerSource(r, maxLineSize, sentinel)
}

func (s *ScannerSource) Next() (string, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	line := s.sc.Text()
	if IsSentinel(line, s.sentinel) {
		return "", io.EOF
	}
	return line, nil
}

func (s *ScannerSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// IsSentinel reports whether line is the end-of-session keyword.
// An empty sentinel never matches.
func IsSentinel(line, sentinel string) bool {
	return sentinel != "" && strings.EqualFold(strings.TrimSpace(line), sentinel)
}

var _ dirtree.LineSource = (*ScannerSource)(nil)

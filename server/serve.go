package server

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/brettbedarf/dirtree"
	"github.com/brettbedarf/dirtree/internal/util"
)

// Serve drains src, echoing each trimmed line to out, executing it and
// printing the failure message when there is one. Command failures never stop
// the loop; it ends on io.EOF from src or on any other read error, which is
// returned.
func Serve(src dirtree.LineSource, exec dirtree.Executor, out io.Writer) error {
	logger := util.GetLogger("Serve")

	cnt, failed := 0, 0
	for {
		line, err := src.Next()
		if errors.Is(err, io.EOF) {
			logger.Debug().Int("commands", cnt).Int("failed", failed).Msg("Input finished")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}

		cnt++
		if _, err := fmt.Fprintln(out, strings.TrimSpace(line)); err != nil {
			return err
		}
		if err := exec.Execute(line); err != nil {
			failed++
			if _, err := fmt.Fprintln(out, err.Error()); err != nil {
				return err
			}
		}
	}
}

// Serve runs the shared read loop against this explorer, writing to the
// explorer's output.
func (e *Explorer) Serve(src dirtree.LineSource) error {
	return Serve(src, e, e.out)
}

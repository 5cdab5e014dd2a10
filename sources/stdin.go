package sources

import (
	"os"

	"github.com/brettbedarf/dirtree"
	"github.com/brettbedarf/dirtree/config"
	"github.com/brettbedarf/dirtree/internal/util"
)

// NewInteractive picks the interactive source for in: a line-editing prompt
// on a terminal, otherwise plain line reading. Both stop at the sentinel.
func NewInteractive(cfg *config.Config, in *os.File) dirtree.LineSource {
	if in == os.Stdin && util.IsTerminal(in) {
		return NewPromptSource(cfg)
	}
	return NewReaderSource(in, cfg.MaxLineSize, cfg.Sentinel)
}

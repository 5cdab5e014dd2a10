package sources

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/brettbedarf/dirtree"
	"github.com/brettbedarf/dirtree/config"
	"github.com/brettbedarf/dirtree/internal/util"
	"github.com/brettbedarf/dirtree/requests"
	"github.com/peterh/liner"
)

// PromptSource reads lines from a terminal with line editing, history and
// completion of command keywords.
type PromptSource struct {
	line        *liner.State
	prompt      string
	sentinel    string
	historyPath string
	logger      util.Logger
}

// NewPromptSource takes over the terminal until Close is called
func NewPromptSource(cfg *config.Config) *PromptSource {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetTabCompletionStyle(liner.TabPrints)
	line.SetCompleter(Complete)

	p := &PromptSource{
		line:        line,
		prompt:      cfg.Prompt,
		sentinel:    cfg.Sentinel,
		historyPath: cfg.HistoryPath,
		logger:      util.GetLogger("PromptSource"),
	}
	p.loadHistory()
	return p
}

// Next prompts for a line. Ctrl-C, Ctrl-D and the sentinel end the session.
func (p *PromptSource) Next() (string, error) {
	l, err := p.line.Prompt(p.prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", io.EOF
		}
		return "", err
	}
	if IsSentinel(l, p.sentinel) {
		return "", io.EOF
	}
	if strings.TrimSpace(l) != "" {
		p.line.AppendHistory(l)
	}
	return l, nil
}

// Close saves history and restores the terminal
func (p *PromptSource) Close() error {
	p.saveHistory()
	return p.line.Close()
}

// Complete returns the command keywords starting with the typed prefix
func Complete(line string) (c []string) {
	if strings.ContainsAny(line, " \t") {
		return nil
	}
	prefix := strings.ToUpper(line)
	for _, kw := range requests.Keywords() {
		if strings.HasPrefix(kw, prefix) {
			c = append(c, kw)
		}
	}
	return
}

func (p *PromptSource) loadHistory() {
	if p.historyPath == "" {
		return
	}
	f, err := os.Open(p.historyPath)
	if err != nil {
		if !os.IsNotExist(err) {
			p.logger.Warn().Err(err).Str("path", p.historyPath).Msg("Failed to open history file")
		}
		return
	}
	defer f.Close()
	if _, err := p.line.ReadHistory(f); err != nil {
		p.logger.Warn().Err(err).Str("path", p.historyPath).Msg("Failed to read history file")
	}
}

func (p *PromptSource) saveHistory() {
	if p.historyPath == "" {
		return
	}
	f, err := os.Create(p.historyPath)
	if err != nil {
		p.logger.Warn().Err(err).Str("path", p.historyPath).Msg("Failed to create history file")
		return
	}
	defer f.Close()
	if _, err := p.line.WriteHistory(f); err != nil {
		p.logger.Warn().Err(err).Str("path", p.historyPath).Msg("Failed to write history file")
	}
}

var _ dirtree.LineSource = (*PromptSource)(nil)

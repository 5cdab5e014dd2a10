package server

import (
	"fmt"
	"io"

	"github.com/brettbedarf/dirtree"
	"github.com/brettbedarf/dirtree/config"
	"github.com/brettbedarf/dirtree/filesystem"
	"github.com/brettbedarf/dirtree/internal/util"
	"github.com/brettbedarf/dirtree/requests"
	"github.com/google/uuid"
)

// Explorer runs command lines against one directory tree. It is the single
// entry point used by the read loops.
type Explorer struct {
	*filesystem.FileSystem
	cfg       *config.Config
	out       io.Writer // LIST output
	sessionID string
	logger    util.Logger
}

// New creates an Explorer with an empty tree writing listings to out
func New(cfg *config.Config, out io.Writer) *Explorer {
	id := uuid.NewString()
	logger := util.GetLogger("Explorer").With().Str("session", id).Logger()
	logger.Info().Msg("Session started")
	return &Explorer{
		FileSystem: filesystem.NewFS(),
		cfg:        cfg,
		out:        out,
		sessionID:  id,
		logger:     logger,
	}
}

// SessionID returns the unique ID of this explorer session
func (e *Explorer) SessionID() string {
	return e.sessionID
}

// Execute parses and runs a single command line.
// Failures are *dirtree.Error values carrying the user-facing message.
func (e *Explorer) Execute(line string) error {
	cmd, err := requests.ParseCommand(line)
	if err != nil {
		e.logger.Debug().Err(err).Str("line", line).Msg("Rejected command")
		return err
	}

	switch cmd.Action {
	case dirtree.ActionCreate:
		err = e.Create(cmd.Args[0])
	case dirtree.ActionDelete:
		err = e.Delete(cmd.Args[0])
	case dirtree.ActionMove:
		err = e.Move(cmd.Args[0], cmd.Args[1])
	case dirtree.ActionList:
		err = e.List(e.out)
	default:
		err = fmt.Errorf("unhandled action %s", cmd.Action)
	}

	if err != nil {
		e.logger.Debug().Err(err).Str("command", cmd.Text).Msg("Command failed")
		return err
	}
	e.logger.Trace().Str("command", cmd.Text).Msg("Command executed")
	return nil
}

var _ dirtree.Executor = (*Explorer)(nil)

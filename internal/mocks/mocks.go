package mocks

import (
	"io"

	"github.com/brettbedarf/dirtree"
	"github.com/stretchr/testify/mock"
)

// MockExecutor implements dirtree.Executor for testing across packages
type MockExecutor struct {
	mock.Mock
}

func (m *MockExecutor) Execute(line string) error {
	args := m.Called(line)
	return args.Error(0)
}

var _ dirtree.Executor = (*MockExecutor)(nil)

// MockLineSource implements dirtree.LineSource for testing across packages
type MockLineSource struct {
	mock.Mock
}

func (m *MockLineSource) Next() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockLineSource) Close() error {
	args := m.Called()
	return args.Error(0)
}

var _ dirtree.LineSource = (*MockLineSource)(nil)

// SliceSource is a LineSource replaying fixed lines and then io.EOF
type SliceSource struct {
	Lines  []string
	pos    int
	Closed bool
}

func (s *SliceSource) Next() (string, error) {
	if s.pos >= len(s.Lines) {
		return "", io.EOF
	}
	line := s.Lines[s.pos]
	s.pos++
	return line, nil
}

func (s *SliceSource) Close() error {
	s.Closed = true
	return nil
}

var _ dirtree.LineSource = (*SliceSource)(nil)

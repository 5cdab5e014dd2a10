package dirtree

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an [Error] by its cause
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrEmptyCommand
	ErrUnknownCommand
	ErrArgument
	ErrEmptyPath
	ErrNotFound
	ErrAlreadyExists
	ErrCyclicMove
)

func (k ErrorKind) String() string {
	switch k {
	case ErrEmptyCommand:
		return "EmptyCommand"
	case ErrUnknownCommand:
		return "UnknownCommand"
	case ErrArgument:
		return "ArgumentError"
	case ErrEmptyPath:
		return "EmptyPath"
	case ErrNotFound:
		return "NotFound"
	case ErrAlreadyExists:
		return "AlreadyExists"
	case ErrCyclicMove:
		return "CyclicMove"
	default:
		return "Unknown"
	}
}

// Error is the single user-facing failure type. Its message is printed as is.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// NewError builds an Error of the given kind with a formatted message
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Prefixed returns a copy of the error with "<prefix> - " prepended to the
// message. The kind is kept.
func (e *Error) Prefixed(prefix string) *Error {
	return &Error{Kind: e.Kind, Msg: prefix + " - " + e.Msg}
}

// KindOf returns the kind of the first [Error] in err's chain or ErrUnknown
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrUnknown
}

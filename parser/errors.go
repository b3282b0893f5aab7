package parser

import (
	"fmt"

	"github.com/momiji-web/momiji/token"
)

// ErrorOpts is a struct that holds a variety of error data. All fields are
// optional, although one of `Cause` or `Message` are recommended. If `Cause`
// is set, `Message` will be ignored.
type ErrorOpts struct {
	ErrType       string
	Message       string
	Cause         error
	StartPosition token.Position
}

// ParserError is an interface that all parser errors implement.
type ParserError interface {
	Type() string
	Message() string
	Cause() error
	StartPosition() token.Position
	Error() string
}

// NewParserError returns a new BaseParserError populated with the given
// error data.
func NewParserError(opts ErrorOpts) *BaseParserError {
	return &BaseParserError{
		errType:       opts.ErrType,
		message:       opts.Message,
		cause:         opts.Cause,
		startPosition: opts.StartPosition,
	}
}

// BaseParserError is the simplest implementation of ParserError.
type BaseParserError struct {
	// Type of the error, e.g. "syntax error"
	errType string
	// The error message
	message string
	// The wrapped error
	cause error
	// Start position of the error in the input string
	startPosition token.Position
}

func (e *BaseParserError) Error() string {
	var msg string
	if e.cause != nil {
		msg = e.cause.Error()
	} else if e.message != "" {
		msg = e.message
	}
	if e.errType != "" {
		msg = fmt.Sprintf("%s: %s", e.errType, msg)
	}
	return msg
}

func (e *BaseParserError) Type() string {
	return e.errType
}

func (e *BaseParserError) Message() string {
	return e.message
}

func (e *BaseParserError) Cause() error {
	return e.cause
}

func (e *BaseParserError) StartPosition() token.Position {
	return e.startPosition
}

func (e *BaseParserError) Unwrap() error {
	return e.cause
}

// NewSyntaxError returns a new SyntaxError populated with the given error data.
func NewSyntaxError(opts ErrorOpts) *SyntaxError {
	opts.ErrType = "syntax error"
	return &SyntaxError{BaseParserError: NewParserError(opts)}
}

// SyntaxError indicates the input could not be lexed or is structurally
// broken beyond recovery.
type SyntaxError struct {
	*BaseParserError
}

package guidefmt

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedToken reports a line fragment matching no token pattern.
	ErrMalformedToken = errors.New("malformed token")
	// ErrMisplacedGlobal reports a document-level declaration after the first node.
	ErrMisplacedGlobal = errors.New("document declaration after first node")
	// ErrNoCurrentNode reports content or a link declaration before any node.
	ErrNoCurrentNode = errors.New("no current node")
)

// SyntaxError is a fatal parse failure at a specific input line.
type SyntaxError struct {
	Line int
	Msg  string
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func syntaxErrorf(line int, err error, format string, args ...any) *SyntaxError {
	return &SyntaxError{Line: line, Err: err, Msg: fmt.Sprintf(format, args...)}
}

package dispatch

import "fmt"

// Kind classifies a dispatch failure following the JSON-RPC vocabulary.
type Kind int

const (
	KindInvalidParams Kind = iota
	KindMethodNotFound
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindInvalidParams:
		return "invalid params"
	case KindMethodNotFound:
		return "method not found"
	default:
		return "internal error"
	}
}

// Error is the only error type that crosses the dispatch boundary.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func invalidParams(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidParams, Message: fmt.Sprintf(format, args...)}
}

func methodNotFound(name string) *Error {
	return &Error{Kind: KindMethodNotFound, Message: fmt.Sprintf("unknown operation %q", name)}
}

// normalizeError rewraps any failure as a dispatch error. Errors already in
// the taxonomy pass through unchanged; everything else becomes an internal
// error carrying the original message.
func normalizeError(err error) *Error {
	if derr, ok := err.(*Error); ok {
		return derr
	}
	return &Error{Kind: KindInternal, Message: err.Error()}
}

package topsis

import (
	"errors"
	"fmt"
)

// Kind identifies which stage of the pipeline rejected the input. The set
// is closed; callers switch on it instead of matching message text.
type Kind string

const (
	KindParse       Kind = "parse"       // weights/impacts string unusable
	KindLoad        Kind = "load"        // source table missing or not rectangular
	KindShape       Kind = "shape"       // fewer than three columns
	KindType        Kind = "type"        // non-numeric criterion or weight value
	KindArity       Kind = "arity"       // weights/impacts count mismatch
	KindImpact      Kind = "impact"      // impact token not "+" or "-"
	KindComputation Kind = "computation" // degenerate column or row
	KindWrite       Kind = "write"       // result cannot be persisted
)

// Error is a pipeline failure tagged with the Kind of check that tripped.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func wrapError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the Kind from err, or "" if err carries no pipeline Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

package signcore

import "fmt"

type ErrorCode string

const (
	ErrNotEnoughData ErrorCode = "NOT_ENOUGH_DATA"
	ErrInvalidData   ErrorCode = "INVALID_DATA"
	ErrTooManyFields ErrorCode = "TOO_MANY_FIELDS"
)

type ParseError struct {
	Code ErrorCode
	Msg  string
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Msg == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func perr(code ErrorCode, msg string) error {
	return &ParseError{Code: code, Msg: msg}
}

// CodeOf extracts the ErrorCode from err if it is a *ParseError, and ok=false otherwise.
func CodeOf(err error) (ErrorCode, bool) {
	pe, ok := err.(*ParseError)
	if !ok || pe == nil {
		return "", false
	}
	return pe.Code, true
}

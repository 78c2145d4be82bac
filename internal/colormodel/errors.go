package colormodel

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	KindSyntax ErrorKind = iota
	KindRange
	KindUnsupported
)

func (k ErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "invalid syntax"
	case KindRange:
		return "out of range"
	case KindUnsupported:
		return "unsupported"
	}
	return "unknown"
}

var (
	ErrSyntax      = errors.New("invalid syntax")
	ErrRange       = errors.New("out of range")
	ErrUnsupported = errors.New("unsupported")
)

// FormatError is returned by Parse for input a user can correct. It never
// indicates a defect.
type FormatError struct {
	Format Format
	Kind   ErrorKind
	Input  string
	Msg    string
}

func (e *FormatError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s", e.Format, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Format, e.Kind, e.Msg)
}

// Is matches the kind sentinels so callers can use errors.Is(err, ErrRange).
func (e *FormatError) Is(target error) bool {
	switch target {
	case ErrSyntax:
		return e.Kind == KindSyntax
	case ErrRange:
		return e.Kind == KindRange
	case ErrUnsupported:
		return e.Kind == KindUnsupported
	}
	return false
}

func syntaxError(f Format, input, msg string) *FormatError {
	return &FormatError{Format: f, Kind: KindSyntax, Input: input, Msg: msg}
}

func rangeError(f Format, input, msg string) *FormatError {
	return &FormatError{Format: f, Kind: KindRange, Input: input, Msg: msg}
}

func unsupportedError(f Format, input, msg string) *FormatError {
	return &FormatError{Format: f, Kind: KindUnsupported, Input: input, Msg: msg}
}

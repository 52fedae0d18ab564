package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrExecution     = errors.New("execution error")

	ErrInvalidUnit      = errors.New("invalid unit")
	ErrMissingParameter = errors.New("missing parameter")
	ErrInvalidRange     = errors.New("value out of range")
	ErrDomain           = errors.New("formula undefined for input")
	ErrConversion       = errors.New("conversion failed")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindExecution     ErrorKind = "execution"

	KindInvalidUnit      ErrorKind = "invalid_unit"
	KindMissingParameter ErrorKind = "missing_parameter"
	KindInvalidRange     ErrorKind = "invalid_range"
	KindDomain           ErrorKind = "domain_error"
	KindConversion       ErrorKind = "conversion_error"
)

var kindSentinels = map[ErrorKind]error{
	KindNotFound:         ErrNotFound,
	KindInvalidConfig:    ErrInvalidConfig,
	KindExecution:        ErrExecution,
	KindInvalidUnit:      ErrInvalidUnit,
	KindMissingParameter: ErrMissingParameter,
	KindInvalidRange:     ErrInvalidRange,
	KindDomain:           ErrDomain,
	KindConversion:       ErrConversion,
}

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConversionError is returned by converters. Pair names the unit pair
// ("molarity->g_l") and Param the auxiliary input at fault, when there is one.
type ConversionError struct {
	Op    string
	Kind  ErrorKind
	Pair  string
	Param string
	Msg   string
	Cause error
}

func (e *ConversionError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	switch {
	case e.Pair != "" && e.Param != "":
		base += fmt.Sprintf(" (pair=%s, param=%s)", e.Pair, e.Param)
	case e.Pair != "":
		base += fmt.Sprintf(" (pair=%s)", e.Pair)
	case e.Param != "":
		base += fmt.Sprintf(" (param=%s)", e.Param)
	}
	if e.Msg != "" {
		base += ": " + e.Msg
	}
	if e.Cause != nil {
		base += fmt.Sprintf(": %v", e.Cause)
	}
	return base
}

func (e *ConversionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is matches the sentinel of the error's kind, so errors.Is(err, ErrDomain)
// holds even when the domain error sits under a conversion wrapper.
func (e *ConversionError) Is(target error) bool {
	if e == nil {
		return false
	}
	s, ok := kindSentinels[e.Kind]
	return ok && s == target
}

// IsKind helps callers classify errors without depending on infra packages.
// Every error in the chain is considered.
func IsKind(err error, kind ErrorKind) bool {
	if err == nil {
		return false
	}
	if s, ok := kindSentinels[kind]; ok && errors.Is(err, s) {
		return true
	}
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// KindOf returns the kind of the outermost classified error in err's chain.
func KindOf(err error) ErrorKind {
	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		switch e := cur.(type) {
		case *ConversionError:
			return e.Kind
		case *OpError:
			return e.Kind
		}
	}
	return ""
}

package parser

import "errors"

// Sentinel errors matched by every *ParseError of the corresponding kind.
var (
	ErrUnrecognizedStructure = errors.New("could not parse request")
	ErrMalformedPair         = errors.New("invalid word pair format")
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// UnrecognizedStructure means no grammar rule matched the request.
	UnrecognizedStructure ErrorKind = iota + 1
	// MalformedPair means a payload segment did not reduce to exactly two dash-separated parts.
	MalformedPair
)

func (k ErrorKind) String() string {
	switch k {
	case UnrecognizedStructure:
		return "unrecognized_structure"
	case MalformedPair:
		return "malformed_pair"
	default:
		return "unknown"
	}
}

// ParseError is returned for malformed input. Input holds the whole request
// for UnrecognizedStructure and the offending segment for MalformedPair.
type ParseError struct {
	Kind  ErrorKind
	Input string
}

func (e *ParseError) Error() string {
	return e.Unwrap().Error() + ": " + e.Input
}

func (e *ParseError) Unwrap() error {
	if e.Kind == MalformedPair {
		return ErrMalformedPair
	}
	return ErrUnrecognizedStructure
}

package puz

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientPrefix is returned when the marker starts at offset 0 or 1,
	// leaving no room for the file checksum in front of it.
	ErrInsufficientPrefix = errors.New("marker found without room for file checksum")

	// ErrMarkerNotFound is returned when the input never contains the marker.
	ErrMarkerNotFound = errors.New("ACROSS&DOWN marker not found")

	// ErrMagicMismatch is returned when the header does not carry the marker
	// where the scanner placed it.
	ErrMagicMismatch = errors.New("magic mismatch")

	ErrUnexpectedEOF      = errors.New("unexpected end of data")
	ErrUnterminatedString = errors.New("unterminated string")
)

type Stage int

const (
	StageScanning Stage = iota
	StageHeader
	StageBody
)

func (s Stage) String() string {
	switch s {
	case StageScanning:
		return "scanning"
	case StageHeader:
		return "header"
	case StageBody:
		return "body"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// DecodeError reports where a decode stopped. Offset is the position in the
// original input at which the failing field began.
type DecodeError struct {
	Stage  Stage
	Field  string
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("puz: %s at offset %d: %v", e.Stage, e.Offset, e.Err)
	}
	return fmt.Sprintf("puz: %s %s at offset %d: %v", e.Stage, e.Field, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

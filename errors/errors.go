// Package errors defines the typed errors raised by the log parsing
// pipeline. Each type carries the process exit code the CLI should
// terminate with, so that callers can distinguish bad invocations from
// bad input data.
package errors

import "fmt"

// Coder is implemented by every error in this package.
type Coder interface {
	error
	Code() int
}

// Code returns the exit code for err, or 1 for errors raised outside
// this package (I/O failures and the like).
func Code(err error) int {
	if c, ok := err.(Coder); ok {
		return c.Code()
	}
	return 1
}

// InvalidFilename means the input path does not follow the
// platypus_<date>_<time>.txt naming convention. Raised before any line
// is read.
type InvalidFilename string

func NewInvalidFilename(path string) InvalidFilename {
	return InvalidFilename(path)
}

func (e InvalidFilename) Code() int {
	return 2
}

func (e InvalidFilename) Error() string {
	return fmt.Sprintf("log files must be named 'platypus_<date>_<time>.txt', got %q", string(e))
}

// MalformedLine means a log line did not split into the three
// tab-separated fields <offset_ms>, <level>, <payload>, or its offset
// field did not parse as a number. Reason names which condition fired.
type MalformedLine struct {
	Line   string
	Reason string
}

func NewMalformedLine(line, reason string) MalformedLine {
	return MalformedLine{Line: line, Reason: reason}
}

func (e MalformedLine) Code() int {
	return 3
}

func (e MalformedLine) Error() string {
	return fmt.Sprintf("malformed log line (%s): %q", e.Reason, e.Line)
}

// MalformedPayload means a line's JSON payload failed to decode. The
// whole parse is aborted; no partial series are returned.
type MalformedPayload struct {
	Payload string
	Err     error
}

func NewMalformedPayload(payload string, err error) MalformedPayload {
	return MalformedPayload{Payload: payload, Err: err}
}

func (e MalformedPayload) Code() int {
	return 4
}

func (e MalformedPayload) Error() string {
	return fmt.Sprintf("aborted after invalid JSON log message %q: %s", e.Payload, e.Err)
}

func (e MalformedPayload) Unwrap() error {
	return e.Err
}

// DimensionMismatch means two coordinate collections of unequal length
// were compared. Unreachable with the fixed 2D pose type; kept as a
// guard for the generic distance helper.
type DimensionMismatch string

func NewDimensionMismatch(detail string) DimensionMismatch {
	return DimensionMismatch(detail)
}

func (e DimensionMismatch) Code() int {
	return 5
}

func (e DimensionMismatch) Error() string {
	return "coordinate collections must be the same length: " + string(e)
}

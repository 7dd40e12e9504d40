package unistr

import (
	"errors"
	"fmt"
)

// Errors reported by the engine. Use [errors.Is] to test for them; most are
// returned wrapped with additional context.
var (
	// ErrMalformed reports an incomplete or invalid code unit sequence.
	ErrMalformed = errors.New("unistr: malformed code unit sequence")
	// ErrNoMemory reports that an output would exceed the supported size.
	ErrNoMemory = errors.New("unistr: output too large")
	// ErrUnsupportedEncoding reports a character set that cannot be converted.
	ErrUnsupportedEncoding = errors.New("unistr: unsupported encoding")
	// ErrInvalidSequence reports content that cannot be represented in the
	// target character set or decoded from the source character set.
	ErrInvalidSequence = errors.New("unistr: invalid or unconvertible sequence")
	// ErrInvalidForm reports a normalization form the engine does not know.
	ErrInvalidForm = errors.New("unistr: invalid normalization form")
	// ErrInvalidFoldKind reports a case folding kind the engine does not know.
	ErrInvalidFoldKind = errors.New("unistr: invalid case folding kind")
)

// maxOutputUnits bounds every growable output. Exceeding it yields ErrNoMemory.
const maxOutputUnits = 1 << 30

// MalformedError locates ill-formed input.
type MalformedError struct {
	Offset int // Code unit offset of the first invalid unit.
}

// Error implements the error interface.
func (e *MalformedError) Error() string {
	return fmt.Sprintf("unistr: malformed code unit sequence at offset %d", e.Offset)
}

// Unwrap makes MalformedError match ErrMalformed.
func (e *MalformedError) Unwrap() error { return ErrMalformed }

// ConversionError is returned by conversions from or to a legacy character set.
type ConversionError struct {
	Charset string // The character set name as given by the caller.
	Offset  int    // Byte offset of the offending input, -1 if unknown.
	Err     error  // ErrUnsupportedEncoding or ErrInvalidSequence.
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("unistr: converting %q at offset %d: %v", e.Charset, e.Offset, e.Err)
	}
	return fmt.Sprintf("unistr: converting %q: %v", e.Charset, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ConversionError) Unwrap() error { return e.Err }

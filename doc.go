/*
Package unistr implements Unicode normalization, case mapping and text
segmentation over buffers of 8-bit, 16-bit and 32-bit code units.

This package conforms to:
  - Unicode Standard Annex #15 (https://unicode.org/reports/tr15/) for normalization
  - Unicode Standard Annex #29 (https://unicode.org/reports/tr29/) for grapheme and word boundaries
  - Unicode Standard Annex #14 (https://unicode.org/reports/tr14/) for line breaking
  - Section 3.13 of the Unicode Standard for default case operations

# Overview

Using this package, you can:
  - Normalize text to NFD, NFC, NFKD or NFKC
  - Map text to upper, lower or title case, honouring language specific rules
  - Compare strings caselessly, optionally combined with normalization
  - Find grapheme cluster and word boundaries
  - Determine line break opportunities and wrap text to a column width

# Encodings

Every algorithm is written once and works on any [Codec]. Three codecs are
provided:

  - [UTF8] for []uint8 (and []byte)
  - [UTF16] for []uint16
  - [UTF32] for []uint32

Type inference picks the code unit type from the buffer:

	breaks := unistr.GraphemeBreaks(unistr.UTF16, utf16.Encode([]rune("é")))

Buffers are length-bounded by their slice. Use [Terminated] to cut a buffer
at its first zero unit when it follows the C convention of a trailing NUL.

# Boundary Arrays

[GraphemeBreaks] and [WordBreaks] return one flag per code unit. Flag i is
set if a boundary lies immediately before unit i. Only the first unit of a
code point can carry a flag. [PossibleLineBreaks] and [WidthLineBreaks]
return one [LineBreak] value per code unit with the same alignment.

# Output Buffers

Operations producing text accept an optional destination buffer and report
through [Output] whether the result lives in that buffer or in a freshly
allocated one.

# Errors

Boundary analysis never fails: malformed units are treated as isolated
characters. Normalization, case mapping and comparison report
[ErrMalformed] for ill-formed input. Conversions through legacy character
sets report [ErrUnsupportedEncoding] or [ErrInvalidSequence].
*/
package unistr

import "github.com/npillmayer/schuko/tracing"

// UnicodeVersion is the version of the Unicode Standard the rule tables follow.
const UnicodeVersion = "15.0.0"

// tracer traces to key 'unistr'.
func tracer() tracing.Trace {
	return tracing.Select("unistr")
}

package unistr

import (
	"unicode/utf16"
	"unicode/utf8"
)

// CodeUnit is the storage element of an encoded buffer.
type CodeUnit interface {
	~uint8 | ~uint16 | ~uint32
}

// Codec decodes and encodes code points in buffers of code units U. All
// algorithms of this package are written against this interface, so a
// single implementation serves every encoding width.
type Codec[U CodeUnit] interface {
	// DecodeNext decodes the code point at the start of s. It returns the
	// code point and the number of units it occupies. If s starts with an
	// ill-formed sequence, ok is false, r is utf8.RuneError and n is 1. If s
	// is empty, n is 0 and ok is false.
	DecodeNext(s []U) (r rune, n int, ok bool)
	// DecodePrev decodes the code point ending at the end of s, scanning
	// back at most MaxSequence units. Malformed input is reported like in
	// DecodeNext, consuming exactly the last unit.
	DecodePrev(s []U) (r rune, n int, ok bool)
	// Append appends the encoding of r to dst. Invalid code points are
	// encoded as U+FFFD.
	Append(dst []U, r rune) []U
	// UnitWidth returns the size of one code unit in bytes.
	UnitWidth() int
	// MaxSequence returns the maximum number of units per code point.
	MaxSequence() int
}

// The codecs for the three Unicode encoding forms.
var (
	UTF8  Codec[uint8]  = utf8Codec{}
	UTF16 Codec[uint16] = utf16Codec{}
	UTF32 Codec[uint32] = utf32Codec{}
)

// --- UTF-8 -----------------------------------------------------------------

type utf8Codec struct{}

func (utf8Codec) DecodeNext(s []uint8) (rune, int, bool) {
	if len(s) == 0 {
		return utf8.RuneError, 0, false
	}
	if s[0] < utf8.RuneSelf { // Fast track ASCII.
		return rune(s[0]), 1, true
	}
	r, n := utf8.DecodeRune(s)
	if r == utf8.RuneError && n <= 1 {
		return utf8.RuneError, 1, false
	}
	return r, n, true
}

func (utf8Codec) DecodePrev(s []uint8) (rune, int, bool) {
	if len(s) == 0 {
		return utf8.RuneError, 0, false
	}
	if last := s[len(s)-1]; last < utf8.RuneSelf {
		return rune(last), 1, true
	}
	r, n := utf8.DecodeLastRune(s)
	if r == utf8.RuneError && n <= 1 {
		return utf8.RuneError, 1, false
	}
	return r, n, true
}

func (utf8Codec) Append(dst []uint8, r rune) []uint8 {
	return utf8.AppendRune(dst, r)
}

func (utf8Codec) UnitWidth() int   { return 1 }
func (utf8Codec) MaxSequence() int { return utf8.UTFMax }

// --- UTF-16 ----------------------------------------------------------------

const (
	surrHighStart = 0xd800
	surrLowStart  = 0xdc00
	surrEnd       = 0xe000
)

func isHighSurrogate(u uint16) bool { return u >= surrHighStart && u < surrLowStart }
func isLowSurrogate(u uint16) bool  { return u >= surrLowStart && u < surrEnd }

type utf16Codec struct{}

func (utf16Codec) DecodeNext(s []uint16) (rune, int, bool) {
	if len(s) == 0 {
		return utf8.RuneError, 0, false
	}
	u := s[0]
	if !utf16.IsSurrogate(rune(u)) {
		return rune(u), 1, true
	}
	if isHighSurrogate(u) && len(s) > 1 && isLowSurrogate(s[1]) {
		return utf16.DecodeRune(rune(u), rune(s[1])), 2, true
	}
	return utf8.RuneError, 1, false
}

func (utf16Codec) DecodePrev(s []uint16) (rune, int, bool) {
	if len(s) == 0 {
		return utf8.RuneError, 0, false
	}
	u := s[len(s)-1]
	if !utf16.IsSurrogate(rune(u)) {
		return rune(u), 1, true
	}
	if isLowSurrogate(u) && len(s) > 1 && isHighSurrogate(s[len(s)-2]) {
		return utf16.DecodeRune(rune(s[len(s)-2]), rune(u)), 2, true
	}
	return utf8.RuneError, 1, false
}

func (utf16Codec) Append(dst []uint16, r rune) []uint16 {
	return utf16.AppendRune(dst, r)
}

func (utf16Codec) UnitWidth() int   { return 2 }
func (utf16Codec) MaxSequence() int { return 2 }

// --- UTF-32 ----------------------------------------------------------------

type utf32Codec struct{}

func validScalar(u uint32) bool {
	return u <= unicodeMax && (u < surrHighStart || u >= surrEnd)
}

func (utf32Codec) DecodeNext(s []uint32) (rune, int, bool) {
	if len(s) == 0 {
		return utf8.RuneError, 0, false
	}
	if !validScalar(s[0]) {
		return utf8.RuneError, 1, false
	}
	return rune(s[0]), 1, true
}

func (utf32Codec) DecodePrev(s []uint32) (rune, int, bool) {
	if len(s) == 0 {
		return utf8.RuneError, 0, false
	}
	return utf32Codec{}.DecodeNext(s[len(s)-1:])
}

func (utf32Codec) Append(dst []uint32, r rune) []uint32 {
	if r < 0 || !validScalar(uint32(r)) {
		r = utf8.RuneError
	}
	return append(dst, uint32(r))
}

func (utf32Codec) UnitWidth() int   { return 4 }
func (utf32Codec) MaxSequence() int { return 1 }

// unicodeMax is the largest Unicode code point.
const unicodeMax = 0x10ffff

// --- Helpers ---------------------------------------------------------------

// Terminated returns s up to, but not including, its first zero unit. If s
// contains no zero unit, s is returned unchanged.
func Terminated[U CodeUnit](s []U) []U {
	for i, u := range s {
		if u == 0 {
			return s[:i]
		}
	}
	return s
}

// Encode encodes a sequence of code points with codec c.
func Encode[U CodeUnit](c Codec[U], runes []rune) []U {
	out := make([]U, 0, len(runes))
	for _, r := range runes {
		out = c.Append(out, r)
	}
	return out
}

// DecodeAll decodes s into code points. It fails with a [*MalformedError]
// at the first ill-formed sequence.
func DecodeAll[U CodeUnit](c Codec[U], s []U) ([]rune, error) {
	runes := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, n, ok := c.DecodeNext(s[i:])
		if !ok {
			return nil, &MalformedError{Offset: i}
		}
		runes = append(runes, r)
		i += n
	}
	return runes, nil
}

// Validate reports the first ill-formed sequence of s, if any.
func Validate[U CodeUnit](c Codec[U], s []U) error {
	for i := 0; i < len(s); {
		_, n, ok := c.DecodeNext(s[i:])
		if !ok {
			return &MalformedError{Offset: i}
		}
		i += n
	}
	return nil
}

// codePoint is a decoded code point together with its location in the
// source buffer.
type codePoint struct {
	r   rune
	off int  // Offset of the first code unit.
	n   int  // Number of code units.
	bad bool // The unit at off is ill-formed and stands alone.
}

// scan decodes s leniently. Every ill-formed unit becomes a codePoint of
// its own with bad set.
func scan[U CodeUnit](c Codec[U], s []U) []codePoint {
	cps := make([]codePoint, 0, len(s))
	for i := 0; i < len(s); {
		r, n, ok := c.DecodeNext(s[i:])
		cps = append(cps, codePoint{r: r, off: i, n: n, bad: !ok})
		i += n
	}
	return cps
}

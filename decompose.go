package unistr

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// DecompositionKind tags a character decomposition.
type DecompositionKind int

// Decomposition kinds.
const (
	DecompNone      DecompositionKind = iota // The character does not decompose.
	DecompCanonical                          // Canonical decomposition.
	DecompCompat                             // Compatibility decomposition.
)

func (k DecompositionKind) String() string {
	switch k {
	case DecompCanonical:
		return "canonical"
	case DecompCompat:
		return "compat"
	}
	return "none"
}

// Decomposition is the tagged decomposition mapping of a character.
type Decomposition struct {
	Kind  DecompositionKind
	Runes []rune
}

// MaxDecompositionLength bounds the length of the full decomposition of any
// single code point (U+FDFA expands to 18 code points under NFKD).
const MaxDecompositionLength = 18

// maxDecompositionDepth bounds recursive expansion.
const maxDecompositionDepth = 8

// Hangul syllable composition constants.
const (
	hangulSBase  = 0xac00
	hangulLBase  = 0x1100
	hangulVBase  = 0x1161
	hangulTBase  = 0x11a7
	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount // 588
	hangulSCount = hangulLCount * hangulNCount // 11172
)

func isHangulSyllable(r rune) bool {
	return r >= hangulSBase && r < hangulSBase+hangulSCount
}

// DecomposeHangul returns the conjoining jamo of a precomposed Hangul
// syllable, or nil if r is not one.
func DecomposeHangul(r rune) []rune {
	if !isHangulSyllable(r) {
		return nil
	}
	return appendHangul(make([]rune, 0, 3), r)
}

func appendHangul(dst []rune, r rune) []rune {
	s := r - hangulSBase
	l := hangulLBase + s/hangulNCount
	v := hangulVBase + (s%hangulNCount)/hangulTCount
	t := hangulTBase + s%hangulTCount
	dst = append(dst, l, v)
	if t != hangulTBase {
		dst = append(dst, t)
	}
	return dst
}

// DecompositionOf returns the decomposition mapping of r. Mappings are fully
// expanded. Hangul syllables are decomposed arithmetically.
func DecompositionOf(r rune) Decomposition {
	if r < 0xa0 {
		return Decomposition{}
	}
	if isHangulSyllable(r) {
		return Decomposition{Kind: DecompCanonical, Runes: DecomposeHangul(r)}
	}
	if d := normProperties(norm.NFD, r).Decomposition(); d != nil {
		return Decomposition{Kind: DecompCanonical, Runes: []rune(string(d))}
	}
	if d := normProperties(norm.NFKD, r).Decomposition(); d != nil {
		return Decomposition{Kind: DecompCompat, Runes: []rune(string(d))}
	}
	return Decomposition{}
}

// Decompose returns the full decomposition of r under form, in canonical
// order. Composed forms decompose like their decomposed counterparts. If r
// does not decompose, the result holds r itself.
func Decompose(r rune, form Form) ([]rune, error) {
	if !form.valid() {
		return nil, fmt.Errorf("decompose %U: %w", r, ErrInvalidForm)
	}
	runes := decomposeRune(make([]rune, 0, 4), r, form.compat(), 0)
	canonicalOrder(runes)
	return runes, nil
}

// decomposeRune appends the decomposition of r to dst, expanding mappings
// until no component decomposes further.
func decomposeRune(dst []rune, r rune, compat bool, depth int) []rune {
	if r < 0xa0 {
		return append(dst, r)
	}
	if isHangulSyllable(r) {
		return appendHangul(dst, r)
	}
	d := DecompositionOf(r)
	if d.Kind == DecompNone || d.Kind == DecompCompat && !compat {
		return append(dst, r)
	}
	if depth >= maxDecompositionDepth {
		tracer().Errorf("decomposition of %U exceeds depth %d", r, maxDecompositionDepth)
		return append(dst, d.Runes...)
	}
	for _, c := range d.Runes {
		if c == r { // Self-referential entries would never terminate.
			dst = append(dst, c)
			continue
		}
		dst = decomposeRune(dst, c, compat, depth+1)
	}
	return dst
}

// canonicalOrder sorts every maximal run of non-starters by combining class.
// The sort is stable: marks of equal class keep their relative order.
func canonicalOrder(runes []rune) {
	var classes []uint8
	for i := 1; i < len(runes); i++ {
		cc := CombiningClass(runes[i])
		if cc == 0 || CombiningClass(runes[i-1]) <= cc {
			continue
		}
		if classes == nil {
			classes = make([]uint8, len(runes))
			for k, r := range runes {
				classes[k] = CombiningClass(r)
			}
		}
		// Insertion sort step: move runes[i] back past higher classes.
		r := runes[i]
		j := i
		for j > 0 && classes[j-1] > cc {
			runes[j], classes[j] = runes[j-1], classes[j-1]
			j--
		}
		runes[j], classes[j] = r, cc
	}
}

// decomposeAll decomposes every code point of s and puts the result in
// canonical order.
func decomposeAll(s []rune, compat bool) []rune {
	out := make([]rune, 0, len(s)+len(s)/4)
	for _, r := range s {
		out = decomposeRune(out, r, compat, 0)
	}
	canonicalOrder(out)
	return out
}

package unistr

import (
	"slices"
)

// CaseCmp compares a and b ignoring case. Both are folded as by [CaseFold]
// with the given language, kind and form, and the folded code point
// sequences are compared. The result is negative, zero or positive.
func CaseCmp[U CodeUnit](c Codec[U], a, b []U, lang string, kind FoldKind, nf Form) (int, error) {
	fa, err := decodeFolded(c, a, lang, kind, nf)
	if err != nil {
		return 0, err
	}
	fb, err := decodeFolded(c, b, lang, kind, nf)
	if err != nil {
		return 0, err
	}
	return slices.Compare(fa, fb), nil
}

// CaseCmpTotal is like [CaseCmp] but orders strings that are equal ignoring
// case by their code points, so that only identical strings compare equal.
func CaseCmpTotal[U CodeUnit](c Codec[U], a, b []U, lang string, kind FoldKind, nf Form) (int, error) {
	cmp, err := CaseCmp(c, a, b, lang, kind, nf)
	if err != nil || cmp != 0 {
		return cmp, err
	}
	ra, _ := DecodeAll(c, a)
	rb, _ := DecodeAll(c, b)
	return slices.Compare(ra, rb), nil
}

// NormalizedEqual reports whether a and b are equal ignoring case. See
// [CaseCmp].
func NormalizedEqual[U CodeUnit](c Codec[U], a, b []U, lang string, kind FoldKind, nf Form) (bool, error) {
	cmp, err := CaseCmp(c, a, b, lang, kind, nf)
	return cmp == 0 && err == nil, err
}

// EqualFold reports whether the Go strings a and b are equal under
// canonical caseless matching. Ill-formed strings are never equal.
func EqualFold(a, b string) bool {
	eq, err := NormalizedEqual(UTF8, []byte(a), []byte(b), "", FoldDefault, NFD)
	return eq && err == nil
}

// isInvariant reports whether NFD(s) is unchanged by the case operations
// modes, checked in turn.
func isInvariant[U CodeUnit](c Codec[U], s []U, lang string, modes ...caseMode) (bool, error) {
	runes, err := DecodeAll(c, s)
	if err != nil {
		return false, err
	}
	nfd := decomposeAll(runes, false)
	m := newCaseMapper(lang)
	for _, mode := range modes {
		mapped := decomposeAll(m.mapRunes(mode, nfd, CasingPrefix{}, CasingSuffix{}), false)
		if !slices.Equal(mapped, nfd) {
			return false, nil
		}
	}
	return true, nil
}

// IsCased reports whether case mappings have any effect on s, that is,
// whether its upper, lower or title case mapping differs from it after
// canonical decomposition.
func IsCased[U CodeUnit](c Codec[U], s []U, lang string) (bool, error) {
	invariant, err := isInvariant(c, s, lang, caseUpper, caseLower, caseTitle)
	return !invariant && err == nil, err
}

// IsUppercase reports whether s is unchanged by mapping it to uppercase.
func IsUppercase[U CodeUnit](c Codec[U], s []U, lang string) (bool, error) {
	return isInvariant(c, s, lang, caseUpper)
}

// IsLowercase reports whether s is unchanged by mapping it to lowercase.
func IsLowercase[U CodeUnit](c Codec[U], s []U, lang string) (bool, error) {
	return isInvariant(c, s, lang, caseLower)
}

// IsTitlecase reports whether s is unchanged by mapping it to title case.
func IsTitlecase[U CodeUnit](c Codec[U], s []U, lang string) (bool, error) {
	return isInvariant(c, s, lang, caseTitle)
}

// IsCasefolded reports whether s is unchanged by full case folding.
func IsCasefolded[U CodeUnit](c Codec[U], s []U, lang string) (bool, error) {
	return isInvariant(c, s, lang, caseFold)
}

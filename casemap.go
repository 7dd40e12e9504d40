package unistr

import (
	"fmt"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// caseLanguage selects the language specific rules of SpecialCasing.txt.
type caseLanguage int

const (
	langDefault    caseLanguage = iota
	langTurkic                  // Turkish and Azerbaijani dotted and dotless i.
	langLithuanian              // Lithuanian retention of the dot above i and j.
)

// parseCaseLanguage maps an ISO 639 code or BCP 47 tag to its case rules.
// Unknown or malformed names use the default rules.
func parseCaseLanguage(lang string) caseLanguage {
	if lang == "" {
		return langDefault
	}
	tag, err := language.Parse(lang)
	if err != nil {
		tracer().Debugf("case mapping: language %q not recognized: %v", lang, err)
		return langDefault
	}
	base, _ := tag.Base()
	switch base.String() {
	case "tr", "az":
		return langTurkic
	case "lt":
		return langLithuanian
	}
	return langDefault
}

type caseMode int

const (
	caseUpper caseMode = iota
	caseLower
	caseTitle
	caseFold
)

// caseMapper maps code points one at a time. The unconditional full
// mappings come from x/text; the conditional ones are applied here because
// they depend on context that may lie outside the current chunk. A
// caseMapper must not be shared between goroutines.
type caseMapper struct {
	lang   caseLanguage
	simple bool // Simple instead of full case folding.
	casers [4]*cases.Caser
}

func newCaseMapper(lang string) *caseMapper {
	return &caseMapper{lang: parseCaseLanguage(lang)}
}

func (m *caseMapper) caser(mode caseMode) *cases.Caser {
	if m.casers[mode] == nil {
		var c cases.Caser
		switch mode {
		case caseUpper:
			c = cases.Upper(language.Und)
		case caseLower:
			c = cases.Lower(language.Und)
		case caseTitle:
			c = cases.Title(language.Und)
		default:
			c = cases.Fold()
		}
		m.casers[mode] = &c
	}
	return m.casers[mode]
}

// full appends the unconditional full case mapping of r to dst.
func (m *caseMapper) full(mode caseMode, r rune, dst []rune) []rune {
	if uint32(r) < 0x80 {
		switch {
		case (mode == caseUpper || mode == caseTitle) && 'a' <= r && r <= 'z':
			r -= 'a' - 'A'
		case (mode == caseLower || mode == caseFold) && 'A' <= r && r <= 'Z':
			r += 'a' - 'A'
		}
		return append(dst, r)
	}
	for _, c := range m.caser(mode).String(string(r)) {
		dst = append(dst, c)
	}
	return dst
}

// simpleFold returns the simple case folding of r (status C and S).
func (m *caseMapper) simpleFold(r rune) rune {
	if r == 0x0130 {
		return r // Only the Turkic mapping applies.
	}
	if f := m.full(caseFold, r, nil); len(f) == 1 {
		return f[0]
	}
	return unicode.ToLower(unicode.ToUpper(r))
}

// conditional applies the context and language dependent mappings. ok is
// false if none applies to r. after computes the context following r.
func (m *caseMapper) conditional(dst []rune, mode caseMode, r rune, prefix CasingPrefix, after func() CasingSuffix) (_ []rune, ok bool) {
	switch mode {
	case caseLower:
		if r == 0x03a3 { // Final_Sigma
			if isCasedRune(prefix.LastNonIgnorable) && !isCasedRune(after().FirstNonIgnorable) {
				return append(dst, 0x03c2), true
			}
			return append(dst, 0x03c3), true
		}
		switch m.lang {
		case langLithuanian:
			switch r {
			case 'I', 'J', 0x012e:
				if after().MoreAbove {
					return append(m.full(caseLower, r, dst), combiningDot), true
				}
			case 0x00cc:
				return append(dst, 'i', combiningDot, 0x0300), true
			case 0x00cd:
				return append(dst, 'i', combiningDot, 0x0301), true
			case 0x0128:
				return append(dst, 'i', combiningDot, 0x0303), true
			}
		case langTurkic:
			switch {
			case r == 0x0130:
				return append(dst, 'i'), true
			case r == combiningDot && prefix.LastNormalOrAbove == 'I': // After_I
				return dst, true
			case r == 'I' && !after().BeforeDot:
				return append(dst, 0x0131), true
			}
		}
	case caseUpper, caseTitle:
		switch {
		case m.lang == langLithuanian && r == combiningDot &&
			unicode.Is(unicode.Soft_Dotted, prefix.LastNormalOrAbove):
			return dst, true
		case m.lang == langTurkic && r == 'i':
			return append(dst, 0x0130), true
		}
	case caseFold:
		// I followed by U+0307 is the decomposition of U+0130 and folds
		// like it, as in lower casing.
		if m.lang == langTurkic {
			switch {
			case r == 0x0130:
				return append(dst, 'i'), true
			case r == combiningDot && prefix.LastNormalOrAbove == 'I':
				return dst, true
			case r == 'I' && after().BeforeDot:
				return append(dst, 'i'), true
			case r == 'I':
				return append(dst, 0x0131), true
			}
		}
	}
	return dst, false
}

// mapRunes maps runes, which are surrounded by text with the given contexts.
//
// Title casing maps the first cased character of every word to titlecase
// and the rest of the word to lowercase.
func (m *caseMapper) mapRunes(mode caseMode, runes []rune, prefix CasingPrefix, suffix CasingSuffix) []rune {
	out := make([]rune, 0, len(runes)+len(runes)/8)
	var titled []bool
	if mode == caseTitle {
		titled, _ = titleWords(prefix, runes)
	}
	for i, r := range runes {
		after := func() CasingSuffix { return suffixOf(runes[i+1:], suffix) }
		rmode := mode
		if mode == caseTitle && !titled[i] {
			rmode = caseLower
		}
		var ok bool
		if out, ok = m.conditional(out, rmode, r, prefix, after); !ok {
			if rmode == caseFold && m.simple {
				out = append(out, m.simpleFold(r))
			} else {
				out = m.full(rmode, r, out)
			}
		}
		prefix = prefix.advance(r)
	}
	return out
}

// caseMap decodes s, maps it and normalizes the result to nf.
func caseMap[U CodeUnit](op string, mode caseMode, c Codec[U], s []U, prefix CasingPrefix, suffix CasingSuffix,
	lang string, nf Form, buf []U) (Output[U], error) {
	if nf != NoForm && !nf.valid() {
		return Output[U]{}, fmt.Errorf("%s: %w", op, ErrInvalidForm)
	}
	runes, err := DecodeAll(c, s)
	if err != nil {
		return Output[U]{}, fmt.Errorf("%s: %w", op, err)
	}
	mapped := newCaseMapper(lang).mapRunes(mode, runes, prefix, suffix)
	if nf != NoForm {
		mapped = normalizeRunes(nf, mapped)
	}
	return encodeInto(c, mapped, buf)
}

// ToUpper maps s to uppercase using the full case mappings, including the
// conditional ones for language lang (an ISO 639 code such as "tr", may be
// empty). If nf is not NoForm the result is normalized to nf.
func ToUpper[U CodeUnit](c Codec[U], s []U, lang string, nf Form, buf []U) (Output[U], error) {
	return caseMap("upper case", caseUpper, c, s, CasingPrefix{}, CasingSuffix{}, lang, nf, buf)
}

// ToUpperContext is like [ToUpper] for a chunk s of a longer text. prefix
// and suffix describe the text around the chunk; see [PrefixContext] and
// [SuffixContext].
func ToUpperContext[U CodeUnit](c Codec[U], s []U, prefix CasingPrefix, suffix CasingSuffix, lang string, nf Form, buf []U) (Output[U], error) {
	return caseMap("upper case", caseUpper, c, s, prefix, suffix, lang, nf, buf)
}

// ToLower maps s to lowercase. See [ToUpper].
func ToLower[U CodeUnit](c Codec[U], s []U, lang string, nf Form, buf []U) (Output[U], error) {
	return caseMap("lower case", caseLower, c, s, CasingPrefix{}, CasingSuffix{}, lang, nf, buf)
}

// ToLowerContext maps a chunk of a longer text to lowercase.
func ToLowerContext[U CodeUnit](c Codec[U], s []U, prefix CasingPrefix, suffix CasingSuffix, lang string, nf Form, buf []U) (Output[U], error) {
	return caseMap("lower case", caseLower, c, s, prefix, suffix, lang, nf, buf)
}

// ToTitle maps the first cased character of each word of s to titlecase
// and the other characters to lowercase. Words are delimited as by
// [WordBreaks].
func ToTitle[U CodeUnit](c Codec[U], s []U, lang string, nf Form, buf []U) (Output[U], error) {
	return caseMap("title case", caseTitle, c, s, CasingPrefix{}, CasingSuffix{}, lang, nf, buf)
}

// ToTitleContext maps a chunk of a longer text to title case.
func ToTitleContext[U CodeUnit](c Codec[U], s []U, prefix CasingPrefix, suffix CasingSuffix, lang string, nf Form, buf []U) (Output[U], error) {
	return caseMap("title case", caseTitle, c, s, prefix, suffix, lang, nf, buf)
}

// FoldKind selects a case folding algorithm.
type FoldKind int

const (
	// FoldDefault is default caseless matching (D145). Combined with a
	// normalization form it yields canonical (D147) or compatibility (D149)
	// caseless matching.
	FoldDefault FoldKind = iota
	// FoldFull applies the full case folding, then normalizes.
	FoldFull
	// FoldSimple applies the simple one-to-one case folding, then normalizes.
	FoldSimple
)

var foldKindNames = [...]string{FoldDefault: "default", FoldFull: "full", FoldSimple: "simple"}

func (k FoldKind) String() string {
	if k < 0 || int(k) >= len(foldKindNames) {
		return fmt.Sprintf("FoldKind(%d)", int(k))
	}
	return foldKindNames[k]
}

// ParseFoldKind returns the fold kind named name. The empty string yields
// FoldDefault.
func ParseFoldKind(name string) (FoldKind, error) {
	if name == "" {
		return FoldDefault, nil
	}
	for k, n := range foldKindNames {
		if n == name {
			return FoldKind(k), nil
		}
	}
	return FoldDefault, fmt.Errorf("%q: %w", name, ErrInvalidFoldKind)
}

// foldRunes folds runes according to kind and normalizes the result to nf.
func foldRunes(runes []rune, lang string, kind FoldKind, nf Form) []rune {
	m := newCaseMapper(lang)
	m.simple = kind == FoldSimple
	fold := func(rs []rune) []rune {
		return m.mapRunes(caseFold, rs, CasingPrefix{}, CasingSuffix{})
	}
	if kind != FoldDefault {
		out := fold(runes)
		if nf != NoForm {
			out = normalizeRunes(nf, out)
		}
		return out
	}
	var out []rune
	switch {
	case nf == NoForm:
		return fold(runes)
	case nf.compat():
		// Folding can expose characters that decompose again.
		out = decomposeAll(fold(decomposeAll(fold(decomposeAll(runes, false)), true)), true)
	default:
		out = decomposeAll(fold(decomposeAll(runes, false)), false)
	}
	if nf.composed() {
		out = compose(out)
	}
	return out
}

// CaseFold folds the case of s for caseless matching. lang selects the
// Turkic folding of I and İ when it names Turkish or Azerbaijani. For
// FoldDefault, nf selects the flavour of caseless matching; for the other
// kinds, the folded text is normalized to nf. NoForm skips normalization.
func CaseFold[U CodeUnit](c Codec[U], s []U, lang string, kind FoldKind, nf Form, buf []U) (Output[U], error) {
	folded, err := decodeFolded(c, s, lang, kind, nf)
	if err != nil {
		return Output[U]{}, err
	}
	return encodeInto(c, folded, buf)
}

func decodeFolded[U CodeUnit](c Codec[U], s []U, lang string, kind FoldKind, nf Form) ([]rune, error) {
	if nf != NoForm && !nf.valid() {
		return nil, fmt.Errorf("case fold: %w", ErrInvalidForm)
	}
	if kind < FoldDefault || kind > FoldSimple {
		return nil, fmt.Errorf("case fold: %v: %w", kind, ErrInvalidFoldKind)
	}
	runes, err := DecodeAll(c, s)
	if err != nil {
		return nil, fmt.Errorf("case fold: %w", err)
	}
	return foldRunes(runes, lang, kind, nf), nil
}

// CaseMapping holds the unconditional full case mappings of a character.
type CaseMapping struct {
	Upper, Lower, Title, Fold []rune
}

// CaseMappingOf returns the unconditional full case mappings of r.
func CaseMappingOf(r rune) CaseMapping {
	m := newCaseMapper("")
	return CaseMapping{
		Upper: m.full(caseUpper, r, nil),
		Lower: m.full(caseLower, r, nil),
		Title: m.full(caseTitle, r, nil),
		Fold:  m.full(caseFold, r, nil),
	}
}

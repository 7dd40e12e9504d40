package unistr

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// cased holds the characters with the Cased property (D135).
var cased = rangetable.Merge(unicode.Lu, unicode.Ll, unicode.Lt,
	unicode.Other_Lowercase, unicode.Other_Uppercase)

// isCasedRune reports the Cased property of r.
func isCasedRune(r rune) bool {
	if uint32(r) < 0x80 {
		return 'A' <= r && r <= 'Z' || 'a' <= r && r <= 'z'
	}
	return unicode.Is(cased, r)
}

// isCaseIgnorable reports the Case_Ignorable property of r (D136).
func isCaseIgnorable(r rune) bool {
	switch propertyWords(r) {
	case prMidLetter, prMidNumLet, prSingleQuote:
		return true
	}
	switch generalCategory(r) {
	case gcMn, gcMe, gcCf, gcLm, gcSk:
		return true
	}
	return false
}

// combiningDot is U+0307 COMBINING DOT ABOVE.
const combiningDot = 0x0307

// CasingPrefix describes the text before a chunk, as far as the
// conditional case mappings depend on it. The zero value describes the
// start of the text.
type CasingPrefix struct {
	// LastNonIgnorable is the last preceding character that is not
	// case-ignorable, 0 if there is none.
	LastNonIgnorable rune
	// LastNormalOrAbove is the last preceding character with combining
	// class 0 or 230, 0 if there is none.
	LastNormalOrAbove rune

	// Word context for title casing: the last two characters not absorbed
	// by WB4, followed by the final character if it was absorbed. words[last]
	// is the last unabsorbed one. Whether a word boundary precedes it may
	// depend on the text that follows, so the title state at the end is
	// kept for both outcomes.
	words         [3]rune
	nwords, last  uint8
	split, joined titleState
}

// CasingSuffix describes the text after a chunk. The zero value describes
// the end of the text.
type CasingSuffix struct {
	// FirstNonIgnorable is the first following character that is not
	// case-ignorable, 0 if there is none.
	FirstNonIgnorable rune
	// MoreAbove is set if a character of combining class 230 follows, with
	// no character of class 0 or 230 in between.
	MoreAbove bool
	// BeforeDot is set if U+0307 follows, with no character of class 0 or
	// 230 in between.
	BeforeDot bool
}

// PrefixContext returns the casing context at the end of s, to be passed
// along with the chunk that follows s.
func PrefixContext[U CodeUnit](c Codec[U], s []U) CasingPrefix {
	return PrefixContextExtend(c, s, CasingPrefix{})
}

// PrefixContextExtend is like [PrefixContext] for a chunk s that is itself
// preceded by text with context ctx.
func PrefixContextExtend[U CodeUnit](c Codec[U], s []U, ctx CasingPrefix) CasingPrefix {
	runes := scanRunes(c, s)
	_, ctx = titleWords(ctx, runes)
	for _, r := range runes {
		ctx = ctx.advance(r)
	}
	return ctx
}

func (ctx CasingPrefix) advance(r rune) CasingPrefix {
	if !isCaseIgnorable(r) {
		ctx.LastNonIgnorable = r
	}
	if cc := CombiningClass(r); cc == 0 || cc == 230 {
		ctx.LastNormalOrAbove = r
	}
	return ctx
}

// titleState follows title casing through a word.
type titleState struct {
	seenCased  bool // The word has a cased character.
	justTitled bool // No character of class 0 followed the titlecased one.
}

// next returns the state after r and whether r maps to titlecase.
func (st titleState) next(r rune, wordStart bool) (titleState, bool) {
	if wordStart {
		st.seenCased = false
	}
	switch {
	case !st.seenCased && isCasedRune(r):
		st.seenCased, st.justTitled = true, true
		return st, true
	case st.justTitled && r == combiningDot:
		// Keeps the Lithuanian dot removal of the titled letter.
		return st, true
	}
	if CombiningClass(r) == 0 {
		st.justTitled = false
	}
	return st, false
}

// wordLookahead reports the word break properties whose preceding boundary
// depends on the character after them (WB6, WB7b, WB12).
func wordLookahead(prop int) bool {
	return isMidLetterQ(prop) || isMidNumQ(prop) || prop == prDoubleQuote
}

// titleWords reports which of runes map to titlecase when they follow text
// with context ctx, and returns the word context of ctx extended by runes.
// Word boundaries are found by running the word rules over the characters
// kept in ctx followed by runes.
func titleWords(ctx CasingPrefix, runes []rune) ([]bool, CasingPrefix) {
	titled := make([]bool, len(runes))
	if len(runes) == 0 {
		return titled, ctx
	}
	words := ctx.words[:ctx.nwords:ctx.nwords]
	split, joined := ctx.split, ctx.joined
	last := int(ctx.last)
	if len(words) == 0 && ctx.LastNonIgnorable != 0 {
		// A context made by hand: let the text end in LastNonIgnorable.
		words = []rune{ctx.LastNonIgnorable}
		split = titleState{seenCased: isCasedRune(ctx.LastNonIgnorable)}
		joined, last = split, 0
	}
	base := len(words)
	seq := make([]codePoint, 0, base+len(runes))
	for i, r := range append(words, runes...) {
		seq = append(seq, codePoint{r: r, off: i, n: 1})
	}

	p := newWordParser(seq)
	var st titleState
	for i, cp := range seq {
		boundary, absorbed := p.boundary(i)
		p.advance(i, absorbed)
		if i < base {
			if i == last {
				st = joined
				if boundary {
					st = split
				}
			}
			continue
		}
		before := st
		st, titled[i-base] = st.next(cp.r, boundary)
		switch {
		case absorbed:
			split, _ = split.next(cp.r, false)
			joined, _ = joined.next(cp.r, false)
		case wordLookahead(p.props[i]):
			split, _ = before.next(cp.r, true)
			joined, _ = before.next(cp.r, false)
		default:
			split, joined = st, st
		}
	}

	ctx.split, ctx.joined = split, joined
	ctx.nwords = 0
	if p.beforeLast >= 0 {
		ctx.words[ctx.nwords] = seq[p.beforeLast].r
		ctx.nwords++
	}
	ctx.last = ctx.nwords
	ctx.words[ctx.nwords] = seq[p.last].r
	ctx.nwords++
	if end := len(seq) - 1; end != p.last {
		ctx.words[ctx.nwords] = seq[end].r
		ctx.nwords++
	}
	return titled, ctx
}

// SuffixContext returns the casing context at the start of s, to be passed
// along with the chunk that precedes s.
func SuffixContext[U CodeUnit](c Codec[U], s []U) CasingSuffix {
	return SuffixContextExtend(c, s, CasingSuffix{})
}

// SuffixContextExtend is like [SuffixContext] for a chunk s that is itself
// followed by text with context ctx.
func SuffixContextExtend[U CodeUnit](c Codec[U], s []U, ctx CasingSuffix) CasingSuffix {
	return suffixOf(scanRunes(c, s), ctx)
}

// suffixOf computes the suffix context of runes followed by text with
// context next.
func suffixOf(runes []rune, next CasingSuffix) CasingSuffix {
	ctx := next
	firstFound, aboveFound := false, false
	for _, r := range runes {
		if !firstFound && !isCaseIgnorable(r) {
			ctx.FirstNonIgnorable = r
			firstFound = true
		}
		if !aboveFound {
			switch cc := CombiningClass(r); {
			case r == combiningDot:
				ctx.MoreAbove, ctx.BeforeDot = true, true
				aboveFound = true
			case cc == 230:
				ctx.MoreAbove, ctx.BeforeDot = true, false
				aboveFound = true
			case cc == 0:
				ctx.MoreAbove, ctx.BeforeDot = false, false
				aboveFound = true
			}
		}
		if firstFound && aboveFound {
			break
		}
	}
	return ctx
}

// scanRunes decodes s leniently, ill-formed units becoming U+FFFD.
func scanRunes[U CodeUnit](c Codec[U], s []U) []rune {
	cps := scan(c, s)
	runes := make([]rune, len(cps))
	for i, cp := range cps {
		runes[i] = cp.r
	}
	return runes
}

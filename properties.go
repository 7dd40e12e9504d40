package unistr

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/rangetable"
	"golang.org/x/text/width"
)

// Unicode properties used by the segmentation rules. Properties from UAX #29
// (grapheme/word) and UAX #14 (line break) share one value space.
//
// Note: Grapheme properties come first to minimize bits in state vectors.
const (
	prAny = iota // Default/any property (must be 0)

	// Grapheme Cluster Break properties (UAX #29)
	prPrepend              // Characters that don't break before following char
	prCR                   // Carriage return
	prLF                   // Line feed
	prControl              // Control characters
	prExtend               // Extending characters (combining marks)
	prRegionalIndicator    // Flag emoji components (paired)
	prSpacingMark          // Spacing combining marks
	prL                    // Hangul leading consonant (Jamo L)
	prV                    // Hangul vowel (Jamo V)
	prT                    // Hangul trailing consonant (Jamo T)
	prLV                   // Hangul syllable LV
	prLVT                  // Hangul syllable LVT
	prZWJ                  // Zero Width Joiner
	prExtendedPictographic // Emoji and pictographic characters

	// Word Break properties (UAX #29)
	prNewline      // Newline characters
	prWSegSpace    // Whitespace for WB3d
	prDoubleQuote  // Double quotation mark
	prSingleQuote  // Single quotation mark (apostrophe)
	prMidNumLet    // Mid-word/number (e.g., full stop)
	prNumeric      // Numeric digits
	prMidLetter    // Mid-letter (e.g., colon, middle dot)
	prMidNum       // Mid-number (e.g., comma in numbers)
	prExtendNumLet // Underscore and similar
	prALetter      // Alphabetic letters
	prFormat       // Format characters
	prHebrewLetter // Hebrew letters
	prKatakana     // Japanese Katakana

	// Line Break properties (UAX #14)
	prCM // Combining Mark
	prBA // Break After
	prBK // Mandatory Break
	prSP // Space
	prEX // Exclamation
	prQU // Quotation
	prAL // Ordinary Alphabetic
	prPR // Prefix Numeric
	prPO // Postfix Numeric
	prOP // Open Punctuation
	prCP // Close Parenthesis
	prIS // Infix Separator
	prHY // Hyphen
	prSY // Break Symbols
	prNU // Numeric
	prCL // Close Punctuation
	prNL // Next Line
	prGL // Non-breaking (Glue)
	prAI // Ambiguous (treated as AL)
	prBB // Break Before
	prHL // Hebrew Letter
	prSA // Complex Context (South Asian)
	prJL // Hangul L Jamo
	prJV // Hangul V Jamo
	prJT // Hangul T Jamo
	prNS // Nonstarter
	prZW // Zero Width Space
	prB2 // Break Opportunity Before and After
	prIN // Inseparable
	prWJ // Word Joiner
	prID // Ideographic
	prEB // Emoji Base
	prCJ // Conditional Japanese Starter
	prH2 // Hangul LV Syllable
	prH3 // Hangul LVT Syllable
	prSG // Surrogate (treat as AL)
	prCB // Contingent Break
	prRI // Regional Indicator
	prEM // Emoji Modifier
	prXX // Unknown (treat as AL)

	// East Asian Width properties (UAX #11)
	prN  // Neutral
	prNa // Narrow
	prA  // Ambiguous
	prW  // Wide
	prH  // Halfwidth
	prF  // Fullwidth
)

// Unicode General Categories.
const (
	gcCn = iota // Unassigned (must be 0)
	gcLu        // Uppercase Letter
	gcLl        // Lowercase Letter
	gcLt        // Titlecase Letter
	gcLm        // Modifier Letter
	gcLo        // Other Letter
	gcMn        // Nonspacing Mark
	gcMc        // Spacing Mark
	gcMe        // Enclosing Mark
	gcNd        // Decimal Number
	gcNl        // Letter Number
	gcNo        // Other Number
	gcPc        // Connector Punctuation
	gcPd        // Dash Punctuation
	gcPs        // Open Punctuation
	gcPe        // Close Punctuation
	gcPi        // Initial Punctuation (opening quotes like «)
	gcPf        // Final Punctuation (closing quotes like »)
	gcPo        // Other Punctuation
	gcSm        // Math Symbol
	gcSc        // Currency Symbol
	gcSk        // Modifier Symbol
	gcSo        // Other Symbol
	gcZs        // Space Separator
	gcZl        // Line Separator
	gcZp        // Paragraph Separator
	gcCc        // Control
	gcCf        // Format
	gcCs        // Surrogate
	gcCo        // Private Use
)

// Variation Selectors for emoji presentation control.
const (
	vs15 = 0xfe0e // Variation Selector-15: force text presentation (width 1)
	vs16 = 0xfe0f // Variation Selector-16: force emoji presentation (width 2)
)

// categoryTables maps the standard library's category tables to general
// categories, most frequent first.
var categoryTables = []struct {
	gc    int
	table *unicode.RangeTable
}{
	{gcLl, unicode.Ll}, {gcLu, unicode.Lu}, {gcLo, unicode.Lo}, {gcMn, unicode.Mn},
	{gcPo, unicode.Po}, {gcNd, unicode.Nd}, {gcZs, unicode.Zs}, {gcSo, unicode.So},
	{gcMc, unicode.Mc}, {gcLm, unicode.Lm}, {gcLt, unicode.Lt}, {gcMe, unicode.Me},
	{gcNl, unicode.Nl}, {gcNo, unicode.No}, {gcPc, unicode.Pc}, {gcPd, unicode.Pd},
	{gcPs, unicode.Ps}, {gcPe, unicode.Pe}, {gcPi, unicode.Pi}, {gcPf, unicode.Pf},
	{gcSm, unicode.Sm}, {gcSc, unicode.Sc}, {gcSk, unicode.Sk}, {gcZl, unicode.Zl},
	{gcZp, unicode.Zp}, {gcCc, unicode.Cc}, {gcCf, unicode.Cf}, {gcCs, unicode.Cs},
	{gcCo, unicode.Co},
}

// Script groups used by the word and line break classifiers.
var (
	// complexContext holds the scripts whose line breaking requires
	// dictionary support (Line_Break=SA).
	complexContext = rangetable.Merge(unicode.Thai, unicode.Lao, unicode.Myanmar,
		unicode.Khmer, unicode.Tai_Tham, unicode.Tai_Viet, unicode.Tai_Le, unicode.New_Tai_Lue)
	// ideographic holds scripts that are never part of ALetter words.
	ideographic = rangetable.Merge(unicode.Ideographic, unicode.Han, unicode.Hiragana)
)

// propertySearch performs a binary search on a sorted property table.
// Each entry is [startCodePoint, endCodePoint, property].
// Returns the matching entry, or zero-initialized entry if not found.
func propertySearch(dictionary [][3]int, r rune) (result [3]int, found bool) {
	// Run a binary search.
	from := 0
	to := len(dictionary)
	for to > from {
		middle := (from + to) / 2
		cpRange := dictionary[middle]
		if int(r) < cpRange[0] {
			to = middle
			continue
		}
		if int(r) > cpRange[1] {
			from = middle + 1
			continue
		}
		return cpRange, true
	}
	return
}

// property returns the property value of r listed in dictionary, and
// whether r is listed at all.
func property(dictionary [][3]int, r rune) (int, bool) {
	entry, ok := propertySearch(dictionary, r)
	return entry[2], ok
}

// generalCategory returns the General Category of r.
func generalCategory(r rune) int {
	if uint32(r) < 0x80 {
		return asciiCategory[r]
	}
	for _, c := range categoryTables {
		if unicode.Is(c.table, r) {
			return c.gc
		}
	}
	return gcCn
}

// isMark reports whether gc is one of the mark categories.
func isMark(gc int) bool {
	return gc == gcMn || gc == gcMc || gc == gcMe
}

// isLetter reports whether gc is one of the letter categories.
func isLetter(gc int) bool {
	return gc >= gcLu && gc <= gcLo
}

// isExtendedPictographic reports the Extended_Pictographic emoji property.
func isExtendedPictographic(r rune) bool {
	if r < 0xa9 {
		return false
	}
	_, ok := propertySearch(extendedPictographicCodePoints, r)
	return ok
}

// normProperties returns the x/text normalization properties of r in form f.
func normProperties(f norm.Form, r rune) norm.Properties {
	var b [utf8.UTFMax]byte
	n := utf8.EncodeRune(b[:], r)
	return f.Properties(b[:n])
}

// propertyGraphemes returns the Unicode grapheme cluster property value of the
// given code point while fast tracking ASCII characters.
func propertyGraphemes(r rune) int {
	if r >= 0x20 && r <= 0x7e {
		return prAny
	}
	if r == 0x0a {
		return prLF
	}
	if r == 0x0d {
		return prCR
	}
	if r >= 0 && r <= 0x1f || r == 0x7f {
		return prControl
	}
	if prop, ok := property(graphemeCodePoints, r); ok {
		return prop
	}
	if isHangulSyllable(r) {
		if (r-hangulSBase)%hangulTCount == 0 {
			return prLV
		}
		return prLVT
	}
	if isExtendedPictographic(r) {
		return prExtendedPictographic
	}
	if unicode.Is(unicode.Other_Grapheme_Extend, r) {
		return prExtend
	}
	if unicode.Is(unicode.Prepended_Concatenation_Mark, r) {
		return prPrepend
	}
	switch generalCategory(r) {
	case gcCc, gcCf, gcZl, gcZp, gcCs:
		return prControl
	case gcMn, gcMe:
		return prExtend
	case gcMc:
		return prSpacingMark
	}
	return prAny
}

// propertyWords returns the Unicode word break property value of the given
// code point.
func propertyWords(r rune) int {
	if uint32(r) < 0x80 {
		return asciiWordBreak[r]
	}
	if prop, ok := property(wordCodePoints, r); ok {
		return prop
	}
	gc := generalCategory(r)
	switch {
	case isMark(gc):
		return prExtend
	case gc == gcCf:
		return prFormat
	case gc == gcNd:
		return prNumeric
	case gc == gcPc:
		return prExtendNumLet
	case !isLetter(gc) && gc != gcNl:
		return prAny
	case unicode.Is(unicode.Katakana, r):
		return prKatakana
	case unicode.Is(unicode.Hebrew, r) && gc == gcLo:
		return prHebrewLetter
	case unicode.Is(ideographic, r), unicode.Is(complexContext, r):
		return prAny
	}
	return prALetter
}

// propertyLineBreak returns the Unicode line break property value and General
// Category (see constants above) of the given code point, while fast tracking
// ASCII.
func propertyLineBreak(r rune) (prop, gc int) {
	if uint32(r) < 0x80 {
		return asciiLineBreak[r], asciiCategory[r]
	}
	gc = generalCategory(r)
	if prop, ok := property(lineBreakCodePoints, r); ok {
		return prop, gc
	}
	if isHangulSyllable(r) {
		if (r-hangulSBase)%hangulTCount == 0 {
			return prH2, gc
		}
		return prH3, gc
	}
	ea := propertyEastAsianWidth(r)
	wide := ea == prW || ea == prF
	switch gc {
	case gcMn, gcMe, gcMc, gcCc, gcCf:
		return prCM, gc
	case gcZs:
		return prBA, gc
	case gcZl, gcZp:
		return prBK, gc
	case gcNd:
		if wide {
			return prID, gc
		}
		return prNU, gc
	case gcPs:
		return prOP, gc
	case gcPe:
		return prCL, gc
	case gcPi, gcPf:
		return prQU, gc
	case gcPd:
		return prBA, gc
	case gcSc:
		return prPR, gc
	case gcCs:
		return prSG, gc
	case gcCo:
		return prXX, gc
	case gcCn:
		if isExtendedPictographic(r) || isUnassignedIdeograph(r) {
			return prID, gc
		}
		return prXX, gc
	}
	if wide {
		return prID, gc
	}
	if isExtendedPictographic(r) && r >= 0x1f000 {
		return prID, gc
	}
	if isLetter(gc) || gc == gcNl {
		switch {
		case unicode.Is(unicode.Hebrew, r) && gc == gcLo:
			return prHL, gc
		case unicode.Is(complexContext, r):
			return prSA, gc
		case unicode.Is(ideographic, r):
			return prID, gc
		}
	}
	return prAL, gc
}

// isUnassignedIdeograph reports whether r lies in a block reserved for CJK
// ideographs. Such code points default to ID.
func isUnassignedIdeograph(r rune) bool {
	return r >= 0x3400 && r <= 0x4dbf ||
		r >= 0x4e00 && r <= 0x9fff ||
		r >= 0xf900 && r <= 0xfaff ||
		r >= 0x20000 && r <= 0x2fffd ||
		r >= 0x30000 && r <= 0x3fffd
}

// propertyEastAsianWidth returns the Unicode East Asian Width property value of
// the given code point while fast tracking ASCII characters.
func propertyEastAsianWidth(r rune) int {
	if r >= 0x20 && r <= 0x7e {
		return prNa
	}
	if r >= 0 && r <= 0x1f || r == 0x7f {
		return prN
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide:
		return prW
	case width.EastAsianFullwidth:
		return prF
	case width.EastAsianHalfwidth:
		return prH
	case width.EastAsianNarrow:
		return prNa
	case width.EastAsianAmbiguous:
		return prA
	}
	if isUnassignedIdeograph(r) {
		return prW
	}
	return prN
}

// CombiningClass returns the Canonical_Combining_Class of r.
func CombiningClass(r rune) uint8 {
	if r < 0x300 {
		return 0
	}
	return normProperties(norm.NFD, r).CCC()
}

// GeneralCategory is a Unicode General Category value.
type GeneralCategory int

var categoryNames = [...]string{
	gcCn: "Cn", gcLu: "Lu", gcLl: "Ll", gcLt: "Lt", gcLm: "Lm", gcLo: "Lo",
	gcMn: "Mn", gcMc: "Mc", gcMe: "Me", gcNd: "Nd", gcNl: "Nl", gcNo: "No",
	gcPc: "Pc", gcPd: "Pd", gcPs: "Ps", gcPe: "Pe", gcPi: "Pi", gcPf: "Pf",
	gcPo: "Po", gcSm: "Sm", gcSc: "Sc", gcSk: "Sk", gcSo: "So", gcZs: "Zs",
	gcZl: "Zl", gcZp: "Zp", gcCc: "Cc", gcCf: "Cf", gcCs: "Cs", gcCo: "Co",
}

// String returns the two-letter abbreviation of the category.
func (c GeneralCategory) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Cn"
	}
	return categoryNames[c]
}

// BreakProperty is the value of a segmentation property: Grapheme_Cluster_Break,
// Word_Break or Line_Break.
type BreakProperty int

var breakPropertyNames = map[BreakProperty]string{
	prAny: "Other", prPrepend: "Prepend", prCR: "CR", prLF: "LF", prControl: "Control",
	prExtend: "Extend", prRegionalIndicator: "Regional_Indicator", prSpacingMark: "SpacingMark",
	prL: "L", prV: "V", prT: "T", prLV: "LV", prLVT: "LVT", prZWJ: "ZWJ",
	prExtendedPictographic: "Extended_Pictographic", prNewline: "Newline", prWSegSpace: "WSegSpace", prDoubleQuote: "Double_Quote",
	prSingleQuote: "Single_Quote", prMidNumLet: "MidNumLet", prNumeric: "Numeric",
	prMidLetter: "MidLetter", prMidNum: "MidNum", prExtendNumLet: "ExtendNumLet",
	prALetter: "ALetter", prFormat: "Format", prHebrewLetter: "Hebrew_Letter", prKatakana: "Katakana",
	prCM: "CM", prBA: "BA", prBK: "BK", prSP: "SP", prEX: "EX", prQU: "QU", prAL: "AL",
	prPR: "PR", prPO: "PO", prOP: "OP", prCP: "CP", prIS: "IS", prHY: "HY", prSY: "SY",
	prNU: "NU", prCL: "CL", prNL: "NL", prGL: "GL", prAI: "AI", prBB: "BB", prHL: "HL",
	prSA: "SA", prJL: "JL", prJV: "JV", prJT: "JT", prNS: "NS", prZW: "ZW", prB2: "B2",
	prIN: "IN", prWJ: "WJ", prID: "ID", prEB: "EB", prCJ: "CJ", prH2: "H2", prH3: "H3",
	prSG: "SG", prCB: "CB", prRI: "RI", prEM: "EM", prXX: "XX",
}

// String returns the short property value alias, as used in the UCD.
func (p BreakProperty) String() string {
	if name, ok := breakPropertyNames[p]; ok {
		return name
	}
	return "Other"
}

// Properties bundles the character properties the engine consumes.
type Properties struct {
	Category       GeneralCategory
	CombiningClass uint8
	Decomposition  Decomposition
	GraphemeBreak  BreakProperty
	WordBreak      BreakProperty
	LineBreak      BreakProperty // Before resolution of AI, SA, CJ, SG and XX.
	EastAsianWidth width.Kind
	Case           CaseMapping // Unconditional mappings only.
}

// Lookup returns the properties of r.
func Lookup(r rune) Properties {
	lb, gc := propertyLineBreak(r)
	return Properties{
		Category:       GeneralCategory(gc),
		CombiningClass: CombiningClass(r),
		Decomposition:  DecompositionOf(r),
		GraphemeBreak:  BreakProperty(propertyGraphemes(r)),
		WordBreak:      BreakProperty(propertyWords(r)),
		LineBreak:      BreakProperty(lb),
		EastAsianWidth: width.LookupRune(r).Kind(),
		Case:           CaseMappingOf(r),
	}
}

package unistr

// Word boundary rules of UAX #29, Unicode version 15.0.0.
//
// Unlike the grapheme rules, several word rules look one non-ignorable
// character ahead (WB6, WB7b, WB12) or two behind (WB7, WB7c, WB11). The
// parser therefore works on the decoded code points of the whole input and
// keeps the indices of the last two characters not absorbed by WB4.

// wordIgnorable reports the properties absorbed by the preceding character (WB4).
func wordIgnorable(prop int) bool {
	return prop == prExtend || prop == prFormat || prop == prZWJ
}

// wordSeparator reports the properties that break on both sides (WB3a, WB3b).
func wordSeparator(prop int) bool {
	return prop == prCR || prop == prLF || prop == prNewline
}

func isAHLetter(prop int) bool {
	return prop == prALetter || prop == prHebrewLetter
}

func isMidLetterQ(prop int) bool {
	return prop == prMidLetter || prop == prMidNumLet || prop == prSingleQuote
}

func isMidNumQ(prop int) bool {
	return prop == prMidNum || prop == prMidNumLet || prop == prSingleQuote
}

// wordParser holds the decoded input and the WB4 bookkeeping.
type wordParser struct {
	cps        []codePoint
	props      []int
	last       int // Index of the last non-absorbed code point, -1 at sot.
	beforeLast int // Index of the one before, -1 if none.
	riCount    int // Regional indicators in the run ending at last.
}

func newWordParser(cps []codePoint) *wordParser {
	p := &wordParser{
		cps:        cps,
		props:      make([]int, len(cps)),
		last:       -1,
		beforeLast: -1,
	}
	for i, cp := range cps {
		if cp.bad {
			p.props[i] = prAny
			continue
		}
		p.props[i] = propertyWords(cp.r)
	}
	return p
}

// prop returns the property at index i, or -1 outside the input.
func (p *wordParser) prop(i int) int {
	if i < 0 || i >= len(p.props) {
		return -1
	}
	return p.props[i]
}

// lookahead returns the property of the first character after i that is not
// absorbed by WB4, or -1 at eot.
func (p *wordParser) lookahead(i int) int {
	for k := i + 1; k < len(p.props); k++ {
		if p.cps[k].bad || !wordIgnorable(p.props[k]) {
			return p.props[k]
		}
	}
	return -1
}

// boundary decides whether a word boundary precedes code point i. It also
// reports whether i is absorbed into the preceding character by WB4.
func (p *wordParser) boundary(i int) (boundary, absorbed bool) {
	if i == 0 {
		return true, false // WB1
	}
	cur, prev := p.props[i], p.props[i-1]
	switch {
	case p.cps[i].bad || p.cps[i-1].bad:
		return true, false
	case prev == prCR && cur == prLF:
		return false, false // WB3
	case wordSeparator(prev), wordSeparator(cur):
		return true, false // WB3a, WB3b
	case prev == prZWJ && isExtendedPictographic(p.cps[i].r):
		return false, false // WB3c
	case prev == prWSegSpace && cur == prWSegSpace:
		return false, false // WB3d
	case wordIgnorable(cur):
		return false, true // WB4
	}

	left, right := p.prop(p.last), cur
	left2, right2 := p.prop(p.beforeLast), p.lookahead(i)
	switch {
	// WB5
	case isAHLetter(left) && isAHLetter(right):
		return false, false
	// WB6
	case isAHLetter(left) && isMidLetterQ(right) && isAHLetter(right2):
		return false, false
	// WB7
	case isAHLetter(left2) && isMidLetterQ(left) && isAHLetter(right):
		return false, false
	// WB7a
	case left == prHebrewLetter && right == prSingleQuote:
		return false, false
	// WB7b
	case left == prHebrewLetter && right == prDoubleQuote && right2 == prHebrewLetter:
		return false, false
	// WB7c
	case left2 == prHebrewLetter && left == prDoubleQuote && right == prHebrewLetter:
		return false, false
	// WB8, WB9, WB10
	case (left == prNumeric || isAHLetter(left)) && (right == prNumeric || isAHLetter(right)):
		return false, false
	// WB11
	case left2 == prNumeric && isMidNumQ(left) && right == prNumeric:
		return false, false
	// WB12
	case left == prNumeric && isMidNumQ(right) && right2 == prNumeric:
		return false, false
	// WB13
	case left == prKatakana && right == prKatakana:
		return false, false
	// WB13a
	case right == prExtendNumLet &&
		(isAHLetter(left) || left == prNumeric || left == prKatakana || left == prExtendNumLet):
		return false, false
	// WB13b
	case left == prExtendNumLet && (isAHLetter(right) || right == prNumeric || right == prKatakana):
		return false, false
	// WB15, WB16
	case left == prRegionalIndicator && right == prRegionalIndicator && p.riCount%2 == 1:
		return false, false
	}
	return true, false // WB999
}

// advance records code point i as the new last character unless it was
// absorbed.
func (p *wordParser) advance(i int, absorbed bool) {
	if absorbed {
		return
	}
	p.beforeLast, p.last = p.last, i
	if p.props[i] == prRegionalIndicator && !p.cps[i].bad {
		p.riCount++
	} else {
		p.riCount = 0
	}
}

// WordBreaks determines the word boundaries of s. The result holds one flag
// per code unit; flag i is set if a boundary lies before unit i. Boundaries
// fall between words and also between the characters of spaces and
// punctuation runs, as UAX #29 prescribes. Ill-formed units are isolated.
func WordBreaks[U CodeUnit](c Codec[U], s []U) []bool {
	breaks := make([]bool, len(s))
	p := newWordParser(scan(c, s))
	for i, cp := range p.cps {
		boundary, absorbed := p.boundary(i)
		breaks[cp.off] = boundary
		p.advance(i, absorbed)
	}
	return breaks
}

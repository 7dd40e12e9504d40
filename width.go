package unistr

import (
	"github.com/mattn/go-runewidth"
)

// newWidthCondition returns the width measurement for the given treatment
// of East Asian ambiguous characters.
func newWidthCondition(eastAsian bool) *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = eastAsian
	return cond
}

var (
	narrowCondition    = newWidthCondition(false)
	eastAsianCondition = newWidthCondition(true)
)

// RuneWidth returns the number of monospace columns r occupies: 2 for wide
// and fullwidth characters, 0 for control characters and combining marks,
// 1 otherwise. Ambiguous characters count as 1.
func RuneWidth(r rune) int {
	return narrowCondition.RuneWidth(r)
}

// RuneWidthEastAsian is like [RuneWidth] but counts ambiguous characters as 2.
func RuneWidthEastAsian(r rune) int {
	return eastAsianCondition.RuneWidth(r)
}

// Width returns the monospace width of s. Each grapheme cluster is measured
// as a unit: its width is that of its first code point, widened by an emoji
// presentation selector or narrowed by a text presentation selector. A flag
// (a pair of regional indicators) counts 2 and an emoji ZWJ sequence counts
// as its first emoji. Ill-formed units count 1.
func Width[U CodeUnit](c Codec[U], s []U) int {
	breaks := GraphemeBreaks(c, s)
	total, cluster := 0, 0
	firstProp := prAny
	for i := 0; i < len(s); {
		r, n, ok := c.DecodeNext(s[i:])
		if breaks[i] {
			total += cluster
			firstProp = prAny
			cluster = 1
			if ok {
				firstProp = propertyGraphemes(r)
				cluster = runeWidth(r, firstProp)
			}
			i += n
			continue
		}
		switch {
		case firstProp == prExtendedPictographic && r == vs15:
			cluster = 1
		case firstProp == prExtendedPictographic && r == vs16:
			cluster = 2
		case firstProp == prRegionalIndicator, firstProp == prL, firstProp == prExtendedPictographic:
			// The first code point determines the width.
		default:
			cluster += runeWidth(r, propertyGraphemes(r))
		}
		i += n
	}
	return total + cluster
}

// runeWidth returns the width of r within a grapheme cluster, given its
// grapheme property.
func runeWidth(r rune, graphemeProperty int) int {
	switch graphemeProperty {
	case prControl, prCR, prLF, prExtend, prZWJ:
		return 0
	case prRegionalIndicator:
		return 2
	case prExtendedPictographic:
		if propertyEastAsianWidth(r) == prW {
			return 2
		}
		return 1
	case prV, prT:
		return 0 // Part of a Hangul syllable.
	}
	return RuneWidth(r)
}

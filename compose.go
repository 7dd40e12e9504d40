package unistr

import (
	"sync"
	"time"

	"golang.org/x/text/unicode/norm"
)

// compositionScanLimit bounds the code points scanned for primary composites.
// No primary composite lies above the supplementary multilingual plane.
const compositionScanLimit = 0x1ffff

// compositions holds the primary composites, keyed by their canonical pair.
// Composition exclusions never enter the table: every candidate must survive
// a round trip through x/text's NFC.
var compositions = sync.OnceValue(func() *pairTable {
	start := time.Now()
	type entry struct{ a, b, c rune }
	var entries []entry
	for r := rune(0xc0); r <= compositionScanLimit; r++ {
		if isHangulSyllable(r) || r >= 0xd800 && r < 0xe000 {
			continue
		}
		d := normProperties(norm.NFD, r).Decomposition()
		if d == nil {
			continue
		}
		full := []rune(string(d))
		if len(full) < 2 {
			continue // Singletons never recompose.
		}
		composite := string(r)
		if norm.NFC.String(composite) != composite {
			continue // Composition exclusion.
		}
		first := []rune(norm.NFC.String(string(full[:len(full)-1])))
		if len(first) != 1 {
			continue
		}
		second := full[len(full)-1]
		if norm.NFC.String(string(first[0])+string(second)) != composite {
			continue
		}
		entries = append(entries, entry{first[0], second, r})
	}
	table := newPairTable(len(entries))
	for _, e := range entries {
		table.insert(e.a, e.b, e.c)
	}
	tracer().Debugf("composition table: %d pairs in %d slots, built in %s",
		table.count, len(table.keys), time.Since(start))
	return table
})

// composePair returns the primary composite of a and b, if any.
func composePair(a, b rune) (rune, bool) {
	// Hangul L + V.
	if a >= hangulLBase && a < hangulLBase+hangulLCount &&
		b >= hangulVBase && b < hangulVBase+hangulVCount {
		return hangulSBase + ((a-hangulLBase)*hangulVCount+(b-hangulVBase))*hangulTCount, true
	}
	// Hangul LV + T.
	if isHangulSyllable(a) && (a-hangulSBase)%hangulTCount == 0 &&
		b > hangulTBase && b < hangulTBase+hangulTCount {
		return a + (b - hangulTBase), true
	}
	if a < 0x3c || b < 0x300 { // No second element lies below the combining marks.
		return 0, false
	}
	return compositions().lookup(a, b)
}

// Compose returns the canonical composition of runes, which should be
// canonically decomposed and ordered. The argument is not modified.
func Compose(runes []rune) []rune {
	return compose(append([]rune(nil), runes...))
}

// compose applies canonical composition to a decomposed, canonically ordered
// sequence. A character C combines with the last starter S unless some
// character B between them has ccc(B) == 0 or ccc(B) >= ccc(C). The
// sequence is rewritten in place; the composed prefix is returned.
func compose(s []rune) []rune {
	if len(s) < 2 {
		return s
	}
	starter := -1 // Output index of the last starter.
	var lastClass uint8
	w := 0
	for _, r := range s {
		cc := CombiningClass(r)
		if starter >= 0 {
			adjacent := w == starter+1
			if adjacent || lastClass != 0 && lastClass < cc {
				if c, ok := composePair(s[starter], r); ok {
					s[starter] = c
					continue
				}
			}
		}
		if cc == 0 {
			starter = w
		}
		lastClass = cc
		s[w] = r
		w++
	}
	return s[:w]
}

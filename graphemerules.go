package unistr

// The states of the grapheme cluster parser.
const (
	grAny = iota
	grCR
	grControlLF
	grL
	grLVV
	grLVTT
	grPrepend
	grExtendedPictographic
	grExtendedPictographicZWJ
	grRIOdd
	grRIEven
)

// The grapheme cluster parser's breaking instructions.
const (
	grNoBoundary = iota
	grBoundary
)

// grTransitions maps a parser state and the grapheme property of the next
// code point to the new state, the breaking instruction for the position
// before that code point, and the number of the deciding rule (GB9a is 91,
// GB999 is 9990). It returns negative values if no transition is listed.
//
// Lookups are tried in this order:
//
//  1. The specific state with the specific property.
//  2. The specific state with prAny, and grAny with the specific property.
//     If only one of them exists it is used. If both exist, the new state
//     comes from the second and the instruction from the one with the lower
//     rule number, the second winning ties.
//  3. Otherwise grAny and grBoundary (GB999).
//
// Unicode version 15.0.0.
func grTransitions(state, prop int) (newState, instruction, rule int) {
	switch uint64(state) | uint64(prop)<<32 {
	// GB5
	case grAny | prCR<<32:
		return grCR, grBoundary, 50
	case grAny | prLF<<32:
		return grControlLF, grBoundary, 50
	case grAny | prControl<<32:
		return grControlLF, grBoundary, 50

	// GB4
	case grCR | prAny<<32:
		return grAny, grBoundary, 40
	case grControlLF | prAny<<32:
		return grAny, grBoundary, 40

	// GB3
	case grCR | prLF<<32:
		return grControlLF, grNoBoundary, 30

	// GB6
	case grAny | prL<<32:
		return grL, grBoundary, 9990
	case grL | prL<<32:
		return grL, grNoBoundary, 60
	case grL | prV<<32:
		return grLVV, grNoBoundary, 60
	case grL | prLV<<32:
		return grLVV, grNoBoundary, 60
	case grL | prLVT<<32:
		return grLVTT, grNoBoundary, 60

	// GB7
	case grAny | prLV<<32:
		return grLVV, grBoundary, 9990
	case grAny | prV<<32:
		return grLVV, grBoundary, 9990
	case grLVV | prV<<32:
		return grLVV, grNoBoundary, 70
	case grLVV | prT<<32:
		return grLVTT, grNoBoundary, 70

	// GB8
	case grAny | prLVT<<32:
		return grLVTT, grBoundary, 9990
	case grAny | prT<<32:
		return grLVTT, grBoundary, 9990
	case grLVTT | prT<<32:
		return grLVTT, grNoBoundary, 80

	// GB9
	case grAny | prExtend<<32:
		return grAny, grNoBoundary, 90
	case grAny | prZWJ<<32:
		return grAny, grNoBoundary, 90

	// GB9a
	case grAny | prSpacingMark<<32:
		return grAny, grNoBoundary, 91

	// GB9b
	case grAny | prPrepend<<32:
		return grPrepend, grBoundary, 9990
	case grPrepend | prAny<<32:
		return grAny, grNoBoundary, 92

	// GB11
	case grAny | prExtendedPictographic<<32:
		return grExtendedPictographic, grBoundary, 9990
	case grExtendedPictographic | prExtend<<32:
		return grExtendedPictographic, grNoBoundary, 110
	case grExtendedPictographic | prZWJ<<32:
		return grExtendedPictographicZWJ, grNoBoundary, 110
	case grExtendedPictographicZWJ | prExtendedPictographic<<32:
		return grExtendedPictographic, grNoBoundary, 110

	// GB12 / GB13
	case grAny | prRegionalIndicator<<32:
		return grRIOdd, grBoundary, 9990
	case grRIOdd | prRegionalIndicator<<32:
		return grRIEven, grNoBoundary, 120
	case grRIEven | prRegionalIndicator<<32:
		return grRIOdd, grBoundary, 120
	default:
		return -1, -1, -1
	}
}

// transitionGraphemeState determines the new state of the grapheme cluster
// parser given the current state and the next code point. It also returns the
// code point's grapheme property (see [propertyGraphemes]) and whether a
// cluster boundary was detected.
func transitionGraphemeState(state int, r rune) (newState, prop int, boundary bool) {
	prop = propertyGraphemes(r)

	var instruction int
	newState, instruction, _, ok := lookupTransition(grTransitions, state, prop)
	if !ok {
		return grAny, prop, true // GB999
	}
	return newState, prop, instruction == grBoundary
}

// lookupTransition looks up state and prop in a transition table the way
// described at [grTransitions]. Both parsers number their catch-all state
// and property 0. ok is false if no entry applies.
func lookupTransition[I any](table func(state, prop int) (int, I, int), state, prop int) (newState int, instruction I, rule int, ok bool) {
	if newState, instruction, rule = table(state, prop); newState >= 0 {
		return newState, instruction, rule, true
	}
	byState, stateInstruction, stateRule := table(state, 0)
	byProp, propInstruction, propRule := table(0, prop)
	switch {
	case byState >= 0 && byProp >= 0:
		if stateRule < propRule {
			return byProp, stateInstruction, stateRule, true
		}
		return byProp, propInstruction, propRule, true
	case byState >= 0:
		return byState, stateInstruction, stateRule, true
	case byProp >= 0:
		return byProp, propInstruction, propRule, true
	}
	return 0, instruction, 0, false
}

// GraphemeBreaks determines the grapheme cluster boundaries of s. The result
// holds one flag per code unit; flag i is set if a cluster starts at unit i.
// Ill-formed units form clusters of their own.
func GraphemeBreaks[U CodeUnit](c Codec[U], s []U) []bool {
	breaks := make([]bool, len(s))
	state := grAny
	fresh := true // GB1, or the previous unit was ill-formed.
	for i := 0; i < len(s); {
		r, n, ok := c.DecodeNext(s[i:])
		if !ok {
			tracer().Debugf("grapheme breaks: ill-formed unit at offset %d", i)
			breaks[i] = true
			state, fresh = grAny, true
			i += n
			continue
		}
		var boundary bool
		state, _, boundary = transitionGraphemeState(state, r)
		breaks[i] = boundary || fresh
		fresh = false
		i += n
	}
	return breaks
}

// GraphemeCount returns the number of grapheme clusters in s.
func GraphemeCount[U CodeUnit](c Codec[U], s []U) int {
	count := 0
	for _, b := range GraphemeBreaks(c, s) {
		if b {
			count++
		}
	}
	return count
}

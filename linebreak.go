package unistr

// LineBreak tells whether a text may be broken into the next line before a
// given code unit. If the break is optional (LineCanBreak), you may choose to
// break or not based on your own criteria, for example, if the text has
// reached the available width.
type LineBreak uint8

// Line break values, as stored in the arrays returned by
// [PossibleLineBreaks] and [WidthLineBreaks].
const (
	LineDontBreak LineBreak = iota // You may not break the line here.
	LineCanBreak                   // You may or may not break the line here.
	LineMustBreak                  // You must break the line here.
	LineWrap                       // Break inserted to keep the line within its width.
)

func (b LineBreak) String() string {
	switch b {
	case LineDontBreak:
		return "dont"
	case LineCanBreak:
		return "can"
	case LineMustBreak:
		return "must"
	case LineWrap:
		return "wrap"
	}
	return "invalid"
}

// IsBreak reports whether the line is broken at this position.
func (b LineBreak) IsBreak() bool {
	return b == LineMustBreak || b == LineWrap
}

// PossibleLineBreaks determines the line break opportunities of s according
// to UAX #14. The result holds one value per code unit; value i describes
// the position before unit i. The first unit and the trailing units of a
// multi-unit code point are always LineDontBreak. A mandatory break after
// BK, CR, LF or NL is recorded at the unit following it; the mandatory break
// at the end of the text (LB3) has no position and is not recorded.
func PossibleLineBreaks[U CodeUnit](c Codec[U], s []U) []LineBreak {
	return lineBreaks(c, s, nil)
}

// lineBreaks runs the line break parser over s. overrides, keyed by code
// unit offset, replace the computed value.
func lineBreaks[U CodeUnit](c Codec[U], s []U, overrides map[int]LineBreak) []LineBreak {
	breaks := make([]LineBreak, len(s))
	cps := scan(c, s)
	state := -1
	for i, cp := range cps {
		next := rune(-1)
		if i+1 < len(cps) {
			next = cps[i+1].r
		}
		var lb LineBreak
		state, lb = transitionLineBreakState(state, cp.r, next)
		if i == 0 {
			lb = LineDontBreak // LB2
		}
		if o, ok := overrides[cp.off]; ok {
			lb = o
		}
		breaks[cp.off] = lb
	}
	return breaks
}

// HasTrailingLineBreak reports whether s ends with a mandatory line break
// (BK, CR, LF or NL).
func HasTrailingLineBreak[U CodeUnit](c Codec[U], s []U) bool {
	r, _, ok := c.DecodePrev(s)
	if !ok {
		return false
	}
	prop, _ := propertyLineBreak(r)
	return prop == prBK || prop == prCR || prop == prLF || prop == prNL
}

// WidthLineBreaks determines where to break s so that no line exceeds width
// columns, if possible. The first line starts at startColumn; the last line
// must leave endReserve columns free. overrides, keyed by code unit offset,
// replace the computed break value at that position before the fill runs.
//
// Lines are filled greedily: the text is cut into pieces at the possible
// breaks, and whenever a piece would push the running column past width,
// the break before that piece becomes LineWrap and the column restarts from
// the piece's own width. Mandatory breaks, and LineWrap values given as
// overrides, reset the column. Possible breaks that are not taken stay
// LineCanBreak. A single piece wider than width is never split.
//
// The second return value is the column at the end of the text, 0 if the
// text ends in a mandatory break.
func WidthLineBreaks[U CodeUnit](c Codec[U], s []U, width, startColumn, endReserve int, overrides map[int]LineBreak) ([]LineBreak, int) {
	return widthLineBreaks(c, s, width, startColumn, endReserve, overrides, false)
}

// LineBreakOptions configure [WidthLineBreaksOpt].
type LineBreakOptions struct {
	// EastAsian counts characters of ambiguous width as two columns, as
	// terminals using a CJK legacy encoding do.
	EastAsian bool
}

// WidthLineBreaksOpt is like [WidthLineBreaks] with explicit options.
func WidthLineBreaksOpt[U CodeUnit](c Codec[U], s []U, width, startColumn, endReserve int, overrides map[int]LineBreak, opts LineBreakOptions) ([]LineBreak, int) {
	return widthLineBreaks(c, s, width, startColumn, endReserve, overrides, opts.EastAsian)
}

func widthLineBreaks[U CodeUnit](c Codec[U], s []U, width, startColumn, endReserve int, overrides map[int]LineBreak, eastAsian bool) ([]LineBreak, int) {
	breaks := lineBreaks(c, s, overrides)
	measure := newWidthCondition(eastAsian)

	column := startColumn // Column at the start of the current piece.
	pieceWidth := 0       // Width of the current piece so far.
	lastBreak := -1       // Offset of the possible break starting the current piece.
	for _, cp := range scan(c, s) {
		switch breaks[cp.off] {
		case LineMustBreak, LineWrap:
			if lastBreak >= 0 && column+pieceWidth > width {
				breaks[lastBreak] = LineWrap
			}
			column, pieceWidth, lastBreak = 0, 0, -1
		case LineCanBreak:
			if lastBreak >= 0 && column+pieceWidth > width {
				breaks[lastBreak] = LineWrap
				column = 0
			}
			column += pieceWidth
			pieceWidth = 0
			lastBreak = cp.off
		}
		if !cp.bad {
			pieceWidth += measure.RuneWidth(cp.r)
		} else {
			pieceWidth++
		}
	}
	// A mandatory break at the end leaves an empty last line, which gets
	// the reserve.
	trailing := HasTrailingLineBreak(c, s)
	if trailing {
		endReserve = 0
	}
	if lastBreak >= 0 && column+pieceWidth+endReserve > width {
		breaks[lastBreak] = LineWrap
		column = 0
	}
	if trailing {
		return breaks, 0
	}
	return breaks, column + pieceWidth
}

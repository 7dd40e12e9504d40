package unistr

import "iter"

// Segment is one grapheme cluster of a text together with the boundary
// information at its start.
type Segment[U CodeUnit] struct {
	Units     []U       // The code units of the cluster, a sub-slice of the text.
	Offset    int       // Offset of the cluster in the text.
	Width     int       // Monospace width of the cluster.
	WordStart bool      // A word boundary precedes the cluster.
	LineBreak LineBreak // The line break value before the cluster.
}

// Segments returns the grapheme clusters of s in order, each annotated with
// the word boundary and line break before it and its display width. This is
// a combination of [GraphemeBreaks], [WordBreaks], [PossibleLineBreaks] and
// [Width], computing the break arrays once:
//
//	for seg := range unistr.Segments(unistr.UTF8, []byte("Hello, world!")) {
//		if seg.WordStart {
//			fmt.Print("|")
//		}
//		fmt.Print(string(seg.Units))
//	}
//
// Word and line boundaries that fall inside a cluster are not reported.
func Segments[U CodeUnit](c Codec[U], s []U) iter.Seq[Segment[U]] {
	return func(yield func(Segment[U]) bool) {
		graphemes := GraphemeBreaks(c, s)
		words := WordBreaks(c, s)
		lines := PossibleLineBreaks(c, s)
		start := 0
		for i := 1; i <= len(s); i++ {
			if i < len(s) && !graphemes[i] {
				continue
			}
			seg := Segment[U]{
				Units:     s[start:i],
				Offset:    start,
				Width:     Width(c, s[start:i]),
				WordStart: words[start],
				LineBreak: lines[start],
			}
			if !yield(seg) {
				return
			}
			start = i
		}
	}
}

// Split cuts s before every unit i for which breaks[i] is set. breaks
// is typically the result of [GraphemeBreaks] or [WordBreaks] for s.
func Split[U CodeUnit](s []U, breaks []bool) iter.Seq[[]U] {
	return func(yield func([]U) bool) {
		start := 0
		for i := 1; i <= len(s); i++ {
			if i < len(s) && (i >= len(breaks) || !breaks[i]) {
				continue
			}
			if !yield(s[start:i]) {
				return
			}
			start = i
		}
	}
}

// Graphemes returns the grapheme clusters of s.
func Graphemes[U CodeUnit](c Codec[U], s []U) iter.Seq[[]U] {
	return Split(s, GraphemeBreaks(c, s))
}

// Words returns the pieces of s between word boundaries. Spaces and
// punctuation form pieces of their own.
func Words[U CodeUnit](c Codec[U], s []U) iter.Seq[[]U] {
	return Split(s, WordBreaks(c, s))
}

// LineSegments returns the pieces of s between line break opportunities.
// The second value reports whether the line must be broken after the piece.
// The end of the text counts as a mandatory break.
func LineSegments[U CodeUnit](c Codec[U], s []U) iter.Seq2[[]U, bool] {
	return func(yield func([]U, bool) bool) {
		breaks := PossibleLineBreaks(c, s)
		start := 0
		for i := 1; i <= len(s); i++ {
			if i < len(s) && breaks[i] == LineDontBreak {
				continue
			}
			if !yield(s[start:i], i == len(s) || breaks[i] == LineMustBreak) {
				return
			}
			start = i
		}
	}
}

package unistr

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// breakMap lists the positions whose value is not LineDontBreak.
func breakMap(breaks []LineBreak) map[int]LineBreak {
	m := map[int]LineBreak{}
	for i, b := range breaks {
		if b != LineDontBreak {
			m[i] = b
		}
	}
	return m
}

func TestPossibleLineBreaks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistr")
	defer teardown()
	//
	tests := []struct {
		name string
		in   string
		want map[int]LineBreak
	}{
		{"space", "hello world", map[int]LineBreak{6: LineCanBreak}},
		{"newline", "a\nb", map[int]LineBreak{2: LineMustBreak}},
		{"crlf", "a\r\nb", map[int]LineBreak{3: LineMustBreak}},
		{"hyphen", "well-known", map[int]LineBreak{5: LineCanBreak}},
		{"number", "100.50", map[int]LineBreak{}},
		{"ideographs", "\u4e2d\u6587", map[int]LineBreak{1: LineCanBreak}},
		{"trailing newline", "ab\n", map[int]LineBreak{}},
		{"empty", "", map[int]LineBreak{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PossibleLineBreaks(UTF32, Encode(UTF32, []rune(tt.in)))
			assert.Equal(t, tt.want, breakMap(got))
		})
	}
}

// Cases in the format of the Unicode 15.0.0 LineBreakTest.txt data.
func TestLineBreakConformance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistr")
	defer teardown()
	//
	tests := []struct {
		in   string
		want map[int]LineBreak
	}{
		{"-#", map[int]LineBreak{1: LineCanBreak}},
		{",0", map[int]LineBreak{1: LineCanBreak}},
		{"a.2", map[int]LineBreak{2: LineCanBreak}},
		{"a\ufffcb", map[int]LineBreak{1: LineCanBreak, 2: LineCanBreak}},
		{"\ufffc\ufffc", map[int]LineBreak{1: LineCanBreak}},
		{"\u201c (a", map[int]LineBreak{}},
		{"a (b", map[int]LineBreak{2: LineCanBreak}},
		{"a \u201d", map[int]LineBreak{2: LineCanBreak}},
		{"\u05d0-\u05d0", map[int]LineBreak{}},
		{"\u05d0\u2010a", map[int]LineBreak{}},
		{"a-b", map[int]LineBreak{2: LineCanBreak}},
		{"$(12)", map[int]LineBreak{}},
		{"12.5%", map[int]LineBreak{}},
		{"a\u200bb", map[int]LineBreak{2: LineCanBreak}},
		{"a\u00a0b", map[int]LineBreak{}},
		{"\U0001f1e9\U0001f1ea\U0001f1eb", map[int]LineBreak{2: LineCanBreak}},
		{"\U0001f466\U0001f3fb", map[int]LineBreak{}},
		{"a\r\rb", map[int]LineBreak{2: LineMustBreak, 3: LineMustBreak}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%+q", tt.in), func(t *testing.T) {
			got := PossibleLineBreaks(UTF32, Encode(UTF32, []rune(tt.in)))
			assert.Equal(t, tt.want, breakMap(got))
		})
	}
	assert.Equal(t, "CB", Lookup(0xfffc).LineBreak.String())
}

func TestPossibleLineBreaksFirstUnit(t *testing.T) {
	for _, s := range []string{"\n", " a", "a", "\u4e2d"} {
		breaks := PossibleLineBreaks(UTF8, []byte(s))
		require.NotEmpty(t, breaks)
		assert.Equal(t, LineDontBreak, breaks[0], "%+q", s)
	}
	// Only the first unit of a code point carries a value.
	assert.Equal(t, map[int]LineBreak{3: LineCanBreak}, breakMap(PossibleLineBreaks(UTF8, []byte("\u4e2d\u6587"))))
}

func TestHasTrailingLineBreak(t *testing.T) {
	assert.True(t, HasTrailingLineBreak(UTF8, []byte("a\n")))
	assert.True(t, HasTrailingLineBreak(UTF8, []byte("a\r")))
	assert.True(t, HasTrailingLineBreak(UTF16, []uint16{'a', 0x2028}))
	assert.False(t, HasTrailingLineBreak(UTF8, []byte("a")))
	assert.False(t, HasTrailingLineBreak(UTF8, nil))
	assert.False(t, HasTrailingLineBreak(UTF8, []byte{'a', 0xff}))
}

func TestWidthLineBreaks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistr")
	defer teardown()
	//
	tests := []struct {
		name                     string
		in                       string
		width, start, endReserve int
		overrides                map[int]LineBreak
		want                     map[int]LineBreak
		column                   int
	}{
		{"fits", "aa bb", 10, 0, 0, nil, map[int]LineBreak{3: LineCanBreak}, 5},
		{"overflow", "hello world", 5, 0, 0, nil, map[int]LineBreak{6: LineWrap}, 5},
		{"fill", "aa bb cc", 5, 0, 0, nil, map[int]LineBreak{3: LineWrap, 6: LineCanBreak}, 5},
		{"exact", "aa bb", 5, 0, 0, nil, map[int]LineBreak{3: LineCanBreak}, 5},
		{"start column", "aa bb", 5, 2, 0, nil, map[int]LineBreak{3: LineWrap}, 2},
		{"end reserve", "aa bb", 5, 0, 1, nil, map[int]LineBreak{3: LineWrap}, 2},
		{"mandatory", "aa\nbb", 10, 0, 0, nil, map[int]LineBreak{3: LineMustBreak}, 2},
		{"too wide", "abcdefgh", 3, 0, 0, nil, map[int]LineBreak{}, 8},
		{"override break", "aabb", 3, 0, 0, map[int]LineBreak{2: LineCanBreak}, map[int]LineBreak{2: LineWrap}, 2},
		{"override wrap", "aa bb", 80, 0, 0, map[int]LineBreak{3: LineWrap}, map[int]LineBreak{3: LineWrap}, 2},
		{"override keep", "aa bb", 80, 0, 0, map[int]LineBreak{3: LineDontBreak}, map[int]LineBreak{}, 5},
		{"wide", "\u4e2d\u6587\u4e2d", 4, 0, 0, nil, map[int]LineBreak{1: LineCanBreak, 2: LineWrap}, 2},
		{"trailing newline", "abc\n", 80, 0, 0, nil, map[int]LineBreak{}, 0},
		{"trailing crlf", "abc\r\n", 80, 0, 0, nil, map[int]LineBreak{}, 0},
		{"trailing next line", "abc\u0085", 80, 0, 0, nil, map[int]LineBreak{}, 0},
		{"trailing line separator", "abc\u2028", 80, 0, 0, nil, map[int]LineBreak{}, 0},
		{"trailing newline after wrap", "aaaa bbbb\n", 6, 0, 0, nil, map[int]LineBreak{5: LineWrap}, 0},
		{"trailing newline without reserve", "aa bb\n", 5, 0, 2, nil, map[int]LineBreak{3: LineCanBreak}, 0},
		{"trailing newline from start column", "\n", 80, 7, 3, nil, map[int]LineBreak{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breaks, column := WidthLineBreaks(UTF32, Encode(UTF32, []rune(tt.in)), tt.width, tt.start, tt.endReserve, tt.overrides)
			assert.Equal(t, tt.want, breakMap(breaks))
			assert.Equal(t, tt.column, column)
		})
	}
}

func TestWidthLineBreaksEastAsian(t *testing.T) {
	s := Encode(UTF32, []rune("\u03a9\u03a9 \u03a9\u03a9"))
	breaks, column := WidthLineBreaksOpt(UTF32, s, 5, 0, 0, nil, LineBreakOptions{})
	assert.Equal(t, LineCanBreak, breaks[3])
	assert.Equal(t, 5, column)

	breaks, column = WidthLineBreaksOpt(UTF32, s, 5, 0, 0, nil, LineBreakOptions{EastAsian: true})
	assert.Equal(t, LineWrap, breaks[3])
	assert.Equal(t, 4, column)
}

func TestLineBreakValues(t *testing.T) {
	assert.Equal(t, "can", LineCanBreak.String())
	assert.Equal(t, "invalid", LineBreak(9).String())
	assert.True(t, LineWrap.IsBreak())
	assert.True(t, LineMustBreak.IsBreak())
	assert.False(t, LineCanBreak.IsBreak())
}

func TestWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "abc", 3},
		{"tab", "a\tb", 2},
		{"ideographs", "\u4e2d\u6587", 4},
		{"combining", "e\u0301", 1},
		{"flag", "\U0001f1e9\U0001f1ea", 2},
		{"emoji", "\U0001f600", 2},
		{"text presentation", "\U0001f600\ufe0e", 1},
		{"emoji presentation", "\u2764\ufe0f", 2},
		{"heart", "\u2764", 1},
		{"zwj sequence", "\U0001f468\u200d\U0001f469", 2},
		{"hangul jamo", "\u1100\u1161\u11a8", 2},
		{"hangul syllable", "\ud55c\uad6d", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Width(UTF8, []byte(tt.in)))
			assert.Equal(t, tt.want, Width(UTF32, Encode(UTF32, []rune(tt.in))))
		})
	}
	assert.Equal(t, 2, Width(UTF8, []byte{'a', 0xff}))
}

func TestRuneWidth(t *testing.T) {
	assert.Equal(t, 1, RuneWidth('a'))
	assert.Equal(t, 2, RuneWidth(0x4e2d))
	assert.Equal(t, 0, RuneWidth(0x301))
	assert.Equal(t, 1, RuneWidth(0x3a9))
	assert.Equal(t, 2, RuneWidthEastAsian(0x3a9))
	assert.Equal(t, 1, RuneWidthEastAsian('a'))
}

func TestSegments(t *testing.T) {
	var got []Segment[uint8]
	for seg := range Segments(UTF8, []byte("Hi \U0001f600")) {
		got = append(got, seg)
	}
	require.Len(t, got, 4)
	assert.Equal(t, "H", string(got[0].Units))
	assert.True(t, got[0].WordStart)
	assert.False(t, got[1].WordStart)
	assert.Equal(t, 2, got[2].Offset)
	assert.Equal(t, 3, got[3].Offset)
	assert.Equal(t, 2, got[3].Width)
	assert.Equal(t, LineCanBreak, got[3].LineBreak)
	assert.Equal(t, LineDontBreak, got[2].LineBreak)
}

func TestSplit(t *testing.T) {
	s := []byte("abcd")
	var got []string
	for piece := range Split(s, []bool{true, false, true, false}) {
		got = append(got, string(piece))
	}
	assert.Equal(t, []string{"ab", "cd"}, got)

	// Stopping early.
	for piece := range Split(s, []bool{true, true, true, true}) {
		assert.Equal(t, "a", string(piece))
		break
	}
}

func TestLineSegments(t *testing.T) {
	type piece struct {
		text      string
		mustBreak bool
	}
	var got []piece
	for units, mustBreak := range LineSegments(UTF8, []byte("hello world\nfoo")) {
		got = append(got, piece{string(units), mustBreak})
	}
	assert.Equal(t, []piece{{"hello ", false}, {"world\n", true}, {"foo", true}}, got)
}

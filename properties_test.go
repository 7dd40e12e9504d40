package unistr

import (
	"testing"
	"unicode/utf16"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/width"
)

// --- Test Suite Preparation ------------------------------------------------

type PropertyTestEnviron struct {
	suite.Suite
	corpus []string
}

// listen for 'go test' command --> run test methods
func TestPropertyFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistr")
	defer teardown()
	suite.Run(t, new(PropertyTestEnviron))
}

// run once, before test suite methods
func (env *PropertyTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("unistr").SetTraceLevel(tracing.LevelError)
	env.corpus = append([]string{
		"a\r\ne\u0301\u0301 \U0001f1e9\U0001f1ea\U0001f1eb x",
		"\U0001f468\u200d\U0001f469\u200d\U0001f467 \u2764\ufe0f!",
		"\u0915\u094d\u0937 \u0e01\u0e32\u0e23",
		"(\"quoted\") \u00abguillemets\u00bb 1,000.50 $5 -3",
		"\u05e9\u05dc\u05d5\u05dd \"\u05d0\u05d1\" \u05d9'",
		"\u3053\u3093\u306b\u3061\u306f\u3001\u4e16\u754c\u3002 \u30ab\u30bf\u30ab\u30ca",
		"\u0301\u0301 leading marks next",
	}, normalizationSamples...)
}

// run once, after test suite methods
func (env *PropertyTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
	tracing.Select("unistr").SetTraceLevel(tracing.LevelInfo)
}

// --- Tests -----------------------------------------------------------------

func (env *PropertyTestEnviron) TestLookup() {
	p := Lookup('a')
	env.Equal("Ll", p.Category.String())
	env.Equal("ALetter", p.WordBreak.String())
	env.Equal("AL", p.LineBreak.String())
	env.Equal("Other", p.GraphemeBreak.String())
	env.Equal(width.EastAsianNarrow, p.EastAsianWidth)

	p = Lookup(0x301)
	env.Equal(uint8(230), p.CombiningClass)
	env.Equal("Mn", p.Category.String())
	env.Equal("Extend", p.GraphemeBreak.String())
	env.Equal("Extend", p.WordBreak.String())
	env.Equal("CM", p.LineBreak.String())

	p = Lookup(0xac00)
	env.Equal("LV", p.GraphemeBreak.String())
	env.Equal("H2", p.LineBreak.String())
	env.Equal(DecompCanonical, p.Decomposition.Kind)

	p = Lookup(0x4e2d)
	env.Equal("ID", p.LineBreak.String())
	env.Equal(width.EastAsianWide, p.EastAsianWidth)

	p = Lookup('\n')
	env.Equal("LF", p.GraphemeBreak.String())
	env.Equal("LF", p.LineBreak.String())
	env.Equal("Cc", p.Category.String())

	env.Equal("BK", Lookup(0x2028).LineBreak.String())
	env.Equal(uint8(0), CombiningClass('a'))
	env.Equal(uint8(220), CombiningClass(0x323))
}

// Every code unit gets a value; boundaries only fall on the first unit of a
// code point.
func (env *PropertyTestEnviron) TestBoundaryTotality() {
	for _, s := range env.corpus {
		b := []byte(s)
		u := utf16.Encode([]rune(s))
		for name, breaks := range map[string][]bool{
			"grapheme utf8":  GraphemeBreaks(UTF8, b),
			"word utf8":      WordBreaks(UTF8, b),
			"grapheme utf16": GraphemeBreaks(UTF16, u),
			"word utf16":     WordBreaks(UTF16, u),
		} {
			n := len(b)
			if name[len(name)-2:] == "16" {
				n = len(u)
			}
			env.Require().Len(breaks, n, "%s %+q", name, s)
			if n > 0 {
				env.True(breaks[0], "%s %+q: no boundary at 0", name, s)
			}
		}
		for i, c := range b {
			if c&0xc0 == 0x80 {
				env.False(GraphemeBreaks(UTF8, b)[i], "%+q: grapheme boundary inside a code point at %d", s, i)
				env.False(WordBreaks(UTF8, b)[i], "%+q: word boundary inside a code point at %d", s, i)
				env.Equal(LineDontBreak, PossibleLineBreaks(UTF8, b)[i], "%+q: line break inside a code point at %d", s, i)
			}
		}
		lines := PossibleLineBreaks(UTF32, Encode(UTF32, []rune(s)))
		if len(lines) > 0 {
			env.Equal(LineDontBreak, lines[0], "%+q", s)
		}
	}
}

// A word boundary never splits an extended grapheme cluster.
func (env *PropertyTestEnviron) TestWordBoundariesAreGraphemeBoundaries() {
	for _, s := range env.corpus {
		runes := Encode(UTF32, []rune(s))
		graphemes := GraphemeBreaks(UTF32, runes)
		for i, b := range WordBreaks(UTF32, runes) {
			if b {
				env.True(graphemes[i], "%+q: word boundary at %d is inside a cluster", s, i)
			}
		}
	}
}

func (env *PropertyTestEnviron) TestCodeUnitsAgree() {
	for _, s := range env.corpus {
		runes := []rune(s)
		env.Equal(GraphemeCount(UTF32, Encode(UTF32, runes)), GraphemeCount(UTF8, []byte(s)), "%+q", s)
		env.Equal(GraphemeCount(UTF32, Encode(UTF32, runes)), GraphemeCount(UTF16, utf16.Encode(runes)), "%+q", s)
		env.Equal(Width(UTF32, Encode(UTF32, runes)), Width(UTF8, []byte(s)), "%+q", s)
	}
}

func (env *PropertyTestEnviron) TestPropertyNames() {
	env.Equal("Cn", GeneralCategory(-1).String())
	env.Equal("Other", BreakProperty(-1).String())
	env.Equal("Regional_Indicator", BreakProperty(prRegionalIndicator).String())
	env.Equal("Hebrew_Letter", Lookup(0x05d0).WordBreak.String())
	env.Equal("HL", Lookup(0x05d0).LineBreak.String())
}

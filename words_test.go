package unistr

import (
	"testing"
	"unicode/utf16"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// boundaryOffsets lists the offsets at which breaks is set.
func boundaryOffsets(breaks []bool) []int {
	offsets := []int{}
	for i, b := range breaks {
		if b {
			offsets = append(offsets, i)
		}
	}
	return offsets
}

func TestWordBreaks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistr")
	defer teardown()
	//
	tests := []struct {
		name string
		in   string
		want []int
	}{
		{"mixed scripts", "Gr\u00fc\u00df Gott. \u0417\u0434\u0440\u0430\u0432\u0441\u0442\u0432\u0443\u0439\u0442\u0435!", []int{0, 4, 5, 9, 10, 11, 23}},
		{"punctuation", "Hello, world!", []int{0, 5, 6, 7, 12}},
		{"apostrophe", "can't stop", []int{0, 5, 6}},
		{"decimal", "3.14 km", []int{0, 4, 5}},
		{"abbreviation", "e.g.", []int{0, 3}},
		{"spaces", "a  b", []int{0, 1, 3}},
		{"crlf", "a\r\nb", []int{0, 1, 3}},
		{"extend", "e\u0301x y", []int{0, 3, 4}},
		{"katakana", "\u30ab\u30bf\u30ab\u30ca", []int{0}},
		{"underscore", "foo_bar1", []int{0}},
		{"flags", "\U0001f1e9\U0001f1ea\U0001f1eb\U0001f1f7", []int{0, 2}},
		{"emoji zwj", "\U0001f468\u200d\U0001f469", []int{0}},
		{"empty", "", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordBreaks(UTF32, Encode(UTF32, []rune(tt.in)))
			assert.Equal(t, tt.want, boundaryOffsets(got))
		})
	}
}

func TestWordBreaksCodeUnits(t *testing.T) {
	// Boundaries fall on the first unit of a code point only.
	s := []byte("\u00fcber alles")
	assert.Equal(t, []int{0, 5, 6}, boundaryOffsets(WordBreaks(UTF8, s)))

	u := utf16.Encode([]rune("a \U0001f600"))
	assert.Equal(t, []int{0, 1, 2}, boundaryOffsets(WordBreaks(UTF16, u)))
}

func TestWordBreaksMalformed(t *testing.T) {
	s := []byte{'a', 'b', 0xff, 'c', 'd'}
	assert.Equal(t, []int{0, 2, 3}, boundaryOffsets(WordBreaks(UTF8, s)))
}

func TestWordsIterator(t *testing.T) {
	var got []string
	for w := range Words(UTF8, []byte("Hello, world!")) {
		got = append(got, string(w))
	}
	assert.Equal(t, []string{"Hello", ",", " ", "world", "!"}, got)
}

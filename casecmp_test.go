package unistr

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseCmp(t *testing.T) {
	cmp, err := CaseCmp(UTF8, []byte("Stra\u00dfe"), []byte("STRASSE"), "", FoldDefault, NFD)
	require.NoError(t, err)
	assert.Zero(t, cmp)

	cmp, err = CaseCmp(UTF8, []byte("apple"), []byte("Banana"), "", FoldDefault, NFC)
	require.NoError(t, err)
	assert.Negative(t, cmp)

	// Simple folding keeps the sharp s.
	cmp, err = CaseCmp(UTF8, []byte("Stra\u00dfe"), []byte("STRASSE"), "", FoldSimple, NFC)
	require.NoError(t, err)
	assert.NotZero(t, cmp)

	a := utf16.Encode([]rune("\u00c5ngstr\u00f6m"))
	b := utf16.Encode([]rune("A\u030aNGSTRO\u0308M"))
	cmp, err = CaseCmp(UTF16, a, b, "", FoldDefault, NFC)
	require.NoError(t, err)
	assert.Zero(t, cmp)

	// Canonically different without normalization.
	cmp, err = CaseCmp(UTF16, a, b, "", FoldFull, NoForm)
	require.NoError(t, err)
	assert.NotZero(t, cmp)

	_, err = CaseCmp(UTF8, []byte{0xff}, []byte("a"), "", FoldDefault, NFC)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestCaseCmpTurkic(t *testing.T) {
	cmp, err := CaseCmp(UTF8, []byte("I"), []byte("\u0131"), "tr", FoldDefault, NFC)
	require.NoError(t, err)
	assert.Zero(t, cmp)

	cmp, err = CaseCmp(UTF8, []byte("I"), []byte("i"), "tr", FoldDefault, NFC)
	require.NoError(t, err)
	assert.NotZero(t, cmp)

	cmp, err = CaseCmp(UTF8, []byte("I"), []byte("i"), "", FoldDefault, NFC)
	require.NoError(t, err)
	assert.Zero(t, cmp)
}

func TestCaseCmpTotal(t *testing.T) {
	cmp, err := CaseCmpTotal(UTF8, []byte("a"), []byte("A"), "", FoldDefault, NFC)
	require.NoError(t, err)
	assert.Positive(t, cmp)

	cmp, err = CaseCmpTotal(UTF8, []byte("abc"), []byte("abc"), "", FoldDefault, NFC)
	require.NoError(t, err)
	assert.Zero(t, cmp)

	cmp, err = CaseCmpTotal(UTF8, []byte("a"), []byte("B"), "", FoldDefault, NFC)
	require.NoError(t, err)
	assert.Negative(t, cmp)
}

func TestNormalizedEqualSymmetric(t *testing.T) {
	samples := []string{"Stra\u00dfe", "STRASSE", "\u00c5", "A\u030a", "\u212b", "\u03a3\u03c2", "\u03c3\u03c3", "abc", ""}
	for _, a := range samples {
		for _, b := range samples {
			ab, err := NormalizedEqual(UTF8, []byte(a), []byte(b), "", FoldDefault, NFC)
			require.NoError(t, err)
			ba, err := NormalizedEqual(UTF8, []byte(b), []byte(a), "", FoldDefault, NFC)
			require.NoError(t, err)
			assert.Equal(t, ab, ba, "%+q %+q", a, b)
		}
	}
	eq, err := NormalizedEqual(UTF8, []byte("\u00c5"), []byte("a\u030a"), "", FoldDefault, NFD)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestEqualFold(t *testing.T) {
	assert.True(t, EqualFold("Stra\u00dfe", "STRASSE"))
	assert.True(t, EqualFold("\u00c5", "\u00e5"))
	assert.False(t, EqualFold("a", "b"))
	assert.False(t, EqualFold("a\xff", "a\xff"))
}

func TestCasePredicates(t *testing.T) {
	tests := []struct {
		in                                 string
		cased, upper, lower, title, folded bool
	}{
		{"abc", true, false, true, false, true},
		{"ABC", true, true, false, false, false},
		{"Hello World", true, false, false, true, false},
		{"123 !", false, true, true, true, true},
		{"", false, true, true, true, true},
		{"stra\u00dfe", true, false, true, false, false},
		{"\u00e5", true, false, true, false, true},
	}
	for _, tt := range tests {
		s := []byte(tt.in)
		cased, err := IsCased(UTF8, s, "")
		require.NoError(t, err)
		assert.Equal(t, tt.cased, cased, "IsCased(%q)", tt.in)
		upper, _ := IsUppercase(UTF8, s, "")
		assert.Equal(t, tt.upper, upper, "IsUppercase(%q)", tt.in)
		lower, _ := IsLowercase(UTF8, s, "")
		assert.Equal(t, tt.lower, lower, "IsLowercase(%q)", tt.in)
		title, _ := IsTitlecase(UTF8, s, "")
		assert.Equal(t, tt.title, title, "IsTitlecase(%q)", tt.in)
		folded, _ := IsCasefolded(UTF8, s, "")
		assert.Equal(t, tt.folded, folded, "IsCasefolded(%q)", tt.in)
	}
	_, err := IsCased(UTF8, []byte{0xff}, "")
	assert.ErrorIs(t, err, ErrMalformed)
}

// Text without case is left alone by folding.
func TestUncasedFoldsToItself(t *testing.T) {
	for _, s := range []string{"123 !", "\u4e2d\u6587", "\u05e9\u05dc\u05d5\u05dd", ""} {
		cased, err := IsCased(UTF8, []byte(s), "")
		require.NoError(t, err)
		require.False(t, cased, "%+q", s)
		out, err := CaseFold(UTF8, []byte(s), "", FoldDefault, NFC, nil)
		require.NoError(t, err)
		assert.Equal(t, s, string(out.Units))
	}
}

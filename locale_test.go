package unistr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		name string
		want Locale
	}{
		{"", Locale{Charset: "ASCII"}},
		{"C", Locale{Charset: "ASCII"}},
		{"POSIX", Locale{Charset: "ASCII"}},
		{"de_DE", Locale{Charset: "UTF-8", Language: "de"}},
		{"en_US.UTF-8", Locale{Charset: "UTF-8", Language: "en"}},
		{"tr_TR.ISO-8859-9@euro", Locale{Charset: "ISO-8859-9", Language: "tr"}},
		{"LT-lt", Locale{Charset: "UTF-8", Language: "lt"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLocale(tt.name), "%q", tt.name)
	}
	assert.NotEmpty(t, CurrentLocale().Charset)
}

func TestEastAsian(t *testing.T) {
	assert.True(t, IsCJKEncoding("EUC-JP"))
	assert.True(t, IsCJKEncoding("euc-kr"))
	assert.True(t, IsCJKEncoding("Shift_JIS"))
	assert.False(t, IsCJKEncoding("UTF-8"))
	assert.False(t, IsCJKEncoding("ISO-8859-1"))
	assert.False(t, IsCJKEncoding("no-such-charset"))

	assert.True(t, ParseLocale("ja_JP.EUC-JP").EastAsian())
	assert.False(t, ParseLocale("ja_JP.UTF-8").EastAsian())
}

func TestConvertFrom(t *testing.T) {
	out, err := ConvertFrom("ISO-8859-9", []byte{'a', 0xdd, 0xfd})
	require.NoError(t, err)
	assert.Equal(t, "a\u0130\u0131", string(out))

	out, err = ConvertFrom("utf8", []byte("h\u00e9"))
	require.NoError(t, err)
	assert.Equal(t, "h\u00e9", string(out))

	_, err = ConvertFrom("UTF-8", []byte{'a', 0xff})
	assert.ErrorIs(t, err, ErrInvalidSequence)
	var ce *ConversionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 1, ce.Offset)
	assert.Equal(t, "UTF-8", ce.Charset)

	_, err = ConvertFrom("ASCII", []byte{'a', 'b', 0xc3, 0xa9})
	require.True(t, errors.As(err, &ce))
	assert.ErrorIs(t, err, ErrInvalidSequence)
	assert.Equal(t, 2, ce.Offset)

	_, err = ConvertFrom("x-no-such-charset", []byte("a"))
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
	assert.Contains(t, err.Error(), "x-no-such-charset")
}

func TestConvertTo(t *testing.T) {
	out, err := ConvertTo("ISO-8859-9", []byte("a\u0130\u0131"))
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 0xdd, 0xfd}, out)

	_, err = ConvertTo("ISO-8859-1", []byte("\u4e2d"))
	assert.ErrorIs(t, err, ErrInvalidSequence)

	_, err = ConvertTo("US-ASCII", []byte("caf\u00e9"))
	var ce *ConversionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 3, ce.Offset)

	_, err = ConvertTo("UTF-8", []byte{0xff})
	assert.ErrorIs(t, err, ErrInvalidSequence)

	_, err = ConvertTo("x-no-such-charset", []byte("a"))
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
}

func TestLocaleCaseCmp(t *testing.T) {
	turkish := Locale{Charset: "ISO-8859-9", Language: "tr"}
	cmp, err := LocaleCaseCmp(turkish, []byte{0xdd}, []byte("i"), NFC)
	require.NoError(t, err)
	assert.Zero(t, cmp)

	cmp, err = LocaleCaseCmp(turkish, []byte("I"), []byte{0xfd}, NFC)
	require.NoError(t, err)
	assert.Zero(t, cmp)

	latin := Locale{Charset: "ISO-8859-1"}
	cmp, err = LocaleCaseCmp(latin, []byte{0xc9, 't', 'e'}, []byte{0xe9, 'T', 'E'}, NFD)
	require.NoError(t, err)
	assert.Zero(t, cmp)

	_, err = LocaleCaseCmp(Locale{Charset: "ASCII"}, []byte{0xe9}, []byte("e"), NFC)
	assert.ErrorIs(t, err, ErrInvalidSequence)
}

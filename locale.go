package unistr

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Locale is the part of a POSIX locale the engine consults: the character
// set of byte strings and the language selecting case mapping rules.
type Locale struct {
	Charset  string // E.g. "UTF-8" or "ISO-8859-9".
	Language string // ISO 639 code, e.g. "tr". Empty for the C locale.
}

// ParseLocale splits a locale name of the form
// language[_territory][.charset][@modifier]. "C", "POSIX" and the empty
// name denote ASCII without a language. A name without charset is assumed
// to use UTF-8.
func ParseLocale(name string) Locale {
	if name == "" || name == "C" || name == "POSIX" {
		return Locale{Charset: "ASCII"}
	}
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	loc := Locale{Charset: "UTF-8"}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		loc.Charset = name[i+1:]
		name = name[:i]
	}
	if i := strings.IndexAny(name, "_-"); i >= 0 {
		name = name[:i]
	}
	loc.Language = strings.ToLower(name)
	return loc
}

// currentLocale is read from the environment once per process.
var currentLocale = sync.OnceValue(func() Locale {
	for _, v := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if name := os.Getenv(v); name != "" {
			loc := ParseLocale(name)
			tracer().Debugf("locale from %s=%q: %+v", v, name, loc)
			return loc
		}
	}
	return ParseLocale("")
})

// CurrentLocale returns the locale named by the first non-empty variable
// among LC_ALL, LC_CTYPE and LANG. The environment is consulted only once.
func CurrentLocale() Locale {
	return currentLocale()
}

// EastAsian reports whether text in this locale's character set is
// conventionally displayed with ambiguous characters at double width.
func (l Locale) EastAsian() bool {
	return IsCJKEncoding(l.Charset)
}

// cjkEncodings are the legacy multibyte encodings of Chinese, Japanese and
// Korean, by canonical upper case name.
var cjkEncodings = map[string]bool{
	"EUC-JP": true, "SHIFT_JIS": true, "WINDOWS-31J": true, "CP932": true,
	"GB2312": true, "GBK": true, "GB18030": true, "EUC-TW": true,
	"BIG5": true, "BIG5-HKSCS": true, "EUC-KR": true, "CP949": true, "JOHAB": true,
}

// IsCJKEncoding reports whether charset is a legacy CJK encoding.
func IsCJKEncoding(charset string) bool {
	name := strings.ToUpper(charset)
	if cjkEncodings[name] {
		return true
	}
	if enc, err := ianaindex.IANA.Encoding(charset); err == nil && enc != nil {
		if canonical, err := ianaindex.IANA.Name(enc); err == nil {
			return cjkEncodings[strings.ToUpper(canonical)]
		}
	}
	return false
}

func isUTF8Charset(name string) bool {
	switch strings.ToUpper(name) {
	case "UTF-8", "UTF8":
		return true
	}
	return false
}

func isASCIICharset(name string) bool {
	switch strings.ToUpper(name) {
	case "ASCII", "US-ASCII", "ANSI_X3.4-1968", "646":
		return true
	}
	return false
}

// lookupCharset resolves a character set name through the IANA index.
func lookupCharset(charset string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		tracer().Infof("charset %q not supported: %v", charset, err)
		return nil, &ConversionError{Charset: charset, Offset: -1, Err: ErrUnsupportedEncoding}
	}
	return enc, nil
}

// ConvertFrom converts b from charset to UTF-8. Bytes that are invalid in
// charset yield a [*ConversionError] wrapping ErrInvalidSequence.
func ConvertFrom(charset string, b []byte) ([]byte, error) {
	switch {
	case isUTF8Charset(charset):
		if err := Validate(UTF8, b); err != nil {
			return nil, &ConversionError{Charset: charset, Offset: err.(*MalformedError).Offset, Err: ErrInvalidSequence}
		}
		return b, nil
	case isASCIICharset(charset):
		for i, c := range b {
			if c >= 0x80 {
				return nil, &ConversionError{Charset: charset, Offset: i, Err: ErrInvalidSequence}
			}
		}
		return b, nil
	}
	enc, err := lookupCharset(charset)
	if err != nil {
		return nil, err
	}
	out, n, err := transform.Bytes(enc.NewDecoder(), b)
	if err != nil {
		tracer().Debugf("decoding %q failed at %d: %v", charset, n, err)
		return nil, &ConversionError{Charset: charset, Offset: n, Err: ErrInvalidSequence}
	}
	// Decoders substitute U+FFFD for undefined bytes instead of failing.
	if bytes.ContainsRune(out, utf8.RuneError) {
		return nil, &ConversionError{Charset: charset, Offset: -1, Err: ErrInvalidSequence}
	}
	return out, nil
}

// ConvertTo converts the UTF-8 text s to charset. Characters that charset
// cannot represent yield a [*ConversionError] wrapping ErrInvalidSequence.
func ConvertTo(charset string, s []byte) ([]byte, error) {
	if err := Validate(UTF8, s); err != nil {
		return nil, &ConversionError{Charset: charset, Offset: err.(*MalformedError).Offset, Err: ErrInvalidSequence}
	}
	switch {
	case isUTF8Charset(charset):
		return s, nil
	case isASCIICharset(charset):
		for i, c := range s {
			if c >= 0x80 {
				return nil, &ConversionError{Charset: charset, Offset: i, Err: ErrInvalidSequence}
			}
		}
		return s, nil
	}
	enc, err := lookupCharset(charset)
	if err != nil {
		return nil, err
	}
	out, n, err := transform.Bytes(enc.NewEncoder(), s)
	if err != nil {
		tracer().Debugf("encoding to %q failed at %d: %v", charset, n, err)
		return nil, &ConversionError{Charset: charset, Offset: n, Err: ErrInvalidSequence}
	}
	return out, nil
}

// LocaleCaseCmp compares the byte strings a and b, encoded in the
// character set of loc, ignoring case by the rules of loc's language.
// nf selects the flavour of caseless matching as for [CaseCmp].
func LocaleCaseCmp(loc Locale, a, b []byte, nf Form) (int, error) {
	ua, err := ConvertFrom(loc.Charset, a)
	if err != nil {
		return 0, err
	}
	ub, err := ConvertFrom(loc.Charset, b)
	if err != nil {
		return 0, err
	}
	return CaseCmp(UTF8, ua, ub, loc.Language, FoldDefault, nf)
}

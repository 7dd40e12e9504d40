package unistr

import (
	"fmt"
	"slices"
	"strings"
)

// Form is a Unicode normalization form.
type Form int

// Normalization forms. NoForm requests no normalization where a form is
// optional, and is rejected where a form is required.
const (
	NoForm Form = iota
	NFD         // Canonical decomposition.
	NFC         // Canonical decomposition followed by canonical composition.
	NFKD        // Compatibility decomposition.
	NFKC        // Compatibility decomposition followed by canonical composition.
)

var formNames = [...]string{NoForm: "none", NFD: "NFD", NFC: "NFC", NFKD: "NFKD", NFKC: "NFKC"}

func (f Form) String() string {
	if f < 0 || int(f) >= len(formNames) {
		return fmt.Sprintf("Form(%d)", int(f))
	}
	return formNames[f]
}

// ParseForm returns the form named name, ignoring case. The empty string
// and "none" yield NoForm.
func ParseForm(name string) (Form, error) {
	if name == "" {
		return NoForm, nil
	}
	for f, n := range formNames {
		if strings.EqualFold(n, name) {
			return Form(f), nil
		}
	}
	return NoForm, fmt.Errorf("%q: %w", name, ErrInvalidForm)
}

func (f Form) valid() bool    { return f >= NFD && f <= NFKC }
func (f Form) compat() bool   { return f == NFKD || f == NFKC }
func (f Form) composed() bool { return f == NFC || f == NFKC }

// decomposing returns the decomposition-only counterpart of f.
func (f Form) decomposing() Form {
	switch f {
	case NFC:
		return NFD
	case NFKC:
		return NFKD
	}
	return f
}

// normalizeRunes normalizes a code point sequence to a valid form.
func normalizeRunes(form Form, runes []rune) []rune {
	out := decomposeAll(runes, form.compat())
	if form.composed() {
		out = compose(out)
	}
	return out
}

// Normalize converts s to the given normalization form. The result is
// written into buf if it has sufficient capacity. Ill-formed input yields
// an error wrapping ErrMalformed.
func Normalize[U CodeUnit](form Form, c Codec[U], s []U, buf []U) (Output[U], error) {
	if !form.valid() {
		return Output[U]{}, fmt.Errorf("normalize: %w", ErrInvalidForm)
	}
	runes, err := DecodeAll(c, s)
	if err != nil {
		return Output[U]{}, fmt.Errorf("normalize to %s: %w", form, err)
	}
	return encodeInto(c, normalizeRunes(form, runes), buf)
}

// NormalizeString is like [Normalize] for Go strings.
func NormalizeString(form Form, s string) (string, error) {
	out, err := Normalize(form, UTF8, []byte(s), nil)
	if err != nil {
		return "", err
	}
	return string(out.Units), nil
}

// NormCmp compares a and b after normalizing both to form. The result is
// negative, zero or positive as the normalized a orders before, equal to or
// after the normalized b, comparing code points.
func NormCmp[U CodeUnit](c Codec[U], a, b []U, form Form) (int, error) {
	if !form.valid() {
		return 0, fmt.Errorf("compare: %w", ErrInvalidForm)
	}
	na, err := decodeNormalized(c, a, form)
	if err != nil {
		return 0, err
	}
	nb, err := decodeNormalized(c, b, form)
	if err != nil {
		return 0, err
	}
	return slices.Compare(na, nb), nil
}

// IsNormalized reports whether s is already in the given form.
func IsNormalized[U CodeUnit](form Form, c Codec[U], s []U) (bool, error) {
	if !form.valid() {
		return false, fmt.Errorf("normalization check: %w", ErrInvalidForm)
	}
	runes, err := DecodeAll(c, s)
	if err != nil {
		return false, err
	}
	return slices.Equal(runes, normalizeRunes(form, runes)), nil
}

func decodeNormalized[U CodeUnit](c Codec[U], s []U, form Form) ([]rune, error) {
	runes, err := DecodeAll(c, s)
	if err != nil {
		return nil, err
	}
	if form == NoForm {
		return runes, nil
	}
	return normalizeRunes(form, runes), nil
}

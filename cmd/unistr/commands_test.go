package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/scalecode-solutions/unistr"
	"github.com/scalecode-solutions/unistr/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:      "dev",
		LogLevel: "warn",
		Form:     "NFC",
		Fold:     "default",
		Language: "en",
		Charset:  "UTF-8",
		Width:    80,
		Encoding: "utf8",
	}
}

func runCommand(t *testing.T, cfg *config.Config, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	err := run(cfg, args, strings.NewReader(stdin), &out, zap.NewNop())
	require.NoError(t, err)
	return out.String()
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"normalize", []string{"normalize", "A\u030a"}, "\u00c5\n"},
		{"upper", []string{"upper", "stra\u00dfe"}, "STRASSE\n"},
		{"lower", []string{"lower", "\u039f\u0394\u039f\u03a3"}, "\u03bf\u03b4\u03bf\u03c2\n"},
		{"title", []string{"title", "hello", "world"}, "Hello World\n"},
		{"fold", []string{"fold", "Stra\u00dfe"}, "strasse\n"},
		{"casecmp equal", []string{"casecmp", "Stra\u00dfe", "STRASSE"}, "0\n"},
		{"casecmp less", []string{"casecmp", "a", "B"}, "-1\n"},
		{"casecmp greater", []string{"casecmp", "b", "A"}, "1\n"},
		{"breaks", []string{"breaks", "a b"}, "graphemes: a| |b\nwords: a| |b\nlines: a |b!\n"},
		{"width", []string{"width", "\u4e2d\u6587"}, "4\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, runCommand(t, testConfig(), "", tt.args...))
		})
	}
}

func TestWrap(t *testing.T) {
	cfg := testConfig()
	cfg.Width = 5
	assert.Equal(t, "hello\nworld\n", runCommand(t, cfg, "", "wrap", "hello world"))

	cfg.Width = 12
	assert.Equal(t, "hello world\n", runCommand(t, cfg, "", "wrap", "hello world"))
}

func TestStdin(t *testing.T) {
	assert.Equal(t, "ABC\n", runCommand(t, testConfig(), "abc\n", "upper"))
}

func TestEncodings(t *testing.T) {
	for _, enc := range []string{"utf16", "utf32"} {
		cfg := testConfig()
		cfg.Encoding = enc
		assert.Equal(t, "STRASSE\n", runCommand(t, cfg, "", "upper", "stra\u00dfe"), enc)
		out := runCommand(t, cfg, "", "breaks", "e\u0301x")
		assert.True(t, strings.HasPrefix(out, "graphemes: e\u0301|x\n"), "%s: %q", enc, out)
	}
}

func TestLegacyCharset(t *testing.T) {
	cfg := testConfig()
	cfg.Charset = "ISO-8859-9"
	cfg.Language = "tr"
	assert.Equal(t, "i\n", runCommand(t, cfg, "\xdd", "lower"))
	assert.Equal(t, "\xfd\n", runCommand(t, cfg, "I", "fold"))

	cfg.Charset = "ASCII"
	var out bytes.Buffer
	err := run(cfg, []string{"upper", "caf\u00e9"}, strings.NewReader(""), &out, zap.NewNop())
	assert.ErrorIs(t, err, unistr.ErrInvalidSequence)
}

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{nil, {"frobnicate", "x"}, {"casecmp", "a"}} {
		var out bytes.Buffer
		err := run(testConfig(), args, strings.NewReader(""), &out, zap.NewNop())
		assert.ErrorIs(t, err, errUsage, "%q", args)
	}
}

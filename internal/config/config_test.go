package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scalecode-solutions/unistr"
)

func TestLoadDefaults(t *testing.T) {
	cfg, rest, err := Load(nil, []string{"normalize", "x"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Form != "NFC" || cfg.Width != 80 || cfg.Encoding != "utf8" || cfg.LogLevel != "warn" {
		t.Errorf("unexpected defaults: %+v", *cfg)
	}
	if len(rest) != 2 || rest[0] != "normalize" {
		t.Errorf("rest = %q, want [normalize x]", rest)
	}
	if cfg.NormalizationForm() != unistr.NFC {
		t.Errorf("NormalizationForm() = %v", cfg.NormalizationForm())
	}
	if cfg.FoldKind() != unistr.FoldDefault {
		t.Errorf("FoldKind() = %v", cfg.FoldKind())
	}
}

func TestLoadPrecedence(t *testing.T) {
	t.Setenv("UNISTR_WIDTH", "40")
	t.Setenv("UNISTR_FORM", "NFKD")

	cfg, _, err := Load(nil, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 40 || cfg.Form != "NFKD" {
		t.Errorf("environment not applied: %+v", *cfg)
	}

	// Flags win over the environment.
	cfg, rest, err := Load(nil, []string{"--width", "20", "wrap", "--form", "x"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 20 {
		t.Errorf("width = %d, want 20", cfg.Width)
	}
	if cfg.Form != "NFKD" {
		t.Errorf("flags after the command must not be parsed, form = %q", cfg.Form)
	}
	if strings.Join(rest, " ") != "wrap --form x" {
		t.Errorf("rest = %q", rest)
	}
}

func TestLoadConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "unistr.yaml")
	if err := os.WriteFile(file, []byte("form: NFD\nwidth: 33\nlanguage: tr\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _, err := Load(nil, []string{"--config", file, "--width", "50"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Form != "NFD" || cfg.Language != "tr" {
		t.Errorf("config file not applied: %+v", *cfg)
	}
	if cfg.Width != 50 {
		t.Errorf("width = %d, want the flag value 50", cfg.Width)
	}

	if _, _, err := Load(nil, []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Error("missing config file accepted")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"form", []string{"--form", "NFX"}, `form "NFX"`},
		{"fold", []string{"--fold", "turkic"}, `fold "turkic"`},
		{"width", []string{"--width", "0"}, "width must be > 0"},
		{"encoding", []string{"--encoding", "ucs2"}, `encoding "ucs2"`},
		{"log level", []string{"--log_level", "loud"}, `log_level "loud"`},
		{"unknown flag", []string{"--nope"}, "unknown flag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load(nil, tt.args)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load(%q) error = %v, want it to mention %q", tt.args, err, tt.want)
			}
		})
	}
}

func TestLocaleOverrides(t *testing.T) {
	cfg := Config{Charset: "ISO-8859-9", Language: "tr"}
	loc := cfg.Locale()
	if loc.Charset != "ISO-8859-9" || loc.Language != "tr" {
		t.Errorf("Locale() = %+v", loc)
	}
	if loc := (Config{}).Locale(); loc != unistr.CurrentLocale() {
		t.Errorf("Locale() = %+v, want the process locale", loc)
	}
}

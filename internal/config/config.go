// Package config loads the settings of the unistr command.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/scalecode-solutions/unistr"
	"github.com/scalecode-solutions/unistr/internal/logging"
)

// EnvPrefix prefixes the environment variables the command reads, e.g.
// UNISTR_FORM.
const EnvPrefix = "UNISTR"

// Config holds the command settings.
type Config struct {
	Env      string `mapstructure:"env"`       // "dev" | "prod"
	LogLevel string `mapstructure:"log_level"` // debug, info, warn, error …

	Form      string `mapstructure:"form"`       // Normalization form, "none" for none.
	Fold      string `mapstructure:"fold"`       // default, full or simple.
	Language  string `mapstructure:"language"`   // Case mapping language; empty means the locale's.
	Charset   string `mapstructure:"charset"`    // Input and output charset; empty means the locale's.
	Width     int    `mapstructure:"width"`      // Column width for wrap.
	EastAsian bool   `mapstructure:"east_asian"` // Ambiguous characters are wide.
	Encoding  string `mapstructure:"encoding"`   // Code units to process in: utf8, utf16 or utf32.
}

// Dump returns the configuration as indented JSON for debug logging.
func (c Config) Dump() string {
	b, _ := json.MarshalIndent(c, "", "  ")
	return string(b)
}

// NormalizationForm returns the parsed Form setting.
func (c Config) NormalizationForm() unistr.Form {
	f, _ := unistr.ParseForm(c.Form)
	return f
}

// FoldKind returns the parsed Fold setting.
func (c Config) FoldKind() unistr.FoldKind {
	k, _ := unistr.ParseFoldKind(c.Fold)
	return k
}

// Locale returns the locale the command works in: the process locale with
// Charset and Language overriding its parts when set.
func (c Config) Locale() unistr.Locale {
	loc := unistr.CurrentLocale()
	if c.Charset != "" {
		loc.Charset = c.Charset
	}
	if c.Language != "" {
		loc.Language = c.Language
	}
	return loc
}

func allKeys() []string {
	return []string{
		"env", "log_level",
		"form", "fold", "language", "charset",
		"width", "east_asian", "encoding",
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "warn")
	v.SetDefault("form", "NFC")
	v.SetDefault("fold", "default")
	v.SetDefault("language", "")
	v.SetDefault("charset", "")
	v.SetDefault("width", 80)
	v.SetDefault("east_asian", false)
	v.SetDefault("encoding", "utf8")
}

func defineFlags(fs *pflag.FlagSet) {
	fs.String("env", "dev", `Runtime environment "dev"|"prod"`)
	fs.String("log_level", "warn", "Log level")
	fs.String("form", "NFC", "Normalization form: NFD, NFC, NFKD, NFKC or none")
	fs.String("fold", "default", "Case folding: default, full or simple")
	fs.String("language", "", "Language for case mapping, e.g. tr (default: from locale)")
	fs.String("charset", "", "Charset of input and output (default: from locale)")
	fs.Int("width", 80, "Line width for wrap")
	fs.Bool("east_asian", false, "Count ambiguous-width characters as two columns")
	fs.String("encoding", "utf8", "Code units to process in: utf8, utf16 or utf32")
	fs.String("config", "", "Config file (yaml, json or toml)")
}

// Load merges defaults, an optional config file, environment variables and
// explicitly set flags into a Config, in increasing order of precedence. A
// .env file in the working directory is loaded first; the real environment
// wins over it. It returns the arguments remaining after the flags.
func Load(logger *zap.Logger, args []string) (*Config, []string, error) {
	if err := godotenv.Load(); err == nil && logger != nil {
		logger.Info("Loaded .env file")
	}

	fs := pflag.NewFlagSet("unistr", pflag.ContinueOnError)
	defineFlags(fs)
	fs.SetInterspersed(false)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, k := range allKeys() {
		_ = v.BindEnv(k)
	}

	if file, _ := fs.GetString("config"); file != "" {
		if err := mergeConfigFile(v, file); err != nil {
			return nil, nil, err
		}
		if logger != nil {
			logger.Info("Loaded config file", zap.String("file", file))
		}
	}

	setDefaults(v)

	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed && f.Name != "config" {
			_ = v.BindPFlag(f.Name, f)
		}
	})

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, nil, err
	}
	return &cfg, fs.Args(), nil
}

func mergeConfigFile(v *viper.Viper, file string) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("cannot read config file: %w", err)
	}
	ext := strings.TrimPrefix(filepath.Ext(file), ".")
	v.SetConfigType(ext)
	if err := v.MergeConfig(bytes.NewReader(b)); err != nil {
		return fmt.Errorf("cannot decode config file %s: %w", file, err)
	}
	return nil
}

func validate(cfg Config) error {
	var invalid []string
	if !logging.IsValidLogLevel(cfg.LogLevel) {
		invalid = append(invalid, fmt.Sprintf("log_level %q", cfg.LogLevel))
	}
	if _, err := unistr.ParseForm(cfg.Form); err != nil {
		invalid = append(invalid, fmt.Sprintf("form %q", cfg.Form))
	}
	if _, err := unistr.ParseFoldKind(cfg.Fold); err != nil {
		invalid = append(invalid, fmt.Sprintf("fold %q", cfg.Fold))
	}
	if cfg.Width <= 0 {
		invalid = append(invalid, "width must be > 0")
	}
	switch cfg.Encoding {
	case "utf8", "utf16", "utf32":
	default:
		invalid = append(invalid, fmt.Sprintf("encoding %q", cfg.Encoding))
	}
	if len(invalid) == 0 {
		return nil
	}
	return fmt.Errorf("configuration errors: invalid: %s", strings.Join(invalid, ", "))
}

package main

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"go.uber.org/zap"

	"github.com/scalecode-solutions/unistr"
	"github.com/scalecode-solutions/unistr/internal/config"
)

var errUsage = errors.New("usage: unistr [flags] normalize|fold|upper|lower|title|casecmp|breaks|wrap|width [text...]")

// run executes the command named by args[0].
func run(cfg *config.Config, args []string, in io.Reader, out io.Writer, logger *zap.Logger) error {
	if len(args) == 0 {
		return errUsage
	}
	switch cfg.Encoding {
	case "utf16":
		return runWith(unistr.UTF16, cfg, args, in, out, logger)
	case "utf32":
		return runWith(unistr.UTF32, cfg, args, in, out, logger)
	}
	return runWith(unistr.UTF8, cfg, args, in, out, logger)
}

// command processes text in code units of type U.
type command[U unistr.CodeUnit] struct {
	cfg    *config.Config
	loc    unistr.Locale
	codec  unistr.Codec[U]
	out    io.Writer
	logger *zap.Logger
}

func runWith[U unistr.CodeUnit](codec unistr.Codec[U], cfg *config.Config, args []string, in io.Reader, out io.Writer, logger *zap.Logger) error {
	c := &command[U]{cfg: cfg, loc: cfg.Locale(), codec: codec, out: out, logger: logger}
	name, rest := args[0], args[1:]
	logger.Debug("running", zap.String("command", name), zap.String("charset", c.loc.Charset),
		zap.String("language", c.loc.Language))

	if name == "casecmp" {
		if len(rest) != 2 {
			return fmt.Errorf("casecmp needs two arguments: %w", errUsage)
		}
		return c.casecmp(rest[0], rest[1])
	}

	text, err := c.input(rest, in)
	if err != nil {
		return err
	}
	switch name {
	case "normalize":
		return c.normalize(text)
	case "fold":
		return c.fold(text)
	case "upper", "lower", "title":
		return c.caseMap(name, text)
	case "breaks":
		return c.breaks(text)
	case "wrap":
		return c.wrap(text)
	case "width":
		_, err := fmt.Fprintln(c.out, unistr.Width(c.codec, text))
		return err
	}
	return fmt.Errorf("unknown command %q: %w", name, errUsage)
}

// input returns the text to process, converted from the locale charset.
func (c *command[U]) input(args []string, in io.Reader) ([]U, error) {
	var raw []byte
	if len(args) > 0 {
		raw = []byte(strings.Join(args, " "))
	} else {
		b, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		raw = []byte(strings.TrimSuffix(string(b), "\n"))
	}
	return c.decode(raw)
}

func (c *command[U]) decode(raw []byte) ([]U, error) {
	b, err := unistr.ConvertFrom(c.loc.Charset, raw)
	if err != nil {
		return nil, err
	}
	runes, err := unistr.DecodeAll(unistr.UTF8, b)
	if err != nil {
		return nil, err
	}
	return unistr.Encode(c.codec, runes), nil
}

// text converts units back to a string in the locale charset.
func (c *command[U]) text(units []U) (string, error) {
	runes, err := unistr.DecodeAll(c.codec, units)
	if err != nil {
		return "", err
	}
	b, err := unistr.ConvertTo(c.loc.Charset, []byte(string(runes)))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (c *command[U]) println(units []U) error {
	s, err := c.text(units)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, s)
	return err
}

func (c *command[U]) normalize(s []U) error {
	form := c.cfg.NormalizationForm()
	if form == unistr.NoForm {
		return c.println(s)
	}
	res, err := unistr.Normalize(form, c.codec, s, nil)
	if err != nil {
		return err
	}
	return c.println(res.Units)
}

func (c *command[U]) fold(s []U) error {
	res, err := unistr.CaseFold(c.codec, s, c.loc.Language, c.cfg.FoldKind(), c.cfg.NormalizationForm(), nil)
	if err != nil {
		return err
	}
	return c.println(res.Units)
}

func (c *command[U]) caseMap(name string, s []U) error {
	mapping := unistr.ToUpper[U]
	switch name {
	case "lower":
		mapping = unistr.ToLower[U]
	case "title":
		mapping = unistr.ToTitle[U]
	}
	res, err := mapping(c.codec, s, c.loc.Language, c.cfg.NormalizationForm(), nil)
	if err != nil {
		return err
	}
	return c.println(res.Units)
}

func (c *command[U]) casecmp(a, b string) error {
	ua, err := c.decode([]byte(a))
	if err != nil {
		return err
	}
	ub, err := c.decode([]byte(b))
	if err != nil {
		return err
	}
	cmp, err := unistr.CaseCmp(c.codec, ua, ub, c.loc.Language, c.cfg.FoldKind(), c.cfg.NormalizationForm())
	if err != nil {
		return err
	}
	switch {
	case cmp < 0:
		cmp = -1
	case cmp > 0:
		cmp = 1
	}
	_, err = fmt.Fprintln(c.out, cmp)
	return err
}

// joined renders pieces separated by '|'.
func (c *command[U]) joined(pieces iter.Seq[[]U]) (string, error) {
	var parts []string
	for p := range pieces {
		s, err := c.text(p)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "|"), nil
}

func (c *command[U]) breaks(s []U) error {
	graphemes, err := c.joined(unistr.Graphemes(c.codec, s))
	if err != nil {
		return err
	}
	words, err := c.joined(unistr.Words(c.codec, s))
	if err != nil {
		return err
	}
	var lines []string
	for piece, mustBreak := range unistr.LineSegments(c.codec, s) {
		t, err := c.text(piece)
		if err != nil {
			return err
		}
		if mustBreak {
			t += "!"
		}
		lines = append(lines, t)
	}
	_, err = fmt.Fprintf(c.out, "graphemes: %s\nwords: %s\nlines: %s\n",
		graphemes, words, strings.Join(lines, "|"))
	return err
}

// wrap prints s broken into lines of at most cfg.Width columns.
func (c *command[U]) wrap(s []U) error {
	opts := unistr.LineBreakOptions{EastAsian: c.cfg.EastAsian || c.loc.EastAsian()}
	breaks, _ := unistr.WidthLineBreaksOpt(c.codec, s, c.cfg.Width, 0, 0, nil, opts)
	start := 0
	var lines []string
	for i := 1; i <= len(s); i++ {
		if i < len(s) && breaks[i] != unistr.LineWrap {
			continue
		}
		t, err := c.text(s[start:i])
		if err != nil {
			return err
		}
		lines = append(lines, strings.TrimRight(t, " "))
		start = i
	}
	_, err := fmt.Fprintln(c.out, strings.Join(lines, "\n"))
	return err
}

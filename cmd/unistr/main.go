// Command unistr normalizes, case maps, compares and segments text.
//
// Usage:
//
//	unistr [flags] <command> [text...]
//
// Commands are normalize, fold, upper, lower, title, casecmp, breaks, wrap
// and width. The text is taken from the arguments, joined by spaces, or
// read from standard input if there are none. casecmp takes exactly two
// arguments. Settings can also be given as UNISTR_* environment variables,
// in a .env file or in a config file (--config).
package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/scalecode-solutions/unistr/internal/config"
	"github.com/scalecode-solutions/unistr/internal/logging"
)

func main() {
	boot := logging.BootstrapLogger()
	cfg, args, err := config.Load(boot, os.Args[1:])
	if err != nil {
		boot.Error("invalid configuration", zap.Error(err))
		os.Exit(2)
	}
	logger, err := logging.BuildLogger(cfg.LogLevel, cfg.Env)
	if err != nil {
		boot.Fatal("failed to build logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()
	logger.Debug("configuration", zap.String("config", cfg.Dump()))

	if err := run(cfg, args, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("unistr failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

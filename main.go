package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/iedon/frankmark-go/config"
	"github.com/iedon/frankmark-go/logfields"
	"github.com/iedon/frankmark-go/site"
	"github.com/iedon/frankmark-go/templatex"
)

type CLI struct {
	Root     string           `arg:"" optional:"" default:"${default_root}" help:"Site root containing ${manifest}."`
	LogLevel string           `help:"Log level: debug, info, warn or error (default info)." placeholder:"LEVEL"`
	Version  kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name(APP_NAME),
		kong.Description("Assemble a static documentation site from a folder of markdown pages."),
		kong.UsageOnError(),
		kong.Vars{
			"version":      APP_SIGNATURE,
			"default_root": config.DefaultRoot,
			"manifest":     config.ManifestName,
		},
	)
	kctx.FatalIfErrorf(run(cli))
}

func run(cli CLI) error {
	if err := config.LoadEnvFile(cli.Root); err != nil {
		return err
	}
	logger := newLogger(config.ResolveLogLevel(cli.LogLevel))

	cfg, err := config.Load(cli.Root)
	if err != nil {
		return err
	}

	templates, err := templatex.Load(filepath.Join(cfg.Root, config.ThemeDirName))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	started := time.Now()
	logger.Info("building site", logfields.Path(cfg.Root), slog.String("version", APP_SIGNATURE))

	report, err := site.NewService(cfg, templates, logger).Build(ctx)
	if err != nil {
		return err
	}

	logger.Info("static build completed",
		logfields.Output(cfg.OutputDir),
		slog.Int("folders", report.Folders),
		slog.Int("pages", report.Pages),
		slog.Int("files", report.Files),
		slog.Duration("elapsed", time.Since(started)),
	)
	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

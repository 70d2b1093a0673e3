package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
)

// runMain parses args, runs the build and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n\n", err)
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch {
	case flags.help:
		printUsage(env.Stdout)
		return ExitSuccess
	case flags.version:
		fmt.Fprintf(env.Stdout, "md2site %s\n", Version)
		return ExitSuccess
	case len(positional) > 0:
		fmt.Fprintf(env.Stderr, "error: %v: %v\n\n", ErrUnexpectedArgs, positional)
		printUsage(env.Stderr)
		return ExitUsage
	}

	logger := newLogger(env.Stderr, logLevel(flags.quiet, flags.verbose), env.IsTerminal != nil && env.IsTerminal())

	cfg, err := runBuild(ctx, flags, env, logger)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, cfg, env.Root))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runBuild resolves the config, builds the site and logs a summary.
// The returned config is the one in effect, for error hints; it is nil if
// the config itself could not be loaded.
func runBuild(ctx context.Context, flags *cliFlags, env *Environment, logger *slog.Logger) (*config.Config, error) {
	cfg, cfgPath, err := config.Resolve(env.Root, flags.config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cfgPath != "" {
		logger.Debug("config loaded", "path", cfgPath)
	}

	builder, err := md2site.NewBuilder(
		md2site.WithConfig(cfg),
		md2site.WithSourceFS(os.DirFS(env.Root)),
		md2site.WithOutputDir(filepath.Join(env.Root, filepath.FromSlash(cfg.Output.Dir))),
		md2site.WithLogger(logger),
	)
	if err != nil {
		return cfg, err
	}
	logger.Debug("templates loaded", "dir", cfg.Source.Templates, "count", len(builder.Templates()))

	result, err := builder.Build(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return cfg, fmt.Errorf("build interrupted: %w", err)
		}
		return cfg, err
	}

	logger.Info("site built",
		"output", builder.OutputDir(),
		"pages", len(result.Pages),
		"assets", len(result.Assets),
		"duration", result.Duration.Round(time.Millisecond),
	)
	return cfg, nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/veldrin/notable2zim/internal"
	pkgconfig "github.com/veldrin/notable2zim/pkg/config"
)

// defaultConfigFile is consulted when --config is not given; a missing
// file is fine, flags and defaults take over.
const defaultConfigFile = "notable2zim.yaml"

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := internal.NewDefaultConfig()

	if cmd.IsSet("config") {
		if err := pkgconfig.Load(cmd.String("config"), cfg); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	} else if err := pkgconfig.LoadIfExists(defaultConfigFile, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	// Flags override config file values.
	if cmd.IsSet("notes-dir") {
		cfg.Source.Path = cmd.String("notes-dir")
	}
	if cmd.IsSet("notebook-dir") {
		cfg.Notebook.Path = cmd.String("notebook-dir")
	}
	if cmd.IsSet("log-file") {
		cfg.App.LogFile = cmd.String("log-file")
	}
	if cmd.IsSet("log-level") {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
			return fmt.Errorf("invalid log level %q: %w", cmd.String("log-level"), err)
		}
		cfg.App.LogLevel = level
	}
	if cmd.IsSet("ledger") {
		cfg.Ledger.Path = cmd.String("ledger")
	}
	if cmd.Bool("dry-run") {
		cfg.Import.DryRun = true
	}
	if cmd.Bool("recursive") {
		cfg.Source.Recursive = true
	}
	if cmd.Bool("watch") {
		cfg.Import.Watch = true
	}

	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "notable2zim",
		Usage:  "Import Notable Markdown notes into a Zim Desktop Wiki notebook with chronological journal backlinks",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Sources: cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:  "notes-dir",
				Usage: "Directory containing Notable .md notes",
			},
			&cli.StringFlag{
				Name:  "notebook-dir",
				Usage: "Root directory of the Zim notebook",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Optional log file for import details",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Console log verbosity (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "ledger",
				Usage: "Path of the import ledger database",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Compute and log all decisions without writing anything",
			},
			&cli.BoolFlag{
				Name:  "recursive",
				Usage: "Scan the notes directory recursively",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "Keep running and re-import on source changes",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

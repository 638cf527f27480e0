package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/lifehub/internal/backup"
	"github.com/julianstephens/lifehub/internal/cli"
	"github.com/julianstephens/lifehub/internal/config"
	"github.com/julianstephens/lifehub/internal/constants"
	"github.com/julianstephens/lifehub/internal/errors"
	"github.com/julianstephens/lifehub/internal/logger"
	"github.com/julianstephens/lifehub/internal/storage"
	"github.com/julianstephens/lifehub/internal/store"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Config file path." type:"path" default:"~/.config/lifehub/config.yaml"`
	DataDir  string `help:"Data directory (overrides the config file)." type:"path"`
	Storage  string `help:"Storage driver (json|sqlite; overrides the config file)."`
	DebugLog bool   `name:"debug" help:"Log debug output to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Write a default config and initialize storage."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Summary  cli.SummaryCmd  `cmd:"" help:"Print the dashboard as text."`
	Txn      cli.TxnCmd      `cmd:"" help:"Track income and expenses."`
	Health   cli.HealthCmd   `cmd:"" help:"Track weight, sleep, steps and mood."`
	Meal     cli.MealCmd     `cmd:"" help:"Track meals."`
	Task     cli.TaskCmd     `cmd:"" help:"Manage tasks."`
	Note     cli.NoteCmd     `cmd:"" help:"Manage notes."`
	Reading  cli.ReadingCmd  `cmd:"" help:"Manage the reading list."`
	Habit    cli.HabitCmd    `cmd:"" help:"Track weekly habits."`
	Water    cli.WaterCmd    `cmd:"" help:"Track glasses of water."`
	Settings cli.SettingsCmd `cmd:"" help:"Manage application settings."`
	Export   cli.ExportCmd   `cmd:"" help:"Export data as a JSON backup or transactions CSV."`
	Import   cli.ImportCmd   `cmd:"" help:"Replace all data with a JSON backup."`
	Backup   cli.BackupCmd   `cmd:"" help:"Manage automatic and manual backups."`
	Debug    cli.DebugCmd    `cmd:"" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal life organizer: money, health, meals, tasks, notes, reading and weekly habits"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := run(ctx, os.Stdout); err != nil {
		if errors.IsWarning(err) {
			// The change was applied; only saving it failed
			logger.Warn("Command finished with a warning", "error", err)
			fmt.Fprintln(os.Stderr, errors.Format(err))
			return
		}
		errors.Fatal(err)
	}
}

// run wires config, logging, storage and the session, then executes the
// selected command. Deferred cleanup runs before main decides the exit code.
func run(ctx *kong.Context, out io.Writer) error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}
	if CLI.DataDir != "" {
		cfg.DataDir = CLI.DataDir
	}
	if CLI.Storage != "" {
		cfg.Storage = CLI.Storage
	}
	if CLI.DebugLog {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, DataDir: cfg.DataDir}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	provider, err := storage.New(cfg.Storage, cfg.DataDir)
	if err != nil {
		return err
	}
	if err := provider.Init(); err != nil {
		return err
	}
	defer provider.Close()

	backups := backup.NewManager(cfg.DataDir, backup.WithMaxBackups(cfg.Backups.Max))
	session, err := store.Open(provider, store.WithRecovery(backups.PreserveUnreadable))
	if err != nil && !errors.IsWarning(err) {
		return err
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Format(err))
	}

	appCtx := &cli.Context{
		Session:    session,
		Backups:    backups,
		Config:     cfg,
		ConfigPath: CLI.Config,
		Out:        out,
	}

	return ctx.Run(appCtx)
}

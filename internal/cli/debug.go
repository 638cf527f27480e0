package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/lifehub/internal/logger"
	"github.com/julianstephens/lifehub/internal/storage"
)

type DebugCmd struct {
	Paths *DebugPathsCmd `cmd:"" help:"Show storage, log and backup paths."`
	Dump  *DebugDumpCmd  `cmd:"" help:"Dump the live snapshot, or one field of it, as JSON."`
}

type DebugPathsCmd struct{}

func (cmd *DebugPathsCmd) Run(ctx *Context) error {
	output := map[string]string{
		"storage": ctx.Session.Provider().GetConfigPath(),
	}
	if ctx.Config != nil {
		output["log"] = logger.LogPath(ctx.Config.DataDir)
	}
	if ctx.Backups != nil {
		output["backups"] = ctx.Backups.GetBackupDir()
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	ctx.printf("%s\n", jsonBytes)
	return nil
}

type DebugDumpCmd struct {
	Field string `arg:"" optional:"" help:"Top-level field to dump (e.g. tasks, weeklyHabits)."`
}

func (cmd *DebugDumpCmd) Run(ctx *Context) error {
	data, err := storage.Encode(ctx.Session.Snapshot())
	if err != nil {
		return err
	}
	if cmd.Field == "" {
		ctx.printf("%s\n", data)
		return nil
	}

	fields, err := storage.DecodeFields(data)
	if err != nil {
		return err
	}
	raw, ok := fields[cmd.Field]
	if !ok {
		return fmt.Errorf("unknown field: %s", cmd.Field)
	}

	jsonBytes, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", cmd.Field, err)
	}
	ctx.printf("%s\n", jsonBytes)
	return nil
}

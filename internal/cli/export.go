package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/lifehub/internal/exchange"
)

type ExportCmd struct {
	Format string `arg:"" help:"Export format (json|csv)." enum:"json,csv" default:"json"`
	Output string `short:"o" help:"Directory to write the file to. Without it the export goes to stdout."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	snap := ctx.Session.Snapshot()
	now := ctx.now()

	var (
		data []byte
		name string
	)
	switch c.Format {
	case "csv":
		data = []byte(exchange.TransactionsCSV(snap.Txns))
		name = exchange.CSVFilename(now)
	default:
		var err error
		if data, err = exchange.MarshalBackup(snap); err != nil {
			return fmt.Errorf("failed to encode backup: %w", err)
		}
		name = exchange.BackupFilename(now)
	}

	if c.Output == "" {
		_, err := ctx.out().Write(append(data, '\n'))
		return err
	}

	path := filepath.Join(c.Output, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	ctx.printf("✓ Exported to %s\n", path)
	return nil
}

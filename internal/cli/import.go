package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/lifehub/internal/exchange"
)

// ImportCmd replaces all data with a backup file. The file is checked in
// full before anything changes.
type ImportCmd struct {
	File string `arg:"" type:"existingfile" help:"Backup JSON file to import."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}
	if _, err := exchange.ParseBackup(data, ctx.now()); err != nil {
		return err
	}

	if !c.Yes {
		ok, err := ctx.confirm(
			"Import "+filepath.Base(c.File)+"?",
			"This replaces all current data.",
		)
		if err != nil {
			return err
		}
		if !ok {
			ctx.printf("Import cancelled.\n")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	err = ctx.Session.ReplaceStore(data)
	if applied(err) {
		ctx.printf("✓ Imported %s\n", filepath.Base(c.File))
	}
	return err
}

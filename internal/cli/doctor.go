package cli

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/julianstephens/lifehub/internal/exchange"
	"github.com/julianstephens/lifehub/internal/storage"
	"github.com/julianstephens/lifehub/internal/store"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	ctx.printf("Running diagnostics...\n\n")

	hasError := false
	reachable := false

	// Check 1: storage reachable
	if err := checkStorageReachable(ctx); err != nil {
		ctx.printf("❌ Storage reachable: FAIL\n")
		ctx.printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.printf("✓ Storage reachable: OK\n")
		reachable = true
	}

	// Check 2: stored snapshot would import cleanly
	if reachable {
		if err := checkSnapshot(ctx); err != nil {
			ctx.printf("❌ Stored snapshot: FAIL\n")
			ctx.printf("   Error: %v\n", err)
			hasError = true
		} else {
			ctx.printf("✓ Stored snapshot: OK\n")
		}
	} else {
		ctx.printf("⊘ Stored snapshot: SKIPPED (storage not reachable)\n")
	}

	// Check 3: habit week matches the calendar
	if err := checkWeek(ctx); err != nil {
		ctx.printf("❌ Habit week: FAIL\n")
		ctx.printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.printf("✓ Habit week: OK\n")
	}

	// Check 4: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		ctx.printf("⚠ Backups present: WARNING\n")
		ctx.printf("   %v\n", err)
	} else {
		ctx.printf("✓ Backups present: OK\n")
	}

	// Check 5: clock/timezone sanity
	if err := checkClockTimezone(ctx); err != nil {
		ctx.printf("❌ Clock/timezone: FAIL\n")
		ctx.printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.printf("✓ Clock/timezone: OK\n")
	}

	ctx.printf("\n")
	if hasError {
		ctx.printf("Diagnostics completed with errors.\n")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.printf("All diagnostics passed!\n")
	return nil
}

func checkStorageReachable(ctx *Context) error {
	provider := ctx.Session.Provider()
	if _, err := provider.Load(); err != nil && !stderrors.Is(err, storage.ErrNoSnapshot) {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	if sqliteStore, ok := provider.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSnapshot(ctx *Context) error {
	data, err := ctx.Session.Provider().Load()
	if stderrors.Is(err, storage.ErrNoSnapshot) {
		// nothing saved yet; the seed is used
		return nil
	}
	if err != nil {
		return err
	}
	if _, err := exchange.ParseBackup(data, ctx.now()); err != nil {
		return fmt.Errorf("%w (fields that failed were replaced with defaults on load)", err)
	}
	return nil
}

func checkWeek(ctx *Context) error {
	want := store.WeekAnchor(ctx.now())
	if got := ctx.Session.Snapshot().WeeklyHabits.WeekStart; got != want {
		return fmt.Errorf("habit week starts %s, current week starts %s", got, want)
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	if ctx.Backups == nil {
		return fmt.Errorf("backups are not configured")
	}
	backups, err := ctx.Backups.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'lifehub backup create'")
	}

	return nil
}

func checkClockTimezone(ctx *Context) error {
	now := ctx.now()

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	// Weeks and dates follow the local zone
	if now.Location() == time.UTC {
		ctx.printf("   Note: timezone is UTC\n")
	}

	return nil
}

package backup

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/lifehub/internal/models"
	"github.com/julianstephens/lifehub/internal/storage"
	"github.com/julianstephens/lifehub/internal/store"
)

// TestIntegrationBackupRestoreWorkflow runs backup and restore against a
// SQLite slot and checks the restored state survives a reopen.
func TestIntegrationBackupRestoreWorkflow(t *testing.T) {
	tempDir := t.TempDir()
	clock := func() time.Time { return start }

	// Step 1: Open a session on a fresh database
	provider, err := storage.New("sqlite", tempDir)
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	if err := provider.Init(); err != nil {
		t.Fatalf("failed to init provider: %v", err)
	}
	defer provider.Close()

	sess, err := store.Open(provider, store.WithClock(clock))
	if err != nil {
		t.Fatalf("failed to open session: %v", err)
	}
	if _, err := sess.AddTransaction(store.TransactionDraft{
		Date: "2026-10-15", Type: models.TransactionIncome, Category: "Salary", Amount: decimal.NewFromInt(900),
	}); err != nil {
		t.Fatalf("failed to add transaction: %v", err)
	}

	// Step 2: Create a backup
	mgr := NewManager(tempDir, WithClock(steppingClock(time.Minute)))
	backup1Path, err := mgr.CreateBackup(sess.Snapshot())
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}
	if filepath.Dir(backup1Path) != filepath.Join(tempDir, "backups") {
		t.Errorf("backup written to %s", filepath.Dir(backup1Path))
	}

	// Step 3: Modify the state
	if _, err := sess.AddTransaction(store.TransactionDraft{
		Date: "2026-10-16", Type: models.TransactionExpense, Category: "Rent", Amount: decimal.NewFromInt(650),
	}); err != nil {
		t.Fatalf("failed to add transaction: %v", err)
	}
	if err := sess.SetHabitSlot(models.HabitGym, 4, true); err != nil {
		t.Fatalf("failed to set habit: %v", err)
	}

	// Step 4: Restore the first backup
	if _, err := mgr.RestoreBackup(backup1Path, sess); err != nil {
		t.Fatalf("failed to restore backup: %v", err)
	}

	// Step 5: Reopen from the database and verify the restored state was persisted
	reopened, err := store.Open(provider, store.WithClock(clock))
	if err != nil {
		t.Fatalf("failed to reopen session: %v", err)
	}
	snap := reopened.Snapshot()
	if len(snap.Txns) != 1 || snap.Txns[0].Category != "Salary" {
		t.Errorf("restored txns = %+v, want only the salary", snap.Txns)
	}
	if snap.WeeklyHabits.Gym[4] {
		t.Error("habit set after the backup survived the restore")
	}

	// Step 6: Both the backup and the pre-restore copy are listed
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 2 {
		t.Errorf("expected 2 backups, got %d", len(backups))
	}
}

package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/lifehub/internal/constants"
	"github.com/julianstephens/lifehub/internal/exchange"
	"github.com/julianstephens/lifehub/internal/logger"
	"github.com/julianstephens/lifehub/internal/models"
)

// Timestamp layouts tried in order when reading names back. The date-only
// layout matches files written by `lifehub export json`.
var timestampLayouts = []string{
	"2006-01-02-1504",
	"2006-01-02-150405",
	constants.DateFormat,
}

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
	counter   int
}

// Target is the live state a backup is taken from and restored into.
type Target interface {
	Snapshot() models.Store
	ReplaceStore(data []byte) error
}

// Manager handles backup operations
type Manager struct {
	backupDir  string
	maxBackups int
	now        func() time.Time
}

type Option func(*Manager)

// WithMaxBackups overrides constants.MaxBackups. Values below one are ignored.
func WithMaxBackups(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.maxBackups = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager creates a backup manager storing files under
// <dataDir>/backups.
func NewManager(dataDir string, opts ...Option) *Manager {
	m := &Manager{
		backupDir:  filepath.Join(dataDir, constants.BackupDirName),
		maxBackups: constants.MaxBackups,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// MaxBackups returns how many backups rotation keeps.
func (m *Manager) MaxBackups() int {
	return m.maxBackups
}

// CreateBackup writes s to a new timestamped backup file and rotates old ones.
func (m *Manager) CreateBackup(s models.Store) (string, error) {
	return m.createBackup(s, false)
}

// skipRotation keeps the pre-restore safety copy from evicting the file
// being restored.
func (m *Manager) createBackup(s models.Store, skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	data, err := exchange.MarshalBackup(s)
	if err != nil {
		return "", err
	}

	backupPath, err := m.nextPath()
	if err != nil {
		return "", err
	}

	tempPath := backupPath + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	if err := os.Rename(tempPath, backupPath); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			logger.Warn("Failed to rotate old backups", "error", err)
		}
	}

	logger.Debug("Backup created", "path", backupPath, "bytes", len(data))
	return backupPath, nil
}

// nextPath picks a free file name: minute precision first, then seconds,
// then a numeric counter.
func (m *Manager) nextPath() (string, error) {
	now := m.now()
	name := func(stamp string) string {
		return filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+constants.BackupFileSuffix)
	}

	path := name(now.Format(timestampLayouts[0]))
	if !exists(path) {
		return path, nil
	}

	stamp := now.Format(timestampLayouts[1])
	path = name(stamp)
	for counter := 1; exists(path); counter++ {
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		path = name(fmt.Sprintf("%s-%d", stamp, counter))
	}
	return path, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// parseStamp reads the timestamp and optional collision counter out of a
// backup file name.
func parseStamp(name string) (time.Time, int, bool) {
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), constants.BackupFileSuffix)
	if ts, ok := parseTimestamp(stamp); ok {
		return ts, 0, true
	}

	// Counter suffix: YYYY-MM-DD-HHMMSS-N
	i := strings.LastIndex(stamp, "-")
	if i < 0 {
		return time.Time{}, 0, false
	}
	counter, err := strconv.Atoi(stamp[i+1:])
	if err != nil {
		return time.Time{}, 0, false
	}
	ts, ok := parseTimestamp(stamp[:i])
	return ts, counter, ok
}

func parseTimestamp(stamp string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, stamp, time.Local); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// ListBackups returns a list of all available backups, sorted by timestamp (newest first)
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []BackupInfo{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
			continue
		}

		ts, counter, ok := parseStamp(name)
		if !ok {
			// Skip files with invalid timestamp format
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		backups = append(backups, BackupInfo{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: ts,
			Size:      info.Size(),
			counter:   counter,
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		if !backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Timestamp.After(backups[j].Timestamp)
		}
		return backups[i].counter > backups[j].counter
	})

	return backups, nil
}

// rotateBackups removes old backups beyond the retention limit
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	for i := m.maxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
		logger.Debug("Old backup removed", "path", backups[i].Path)
	}

	return nil
}

// PreserveUnreadable writes a stored document that failed to load, byte for
// byte, next to the backups. These copies are neither listed nor rotated.
func (m *Manager) PreserveUnreadable(raw []byte) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	stamp := m.now().Format(timestampLayouts[1])
	path := filepath.Join(m.backupDir, constants.UnreadablePrefix+stamp+constants.BackupFileSuffix)
	for counter := 1; exists(path); counter++ {
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", constants.UnreadablePrefix, stamp, counter, constants.BackupFileSuffix))
	}

	if err := os.WriteFile(path, raw, 0600); err != nil {
		return "", fmt.Errorf("failed to keep unreadable snapshot: %w", err)
	}
	return path, nil
}

// ReadBackup loads a backup file and checks that it would import cleanly.
func (m *Manager) ReadBackup(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("backup file does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup: %w", err)
	}
	if _, err := exchange.ParseBackup(data, m.now()); err != nil {
		return nil, fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}
	return data, nil
}

// RestoreBackup replaces target's state with the backup at path. The current
// state is saved as a new backup first; its path is returned.
func (m *Manager) RestoreBackup(path string, target Target) (string, error) {
	data, err := m.ReadBackup(path)
	if err != nil {
		return "", err
	}

	current, err := m.createBackup(target.Snapshot(), true)
	if err != nil {
		return "", fmt.Errorf("failed to back up current state before restore: %w", err)
	}
	logger.Info("Saved current state before restore", "path", current)

	return current, target.ReplaceStore(data)
}

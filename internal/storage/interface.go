package storage

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/julianstephens/lifehub/internal/constants"
)

// ErrNoSnapshot is returned by Load when the slot has never been written.
var ErrNoSnapshot = errors.New("no snapshot stored")

// Provider is a durable slot holding exactly one serialized snapshot under
// constants.StorageKey. Save always receives the complete document.
//
// Providers are not safe for concurrent use, and running two lifehub
// processes against the same slot is not supported.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Snapshot slot
	Load() ([]byte, error)
	Save(data []byte) error

	// Utils
	GetConfigPath() string
}

// New returns the provider for driver rooted at dataDir.
func New(driver, dataDir string) (Provider, error) {
	switch driver {
	case constants.StorageJSON, "":
		return NewJSONStore(filepath.Join(dataDir, constants.StorageKey+".json")), nil
	case constants.StorageSQLite:
		return NewSQLiteStore(filepath.Join(dataDir, constants.AppName+".db")), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

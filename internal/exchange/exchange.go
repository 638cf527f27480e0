// Package exchange converts snapshots to and from the files a user can
// export, keep and import.
package exchange

import (
	"strings"
	"time"

	"github.com/julianstephens/lifehub/internal/constants"
	"github.com/julianstephens/lifehub/internal/models"
	"github.com/julianstephens/lifehub/internal/storage"
	"github.com/julianstephens/lifehub/internal/store"
)

// MarshalBackup renders s in the same shape as the persisted snapshot.
func MarshalBackup(s models.Store) ([]byte, error) {
	return storage.Encode(s)
}

// ParseBackup strictly validates an imported backup and returns a complete
// snapshot. Errors wrap errors.ErrMalformedSnapshot.
func ParseBackup(data []byte, now time.Time) (models.Store, error) {
	return store.ParseSnapshot(data, now, store.UUIDGenerator{})
}

func BackupFilename(now time.Time) string {
	return constants.BackupFilePrefix + now.Format(constants.DateFormat) + constants.BackupFileSuffix
}

func CSVFilename(now time.Time) string {
	return constants.CSVFilePrefix + now.Format(constants.DateFormat) + constants.CSVFileSuffix
}

var csvHeader = []string{"date", "type", "category", "amount", "note"}

// TransactionsCSV writes one row per transaction under a fixed header.
// Every text cell is quoted with embedded quotes doubled; amounts are bare
// numbers. Rows are joined by "\n" with no trailing newline.
func TransactionsCSV(txns []models.Transaction) string {
	rows := make([]string, 0, len(txns)+1)

	cells := make([]string, len(csvHeader))
	for i, h := range csvHeader {
		cells[i] = quote(h)
	}
	rows = append(rows, strings.Join(cells, ","))

	for _, t := range txns {
		rows = append(rows, strings.Join([]string{
			quote(t.Date),
			quote(string(t.Type)),
			quote(t.Category),
			t.Amount.String(),
			quote(t.Note),
		}, ","))
	}
	return strings.Join(rows, "\n")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

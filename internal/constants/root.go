package constants

import "time"

const (
	AppName           = "lifehub"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/lifehub/config.yaml"
	DefaultDataDir    = "~/.local/share/lifehub"

	// StorageKey identifies the single persisted snapshot slot
	StorageKey = "lifehub.v2"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Storage drivers
	StorageJSON   = "json"
	StorageSQLite = "sqlite"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "lifehub-backup-"
	BackupFileSuffix = ".json"
	UnreadablePrefix = "lifehub-unreadable-"
	CSVFilePrefix    = "lifehub-transactions-"
	CSVFileSuffix    = ".csv"

	// Weekly habit constants
	DaysPerWeek     = 7
	MinWaterGlasses = 0
	MaxWaterGlasses = 20
	WeeklySwimGoal  = 2
	WeeklyGymGoal   = 2

	// BookSuggestionLimit caps the number of titles returned by SuggestBooks
	BookSuggestionLimit = 4

	// Day is the unit used by the countdown
	Day = 24 * time.Hour
)

// BookPool is the fixed candidate list for reading suggestions, in display order.
var BookPool = []string{
	"So Good They Can't Ignore You",
	"Make Time",
	"The Compound Effect",
	"UltraLearning",
	"Deep Work",
	"Digital Minimalism",
	"The Pragmatic Programmer",
	"Clean Code",
}

// CountdownTarget returns the fixed countdown instant in the given location.
func CountdownTarget(loc *time.Location) time.Time {
	return time.Date(2026, time.November, 1, 0, 0, 0, 0, loc)
}

package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/julianstephens/lifehub/internal/backup"
	"github.com/julianstephens/lifehub/internal/config"
	"github.com/julianstephens/lifehub/internal/constants"
	"github.com/julianstephens/lifehub/internal/derive"
	"github.com/julianstephens/lifehub/internal/errors"
	"github.com/julianstephens/lifehub/internal/logger"
	"github.com/julianstephens/lifehub/internal/store"
)

type Context struct {
	Session    *store.Session
	Backups    *backup.Manager
	Config     *config.Config
	ConfigPath string

	// Out receives command output; nil means stdout.
	Out     io.Writer
	// Confirm asks a yes/no question; nil means an interactive prompt.
	Confirm func(title, description string) (bool, error)
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) confirm(title, description string) (bool, error) {
	if c.Confirm != nil {
		return c.Confirm(title, description)
	}
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	return ok, err
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if c.Backups == nil || (c.Config != nil && !c.Config.Backups.Auto) {
		return
	}
	if _, err := c.Backups.CreateBackup(c.Session.Snapshot()); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// now returns the session clock so output matches what the store records.
func (c *Context) now() time.Time {
	return c.Session.Now()
}

// parseDate accepts YYYY-MM-DD, "today" and "yesterday". Empty means today.
func parseDate(s string, now time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return now.Format(constants.DateFormat), nil
	case "yesterday":
		return now.AddDate(0, 0, -1).Format(constants.DateFormat), nil
	}
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return "", errors.Validationf("invalid date %q (expected YYYY-MM-DD, today or yesterday)", s)
	}
	return s, nil
}

// parseAmount reads a money amount, tolerating a leading pound sign and
// thousands separators.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.NewReplacer("£", "", ",", "", " ", "").Replace(s)
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Decimal{}, errors.Validationf("invalid amount %q", s)
	}
	return d, nil
}

// parseDay resolves a weekly habit slot: a weekday name, an index with
// Monday=0, or "today".
func parseDay(s string, now time.Time) (int, error) {
	part := strings.TrimSpace(strings.ToLower(s))
	if part == "" || part == "today" {
		return derive.TodayIndex(now), nil
	}

	dayMap := map[string]int{
		"mon":       0,
		"monday":    0,
		"tue":       1,
		"tuesday":   1,
		"wed":       2,
		"wednesday": 2,
		"thu":       3,
		"thursday":  3,
		"fri":       4,
		"friday":    4,
		"sat":       5,
		"saturday":  5,
		"sun":       6,
		"sunday":    6,
	}
	if day, ok := dayMap[part]; ok {
		return day, nil
	}

	// Numbers pass through so the store reports out-of-range days
	num, err := strconv.Atoi(part)
	if err != nil {
		return 0, fmt.Errorf("invalid weekday: %s", s)
	}
	return num, nil
}

var weekdayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveID expands a unique id prefix, as printed by list commands, to
// the full id. An unknown prefix is returned unchanged.
func resolveID(prefix string, ids []string) (string, error) {
	var match string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
	}
	for _, id := range ids {
		if strings.HasPrefix(id, prefix) {
			if match != "" {
				return "", errors.Validationf("id prefix %q is ambiguous", prefix)
			}
			match = id
		}
	}
	if match == "" {
		return prefix, nil
	}
	return match, nil
}

// applied reports whether a command's change took effect, possibly with
// only a persistence warning.
func applied(err error) bool {
	return err == nil || errors.IsWarning(err)
}

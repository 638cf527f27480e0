package store

import (
	"time"

	"github.com/julianstephens/lifehub/internal/constants"
	"github.com/julianstephens/lifehub/internal/models"
)

// WeekAnchor returns the Monday of t's week, in t's location, as YYYY-MM-DD.
func WeekAnchor(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0
	monday := time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, t.Location())
	return monday.Format(constants.DateFormat)
}

// Rollover clears the weekly habits when they belong to a different week
// than now. It reports whether a reset happened; the input is not modified.
func Rollover(s models.Store, now time.Time) (models.Store, bool) {
	anchor := WeekAnchor(now)
	if s.WeeklyHabits.WeekStart == anchor {
		return s, false
	}
	next := s.Clone()
	next.WeeklyHabits = models.NewWeeklyHabits(anchor)
	return next, true
}

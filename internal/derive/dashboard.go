package derive

import (
	"time"

	"github.com/julianstephens/lifehub/internal/models"
)

// Overview gathers everything the home screen shows.
type Overview struct {
	Totals          Totals
	Fund            FundProgress
	CountdownDays   int
	CountdownMonths int
	Habits          HabitProgress
	Reading         ReadingGroups
	Suggestions     []string
	OpenTasks       int
	PinnedNotes     []models.Note
	NightShiftMode  bool
}

func Dashboard(s models.Store, now time.Time) Overview {
	days := CountdownDays(now)
	o := Overview{
		Totals:          ComputeTotals(s.Txns),
		Fund:            EmergencyFund(s),
		CountdownDays:   days,
		CountdownMonths: CountdownMonths(days),
		Habits:          HabitSummary(s.WeeklyHabits, TodayIndex(now)),
		Reading:         GroupReading(s.Reading),
		Suggestions:     SuggestBooks(s.Reading),
		NightShiftMode:  s.NightShiftMode,
	}
	for _, t := range s.Tasks {
		if !t.Done {
			o.OpenTasks++
		}
	}
	for _, n := range s.Notes {
		if n.Pinned {
			o.PinnedNotes = append(o.PinnedNotes, n)
		}
	}
	return o
}

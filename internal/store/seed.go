package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/lifehub/internal/constants"
	"github.com/julianstephens/lifehub/internal/models"
)

// Seed returns the snapshot a first run starts from.
func Seed(now time.Time, ids IDGenerator) models.Store {
	task := func(title string, recur models.Recurrence, area models.Area) models.Task {
		return models.Task{ID: ids.NewID(), Title: title, Recur: recur, Area: area}
	}
	book := func(title string, status models.ReadingStatus) models.ReadingItem {
		return models.ReadingItem{ID: ids.NewID(), Title: title, Status: status}
	}

	return models.Store{
		Txns:   []models.Transaction{},
		Health: []models.HealthEntry{},
		Meals:  []models.Meal{},
		Tasks: []models.Task{
			task("Daily WhatsApp call – Mum & Sis", models.RecurrenceDaily, models.AreaLife),
			task("Swim (2x / week)", models.RecurrenceWeekly, models.AreaHealth),
			task("Gym (2x / week)", models.RecurrenceWeekly, models.AreaHealth),
			task("Update GitHub portfolio/screenshots", models.RecurrenceWeekly, models.AreaCareer),
			task("CompTIA A+: 2 hrs study", models.RecurrenceDaily, models.AreaCareer),
		},
		Notes: []models.Note{{
			ID:      ids.NewID(),
			Text:    "Dream: IT Engineer / SysAdmin. ILR by Nov 2026. Healthy • Wealthy • Happy.",
			Pinned:  true,
			Created: now,
		}},
		EmergencyFundTarget: decimal.NewFromInt(constants.DefaultEmergencyFundTarget),
		EmergencyFundName:   constants.DefaultEmergencyFundName,
		NightShiftMode:      constants.DefaultNightShiftMode,
		WeeklyHabits:        models.NewWeeklyHabits(WeekAnchor(now)),
		Reading: []models.ReadingItem{
			book("Clear Thinking", models.ReadingFinished),
			book("The Psychology of Money", models.ReadingFinished),
			book("Atomic Habits", models.ReadingCurrent),
			book("Deep Work", models.ReadingUpcoming),
		},
	}
}

package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/julianstephens/lifehub/internal/constants"
)

type Mood string

const (
	MoodGreat Mood = "😀"
	MoodGood  Mood = "🙂"
	MoodOkay  Mood = "😐"
	MoodLow   Mood = "😕"
	MoodBad   Mood = "😞"
)

// Moods lists the accepted mood symbols from best to worst.
var Moods = []Mood{MoodGreat, MoodGood, MoodOkay, MoodLow, MoodBad}

// HealthEntry is one day's health log. Every metric is optional.
type HealthEntry struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"`
	WeightKg *float64 `json:"weightKg,omitempty"`
	SleepHrs *float64 `json:"sleepHrs,omitempty"`
	Steps    *int     `json:"steps,omitempty"`
	Mood     Mood     `json:"mood,omitempty"`
}

func (h HealthEntry) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.ID, validation.Required),
		validation.Field(&h.Date, validation.Required, validation.Date(constants.DateFormat)),
		validation.Field(&h.Mood, validation.In(MoodGreat, MoodGood, MoodOkay, MoodLow, MoodBad)),
	)
}

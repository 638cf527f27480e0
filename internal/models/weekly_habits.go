package models

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/julianstephens/lifehub/internal/constants"
)

// HabitKind names one of the boolean weekly habit rows.
type HabitKind string

const (
	HabitSwim       HabitKind = "swim"
	HabitGym        HabitKind = "gym"
	HabitCallFamily HabitKind = "callFamily"
)

// HabitKinds lists the boolean habit rows in display order.
var HabitKinds = []HabitKind{HabitCallFamily, HabitSwim, HabitGym}

// ParseHabitKind accepts the persisted names plus a few CLI-friendly aliases.
func ParseHabitKind(s string) (HabitKind, error) {
	switch s {
	case "swim":
		return HabitSwim, nil
	case "gym":
		return HabitGym, nil
	case "callFamily", "call-family", "call", "family":
		return HabitCallFamily, nil
	default:
		return "", fmt.Errorf("unknown habit %q (want swim, gym or call-family)", s)
	}
}

// WeeklyHabits tracks one Monday-anchored week. Index 0 is Monday.
type WeeklyHabits struct {
	WeekStart  string                      `json:"weekStart"` // YYYY-MM-DD, always a Monday
	Gym        [constants.DaysPerWeek]bool `json:"gym"`
	Swim       [constants.DaysPerWeek]bool `json:"swim"`
	Water      [constants.DaysPerWeek]int  `json:"water"` // glasses per day
	CallFamily [constants.DaysPerWeek]bool `json:"callFamily"`
}

// NewWeeklyHabits returns a cleared week anchored at weekStart.
func NewWeeklyHabits(weekStart string) WeeklyHabits {
	return WeeklyHabits{WeekStart: weekStart}
}

// Row returns a pointer to the boolean row for kind, or nil for an unknown kind.
func (w *WeeklyHabits) Row(kind HabitKind) *[constants.DaysPerWeek]bool {
	switch kind {
	case HabitSwim:
		return &w.Swim
	case HabitGym:
		return &w.Gym
	case HabitCallFamily:
		return &w.CallFamily
	default:
		return nil
	}
}

// Count returns how many days of the week have kind checked.
func (w WeeklyHabits) Count(kind HabitKind) int {
	row := w.Row(kind)
	if row == nil {
		return 0
	}
	n := 0
	for _, done := range row {
		if done {
			n++
		}
	}
	return n
}

func (w WeeklyHabits) Validate() error {
	if err := validation.ValidateStruct(&w,
		validation.Field(&w.WeekStart, validation.Required, validation.Date(constants.DateFormat)),
	); err != nil {
		return err
	}
	for i, glasses := range w.Water {
		if glasses < constants.MinWaterGlasses || glasses > constants.MaxWaterGlasses {
			return fmt.Errorf("water[%d]: %d outside %d..%d", i, glasses, constants.MinWaterGlasses, constants.MaxWaterGlasses)
		}
	}
	return nil
}

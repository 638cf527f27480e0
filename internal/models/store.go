package models

import (
	"github.com/shopspring/decimal"
)

// Top-level snapshot field names. They double as the JSON keys of the
// persisted document.
const (
	FieldTxns                = "txns"
	FieldHealth              = "health"
	FieldMeals               = "meals"
	FieldTasks               = "tasks"
	FieldNotes               = "notes"
	FieldEmergencyFundTarget = "emergencyFundTarget"
	FieldEmergencyFundName   = "emergencyFundName"
	FieldNightShiftMode      = "nightShiftMode"
	FieldWeeklyHabits        = "weeklyHabits"
	FieldReading             = "reading"
)

// Store is the aggregate root and the unit of persistence: it is always
// saved and loaded as a whole.
type Store struct {
	Txns                []Transaction   `json:"txns"`
	Health              []HealthEntry   `json:"health"`
	Meals               []Meal          `json:"meals"`
	Tasks               []Task          `json:"tasks"`
	Notes               []Note          `json:"notes"`
	EmergencyFundTarget decimal.Decimal `json:"emergencyFundTarget"`
	EmergencyFundName   string          `json:"emergencyFundName"`
	NightShiftMode      bool            `json:"nightShiftMode"`
	WeeklyHabits        WeeklyHabits    `json:"weeklyHabits"`
	Reading             []ReadingItem   `json:"reading"`
}

// Settings is the user-editable configuration stored on the snapshot.
type Settings struct {
	EmergencyFundTarget decimal.Decimal
	EmergencyFundName   string
	NightShiftMode      bool
}

func (s Store) Settings() Settings {
	return Settings{
		EmergencyFundTarget: s.EmergencyFundTarget,
		EmergencyFundName:   s.EmergencyFundName,
		NightShiftMode:      s.NightShiftMode,
	}
}

// Clone returns a copy of s that shares no mutable memory with it.
func (s Store) Clone() Store {
	c := s
	c.Txns = cloneSlice(s.Txns)
	c.Health = make([]HealthEntry, len(s.Health))
	for i, h := range s.Health {
		c.Health[i] = h.clone()
	}
	c.Meals = make([]Meal, len(s.Meals))
	for i, m := range s.Meals {
		c.Meals[i] = m
		if m.Calories != nil {
			v := *m.Calories
			c.Meals[i].Calories = &v
		}
	}
	c.Tasks = cloneSlice(s.Tasks)
	c.Notes = cloneSlice(s.Notes)
	c.Reading = cloneSlice(s.Reading)
	return c
}

func (h HealthEntry) clone() HealthEntry {
	c := h
	if h.WeightKg != nil {
		v := *h.WeightKg
		c.WeightKg = &v
	}
	if h.SleepHrs != nil {
		v := *h.SleepHrs
		c.SleepHrs = &v
	}
	if h.Steps != nil {
		v := *h.Steps
		c.Steps = &v
	}
	return c
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

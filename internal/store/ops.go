package store

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/lifehub/internal/constants"
	"github.com/julianstephens/lifehub/internal/errors"
	"github.com/julianstephens/lifehub/internal/models"
)

// Every operation in this file is pure: it returns a new snapshot and never
// writes through the slices of its input. Operations addressing a record by
// id treat an unknown id as a no-op.

type TransactionDraft struct {
	Date     string
	Type     models.TransactionType
	Category string
	Amount   decimal.Decimal
	Note     string
}

type HealthDraft struct {
	Date     string
	WeightKg *float64
	SleepHrs *float64
	Steps    *int
	Mood     models.Mood
}

type MealDraft struct {
	Date     string
	MealType models.MealType
	Name     string
	Calories *int
}

type TaskDraft struct {
	Title string
	Due   string
	Recur models.Recurrence
	Area  models.Area
}

type NoteDraft struct {
	Text   string
	Pinned bool
}

type ReadingDraft struct {
	Title  string
	Status models.ReadingStatus
}

// TaskPatch lists the task fields to change. Nil fields are left alone.
type TaskPatch struct {
	Title *string
	Due   *string
	Recur *models.Recurrence
	Area  *models.Area
}

// SettingsPatch lists the settings to change. Nil fields are left alone.
type SettingsPatch struct {
	EmergencyFundTarget *decimal.Decimal
	EmergencyFundName   *string
	NightShiftMode      *bool
}

func invalid(kind string, err error) error {
	return errors.Validationf("%s: %v", kind, err)
}

func prepend[T any](item T, items []T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

func without[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !match(item) {
			out = append(out, item)
		}
	}
	return out
}

func AddTransaction(s models.Store, d TransactionDraft, id string) (models.Store, error) {
	tx := models.Transaction{
		ID:       id,
		Date:     d.Date,
		Type:     d.Type,
		Category: strings.TrimSpace(d.Category),
		Amount:   d.Amount,
		Note:     d.Note,
	}
	if err := tx.Validate(); err != nil {
		return s, invalid("transaction", err)
	}
	s.Txns = prepend(tx, s.Txns)
	return s, nil
}

func AddHealthEntry(s models.Store, d HealthDraft, id string) (models.Store, error) {
	entry := models.HealthEntry{
		ID:       id,
		Date:     d.Date,
		WeightKg: d.WeightKg,
		SleepHrs: d.SleepHrs,
		Steps:    d.Steps,
		Mood:     d.Mood,
	}
	if err := entry.Validate(); err != nil {
		return s, invalid("health entry", err)
	}
	s.Health = prepend(entry, s.Health)
	return s, nil
}

func AddMeal(s models.Store, d MealDraft, id string) (models.Store, error) {
	meal := models.Meal{
		ID:       id,
		Date:     d.Date,
		MealType: d.MealType,
		Name:     strings.TrimSpace(d.Name),
		Calories: d.Calories,
	}
	if meal.MealType == "" {
		meal.MealType = models.MealBreakfast
	}
	if err := meal.Validate(); err != nil {
		return s, invalid("meal", err)
	}
	s.Meals = prepend(meal, s.Meals)
	return s, nil
}

func AddTask(s models.Store, d TaskDraft, id string) (models.Store, error) {
	task := models.Task{
		ID:    id,
		Title: strings.TrimSpace(d.Title),
		Due:   d.Due,
		Recur: d.Recur,
		Area:  d.Area,
	}
	if task.Recur == "" {
		task.Recur = models.RecurrenceNone
	}
	if err := task.Validate(); err != nil {
		return s, invalid("task", err)
	}
	s.Tasks = prepend(task, s.Tasks)
	return s, nil
}

func AddNote(s models.Store, d NoteDraft, id string, now time.Time) (models.Store, error) {
	note := models.Note{
		ID:      id,
		Text:    strings.TrimSpace(d.Text),
		Pinned:  d.Pinned,
		Created: now,
	}
	if err := note.Validate(); err != nil {
		return s, invalid("note", err)
	}
	s.Notes = prepend(note, s.Notes)
	return s, nil
}

func AddReadingItem(s models.Store, d ReadingDraft, id string) (models.Store, error) {
	item := models.ReadingItem{
		ID:     id,
		Title:  strings.TrimSpace(d.Title),
		Status: d.Status,
	}
	if item.Status == "" {
		item.Status = models.ReadingUpcoming
	}
	if err := item.Validate(); err != nil {
		return s, invalid("reading item", err)
	}
	s.Reading = prepend(item, s.Reading)
	return s, nil
}

// updateTask copies the task list and applies fn to the task with id.
func updateTask(s models.Store, id string, fn func(*models.Task)) models.Store {
	tasks := slices.Clone(s.Tasks)
	for i := range tasks {
		if tasks[i].ID == id {
			fn(&tasks[i])
		}
	}
	s.Tasks = tasks
	return s
}

func ToggleTask(s models.Store, id string) models.Store {
	return updateTask(s, id, func(t *models.Task) { t.Done = !t.Done })
}

// UpdateTask applies patch to the task with id. The patched task must still
// validate; otherwise the snapshot is returned unchanged with the error.
func UpdateTask(s models.Store, id string, patch TaskPatch) (models.Store, error) {
	var verr error
	next := updateTask(s, id, func(t *models.Task) {
		c := *t
		if patch.Title != nil {
			c.Title = strings.TrimSpace(*patch.Title)
		}
		if patch.Due != nil {
			c.Due = *patch.Due
		}
		if patch.Recur != nil {
			c.Recur = *patch.Recur
		}
		if patch.Area != nil {
			c.Area = *patch.Area
		}
		if verr = c.Validate(); verr == nil {
			*t = c
		}
	})
	if verr != nil {
		return s, invalid("task", verr)
	}
	return next, nil
}

func DeleteTask(s models.Store, id string) models.Store {
	s.Tasks = without(s.Tasks, func(t models.Task) bool { return t.ID == id })
	return s
}

func DeleteNote(s models.Store, id string) models.Store {
	s.Notes = without(s.Notes, func(n models.Note) bool { return n.ID == id })
	return s
}

func DeleteTransaction(s models.Store, id string) models.Store {
	s.Txns = without(s.Txns, func(t models.Transaction) bool { return t.ID == id })
	return s
}

func DeleteHealthEntry(s models.Store, id string) models.Store {
	s.Health = without(s.Health, func(h models.HealthEntry) bool { return h.ID == id })
	return s
}

func DeleteMeal(s models.Store, id string) models.Store {
	s.Meals = without(s.Meals, func(m models.Meal) bool { return m.ID == id })
	return s
}

func DeleteReadingItem(s models.Store, id string) models.Store {
	s.Reading = without(s.Reading, func(r models.ReadingItem) bool { return r.ID == id })
	return s
}

func TogglePin(s models.Store, id string) models.Store {
	notes := slices.Clone(s.Notes)
	for i := range notes {
		if notes[i].ID == id {
			notes[i].Pinned = !notes[i].Pinned
		}
	}
	s.Notes = notes
	return s
}

func CycleReadingStatus(s models.Store, id string) models.Store {
	items := slices.Clone(s.Reading)
	for i := range items {
		if items[i].ID == id {
			items[i].Status = items[i].Status.Next()
		}
	}
	s.Reading = items
	return s
}

func checkDay(day int) error {
	if day < 0 || day >= constants.DaysPerWeek {
		return fmt.Errorf("%w: %d (want 0-%d, Monday=0)", errors.ErrDayIndex, day, constants.DaysPerWeek-1)
	}
	return nil
}

// SetHabitSlot sets one day of a boolean habit row.
func SetHabitSlot(s models.Store, kind models.HabitKind, day int, value bool) (models.Store, error) {
	if err := checkDay(day); err != nil {
		return s, err
	}
	w := s.WeeklyHabits
	row := w.Row(kind)
	if row == nil {
		return s, errors.Validationf("unknown habit %q", kind)
	}
	row[day] = value
	s.WeeklyHabits = w
	return s, nil
}

// ToggleHabitSlot flips one day of a boolean habit row.
func ToggleHabitSlot(s models.Store, kind models.HabitKind, day int) (models.Store, error) {
	if err := checkDay(day); err != nil {
		return s, err
	}
	row := s.WeeklyHabits.Row(kind)
	if row == nil {
		return s, errors.Validationf("unknown habit %q", kind)
	}
	return SetHabitSlot(s, kind, day, !row[day])
}

func clampWater(n int) int {
	return min(max(n, constants.MinWaterGlasses), constants.MaxWaterGlasses)
}

// AdjustWater adds delta glasses to day, saturating at 0 and 20.
func AdjustWater(s models.Store, day, delta int) (models.Store, error) {
	if err := checkDay(day); err != nil {
		return s, err
	}
	s.WeeklyHabits.Water[day] = clampWater(s.WeeklyHabits.Water[day] + delta)
	return s, nil
}

func UpdateSettings(s models.Store, patch SettingsPatch) (models.Store, error) {
	if patch.EmergencyFundTarget != nil {
		if patch.EmergencyFundTarget.IsNegative() {
			return s, errors.Validationf("emergency fund target must not be negative")
		}
		s.EmergencyFundTarget = *patch.EmergencyFundTarget
	}
	if patch.EmergencyFundName != nil {
		s.EmergencyFundName = *patch.EmergencyFundName
	}
	if patch.NightShiftMode != nil {
		s.NightShiftMode = *patch.NightShiftMode
	}
	return s, nil
}

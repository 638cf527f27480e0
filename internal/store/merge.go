package store

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/lifehub/internal/constants"
	"github.com/julianstephens/lifehub/internal/errors"
	"github.com/julianstephens/lifehub/internal/logger"
	"github.com/julianstephens/lifehub/internal/models"
	"github.com/julianstephens/lifehub/internal/storage"
)

// Mode selects how Reconcile treats a field that is present but malformed.
type Mode int

const (
	// Lenient keeps the base value for a malformed field and logs it.
	// Used when loading the persisted snapshot.
	Lenient Mode = iota
	// Strict rejects the whole document. Used for imports.
	Strict
)

func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "lenient"
}

var errNull = stderrors.New("value is null")

type reconciler struct {
	mode   Mode
	fields map[string]json.RawMessage

	// defaulted holds the fields that kept their base value, either because
	// the document lacks them or because they were rejected.
	defaulted map[string]bool
	rejected  bool
}

// reject either fails the reconciliation or records that the base value was kept.
func (r *reconciler) reject(key string, err error) error {
	if r.mode == Strict {
		return fmt.Errorf("%w: field %q: %v", errors.ErrMalformedSnapshot, key, err)
	}
	logger.Warn("Ignoring malformed snapshot field", "field", key, "error", err)
	r.defaulted[key] = true
	r.rejected = true
	return nil
}

// anyDefaulted reports whether at least one of keys kept its base value.
func (r *reconciler) anyDefaulted(keys ...string) bool {
	for _, key := range keys {
		if r.defaulted[key] {
			return true
		}
	}
	return false
}

// Reconcile overlays the top-level fields of data onto base, one field at a
// time. A field that is present and well-shaped replaces the base value; a
// missing field keeps it. Unknown fields are ignored. A document that is not
// a JSON object is always an error wrapping errors.ErrMalformedSnapshot.
func Reconcile(base models.Store, data []byte, mode Mode) (models.Store, error) {
	out, _, err := reconcile(base, data, mode)
	return out, err
}

func reconcile(base models.Store, data []byte, mode Mode) (models.Store, *reconciler, error) {
	r := &reconciler{mode: mode, defaulted: map[string]bool{}}
	fields, err := storage.DecodeFields(data)
	if err != nil {
		return base, r, fmt.Errorf("%w: %v", errors.ErrMalformedSnapshot, err)
	}
	r.fields = fields
	out := base.Clone()

	steps := []func() error{
		func() error { return decodeList(r, models.FieldTxns, &out.Txns) },
		func() error { return decodeList(r, models.FieldHealth, &out.Health) },
		func() error { return decodeList(r, models.FieldMeals, &out.Meals) },
		func() error { return decodeList(r, models.FieldTasks, &out.Tasks) },
		func() error { return decodeList(r, models.FieldNotes, &out.Notes) },
		func() error { return decodeList(r, models.FieldReading, &out.Reading) },
		func() error {
			return decodeField(r, models.FieldEmergencyFundTarget, &out.EmergencyFundTarget, checkTarget)
		},
		func() error { return decodeField(r, models.FieldEmergencyFundName, &out.EmergencyFundName, nil) },
		func() error { return decodeField(r, models.FieldNightShiftMode, &out.NightShiftMode, nil) },
		func() error { return decodeWeeklyHabits(r, &out.WeeklyHabits) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return base, r, err
		}
	}

	return out, r, nil
}

func decodeField[T any](r *reconciler, key string, dst *T, check func(T) error) error {
	raw, ok := r.fields[key]
	if !ok {
		r.defaulted[key] = true
		return nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return r.reject(key, errNull)
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return r.reject(key, err)
	}
	if check != nil {
		if err := check(v); err != nil {
			return r.reject(key, err)
		}
	}
	*dst = v
	return nil
}

type validatable interface {
	Validate() error
}

// decodeList decodes a collection field. Imports additionally validate every
// element so that enum values and mandatory fields are enforced.
func decodeList[T validatable](r *reconciler, key string, dst *[]T) error {
	var check func([]T) error
	if r.mode == Strict {
		check = func(items []T) error {
			for i, item := range items {
				if err := item.Validate(); err != nil {
					return fmt.Errorf("item %d: %w", i, err)
				}
			}
			return nil
		}
	}
	return decodeField(r, key, dst, check)
}

func checkTarget(d decimal.Decimal) error {
	if d.IsNegative() {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

// weeklyHabitsDoc decodes the weekly record with slices so that arrays of the
// wrong length are detected instead of silently truncated or padded.
type weeklyHabitsDoc struct {
	WeekStart  *string `json:"weekStart"`
	Gym        []bool  `json:"gym"`
	Swim       []bool  `json:"swim"`
	Water      []int   `json:"water"`
	CallFamily []bool  `json:"callFamily"`
}

func decodeWeeklyHabits(r *reconciler, dst *models.WeeklyHabits) error {
	var doc weeklyHabitsDoc
	err := decodeField(r, models.FieldWeeklyHabits, &doc, func(d weeklyHabitsDoc) error {
		if d.WeekStart == nil {
			return fmt.Errorf("weekStart missing")
		}
		rows := []struct {
			name string
			n    int
		}{
			{"gym", len(d.Gym)},
			{"swim", len(d.Swim)},
			{"water", len(d.Water)},
			{"callFamily", len(d.CallFamily)},
		}
		for _, row := range rows {
			if row.n != constants.DaysPerWeek {
				return fmt.Errorf("%s has %d entries, want %d", row.name, row.n, constants.DaysPerWeek)
			}
		}
		if r.mode == Strict {
			return toWeeklyHabits(d).Validate()
		}
		return nil
	})
	if err != nil || doc.WeekStart == nil {
		return err
	}

	w := toWeeklyHabits(doc)
	for i := range w.Water {
		w.Water[i] = clampWater(w.Water[i])
	}
	*dst = w
	return nil
}

func toWeeklyHabits(d weeklyHabitsDoc) models.WeeklyHabits {
	w := models.NewWeeklyHabits(*d.WeekStart)
	copy(w.Gym[:], d.Gym)
	copy(w.Swim[:], d.Swim)
	copy(w.Water[:], d.Water)
	copy(w.CallFamily[:], d.CallFamily)
	return w
}

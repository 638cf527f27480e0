package store

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/julianstephens/lifehub/internal/errors"
	"github.com/julianstephens/lifehub/internal/logger"
	"github.com/julianstephens/lifehub/internal/models"
	"github.com/julianstephens/lifehub/internal/storage"
)

// Session owns the live snapshot and writes it back to its provider after
// every successful mutation. It is the only way presentation code changes
// state.
//
// A Session is not safe for concurrent use.
type Session struct {
	provider storage.Provider
	ids      IDGenerator
	clock    func() time.Time
	recovery func(raw []byte) (string, error)
	current  models.Store
}

type Option func(*Session)

// WithClock replaces time.Now, mainly for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Session) { s.clock = clock }
}

func WithIDGenerator(ids IDGenerator) Option {
	return func(s *Session) { s.ids = ids }
}

// WithRecovery registers fn to keep a copy of a stored document that could
// not be read in full. Open calls it before anything is written over that
// document and returns where the copy went.
func WithRecovery(fn func(raw []byte) (string, error)) Option {
	return func(s *Session) { s.recovery = fn }
}

// Open loads the snapshot from p, falls back to the seeded default when
// there is none, and applies the week rollover once.
//
// Seeded records get new ids on every call, so whenever a seeded collection
// is used in place of a stored one the result is written back at once. A
// document that could not be read in full is also rewritten, after the
// recovery hook (see WithRecovery) has kept a copy of it.
//
// A non-nil error that satisfies errors.IsWarning comes with a usable
// Session: the state is live but could not be written back.
func Open(p storage.Provider, opts ...Option) (*Session, error) {
	s := &Session{
		provider: p,
		ids:      UUIDGenerator{},
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	now := s.clock()
	seed := Seed(now, s.ids)
	dirty, overwrite := false, true

	data, err := p.Load()
	switch {
	case stderrors.Is(err, storage.ErrNoSnapshot):
		logger.Info("No snapshot found, starting from defaults", "path", p.GetConfigPath())
		s.current = seed
		dirty = true
	case err != nil:
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	default:
		loaded, r, err := reconcile(seed, data, Lenient)
		if err != nil {
			logger.Warn("Stored snapshot unreadable, starting from defaults", "error", err)
		}
		s.current = loaded
		damaged := err != nil || r.rejected
		dirty = damaged || r.anyDefaulted(models.FieldTasks, models.FieldNotes, models.FieldReading)

		if damaged {
			// Without a copy, leave the stored document alone until the
			// user changes something.
			overwrite = s.keepCopy(data)
		}
	}

	if next, rolled := Rollover(s.current, now); rolled {
		logger.Info("New week started, weekly habits cleared",
			"previous", s.current.WeeklyHabits.WeekStart, "current", next.WeeklyHabits.WeekStart)
		s.current = next
		dirty = true
	}

	if dirty && overwrite {
		return s, s.persist("open")
	}
	return s, nil
}

// keepCopy hands raw to the recovery hook and reports whether it is safe to
// overwrite the stored document.
func (s *Session) keepCopy(raw []byte) bool {
	if s.recovery == nil {
		return true
	}
	path, err := s.recovery(raw)
	if err != nil {
		logger.Warn("Failed to keep a copy of the unreadable snapshot", "error", err)
		return false
	}
	logger.Info("Kept a copy of the unreadable snapshot", "path", path)
	return true
}

// ParseSnapshot strictly parses an imported document. Fields the document
// omits take their seeded defaults.
func ParseSnapshot(data []byte, now time.Time, ids IDGenerator) (models.Store, error) {
	return Reconcile(Seed(now, ids), data, Strict)
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() models.Store {
	return s.current.Clone()
}

// Now returns the session clock's current time.
func (s *Session) Now() time.Time {
	return s.clock()
}

func (s *Session) Provider() storage.Provider {
	return s.provider
}

func (s *Session) persist(action string) error {
	data, err := storage.Encode(s.current)
	if err == nil {
		err = s.provider.Save(data)
	}
	if err != nil {
		logger.Warn("Failed to persist snapshot", "action", action, "error", err)
		return &errors.PersistWarning{Err: err}
	}
	logger.Debug("Snapshot saved", "action", action, "bytes", len(data))
	return nil
}

// apply runs a pure operation and adopts its result only when it succeeds.
func (s *Session) apply(action string, op func(models.Store) (models.Store, error)) error {
	next, err := op(s.current)
	if err != nil {
		return err
	}
	s.current = next
	return s.persist(action)
}

func (s *Session) applyPure(action string, op func(models.Store) models.Store) error {
	return s.apply(action, func(st models.Store) (models.Store, error) { return op(st), nil })
}

// add allocates an id, runs op and returns the id on success. The id is
// still returned alongside a persistence warning.
func (s *Session) add(action string, op func(models.Store, string) (models.Store, error)) (string, error) {
	id := s.ids.NewID()
	err := s.apply(action, func(st models.Store) (models.Store, error) { return op(st, id) })
	if err != nil && !errors.IsWarning(err) {
		return "", err
	}
	return id, err
}

func (s *Session) AddTransaction(d TransactionDraft) (string, error) {
	return s.add("add transaction", func(st models.Store, id string) (models.Store, error) {
		return AddTransaction(st, d, id)
	})
}

func (s *Session) AddHealthEntry(d HealthDraft) (string, error) {
	return s.add("add health entry", func(st models.Store, id string) (models.Store, error) {
		return AddHealthEntry(st, d, id)
	})
}

func (s *Session) AddMeal(d MealDraft) (string, error) {
	return s.add("add meal", func(st models.Store, id string) (models.Store, error) {
		return AddMeal(st, d, id)
	})
}

func (s *Session) AddTask(d TaskDraft) (string, error) {
	return s.add("add task", func(st models.Store, id string) (models.Store, error) {
		return AddTask(st, d, id)
	})
}

func (s *Session) AddNote(d NoteDraft) (string, error) {
	return s.add("add note", func(st models.Store, id string) (models.Store, error) {
		return AddNote(st, d, id, s.clock())
	})
}

func (s *Session) AddReadingItem(d ReadingDraft) (string, error) {
	return s.add("add reading item", func(st models.Store, id string) (models.Store, error) {
		return AddReadingItem(st, d, id)
	})
}

func (s *Session) ToggleTask(id string) error {
	return s.applyPure("toggle task", func(st models.Store) models.Store { return ToggleTask(st, id) })
}

func (s *Session) UpdateTask(id string, patch TaskPatch) error {
	return s.apply("update task", func(st models.Store) (models.Store, error) { return UpdateTask(st, id, patch) })
}

func (s *Session) DeleteTask(id string) error {
	return s.applyPure("delete task", func(st models.Store) models.Store { return DeleteTask(st, id) })
}

func (s *Session) DeleteNote(id string) error {
	return s.applyPure("delete note", func(st models.Store) models.Store { return DeleteNote(st, id) })
}

func (s *Session) DeleteTransaction(id string) error {
	return s.applyPure("delete transaction", func(st models.Store) models.Store { return DeleteTransaction(st, id) })
}

func (s *Session) DeleteHealthEntry(id string) error {
	return s.applyPure("delete health entry", func(st models.Store) models.Store { return DeleteHealthEntry(st, id) })
}

func (s *Session) DeleteMeal(id string) error {
	return s.applyPure("delete meal", func(st models.Store) models.Store { return DeleteMeal(st, id) })
}

func (s *Session) DeleteReadingItem(id string) error {
	return s.applyPure("delete reading item", func(st models.Store) models.Store { return DeleteReadingItem(st, id) })
}

func (s *Session) TogglePin(id string) error {
	return s.applyPure("toggle pin", func(st models.Store) models.Store { return TogglePin(st, id) })
}

func (s *Session) CycleReadingStatus(id string) error {
	return s.applyPure("cycle reading status", func(st models.Store) models.Store { return CycleReadingStatus(st, id) })
}

func (s *Session) SetHabitSlot(kind models.HabitKind, day int, value bool) error {
	return s.apply("set habit", func(st models.Store) (models.Store, error) { return SetHabitSlot(st, kind, day, value) })
}

func (s *Session) ToggleHabitSlot(kind models.HabitKind, day int) error {
	return s.apply("toggle habit", func(st models.Store) (models.Store, error) { return ToggleHabitSlot(st, kind, day) })
}

func (s *Session) AdjustWater(day, delta int) error {
	return s.apply("adjust water", func(st models.Store) (models.Store, error) { return AdjustWater(st, day, delta) })
}

func (s *Session) UpdateSettings(patch SettingsPatch) error {
	return s.apply("update settings", func(st models.Store) (models.Store, error) { return UpdateSettings(st, patch) })
}

func (s *Session) ToggleNightShift() error {
	on := !s.current.NightShiftMode
	return s.UpdateSettings(SettingsPatch{NightShiftMode: &on})
}

// ReplaceStore imports a complete document. On any parse or validation
// error the current state is left untouched.
func (s *Session) ReplaceStore(data []byte) error {
	return s.apply("import", func(models.Store) (models.Store, error) {
		return ParseSnapshot(data, s.clock(), s.ids)
	})
}

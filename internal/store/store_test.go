package store

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/lifehub/internal/errors"
	"github.com/julianstephens/lifehub/internal/models"
	"github.com/julianstephens/lifehub/internal/storage"
)

// Friday 16 October 2026; its week starts on Monday 12 October.
var testNow = time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func openTest(t *testing.T, initial string) (*Session, *storage.MemoryStore) {
	t.Helper()
	var data []byte
	if initial != "" {
		data = []byte(initial)
	}
	mem := storage.NewMemoryStore(data)
	s, err := Open(mem, WithClock(fixedClock), WithIDGenerator(&SequenceGenerator{}))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s, mem
}

func weeklyJSON(weekStart string, water string) string {
	row := "[false,false,false,false,false,false,false]"
	return fmt.Sprintf(`{"weekStart":%q,"gym":%s,"swim":[true,false,false,false,false,false,false],"water":%s,"callFamily":%s}`,
		weekStart, row, water, row)
}

func TestOpenSeedsEmptySlot(t *testing.T) {
	s, mem := openTest(t, "")

	snap := s.Snapshot()
	if len(snap.Tasks) != 5 {
		t.Errorf("seeded %d tasks, want 5", len(snap.Tasks))
	}
	if len(snap.Notes) != 1 || !snap.Notes[0].Pinned {
		t.Errorf("seeded notes = %+v, want one pinned note", snap.Notes)
	}
	if len(snap.Reading) != 4 || snap.Reading[2].Status != models.ReadingCurrent {
		t.Errorf("seeded reading = %+v", snap.Reading)
	}
	if !snap.EmergencyFundTarget.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("fund target = %s, want 2000", snap.EmergencyFundTarget)
	}
	if snap.EmergencyFundName != "Emergency Fund" || !snap.NightShiftMode {
		t.Errorf("settings = %+v", snap.Settings())
	}
	if snap.WeeklyHabits.WeekStart != "2026-10-12" {
		t.Errorf("weekStart = %q, want 2026-10-12", snap.WeeklyHabits.WeekStart)
	}
	if mem.Saves() != 1 {
		t.Errorf("saves = %d, want 1", mem.Saves())
	}
}

func TestOpenReconcilesPartialSnapshot(t *testing.T) {
	doc := `{
		"txns":[{"id":"t1","date":"2026-10-01","type":"income","category":"Salary","amount":200}],
		"emergencyFundName":"Rainy Day",
		"somethingNew":{"x":1},
		"weeklyHabits":` + weeklyJSON("2026-10-12", "[1,2,3,0,0,0,0]") + `
	}`
	s, mem := openTest(t, doc)

	snap := s.Snapshot()
	if len(snap.Txns) != 1 || !snap.Txns[0].Amount.Equal(decimal.NewFromInt(200)) {
		t.Errorf("txns = %+v, want the stored transaction", snap.Txns)
	}
	if len(snap.Tasks) != 5 {
		t.Errorf("tasks = %d, want seeded defaults for the missing field", len(snap.Tasks))
	}
	if snap.EmergencyFundName != "Rainy Day" {
		t.Errorf("fund name = %q, want Rainy Day", snap.EmergencyFundName)
	}
	if snap.WeeklyHabits.Water[2] != 3 || !snap.WeeklyHabits.Swim[0] {
		t.Errorf("weekly habits not loaded: %+v", snap.WeeklyHabits)
	}
	// tasks, notes and reading came from the seed, so their ids are written
	if mem.Saves() != 1 {
		t.Errorf("saves = %d, want 1", mem.Saves())
	}
}

func TestOpenKeepsDefaultsForMalformedFields(t *testing.T) {
	doc := `{"tasks":"oops","nightShiftMode":false,"emergencyFundTarget":-5,"weeklyHabits":` +
		weeklyJSON("2026-10-12", "[1,2,3]") + `}`
	s, _ := openTest(t, doc)

	snap := s.Snapshot()
	if len(snap.Tasks) != 5 {
		t.Errorf("tasks = %d, want seeded defaults", len(snap.Tasks))
	}
	if snap.NightShiftMode {
		t.Error("well-formed nightShiftMode was not loaded")
	}
	if !snap.EmergencyFundTarget.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("negative target accepted: %s", snap.EmergencyFundTarget)
	}
	if snap.WeeklyHabits.Swim[0] {
		t.Error("weekly habits with a short water row were loaded")
	}
}

func TestOpenClampsStoredWater(t *testing.T) {
	s, _ := openTest(t, `{"weeklyHabits":`+weeklyJSON("2026-10-12", "[25,-1,0,0,0,0,0]")+`}`)

	w := s.Snapshot().WeeklyHabits
	if w.Water[0] != 20 || w.Water[1] != 0 {
		t.Errorf("water = %v, want clamped values", w.Water)
	}
}

func TestOpenNonObjectFallsBackToDefaults(t *testing.T) {
	for _, doc := range []string{`[1,2,3]`, `not json`, `"hello"`} {
		s, _ := openTest(t, doc)
		if got := len(s.Snapshot().Tasks); got != 5 {
			t.Errorf("Open(%q) tasks = %d, want seeded defaults", doc, got)
		}
	}
}

func TestOpenKeepsSeededIDsAcrossSessions(t *testing.T) {
	mem := storage.NewMemoryStore([]byte(`{"weeklyHabits":` + weeklyJSON("2026-10-12", "[0,0,0,0,0,0,0]") + `}`))
	open := func() *Session {
		t.Helper()
		s, err := Open(mem, WithClock(fixedClock))
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		return s
	}

	first := open().Snapshot()
	second := open()
	snap := second.Snapshot()
	if snap.Tasks[0].ID != first.Tasks[0].ID {
		t.Errorf("task id changed between sessions: %s, %s", first.Tasks[0].ID, snap.Tasks[0].ID)
	}
	if snap.Notes[0].ID != first.Notes[0].ID || snap.Reading[0].ID != first.Reading[0].ID {
		t.Error("seeded note or reading ids changed between sessions")
	}
	if mem.Saves() != 1 {
		t.Errorf("saves = %d, want 1", mem.Saves())
	}

	if err := second.ToggleTask(first.Tasks[0].ID); err != nil {
		t.Fatalf("ToggleTask failed: %v", err)
	}
	if !open().Snapshot().Tasks[0].Done {
		t.Error("toggle by an id from an earlier session was lost")
	}
}

func TestOpenKeepsCopyOfDamagedSnapshot(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "bad element", doc: `{"txns":[{"id":"t1","date":"2026-10-01","type":"income","category":"Salary","amount":"abc"}]}`},
		{name: "not json", doc: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := storage.NewMemoryStore([]byte(tt.doc))
			var kept [][]byte
			recovery := func(raw []byte) (string, error) {
				kept = append(kept, raw)
				return "copy.json", nil
			}

			for i := 0; i < 2; i++ {
				if _, err := Open(mem, WithClock(fixedClock), WithRecovery(recovery)); err != nil {
					t.Fatalf("Open failed: %v", err)
				}
			}

			if len(kept) != 1 || string(kept[0]) != tt.doc {
				t.Fatalf("kept copies = %q, want the stored document once", kept)
			}
			if mem.Saves() != 1 {
				t.Errorf("saves = %d, want 1", mem.Saves())
			}
		})
	}
}

func TestOpenLeavesDamagedSnapshotWhenCopyFails(t *testing.T) {
	doc := `{"tasks":"oops"}`
	mem := storage.NewMemoryStore([]byte(doc))
	recovery := func(raw []byte) (string, error) { return "", stderrors.New("disk full") }

	s, err := Open(mem, WithClock(fixedClock), WithRecovery(recovery))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if len(s.Snapshot().Tasks) != 5 {
		t.Errorf("tasks = %d, want seeded defaults in memory", len(s.Snapshot().Tasks))
	}
	if mem.Saves() != 0 {
		t.Errorf("saves = %d, want the stored document untouched", mem.Saves())
	}
	stored, _ := mem.Load()
	if string(stored) != doc {
		t.Errorf("stored = %s, want %s", stored, doc)
	}
}

func TestOpenLoadError(t *testing.T) {
	if _, err := Open(failingProvider{storage.NewMemoryStore(nil)}); err == nil {
		t.Error("Open succeeded with an unreadable slot")
	}
}

type failingProvider struct{ *storage.MemoryStore }

func (failingProvider) Load() ([]byte, error) { return nil, stderrors.New("disk on fire") }

func TestWeekRollover(t *testing.T) {
	tests := []struct {
		name      string
		weekStart string
		wantReset bool
	}{
		{name: "stale week", weekStart: "2026-10-05", wantReset: true},
		{name: "future week", weekStart: "2026-10-19", wantReset: true},
		{name: "current week", weekStart: "2026-10-12", wantReset: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mem := openTest(t, `{"tasks":[],"notes":[],"reading":[],"weeklyHabits":`+
				weeklyJSON(tt.weekStart, "[4,0,0,0,0,0,0]")+`}`)

			w := s.Snapshot().WeeklyHabits
			if w.WeekStart != "2026-10-12" {
				t.Errorf("weekStart = %q, want 2026-10-12", w.WeekStart)
			}
			reset := !w.Swim[0] && w.Water[0] == 0
			if reset != tt.wantReset {
				t.Errorf("reset = %v, want %v (habits %+v)", reset, tt.wantReset, w)
			}
			wantSaves := 0
			if tt.wantReset {
				wantSaves = 1
			}
			if mem.Saves() != wantSaves {
				t.Errorf("saves = %d, want %d", mem.Saves(), wantSaves)
			}
		})
	}
}

func TestWeekAnchor(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Skipf("time zone data unavailable: %v", err)
	}

	tests := []struct {
		at   time.Time
		want string
	}{
		{time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), "2026-10-12"},
		{time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC), "2026-10-12"},
		{time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), "2026-10-19"},
		{time.Date(2026, 11, 1, 8, 0, 0, 0, london), "2026-10-26"},
		{time.Date(2027, 1, 2, 12, 0, 0, 0, time.UTC), "2026-12-28"},
	}

	for _, tt := range tests {
		if got := WeekAnchor(tt.at); got != tt.want {
			t.Errorf("WeekAnchor(%v) = %q, want %q", tt.at, got, tt.want)
		}
	}
}

func TestAddTransactionValidation(t *testing.T) {
	s, mem := openTest(t, "")
	before := mem.Saves()

	drafts := []TransactionDraft{
		{Date: "2026-10-16", Type: models.TransactionExpense, Category: "Food"},
		{Date: "2026-10-16", Type: models.TransactionExpense, Category: "Food", Amount: decimal.Zero},
		{Date: "", Type: models.TransactionExpense, Category: "Food", Amount: decimal.NewFromInt(3)},
		{Date: "2026-10-16", Type: models.TransactionExpense, Category: "  ", Amount: decimal.NewFromInt(3)},
	}
	for _, d := range drafts {
		if _, err := s.AddTransaction(d); !stderrors.Is(err, errors.ErrValidation) {
			t.Errorf("AddTransaction(%+v) error = %v, want ErrValidation", d, err)
		}
	}

	if len(s.Snapshot().Txns) != 0 {
		t.Error("rejected transactions changed the store")
	}
	if mem.Saves() != before {
		t.Error("rejected transactions were persisted")
	}
}

func TestAddPrependsAndPersists(t *testing.T) {
	s, mem := openTest(t, "")

	first, err := s.AddTask(TaskDraft{Title: "  File taxes  ", Area: models.AreaFinance})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	second, err := s.AddTask(TaskDraft{Title: "Book dentist"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	tasks := s.Snapshot().Tasks
	if tasks[0].ID != second || tasks[1].ID != first {
		t.Errorf("tasks not most-recent-first: %s, %s", tasks[0].ID, tasks[1].ID)
	}
	if tasks[1].Title != "File taxes" || tasks[1].Recur != models.RecurrenceNone || tasks[1].Done {
		t.Errorf("new task = %+v", tasks[1])
	}

	reopened, err := Open(mem, WithClock(fixedClock))
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if len(reopened.Snapshot().Tasks) != 7 {
		t.Errorf("reopened tasks = %d, want 7", len(reopened.Snapshot().Tasks))
	}
}

func TestAddDefaults(t *testing.T) {
	s, _ := openTest(t, "")

	if _, err := s.AddMeal(MealDraft{Date: "2026-10-16", Name: "Porridge"}); err != nil {
		t.Fatalf("AddMeal failed: %v", err)
	}
	if _, err := s.AddMeal(MealDraft{Date: "2026-10-16"}); !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("AddMeal without name error = %v, want ErrValidation", err)
	}
	if _, err := s.AddReadingItem(ReadingDraft{Title: "Range"}); err != nil {
		t.Fatalf("AddReadingItem failed: %v", err)
	}
	if _, err := s.AddNote(NoteDraft{Text: "  "}); !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("AddNote with blank text error = %v, want ErrValidation", err)
	}
	if _, err := s.AddNote(NoteDraft{Text: "call the bank"}); err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}
	if _, err := s.AddHealthEntry(HealthDraft{Date: "2026-10-16", Mood: "🤖"}); !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("AddHealthEntry with unknown mood error = %v, want ErrValidation", err)
	}

	snap := s.Snapshot()
	if snap.Meals[0].MealType != models.MealBreakfast {
		t.Errorf("meal type = %q, want Breakfast", snap.Meals[0].MealType)
	}
	if snap.Reading[0].Status != models.ReadingUpcoming {
		t.Errorf("reading status = %q, want upcoming", snap.Reading[0].Status)
	}
	if !snap.Notes[0].Created.Equal(testNow) || snap.Notes[0].Pinned {
		t.Errorf("note = %+v", snap.Notes[0])
	}
}

func TestUnknownIDIsNoOp(t *testing.T) {
	s, _ := openTest(t, "")
	before := s.Snapshot()

	ops := []func(string) error{
		s.ToggleTask, s.DeleteTask, s.DeleteNote, s.TogglePin, s.CycleReadingStatus,
		s.DeleteTransaction, s.DeleteMeal, s.DeleteHealthEntry, s.DeleteReadingItem,
	}
	for _, op := range ops {
		if err := op("missing"); err != nil {
			t.Errorf("op on unknown id returned %v", err)
		}
	}
	title := "x"
	if err := s.UpdateTask("missing", TaskPatch{Title: &title}); err != nil {
		t.Errorf("UpdateTask on unknown id returned %v", err)
	}

	if !sameEncoding(t, before, s.Snapshot()) {
		t.Error("operations on unknown ids changed the store")
	}
}

func TestUpdateTask(t *testing.T) {
	s, _ := openTest(t, "")
	id, _ := s.AddTask(TaskDraft{Title: "Renew passport"})

	due := "2026-10-30"
	area := models.AreaLife
	if err := s.UpdateTask(id, TaskPatch{Due: &due, Area: &area}); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	got := s.Snapshot().Tasks[0]
	if got.Due != due || got.Area != area || got.Title != "Renew passport" {
		t.Errorf("updated task = %+v", got)
	}

	blank := "   "
	if err := s.UpdateTask(id, TaskPatch{Title: &blank}); !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("UpdateTask with blank title error = %v, want ErrValidation", err)
	}
	if s.Snapshot().Tasks[0].Title != "Renew passport" {
		t.Error("rejected patch changed the task")
	}
}

func TestTogglesAndPins(t *testing.T) {
	s, _ := openTest(t, "")
	snap := s.Snapshot()
	taskID, noteID := snap.Tasks[0].ID, snap.Notes[0].ID

	_ = s.ToggleTask(taskID)
	_ = s.TogglePin(noteID)
	snap = s.Snapshot()
	if !snap.Tasks[0].Done || snap.Notes[0].Pinned {
		t.Errorf("toggle results: done=%v pinned=%v", snap.Tasks[0].Done, snap.Notes[0].Pinned)
	}

	_ = s.DeleteTask(taskID)
	if len(s.Snapshot().Tasks) != 4 {
		t.Errorf("tasks after delete = %d, want 4", len(s.Snapshot().Tasks))
	}
}

func TestHabitDayIndex(t *testing.T) {
	s, _ := openTest(t, "")

	for _, day := range []int{-1, 7, 100} {
		if err := s.AdjustWater(day, 1); !stderrors.Is(err, errors.ErrDayIndex) {
			t.Errorf("AdjustWater(%d) error = %v, want ErrDayIndex", day, err)
		}
		if err := s.SetHabitSlot(models.HabitSwim, day, true); !stderrors.Is(err, errors.ErrDayIndex) {
			t.Errorf("SetHabitSlot(%d) error = %v, want ErrDayIndex", day, err)
		}
	}

	if err := s.SetHabitSlot(models.HabitKind("yoga"), 0, true); !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("SetHabitSlot(yoga) error = %v, want ErrValidation", err)
	}

	if err := s.ToggleHabitSlot(models.HabitGym, 4); err != nil {
		t.Fatalf("ToggleHabitSlot failed: %v", err)
	}
	if !s.Snapshot().WeeklyHabits.Gym[4] {
		t.Error("gym slot not toggled on")
	}
	if err := s.ToggleHabitSlot(models.HabitGym, 4); err != nil {
		t.Fatalf("ToggleHabitSlot failed: %v", err)
	}
	if s.Snapshot().WeeklyHabits.Gym[4] {
		t.Error("gym slot not toggled off")
	}
}

func TestSettings(t *testing.T) {
	s, _ := openTest(t, "")

	neg := decimal.NewFromInt(-1)
	if err := s.UpdateSettings(SettingsPatch{EmergencyFundTarget: &neg}); !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("negative target error = %v, want ErrValidation", err)
	}

	target := decimal.NewFromInt(5000)
	name := "House"
	if err := s.UpdateSettings(SettingsPatch{EmergencyFundTarget: &target, EmergencyFundName: &name}); err != nil {
		t.Fatalf("UpdateSettings failed: %v", err)
	}
	if err := s.ToggleNightShift(); err != nil {
		t.Fatalf("ToggleNightShift failed: %v", err)
	}

	got := s.Snapshot().Settings()
	if !got.EmergencyFundTarget.Equal(target) || got.EmergencyFundName != "House" || got.NightShiftMode {
		t.Errorf("settings = %+v", got)
	}
}

func TestPersistFailureKeepsStateLive(t *testing.T) {
	s, mem := openTest(t, "")
	mem.SaveErr = stderrors.New("quota exceeded")

	id, err := s.AddTask(TaskDraft{Title: "Still here"})
	if !errors.IsWarning(err) {
		t.Fatalf("AddTask error = %v, want a persist warning", err)
	}
	if id == "" {
		t.Error("AddTask returned no id alongside the warning")
	}
	if s.Snapshot().Tasks[0].Title != "Still here" {
		t.Error("mutation was rolled back after a failed save")
	}
}

func TestReplaceStore(t *testing.T) {
	src, _ := openTest(t, "")
	if _, err := src.AddTransaction(TransactionDraft{
		Date: "2026-10-15", Type: models.TransactionExpense, Category: "Food \"& drink\"",
		Amount: decimal.RequireFromString("12.50"), Note: "lunch",
	}); err != nil {
		t.Fatalf("AddTransaction failed: %v", err)
	}
	_ = src.AdjustWater(3, 6)
	exported, err := storage.Encode(src.Snapshot())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	dst, mem := openTest(t, "")
	saves := mem.Saves()
	if err := dst.ReplaceStore(exported); err != nil {
		t.Fatalf("ReplaceStore failed: %v", err)
	}
	if !sameEncoding(t, src.Snapshot(), dst.Snapshot()) {
		t.Error("imported store differs from the exported one")
	}
	if mem.Saves() != saves+1 {
		t.Errorf("saves = %d, want %d", mem.Saves(), saves+1)
	}
}

func TestReplaceStoreRejectsMalformed(t *testing.T) {
	docs := map[string]string{
		"not an object":    `[]`,
		"broken json":      `{"txns":[`,
		"short water row":  `{"weeklyHabits":` + weeklyJSON("2026-10-12", "[1,2]") + `}`,
		"too much water":   `{"weeklyHabits":` + weeklyJSON("2026-10-12", "[21,0,0,0,0,0,0]") + `}`,
		"wrong field type": `{"tasks":{"id":"x"}}`,
		"bad enum":         `{"reading":[{"id":"r","title":"Dune","status":"abandoned"}]}`,
		"zero amount":      `{"txns":[{"id":"t","date":"2026-10-01","type":"expense","category":"x","amount":0}]}`,
		"null list":        `{"notes":null}`,
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			s, _ := openTest(t, "")
			before := s.Snapshot()

			err := s.ReplaceStore([]byte(doc))
			if !stderrors.Is(err, errors.ErrMalformedSnapshot) {
				t.Fatalf("ReplaceStore error = %v, want ErrMalformedSnapshot", err)
			}
			if !sameEncoding(t, before, s.Snapshot()) {
				t.Error("rejected import changed the store")
			}
		})
	}
}

func TestPureOpsDoNotAliasInput(t *testing.T) {
	base := Seed(testNow, &SequenceGenerator{})
	id := base.Tasks[0].ID

	_ = ToggleTask(base, id)
	_ = DeleteTask(base, id)
	_ = CycleReadingStatus(base, base.Reading[0].ID)
	_, _ = AdjustWater(base, 0, 3)

	if base.Tasks[0].Done || len(base.Tasks) != 5 {
		t.Error("task operations wrote through to the input")
	}
	if base.Reading[0].Status != models.ReadingFinished {
		t.Error("cycle wrote through to the input")
	}
	if base.WeeklyHabits.Water[0] != 0 {
		t.Error("water adjustment wrote through to the input")
	}
}

func TestSequenceGenerator(t *testing.T) {
	g := &SequenceGenerator{Prefix: "task"}
	if a, b := g.NewID(), g.NewID(); a != "task-1" || b != "task-2" {
		t.Errorf("ids = %s, %s", a, b)
	}
	if id := (UUIDGenerator{}).NewID(); len(id) != 36 || strings.Count(id, "-") != 4 {
		t.Errorf("UUIDGenerator id = %q", id)
	}
}

func sameEncoding(t *testing.T, a, b models.Store) bool {
	t.Helper()
	ea, err := storage.Encode(a)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	eb, err := storage.Encode(b)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return string(ea) == string(eb)
}

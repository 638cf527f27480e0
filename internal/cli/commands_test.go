package cli

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/julianstephens/lifehub/internal/errors"
	"github.com/julianstephens/lifehub/internal/models"
)

func TestTxnCommands(t *testing.T) {
	env := setupTestContext(t)

	out := env.run(t, &TxnAddCmd{Amount: "£200", Type: "income", Category: "Salary", Date: "today"})
	if want := "Added income: £200.00 Salary (ID: id-11)\n"; out != want {
		t.Errorf("add output = %q, want %q", out, want)
	}
	env.run(t, &TxnAddCmd{Amount: "50", Type: "expense", Category: "Food", Date: "yesterday", Note: "groceries"})

	out = env.run(t, &TxnListCmd{})
	for _, want := range []string{"+£200.00", "-£50.00", "2026-10-15", "(groceries)", "Income £200.00 • Spend £50.00 • Net £150.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}

	out = env.run(t, &TxnListCmd{Limit: 1})
	if strings.Contains(out, "Salary") {
		t.Errorf("limit 1 should only show the newest transaction:\n%s", out)
	}

	env.run(t, &TxnDeleteCmd{ID: "id-12"})
	txns := env.ctx.Session.Snapshot().Txns
	if len(txns) != 1 || txns[0].ID != "id-11" {
		t.Errorf("txns after delete = %+v", txns)
	}
}

func TestTxnAddRejectsBadInput(t *testing.T) {
	env := setupTestContext(t)

	tests := []struct {
		name string
		cmd  *TxnAddCmd
	}{
		{"zero amount", &TxnAddCmd{Amount: "0", Type: "expense", Category: "Food"}},
		{"not a number", &TxnAddCmd{Amount: "lots", Type: "expense", Category: "Food"}},
		{"bad date", &TxnAddCmd{Amount: "5", Type: "expense", Category: "Food", Date: "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Run(env.ctx)
			if !stderrors.Is(err, errors.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
	if n := len(env.ctx.Session.Snapshot().Txns); n != 0 {
		t.Errorf("txns = %d, want none", n)
	}
}

func TestAddWithPersistWarning(t *testing.T) {
	env := setupTestContext(t)
	env.mem.SaveErr = stderrors.New("disk full")

	err := (&TxnAddCmd{Amount: "5", Type: "expense", Category: "Coffee"}).Run(env.ctx)
	if !errors.IsWarning(err) {
		t.Fatalf("expected persist warning, got %v", err)
	}
	if !strings.Contains(env.out.String(), "Added expense") {
		t.Errorf("change should still be reported, got %q", env.out.String())
	}
	if n := len(env.ctx.Session.Snapshot().Txns); n != 1 {
		t.Errorf("txns = %d, want 1 kept in memory", n)
	}
}

func TestHealthCommands(t *testing.T) {
	env := setupTestContext(t)

	env.run(t, &HealthAddCmd{Date: "today", Weight: 82.5, Steps: 9000, Mood: "good"})
	env.run(t, &HealthAddCmd{Date: "2026-10-14", Mood: "😞"})

	entries := env.ctx.Session.Snapshot().Health
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	first := entries[1]
	if first.WeightKg == nil || *first.WeightKg != 82.5 || first.SleepHrs != nil || first.Mood != models.MoodGood {
		t.Errorf("entry = %+v", first)
	}

	out := env.run(t, &HealthListCmd{})
	for _, want := range []string{"82.5 kg", "9000 steps", "🙂", "😞"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}

	if err := (&HealthAddCmd{Mood: "grumpy"}).Run(env.ctx); !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("unknown mood: expected validation error, got %v", err)
	}

	env.run(t, &HealthDeleteCmd{ID: entries[0].ID})
	if n := len(env.ctx.Session.Snapshot().Health); n != 1 {
		t.Errorf("entries after delete = %d, want 1", n)
	}
}

func TestMealCommands(t *testing.T) {
	env := setupTestContext(t)

	env.run(t, &MealAddCmd{Name: "Porridge", Type: "Breakfast", Calories: 350, Date: "today"})
	out := env.run(t, &MealListCmd{})
	if !strings.Contains(out, "Porridge (350 kcal)") {
		t.Errorf("list output = %q", out)
	}

	if err := (&MealAddCmd{Name: "  ", Type: "Lunch"}).Run(env.ctx); !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("blank name: expected validation error, got %v", err)
	}

	env.run(t, &MealDeleteCmd{ID: "id-11"})
	out = env.run(t, &MealListCmd{})
	if out != "No meals found\n" {
		t.Errorf("list after delete = %q", out)
	}
}

func TestTaskCommands(t *testing.T) {
	env := setupTestContext(t)

	env.run(t, &TaskAddCmd{Title: "Renew passport", Due: "2026-11-01", Recur: "none", Area: "Life"})

	out := env.run(t, &TaskDoneCmd{ID: "id-11"})
	if out != "Marked \"Renew passport\" done\n" {
		t.Errorf("done output = %q", out)
	}

	out = env.run(t, &TaskListCmd{})
	if strings.Contains(out, "Renew passport") {
		t.Errorf("done task listed without --all:\n%s", out)
	}
	out = env.run(t, &TaskListCmd{All: true, Area: "Life"})
	if !strings.Contains(out, "[x] id-11") || !strings.Contains(out, "due 2026-11-01") {
		t.Errorf("list --all output:\n%s", out)
	}

	title := "Renew passport online"
	clear := ""
	area := "Finance"
	env.run(t, &TaskEditCmd{ID: "id-11", Title: &title, Due: &clear, Area: &area})
	task := env.ctx.Session.Snapshot().Tasks[0]
	if task.Title != title || task.Due != "" || task.Area != models.AreaFinance || !task.Done {
		t.Errorf("edited task = %+v", task)
	}

	bad := "Hobbies"
	if err := (&TaskEditCmd{ID: "id-11", Area: &bad}).Run(env.ctx); !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("bad area: expected validation error, got %v", err)
	}

	env.run(t, &TaskDeleteCmd{ID: "id-11"})
	env.run(t, &TaskDeleteCmd{ID: "id-11"}) // deleting twice is fine
	if n := len(env.ctx.Session.Snapshot().Tasks); n != 5 {
		t.Errorf("tasks = %d, want the 5 seeded", n)
	}
}

func TestNoteCommands(t *testing.T) {
	env := setupTestContext(t)

	env.run(t, &NoteAddCmd{Text: "Call the landlord"})

	out := env.run(t, &NotePinCmd{ID: "id-11"})
	if out != "Pinned note id-11\n" {
		t.Errorf("pin output = %q", out)
	}
	out = env.run(t, &NotePinCmd{ID: "id-11"})
	if out != "Unpinned note id-11\n" {
		t.Errorf("unpin output = %q", out)
	}

	out = env.run(t, &NoteListCmd{})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "* id-6") || !strings.Contains(lines[1], "Call the landlord") {
		t.Errorf("pinned notes should come first:\n%s", out)
	}

	env.run(t, &NoteDeleteCmd{ID: "id-11"})
	if n := len(env.ctx.Session.Snapshot().Notes); n != 1 {
		t.Errorf("notes = %d, want 1", n)
	}
}

func TestReadingCommands(t *testing.T) {
	env := setupTestContext(t)

	out := env.run(t, &ReadingListCmd{})
	for _, want := range []string{"Currently reading:\n  id-9  Atomic Habits", "Suggestions:\n  So Good They Can't Ignore You"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}

	env.run(t, &ReadingAddCmd{Title: "make time", Status: "upcoming"})
	out = env.run(t, &ReadingListCmd{})
	if strings.Contains(out, "  Make Time\n") {
		t.Errorf("suggestions should skip titles already listed:\n%s", out)
	}

	out = env.run(t, &ReadingCycleCmd{ID: "id-9"})
	if out != "\"Atomic Habits\" is now upcoming\n" {
		t.Errorf("cycle output = %q", out)
	}

	env.run(t, &ReadingDeleteCmd{ID: "id-11"})
	if n := len(env.ctx.Session.Snapshot().Reading); n != 4 {
		t.Errorf("reading items = %d, want 4", n)
	}
}

func TestHabitCommands(t *testing.T) {
	env := setupTestContext(t)

	out := env.run(t, &HabitToggleCmd{Habit: "swim", Day: "mon"})
	if out != "Swim on Mon: done\n" {
		t.Errorf("toggle output = %q", out)
	}
	env.run(t, &HabitSetCmd{Habit: "call-family", Day: "today"})
	env.run(t, &HabitSetCmd{Habit: "gym", Day: "2", Off: true})

	w := env.ctx.Session.Snapshot().WeeklyHabits
	if !w.Swim[0] || !w.CallFamily[4] || w.Gym[2] {
		t.Errorf("habits = %+v", w)
	}

	out = env.run(t, &HabitShowCmd{})
	if !strings.Contains(out, "Week of 2026-10-12") || !strings.Contains(out, "Swim 1/2 • Gym 0/2 • Water today 0") {
		t.Errorf("show output:\n%s", out)
	}

	err := (&HabitToggleCmd{Habit: "swim", Day: "9"}).Run(env.ctx)
	if !stderrors.Is(err, errors.ErrDayIndex) {
		t.Errorf("day 9: expected ErrDayIndex, got %v", err)
	}
	if err := (&HabitToggleCmd{Habit: "yoga", Day: "today"}).Run(env.ctx); !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("unknown habit: expected validation error, got %v", err)
	}
}

func TestWaterCommands(t *testing.T) {
	env := setupTestContext(t)

	out := env.run(t, &WaterAdjustCmd{Glasses: 3, Day: "today"})
	if out != "Water on Fri: 3/20 glasses\n" {
		t.Errorf("add output = %q", out)
	}
	env.run(t, &WaterAdjustCmd{Glasses: 30, Day: "today"})
	if got := env.ctx.Session.Snapshot().WeeklyHabits.Water[4]; got != 20 {
		t.Errorf("water = %d, want clamped to 20", got)
	}
	env.run(t, &WaterRemoveCmd{Glasses: 25, Day: "fri"})
	if got := env.ctx.Session.Snapshot().WeeklyHabits.Water[4]; got != 0 {
		t.Errorf("water = %d, want clamped to 0", got)
	}
}

func TestSettingsCommands(t *testing.T) {
	env := setupTestContext(t)

	out := env.run(t, &SettingsShowCmd{})
	for _, want := range []string{"Emergency Fund", "£2,000.00", "Night-shift mode: on"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}

	env.run(t, &SettingsSetCmd{FundTarget: "£3,500", FundName: "Rainy Day", NightShift: "off"})
	s := env.ctx.Session.Snapshot().Settings()
	if s.EmergencyFundTarget.String() != "3500" || s.EmergencyFundName != "Rainy Day" || s.NightShiftMode {
		t.Errorf("settings = %+v", s)
	}

	out = env.run(t, &SettingsNightShiftCmd{})
	if out != "Night-shift mode on\n" {
		t.Errorf("toggle output = %q", out)
	}

	if err := (&SettingsSetCmd{}).Run(env.ctx); !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("empty set: expected validation error, got %v", err)
	}
	if err := (&SettingsSetCmd{NightShift: "sometimes"}).Run(env.ctx); !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("bad on/off: expected validation error, got %v", err)
	}
}

func TestSummaryCmd(t *testing.T) {
	env := setupTestContext(t)
	env.run(t, &TxnAddCmd{Amount: "500", Type: "income", Category: "Salary"})

	out := env.run(t, &SummaryCmd{})
	for _, want := range []string{
		"Countdown: 16 days (~1 months)",
		"Night-shift mode is on",
		"Emergency Fund: £500.00 of £2,000.00 (25%)",
		"Swim 0/2 • Gym 0/2 • Water today 0",
		"Tasks: 5 open",
		"Atomic Habits",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

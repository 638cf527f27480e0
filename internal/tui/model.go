package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifehub/internal/derive"
	"github.com/julianstephens/lifehub/internal/errors"
	"github.com/julianstephens/lifehub/internal/models"
	"github.com/julianstephens/lifehub/internal/store"
	"github.com/julianstephens/lifehub/internal/tui/components/habits"
	"github.com/julianstephens/lifehub/internal/tui/components/overview"
	"github.com/julianstephens/lifehub/internal/tui/components/tasklist"
)

type SessionState int

const (
	StateHome SessionState = iota
	StateTasks
	StateHabits
	StateAddTask
	StateConfirmDelete
)

// tabTitles lines up with the first SessionState values.
var tabTitles = []string{"Home", "Tasks", "Habits"}

type TaskFormModel struct {
	Title string
	Due   string
	Area  models.Area
	Recur models.Recurrence
}

type Model struct {
	session        *store.Session
	state          SessionState
	keys           KeyMap
	help           help.Model
	overview       overview.Model
	taskList       tasklist.Model
	habitGrid      habits.Model
	form           *huh.Form
	taskForm       *TaskFormModel
	taskToDeleteID string
	status         string
	quitting       bool
	width          int
	height         int
}

func NewModel(session *store.Session) Model {
	snap := session.Snapshot()
	today := derive.TodayIndex(session.Now())

	m := Model{
		session:   session,
		state:     StateHome,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		overview:  overview.New(0, 0),
		taskList:  tasklist.New(snap.Tasks, 0, 0),
		habitGrid: habits.New(snap.WeeklyHabits, today),
	}
	m.overview.SetOverview(derive.Dashboard(snap, session.Now()))
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateHome:
		keys = append(keys, m.keys.CallFamily, m.keys.Swim, m.keys.Gym, m.keys.Water, m.keys.NightShift)
	case StateTasks:
		tk := tasklist.DefaultKeyMap()
		keys = append(keys, tk.Add, tk.Toggle, tk.Delete)
	case StateHabits:
		hk := m.habitGrid.Keys()
		keys = append(keys, hk.Toggle, hk.WaterUp, hk.WaterDown)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}

	var actions []key.Binding
	switch m.state {
	case StateHome:
		actions = []key.Binding{m.keys.CallFamily, m.keys.Swim, m.keys.Gym, m.keys.Water, m.keys.NightShift}
	case StateTasks:
		tk := tasklist.DefaultKeyMap()
		actions = []key.Binding{tk.Add, tk.Toggle, tk.Delete}
	case StateHabits:
		hk := m.habitGrid.Keys()
		actions = []key.Binding{hk.Up, hk.Down, hk.Left, hk.Right, hk.Toggle, hk.WaterUp, hk.WaterDown}
	}

	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh reloads every component from the session after a change.
func (m *Model) refresh() {
	snap := m.session.Snapshot()
	now := m.session.Now()
	m.overview.SetOverview(derive.Dashboard(snap, now))
	m.taskList.SetTasks(snap.Tasks)
	m.habitGrid.SetWeek(snap.WeeklyHabits, derive.TodayIndex(now))
}

// report shows the outcome of a session command in the status line.
func (m *Model) report(err error) {
	switch {
	case err == nil:
		m.status = ""
	case errors.IsWarning(err):
		m.status = warnStyle.Render(errors.Format(err))
	default:
		m.status = dangerStyle.Render(errors.Format(err))
	}
	m.refresh()
}

func (m *Model) toggleToday(kind models.HabitKind) {
	m.report(m.session.ToggleHabitSlot(kind, derive.TodayIndex(m.session.Now())))
}

func (m *Model) openTaskForm() tea.Cmd {
	m.taskForm = &TaskFormModel{Area: models.AreaLife, Recur: models.RecurrenceNone}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&m.taskForm.Title).
				Validate(func(s string) error {
					if s == "" {
						return errors.Validationf("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Due date").
				Description("YYYY-MM-DD, optional").
				Value(&m.taskForm.Due),
			huh.NewSelect[models.Area]().
				Title("Area").
				Options(huh.NewOptions(models.AreaFinance, models.AreaHealth, models.AreaDiet, models.AreaLife, models.AreaCareer)...).
				Value(&m.taskForm.Area),
			huh.NewSelect[models.Recurrence]().
				Title("Repeats").
				Options(huh.NewOptions(models.RecurrenceNone, models.RecurrenceDaily, models.RecurrenceWeekly)...).
				Value(&m.taskForm.Recur),
		),
	)
	m.state = StateAddTask
	return m.form.Init()
}

func (m *Model) submitTaskForm() {
	f := m.taskForm
	_, err := m.session.AddTask(store.TaskDraft{
		Title: f.Title,
		Due:   f.Due,
		Area:  f.Area,
		Recur: f.Recur,
	})
	m.report(err)
	m.form = nil
	m.taskForm = nil
	m.state = StateTasks
}

package habits

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifehub/internal/constants"
	"github.com/julianstephens/lifehub/internal/models"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(13)

	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(5).
			Align(lipgloss.Center)

	todayStyle = dayStyle.
			Foreground(lipgloss.Color("205")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Reverse(true)
)

var dayNames = [constants.DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// ToggleSlotMsg asks the parent to flip one boolean habit slot.
type ToggleSlotMsg struct {
	Kind models.HabitKind
	Day  int
}

// WaterMsg asks the parent to adjust a day's water count.
type WaterMsg struct {
	Day   int
	Delta int
}

type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	WaterUp   key.Binding
	WaterDown key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next day"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		WaterUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "water +1"),
		),
		WaterDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "water -1"),
		),
	}
}

// rows in display order; the last row is water
var rows = []models.HabitKind{models.HabitCallFamily, models.HabitSwim, models.HabitGym}

type Model struct {
	week  models.WeeklyHabits
	today int
	row   int
	col   int
	keys  KeyMap
}

func New(week models.WeeklyHabits, today int) Model {
	return Model{week: week, today: today, col: today, keys: DefaultKeyMap()}
}

func (m *Model) SetWeek(week models.WeeklyHabits, today int) {
	m.week = week
	m.today = today
}

// Cursor returns the selected row and day.
func (m Model) Cursor() (row, day int) {
	return m.row, m.col
}

func (m Model) Keys() KeyMap {
	return m.keys
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.row < len(rows) {
			m.row++
		}
	case key.Matches(keyMsg, m.keys.Left):
		if m.col > 0 {
			m.col--
		}
	case key.Matches(keyMsg, m.keys.Right):
		if m.col < constants.DaysPerWeek-1 {
			m.col++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if m.row < len(rows) {
			slot := ToggleSlotMsg{Kind: rows[m.row], Day: m.col}
			return m, func() tea.Msg { return slot }
		}
		return m, waterCmd(m.col, 1)
	case key.Matches(keyMsg, m.keys.WaterUp):
		return m, waterCmd(m.col, 1)
	case key.Matches(keyMsg, m.keys.WaterDown):
		return m, waterCmd(m.col, -1)
	}
	return m, nil
}

func waterCmd(day, delta int) tea.Cmd {
	return func() tea.Msg { return WaterMsg{Day: day, Delta: delta} }
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Week of"))
	for i, name := range dayNames {
		if i == m.today {
			b.WriteString(todayStyle.Render(name))
		} else {
			b.WriteString(dayStyle.Render(name))
		}
	}
	b.WriteString("\n")

	for r, kind := range rows {
		b.WriteString(labelStyle.Render(label(kind)))
		row := m.week.Row(kind)
		for d, done := range row {
			mark := "·"
			if done {
				mark = "✓"
			}
			b.WriteString(m.cell(r, d, mark))
		}
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render("Water"))
	for d, glasses := range m.week.Water {
		b.WriteString(m.cell(len(rows), d, fmt.Sprintf("%d", glasses)))
	}
	b.WriteString("\n\n")
	b.WriteString(dayStyle.UnsetWidth().UnsetAlign().Render("week starting " + m.week.WeekStart))

	return b.String()
}

func (m Model) cell(row, day int, content string) string {
	if row == m.row && day == m.col {
		return dayStyle.Render(cursorStyle.Render(content))
	}
	return dayStyle.Render(content)
}

func label(kind models.HabitKind) string {
	switch kind {
	case models.HabitCallFamily:
		return "Call family"
	case models.HabitSwim:
		return "Swim"
	case models.HabitGym:
		return "Gym"
	}
	return string(kind)
}

package overview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifehub/internal/derive"
)

var (
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	nightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("111")).
			Bold(true)
)

const barWidth = 32

// Model renders the home screen into a scrollable viewport.
type Model struct {
	viewport viewport.Model
	fund     progress.Model
	Overview *derive.Overview
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{
		viewport: viewport.New(width, height),
		fund:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth), progress.WithoutPercentage()),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Overview == nil {
		return "Loading..."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetOverview(o derive.Overview) {
	m.Overview = &o
	m.Render()
}

func (m *Model) Render() {
	if m.Overview == nil {
		m.viewport.SetContent("Nothing loaded.")
		return
	}
	o := m.Overview

	var b strings.Builder

	countdown := fmt.Sprintf("%d days to go (~%d months)", o.CountdownDays, o.CountdownMonths)
	b.WriteString(valueStyle.Render(countdown))
	if o.NightShiftMode {
		b.WriteString("  " + nightStyle.Render("☾ night shift"))
	}
	b.WriteString("\n\n")

	b.WriteString(headingStyle.Render("Money") + "\n")
	fmt.Fprintf(&b, "%s %s   %s %s   %s %s\n",
		labelStyle.Render("Income"), valueStyle.Render(derive.FormatGBP(o.Totals.Income)),
		labelStyle.Render("Spend"), valueStyle.Render(derive.FormatGBP(o.Totals.Expense)),
		labelStyle.Render("Net"), valueStyle.Render(derive.FormatGBP(o.Totals.Net)),
	)
	fmt.Fprintf(&b, "%s  %s %s / %s\n\n",
		labelStyle.Render(o.Fund.Name),
		m.fund.ViewAs(o.Fund.Percent/100),
		derive.FormatGBP(o.Fund.Displayed),
		derive.FormatGBP(o.Fund.Target),
	)

	h := o.Habits
	b.WriteString(headingStyle.Render("This week") + "\n")
	fmt.Fprintf(&b, "%s %d/%d   %s %d/%d   %s %d\n",
		labelStyle.Render("Swim"), h.Swim, h.SwimGoal,
		labelStyle.Render("Gym"), h.Gym, h.GymGoal,
		labelStyle.Render("Water today"), h.WaterToday,
	)
	called := labelStyle.Render("not yet")
	if h.CalledFamilyToday {
		called = doneStyle.Render("✓ done")
	}
	fmt.Fprintf(&b, "%s %s\n\n", labelStyle.Render("Called family"), called)

	b.WriteString(headingStyle.Render("Tasks") + "\n")
	fmt.Fprintf(&b, "%d open\n", o.OpenTasks)
	for _, n := range o.PinnedNotes {
		fmt.Fprintf(&b, "📌 %s\n", n.Text)
	}
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Reading") + "\n")
	if len(o.Reading.Current) == 0 {
		b.WriteString(labelStyle.Render("nothing in progress") + "\n")
	}
	for _, r := range o.Reading.Current {
		fmt.Fprintf(&b, "%s\n", r.Title)
	}
	if len(o.Suggestions) > 0 {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Try:"), strings.Join(o.Suggestions, ", "))
	}

	m.viewport.SetContent(b.String())
}

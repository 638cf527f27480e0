package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateHome:
		content = docStyle.Render(m.overview.View())
	case StateTasks:
		content = docStyle.Render(m.taskList.View())
	case StateHabits:
		content = docStyle.Render(m.habitGrid.View())
	case StateAddTask:
		content = docStyle.Render(m.form.View())
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	parts := []string{m.viewTabs(), content}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	parts = append(parts, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	active := activeTabStyle
	if m.session.Snapshot().NightShiftMode {
		active = nightTabStyle
	}

	var tabs []string
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, active.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirmDelete() string {
	title := "this task"
	for _, t := range m.session.Snapshot().Tasks {
		if t.ID == m.taskToDeleteID {
			title = "\"" + t.Title + "\""
		}
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete "+title+"?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

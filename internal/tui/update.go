package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifehub/internal/derive"
	"github.com/julianstephens/lifehub/internal/models"
	"github.com/julianstephens/lifehub/internal/tui/components/habits"
	"github.com/julianstephens/lifehub/internal/tui/components/tasklist"
)

const tabCount = 3

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == StateAddTask {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// tabs, help and status take the rest
		h, v := docStyle.GetFrameSize()
		m.overview.SetSize(msg.Width-h, msg.Height-v-4)
		m.taskList.SetSize(msg.Width-h, msg.Height-v-4)
		return m, nil

	case tasklist.AddTaskMsg:
		return m, m.openTaskForm()

	case tasklist.ToggleTaskMsg:
		m.report(m.session.ToggleTask(msg.ID))
		return m, nil

	case tasklist.DeleteTaskMsg:
		m.taskToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil

	case habits.ToggleSlotMsg:
		m.report(m.session.ToggleHabitSlot(msg.Kind, msg.Day))
		return m, nil

	case habits.WaterMsg:
		m.report(m.session.AdjustWater(msg.Day, msg.Delta))
		return m, nil

	case tea.KeyMsg:
		if m.state == StateConfirmDelete {
			return m.updateConfirmDelete(msg), nil
		}
		if m.state == StateTasks && m.taskList.Filtering() {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		if m.state == StateHome {
			switch {
			case key.Matches(msg, m.keys.CallFamily):
				m.toggleToday(models.HabitCallFamily)
				return m, nil
			case key.Matches(msg, m.keys.Swim):
				m.toggleToday(models.HabitSwim)
				return m, nil
			case key.Matches(msg, m.keys.Gym):
				m.toggleToday(models.HabitGym)
				return m, nil
			case key.Matches(msg, m.keys.Water):
				m.report(m.session.AdjustWater(derive.TodayIndex(m.session.Now()), 1))
				return m, nil
			case key.Matches(msg, m.keys.NightShift):
				m.report(m.session.ToggleNightShift())
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateHome:
		m.overview, cmd = m.overview.Update(msg)
	case StateTasks:
		m.taskList, cmd = m.taskList.Update(msg)
	case StateHabits:
		m.habitGrid, cmd = m.habitGrid.Update(msg)
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.report(m.session.DeleteTask(m.taskToDeleteID))
		m.taskToDeleteID = ""
		m.state = StateTasks
	case key.Matches(msg, m.keys.Cancel):
		m.taskToDeleteID = ""
		m.state = StateTasks
	}
	return m
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.form = nil
		m.taskForm = nil
		m.state = StateTasks
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.submitTaskForm()
		return m, nil
	case huh.StateAborted:
		m.form = nil
		m.taskForm = nil
		m.state = StateTasks
		return m, nil
	}
	return m, cmd
}

package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/shoplist/internal/intent"
	"github.com/sandeepkv93/shoplist/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		switch m.Mode {
		case ModeAdd:
			return m.handleAddKey(typed), nil
		case ModeSearch:
			return m.handleSearchKey(typed), nil
		case ModeEdit:
			return m.handleEditKey(typed), nil
		case ModePalette:
			return m.handlePaletteKey(typed), nil
		default:
			return m.handleBrowseKey(typed)
		}
	case DispatchMsg:
		return m.dispatch(typed.Event, string(typed.Event.Action)), nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	}
	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Help):
		m.HelpVisible = !m.HelpVisible
	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < m.screen.Len()-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.Keys.Add):
		m.Mode = ModeAdd
		m.addInput.Focus()
		m.Status = StatusBar{Text: "add mode: enter to add, esc to stop"}
	case key.Matches(msg, m.Keys.Search):
		m.Mode = ModeSearch
		m.searchInput.Focus()
		m.searchInput.CursorEnd()
		m.Status = StatusBar{Text: "search: enter to apply, esc to cancel"}
	case key.Matches(msg, m.Keys.Palette):
		m.Mode = ModePalette
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active"}
	case key.Matches(msg, m.Keys.Hide):
		return m.dispatch(intent.HideFilterToggled(), "toggled hide checked"), nil
	case key.Matches(msg, m.Keys.Clear):
		return m.dispatch(intent.SearchCleared(), "search cleared"), nil
	case key.Matches(msg, m.Keys.Toggle):
		if id, ok := m.selectedID(); ok {
			return m.dispatch(intent.ItemToggled(id), "toggled item"), nil
		}
	case key.Matches(msg, m.Keys.Delete):
		if id, ok := m.selectedID(); ok {
			return m.dispatch(intent.ItemDeleted(id), "deleted item"), nil
		}
	case key.Matches(msg, m.Keys.Edit):
		if id, ok := m.selectedID(); ok {
			return m.dispatch(intent.ItemNameActivated(id), "editing item"), nil
		}
	}
	return m, nil
}

func (m Model) handleAddKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Mode = ModeBrowse
		m.addInput.Blur()
		m.Status = StatusBar{}
		return m
	case "enter":
		name := m.addInput.Value()
		m.addInput.SetValue("")
		return m.dispatch(intent.ItemAdded(name), "item added")
	}
	m.addInput, _ = m.addInput.Update(msg)
	return m
}

func (m Model) handleSearchKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Mode = ModeBrowse
		m.searchInput.Blur()
		m.searchInput.SetValue(m.screen.SearchField())
		m.Status = StatusBar{}
		return m
	case "enter":
		term := m.searchInput.Value()
		m.Mode = ModeBrowse
		m.searchInput.Blur()
		return m.dispatch(intent.SearchSubmitted(term), "search applied")
	}
	m.searchInput, _ = m.searchInput.Update(msg)
	return m
}

func (m Model) handleEditKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		return m.dispatch(intent.EditCancelled(m.EditingID), "edit cancelled")
	case "enter":
		return m.dispatch(intent.ItemRenamed(m.EditingID, m.editInput.Value()), "item renamed")
	}
	m.editInput, _ = m.editInput.Update(msg)
	return m
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	opts := views.ListOptions{Cursor: m.Cursor}
	if m.Mode == ModeEdit {
		opts.Cursor = -1
		opts.EditField = m.editInput.View()
	}

	palette := ""
	if m.Mode == ModePalette {
		palette = m.commandInput.View()
	}
	rightPane := views.RenderInputPanel(views.InputPanelData{
		AddView:     m.addInput.View(),
		SearchView:  m.searchInput.View(),
		PaletteView: palette,
		Mode:        string(m.Mode),
	}) + m.renderHelpIfVisible()

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("shoplist | showing: %d | search: %q", m.screen.Len(), m.screen.SearchField()),
		LeftPane:   views.RenderList(m.screen.Rows(), opts),
		RightPane:  rightPane,
		StatusLine: status,
		IsError:    m.Status.IsError,
		Footer:     m.helpModel.View(m.Keys),
	})
}

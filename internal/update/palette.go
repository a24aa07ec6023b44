package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/shoplist/internal/commands"
	"github.com/sandeepkv93/shoplist/internal/intent"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Mode = ModeBrowse
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed"}
		return m
	case "enter":
		return m.executePaletteCommand(m.commandInput.Value())
	}
	m.commandInput, _ = m.commandInput.Update(msg)
	return m
}

func (m Model) executePaletteCommand(input string) Model {
	m.Mode = ModeBrowse
	m.commandInput.SetValue("")
	m.commandInput.Blur()

	cmd, err := commands.Parse(strings.TrimSpace(input))
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	run := func(ev intent.Event, okText string) (commands.Result, error) {
		next := m.dispatch(ev, okText)
		m = next
		if next.LastError != nil {
			return commands.Result{}, next.LastError
		}
		return commands.Result{Message: okText}, nil
	}
	row := func(pos int) (string, error) {
		item, ok := m.screen.RowAt(pos - 1)
		if !ok {
			return "", &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no row %d (showing %d)", pos, m.screen.Len())}
		}
		return item.ID, nil
	}
	onRow := func(pos int, build func(id string) intent.Event, okText string) (commands.Result, error) {
		id, err := row(pos)
		if err != nil {
			return commands.Result{}, err
		}
		return run(build(id), okText)
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			return run(intent.ItemAdded(a.Name), fmt.Sprintf("added: %s", a.Name))
		},
		Search: func(a commands.SearchArgs) (commands.Result, error) {
			return run(intent.SearchSubmitted(a.Term), fmt.Sprintf("search: %q", a.Term))
		},
		Clear: func() (commands.Result, error) {
			return run(intent.SearchCleared(), "search cleared")
		},
		Hide: func() (commands.Result, error) {
			return run(intent.HideFilterToggled(), "toggled hide checked")
		},
		Check: func(a commands.TargetArgs) (commands.Result, error) {
			return onRow(a.Position, intent.ItemToggled, fmt.Sprintf("toggled row %d", a.Position))
		},
		Delete: func(a commands.TargetArgs) (commands.Result, error) {
			return onRow(a.Position, intent.ItemDeleted, fmt.Sprintf("deleted row %d", a.Position))
		},
		Edit: func(a commands.TargetArgs) (commands.Result, error) {
			return onRow(a.Position, intent.ItemNameActivated, fmt.Sprintf("editing row %d", a.Position))
		},
		Rename: func(a commands.RenameArgs) (commands.Result, error) {
			return onRow(a.Position, func(id string) intent.Event {
				return intent.ItemRenamed(id, a.Name)
			}, fmt.Sprintf("renamed row %d", a.Position))
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: res.Message}
	return m
}

package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/shoplist/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.Edit, k.Search, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Delete, k.Edit},
		{k.Add, k.Hide, k.Search, k.Clear, k.Palette},
		{k.Help, k.Quit},
	}
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	var plain []string
	for _, kb := range m.modeBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return "\n\n" + views.RenderHelpPanel(views.HelpPanelData{
		Mode:     string(m.Mode),
		Bindings: plain,
		HelpView: m.helpModel.FullHelpView(m.Keys.FullHelp()),
	})
}

func (m Model) modeBindings() []KeyBinding {
	switch m.Mode {
	case ModeAdd:
		return []KeyBinding{
			{Key: "enter", Action: "add item and keep typing"},
			{Key: "esc", Action: "back to list"},
		}
	case ModeSearch:
		return []KeyBinding{
			{Key: "enter", Action: "apply search (empty shows all)"},
			{Key: "esc", Action: "cancel"},
		}
	case ModeEdit:
		return []KeyBinding{
			{Key: "enter", Action: "save name"},
			{Key: "esc", Action: "cancel rename"},
		}
	case ModePalette:
		return []KeyBinding{
			{Key: "add <name>", Action: "add item"},
			{Key: "search <term> / clear", Action: "filter by name"},
			{Key: "hide", Action: "toggle hiding checked items"},
			{Key: "check|delete|edit <n>", Action: "act on row n"},
			{Key: "rename <n> <name>", Action: "rename row n"},
		}
	default:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "space", Action: "check/uncheck"},
			{Key: "d", Action: "delete"},
			{Key: "e", Action: "rename"},
			{Key: "h", Action: "hide checked items"},
		}
	}
}

package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/shoplist/internal/model"
)

// ListOptions carries view-layer state that is not part of the store.
type ListOptions struct {
	// Cursor is the highlighted row; -1 disables highlighting.
	Cursor int
	// EditField replaces the name of the row in edit mode, typically the
	// view of a text input. Empty shows the current name instead.
	EditField string
}

var (
	checkedStyle  = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	editingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cursorStyle   = lipgloss.NewStyle().Bold(true)
	disabledStyle = lipgloss.NewStyle().Faint(true)
	controlStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	emptyStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
)

// RenderList draws one row per item, in order. Editing rows show an edit
// affordance and disabled controls.
func RenderList(items []model.Item, opts ListOptions) string {
	if len(items) == 0 {
		return emptyStyle.Render("(no items)")
	}
	rows := make([]string, 0, len(items))
	for i, item := range items {
		rows = append(rows, renderRow(item, i == opts.Cursor, opts.EditField))
	}
	return strings.Join(rows, "\n")
}

func renderRow(item model.Item, selected bool, editField string) string {
	marker := "  "
	if selected {
		marker = cursorStyle.Render("> ")
	}
	box := "[ ]"
	if item.Checked {
		box = "[x]"
	}

	var title, controls string
	if item.IsEditing {
		title = editField
		if title == "" {
			title = editingStyle.Render("✎ " + item.Name)
		}
		controls = disabledStyle.Render("check delete")
	} else {
		title = item.Name
		if item.Checked {
			title = checkedStyle.Render(item.Name)
		}
		controls = controlStyle.Render("check delete")
	}
	return marker + box + " " + title + "  " + controls
}

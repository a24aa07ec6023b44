package views

import (
	"fmt"
	"strings"
)

type InputPanelData struct {
	AddView     string
	SearchView  string
	PaletteView string
	Mode        string
}

type HelpPanelData struct {
	Mode     string
	Bindings []string
	HelpView string
}

func RenderInputPanel(data InputPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("mode: %s\n", data.Mode))
	b.WriteString("add:\n" + data.AddView + "\n")
	b.WriteString("search:\n" + data.SearchView + "\n")
	if data.PaletteView != "" {
		b.WriteString("command:\n" + data.PaletteView + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help (%s):\n%s\n%s",
		strings.ToLower(data.Mode),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

package views

import (
	"strings"

	"github.com/sandeepkv93/shoplist/internal/model"
)

// Markdown writes items as a task list.
func Markdown(title string, items []model.Item) string {
	var b strings.Builder
	if title != "" {
		b.WriteString("# " + title + "\n\n")
	}
	if len(items) == 0 {
		b.WriteString("_no items_\n")
		return b.String()
	}
	for _, item := range items {
		box := "[ ]"
		if item.Checked {
			box = "[x]"
		}
		b.WriteString("- " + box + " " + escapeMarkdown(item.Name) + "\n")
	}
	return b.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

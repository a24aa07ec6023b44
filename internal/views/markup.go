package views

import (
	"html/template"
	"strings"

	"github.com/sandeepkv93/shoplist/internal/model"
)

var markupTemplate = template.Must(template.New("list").Parse(`{{range .}}
<li data-item-id="{{.ID}}">
  {{- if .IsEditing}}
  <form id="edit-item-name-form">
    <input type="text" name="edit-name" class="js-edit-item-name" value="{{.Name}}" />
  </form>
  {{- else}}
  <span class="shopping-item js-shopping-item{{if .Checked}} shopping-item__checked{{end}}">{{.Name}}</span>
  {{- end}}
  <div class="shopping-item-controls">
    <button class="shopping-item-toggle js-item-toggle"{{if .IsEditing}} disabled{{end}}>
      <span class="button-label">check</span>
    </button>
    <button class="shopping-item-delete js-item-delete"{{if .IsEditing}} disabled{{end}}>
      <span class="button-label">delete</span>
    </button>
  </div>
</li>
{{- end}}`))

// RenderMarkup produces the HTML list region for items. Names are escaped.
func RenderMarkup(items []model.Item) (string, error) {
	var b strings.Builder
	if err := markupTemplate.Execute(&b, items); err != nil {
		return "", err
	}
	return strings.TrimSpace(b.String()), nil
}

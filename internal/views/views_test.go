package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/sandeepkv93/shoplist/internal/model"
)

func sampleItems() []model.Item {
	return []model.Item{
		{ID: "1", Name: "apples"},
		{ID: "2", Name: "milk", Checked: true},
		{ID: "3", Name: "bread", IsEditing: true},
	}
}

func TestRenderListRows(t *testing.T) {
	out := ansi.Strip(RenderList(sampleItems(), ListOptions{Cursor: 0}))
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "> [ ] apples") {
		t.Fatalf("unexpected cursor row: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  [x] milk") {
		t.Fatalf("unexpected checked row: %q", lines[1])
	}
	if !strings.Contains(lines[2], "✎ bread") {
		t.Fatalf("expected edit affordance with current name: %q", lines[2])
	}
}

func TestRenderListUsesEditField(t *testing.T) {
	out := ansi.Strip(RenderList(sampleItems(), ListOptions{Cursor: -1, EditField: "<input bread>"}))
	if !strings.Contains(out, "[ ] <input bread>") {
		t.Fatalf("expected edit field in editing row: %q", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "> ") {
			t.Fatalf("cursor -1 must not highlight a row: %q", line)
		}
	}
}

func TestRenderListEmpty(t *testing.T) {
	if got := ansi.Strip(RenderList(nil, ListOptions{})); got != "(no items)" {
		t.Fatalf("unexpected empty rendering: %q", got)
	}
}

func TestRenderListIsIdempotent(t *testing.T) {
	items := sampleItems()
	first := RenderList(items, ListOptions{Cursor: 1})
	second := RenderList(items, ListOptions{Cursor: 1})
	if first != second {
		t.Fatalf("render not idempotent:\n%q\n%q", first, second)
	}
}

func TestRenderMarkup(t *testing.T) {
	items := sampleItems()
	items[0].Name = "<b>apples</b>"
	out, err := RenderMarkup(items)
	if err != nil {
		t.Fatalf("render markup: %v", err)
	}
	if strings.Count(out, "<li data-item-id=") != 3 {
		t.Fatalf("expected 3 list items: %s", out)
	}
	if strings.Contains(out, "<b>apples</b>") || !strings.Contains(out, "&lt;b&gt;apples&lt;/b&gt;") {
		t.Fatalf("expected escaped name: %s", out)
	}
	if !strings.Contains(out, "shopping-item__checked") {
		t.Fatalf("expected checked class for milk: %s", out)
	}
	if !strings.Contains(out, `value="bread"`) || strings.Count(out, "disabled") != 2 {
		t.Fatalf("expected edit form with disabled controls for bread: %s", out)
	}

	empty, err := RenderMarkup(nil)
	if err != nil || empty != "" {
		t.Fatalf("expected empty markup, got %q err=%v", empty, err)
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown("Groceries", sampleItems())
	want := "# Groceries\n\n- [ ] apples\n- [x] milk\n- [ ] bread\n"
	if md != want {
		t.Fatalf("unexpected markdown:\n%q\nwant\n%q", md, want)
	}
	if got := Markdown("", []model.Item{{Name: "a_b*c"}}); got != "- [ ] a\\_b\\*c\n" {
		t.Fatalf("expected escaped markdown, got %q", got)
	}
	if got := Markdown("", nil); got != "_no items_\n" {
		t.Fatalf("unexpected empty markdown: %q", got)
	}
}

func TestRenderMarkdownFallsBackOnBlank(t *testing.T) {
	if RenderMarkdown("  ") != "" {
		t.Fatal("expected blank markdown to render empty")
	}
	if out := RenderMarkdown(Markdown("", sampleItems())); !strings.Contains(ansi.Strip(out), "apples") {
		t.Fatalf("expected rendered markdown to contain item names: %q", out)
	}
}

func TestRenderAppIncludesSections(t *testing.T) {
	out := ansi.Strip(RenderApp(AppData{
		Header:     "shoplist",
		LeftPane:   "left",
		RightPane:  "right",
		StatusLine: "status: ok",
		Footer:     "keys",
	}))
	for _, want := range []string{"shoplist", "left", "right", "status: ok", "keys"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output: %q", want, out)
		}
	}
}

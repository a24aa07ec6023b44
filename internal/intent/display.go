package intent

import "github.com/sandeepkv93/shoplist/internal/model"

// Display is the view layer seen from the dispatcher. DisplayList replaces
// the whole list region; SyncSearchField mirrors the current search term,
// including clearing it.
type Display interface {
	DisplayList(items []model.Item)
	SyncSearchField(term *string)
}

// Recorder keeps the last rendered state so a view layer can paint it later.
type Recorder struct {
	rows        []model.Item
	searchField string
	renders     int
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) DisplayList(items []model.Item) {
	r.rows = model.CloneItems(items)
	r.renders++
}

func (r *Recorder) SyncSearchField(term *string) {
	if term == nil {
		r.searchField = ""
		return
	}
	r.searchField = *term
}

func (r *Recorder) Rows() []model.Item { return model.CloneItems(r.rows) }

func (r *Recorder) Len() int { return len(r.rows) }

func (r *Recorder) SearchField() string { return r.searchField }

func (r *Recorder) Renders() int { return r.renders }

// Editing returns the row currently in edit mode, if any.
func (r *Recorder) Editing() (model.Item, bool) {
	return model.EditingItem(r.rows)
}

// RowAt resolves a 0-based visible position to its item.
func (r *Recorder) RowAt(idx int) (model.Item, bool) {
	if idx < 0 || idx >= len(r.rows) {
		return model.Item{}, false
	}
	return r.rows[idx], true
}

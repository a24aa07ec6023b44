package update

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/shoplist/internal/intent"
)

type Mode string

const (
	ModeBrowse  Mode = "browse"
	ModeAdd     Mode = "add"
	ModeSearch  Mode = "search"
	ModeEdit    Mode = "edit"
	ModePalette Mode = "command"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Add     key.Binding
	Toggle  key.Binding
	Delete  key.Binding
	Hide    key.Binding
	Search  key.Binding
	Clear   key.Binding
	Edit    key.Binding
	Palette key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/↑", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/↓", "down")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "check")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Hide:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hide checked")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear search")),
		Edit:    key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("e/enter", "rename")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the terminal view layer. It never reads the store: everything it
// paints comes from the Recorder the dispatcher renders into.
type Model struct {
	Mode        Mode
	Cursor      int
	EditingID   string
	Status      StatusBar
	Keys        KeyMap
	HelpVisible bool
	Quitting    bool
	LastError   error

	ctx          context.Context
	dispatcher   *intent.Dispatcher
	screen       *intent.Recorder
	addInput     textinput.Model
	searchInput  textinput.Model
	editInput    textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
}

type DispatchMsg struct {
	Event intent.Event
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

// NewModel expects screen to be the Display dispatcher renders into.
func NewModel(ctx context.Context, dispatcher *intent.Dispatcher, screen *intent.Recorder) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := Model{
		Mode:       ModeBrowse,
		Keys:       DefaultKeyMap(),
		ctx:        ctx,
		dispatcher: dispatcher,
		screen:     screen,
	}
	m.initInputs()
	m.syncFromScreen()
	return m
}

func (m *Model) initInputs() {
	m.addInput = textinput.New()
	m.addInput.Placeholder = "e.g., broccoli"
	m.addInput.Prompt = "+ "
	m.addInput.CharLimit = 120

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "search"
	m.searchInput.Prompt = "/ "
	m.searchInput.CharLimit = 120

	m.editInput = textinput.New()
	m.editInput.Prompt = ""
	m.editInput.CharLimit = 120

	m.commandInput = textinput.New()
	m.commandInput.Placeholder = "add milk | check 2 | rename 1 pears"
	m.commandInput.Prompt = ": "
	m.commandInput.CharLimit = 200

	m.helpModel = help.New()
}

// syncFromScreen applies the last render: clamps the cursor, mirrors the
// search field and enters or leaves edit mode to match the rendered rows.
func (m *Model) syncFromScreen() {
	rows := m.screen.Len()
	if m.Cursor >= rows {
		m.Cursor = rows - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	m.searchInput.SetValue(m.screen.SearchField())

	editing, ok := m.screen.Editing()
	if ok {
		if m.EditingID != editing.ID {
			m.EditingID = editing.ID
			m.editInput.SetValue(editing.Name)
			m.editInput.CursorEnd()
		}
		m.editInput.Focus()
		m.addInput.Blur()
		m.commandInput.Blur()
		m.Mode = ModeEdit
		return
	}
	m.EditingID = ""
	m.editInput.Blur()
	if m.Mode == ModeEdit {
		m.Mode = ModeBrowse
	}
}

func (m Model) dispatch(ev intent.Event, okText string) Model {
	if err := m.dispatcher.Dispatch(m.ctx, ev); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.LastError = nil
	m.Status = StatusBar{Text: okText}
	m.syncFromScreen()
	return m
}

func (m Model) selectedID() (string, bool) {
	row, ok := m.screen.RowAt(m.Cursor)
	if !ok {
		return "", false
	}
	return row.ID, true
}

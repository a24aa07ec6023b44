package intent

type Action string

const (
	ActionAdd         Action = "item_added"
	ActionToggle      Action = "item_toggled"
	ActionDelete      Action = "item_deleted"
	ActionToggleHide  Action = "hide_filter_toggled"
	ActionSearch      Action = "search_submitted"
	ActionClearSearch Action = "search_cleared"
	ActionBeginEdit   Action = "item_name_activated"
	ActionRename      Action = "item_renamed"
	ActionCancelEdit  Action = "edit_cancelled"
)

// Event is one user intent. ItemID names the row the control belongs to;
// Text carries raw form input.
type Event struct {
	Action Action
	ItemID string
	Text   string
}

func ItemAdded(rawName string) Event { return Event{Action: ActionAdd, Text: rawName} }

func ItemToggled(id string) Event { return Event{Action: ActionToggle, ItemID: id} }

func ItemDeleted(id string) Event { return Event{Action: ActionDelete, ItemID: id} }

func HideFilterToggled() Event { return Event{Action: ActionToggleHide} }

func SearchSubmitted(rawTerm string) Event { return Event{Action: ActionSearch, Text: rawTerm} }

func SearchCleared() Event { return Event{Action: ActionClearSearch} }

func ItemNameActivated(id string) Event { return Event{Action: ActionBeginEdit, ItemID: id} }

func ItemRenamed(id, rawName string) Event {
	return Event{Action: ActionRename, ItemID: id, Text: rawName}
}

func EditCancelled(id string) Event { return Event{Action: ActionCancelEdit, ItemID: id} }

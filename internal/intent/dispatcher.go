// Package intent turns user events into store mutations. Each handler
// validates its payload, performs one store mutation, and the dispatcher then
// re-renders the projection through the Display.
package intent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sandeepkv93/shoplist/internal/model"
	"github.com/sandeepkv93/shoplist/internal/store"
)

// Policy controls input normalization. The zero value accepts input as-is.
type Policy struct {
	TrimInput        bool
	RejectBlankNames bool
}

func DefaultPolicy() Policy {
	return Policy{TrimInput: true, RejectBlankNames: true}
}

type handlerFunc func(ctx context.Context, ev Event) error

type Dispatcher struct {
	store    *store.Store
	display  Display
	logger   *slog.Logger
	policy   Policy
	handlers map[Action]handlerFunc
}

func NewDispatcher(st *store.Store, display Display, logger *slog.Logger, policy Policy) (*Dispatcher, error) {
	if st == nil {
		return nil, errors.New("intent: nil store")
	}
	if display == nil {
		return nil, errors.New("intent: nil display")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	d := &Dispatcher{
		store:   st,
		display: display,
		logger:  logger.With(slog.String("component", "intent")),
		policy:  policy,
	}
	d.handlers = map[Action]handlerFunc{
		ActionAdd:         d.handleAdd,
		ActionToggle:      d.handleToggle,
		ActionDelete:      d.handleDelete,
		ActionToggleHide:  d.handleToggleHide,
		ActionSearch:      d.handleSearch,
		ActionClearSearch: d.handleClearSearch,
		ActionBeginEdit:   d.handleBeginEdit,
		ActionRename:      d.handleRename,
		ActionCancelEdit:  d.handleCancelEdit,
	}
	return d, nil
}

// Dispatch applies ev and renders. On failure nothing is rendered and the
// returned error is an *Error.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) error {
	handle, ok := d.handlers[ev.Action]
	if !ok {
		err := &Error{Action: ev.Action, Code: ErrCodeUnknownAction, Message: fmt.Sprintf("no handler for %q", ev.Action)}
		d.logger.Warn("event rejected", slog.String("action", string(ev.Action)), slog.String("error", err.Error()))
		return err
	}
	d.logger.Debug("event", slog.String("action", string(ev.Action)), slog.String("item_id", ev.ItemID))
	if err := handle(ctx, ev); err != nil {
		ie := classify(ev.Action, err)
		d.logger.Warn("event failed",
			slog.String("action", string(ev.Action)),
			slog.String("item_id", ev.ItemID),
			slog.String("code", string(ie.Code)),
			slog.String("error", err.Error()),
		)
		return ie
	}
	return d.Render(ctx)
}

// Render pushes the current projection and search term to the display.
func (d *Dispatcher) Render(ctx context.Context) error {
	visible, err := d.store.Visible(ctx)
	if err != nil {
		return classify("render", err)
	}
	d.display.DisplayList(visible)
	d.display.SyncSearchField(d.store.SearchTerm())
	d.logger.Debug("rendered", slog.Int("visible", len(visible)))
	return nil
}

func (d *Dispatcher) handleAdd(ctx context.Context, ev Event) error {
	name, err := d.normalizeName(ev.Action, ev.Text)
	if err != nil {
		return err
	}
	_, err = d.store.AddItem(ctx, name)
	return err
}

func (d *Dispatcher) handleToggle(ctx context.Context, ev Event) error {
	if err := d.requireActiveItem(ctx, ev); err != nil {
		return err
	}
	_, err := d.store.ToggleChecked(ctx, ev.ItemID)
	return err
}

func (d *Dispatcher) handleDelete(ctx context.Context, ev Event) error {
	if err := d.requireActiveItem(ctx, ev); err != nil {
		return err
	}
	return d.store.DeleteItem(ctx, ev.ItemID)
}

func (d *Dispatcher) handleToggleHide(_ context.Context, _ Event) error {
	d.store.SetHideCompleted(!d.store.HideCompleted())
	return nil
}

func (d *Dispatcher) handleSearch(_ context.Context, ev Event) error {
	term := ev.Text
	if d.policy.TrimInput {
		term = strings.TrimSpace(term)
	}
	d.store.SetSearchTerm(&term)
	return nil
}

// Clearing stores "" rather than nil; both disable the search filter.
func (d *Dispatcher) handleClearSearch(_ context.Context, _ Event) error {
	empty := ""
	d.store.SetSearchTerm(&empty)
	return nil
}

func (d *Dispatcher) handleBeginEdit(ctx context.Context, ev Event) error {
	if err := requireID(ev); err != nil {
		return err
	}
	return d.store.SetEditing(ctx, ev.ItemID, true)
}

func (d *Dispatcher) handleRename(ctx context.Context, ev Event) error {
	if err := requireID(ev); err != nil {
		return err
	}
	name, err := d.normalizeName(ev.Action, ev.Text)
	if err != nil {
		return err
	}
	return d.store.CommitRename(ctx, ev.ItemID, name)
}

func (d *Dispatcher) handleCancelEdit(ctx context.Context, ev Event) error {
	if err := requireID(ev); err != nil {
		return err
	}
	return d.store.SetEditing(ctx, ev.ItemID, false)
}

// requireActiveItem rejects controls on a row that is in edit mode; the
// renderer shows those controls as disabled.
func (d *Dispatcher) requireActiveItem(ctx context.Context, ev Event) error {
	if err := requireID(ev); err != nil {
		return err
	}
	item, err := d.store.Find(ctx, ev.ItemID)
	if err != nil {
		return err
	}
	if item.IsEditing {
		return &Error{Action: ev.Action, Code: ErrCodeDisabled, Message: fmt.Sprintf("item %q is being edited", item.Name)}
	}
	return nil
}

func (d *Dispatcher) normalizeName(action Action, raw string) (string, error) {
	name := raw
	if d.policy.TrimInput {
		name = strings.TrimSpace(name)
	}
	if d.policy.RejectBlankNames && strings.TrimSpace(name) == "" {
		return "", &Error{Action: action, Code: ErrCodeInvalidInput, Message: "item name is empty", Err: model.ErrInvalidInput}
	}
	return name, nil
}

func requireID(ev Event) error {
	if strings.TrimSpace(ev.ItemID) == "" {
		return &Error{Action: ev.Action, Code: ErrCodeInvalidInput, Message: "item id is required", Err: model.ErrInvalidInput}
	}
	return nil
}

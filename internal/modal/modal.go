// Package modal tracks the two dialogs of the dashboard: the product
// form (create or edit) and the delete confirmation. Each lane moves
// through an explicit two-phase transition: Prepare commits the pending
// target, Show makes the dialog visible, and Show without a prior
// Prepare is an error. Closing hides a dialog but keeps its pending
// target until a new one is prepared or the session ends.
package modal

import (
	"errors"

	"shopadmin/internal/models"
)

// Phase is a lane's position in the closed → prepared → shown cycle.
type Phase int

const (
	Closed Phase = iota
	Prepared
	Shown
)

// Lane names one of the two dialogs.
type Lane int

const (
	LaneForm Lane = iota
	LaneDelete
)

// Mode says which workflow the form dialog is running.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// ErrNotPrepared is returned by Show when the lane has no committed
// target to display.
var ErrNotPrepared = errors.New("modal: show before prepare")

// Controller holds both lanes and the single pending target they share.
type Controller struct {
	FormPhase   Phase
	DeletePhase Phase
	FormMode    Mode
	Target      *models.Product
}

// PrepareCreate commits a fresh blank draft as the pending target and
// puts the form lane in the prepared phase, tagged create.
func (c *Controller) PrepareCreate() {
	blank := models.Product{
		IsEnabled: 1,
		ImagesURL: []string{""},
	}
	c.Target = &blank
	c.FormMode = ModeCreate
	c.FormPhase = Prepared
}

// PrepareEdit commits a copy of p as the pending target and puts the
// form lane in the prepared phase, tagged edit. A record without
// secondary images gets the single empty placeholder slot.
func (c *Controller) PrepareEdit(p models.Product) {
	cp := p.Clone()
	if len(cp.ImagesURL) == 0 {
		cp.ImagesURL = []string{""}
	}
	c.Target = &cp
	c.FormMode = ModeEdit
	c.FormPhase = Prepared
}

// PrepareDelete commits p as the pending target of the delete lane.
func (c *Controller) PrepareDelete(p models.Product) {
	cp := p.Clone()
	c.Target = &cp
	c.DeletePhase = Prepared
}

// Show makes a prepared lane visible. The precondition is that the
// lane's Prepare has already committed; there is no deferred scheduling.
func (c *Controller) Show(lane Lane) error {
	switch lane {
	case LaneForm:
		if c.FormPhase == Closed {
			return ErrNotPrepared
		}
		c.FormPhase = Shown
	case LaneDelete:
		if c.DeletePhase == Closed {
			return ErrNotPrepared
		}
		c.DeletePhase = Shown
	}
	return nil
}

// Close hides a lane. The pending target is deliberately kept: it is
// replaced on the next Prepare or dropped by Reset.
func (c *Controller) Close(lane Lane) {
	switch lane {
	case LaneForm:
		c.FormPhase = Closed
	case LaneDelete:
		c.DeletePhase = Closed
	}
}

// Reset closes both lanes and drops the pending target (logout path).
func (c *Controller) Reset() {
	c.FormPhase = Closed
	c.DeletePhase = Closed
	c.FormMode = ""
	c.Target = nil
}

// FormVisible reports whether the product dialog is shown.
func (c *Controller) FormVisible() bool { return c.FormPhase == Shown }

// DeleteVisible reports whether the delete confirmation is shown.
func (c *Controller) DeleteVisible() bool { return c.DeletePhase == Shown }

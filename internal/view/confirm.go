// ABOUTME: Two-state confirmation modal for destructive actions
// ABOUTME: Holds one pending delete until the user answers yes or no

package view

import "errors"

var (
	// ErrConfirmationPending is returned when a confirmation is already open.
	ErrConfirmationPending = errors.New("a confirmation is already pending")
	// ErrNoPendingConfirmation is returned when resolving with nothing open.
	ErrNoPendingConfirmation = errors.New("no confirmation is pending")
)

// Confirmation gates an intent behind a yes/no answer.
type Confirmation struct {
	pending Intent
}

// Request opens the confirmation for action.
func (c *Confirmation) Request(action Intent) error {
	if c.pending != nil {
		return ErrConfirmationPending
	}
	c.pending = action
	return nil
}

// Pending returns the action awaiting an answer.
func (c *Confirmation) Pending() (Intent, bool) {
	return c.pending, c.pending != nil
}

// Resolve closes the confirmation. The pending action is returned when
// accepted and nil when declined.
func (c *Confirmation) Resolve(accepted bool) (Intent, error) {
	if c.pending == nil {
		return nil, ErrNoPendingConfirmation
	}
	action := c.pending
	c.pending = nil
	if !accepted {
		return nil, nil
	}
	return action, nil
}

// Prompt is the question shown for the pending action.
func (c *Confirmation) Prompt() string {
	switch c.pending.(type) {
	case DeleteIntent:
		return "Are you sure you want to delete this workout?"
	case DeleteAllIntent:
		return "Are you sure you want to delete all of your workouts?"
	}
	return ""
}

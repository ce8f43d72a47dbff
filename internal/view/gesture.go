// ABOUTME: Decodes raw user gestures into typed intents
// ABOUTME: One intent type per action the controller understands

package view

import (
	"errors"
	"fmt"

	"github.com/harper/workouts/internal/collection"
	"github.com/harper/workouts/internal/models"
)

// Affordance is the control a gesture landed on.
type Affordance string

const (
	AffordanceMap        Affordance = "map"
	AffordanceDelete     Affordance = "option-delete"
	AffordanceView       Affordance = "option-view"
	AffordanceEdit       Affordance = "option-edit"
	AffordanceDeleteAll  Affordance = "delete-all"
	AffordanceViewAll    Affordance = "view-all"
	AffordanceSort       Affordance = "sort"
	AffordanceConfirmYes Affordance = "confirm-yes"
	AffordanceConfirmNo  Affordance = "confirm-no"
	AffordanceFormCancel Affordance = "form-cancel"
)

// ErrUnknownGesture is returned by Decode for gestures it cannot route.
var ErrUnknownGesture = errors.New("unknown gesture")

// Gesture is a raw user action.
type Gesture struct {
	Target   Affordance
	RecordID string
	Coord    *models.Coordinate
	Value    string
}

// Intent is a decoded user action.
type Intent interface {
	intent()
}

type (
	CreateIntent    struct{ Coord models.Coordinate }
	EditIntent      struct{ ID string }
	DeleteIntent    struct{ ID string }
	DeleteAllIntent struct{}
	ViewIntent      struct{ ID string }
	ViewAllIntent   struct{}
	SortIntent      struct{ Criterion collection.Criterion }
	ConfirmIntent   struct{ Accepted bool }
	CancelIntent    struct{}
)

func (CreateIntent) intent()    {}
func (EditIntent) intent()      {}
func (DeleteIntent) intent()    {}
func (DeleteAllIntent) intent() {}
func (ViewIntent) intent()      {}
func (ViewAllIntent) intent()   {}
func (SortIntent) intent()      {}
func (ConfirmIntent) intent()   {}
func (CancelIntent) intent()    {}

// Decode turns g into an intent.
func Decode(g Gesture) (Intent, error) {
	switch g.Target {
	case AffordanceMap:
		if g.Coord == nil {
			return nil, fmt.Errorf("%w: map gesture without coordinate", ErrUnknownGesture)
		}
		return CreateIntent{Coord: *g.Coord}, nil
	case AffordanceDelete, AffordanceView, AffordanceEdit:
		if g.RecordID == "" {
			return nil, fmt.Errorf("%w: %s gesture without record id", ErrUnknownGesture, g.Target)
		}
		switch g.Target {
		case AffordanceDelete:
			return DeleteIntent{ID: g.RecordID}, nil
		case AffordanceView:
			return ViewIntent{ID: g.RecordID}, nil
		default:
			return EditIntent{ID: g.RecordID}, nil
		}
	case AffordanceDeleteAll:
		return DeleteAllIntent{}, nil
	case AffordanceViewAll:
		return ViewAllIntent{}, nil
	case AffordanceSort:
		c, err := collection.ParseCriterion(g.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnknownGesture, err)
		}
		return SortIntent{Criterion: c}, nil
	case AffordanceConfirmYes:
		return ConfirmIntent{Accepted: true}, nil
	case AffordanceConfirmNo:
		return ConfirmIntent{Accepted: false}, nil
	case AffordanceFormCancel:
		return CancelIntent{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGesture, g.Target)
}

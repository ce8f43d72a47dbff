// ABOUTME: Create/edit form session state machine
// ABOUTME: Parses and validates raw form input before any store call is built

package session

import (
	"errors"
	"strconv"
	"strings"

	"github.com/harper/workouts/internal/collection"
	"github.com/harper/workouts/internal/models"
)

// State is the form session state.
type State int

const (
	Idle State = iota
	Creating
	Editing
)

func (s State) String() string {
	switch s {
	case Creating:
		return "creating"
	case Editing:
		return "editing"
	}
	return "idle"
}

var (
	// ErrNoSession is returned by Submit when no form is open.
	ErrNoSession = errors.New("no workout form is open")
	// ErrEditInProgress is returned by BeginCreate while a workout is being edited.
	ErrEditInProgress = errors.New("a workout is being edited")
)

// Field names a form input.
type Field string

const (
	FieldType      Field = "type"
	FieldDistance  Field = "distance"
	FieldDuration  Field = "duration"
	FieldCadence   Field = "cadence"
	FieldElevation Field = "elevation"
)

// VisibleFields returns the numeric inputs shown for kind.
func VisibleFields(kind models.Kind) []Field {
	if kind == models.Cycling {
		return []Field{FieldDistance, FieldDuration, FieldElevation}
	}
	return []Field{FieldDistance, FieldDuration, FieldCadence}
}

// RawForm holds the form inputs as typed by the user.
type RawForm struct {
	Type      string
	Distance  string
	Duration  string
	Cadence   string
	Elevation string
}

// Submission is the store call a successful Submit asks for.
type Submission interface {
	submission()
}

// CreateSubmission asks for a new workout.
type CreateSubmission struct {
	Kind   models.Kind
	Coord  models.Coordinate
	Fields models.Fields
}

// UpdateSubmission asks for an existing workout to be patched.
type UpdateSubmission struct {
	ID    string
	Patch collection.Patch
}

func (CreateSubmission) submission() {}
func (UpdateSubmission) submission() {}

// Session tracks one open form at a time.
type Session struct {
	state  State
	coord  models.Coordinate
	target *models.Workout
}

// New returns an idle session.
func New() *Session {
	return &Session{}
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Coord returns the target coordinate of the open form.
func (s *Session) Coord() models.Coordinate { return s.coord }

// Target returns the workout being edited, or nil.
func (s *Session) Target() *models.Workout { return s.target }

// BeginCreate opens the form for a new workout at coord. A second map
// click while creating moves the target.
func (s *Session) BeginCreate(coord models.Coordinate) error {
	if s.state == Editing {
		return ErrEditInProgress
	}
	s.state = Creating
	s.coord = coord
	s.target = nil
	return nil
}

// BeginEdit opens the form for w and returns the prefilled values. Choosing
// another workout while editing retargets the form.
func (s *Session) BeginEdit(w *models.Workout) RawForm {
	s.state = Editing
	s.coord = w.Coords
	s.target = w

	form := RawForm{
		Type:     string(w.Kind),
		Distance: formatFloat(w.DistanceKm),
		Duration: formatFloat(w.DurationMin),
	}
	switch w.Kind {
	case models.Running:
		form.Cadence = formatFloat(w.Cadence)
	case models.Cycling:
		form.Elevation = formatFloat(w.ElevationGainM)
	}
	return form
}

// Cancel abandons the open form.
func (s *Session) Cancel() {
	s.state = Idle
	s.coord = models.Coordinate{}
	s.target = nil
}

// Complete closes the form after its submission was applied.
func (s *Session) Complete() {
	s.Cancel()
}

// Submit validates raw and returns the store call it describes. On error
// the session keeps its state so the user can correct the input.
func (s *Session) Submit(raw RawForm) (Submission, error) {
	switch s.state {
	case Creating:
		kind, err := models.ParseKind(raw.Type)
		if err != nil {
			return nil, err
		}
		fields, err := parseFields(kind, raw)
		if err != nil {
			return nil, err
		}
		if err := models.ValidateCoordinates(s.coord.Lat, s.coord.Lng); err != nil {
			return nil, err
		}
		return CreateSubmission{Kind: kind, Coord: s.coord, Fields: fields}, nil

	case Editing:
		kind := s.target.Kind
		if strings.TrimSpace(raw.Type) != "" {
			k, err := models.ParseKind(raw.Type)
			if err != nil {
				return nil, err
			}
			if k != kind {
				return nil, &models.ValidationError{Field: string(FieldType), Reason: "workout type cannot be changed"}
			}
		}
		fields, err := parseFields(kind, raw)
		if err != nil {
			return nil, err
		}
		patch := collection.Patch{DistanceKm: &fields.DistanceKm, DurationMin: &fields.DurationMin}
		if kind == models.Running {
			patch.Cadence = &fields.Cadence
		} else {
			patch.ElevationGainM = &fields.ElevationGainM
		}
		return UpdateSubmission{ID: s.target.ID, Patch: patch}, nil
	}
	return nil, ErrNoSession
}

// parseFields reads the inputs visible for kind. Hidden inputs are ignored.
func parseFields(kind models.Kind, raw RawForm) (models.Fields, error) {
	var f models.Fields
	var err error
	if f.DistanceKm, err = parseNumber(FieldDistance, raw.Distance); err != nil {
		return f, err
	}
	if f.DurationMin, err = parseNumber(FieldDuration, raw.Duration); err != nil {
		return f, err
	}
	switch kind {
	case models.Running:
		if f.Cadence, err = parseNumber(FieldCadence, raw.Cadence); err != nil {
			return f, err
		}
	case models.Cycling:
		if f.ElevationGainM, err = parseNumber(FieldElevation, raw.Elevation); err != nil {
			return f, err
		}
	}
	if err := models.ValidateFields(kind, f); err != nil {
		return f, err
	}
	return f, nil
}

func parseNumber(field Field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &models.ValidationError{Field: string(field), Reason: "is required"}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &models.ValidationError{Field: string(field), Reason: "must be a number"}
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

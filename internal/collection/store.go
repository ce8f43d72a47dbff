// ABOUTME: In-memory ordered collection of workouts
// ABOUTME: Enforces id uniqueness and exposes CRUD plus sorted views

package collection

import (
	"github.com/harper/workouts/internal/models"
)

// Patch holds the fields an edit overwrites. Nil means unchanged.
type Patch struct {
	DistanceKm     *float64
	DurationMin    *float64
	Cadence        *float64
	ElevationGainM *float64
}

// Store owns the workouts of one running session, in insertion order.
// It is not safe for concurrent use.
type Store struct {
	workouts []*models.Workout
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Len returns the number of stored workouts.
func (s *Store) Len() int {
	return len(s.workouts)
}

// All returns the workouts in insertion order. The slice is a copy;
// the workouts are shared.
func (s *Store) All() []*models.Workout {
	out := make([]*models.Workout, len(s.workouts))
	copy(out, s.workouts)
	return out
}

func (s *Store) indexOf(id string) int {
	for i, w := range s.workouts {
		if w.ID == id {
			return i
		}
	}
	return -1
}

// Add appends a workout.
func (s *Store) Add(w *models.Workout) error {
	if s.indexOf(w.ID) >= 0 {
		return &DuplicateIDError{ID: w.ID}
	}
	s.workouts = append(s.workouts, w)
	return nil
}

// FindByID returns the workout with the given id.
func (s *Store) FindByID(id string) (*models.Workout, error) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, &NotFoundError{ID: id}
	}
	return s.workouts[i], nil
}

// Update applies patch to the workout in place and recomputes its derived
// fields. The kind, id, creation time, and coordinates never change.
// An invalid patch leaves the workout untouched.
func (s *Store) Update(id string, patch Patch) (*models.Workout, error) {
	w, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	f := w.Fields()
	if patch.DistanceKm != nil {
		f.DistanceKm = *patch.DistanceKm
	}
	if patch.DurationMin != nil {
		f.DurationMin = *patch.DurationMin
	}
	if patch.Cadence != nil {
		f.Cadence = *patch.Cadence
	}
	if patch.ElevationGainM != nil {
		f.ElevationGainM = *patch.ElevationGainM
	}
	if err := models.ValidateFields(w.Kind, f); err != nil {
		return nil, err
	}

	w.DistanceKm = f.DistanceKm
	w.DurationMin = f.DurationMin
	w.Cadence = f.Cadence
	w.ElevationGainM = f.ElevationGainM
	models.Recompute(w)
	return w, nil
}

// RemoveByID deletes the workout and returns it for downstream cleanup.
func (s *Store) RemoveByID(id string) (*models.Workout, error) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, &NotFoundError{ID: id}
	}
	w := s.workouts[i]
	s.workouts = append(s.workouts[:i], s.workouts[i+1:]...)
	return w, nil
}

// RemoveAll clears the store and returns how many workouts were removed.
func (s *Store) RemoveAll() int {
	n := len(s.workouts)
	s.workouts = nil
	return n
}

// Replace swaps the whole collection, typically after a load. Workouts whose
// id was already seen are dropped and returned as errors.
func (s *Store) Replace(ws []*models.Workout) []error {
	var errs []error
	s.workouts = make([]*models.Workout, 0, len(ws))
	for _, w := range ws {
		if err := s.Add(w); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

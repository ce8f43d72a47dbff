// ABOUTME: Sorted, non-mutating views over the collection
// ABOUTME: Views are lazy and re-sorted on every iteration

package collection

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/harper/workouts/internal/models"
)

// Criterion selects the order of a sorted view.
type Criterion string

const (
	DateAdded        Criterion = "date-added"
	DateAddedReverse Criterion = "date-added-reverse"
	Distance         Criterion = "distance"
	Duration         Criterion = "duration"
)

// Criteria lists the supported sort orders.
var Criteria = []Criterion{DateAdded, DateAddedReverse, Distance, Duration}

// ParseCriterion validates a sort criterion name. Empty means DateAdded.
func ParseCriterion(s string) (Criterion, error) {
	if s == "" {
		return DateAdded, nil
	}
	c := Criterion(s)
	if slices.Contains(Criteria, c) {
		return c, nil
	}
	return "", fmt.Errorf("unknown sort %q (use date-added, date-added-reverse, distance, or duration)", s)
}

// SortedView returns the workouts ordered by c without touching the stored
// order. The sequence snapshots the store each time it is ranged over, so
// it can be reused after the store changes.
func (s *Store) SortedView(c Criterion) iter.Seq[*models.Workout] {
	return func(yield func(*models.Workout) bool) {
		ws := s.All()
		switch c {
		case DateAddedReverse:
			slices.Reverse(ws)
		case Distance:
			slices.SortStableFunc(ws, func(a, b *models.Workout) int {
				return cmp.Compare(a.DistanceKm, b.DistanceKm)
			})
		case Duration:
			slices.SortStableFunc(ws, func(a, b *models.Workout) int {
				return cmp.Compare(a.DurationMin, b.DurationMin)
			})
		}
		for _, w := range ws {
			if !yield(w) {
				return
			}
		}
	}
}

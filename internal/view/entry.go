// ABOUTME: Renderer-neutral projection of a workout for list display
// ABOUTME: Carries formatted metric text and the per-entry options

package view

import (
	"fmt"

	"github.com/harper/workouts/internal/models"
)

// EntryOption is an action offered on a list entry.
type EntryOption string

const (
	OptionDelete EntryOption = "delete"
	OptionView   EntryOption = "view"
	OptionEdit   EntryOption = "edit"
)

// Entry is what a ListRenderer draws for one workout.
type Entry struct {
	ID          string
	Kind        models.Kind
	Title       string
	Icon        string
	DistanceKm  float64
	DurationMin float64
	Metric      string
	MetricUnit  string
	Extra       float64
	ExtraUnit   string
	Options     []EntryOption
}

// NewEntry projects w into an Entry. The metric is formatted to one decimal.
func NewEntry(w *models.Workout) Entry {
	return Entry{
		ID:          w.ID,
		Kind:        w.Kind,
		Title:       w.Label,
		Icon:        w.Kind.Icon(),
		DistanceKm:  w.DistanceKm,
		DurationMin: w.DurationMin,
		Metric:      fmt.Sprintf("%.1f", w.Metric()),
		MetricUnit:  w.MetricUnit(),
		Extra:       w.ExtraValue(),
		ExtraUnit:   w.ExtraUnit(),
		Options:     []EntryOption{OptionDelete, OptionView, OptionEdit},
	}
}
